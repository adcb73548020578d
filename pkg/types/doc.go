// Package types defines the CerealStorage interface, the closed Cereal
// catalog, the storage Config and the standard error types for the
// cerealstore ledger.
//
// See internal/ledger for the in-memory implementation and pkg/ledger for
// the public factory.
package types
