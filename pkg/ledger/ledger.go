// Package ledger provides the public API for creating cereal storages.
// This package exposes the factory function while keeping the
// implementation internal.
package ledger

import (
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/cerealstore/internal/ledger"
	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

// NewStorage creates an empty in-memory storage with the capacities in cfg.
// Returns an error wrapping types.ErrInvalidConfiguration if cfg does not
// validate.
//
// Example:
//
//	storage, err := ledger.NewStorage(types.NewConfig(10, 20))
//	if err != nil {
//	    return err
//	}
//	leftover, err := storage.AddCereal(types.Buckwheat, decimal.NewFromInt(3))
func NewStorage(cfg types.Config) (types.CerealStorage, error) {
	return newStorage(cfg)
}

// NewStorageWithLogger is NewStorage with container events written to log
// at debug level.
func NewStorageWithLogger(cfg types.Config, log zerolog.Logger) (types.CerealStorage, error) {
	return newStorage(cfg, ledger.WithLogger(log))
}

// newStorage keeps a failed construction from leaking a typed nil.
func newStorage(cfg types.Config, opts ...ledger.Option) (types.CerealStorage, error) {
	l, err := ledger.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return l, nil
}
