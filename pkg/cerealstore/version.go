// Package cerealstore holds project-wide metadata.
package cerealstore

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// ModulePath is the Go module path of this project.
const ModulePath = "github.com/mesh-intelligence/cerealstore"
