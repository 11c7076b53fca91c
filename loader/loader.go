// Package loader resolves a user-authored desired schema into the model
// package's in-memory representation, reading from an explicit data
// format rather than dynamically importing source code.
package loader

import "github.com/schemasync/schemasync/model"

// Loader reads a desired schema from a path and returns its model value.
type Loader interface {
	Load(path string) (*model.Schema, error)
}
