package planner

import "path/filepath"

// Operation is one planned rename. Source and Destination always share a
// parent directory.
type Operation struct {
	Source      string
	Destination string
}

// Unchanged reports whether the rename would leave the file where it is.
func (op Operation) Unchanged() bool {
	return filepath.Clean(op.Source) == filepath.Clean(op.Destination)
}
