package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// PatchOp is the operation name of a single patch entry
type PatchOp string

// PatchOperation is one entry in an ordered JSON patch document
type PatchOperation struct {
	Op    PatchOp `json:"op"`
	Path  string  `json:"path"`
	From  string  `json:"from,omitempty"`
	Value any     `json:"value,omitempty"`
}

// Patch is an ordered list of patch operations, applied in sequence
type Patch []PatchOperation

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	PatchAdd     PatchOp = "add"
	PatchRemove  PatchOp = "remove"
	PatchReplace PatchOp = "replace"
	PatchMove    PatchOp = "move"
	PatchCopy    PatchOp = "copy"
	PatchTest    PatchOp = "test"
)

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p PatchOperation) String() string {
	return types.Stringify(p)
}

func (p Patch) String() string {
	return types.Stringify(p)
}
