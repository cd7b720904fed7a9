// Package codec converts between typed AST nodes and a generic string-keyed
// mapping form. The mapping form is what crosses process boundaries (JSON
// over HTTP, on-disk trees); Encode is total over shape-valid trees and
// Decode reconstructs the exact typed tree or fails with a
// ReconstructionError. Field matching on decode is strict: a mapping with a
// missing required field, an unknown node_type, or any key beyond the
// declared fields and the reserved keys is rejected rather than silently
// truncated.
package codec

import "fmt"

// Mapping is the generic key/value form of a single node. The reserved key
// "node_type" holds the kind tag; "lineno" and "col_offset" carry optional
// position metadata and are never required for decoding.
type Mapping = map[string]any

// Reserved mapping keys.
const (
	KeyNodeType = "node_type"
	KeyLine     = "lineno"
	KeyCol      = "col_offset"
)

// ReconstructionError reports a mapping that cannot be decoded back into a
// typed node. Path locates the offending mapping from the decode root, e.g.
// "$.body[0].value".
type ReconstructionError struct {
	Path string
	Msg  string
}

func (e *ReconstructionError) Error() string {
	return fmt.Sprintf("cannot reconstruct node at %s: %s", e.Path, e.Msg)
}
