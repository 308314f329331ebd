// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ObjectEntry is one declared object collected during a build, with
// provenance back to the page that declared it.
type ObjectEntry struct {
	// ID is a stable identifier for this entry, consistent across rebuilds
	// of unchanged sources: "<doc>#<anchor>".
	ID string `json:"id" yaml:"id"`

	// Name is the canonical identifier returned by the object type's
	// signature parser (the signature text, unchanged).
	Name string `json:"name" yaml:"name"`

	// Kind is the role name of the declaring object type
	// (e.g. "crate", "mod", "evar").
	Kind string `json:"kind" yaml:"kind"`

	// Display is the object type's index template applied to Name
	// (e.g. "pair: foo; crate").
	Display string `json:"display" yaml:"display"`

	// Doc is the source page path, relative to the source directory.
	Doc string `json:"doc" yaml:"doc"`

	// Anchor is the link target emitted into the rendered page.
	Anchor string `json:"anchor" yaml:"anchor"`

	// Signature is the raw signature text from the declaring directive.
	Signature string `json:"signature" yaml:"signature"`
}
