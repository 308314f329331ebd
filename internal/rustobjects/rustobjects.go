// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rustobjects registers documentation object types for Rust
// identifiers: crates, modules, structs, enums, enum variants, type
// aliases, and statics. Each object type pairs a declaring directive with
// a cross-reference role and an index template.
package rustobjects

import "github.com/pdiddy/rustmark/internal/markup"

// objectTypes is the fixed descriptor table:
// prefix, directive, role, index template.
var objectTypes = []struct {
	prefix        string
	directive     string
	role          string
	indexTemplate string
}{
	{"crate", "crate", "crate", "pair: %s; crate"},
	{"mod", "module", "mod", "pair: %s; module"},
	{"struct", "struct", "struct", "pair: %s; struct"},
	{"enum", "enum", "enum", "pair: %s; enum"},
	{"", "variant", "evar", "pair: %s; enum variant"},
	{"type", "type", "type", "pair: %s; type alias"},
	{"static", "static", "static", "pair: %s; static"},
}

// Setup registers the Rust object types with the engine. A registration
// failure (a directive or role name already taken) propagates unmodified
// and is expected to abort the build.
func Setup(engine *markup.Engine) error {
	for _, ot := range objectTypes {
		err := engine.AddObjectType(markup.ObjectType{
			Directive:      ot.directive,
			Role:           ot.role,
			IndexTemplate:  ot.indexTemplate,
			ParseSignature: signatureParser(ot.prefix),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// signatureParser returns a SignatureParser that prefixes the given label
// onto the signature for display ("mod collections", "static MAX_SIZE").
// An empty prefix leaves the signature bare, as enum variants carry no
// label of their own. The signature is returned unchanged as the
// canonical identifier.
func signatureParser(prefix string) markup.SignatureParser {
	return func(env *markup.BuildEnv, sig string, signode *markup.Node) string {
		title := sig
		if prefix != "" {
			title = prefix + " " + sig
		}
		signode.Append(markup.NewTextNode(markup.KindName, title))
		return sig
	}
}
