// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup parses the reStructuredText subset used by rustmark doc
// sources and hosts the extension registry that object types are added to.
package markup

import "fmt"

// SignatureParser renders an object declaration's signature into signode
// and returns the canonical identifier used for indexing and
// cross-referencing. The inputs come from the parser; implementations may
// assume well-formed strings.
type SignatureParser func(env *BuildEnv, sig string, signode *Node) string

// ObjectType pairs a declaring directive, a cross-reference role, an index
// template, and the signature parser that renders declarations.
type ObjectType struct {
	// Directive is the block-level keyword that declares an object.
	Directive string

	// Role is the inline keyword that cross-references a declared object.
	Role string

	// IndexTemplate is a format string with one %s slot for the identifier,
	// applied to build the index entry text.
	IndexTemplate string

	// ParseSignature renders a declaration's signature.
	ParseSignature SignatureParser
}

// Engine is the registry of object types recognized during a build.
// Registration happens once at setup; conflicting re-registrations are
// rejected with an error.
type Engine struct {
	byDirective map[string]ObjectType
	byRole      map[string]ObjectType
	order       []string
}

// NewEngine returns an engine with no registered object types.
func NewEngine() *Engine {
	return &Engine{
		byDirective: make(map[string]ObjectType),
		byRole:      make(map[string]ObjectType),
	}
}

// AddObjectType registers ot. It returns an error if the directive or role
// name is already taken, or if the object type is incomplete.
func (e *Engine) AddObjectType(ot ObjectType) error {
	if ot.Directive == "" || ot.Role == "" {
		return fmt.Errorf("object type needs a directive and a role name")
	}
	if ot.ParseSignature == nil {
		return fmt.Errorf("object type %s: missing signature parser", ot.Directive)
	}
	if _, exists := e.byDirective[ot.Directive]; exists {
		return fmt.Errorf("directive %q is already registered", ot.Directive)
	}
	if _, exists := e.byRole[ot.Role]; exists {
		return fmt.Errorf("role %q is already registered", ot.Role)
	}

	e.byDirective[ot.Directive] = ot
	e.byRole[ot.Role] = ot
	e.order = append(e.order, ot.Directive)
	return nil
}

// DirectiveFor returns the object type declared by the given directive name.
func (e *Engine) DirectiveFor(name string) (ObjectType, bool) {
	ot, ok := e.byDirective[name]
	return ot, ok
}

// RoleFor returns the object type referenced by the given role name.
func (e *Engine) RoleFor(name string) (ObjectType, bool) {
	ot, ok := e.byRole[name]
	return ot, ok
}

// ObjectTypes returns a snapshot of registered object types in
// registration order.
func (e *Engine) ObjectTypes() []ObjectType {
	types := make([]ObjectType, 0, len(e.order))
	for _, name := range e.order {
		types = append(types, e.byDirective[name])
	}
	return types
}
