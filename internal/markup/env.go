// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import "fmt"

// BuildEnv accumulates declared objects and warnings across the pages of
// one build. It is not safe for concurrent use; a build runs one page at
// a time.
type BuildEnv struct {
	objects  map[string]string
	Warnings []string
}

// NewBuildEnv returns an empty build environment.
func NewBuildEnv() *BuildEnv {
	return &BuildEnv{objects: make(map[string]string)}
}

// Declare records a declared object so later role uses can resolve it.
// A re-declaration overwrites the earlier location.
func (env *BuildEnv) Declare(role, name, doc, anchor string) {
	env.objects[role+":"+name] = doc + "#" + anchor
}

// Lookup returns the "doc#anchor" location of a declared object.
func (env *BuildEnv) Lookup(role, name string) (string, bool) {
	loc, ok := env.objects[role+":"+name]
	return loc, ok
}

// Warnf records a build warning.
func (env *BuildEnv) Warnf(format string, args ...any) {
	env.Warnings = append(env.Warnings, fmt.Sprintf(format, args...))
}
