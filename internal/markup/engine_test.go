// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopParser(env *BuildEnv, sig string, signode *Node) string {
	signode.Append(NewTextNode(KindName, sig))
	return sig
}

func TestAddObjectType(t *testing.T) {
	tests := []struct {
		name   string
		add    []ObjectType
		errMsg string
	}{
		{
			name: "registers distinct object types",
			add: []ObjectType{
				{Directive: "crate", Role: "crate", IndexTemplate: "pair: %s; crate", ParseSignature: noopParser},
				{Directive: "module", Role: "mod", IndexTemplate: "pair: %s; module", ParseSignature: noopParser},
			},
		},
		{
			name: "rejects a duplicate directive",
			add: []ObjectType{
				{Directive: "crate", Role: "crate", ParseSignature: noopParser},
				{Directive: "crate", Role: "other", ParseSignature: noopParser},
			},
			errMsg: `directive "crate" is already registered`,
		},
		{
			name: "rejects a duplicate role",
			add: []ObjectType{
				{Directive: "crate", Role: "crate", ParseSignature: noopParser},
				{Directive: "other", Role: "crate", ParseSignature: noopParser},
			},
			errMsg: `role "crate" is already registered`,
		},
		{
			name:   "rejects a missing directive name",
			add:    []ObjectType{{Role: "crate", ParseSignature: noopParser}},
			errMsg: "needs a directive and a role name",
		},
		{
			name:   "rejects a missing signature parser",
			add:    []ObjectType{{Directive: "crate", Role: "crate"}},
			errMsg: "missing signature parser",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine()

			var err error
			for _, ot := range tt.add {
				err = engine.AddObjectType(ot)
				if err != nil {
					break
				}
			}

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Len(t, engine.ObjectTypes(), len(tt.add))
		})
	}
}

func TestObjectTypesPreservesRegistrationOrder(t *testing.T) {
	engine := NewEngine()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, engine.AddObjectType(ObjectType{
			Directive: name, Role: "r-" + name, ParseSignature: noopParser,
		}))
	}

	var got []string
	for _, ot := range engine.ObjectTypes() {
		got = append(got, ot.Directive)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, got)
}

func TestBuildEnvDeclareAndLookup(t *testing.T) {
	env := NewBuildEnv()

	_, found := env.Lookup("crate", "foo")
	assert.False(t, found)

	env.Declare("crate", "foo", "intro.rst", "crate-foo")
	loc, found := env.Lookup("crate", "foo")
	require.True(t, found)
	assert.Equal(t, "intro.rst#crate-foo", loc)

	// Same name under a different role stays independent.
	_, found = env.Lookup("mod", "foo")
	assert.False(t, found)

	// Re-declaration overwrites.
	env.Declare("crate", "foo", "api.rst", "crate-foo")
	loc, _ = env.Lookup("crate", "foo")
	assert.Equal(t, "api.rst#crate-foo", loc)
}

func TestBuildEnvWarnf(t *testing.T) {
	env := NewBuildEnv()
	env.Warnf("unknown role %q in %s", "bogus", "intro.rst")
	require.Len(t, env.Warnings, 1)
	assert.Equal(t, `unknown role "bogus" in intro.rst`, env.Warnings[0])
}
