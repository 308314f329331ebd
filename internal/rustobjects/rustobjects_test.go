// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rustobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/rustmark/internal/markup"
)

func TestSetupRegistersAllObjectTypes(t *testing.T) {
	engine := markup.NewEngine()
	require.NoError(t, Setup(engine))

	registered := engine.ObjectTypes()
	require.Len(t, registered, 7)

	want := []struct {
		directive     string
		role          string
		indexTemplate string
	}{
		{"crate", "crate", "pair: %s; crate"},
		{"module", "mod", "pair: %s; module"},
		{"struct", "struct", "pair: %s; struct"},
		{"enum", "enum", "pair: %s; enum"},
		{"variant", "evar", "pair: %s; enum variant"},
		{"type", "type", "pair: %s; type alias"},
		{"static", "static", "pair: %s; static"},
	}

	for i, w := range want {
		assert.Equal(t, w.directive, registered[i].Directive)
		assert.Equal(t, w.role, registered[i].Role)
		assert.Equal(t, w.indexTemplate, registered[i].IndexTemplate)
		assert.NotNil(t, registered[i].ParseSignature)

		byDirective, ok := engine.DirectiveFor(w.directive)
		require.True(t, ok, "directive %s not registered", w.directive)
		assert.Equal(t, w.role, byDirective.Role)

		byRole, ok := engine.RoleFor(w.role)
		require.True(t, ok, "role %s not registered", w.role)
		assert.Equal(t, w.directive, byRole.Directive)
	}
}

func TestSignatureParserTitles(t *testing.T) {
	tests := []struct {
		name      string
		directive string
		sig       string
		wantTitle string
	}{
		{
			name:      "crate prefixes its label",
			directive: "crate",
			sig:       "foo",
			wantTitle: "crate foo",
		},
		{
			name:      "module uses the short mod label",
			directive: "module",
			sig:       "collections",
			wantTitle: "mod collections",
		},
		{
			name:      "variant has no prefix",
			directive: "variant",
			sig:       "Ok",
			wantTitle: "Ok",
		},
		{
			name:      "static prefixes its label",
			directive: "static",
			sig:       "MAX_SIZE",
			wantTitle: "static MAX_SIZE",
		},
		{
			name:      "type alias uses the type label",
			directive: "type",
			sig:       "ParseResult<T>",
			wantTitle: "type ParseResult<T>",
		},
	}

	engine := markup.NewEngine()
	require.NoError(t, Setup(engine))
	env := markup.NewBuildEnv()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ot, ok := engine.DirectiveFor(tt.directive)
			require.True(t, ok)

			signode := markup.NewNode(markup.KindSignature)
			name := ot.ParseSignature(env, tt.sig, signode)

			assert.Equal(t, tt.sig, name, "identifier must be the signature, unchanged")
			assert.Equal(t, tt.wantTitle, signode.PlainText())
			require.Len(t, signode.Children, 1)
			assert.Equal(t, markup.KindName, signode.Children[0].Kind)
		})
	}
}

func TestSignatureParserIsStateless(t *testing.T) {
	first := signatureParser("enum")
	second := signatureParser("enum")
	env := markup.NewBuildEnv()

	for i := 0; i < 3; i++ {
		a := markup.NewNode(markup.KindSignature)
		b := markup.NewNode(markup.KindSignature)
		assert.Equal(t, "Result", first(env, "Result", a))
		assert.Equal(t, "Result", second(env, "Result", b))
		assert.Equal(t, "enum Result", a.PlainText())
		assert.Equal(t, "enum Result", b.PlainText())
	}
}

func TestSetupTwiceFails(t *testing.T) {
	engine := markup.NewEngine()
	require.NoError(t, Setup(engine))

	err := Setup(engine)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	// The first registration pass must remain intact.
	assert.Len(t, engine.ObjectTypes(), 7)
}
