// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMarkdown(t *testing.T) {
	engine := testEngine(t)
	p := NewParser(engine, NewBuildEnv())

	input := strings.Join([]string{
		"The foo crate",
		"=============",
		"",
		".. crate:: foo",
		"",
		"   Entry point for `foo` users.",
		"",
		"Read about :crate:`foo` below.",
		"",
	}, "\n")

	doc, _ := p.Parse("intro.rst", input)
	out := WriteMarkdown(doc)

	assert.Contains(t, out, "# The foo crate\n")
	assert.Contains(t, out, `<a id="crate-foo"></a>`)
	assert.Contains(t, out, "**crate foo**\n")
	assert.Contains(t, out, "<!-- index: pair: foo; crate -->")
	assert.Contains(t, out, "[foo](intro.md#crate-foo)")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestWriteMarkdownLiteralAndEmpty(t *testing.T) {
	engine := testEngine(t)
	env := NewBuildEnv()
	p := NewParser(engine, env)

	doc, _ := p.Parse("page.rst", "An unresolved :crate:`nope` use.\n")
	out := WriteMarkdown(doc)
	assert.Equal(t, "An unresolved `nope` use.\n", out)

	empty, _ := p.Parse("empty.rst", "\n\n")
	assert.Equal(t, "", WriteMarkdown(empty))
}

func TestMarkdownTarget(t *testing.T) {
	require.Equal(t, "api.md#crate-foo", markdownTarget("api.rst#crate-foo"))
	require.Equal(t, "guide/intro.md#mod-io", markdownTarget("guide/intro.rst#mod-io"))
	require.Equal(t, "plain", markdownTarget("plain"))
}
