// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"fmt"
	"strings"
)

// WriteMarkdown renders a parsed page to Markdown. Sections become
// headings, desc nodes become anchored definition blocks, references
// become links into the rendered pages.
func WriteMarkdown(doc *Node) string {
	var b strings.Builder
	for _, child := range doc.Children {
		writeBlock(&b, child)
	}
	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func writeBlock(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindSection:
		fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", n.Depth), n.PlainText())
	case KindParagraph:
		writeInline(b, n.Children)
		b.WriteString("\n\n")
	case KindDesc:
		fmt.Fprintf(b, "<a id=%q></a>\n\n", n.Ref)
		for _, child := range n.Children {
			switch child.Kind {
			case KindSignature:
				fmt.Fprintf(b, "**%s**\n\n", child.PlainText())
			case KindIndex:
				fmt.Fprintf(b, "<!-- index: %s -->\n\n", child.Text)
			default:
				writeBlock(b, child)
			}
		}
	}
}

func writeInline(b *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		switch n.Kind {
		case KindText:
			b.WriteString(n.Text)
		case KindLiteral:
			fmt.Fprintf(b, "`%s`", n.Text)
		case KindReference:
			fmt.Fprintf(b, "[%s](%s)", n.Text, markdownTarget(n.Ref))
		}
	}
}

// markdownTarget rewrites a "doc.rst#anchor" location to point at the
// rendered Markdown page.
func markdownTarget(loc string) string {
	docPath, anchor, ok := strings.Cut(loc, "#")
	if !ok {
		return loc
	}
	return strings.TrimSuffix(docPath, ".rst") + ".md#" + anchor
}
