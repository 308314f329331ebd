// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import "strings"

// NodeKind discriminates node types in a parsed document tree.
type NodeKind int

const (
	// KindDocument is the root of one parsed page.
	KindDocument NodeKind = iota
	// KindSection is a titled section; Depth is the heading level.
	KindSection
	// KindTitle is a section title.
	KindTitle
	// KindParagraph groups inline nodes.
	KindParagraph
	// KindText is plain inline text.
	KindText
	// KindLiteral is inline code text.
	KindLiteral
	// KindDesc describes one declared object; Ref holds its anchor.
	KindDesc
	// KindSignature holds the rendered signature of a desc node.
	KindSignature
	// KindName is the visible title appended by a signature parser.
	KindName
	// KindReference is a cross-reference; Ref holds "doc#anchor".
	KindReference
	// KindIndex carries the index entry text for a desc node.
	KindIndex
)

// Node is a single node in the document tree.
type Node struct {
	Kind     NodeKind
	Text     string // visible text for Title, Text, Literal, Name, Reference, Index
	Ref      string // link target for Reference; anchor for Desc
	Depth    int    // heading level for Section, 1-based
	Children []*Node
}

// NewNode returns an empty node of the given kind.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// NewTextNode returns a childless node carrying text.
func NewTextNode(kind NodeKind, text string) *Node {
	return &Node{Kind: kind, Text: text}
}

// Append adds children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// PlainText returns the concatenated visible text of n and its descendants.
// Index nodes contribute nothing: their text is index metadata, not prose.
func (n *Node) PlainText() string {
	var b strings.Builder
	n.plainText(&b)
	return b.String()
}

func (n *Node) plainText(b *strings.Builder) {
	if n.Kind == KindIndex {
		return
	}
	b.WriteString(n.Text)
	for _, child := range n.Children {
		child.plainText(b)
	}
}
