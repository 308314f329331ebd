// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/rustmark/pkg/types"
)

// Parser parses doc source pages against a registered engine. Pages of one
// build share a Parser so declarations on earlier pages resolve on later
// ones.
type Parser struct {
	engine *Engine
	env    *BuildEnv
}

// NewParser returns a parser using the given engine and build environment.
func NewParser(engine *Engine, env *BuildEnv) *Parser {
	return &Parser{engine: engine, env: env}
}

var (
	directiveRe = regexp.MustCompile(`^\.\. ([A-Za-z][A-Za-z0-9_-]*):: ?(.*)$`)
	roleRe      = regexp.MustCompile(":([A-Za-z][A-Za-z0-9_-]*):`([^`]+)`")
)

// Parse parses one page. doc is the page path relative to the source root.
// It returns the document tree and the object entries declared on the page.
func (p *Parser) Parse(doc, input string) (*Node, []types.ObjectEntry) {
	root := NewNode(KindDocument)
	var entries []types.ObjectEntry
	seen := make(map[string]int)

	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	i := 0
	for i < len(lines) {
		line := strings.TrimRight(lines[i], " \t")

		if line == "" {
			i++
			continue
		}

		if m := directiveRe.FindStringSubmatch(line); m != nil {
			body, next := collectIndented(lines, i+1)
			i = next
			desc, entry, ok := p.parseDirective(doc, m[1], strings.TrimSpace(m[2]), body)
			if ok {
				root.Append(desc)
				// Entry IDs are unique per page. A re-declaration (or two
				// identifiers normalizing to the same anchor) overwrites the
				// earlier entry, matching Declare's last-wins semantics.
				if at, dup := seen[entry.ID]; dup {
					p.env.Warnf("duplicate anchor %q in %s", entry.Anchor, doc)
					entries[at] = entry
				} else {
					seen[entry.ID] = len(entries)
					entries = append(entries, entry)
				}
			}
			continue
		}

		if i+1 < len(lines) {
			if depth, ok := underlineDepth(strings.TrimRight(lines[i+1], " \t"), line); ok {
				section := NewNode(KindSection)
				section.Depth = depth
				section.Append(NewTextNode(KindTitle, strings.TrimSpace(line)))
				root.Append(section)
				i += 2
				continue
			}
		}

		// Paragraph: consecutive non-blank lines joined with spaces.
		var para []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			para = append(para, strings.TrimSpace(lines[i]))
			i++
		}
		root.Append(NewNode(KindParagraph).Append(p.parseInline(doc, strings.Join(para, " "))...))
	}

	return root, entries
}

// parseDirective handles one ".. name:: sig" block. Unknown directives
// produce a warning and no node.
func (p *Parser) parseDirective(doc, name, sig string, body []string) (*Node, types.ObjectEntry, bool) {
	ot, ok := p.engine.DirectiveFor(name)
	if !ok {
		p.env.Warnf("unknown directive %q in %s", name, doc)
		return nil, types.ObjectEntry{}, false
	}

	signode := NewNode(KindSignature)
	objName := ot.ParseSignature(p.env, sig, signode)

	anchor := anchorFor(ot.Role, objName)
	p.env.Declare(ot.Role, objName, doc, anchor)

	display := fmt.Sprintf(ot.IndexTemplate, objName)
	entry := types.ObjectEntry{
		ID:        doc + "#" + anchor,
		Name:      objName,
		Kind:      ot.Role,
		Display:   display,
		Doc:       doc,
		Anchor:    anchor,
		Signature: sig,
	}

	desc := NewNode(KindDesc)
	desc.Ref = anchor
	desc.Append(signode, NewTextNode(KindIndex, display))
	for _, para := range joinParagraphs(body) {
		desc.Append(NewNode(KindParagraph).Append(p.parseInline(doc, para)...))
	}

	return desc, entry, true
}

// parseInline splits text into text, literal, and reference nodes around
// ":role:`target`" uses.
func (p *Parser) parseInline(doc, text string) []*Node {
	var nodes []*Node
	last := 0
	for _, m := range roleRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			nodes = append(nodes, NewTextNode(KindText, text[last:m[0]]))
		}
		nodes = append(nodes, p.resolveRole(doc, text[m[2]:m[3]], text[m[4]:m[5]]))
		last = m[1]
	}
	if last < len(text) {
		nodes = append(nodes, NewTextNode(KindText, text[last:]))
	}
	return nodes
}

// resolveRole turns a role use into a reference node, or literal text with
// a warning when the role is unknown or the target undeclared.
func (p *Parser) resolveRole(doc, role, target string) *Node {
	ot, ok := p.engine.RoleFor(role)
	if !ok {
		p.env.Warnf("unknown role %q in %s", role, doc)
		return NewTextNode(KindLiteral, target)
	}

	loc, found := p.env.Lookup(ot.Role, target)
	if !found {
		p.env.Warnf("unresolved %s reference %q in %s", ot.Role, target, doc)
		return NewTextNode(KindLiteral, target)
	}

	ref := NewTextNode(KindReference, target)
	ref.Ref = loc
	return ref
}

// collectIndented gathers the indented body of a directive starting at
// start. It returns the body with indentation stripped and the index of
// the first line after the body.
func collectIndented(lines []string, start int) ([]string, int) {
	var body []string
	i := start
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			body = append(body, "")
			i++
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			break
		}
		body = append(body, strings.TrimSpace(line))
		i++
	}
	// Trailing blanks belong to the surrounding document, not the body.
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	return body, i
}

// joinParagraphs joins runs of non-blank body lines into paragraph strings.
func joinParagraphs(body []string) []string {
	var paras []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paras = append(paras, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range body {
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paras
}

// underlineDepth reports whether underline is a section underline for
// title, and at what depth. "=" is depth 1, "-" depth 2, "~" depth 3.
func underlineDepth(underline, title string) (int, bool) {
	if len(underline) < 2 || len(underline) < len(title) || title == "" {
		return 0, false
	}
	ch := underline[0]
	for j := 1; j < len(underline); j++ {
		if underline[j] != ch {
			return 0, false
		}
	}
	switch ch {
	case '=':
		return 1, true
	case '-':
		return 2, true
	case '~':
		return 3, true
	}
	return 0, false
}

// anchorFor builds a link anchor from a role name and identifier,
// e.g. ("static", "MAX_SIZE") -> "static-max-size".
func anchorFor(role, name string) string {
	var b strings.Builder
	b.WriteString(role)
	b.WriteByte('-')
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
