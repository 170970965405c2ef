package document

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// errPositionRegex recovers a "[line:column]" prefix from goccy error
// messages when the error does not expose its token.
var errPositionRegex = regexp.MustCompile(`\[(\d+):(\d+)\]`)

// Parse converts a single YAML document into a Document Tree. Only the
// first document of a multi-document stream is converted. Comments are
// preserved and attached to the nodes they are adjacent to.
//
// Invalid UTF-8 and tab-based indentation return a [*LexError].
// Structurally invalid YAML returns a [*ParseError]. Duplicate mapping
// keys, aliases, and merge keys are non-fatal and reported through
// [Document.Diagnostics].
func Parse(src []byte) (*Document, error) {
	if !utf8.Valid(src) {
		return nil, &LexError{Msg: "input is not valid UTF-8", Pos: Position{Line: 1, Column: 1}}
	}

	if pos := tabIndent(src); pos != nil {
		return nil, &LexError{Msg: "tab character used for indentation", Pos: *pos}
	}

	if isBlank(src) {
		return &Document{}, nil
	}

	file, err := parser.ParseBytes(src, parser.ParseComments, parser.AllowDuplicateMapKey())
	if err != nil {
		return nil, &ParseError{Msg: trimPositionPrefix(err.Error()), Pos: errorPosition(err)}
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return &Document{}, nil
	}

	c := &converter{}

	root := c.node(file.Docs[0].Body)

	return &Document{Root: root, Diagnostics: c.diags}, nil
}

// converter accumulates diagnostics while translating the goccy AST into
// the closed Node union.
type converter struct {
	diags []Diagnostic
}

func (c *converter) warnf(pos Position, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{Message: fmt.Sprintf(format, args...), Pos: pos})
}

// node translates a single AST node. Returns nil for comment-only input.
func (c *converter) node(n ast.Node) Node {
	n = unwrap(n)
	if n == nil {
		return nil
	}

	switch v := n.(type) {
	case *ast.CommentGroupNode:
		return nil
	case *ast.AliasNode:
		return c.alias(v)
	case *ast.MappingNode:
		return c.mapping(n, v.Values)
	case *ast.MappingValueNode:
		return c.mapping(n, []*ast.MappingValueNode{v})
	case *ast.SequenceNode:
		return c.sequence(v)
	default:
		return c.scalar(n)
	}
}

// unwrap resolves tag and anchor wrappers to the underlying value node.
func unwrap(n ast.Node) ast.Node {
	for {
		switch v := n.(type) {
		case *ast.TagNode:
			n = v.Value
		case *ast.AnchorNode:
			n = v.Value
		default:
			return n
		}
	}
}

// alias keeps an alias as a string literal of its anchor name. Alias
// expansion is out of scope; the substitution is surfaced as a diagnostic.
func (c *converter) alias(n *ast.AliasNode) Node {
	pos := nodePosition(n)
	name := tokenValue(n.Value)

	c.warnf(pos, "alias *%s kept as literal, aliases are not expanded", name)

	return &Scalar{
		meta:  meta{pos: pos},
		Type:  StringType,
		Value: name,
		Raw:   "*" + name,
	}
}

func (c *converter) mapping(n ast.Node, values []*ast.MappingValueNode) Node {
	m := &Mapping{meta: meta{pos: nodePosition(n)}}
	index := make(map[string]int)

	for _, mvn := range values {
		if _, ok := mvn.Key.(*ast.MergeKeyNode); ok {
			c.warnf(nodePosition(mvn), "merge key (<<) skipped, merge semantics are not expanded")

			continue
		}

		key := tokenValue(mvn.Key)
		pairPos := nodePosition(mvn.Key)

		value := c.node(mvn.Value)
		if value == nil {
			value = &Scalar{meta: meta{pos: pairPos}, Type: NullType, Value: "null"}
		}

		attachComments(value, pairPos, commentGroups(mvn))

		if at, seen := index[key]; seen {
			// Last write wins, at the first occurrence's position.
			c.warnf(pairPos, "duplicate key %q, the last value wins", key)

			m.Pairs[at].Value = value

			continue
		}

		index[key] = len(m.Pairs)
		m.Pairs = append(m.Pairs, Pair{Key: key, Value: value})
	}

	return m
}

func (c *converter) sequence(n *ast.SequenceNode) Node {
	s := &Sequence{meta: meta{pos: nodePosition(n)}}

	for _, item := range n.Values {
		groups := []*ast.CommentGroupNode{item.GetComment()}
		itemPos := nodePosition(item)

		value := c.node(item)
		if value == nil {
			value = &Scalar{meta: meta{pos: itemPos}, Type: NullType, Value: "null"}
		}

		attachComments(value, itemPos, groups)

		s.Items = append(s.Items, value)
	}

	return s
}

func (c *converter) scalar(n ast.Node) Node {
	pos := nodePosition(n)
	sc := &Scalar{meta: meta{pos: pos}}

	switch v := n.(type) {
	case *ast.IntegerNode:
		sc.Type = IntType
		sc.Value = tokenValue(n)
		sc.Raw = rawText(n)
	case *ast.FloatNode, *ast.InfinityNode, *ast.NanNode:
		sc.Type = FloatType
		sc.Value = tokenValue(n)
		sc.Raw = rawText(n)
	case *ast.BoolNode:
		sc.Type = BoolType
		sc.Value = tokenValue(n)
		sc.Raw = rawText(n)
	case *ast.NullNode:
		sc.Type = NullType
		sc.Value = "null"
		sc.Raw = rawText(n)
	case *ast.StringNode:
		sc.Type = StringType
		sc.Value = v.Value
		sc.Raw = rawText(n)
	case *ast.LiteralNode:
		sc.Type = StringType
		if v.Value != nil {
			sc.Value = v.Value.Value
		}

		sc.Raw = sc.Value
	default:
		sc.Type = StringType
		sc.Value = tokenValue(n)
		sc.Raw = rawText(n)
	}

	// Attach comments the parser placed directly on the scalar, e.g. a
	// document whose root is a commented scalar.
	attachComments(sc, pos, []*ast.CommentGroupNode{n.GetComment()})

	return sc
}

// attachComments classifies the comment lines of the given groups against
// the node's line: same line is a trailing comment, earlier lines are
// leading comments. Comment lines after the node belong to other nodes and
// are dropped. Each comment run ends up attached to at most one node.
func attachComments(n Node, pos Position, groups []*ast.CommentGroupNode) {
	m := metaOf(n)
	seen := make(map[*ast.CommentGroupNode]bool)

	for _, group := range groups {
		if group == nil || seen[group] {
			continue
		}

		seen[group] = true

		for _, comment := range group.Comments {
			if comment == nil || comment.Token == nil || comment.Token.Position == nil {
				continue
			}

			line := comment.Token.Position.Line
			text := comment.Token.Value

			switch {
			case line < pos.Line:
				m.leading = append(m.leading, Comment{Text: text, Line: line})
			case line == pos.Line && m.trailing == nil:
				m.trailing = &Comment{Text: text, Line: line}
			}
		}
	}
}

// commentGroups collects every comment group reachable from a mapping
// entry: the entry itself, its value, and its key.
func commentGroups(mvn *ast.MappingValueNode) []*ast.CommentGroupNode {
	groups := []*ast.CommentGroupNode{mvn.GetComment()}

	if mvn.Value != nil {
		groups = append(groups, mvn.Value.GetComment())
	}

	if keyNode, ok := mvn.Key.(ast.Node); ok {
		groups = append(groups, keyNode.GetComment())
	}

	return groups
}

func metaOf(n Node) *meta {
	switch v := n.(type) {
	case *Mapping:
		return &v.meta
	case *Sequence:
		return &v.meta
	case *Scalar:
		return &v.meta
	}

	return nil
}

func nodePosition(n ast.Node) Position {
	if n == nil {
		return Position{Line: 1, Column: 1}
	}

	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return Position{Line: 1, Column: 1}
	}

	return Position{Line: tok.Position.Line, Column: tok.Position.Column}
}

// tokenValue returns the interpreted token text: quotes removed for
// strings, source text as typed for numbers and booleans.
func tokenValue(n ast.Node) string {
	if n == nil {
		return ""
	}

	tok := n.GetToken()
	if tok == nil {
		return ""
	}

	return tok.Value
}

// rawText returns the verbatim source text of a node's token.
func rawText(n ast.Node) string {
	if n == nil {
		return ""
	}

	tok := n.GetToken()
	if tok == nil {
		return ""
	}

	return strings.TrimSpace(tok.Origin)
}

// tabIndent returns the position of the first line whose indentation
// starts with a tab. YAML forbids tabs as structural indentation; a tab
// after leading spaces is left for the parser to judge, since it may be
// block scalar content.
func tabIndent(src []byte) *Position {
	line := 1
	col := 1
	atIndent := true

	for _, b := range src {
		switch {
		case b == '\n':
			line++
			col = 1
			atIndent = true

			continue
		case atIndent && b == '\t':
			return &Position{Line: line, Column: col}
		default:
			atIndent = false
		}

		col++
	}

	return nil
}

func isBlank(src []byte) bool {
	for _, b := range src {
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return false
		}
	}

	return true
}

// errorPosition recovers the source position from a goccy parse error,
// either from the error's token or from the "[line:column]" prefix in its
// message.
func errorPosition(err error) Position {
	var holder interface{ GetToken() *token.Token }
	if errors.As(err, &holder) {
		if tok := holder.GetToken(); tok != nil && tok.Position != nil {
			return Position{Line: tok.Position.Line, Column: tok.Position.Column}
		}
	}

	if m := errPositionRegex.FindStringSubmatch(err.Error()); m != nil {
		var line, col int

		fmt.Sscanf(m[1], "%d", &line)
		fmt.Sscanf(m[2], "%d", &col)

		return Position{Line: line, Column: col}
	}

	return Position{Line: 1, Column: 1}
}

// trimPositionPrefix drops a leading "[line:column] " marker from a goccy
// error message so the position is not reported twice.
func trimPositionPrefix(msg string) string {
	trimmed := strings.TrimSpace(msg)
	if loc := errPositionRegex.FindStringIndex(trimmed); loc != nil && loc[0] == 0 {
		return strings.TrimSpace(trimmed[loc[1]:])
	}

	return trimmed
}
