package document

import "fmt"

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Comment is a single comment line with its source line number. Text is the
// comment content as written, without the leading "#" marker.
type Comment struct {
	Text string
	Line int
}

// Node is one node of the Document Tree. The set of implementations is
// closed: [*Mapping], [*Sequence], and [*Scalar]. Consumers switch
// exhaustively over these three kinds.
type Node interface {
	// Pos returns the node's position in the source text. For mapping
	// pairs this is the position of the key.
	Pos() Position

	// Leading returns comment lines that appear on lines before the node.
	Leading() []Comment

	// Trailing returns the comment on the same line as the node, or nil.
	Trailing() *Comment

	sealed()
}

// meta carries the source position and attached comments shared by every
// node kind.
type meta struct {
	pos      Position
	leading  []Comment
	trailing *Comment
}

func (m *meta) Pos() Position      { return m.pos }
func (m *meta) Leading() []Comment { return m.leading }
func (m *meta) Trailing() *Comment { return m.trailing }

// Mapping is an ordered set of key/value pairs. Insertion order is
// preserved; it drives output ordering.
type Mapping struct {
	meta
	Pairs []Pair
}

// Pair is one mapping entry. Comments documenting the entry are attached
// to the value node.
type Pair struct {
	Key   string
	Value Node
}

func (*Mapping) sealed() {}

// Sequence is an ordered list of nodes.
type Sequence struct {
	meta
	Items []Node
}

func (*Sequence) sealed() {}

// ScalarType identifies the inferred type of a scalar value.
type ScalarType int

const (
	StringType ScalarType = iota
	IntType
	FloatType
	BoolType
	NullType
)

func (t ScalarType) String() string {
	switch t {
	case StringType:
		return "string"
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case BoolType:
		return "bool"
	case NullType:
		return "null"
	}

	return "unknown"
}

// Scalar is a typed leaf. Value is the interpreted text (quotes removed,
// null normalized to "null"); Raw is the verbatim source text, retained
// because YAML scalar typing is ambiguous ("1.0" vs 1.0).
type Scalar struct {
	meta
	Type  ScalarType
	Value string
	Raw   string
}

func (*Scalar) sealed() {}

// Document is one parsed YAML document plus the non-fatal diagnostics
// collected while building it.
type Document struct {
	// Root is nil for empty or comment-only input.
	Root Node

	Diagnostics []Diagnostic
}

// Diagnostic is a non-fatal warning produced during parsing, such as a
// duplicate mapping key or an alias kept as a literal.
type Diagnostic struct {
	Message string
	Pos     Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// LexError reports malformed input that prevents tokenization: invalid
// UTF-8 or tab-based indentation. It aborts the whole document.
type LexError struct {
	Msg string
	Pos Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", e.Pos, e.Msg)
}

// ParseError reports structurally invalid YAML. It aborts the whole
// document and carries the offending source position.
type ParseError struct {
	Msg string
	Pos Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}
