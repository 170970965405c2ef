// Package document parses a single YAML document into a Document Tree: a
// closed union of [Mapping], [Sequence], and [Scalar] nodes annotated with
// source positions and the comments adjacent to each node.
//
// Parsing is built on [github.com/goccy/go-yaml], which preserves the
// comment and position information that conventional YAML parsers discard.
// [Parse] translates the goccy AST into the Node union, classifying each
// comment line as leading (on lines before the node) or trailing (on the
// same line), and collecting non-fatal [Diagnostic] values for duplicate
// keys, aliases kept as literals, and skipped merge keys.
//
// The Document Tree is a strict ownership tree: each node is owned by
// exactly one parent and is never mutated after [Parse] returns. Later
// stages attach semantic metadata by node path rather than by reference.
package document
