package annotate

import (
	"fmt"

	"github.com/purpleclay/yam/document"
)

// TypeTag names the resolved type of a node, using YAML vocabulary rather
// than JSON Schema vocabulary (float, not number).
type TypeTag string

const (
	TagString  TypeTag = "string"
	TagInteger TypeTag = "integer"
	TagFloat   TypeTag = "float"
	TagBoolean TypeTag = "boolean"
	TagNull    TypeTag = "null"
	TagObject  TypeTag = "object"
	TagArray   TypeTag = "array"
)

// Context is the semantic metadata extracted for one node: the prose that
// documents it, its resolved type, and its rendered default value. A leaf
// node always has a default; non-empty containers never do, since their
// children expand into rows of their own.
type Context struct {
	Path        string
	Type        TypeTag
	Description string
	Default     string
	HasDefault  bool
}

// Tree is the Context layer over a Document Tree. Contexts are keyed by
// node path, keeping the parsed tree and its semantic interpretation
// independent. Paths records every path in source walk order.
type Tree struct {
	Doc      *document.Document
	Contexts map[string]Context
	Paths    []string
}

// Context returns the context for the node at the given path.
func (t *Tree) Context(path string) Context {
	return t.Contexts[path]
}

// Extract walks the Document Tree and derives a [Context] for every node.
// It is a total function: absent comments simply yield an empty
// description, and extraction never fails.
func Extract(doc *document.Document) *Tree {
	t := &Tree{
		Doc:      doc,
		Contexts: make(map[string]Context),
	}

	if doc != nil && doc.Root != nil {
		t.walk(doc.Root, "")
	}

	return t
}

func (t *Tree) walk(n document.Node, path string) {
	ctx := Context{
		Path:        path,
		Description: describe(n),
	}

	switch v := n.(type) {
	case *document.Mapping:
		ctx.Type = TagObject
		if len(v.Pairs) == 0 {
			ctx.Default = "{}"
			ctx.HasDefault = true
		}

	case *document.Sequence:
		ctx.Type = TagArray
		if len(v.Items) == 0 {
			ctx.Default = "[]"
			ctx.HasDefault = true
		}

	case *document.Scalar:
		ctx.Type = scalarTag(v.Type)
		ctx.Default = v.Value
		ctx.HasDefault = true
	}

	t.Contexts[path] = ctx
	t.Paths = append(t.Paths, path)

	switch v := n.(type) {
	case *document.Mapping:
		for _, pair := range v.Pairs {
			t.walk(pair.Value, JoinPath(path, pair.Key))
		}

	case *document.Sequence:
		for i, item := range v.Items {
			t.walk(item, IndexPath(path, i))
		}
	}
}

func scalarTag(st document.ScalarType) TypeTag {
	switch st {
	case document.IntType:
		return TagInteger
	case document.FloatType:
		return TagFloat
	case document.BoolType:
		return TagBoolean
	case document.NullType:
		return TagNull
	case document.StringType:
		return TagString
	}

	return TagString
}

// JoinPath appends a mapping key to a parent path with a dot separator.
func JoinPath(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}

// IndexPath appends a sequence index to a parent path as "[n]".
func IndexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
