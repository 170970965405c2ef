package plan

import (
	"strings"

	"github.com/purpleclay/yam/annotate"
	"github.com/purpleclay/yam/document"
)

// DefaultMaxSequenceItems caps how many sequence elements are shown in a
// compact inline rendering before truncation.
const DefaultMaxSequenceItems = 5

// Options controls table boundaries.
type Options struct {
	// MaxSequenceItems caps compact sequence renderings. Values below 1
	// fall back to [DefaultMaxSequenceItems].
	MaxSequenceItems int

	// DocumentedTables spawns a linked sub-table for each non-empty
	// mapping whose subtree contains at least one documented leaf. When
	// false (the default), every nested structure is flattened into its
	// parent table with dot-joined keys. Undocumented subtrees are always
	// flattened, in either mode.
	DocumentedTables bool
}

// Row is one line of a planned table.
type Row struct {
	Key         string
	Default     string
	Description string

	// Link is the path of the sub-table this row points at, or empty.
	Link string

	Type annotate.TypeTag
}

// Table is one planned markdown table, rooted at Path. The root table has
// an empty path.
type Table struct {
	Path string
	Rows []Row
}

// Build projects an annotated tree into an ordered table plan. The root
// node always starts the first table; sub-tables follow in the order their
// roots appear in the source. Row order within a table is source order.
func Build(tree *annotate.Tree, opts Options) []Table {
	if tree == nil || tree.Doc == nil || tree.Doc.Root == nil {
		return nil
	}

	if opts.MaxSequenceItems < 1 {
		opts.MaxSequenceItems = DefaultMaxSequenceItems
	}

	b := &builder{tree: tree, opts: opts}
	b.queue = append(b.queue, pending{node: tree.Doc.Root, path: ""})

	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]

		table := Table{Path: next.path}
		b.addRows(&table, next.node, next.path, "")

		b.tables = append(b.tables, table)
	}

	return b.tables
}

type pending struct {
	node document.Node
	path string
}

type builder struct {
	tree   *annotate.Tree
	tables []Table
	queue  []pending
	opts   Options
}

// addRows appends one row per direct child of n, flattening undocumented
// nested structures in place. The rel prefix is the dot-joined key path
// relative to the table root.
func (b *builder) addRows(table *Table, n document.Node, path, rel string) {
	switch v := n.(type) {
	case *document.Mapping:
		for _, pair := range v.Pairs {
			b.child(table, pair.Value, annotate.JoinPath(path, pair.Key), joinKey(rel, pair.Key))
		}

	case *document.Sequence:
		for i, item := range v.Items {
			b.child(table, item, annotate.IndexPath(path, i), annotate.IndexPath(rel, i))
		}

	case *document.Scalar:
		b.leafRow(table, path, rel)
	}
}

func (b *builder) child(table *Table, n document.Node, path, key string) {
	switch v := n.(type) {
	case *document.Scalar:
		b.leafRow(table, path, key)

	case *document.Mapping:
		if len(v.Pairs) == 0 {
			b.leafRow(table, path, key)

			return
		}

		if b.opts.DocumentedTables && b.documented(v, path) {
			ctx := b.tree.Context(path)
			table.Rows = append(table.Rows, Row{
				Key:         key,
				Type:        annotate.TagObject,
				Description: ctx.Description,
				Link:        path,
			})

			b.queue = append(b.queue, pending{node: v, path: path})

			return
		}

		b.addRows(table, v, path, key)

	case *document.Sequence:
		b.sequenceChild(table, v, path, key)
	}
}

func (b *builder) sequenceChild(table *Table, seq *document.Sequence, path, key string) {
	if len(seq.Items) == 0 {
		b.leafRow(table, path, key)

		return
	}

	if allScalars(seq) {
		ctx := b.tree.Context(path)
		table.Rows = append(table.Rows, Row{
			Key:         key,
			Type:        annotate.TagArray,
			Default:     b.compact(seq, path),
			Description: ctx.Description,
		})

		return
	}

	// Container elements dispatch one by one: a documented mapping element
	// spawns its own indexed sub-table behind a linked row, everything else
	// flattens inline.
	b.addRows(table, seq, path, key)
}

func (b *builder) leafRow(table *Table, path, key string) {
	ctx := b.tree.Context(path)

	table.Rows = append(table.Rows, Row{
		Key:         key,
		Type:        ctx.Type,
		Default:     ctx.Default,
		Description: ctx.Description,
	})
}

// documented reports whether the subtree rooted at n contains at least one
// leaf with a non-empty description. Scalars and empty containers are the
// leaves.
func (b *builder) documented(n document.Node, path string) bool {
	switch v := n.(type) {
	case *document.Scalar:
		return b.tree.Context(path).Description != ""

	case *document.Mapping:
		if len(v.Pairs) == 0 {
			return b.tree.Context(path).Description != ""
		}

		for _, pair := range v.Pairs {
			if b.documented(pair.Value, annotate.JoinPath(path, pair.Key)) {
				return true
			}
		}

	case *document.Sequence:
		if len(v.Items) == 0 {
			return b.tree.Context(path).Description != ""
		}

		for i, item := range v.Items {
			if b.documented(item, annotate.IndexPath(path, i)) {
				return true
			}
		}
	}

	return false
}

// compact renders the first MaxSequenceItems elements of an all-scalar
// sequence, with an ellipsis marker when truncated.
func (b *builder) compact(seq *document.Sequence, path string) string {
	var parts []string

	for i := range seq.Items {
		if i == b.opts.MaxSequenceItems {
			parts = append(parts, "…")

			break
		}

		parts = append(parts, b.tree.Context(annotate.IndexPath(path, i)).Default)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func allScalars(seq *document.Sequence) bool {
	for _, item := range seq.Items {
		if _, ok := item.(*document.Scalar); !ok {
			return false
		}
	}

	return true
}

func joinKey(rel, key string) string {
	if rel == "" {
		return key
	}

	return rel + "." + key
}
