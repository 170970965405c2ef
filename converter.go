package yam

import (
	"errors"
	"fmt"

	"github.com/purpleclay/yam/annotate"
	"github.com/purpleclay/yam/document"
	"github.com/purpleclay/yam/markdown"
	"github.com/purpleclay/yam/plan"
)

// Sentinel errors returned by the converter and its CLI configuration.
var (
	ErrInvalidYAML   = errors.New("invalid yaml")
	ErrInvalidOption = errors.New("invalid option")
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
)

// Converter turns YAML documents into markdown tables.
type Converter struct {
	title            string
	maxSequenceItems int
	documentedTables bool
}

// Option configures a Converter.
type Option func(*Converter)

// NewConverter creates a Converter with the given options.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		maxSequenceItems: plan.DefaultMaxSequenceItems,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithMaxSequenceItems caps how many sequence elements appear in a compact
// inline rendering before truncation.
func WithMaxSequenceItems(n int) Option {
	return func(c *Converter) {
		c.maxSequenceItems = n
	}
}

// WithDocumentedTables spawns a linked sub-table for nested mappings whose
// subtree carries documentation, instead of flattening everything into one
// table.
func WithDocumentedTables(enabled bool) Option {
	return func(c *Converter) {
		c.documentedTables = enabled
	}
}

// WithTitle adds a top-level heading above the generated tables.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.title = title
	}
}

// Result is the outcome of converting one document: the rendered markdown
// and any non-fatal diagnostics collected while parsing.
type Result struct {
	Markdown    string
	Diagnostics []document.Diagnostic
}

// Convert runs the full pipeline over one YAML document: parse, extract
// context, plan tables, render markdown. Fatal parse failures wrap
// [ErrInvalidYAML] and carry the offending source position; empty input
// yields an empty result.
func (c *Converter) Convert(src []byte) (*Result, error) {
	doc, err := document.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	tree := annotate.Extract(doc)

	tables := plan.Build(tree, plan.Options{
		MaxSequenceItems: c.maxSequenceItems,
		DocumentedTables: c.documentedTables,
	})

	out := markdown.Render(tables)
	if c.title != "" && out != "" {
		out = "# " + c.title + "\n\n" + out
	}

	return &Result{Markdown: out, Diagnostics: doc.Diagnostics}, nil
}
