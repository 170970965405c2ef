// Package yam converts YAML documents into markdown tables describing
// their structure: keys, inferred types, default values, and descriptions
// recovered from the comments that document each field.
//
// The conversion is context-aware: plain YAML parsing discards authorial
// intent, so yam uses a comment-preserving parser and a deterministic
// association pass to recover which comment documents which key, and a
// table planner to decide how deeply nested structures flatten into rows.
// The primary use case is configuration files such as Helm chart
// values.yaml, where comments annotate fields and nesting represents
// logical grouping.
//
// # Pipeline
//
// [Converter.Convert] runs one document through four stages, each a pure
// transformation consuming the previous stage's immutable output:
//
//  1. Parse: [github.com/purpleclay/yam/document] turns the input into a
//     Document Tree of mappings, sequences, and typed scalars, annotated
//     with source positions and adjacent comments. Duplicate keys,
//     aliases, and merge keys produce non-fatal diagnostics; malformed
//     input aborts the document with a position-carrying error.
//
//  2. Extract: [github.com/purpleclay/yam/annotate] attaches a Context to
//     every node: a description from its adjacent comments, a resolved
//     type, a rendered default for leaves, and a unique key path.
//     Extraction is total and never fails.
//
//  3. Plan: [github.com/purpleclay/yam/plan] decides table boundaries.
//     Nested structures flatten into dot-joined rows by default; with
//     [WithDocumentedTables], documented subtrees become linked
//     sub-tables. Row order is always source order.
//
//  4. Render: [github.com/purpleclay/yam/markdown] serializes the plan to
//     GitHub-flavored markdown. Output is deterministic, so regenerated
//     documentation can be diffed for freshness in CI.
//
// The pipeline is synchronous and single-threaded per document; batch
// callers may process many documents in parallel with independent
// pipeline instances, since no state is shared between conversions.
//
// # Errors
//
// The package defines four sentinel errors for use with [errors.Is]:
//
//   - [ErrInvalidYAML]: the input is not valid YAML (fatal per document).
//   - [ErrInvalidOption]: a configuration value is invalid.
//   - [ErrReadInput]: an I/O error occurred reading input.
//   - [ErrWriteOutput]: an I/O error occurred writing output.
//
// Fatal parse errors carry the originating source position via
// [document.LexError] and [document.ParseError]. Non-fatal findings are
// returned as [document.Diagnostic] values on the [Result] rather than
// aborting the conversion.
//
// # Basic Usage
//
//	conv := yam.NewConverter()
//	res, err := conv.Convert(yamlBytes)
//	fmt.Print(res.Markdown)
//
// # With Options
//
//	conv := yam.NewConverter(
//	    yam.WithTitle("Values"),
//	    yam.WithDocumentedTables(true),
//	    yam.WithMaxSequenceItems(3),
//	)
//
// # Config-Based Usage
//
//	cfg := yam.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//	_ = cfg.RegisterCompletions(rootCmd)
//
//	conv, err := cfg.NewConverter()
package yam
