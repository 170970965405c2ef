// Package plan decides table boundaries for an annotated Document Tree so
// that output stays readable for deeply nested documents. The root node
// always starts the first table. Nested structures are flattened into
// their parent table with dot-joined keys by default; with
// [Options.DocumentedTables] enabled, a nested mapping whose subtree
// carries documentation becomes a linked sub-table of its own, while
// purely structural nesting still flattens rather than spawning noise
// tables. Row order is always source order.
package plan
