// Package stringtest provides helpers for constructing expected test
// output with explicit line endings, keeping multi-line markdown
// expectations readable in test tables.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"| Key | Type | Default |",
//		"| --- | --- | --- |",
//	) // -> "| Key | Type | Default |\n| --- | --- | --- |"
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// Doc joins lines with LF endings and appends a trailing newline, matching
// the shape of a rendered document.
func Doc(lines ...string) string {
	return JoinLF(lines...) + "\n"
}
