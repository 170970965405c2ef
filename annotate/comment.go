package annotate

import (
	"strings"

	"github.com/purpleclay/yam/document"
)

// describe derives the description for a node from its attached comments.
// Leading comments are the primary documentation convention: the
// contiguous run of comment lines ending on the line directly above the
// node is joined in source order. A trailing comment on the node's own
// line is used only when no leading run exists.
func describe(n document.Node) string {
	if desc := leadingDescription(n); desc != "" {
		return desc
	}

	if trailing := n.Trailing(); trailing != nil {
		return cleanLine(trailing.Text)
	}

	return ""
}

// leadingDescription joins the adjacent leading comment run. A gap in line
// numbers (a blank line or an unrelated line between comments, or between
// the last comment and the node) breaks adjacency; earlier runs belong to
// no node and are ignored.
func leadingDescription(n document.Node) string {
	comments := n.Leading()
	if len(comments) == 0 {
		return ""
	}

	// Find the start of the contiguous run that ends at the node's line.
	start := -1
	next := n.Pos().Line

	for i := len(comments) - 1; i >= 0; i-- {
		if comments[i].Line != next-1 {
			break
		}

		start = i
		next = comments[i].Line
	}

	if start < 0 {
		return ""
	}

	var parts []string

	for _, comment := range comments[start:] {
		if line := cleanLine(comment.Text); line != "" {
			parts = append(parts, line)
		}
	}

	return strings.Join(parts, " ")
}

// cleanLine strips comment markers from one comment line: leading "#"
// characters, a single space, and a helm-docs style "-- " extraction
// marker.
func cleanLine(s string) string {
	s = strings.TrimSpace(s)
	for strings.HasPrefix(s, "#") {
		s = strings.TrimPrefix(s, "#")
	}

	s = strings.TrimPrefix(s, " ")

	if s == "--" {
		return ""
	}

	s = strings.TrimPrefix(s, "-- ")

	return strings.TrimSpace(s)
}
