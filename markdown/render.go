package markdown

import (
	"strings"

	"github.com/purpleclay/yam/plan"
)

// Render serializes a table plan to markdown text. Output is deterministic:
// identical plans always produce byte-identical markdown, so generated
// documentation can be checked for freshness with a plain diff.
//
// Each sub-table gets a path-derived heading; the root table has none. The
// Description column is omitted from tables in which no row has a
// description. Pipes inside cells are escaped, newlines inside
// descriptions collapse to a single space, and defaults that markdown
// would mangle are wrapped in code spans.
func Render(tables []plan.Table) string {
	var sb strings.Builder

	for i, table := range tables {
		if i > 0 {
			sb.WriteString("\n")
		}

		renderTable(&sb, table)
	}

	return sb.String()
}

func renderTable(sb *strings.Builder, table plan.Table) {
	if table.Path != "" {
		sb.WriteString("### ")
		sb.WriteString(escapeCell(table.Path))
		sb.WriteString("\n\n")
	}

	described := false

	for _, row := range table.Rows {
		if row.Description != "" {
			described = true

			break
		}
	}

	if described {
		sb.WriteString("| Key | Type | Default | Description |\n")
		sb.WriteString("| --- | --- | --- | --- |\n")
	} else {
		sb.WriteString("| Key | Type | Default |\n")
		sb.WriteString("| --- | --- | --- |\n")
	}

	for _, row := range table.Rows {
		cells := []string{keyCell(row), string(row.Type), defaultCell(row.Default)}
		if described {
			cells = append(cells, escapeCell(row.Description))
		}

		sb.WriteString("| ")
		sb.WriteString(strings.Join(cells, " | "))
		sb.WriteString(" |\n")
	}
}

// keyCell renders a row's key, as a link when the row points at a
// sub-table.
func keyCell(row plan.Row) string {
	key := escapeCell(row.Key)
	if row.Link == "" {
		return key
	}

	return "[" + key + "](#" + anchor(row.Link) + ")"
}

// defaultCell renders a default value, wrapping it in a code span when it
// contains characters markdown would otherwise interpret.
func defaultCell(value string) string {
	if value == "" {
		return ""
	}

	escaped := escapeCell(value)
	if !needsCodeSpan(value) {
		return escaped
	}

	if strings.Contains(value, "`") {
		return "`` " + escaped + " ``"
	}

	return "`" + escaped + "`"
}

func needsCodeSpan(value string) bool {
	return strings.ContainsAny(value, "`|*_<>{}[]") || value != strings.TrimSpace(value)
}

// escapeCell makes arbitrary text safe inside a markdown table cell.
// Table cells are single-line, so newlines collapse to one space.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")

	return strings.ReplaceAll(s, "|", `\|`)
}

// anchor derives the GitHub-style anchor for a sub-table heading: lower
// case, spaces to hyphens, punctuation dropped.
func anchor(heading string) string {
	var sb strings.Builder

	for _, r := range strings.ToLower(heading) {
		switch {
		case r == ' ':
			sb.WriteRune('-')
		case r == '-' || r == '_':
			sb.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
