// Package markdown serializes a table plan into GitHub-flavored markdown
// tables, and updates marked regions of existing markdown files in place
// via [Inject]. Rendering is deterministic and side-effect free.
package markdown
