// Package annotate attaches a [Context] to every node of a Document Tree:
// a description derived from adjacent comments, a resolved [TypeTag], a
// rendered default value for leaves, and a unique dot/bracket key path.
//
// Comment association follows the documentation conventions of
// configuration files such as Helm values.yaml: the contiguous comment run
// directly above a key documents it, and a comment on the key's own line
// is a fallback when no leading run exists. Extraction is total and keeps
// the Context layer separate from the parsed tree, referencing nodes by
// path so parsing and interpretation stay independently testable.
package annotate
