package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purpleclay/yam/annotate"
	"github.com/purpleclay/yam/document"
	"github.com/purpleclay/yam/plan"
	"github.com/purpleclay/yam/stringtest"
)

func build(t *testing.T, src string, opts plan.Options) []plan.Table {
	t.Helper()

	doc, err := document.Parse([]byte(src))
	require.NoError(t, err)

	return plan.Build(annotate.Extract(doc), opts)
}

func rowKeys(table plan.Table) []string {
	var keys []string
	for _, row := range table.Rows {
		keys = append(keys, row.Key)
	}

	return keys
}

func TestBuildFlattensNestedMappings(t *testing.T) {
	t.Parallel()

	tables := build(t, stringtest.Doc(
		"# Number of replicas to run",
		"replicaCount: 1",
		"image:",
		"  repository: nginx # container image",
		"  tag: \"1.25\"",
	), plan.Options{})

	require.Len(t, tables, 1)
	assert.Empty(t, tables[0].Path)
	assert.Equal(t, []string{"replicaCount", "image.repository", "image.tag"}, rowKeys(tables[0]))

	rows := tables[0].Rows
	assert.Equal(t, annotate.TagInteger, rows[0].Type)
	assert.Equal(t, "1", rows[0].Default)
	assert.Equal(t, "Number of replicas to run", rows[0].Description)

	assert.Equal(t, annotate.TagString, rows[1].Type)
	assert.Equal(t, "nginx", rows[1].Default)
	assert.Equal(t, "container image", rows[1].Description)

	assert.Equal(t, annotate.TagString, rows[2].Type)
	assert.Equal(t, "1.25", rows[2].Default)
	assert.Empty(t, rows[2].Description)
}

func TestBuildDocumentedTables(t *testing.T) {
	t.Parallel()

	tables := build(t, stringtest.Doc(
		"replicaCount: 1",
		"image:",
		"  repository: nginx # container image",
		"  tag: \"1.25\"",
	), plan.Options{DocumentedTables: true})

	require.Len(t, tables, 2)

	root := tables[0]
	assert.Empty(t, root.Path)
	assert.Equal(t, []string{"replicaCount", "image"}, rowKeys(root))
	assert.Equal(t, annotate.TagObject, root.Rows[1].Type)
	assert.Equal(t, "image", root.Rows[1].Link)

	sub := tables[1]
	assert.Equal(t, "image", sub.Path)
	assert.Equal(t, []string{"repository", "tag"}, rowKeys(sub))
	assert.Equal(t, "container image", sub.Rows[0].Description)
}

func TestBuildUndocumentedSubtreeNeverSpawns(t *testing.T) {
	t.Parallel()

	tables := build(t, stringtest.Doc(
		"a:",
		"  b:",
		"    c: 1",
	), plan.Options{DocumentedTables: true})

	require.Len(t, tables, 1)
	assert.Equal(t, []string{"a.b.c"}, rowKeys(tables[0]))
	assert.Empty(t, tables[0].Rows[0].Link)
}

func TestBuildEmptyContainersAreLeaves(t *testing.T) {
	t.Parallel()

	tables := build(t, stringtest.Doc(
		"resources: {}",
		"extraEnv: []",
	), plan.Options{})

	require.Len(t, tables, 1)
	require.Len(t, tables[0].Rows, 2)

	assert.Equal(t, annotate.TagObject, tables[0].Rows[0].Type)
	assert.Equal(t, "{}", tables[0].Rows[0].Default)
	assert.Equal(t, annotate.TagArray, tables[0].Rows[1].Type)
	assert.Equal(t, "[]", tables[0].Rows[1].Default)
}

func TestBuildScalarSequences(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		opts  plan.Options
		want  string
	}{
		"compact inline": {
			input: stringtest.Doc(
				"ports:",
				"  - 80",
				"  - 443",
			),
			want: "[80, 443]",
		},
		"truncated with ellipsis": {
			input: stringtest.Doc(
				"ports:",
				"  - 80",
				"  - 443",
				"  - 8080",
			),
			opts: plan.Options{MaxSequenceItems: 2},
			want: "[80, 443, …]",
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tables := build(t, tc.input, tc.opts)

			require.Len(t, tables, 1)
			require.Len(t, tables[0].Rows, 1)

			row := tables[0].Rows[0]
			assert.Equal(t, "ports", row.Key)
			assert.Equal(t, annotate.TagArray, row.Type)
			assert.Equal(t, tc.want, row.Default)
		})
	}
}

func TestBuildContainerSequenceFlattens(t *testing.T) {
	t.Parallel()

	tables := build(t, stringtest.Doc(
		"servers:",
		"  - host: alpha",
		"  - host: beta",
	), plan.Options{})

	require.Len(t, tables, 1)
	assert.Equal(t, []string{"servers[0].host", "servers[1].host"}, rowKeys(tables[0]))
}

func TestBuildDocumentedSequenceElements(t *testing.T) {
	t.Parallel()

	tables := build(t, stringtest.Doc(
		"servers:",
		"  - host: alpha # primary",
		"  - host: beta",
	), plan.Options{DocumentedTables: true})

	// Only the documented element spawns; the undocumented one flattens
	// into the parent.
	require.Len(t, tables, 2)

	root := tables[0]
	assert.Equal(t, []string{"servers[0]", "servers[1].host"}, rowKeys(root))
	assert.Equal(t, annotate.TagObject, root.Rows[0].Type)
	assert.Equal(t, "servers[0]", root.Rows[0].Link)
	assert.Empty(t, root.Rows[1].Link)

	sub := tables[1]
	assert.Equal(t, "servers[0]", sub.Path)
	assert.Equal(t, []string{"host"}, rowKeys(sub))
	assert.Equal(t, "primary", sub.Rows[0].Description)
}

func TestBuildDocumentedSequenceMixedElements(t *testing.T) {
	t.Parallel()

	tables := build(t, stringtest.Doc(
		"items:",
		"  - host: alpha # primary",
		"  - 42",
	), plan.Options{DocumentedTables: true})

	require.Len(t, tables, 2)

	root := tables[0]
	assert.Equal(t, []string{"items[0]", "items[1]"}, rowKeys(root))
	assert.Equal(t, "items[0]", root.Rows[0].Link)
	assert.Equal(t, annotate.TagInteger, root.Rows[1].Type)
	assert.Equal(t, "42", root.Rows[1].Default)

	assert.Equal(t, "items[0]", tables[1].Path)
}

func TestBuildScalarRoot(t *testing.T) {
	t.Parallel()

	tables := build(t, "42\n", plan.Options{})

	require.Len(t, tables, 1)
	require.Len(t, tables[0].Rows, 1)

	row := tables[0].Rows[0]
	assert.Empty(t, row.Key)
	assert.Equal(t, annotate.TagInteger, row.Type)
	assert.Equal(t, "42", row.Default)
}

func TestBuildRowOrderFollowsSource(t *testing.T) {
	t.Parallel()

	tables := build(t, stringtest.Doc(
		"zebra: 1",
		"apple: 2",
		"mango: 3",
	), plan.Options{})

	require.Len(t, tables, 1)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, rowKeys(tables[0]))
}

func TestBuildEmptyDocument(t *testing.T) {
	t.Parallel()

	doc, err := document.Parse([]byte(""))
	require.NoError(t, err)

	assert.Nil(t, plan.Build(annotate.Extract(doc), plan.Options{}))
}
