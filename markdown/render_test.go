package markdown_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/purpleclay/yam/annotate"
	"github.com/purpleclay/yam/markdown"
	"github.com/purpleclay/yam/plan"
	"github.com/purpleclay/yam/stringtest"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tables := []plan.Table{
		{
			Rows: []plan.Row{
				{
					Key:         "replicaCount",
					Type:        annotate.TagInteger,
					Default:     "1",
					Description: "Number of replicas to run",
				},
				{
					Key:         "image.repository",
					Type:        annotate.TagString,
					Default:     "nginx",
					Description: "container image",
				},
				{
					Key:     "image.tag",
					Type:    annotate.TagString,
					Default: "1.25",
				},
			},
		},
	}

	want := stringtest.Doc(
		"| Key | Type | Default | Description |",
		"| --- | --- | --- | --- |",
		"| replicaCount | integer | 1 | Number of replicas to run |",
		"| image.repository | string | nginx | container image |",
		"| image.tag | string | 1.25 |  |",
	)

	assert.Equal(t, want, markdown.Render(tables))
}

func TestRenderOmitsDescriptionColumn(t *testing.T) {
	t.Parallel()

	tables := []plan.Table{
		{
			Rows: []plan.Row{
				{Key: "port", Type: annotate.TagInteger, Default: "80"},
				{Key: "host", Type: annotate.TagString, Default: "localhost"},
			},
		},
	}

	want := stringtest.Doc(
		"| Key | Type | Default |",
		"| --- | --- | --- |",
		"| port | integer | 80 |",
		"| host | string | localhost |",
	)

	assert.Equal(t, want, markdown.Render(tables))
}

func TestRenderSubTableHeadingAndLink(t *testing.T) {
	t.Parallel()

	tables := []plan.Table{
		{
			Rows: []plan.Row{
				{Key: "image", Type: annotate.TagObject, Link: "image"},
			},
		},
		{
			Path: "image",
			Rows: []plan.Row{
				{Key: "tag", Type: annotate.TagString, Default: "latest"},
			},
		},
	}

	want := stringtest.Doc(
		"| Key | Type | Default |",
		"| --- | --- | --- |",
		"| [image](#image) | object |  |",
		"",
		"### image",
		"",
		"| Key | Type | Default |",
		"| --- | --- | --- |",
		"| tag | string | latest |",
	)

	assert.Equal(t, want, markdown.Render(tables))
}

func TestRenderIndexedLinkAnchor(t *testing.T) {
	t.Parallel()

	tables := []plan.Table{
		{
			Rows: []plan.Row{
				{Key: "servers[0]", Type: annotate.TagObject, Link: "servers[0]"},
			},
		},
	}

	got := markdown.Render(tables)

	assert.Contains(t, got, "[servers[0]](#servers0)")
}

func TestRenderEscapesCells(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		row  plan.Row
		want string
	}{
		"pipe in description": {
			row: plan.Row{
				Key:         "cmd",
				Type:        annotate.TagString,
				Default:     "sh",
				Description: "runs a | separated pipeline",
			},
			want: `| cmd | string | sh | runs a \| separated pipeline |`,
		},
		"newline collapses to space": {
			row: plan.Row{
				Key:         "note",
				Type:        annotate.TagString,
				Default:     "x",
				Description: "first\nsecond",
			},
			want: "| note | string | x | first second |",
		},
		"pipe in default": {
			row: plan.Row{
				Key:     "pattern",
				Type:    annotate.TagString,
				Default: "a|b",
			},
			want: "| pattern | string | `a\\|b` |",
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := markdown.Render([]plan.Table{{Rows: []plan.Row{tc.row}}})
			assert.Contains(t, got, tc.want)
		})
	}
}

func TestRenderDefaultCodeSpans(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		value string
		want  string
	}{
		"plain value untouched":      {value: "nginx", want: "| nginx |"},
		"empty mapping":              {value: "{}", want: "| `{}` |"},
		"empty sequence":             {value: "[]", want: "| `[]` |"},
		"glob pattern":               {value: "*.yaml", want: "| `*.yaml` |"},
		"backtick uses double fence": {value: "a`b", want: "| `` a`b `` |"},
		"surrounding whitespace":     {value: " padded ", want: "| ` padded ` |"},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := markdown.Render([]plan.Table{{
				Rows: []plan.Row{{Key: "k", Type: annotate.TagString, Default: tc.value}},
			}})
			assert.Contains(t, got, tc.want)
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	tables := []plan.Table{
		{
			Rows: []plan.Row{
				{Key: "a", Type: annotate.TagInteger, Default: "1", Description: "first"},
				{Key: "b", Type: annotate.TagString, Default: "two"},
			},
		},
		{
			Path: "sub",
			Rows: []plan.Row{
				{Key: "c", Type: annotate.TagBoolean, Default: "true"},
			},
		},
	}

	assert.Equal(t, markdown.Render(tables), markdown.Render(tables))
}

// The rendered output must be valid GFM: goldmark with the table extension
// should recognize every planned table as a table, not as paragraphs.
func TestRenderProducesValidTables(t *testing.T) {
	t.Parallel()

	tables := []plan.Table{
		{
			Rows: []plan.Row{
				{Key: "replicaCount", Type: annotate.TagInteger, Default: "1", Description: "replicas | count"},
				{Key: "resources", Type: annotate.TagObject, Default: "{}"},
			},
		},
		{
			Path: "image",
			Rows: []plan.Row{
				{Key: "tag", Type: annotate.TagString, Default: "latest"},
			},
		},
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	var html bytes.Buffer
	require.NoError(t, md.Convert([]byte(markdown.Render(tables)), &html))

	out := html.String()
	assert.Equal(t, 2, bytes.Count(html.Bytes(), []byte("<table>")))
	assert.Contains(t, out, "<h3")
	assert.Contains(t, out, "<td>replicaCount</td>")
	assert.Contains(t, out, "replicas | count")
}
