package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purpleclay/yam/markdown"
	"github.com/purpleclay/yam/stringtest"
)

func TestInject(t *testing.T) {
	t.Parallel()

	target := stringtest.Doc(
		"# My Chart",
		"",
		"Introduction.",
		"",
		"<!-- yam:begin -->",
		"stale content",
		"<!-- yam:end -->",
		"",
		"Footer.",
	)

	got, err := markdown.Inject([]byte(target), "| Key |\n| --- |\n", "", "")
	require.NoError(t, err)

	want := stringtest.Doc(
		"# My Chart",
		"",
		"Introduction.",
		"",
		"<!-- yam:begin -->",
		"| Key |",
		"| --- |",
		"<!-- yam:end -->",
		"",
		"Footer.",
	)

	assert.Equal(t, want, string(got))
}

func TestInjectIdempotent(t *testing.T) {
	t.Parallel()

	target := stringtest.Doc(
		"<!-- yam:begin -->",
		"<!-- yam:end -->",
	)

	once, err := markdown.Inject([]byte(target), "| Key |\n", "", "")
	require.NoError(t, err)

	twice, err := markdown.Inject(once, "| Key |\n", "", "")
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
}

func TestInjectCustomMarkers(t *testing.T) {
	t.Parallel()

	target := stringtest.Doc(
		"<!-- docs:start -->",
		"old",
		"<!-- docs:stop -->",
	)

	got, err := markdown.Inject([]byte(target), "new\n", "<!-- docs:start -->", "<!-- docs:stop -->")
	require.NoError(t, err)

	want := stringtest.Doc(
		"<!-- docs:start -->",
		"new",
		"<!-- docs:stop -->",
	)

	assert.Equal(t, want, string(got))
}

func TestInjectAddsTrailingNewline(t *testing.T) {
	t.Parallel()

	target := "<!-- yam:begin --><!-- yam:end -->"

	got, err := markdown.Inject([]byte(target), "| Key |", "", "")
	require.NoError(t, err)

	assert.Equal(t, "<!-- yam:begin -->\n| Key |\n<!-- yam:end -->", string(got))
}

func TestInjectMarkerErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"missing begin":     "no markers here\n<!-- yam:end -->\n",
		"missing end":       "<!-- yam:begin -->\nno end\n",
		"end before begin":  "<!-- yam:end -->\n<!-- yam:begin -->\n",
		"no markers at all": "plain markdown\n",
	}

	for name, target := range tcs {
		target := target
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := markdown.Inject([]byte(target), "x\n", "", "")
			assert.ErrorIs(t, err, markdown.ErrMarkerNotFound)
		})
	}
}
