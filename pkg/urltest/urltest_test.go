package urltest_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/weburl/pkg/urltest"
)

const vectors = `[
  "comment",
  {"input": "http://example.com/a", "base": null, "href": "http://example.com/a", "pathname": "/a"},
  {"input": "b", "base": "http://example.com/a/", "href": "http://example.com/a/b", "origin": "http://example.com"},
  {"input": "http:///", "base": null, "failure": true}
]`

func ptr(s string) *string { return &s }

func TestDecode(t *testing.T) {
	t.Parallel()

	cases, err := urltest.Decode([]byte(vectors))
	require.NoError(t, err)
	require.Len(t, cases, 3)

	assert.Equal(t, "http://example.com/a", cases[0].Input)
	assert.Nil(t, cases[0].Base)
	assert.Empty(t, cases[0].BaseURL())
	assert.Equal(t, 1, cases[0].Index)
	assert.Nil(t, cases[0].Origin)

	assert.Equal(t, "http://example.com/a/", cases[1].BaseURL())
	assert.True(t, cases[2].Failure)
	assert.Equal(t, 3, cases[2].Index)
}

func TestDecodeRejects(t *testing.T) {
	t.Parallel()

	_, err := urltest.Decode([]byte(`[{"input": `))
	require.ErrorIs(t, err, urltest.ErrInvalidJSON)

	tests := []struct {
		name, doc, field string
	}{
		{"not an array", `{"input": "x"}`, "(root)"},
		{"missing input", `[{"href": "http://x/"}]`, ""},
		{"neither href nor failure", `[{"input": "x"}]`, ""},
		{"bad port", `[{"input": "x", "href": "x", "port": "8a"}]`, ""},
		{"number item", `[42]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := urltest.Decode([]byte(tt.doc))
			require.ErrorIs(t, err, urltest.ErrSchema)

			var schemaErr *urltest.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.NotEmpty(t, schemaErr.Violations)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSchemaIsJSON(t *testing.T) {
	t.Parallel()

	schema := urltest.Schema()
	assert.Contains(t, string(schema), `"$schema"`)

	schema[0] = 'x'
	assert.Equal(t, byte('{'), urltest.Schema()[0])
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	plain := filepath.Join(dir, "vectors.json")
	require.NoError(t, os.WriteFile(plain, []byte(vectors), 0o600))

	var buf bytes.Buffer
	require.NoError(t, urltest.Compress(&buf, []byte(vectors)))

	packed := filepath.Join(dir, "vectors.json.lz4")
	require.NoError(t, os.WriteFile(packed, buf.Bytes(), 0o600))

	want, err := urltest.Open(plain)
	require.NoError(t, err)

	got, err := urltest.Open(packed)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = urltest.Open(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestRunCase(t *testing.T) {
	t.Parallel()

	out := urltest.RunCase(urltest.Case{Input: "http://example.com/a", Href: ptr("http://example.com/a"), Pathname: ptr("/a")})
	assert.True(t, out.Passed())
	require.NotNil(t, out.Got)
	assert.Equal(t, "example.com", out.Got.Host)

	out = urltest.RunCase(urltest.Case{Input: "http://example.com/a", Href: ptr("http://example.com/b"), Hash: ptr("")})
	assert.False(t, out.Passed())
	require.NoError(t, out.Err)
	require.Len(t, out.Mismatches, 1)
	assert.Equal(t, urltest.Mismatch{Field: "href", Want: "http://example.com/b", Got: "http://example.com/a"}, out.Mismatches[0])
	assert.Equal(t, `href: want "http://example.com/b", got "http://example.com/a"`, out.Mismatches[0].String())

	out = urltest.RunCase(urltest.Case{Input: "http://example.com/", Failure: true})
	assert.False(t, out.Passed())
	require.ErrorIs(t, out.Err, urltest.ErrUnexpectedSuccess)

	out = urltest.RunCase(urltest.Case{Input: "http:///", Failure: true})
	assert.True(t, out.Passed())

	out = urltest.RunCase(urltest.Case{Input: "http:///", Href: ptr("http:///")})
	assert.False(t, out.Passed())
	require.Error(t, out.Err)

	out = urltest.RunCase(urltest.Case{Input: "a", Base: ptr("not a url"), Failure: true})
	assert.True(t, out.Passed())
}

func TestRunAndSummarize(t *testing.T) {
	t.Parallel()

	cases, err := urltest.Load(strings.NewReader(vectors))
	require.NoError(t, err)

	cases = append(cases, urltest.Case{Input: "http://x/", Href: ptr("http://y/")})

	outcomes, err := urltest.Run(context.Background(), cases)
	require.NoError(t, err)
	require.Len(t, outcomes, 4)

	assert.Equal(t, urltest.Summary{Total: 4, Passed: 3, Failed: 1}, urltest.Summarize(outcomes))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err = urltest.Run(ctx, cases)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outcomes)
}
