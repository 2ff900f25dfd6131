package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/weburl/cmd/weburl/commands"
	"github.com/Sumatoshi-tech/weburl/internal/config"
	"github.com/Sumatoshi-tech/weburl/pkg/urltest"
	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

type record struct {
	Input            string             `json:"input"`
	URL              *weburl.Components `json:"url"`
	HostKind         string             `json:"host_kind"`
	ValidationErrors []struct {
		Kind string `json:"kind"`
	} `json:"validation_errors"`
	Error string `json:"error"`
}

func decodeRecords(t *testing.T, out string) []record {
	t.Helper()

	var recs []record

	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var rec record
		require.NoError(t, dec.Decode(&rec))

		recs = append(recs, rec)
	}

	return recs
}

func TestParse_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, commands.NewParseCommand(), "", "HTTPS://Example.COM:443/./a", "https://exa\tmple.com/")
	require.NoError(t, err)

	recs := decodeRecords(t, out)
	require.Len(t, recs, 2)

	require.NotNil(t, recs[0].URL)
	assert.Equal(t, "https://example.com/a", recs[0].URL.Href)
	assert.Equal(t, "https://example.com", recs[0].URL.Origin)
	assert.Equal(t, "domain", recs[0].HostKind)
	assert.Empty(t, recs[0].ValidationErrors)

	require.NotNil(t, recs[1].URL)
	assert.Equal(t, "https://example.com/", recs[1].URL.Href)
	require.NotEmpty(t, recs[1].ValidationErrors)
	assert.Equal(t, "tab-or-newline", recs[1].ValidationErrors[0].Kind)
}

func TestParse_Base(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, commands.NewParseCommand(), "", "--base", "http://h/a/b", "--format", "href", "c", "../d?q", "//other/")
	require.NoError(t, err)
	assert.Equal(t, "http://h/a/c\nhttp://h/d?q\nhttp://other/\n", out)
}

func TestParse_InvalidBase(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, commands.NewParseCommand(), "", "--base", "not a url", "c")
	require.ErrorIs(t, err, weburl.ErrInvalidBase)
}

func TestParse_Stdin(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, commands.NewParseCommand(), "http://a/\n\n  \nhttp://b/c/../d\r\n", "--format", "href")
	require.NoError(t, err)
	assert.Equal(t, "http://a/\nhttp://b/d\n", out)
}

func TestParse_Failure(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, commands.NewParseCommand(), "", "--format", "href", "http://ok/", "http://exa mple.com/")
	require.ErrorIs(t, err, commands.ErrParseFailed)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Equal(t, "http://ok/\n", out)
	assert.Contains(t, stderr, "weburl: parse")
}

func TestParse_FailureJSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, commands.NewParseCommand(), "", "/relative")
	require.ErrorIs(t, err, commands.ErrParseFailed)

	recs := decodeRecords(t, out)
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].URL)
	assert.Contains(t, recs[0].Error, "relative URL without a base")
}

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, commands.NewParseCommand(), "", "--format", "yaml", "https://example.com/p?q#f")
	require.NoError(t, err)
	assert.Contains(t, out, "input: https://example.com/p?q#f")
	assert.Contains(t, out, "href: https://example.com/p?q#f")
	assert.Contains(t, out, "host_kind: domain")
}

func TestParse_Table(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, commands.NewParseCommand(), "", "--format", "table", "http://[::1]:8080/x", "http://a b/")
	require.ErrorIs(t, err, commands.ErrParseFailed)
	assert.Contains(t, out, "http://[::1]:8080/x")
	assert.Contains(t, out, "ipv6")
	assert.Contains(t, out, "FAILURE")
}

func TestParse_Encoding(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, commands.NewParseCommand(), "", "--format", "href", "--encoding", "windows-1252", "http://a/?é")
	require.NoError(t, err)
	assert.Equal(t, "http://a/?%E9\n", out)
}

func TestParse_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, commands.NewParseCommand(), "", "--format", "xml", "http://a/")
	require.ErrorIs(t, err, commands.ErrUnknownFormat)
	assert.NotContains(t, err.Error(), "did you mean")

	_, _, err = execute(t, commands.NewParseCommand(), "", "--format", "yml", "http://a/")
	require.ErrorIs(t, err, commands.ErrUnknownFormat)
	assert.Contains(t, err.Error(), `did you mean "yaml"?`)
}

func TestParse_UnknownEncoding(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, commands.NewParseCommand(), "", "--encoding", "klingon", "http://a/")
	require.ErrorIs(t, err, weburl.ErrUnknownEncoding)
}

func TestSet(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, commands.NewSetCommand(), "",
		"https://example.com/", "--username", "x", "--port", "8080", "--pathname", "a b", "--hash", "frag")
	require.NoError(t, err)
	assert.Equal(t, "https://x@example.com:8080/a%20b#frag\n", out)
	assert.Empty(t, stderr)
}

func TestSet_ReportsUnchanged(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, commands.NewSetCommand(), "",
		"file:///tmp/x", "--port", "80", "--username", "u", "--hash", "h")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/x#h\n", out)
	assert.Equal(t, "unchanged: username, port\n", stderr)
}

func TestSet_InvalidURL(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, commands.NewSetCommand(), "", "not a url", "--hash", "x")

	var failure *weburl.Failure
	require.ErrorAs(t, err, &failure)
}

func TestIDNA(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, commands.NewIDNACommand(), "", "to-ascii", "Bücher.example", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "xn--bcher-kva.example\nexample.com\n", out)

	out, _, err = execute(t, commands.NewIDNACommand(), "xn--bcher-kva.example\n", "to-unicode")
	require.NoError(t, err)
	assert.Equal(t, "bücher.example\n", out)
}

func TestIDNA_Transitional(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, commands.NewIDNACommand(), "", "to-ascii", "faß.de")
	require.NoError(t, err)
	assert.Equal(t, "xn--fa-hia.de\n", out)

	out, _, err = execute(t, commands.NewIDNACommand(), "", "to-ascii", "--transitional", "faß.de")
	require.NoError(t, err)
	assert.Equal(t, "fass.de\n", out)
}

func TestIDNA_Failure(t *testing.T) {
	t.Parallel()

	out, stderr, err := execute(t, commands.NewIDNACommand(), "", "to-ascii", "a\u200db.example", "ok.example")
	require.ErrorIs(t, err, commands.ErrIDNAFailed)
	assert.Equal(t, "ok.example\n", out)
	assert.Contains(t, stderr, "a\u200db.example:")
}

func writeVectors(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const passingVectors = `[
  "# comment",
  {"input": "http://a/b/../c", "base": null, "href": "http://a/c", "pathname": "/c"},
  {"input": "d", "base": "http://a/b/c", "href": "http://a/b/d"},
  {"input": "http://a b/", "base": null, "failure": true}
]`

func TestCheck_Pass(t *testing.T) {
	t.Parallel()

	path := writeVectors(t, "urltestdata.json", passingVectors)

	out, _, err := execute(t, commands.NewCheckCommand(), "", "--show-passed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
	assert.NotContains(t, out, "FAIL ")
	assert.Contains(t, out, "100.0%")
}

func TestCheck_Fail(t *testing.T) {
	t.Parallel()

	path := writeVectors(t, "urltestdata.json", `[
  {"input": "http://a/b/../c", "base": null, "href": "http://a/d"},
  {"input": "http://ok/", "base": null, "failure": true}
]`)

	out, _, err := execute(t, commands.NewCheckCommand(), "", path)
	require.ErrorIs(t, err, commands.ErrCheckFailed)
	assert.Contains(t, err.Error(), "2 of 2")
	assert.Contains(t, out, "FAIL #0")
	assert.Contains(t, out, "[-d-]")
	assert.Contains(t, out, "{+c+}")
	assert.Contains(t, out, urltest.ErrUnexpectedSuccess.Error())
}

func TestCheck_LZ4(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, urltest.Compress(&buf, []byte(passingVectors)))

	path := writeVectors(t, "urltestdata.json.lz4", buf.String())

	_, _, err := execute(t, commands.NewCheckCommand(), "", path)
	require.NoError(t, err)
}

func TestCheck_SchemaViolation(t *testing.T) {
	t.Parallel()

	path := writeVectors(t, "bad.json", `[{"base": "http://a/"}]`)

	_, _, err := execute(t, commands.NewCheckCommand(), "", path)
	require.ErrorIs(t, err, urltest.ErrSchema)
}

func TestCheck_MissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, commands.NewCheckCommand(), "", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestServe_InvalidPort(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, commands.NewServeCommand(), "", "--port", "70000")
	require.ErrorIs(t, err, config.ErrInvalidPort)
}

func TestServe_Flags(t *testing.T) {
	t.Parallel()

	cmd := commands.NewServeCommand()
	require.NotNil(t, cmd.Flags().Lookup("host"))
	require.NotNil(t, cmd.Flags().Lookup("port"))
	assert.Contains(t, cmd.Long, "/api/parse")
}

func TestMCPCommand_DebugFlag(t *testing.T) {
	t.Parallel()

	cmd := commands.NewMCPCommand()
	assert.Equal(t, "mcp", cmd.Use)

	flag := cmd.Flags().Lookup("debug")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestConfigFlag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "weburl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parser:\n  encoding: windows-1252\n"), 0o600))

	root := &cobra.Command{Use: "weburl"}
	root.PersistentFlags().String(commands.FlagConfig, "", "")
	root.AddCommand(commands.NewParseCommand())

	out, _, err := execute(t, root, "", "--config", path, "parse", "--format", "href", "http://a/?é")
	require.NoError(t, err)
	assert.Equal(t, "http://a/?%E9\n", out)

	_, _, err = execute(t, root, "", "--config", filepath.Join(dir, "missing.yaml"), "parse", "http://a/")
	require.Error(t, err)
}

func TestCheck_Directory(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, commands.NewCheckCommand(), "", t.TempDir())
	require.ErrorIs(t, err, commands.ErrDirectoryPath)
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "weburl"}
	root.AddCommand(commands.NewParseCommand(), commands.NewCompletionCommand())

	out, _, err := execute(t, root, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "weburl")

	_, _, err = execute(t, root, "", "completion", "tcsh")
	require.ErrorIs(t, err, commands.ErrUnsupportedShell)
}
