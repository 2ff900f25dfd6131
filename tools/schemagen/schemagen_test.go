package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/weburl/internal/server"
	"github.com/Sumatoshi-tech/weburl/pkg/mcp"
)

func TestGenerateSchema_FlattensEmbeddedComponents(t *testing.T) {
	t.Parallel()

	schema := generateSchema(document{name: "mcp_parse_output", value: mcp.ParseOutput{}})

	assert.Equal(t, "object", schema.Type)
	assert.Contains(t, schema.Properties, "href")
	assert.Contains(t, schema.Properties, "host_kind")
	assert.Contains(t, schema.Required, "href")
	assert.Contains(t, schema.Required, "host_kind")
	assert.NotContains(t, schema.Required, "validation_errors")

	errs := schema.Properties["validation_errors"]
	require.NotNil(t, errs)
	assert.Equal(t, "array", errs.Type)
	require.NotNil(t, errs.Items)
	assert.Equal(t, "#/definitions/ValidationError", errs.Items.Ref)

	def := schema.Definitions["ValidationError"]
	require.NotNil(t, def)
	assert.Equal(t, "string", def.Properties["kind"].Type)
	assert.Equal(t, "integer", def.Properties["offset"].Type)
}

func TestGenerateSchema_MatchesServerResponses(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(generateSchema(document{name: "api_parse_response", value: server.ParseResponse{}}))
	require.NoError(t, err)

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	require.NoError(t, err)

	srv, err := server.New(server.Deps{})
	require.NoError(t, err)

	for _, target := range []string{
		"/api/parse?url=https://exa%09mple.com:8080/p?q%23f",
		"/api/parse?url=http://a%20b/",
		"/api/parse?url=x&base=http://h/a/",
	} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))

		result, err := schema.Validate(gojsonschema.NewBytesLoader(rec.Body.Bytes()))
		require.NoError(t, err)
		assert.True(t, result.Valid(), "%s: %v", target, result.Errors())
	}
}

func TestWriteSchema(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, doc := range documents {
		require.NoError(t, writeSchema(dir, doc.name, generateSchema(doc)))
	}

	data, err := os.ReadFile(filepath.Join(dir, "mcp_resolved.json"))
	require.NoError(t, err)

	var schema Schema
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, []string{"ref"}, schema.Required)
	assert.Equal(t, "One entry of the weburl_resolve result", schema.Description)
}
