package weburl_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/weburl/pkg/host"
	"github.com/Sumatoshi-tech/weburl/pkg/weburl"
)

func TestOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input, want string
	}{
		{"https://example.com:8443/x", "https://example.com:8443"},
		{"https://example.com:443/x", "https://example.com"},
		{"http://[::1]:81/", "http://[::1]:81"},
		{"ws://h/", "ws://h"},
		{"ftp://h:21/", "ftp://h"},
		{"gopher://g.org/", "gopher://g.org"},
		{"blob:https://a.com/uuid", "https://a.com"},
		{"blob:not a url", "null"},
		{"file:///x", "file://"},
		{"data:text/plain,x", "null"},
		{"sc://h/", "null"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, mustParse(t, tt.input).Origin(), "input %q", tt.input)
	}
}

func TestSerializeRecord(t *testing.T) {
	t.Parallel()

	port := uint16(8080)
	query := "q"
	fragment := "f"

	u := &weburl.URL{
		Scheme:   "http",
		Username: "u",
		Host:     host.IPv4(0x7f000001),
		Port:     &port,
		Path:     []string{"a", ""},
		Query:    &query,
		Fragment: &fragment,
	}

	assert.Equal(t, "http://u@127.0.0.1:8080/a/?q#f", u.Href())
	assert.Equal(t, "http://u@127.0.0.1:8080/a/?q", u.Serialize(true))
	assert.Equal(t, u.Href(), u.String())

	u = &weburl.URL{Scheme: "file", Path: []string{"x"}}
	assert.Equal(t, "file:///x", u.Href())

	u = &weburl.URL{Scheme: "sc", Password: "p", Host: host.Opaque("h")}
	assert.Equal(t, "sc://:p@h", u.Href())
}

func TestComponents(t *testing.T) {
	t.Parallel()

	c := mustParse(t, "https://u:p@example.com:8443/a?q#f").Components()

	assert.Equal(t, weburl.Components{
		Href:     "https://u:p@example.com:8443/a?q#f",
		Origin:   "https://example.com:8443",
		Protocol: "https:",
		Username: "u",
		Password: "p",
		Host:     "example.com:8443",
		Hostname: "example.com",
		Port:     "8443",
		Pathname: "/a",
		Search:   "?q",
		Hash:     "#f",
	}, c)
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	type doc struct {
		Link *weburl.URL `json:"link"`
	}

	var d doc

	require.NoError(t, json.Unmarshal([]byte(`{"link":"HTTP://Example.com/a/../b"}`), &d))
	assert.Equal(t, "http://example.com/b", d.Link.Href())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"link":"http://example.com/b"}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"link":"nope"}`), &d))
}

func TestIdempotentSerialization(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"http://example.com/",
		"HTTP://a:b@EXAMPLE.com:80/%7e/./x/../y?z#w",
		"https://[::ffff:1.2.3.4]/",
		"http://0300.0250.0.1/",
		"http://ÉXAMPLE.com/ä?ö#ü",
		"file:///C|/x/../y",
		"file://localhost/c:/",
		"sc://ÉXAMPLE/ä?ö#ü",
		"sc:/a/../../b",
		"web+x:/.//y",
		"mailto:Joe <joe@example.com>",
		"javascript:alert('x')",
		"http://a/b?c d#e f",
		"ws://h:80/?'",
		"non-special://@h/",
		"http://x/%zz%",
	}

	for _, in := range inputs {
		first, err := weburl.Parse(in)
		require.NoErrorf(t, err, "input %q", in)

		second, err := weburl.Parse(first.Href())
		require.NoErrorf(t, err, "href %q", first.Href())
		assert.Equalf(t, first.Href(), second.Href(), "input %q", in)
		assert.Equalf(t, first, second, "input %q", in)
	}
}
