// Package urltest loads and runs URL conformance vectors in the
// urltestdata.json format: a JSON array mixing comment strings with cases
// that give an input, an optional base, and either the expected URL API
// attributes or a failure flag.
package urltest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/xeipuuv/gojsonschema"
)

// Loader errors.
var (
	ErrInvalidJSON = errors.New("invalid vector JSON")
	ErrSchema      = errors.New("vector file does not match schema")
)

//go:embed schema.json
var schemaJSON []byte

// Schema returns the JSON schema vector files are validated against.
func Schema() []byte { return bytes.Clone(schemaJSON) }

// Case is one conformance vector. Fields that are absent from the file are
// left nil and not compared.
type Case struct {
	Input    string  `json:"input"`
	Base     *string `json:"base,omitempty"`
	Failure  bool    `json:"failure,omitempty"`
	Href     *string `json:"href,omitempty"`
	Origin   *string `json:"origin,omitempty"`
	Protocol *string `json:"protocol,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Host     *string `json:"host,omitempty"`
	Hostname *string `json:"hostname,omitempty"`
	Port     *string `json:"port,omitempty"`
	Pathname *string `json:"pathname,omitempty"`
	Search   *string `json:"search,omitempty"`
	Hash     *string `json:"hash,omitempty"`

	// Index is the position of the case in the file, comments included.
	Index int `json:"-"`
}

// BaseURL returns the base to resolve against, or "" for none.
func (c *Case) BaseURL() string {
	if c.Base == nil {
		return ""
	}

	return *c.Base
}

// SchemaError lists the schema violations of a vector file.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSchema, strings.Join(e.Violations, "; "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// Load reads, validates and decodes a vector file.
func Load(r io.Reader) ([]Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read vectors: %w", err)
	}

	return Decode(data)
}

// Decode validates data against the schema and returns its cases, skipping
// comment strings.
func Decode(data []byte) ([]Case, error) {
	var doc any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validate vectors: %w", err)
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			violations = append(violations, verr.Field()+": "+verr.Description())
		}

		return nil, &SchemaError{Violations: violations}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	cases := make([]Case, 0, len(items))

	for i, item := range items {
		if len(item) > 0 && item[0] == '"' {
			continue
		}

		var c Case
		if err := json.Unmarshal(item, &c); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrInvalidJSON, i, err)
		}

		c.Index = i
		cases = append(cases, c)
	}

	return cases, nil
}

// Open loads a vector file from disk. Files ending in ".lz4" are read
// through an LZ4 frame decoder.
func Open(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vectors: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".lz4") {
		r = lz4.NewReader(f)
	}

	cases, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cases, nil
}

// Compress writes data to w as an LZ4 frame, the format Open expects for
// ".lz4" files.
func Compress(w io.Writer, data []byte) error {
	zw := lz4.NewWriter(w)

	if _, err := zw.Write(data); err != nil {
		return fmt.Errorf("compress vectors: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress vectors: %w", err)
	}

	return nil
}
