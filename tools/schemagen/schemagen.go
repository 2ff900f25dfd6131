// Package main generates JSON schemas for the response bodies of the weburl
// HTTP API and MCP tools.
package main

import (
	"encoding"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/weburl/internal/server"
	"github.com/Sumatoshi-tech/weburl/pkg/mcp"
)

// Schema represents a JSON Schema.
type Schema struct {
	Schema      string             `json:"$schema,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
	Definitions map[string]*Schema `json:"definitions,omitempty"`
}

// document is one generated schema file.
type document struct {
	name        string
	description string
	value       any
}

var documents = []document{
	{"api_parse_response", "Body of every /api/parse response", server.ParseResponse{}},
	{"mcp_parse_output", "Structured result of the weburl_parse tool", mcp.ParseOutput{}},
	{"mcp_resolved", "One entry of the weburl_resolve result", mcp.Resolved{}},
	{"mcp_idna_output", "Structured result of the weburl_idna tool", mcp.IDNAOutput{}},
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

func main() {
	outputDir := flag.String("o", "docs/schemas", "Output directory for schemas")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for _, doc := range documents {
		if err := writeSchema(*outputDir, doc.name, generateSchema(doc)); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing schema for %s: %v\n", doc.name, err)
			os.Exit(1)
		}

		fmt.Printf("Generated schema for %s\n", doc.name)
	}
}

func generateSchema(doc document) *Schema {
	t := reflect.TypeOf(doc.value)

	defs := make(map[string]*Schema)
	props, required := structToProperties(t, defs)

	schema := &Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       doc.name,
		Description: doc.description,
		Type:        "object",
		Properties:  props,
		Required:    required,
	}

	if len(defs) > 0 {
		schema.Definitions = defs
	}

	return schema
}

// structToProperties follows encoding/json: untagged embedded structs are
// flattened into their parent and omitempty fields are optional.
func structToProperties(t reflect.Type, defs map[string]*Schema) (map[string]*Schema, []string) {
	props := make(map[string]*Schema)

	var required []string

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(jsonTag, ",")

		if field.Anonymous && name == "" && field.Type.Kind() == reflect.Struct {
			embedded, embeddedRequired := structToProperties(field.Type, defs)
			for k, v := range embedded {
				props[k] = v
			}

			required = append(required, embeddedRequired...)

			continue
		}

		if name == "" {
			name = field.Name
		}

		props[name] = typeToSchema(field.Type, defs)

		if !strings.Contains(opts, "omitempty") {
			required = append(required, name)
		}
	}

	sort.Strings(required)

	return props, required
}

func typeToSchema(t reflect.Type, defs map[string]*Schema) *Schema {
	if t.Implements(textMarshalerType) {
		return &Schema{Type: "string"}
	}

	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Slice:
		return &Schema{Type: "array", Items: typeToSchema(t.Elem(), defs)}

	case reflect.Struct:
		defName := t.Name()
		if defName == "" {
			props, required := structToProperties(t, defs)

			return &Schema{Type: "object", Properties: props, Required: required}
		}

		if _, exists := defs[defName]; !exists {
			defs[defName] = &Schema{}
			props, required := structToProperties(t, defs)
			defs[defName] = &Schema{Type: "object", Properties: props, Required: required}
		}

		return &Schema{Ref: "#/definitions/" + defName}

	case reflect.Ptr:
		return typeToSchema(t.Elem(), defs)

	default:
		return &Schema{}
	}
}

func writeSchema(dir, name string, schema *Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	return os.WriteFile(filepath.Join(dir, name+".json"), append(data, '\n'), 0o644)
}
