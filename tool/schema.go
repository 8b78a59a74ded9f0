package tool

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaFor generates a JSON schema for the parameters of a tool from a
// struct type T. Fields are described with jsonschema tags:
//
//	type LookupArgs struct {
//	    Query string `json:"query" jsonschema:"description=Food to look up"`
//	    Limit int    `json:"limit,omitempty" jsonschema:"minimum=1"`
//	}
//
// Fields without omitempty are required. The result is always an object
// schema with a properties member, inlined without $schema or $ref.
func SchemaFor[T any]() (json.RawMessage, error) {
	reflector := &jsonschema.Reflector{
		Anonymous:      true,
		ExpandedStruct: true,
		DoNotReference: true,
	}

	schema := reflector.Reflect(new(T))
	schema.Version = ""

	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("tool: marshal schema: %w", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("tool: decode schema: %w", err)
	}
	if m["type"] != "object" {
		return nil, fmt.Errorf("tool: parameters must be a struct, got %T", *new(T))
	}
	if _, ok := m["properties"]; !ok {
		m["properties"] = map[string]any{}
	}

	return json.Marshal(m)
}

// MustSchemaFor is like SchemaFor but panics on error.
func MustSchemaFor[T any]() json.RawMessage {
	schema, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return schema
}
