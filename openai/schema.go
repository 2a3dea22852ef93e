package openai

import (
	"github.com/invopop/jsonschema"
)

// SchemaFormat builds a schema-constrained response format from a Go struct.
// The schema is reflected from v's type; name labels it for the endpoint.
//
//	type Polished struct {
//	    Prompt string `json:"prompt"`
//	    Notes  string `json:"notes,omitempty"`
//	}
//	format := openai.SchemaFormat("polished_prompt", Polished{})
//
// Only meaningful against models whose config advertises JSON-mode support.
func SchemaFormat(name string, v any) *ResponseFormat {
	reflector := jsonschema.Reflector{
		// Inline everything: the endpoint rejects $ref indirection.
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(v)
	return &ResponseFormat{
		Type: "json_schema",
		JSONSchema: &JSONSchemaFormat{
			Name:   name,
			Strict: true,
			Schema: schema,
		},
	}
}
