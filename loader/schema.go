package loader

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaJSON is the embedded JSON Schema for bridge definition validation.
// It checks shape only; type expressions are parsed and checked later.
var schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/rkreutz/swift-bridge/schemas/bridge-definition/v1",
  "title": "swift-bridge Bridge Definition",
  "description": "Schema for swift-bridge bridge definition YAML files.",
  "type": "object",
  "required": ["bridge", "functions"],
  "additionalProperties": false,
  "properties": {
    "bridge": { "$ref": "#/$defs/bridge_metadata" },
    "types": {
      "type": "array",
      "items": { "$ref": "#/$defs/type_definition" }
    },
    "functions": {
      "type": "array",
      "items": { "$ref": "#/$defs/function_definition" },
      "minItems": 1
    }
  },
  "$defs": {
    "bridge_metadata": {
      "type": "object",
      "required": ["name", "version"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[a-z][a-z0-9_]*$" },
        "version": { "type": "string", "pattern": "^\\d+\\.\\d+\\.\\d+$" },
        "description": { "type": "string" }
      }
    },
    "type_definition": {
      "type": "object",
      "required": ["name"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[A-Z][a-zA-Z0-9]*$" },
        "description": { "type": "string" }
      }
    },
    "function_definition": {
      "type": "object",
      "required": ["name"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[a-z_][a-z0-9_]*$" },
        "description": { "type": "string" },
        "associated_to": { "type": "string", "pattern": "^[A-Z][a-zA-Z0-9]*$" },
        "init": { "type": "boolean" },
        "parameters": {
          "type": "array",
          "items": { "$ref": "#/$defs/parameter_definition" }
        },
        "returns": { "type": "string", "minLength": 1 }
      }
    },
    "parameter_definition": {
      "type": "object",
      "required": ["name", "type"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[a-z_][a-z0-9_]*$" },
        "type": { "type": "string", "minLength": 1 },
        "description": { "type": "string" }
      }
    }
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	// Decode the schema JSON into a generic value first
	var schemaDoc interface{}
	if err := json.Unmarshal([]byte(schemaJSON), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to decode schema JSON: %v", err))
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add schema resource: %v", err))
	}
	var err error
	compiledSchema, err = c.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema: %v", err))
	}
}

// ValidateSchema validates raw YAML bytes against the bridge definition JSON Schema.
func ValidateSchema(yamlData []byte) error {
	// Parse YAML into a generic structure
	var raw interface{}
	if err := yaml.Unmarshal(yamlData, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	// Convert to JSON-compatible types (yaml.v3 uses map[string]interface{} already)
	converted := convertYAMLToJSON(raw)

	err := compiledSchema.Validate(converted)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// convertYAMLToJSON converts YAML-parsed values to JSON-compatible types.
// yaml.v3 parses maps as map[string]interface{} which is already JSON-compatible,
// but we need to handle nested maps recursively.
func convertYAMLToJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, val := range v {
			result[k] = convertYAMLToJSON(val)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			result[i] = convertYAMLToJSON(val)
		}
		return result
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}

// ValidateSchemaJSON validates a JSON string against the schema (for testing).
func ValidateSchemaJSON(jsonData []byte) error {
	var raw interface{}
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	err := compiledSchema.Validate(raw)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// SchemaJSON returns the embedded JSON Schema text.
func SchemaJSON() string {
	return schemaJSON
}
