package loader

import (
	"strings"
	"testing"
)

func TestValidateSchema_ValidMinimal(t *testing.T) {
	yaml := `
bridge:
  name: test_bridge
  version: "1.0.0"
functions:
  - name: do_thing
`
	if err := ValidateSchema([]byte(yaml)); err != nil {
		t.Errorf("expected valid schema, got error: %v", err)
	}
}

func TestValidateSchema_MissingBridge(t *testing.T) {
	yaml := `
functions:
  - name: do_thing
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for missing 'bridge' key")
	}
}

func TestValidateSchema_InvalidBridgeName(t *testing.T) {
	yaml := `
bridge:
  name: BadName
  version: "1.0.0"
functions:
  - name: do_thing
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for PascalCase bridge name (must be snake_case)")
	}
}

func TestValidateSchema_InvalidVersion(t *testing.T) {
	yaml := `
bridge:
  name: test_bridge
  version: latest
functions:
  - name: do_thing
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for non-semver version")
	}
}

func TestValidateSchema_NoFunctions(t *testing.T) {
	yaml := `
bridge:
  name: test_bridge
  version: "1.0.0"
functions: []
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for empty functions list")
	}
}

func TestValidateSchema_InvalidTypeName(t *testing.T) {
	yaml := `
bridge:
  name: test_bridge
  version: "1.0.0"
types:
  - name: foo
functions:
  - name: do_thing
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for lowercase type name")
	}
}

func TestValidateSchema_UnknownFunctionKey(t *testing.T) {
	yaml := `
bridge:
  name: test_bridge
  version: "1.0.0"
functions:
  - name: do_thing
    async: true
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for unknown key 'async'")
	}
}

func TestValidateSchema_ParameterRequiresType(t *testing.T) {
	yaml := `
bridge:
  name: test_bridge
  version: "1.0.0"
functions:
  - name: do_thing
    parameters:
      - name: count
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for parameter without type")
	}
}

func TestValidateSchema_InitMustBeBool(t *testing.T) {
	yaml := `
bridge:
  name: test_bridge
  version: "1.0.0"
types:
  - name: Foo
functions:
  - name: new
    init: "yes please"
`
	if err := ValidateSchema([]byte(yaml)); err == nil {
		t.Error("expected error for non-boolean init")
	}
}

func TestValidateSchema_ReceiverAndTypes(t *testing.T) {
	yaml := `
bridge:
  name: test_bridge
  version: "1.0.0"
types:
  - name: Foo
functions:
  - name: rename
    associated_to: Foo
    parameters:
      - name: self
        type: "&mut self"
      - name: name
        type: Option<&str>
    returns: "&[u8]"
`
	if err := ValidateSchema([]byte(yaml)); err != nil {
		t.Errorf("expected valid schema, got error: %v", err)
	}
}

func TestValidateSchemaJSON(t *testing.T) {
	valid := `{"bridge": {"name": "x", "version": "0.1.0"}, "functions": [{"name": "f"}]}`
	if err := ValidateSchemaJSON([]byte(valid)); err != nil {
		t.Errorf("expected valid, got: %v", err)
	}
	if err := ValidateSchemaJSON([]byte(`{"bridge": {}}`)); err == nil {
		t.Error("expected error for incomplete document")
	}
	if err := ValidateSchemaJSON([]byte(`{`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestSchemaJSON(t *testing.T) {
	s := SchemaJSON()
	if !strings.Contains(s, `"function_definition"`) {
		t.Error("expected schema to define function_definition")
	}
}
