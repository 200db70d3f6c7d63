package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rkreutz/swift-bridge/model"
)

// LoadBridgeDefinition reads and parses a YAML bridge definition file.
// It validates the YAML against the JSON Schema before unmarshalling.
func LoadBridgeDefinition(path string) (*model.BridgeDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bridge definition: %w", err)
	}

	if err := ValidateSchema(data); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	return LoadBridgeDefinitionNoValidate(data)
}

// LoadBridgeDefinitionNoValidate parses without schema validation.
// Used internally when schema validation has already been performed.
func LoadBridgeDefinitionNoValidate(data []byte) (*model.BridgeDefinition, error) {
	var def model.BridgeDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing bridge definition: %w", err)
	}
	return &def, nil
}
