package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/rkreutz/swift-bridge/loader"
	"github.com/rkreutz/swift-bridge/model"
	"github.com/rkreutz/swift-bridge/validate"
)

// codegenFlags are the bridge.toml overrides shared by generate and symbols.
type codegenFlags struct {
	supportCrate string
	symbolPrefix string
	visibility   string
	skipInvalid  bool
}

func (f *codegenFlags) apply(cfg *loader.Config) error {
	if f.supportCrate != "" {
		cfg.Codegen.SupportCrate = f.supportCrate
	}
	if f.symbolPrefix != "" {
		cfg.Codegen.SymbolPrefix = f.symbolPrefix
	}
	if f.visibility != "" {
		cfg.Codegen.Visibility = f.visibility
	}
	if f.skipInvalid {
		cfg.Codegen.OnError = loader.OnErrorSkip
	}
	return cfg.Validate()
}

// loadBridge loads and schema-validates a definition, reads the bridge.toml
// next to it, applies flag overrides and runs semantic validation.
func loadBridge(defPath string, flags *codegenFlags) (*model.BridgeDefinition, *loader.Config, error) {
	def, err := loader.LoadBridgeDefinition(defPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading bridge definition: %w", err)
	}

	cfg, err := loader.LoadConfig(filepath.Dir(defPath))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if flags != nil {
		if err := flags.apply(cfg); err != nil {
			return nil, nil, err
		}
	}

	log.Debugf("bridge %s v%s: %d type(s), %d function(s)",
		def.Bridge.Name, def.Bridge.Version, len(def.Types), len(def.Functions))

	result := validate.Validate(def, cfg.Codegen.SymbolPrefix)
	if !result.IsValid() {
		return nil, nil, fmt.Errorf("validation failed:\n%s", result.Error())
	}
	return def, cfg, nil
}
