package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/rkreutz/swift-bridge/loader"
)

var (
	initName   string
	initType   string
	initOutput string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a starter bridge definition and bridge.toml",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initName, "name", "n", "my_bridge", "Bridge name (snake_case)")
	initCmd.Flags().StringVarP(&initType, "type", "t", "Instance", "Name of the starter opaque type")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", ".", "Output directory")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !quiet {
		fmt.Printf("Initializing bridge %s in %s\n", initName, initOutput)
	}

	if err := os.MkdirAll(initOutput, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	defPath := filepath.Join(initOutput, initName+".yaml")
	if err := writeScaffold(defPath, []byte(starterDefinition(initName, initType))); err != nil {
		return fmt.Errorf("writing bridge definition: %w", err)
	}

	// The starter must pass the same checks generate applies.
	if _, err := loader.LoadBridgeDefinition(defPath); err != nil {
		return fmt.Errorf("starter definition is invalid (check --name and --type): %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(loader.DefaultConfig()); err != nil {
		return fmt.Errorf("encoding %s: %w", loader.ConfigFileName, err)
	}
	configPath := filepath.Join(initOutput, loader.ConfigFileName)
	if err := writeScaffold(configPath, buf.Bytes()); err != nil {
		return fmt.Errorf("writing %s: %w", loader.ConfigFileName, err)
	}

	if !quiet {
		fmt.Printf("Created:\n")
		fmt.Printf("  %s\n", defPath)
		fmt.Printf("  %s\n", configPath)
		fmt.Printf("\nNext: swift-bridge validate %s\n", defPath)
	}
	return nil
}

// writeScaffold writes a new file, refusing to replace one unless --force.
func writeScaffold(path string, content []byte) error {
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return os.WriteFile(path, content, 0644)
}

func starterDefinition(name, typeName string) string {
	return fmt.Sprintf(`bridge:
  name: %[1]s
  version: 0.1.0
  description: Foreign functions exposed to Rust.

types:
  - name: %[2]s
    description: Opaque handle owned by the foreign side.

functions:
  - name: new
    associated_to: %[2]s
    init: true

  - name: name
    parameters:
      - name: self
        type: "&%[2]s"
    returns: "&str"

  - name: set_name
    parameters:
      - name: self
        type: "&mut %[2]s"
      - name: name
        type: "&str"

  - name: bytes
    parameters:
      - name: self
        type: "&%[2]s"
    returns: "&[u8]"
`, name, typeName)
}
