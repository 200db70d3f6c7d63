package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkreutz/swift-bridge/gen"
	"github.com/rkreutz/swift-bridge/loader"
)

var valFlags codegenFlags

var validateCmd = &cobra.Command{
	Use:   "validate [bridge-definition.yaml]",
	Short: "Check a bridge definition without generating",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&valFlags.symbolPrefix, "symbol-prefix", "", "Override codegen.symbol_prefix from bridge.toml")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	defPath := args[0]

	if !quiet {
		fmt.Printf("Validating %s\n", defPath)
	}

	def, cfg, err := loadBridge(defPath, &valFlags)
	if err != nil {
		return err
	}

	// Synthesize everything so each unsupported declaration is reported,
	// not just the first.
	cfg.Codegen.OnError = loader.OnErrorSkip
	ctx, err := gen.NewContext(def, cfg, "", defPath)
	if err != nil {
		return err
	}
	ctx.Cancel = cmd.Context()
	ctx.Log = log
	batch, err := ctx.Wrappers()
	if err != nil {
		return err
	}
	if err := batch.Err(); err != nil {
		return fmt.Errorf("%d declaration(s) cannot be wrapped:\n%w", len(batch.Skipped), err)
	}

	if verbose {
		fmt.Printf("  Bridge: %s v%s\n", def.Bridge.Name, def.Bridge.Version)
		fmt.Printf("  Types: %d\n", len(def.Types))
		fmt.Printf("  Functions: %d\n", len(def.Functions))
		fmt.Printf("  Wrappers: %d\n", len(batch.Wrappers))
	}

	if !quiet {
		fmt.Println("Validation passed.")
	}
	return nil
}
