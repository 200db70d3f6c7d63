package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rkreutz/swift-bridge/gen"
)

var (
	symOutput string
	symFlags  codegenFlags
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols [bridge-definition.yaml]",
	Short: "Print the foreign symbols a bridge links against",
	Long:  "Prints the symbol table (link names, extern identifiers and FFI signatures) the foreign side must export. Use -o to write to a file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSymbols,
}

func init() {
	symbolsCmd.Flags().StringVarP(&symOutput, "output", "o", "", "Write the table to a file instead of stdout")
	symbolsCmd.Flags().StringVar(&symFlags.symbolPrefix, "symbol-prefix", "", "Override codegen.symbol_prefix from bridge.toml")
	symbolsCmd.Flags().StringVar(&symFlags.supportCrate, "support-crate", "", "Override codegen.support_crate from bridge.toml")
	symbolsCmd.Flags().BoolVar(&symFlags.skipInvalid, "skip-invalid", false, "Omit declarations that cannot be wrapped instead of failing")
	rootCmd.AddCommand(symbolsCmd)
}

func runSymbols(cmd *cobra.Command, args []string) error {
	defPath := args[0]

	def, cfg, err := loadBridge(defPath, &symFlags)
	if err != nil {
		return err
	}
	ctx, err := gen.NewContext(def, cfg, "", defPath)
	if err != nil {
		return err
	}
	ctx.Cancel = cmd.Context()
	ctx.Log = log

	table, err := gen.BuildSymbolTable(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("encoding symbol table: %w", err)
	}

	if symOutput == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(symOutput, data, 0644); err != nil {
		return fmt.Errorf("writing symbol table to %s: %w", symOutput, err)
	}
	if !quiet {
		fmt.Fprintf(os.Stderr, "Symbol table written to %s\n", symOutput)
	}
	return nil
}
