package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rkreutz/swift-bridge/gen"
	"github.com/rkreutz/swift-bridge/loader"
	"github.com/rkreutz/swift-bridge/resolver"
)

var (
	genOutput      string
	genGenerators  []string
	genRustfmt     bool
	genRustfmtPath string
	genDryRun      bool
	genClean       bool
	genFlags       codegenFlags
)

var generateCmd = &cobra.Command{
	Use:   "generate [bridge-definition.yaml]",
	Short: "Generate Rust wrappers and the symbol table",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output directory (default: output.dir from bridge.toml)")
	generateCmd.Flags().StringSliceVarP(&genGenerators, "generators", "g", gen.DefaultGenerators, "Generators to run (comma-separated)")
	generateCmd.Flags().StringVar(&genFlags.supportCrate, "support-crate", "", "Override codegen.support_crate from bridge.toml")
	generateCmd.Flags().StringVar(&genFlags.symbolPrefix, "symbol-prefix", "", "Override codegen.symbol_prefix from bridge.toml")
	generateCmd.Flags().StringVar(&genFlags.visibility, "visibility", "", "Override codegen.visibility from bridge.toml (\"-\" for private)")
	generateCmd.Flags().BoolVar(&genFlags.skipInvalid, "skip-invalid", false, "Skip declarations that cannot be wrapped instead of failing")
	generateCmd.Flags().BoolVar(&genRustfmt, "rustfmt", false, "Run rustfmt over generated Rust files")
	generateCmd.Flags().StringVar(&genRustfmtPath, "rustfmt-path", "", "Path to rustfmt")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Show what would be generated without writing")
	generateCmd.Flags().BoolVar(&genClean, "clean", false, "Remove previously generated files first")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	defPath := args[0]

	if !quiet {
		fmt.Printf("Generating from %s\n", defPath)
	}

	def, cfg, err := loadBridge(defPath, &genFlags)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("rustfmt") {
		cfg.Output.Rustfmt = genRustfmt
	}
	outputDir := resolveOutputDir(defPath, cfg)

	ctx, err := gen.NewContext(def, cfg, outputDir, defPath)
	if err != nil {
		return err
	}
	ctx.ToolVersion = Version
	ctx.Cancel = cmd.Context()
	ctx.Log = log

	files, err := gen.Run(ctx, genGenerators)
	if err != nil {
		return err
	}

	batch, err := ctx.Wrappers()
	if err != nil {
		return err
	}
	for _, skipped := range batch.Skipped {
		log.Warningf("skipped %s", skipped)
	}

	if genClean {
		if !quiet {
			fmt.Printf("Cleaning %s\n", outputDir)
		}
		if !genDryRun {
			if err := os.RemoveAll(outputDir); err != nil {
				return fmt.Errorf("cleaning %s: %w", outputDir, err)
			}
		}
	}

	written, err := writeOutputFiles(outputDir, files)
	if err != nil {
		return err
	}

	formatted := false
	if cfg.Output.Rustfmt {
		rustfmtPath, err := resolver.ResolveRustfmt(genRustfmtPath)
		if err != nil {
			return fmt.Errorf("rustfmt was requested but not found: %w", err)
		}
		formatted, err = gen.RunRustfmt(&gen.RustfmtConfig{
			RustfmtPath: rustfmtPath,
			Files:       gen.RustFiles(outputDir, files),
			DryRun:      genDryRun,
			Log:         log,
		})
		if err != nil {
			return err
		}
	}

	if !quiet {
		fmtMsg := ""
		if formatted {
			fmtMsg = ", formatted with rustfmt"
		}
		skippedMsg := ""
		if n := len(batch.Skipped); n > 0 {
			skippedMsg = fmt.Sprintf(", %d declaration(s) skipped", n)
		}
		fmt.Printf("Generated %d files in %s (%d wrappers%s%s)\n", written, outputDir, len(batch.Wrappers), skippedMsg, fmtMsg)
	}
	return nil
}

// resolveOutputDir picks the -o flag, else output.dir from bridge.toml
// relative to the definition's directory.
func resolveOutputDir(defPath string, cfg *loader.Config) string {
	if genOutput != "" {
		return genOutput
	}
	if filepath.IsAbs(cfg.Output.Dir) {
		return cfg.Output.Dir
	}
	return filepath.Join(filepath.Dir(defPath), cfg.Output.Dir)
}

func writeOutputFiles(outputDir string, files []*gen.OutputFile) (int, error) {
	var written int
	for _, f := range files {
		outPath := filepath.Join(outputDir, f.Path)

		if genDryRun {
			fmt.Printf("  Would write: %s\n", outPath)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, f.Content, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", outPath, err)
		}

		written++
		log.Debugf("wrote %s", outPath)
	}
	return written, nil
}
