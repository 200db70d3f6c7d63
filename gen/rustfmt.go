package gen

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tliron/commonlog"
)

// RustfmtConfig holds configuration for running rustfmt over generated files.
type RustfmtConfig struct {
	RustfmtPath string   // resolved rustfmt binary path
	Files       []string // absolute paths to .rs files
	Edition     string   // empty means "2021"
	DryRun      bool
	Log         commonlog.Logger
}

// RustFiles returns the paths under outputDir of the Rust sources in files.
func RustFiles(outputDir string, files []*OutputFile) []string {
	var paths []string
	for _, f := range files {
		if f.Rust {
			paths = append(paths, joinOutput(outputDir, f.Path))
		}
	}
	return paths
}

// RunRustfmt formats the configured files in a single rustfmt invocation.
// It reports whether rustfmt actually ran.
func RunRustfmt(cfg *RustfmtConfig) (bool, error) {
	if len(cfg.Files) == 0 {
		return false, nil
	}
	log := cfg.Log
	if log == nil {
		log = commonlog.GetLogger("swift-bridge.rustfmt")
	}
	edition := cfg.Edition
	if edition == "" {
		edition = "2021"
	}

	args := append([]string{"--edition", edition}, cfg.Files...)
	if cfg.DryRun {
		fmt.Printf("  Would run: %s %s\n", cfg.RustfmtPath, strings.Join(args, " "))
		return false, nil
	}

	log.Debugf("running: %s %s", cfg.RustfmtPath, strings.Join(args, " "))
	cmd := exec.Command(cfg.RustfmtPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("rustfmt failed: %w\n%s", err, string(output))
	}
	if len(output) > 0 {
		log.Info(strings.TrimSpace(string(output)))
	}
	return true, nil
}
