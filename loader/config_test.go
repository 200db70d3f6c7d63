package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rkreutz/swift-bridge/bridge"
)

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Codegen.SupportCrate != "swift_bridge" {
		t.Errorf("expected default support crate, got %q", cfg.Codegen.SupportCrate)
	}
	if cfg.Codegen.SymbolPrefix != bridge.DefaultSymbolPrefix {
		t.Errorf("expected default symbol prefix, got %q", cfg.Codegen.SymbolPrefix)
	}
	if cfg.Output.Dir != "generated" {
		t.Errorf("expected default output dir, got %q", cfg.Output.Dir)
	}
	if cfg.Policy() != bridge.FailFast {
		t.Error("expected fail-fast by default")
	}
}

func TestLoadConfig_File(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "testdata", "config"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Codegen.SupportCrate != "crate::ffi" {
		t.Errorf("expected support crate 'crate::ffi', got %q", cfg.Codegen.SupportCrate)
	}
	if cfg.Codegen.SymbolPrefix != "__image__" {
		t.Errorf("expected prefix '__image__', got %q", cfg.Codegen.SymbolPrefix)
	}
	if cfg.Codegen.Visibility != bridge.DefaultVisibility {
		t.Errorf("expected unset visibility to keep default, got %q", cfg.Codegen.Visibility)
	}
	if cfg.Policy() != bridge.SkipAndReport {
		t.Error("expected skip policy")
	}
	if cfg.Output.Dir != "out" || !cfg.Output.Rustfmt {
		t.Errorf("unexpected output config %+v", cfg.Output)
	}

	opts := cfg.SynthOptions()
	if opts.SymbolPrefix != "__image__" || opts.Visibility != "pub" {
		t.Errorf("unexpected synth options %+v", opts)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "[codegen"},
		{"unknown key", "[codegen]\nsymbol_prefx = \"x\"\n"},
		{"bad policy", "[codegen]\non_error = \"retry\"\n"},
		{"empty crate", "[codegen]\nsupport_crate = \"\"\n"},
		{"bad crate path", "[codegen]\nsupport_crate = \"swift-bridge\"\n"},
		{"bad prefix", "[codegen]\nsymbol_prefix = \"bad-prefix\"\n"},
		{"prefix with space", "[codegen]\nsymbol_prefix = \"a b\"\n"},
		{"bad visibility", "[codegen]\nvisibility = \"public\"\n"},
		{"injected visibility", "[codegen]\nvisibility = \"pub fn x() {} pub\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ParseConfig([]byte(tt.data), DefaultConfig()); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseConfig_ValidNames(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"crate visibility", "[codegen]\nvisibility = \"pub(crate)\"\n"},
		{"private", "[codegen]\nvisibility = \"-\"\n"},
		{"custom prefix", "[codegen]\nsymbol_prefix = \"__ffi__\"\n"},
		{"nested crate", "[codegen]\nsupport_crate = \"crate::ffi\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ParseConfig([]byte(tt.data), DefaultConfig()); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfig_Unreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file cannot be read.
	if err := os.Mkdir(filepath.Join(dir, ConfigFileName), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(dir); err == nil {
		t.Error("expected error reading a directory as config")
	}
}
