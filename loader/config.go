package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/rkreutz/swift-bridge/bridge"
	"github.com/rkreutz/swift-bridge/builtin"
)

// ConfigFileName is the project configuration looked up next to a definition.
const ConfigFileName = "bridge.toml"

// Error policies accepted by [codegen] on_error.
const (
	OnErrorFail = "fail"
	OnErrorSkip = "skip"
)

var (
	identPattern     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	cratePathPattern = regexp.MustCompile(`^(::)?[A-Za-z_][A-Za-z0-9_]*(::[A-Za-z_][A-Za-z0-9_]*)*$`)
)

// Visibilities accepted by [codegen] visibility. "-" makes wrappers private.
var visibilities = []string{"pub", "pub(crate)", "pub(super)", "-"}

// Config is the project configuration read from bridge.toml.
type Config struct {
	Codegen CodegenConfig `toml:"codegen"`
	Output  OutputConfig  `toml:"output"`
}

// CodegenConfig controls wrapper synthesis.
type CodegenConfig struct {
	SupportCrate string `toml:"support_crate"`
	SymbolPrefix string `toml:"symbol_prefix"`
	Visibility   string `toml:"visibility"`
	OnError      string `toml:"on_error"`
}

// OutputConfig controls where and how generated files are written.
type OutputConfig struct {
	Dir     string `toml:"dir"`
	Rustfmt bool   `toml:"rustfmt"`
}

// DefaultConfig returns the configuration used when no bridge.toml exists.
func DefaultConfig() *Config {
	return &Config{
		Codegen: CodegenConfig{
			SupportCrate: builtin.DefaultCrate,
			SymbolPrefix: bridge.DefaultSymbolPrefix,
			Visibility:   bridge.DefaultVisibility,
			OnError:      OnErrorFail,
		},
		Output: OutputConfig{
			Dir: "generated",
		},
	}
}

// LoadConfig reads dir/bridge.toml over the defaults. A missing file is not
// an error.
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}
	if err := ParseConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data into cfg, leaving unset keys untouched.
func ParseConfig(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks enumerated values and the names spliced into generated code.
func (c *Config) Validate() error {
	switch c.Codegen.OnError {
	case OnErrorFail, OnErrorSkip:
	default:
		return fmt.Errorf("codegen.on_error must be %q or %q, got %q", OnErrorFail, OnErrorSkip, c.Codegen.OnError)
	}
	if c.Codegen.SupportCrate == "" {
		return fmt.Errorf("codegen.support_crate must not be empty")
	}
	if !cratePathPattern.MatchString(c.Codegen.SupportCrate) {
		return fmt.Errorf("codegen.support_crate %q is not a Rust path", c.Codegen.SupportCrate)
	}
	if c.Codegen.SymbolPrefix != "" && !identPattern.MatchString(c.Codegen.SymbolPrefix) {
		return fmt.Errorf("codegen.symbol_prefix %q must be a Rust identifier", c.Codegen.SymbolPrefix)
	}
	if c.Codegen.Visibility != "" && !slices.Contains(visibilities, c.Codegen.Visibility) {
		return fmt.Errorf("codegen.visibility must be one of %q, got %q", visibilities, c.Codegen.Visibility)
	}
	return nil
}

// Policy maps on_error to the batch error policy.
func (c *Config) Policy() bridge.ErrorPolicy {
	if c.Codegen.OnError == OnErrorSkip {
		return bridge.SkipAndReport
	}
	return bridge.FailFast
}

// SynthOptions returns the synthesizer options described by the config.
func (c *Config) SynthOptions() bridge.Options {
	return bridge.Options{
		SymbolPrefix: c.Codegen.SymbolPrefix,
		Visibility:   c.Codegen.Visibility,
	}
}
