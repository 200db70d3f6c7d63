package gen

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/rkreutz/swift-bridge/bridge"
	"github.com/rkreutz/swift-bridge/builtin"
	"github.com/rkreutz/swift-bridge/loader"
	"github.com/rkreutz/swift-bridge/model"
	"github.com/rkreutz/swift-bridge/resolver"
)

const logName = "swift-bridge.gen"

// Context holds everything a generator needs to produce output.
type Context struct {
	Definition   *model.BridgeDefinition
	Declarations []*bridge.FunctionDeclaration
	Synthesizer  *bridge.Synthesizer
	Config       *loader.Config
	OutputDir    string
	DefPath      string // Path to the bridge definition YAML (named in file headers)
	ToolVersion  string
	Log          commonlog.Logger

	// Cancel stops batch synthesis early; nil means never.
	Cancel context.Context

	once   sync.Once
	result *bridge.BatchResult
	err    error
}

// NewContext lowers a validated definition and builds the synthesizer
// described by cfg. A nil cfg means loader.DefaultConfig().
func NewContext(def *model.BridgeDefinition, cfg *loader.Config, outputDir string, defPath string) (*Context, error) {
	if cfg == nil {
		cfg = loader.DefaultConfig()
	}
	decls, err := resolver.Declarations(def)
	if err != nil {
		return nil, fmt.Errorf("lowering declarations: %w", err)
	}

	typeNames := make([]string, len(def.Types))
	for i, t := range def.Types {
		typeNames[i] = t.Name
	}
	catalog := builtin.NewCatalog(cfg.Codegen.SupportCrate)
	commonlog.GetLogger(logName).Debugf("support crate %s: builtin kinds %s",
		cfg.Codegen.SupportCrate, strings.Join(catalog.Kinds(), ", "))
	classifier := bridge.NewClassifier(catalog, typeNames)

	return &Context{
		Definition:   def,
		Declarations: decls,
		Synthesizer:  bridge.NewSynthesizer(classifier, cfg.SynthOptions()),
		Config:       cfg,
		OutputDir:    outputDir,
		DefPath:      defPath,
		ToolVersion:  "dev",
	}, nil
}

// Wrappers synthesizes every declaration once and caches the result, so
// generators sharing a context agree on the same batch.
func (c *Context) Wrappers() (*bridge.BatchResult, error) {
	c.once.Do(func() {
		parent := c.Cancel
		if parent == nil {
			parent = context.Background()
		}
		c.result, c.err = c.Synthesizer.SynthesizeAll(parent, c.Declarations, bridge.BatchOptions{
			Policy: c.Config.Policy(),
		})
	})
	return c.result, c.err
}

func (c *Context) logger() commonlog.Logger {
	if c.Log == nil {
		c.Log = commonlog.GetLogger(logName)
	}
	return c.Log
}
