package gen

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rkreutz/swift-bridge/bridge"
	"github.com/rkreutz/swift-bridge/loader"
	"github.com/rkreutz/swift-bridge/validate"
)

// loadTestBridge loads, validates and lowers a definition from testdata.
// A nil cfg means the default configuration.
func loadTestBridge(t *testing.T, name string, cfg *loader.Config) *Context {
	t.Helper()
	path := filepath.Join("..", "testdata", name)
	def, err := loader.LoadBridgeDefinition(path)
	if err != nil {
		t.Fatalf("loading %s: %v", name, err)
	}
	if result := validate.Validate(def, ""); !result.IsValid() {
		t.Fatalf("validating %s:\n%s", name, result.Error())
	}
	ctx, err := NewContext(def, cfg, t.TempDir(), path)
	if err != nil {
		t.Fatalf("creating context for %s: %v", name, err)
	}
	return ctx
}

func TestNewContext(t *testing.T) {
	ctx := loadTestBridge(t, "minimal.yaml", nil)

	if len(ctx.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(ctx.Declarations))
	}
	if ctx.Declarations[0].AssociatedType != "Foo" {
		t.Errorf("expected initializer associated to Foo, got %q", ctx.Declarations[0].AssociatedType)
	}
	if ctx.Synthesizer.SymbolPrefix() != bridge.DefaultSymbolPrefix {
		t.Errorf("unexpected prefix %q", ctx.Synthesizer.SymbolPrefix())
	}
	if !ctx.Synthesizer.Classifier().IsDeclared("Foo") {
		t.Error("expected Foo to be a declared opaque type")
	}
}

func TestContext_WrappersCached(t *testing.T) {
	ctx := loadTestBridge(t, "minimal.yaml", nil)

	first, err := ctx.Wrappers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := ctx.Wrappers()
	if first != second {
		t.Error("expected the batch result to be cached")
	}
	if len(first.Wrappers) != 2 || first.Wrappers[0].Name != "new" || first.Wrappers[1].Name != "as_slice" {
		t.Errorf("expected wrappers [new as_slice] in declaration order, got %d", len(first.Wrappers))
	}
}

func TestContext_FailFast(t *testing.T) {
	ctx := loadTestBridge(t, "unsupported.yaml", nil)
	_, err := ctx.Wrappers()
	if err == nil {
		t.Fatal("expected unsupported type error")
	}
	var ut *bridge.UnsupportedTypeError
	if !errors.As(err, &ut) || ut.Function != "push_all" {
		t.Errorf("expected UnsupportedTypeError for push_all, got %v", err)
	}
}

func TestContext_SkipAndReport(t *testing.T) {
	cfg := loader.DefaultConfig()
	cfg.Codegen.OnError = loader.OnErrorSkip
	ctx := loadTestBridge(t, "unsupported.yaml", cfg)

	batch, err := ctx.Wrappers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Wrappers) != 2 {
		t.Fatalf("expected 2 wrappers, got %d", len(batch.Wrappers))
	}
	if batch.Wrappers[0].Name != "new" || batch.Wrappers[1].Name != "len" {
		t.Errorf("unexpected wrapper order: %s, %s", batch.Wrappers[0].Name, batch.Wrappers[1].Name)
	}
	if len(batch.Skipped) != 1 {
		t.Errorf("expected 1 skipped declaration, got %d", len(batch.Skipped))
	}
}
