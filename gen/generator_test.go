package gen

import (
	"testing"
)

func TestRegistry(t *testing.T) {
	names := All()
	for _, want := range DefaultGenerators {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("default generator %q is not registered", want)
		}
	}

	g, ok := Get("rust")
	if !ok || g.Name() != "rust" {
		t.Error("expected rust generator")
	}
	if _, ok := Get("kotlin"); ok {
		t.Error("expected unknown generator to be missing")
	}
}

func TestRegister_Duplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("rust", func() Generator { return &RustGenerator{} })
}

func TestRun(t *testing.T) {
	ctx := loadTestBridge(t, "minimal.yaml", nil)
	files, err := Run(ctx, DefaultGenerators)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Path != "test_bridge.rs" || files[1].Path != "test_bridge_symbols.yaml" {
		t.Errorf("unexpected files: %s, %s", files[0].Path, files[1].Path)
	}

	if _, err := Run(ctx, []string{"nope"}); err == nil {
		t.Error("expected error for unknown generator")
	}
}
