package gen

import (
	"strings"
	"testing"

	"github.com/rkreutz/swift-bridge/bridge"
	"github.com/rkreutz/swift-bridge/loader"
)

func generateRust(t *testing.T, ctx *Context) string {
	t.Helper()
	files, err := (&RustGenerator{}).Generate(ctx)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 output file, got %d", len(files))
	}
	if !files[0].Rust {
		t.Error("wrapper module should be marked as Rust source")
	}
	return string(files[0].Content)
}

func TestRustGenerator_Minimal(t *testing.T) {
	ctx := loadTestBridge(t, "minimal.yaml", nil)
	files, err := (&RustGenerator{}).Generate(ctx)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if files[0].Path != "test_bridge.rs" {
		t.Errorf("expected path %q, got %q", "test_bridge.rs", files[0].Path)
	}

	content := string(files[0].Content)
	for _, want := range []string{
		"// Code generated by swift-bridge dev from minimal.yaml. DO NOT EDIT.",
		"// Bridge: test_bridge 0.1.0",
		"pub struct Foo(*mut std::ffi::c_void);",
		"impl Drop for Foo {\n    fn drop(&mut self) {\n        unsafe { __swift_bridge__Foo__free(self.0) }\n    }\n}",
		"impl Foo {\n    pub fn new() -> Foo {\n        Foo(unsafe { __swift_bridge__Foo_new() })\n    }\n",
		"    pub fn as_slice(&self) -> &[u8] {\n        unsafe { __swift_bridge__Foo_as_slice(self.0) }.as_slice()\n    }\n}",
		"extern \"C\" {",
		"    #[link_name = \"__swift_bridge__$Foo$_free\"]\n    fn __swift_bridge__Foo__free(this: *mut std::ffi::c_void);",
		"    #[link_name = \"__swift_bridge__$Foo$new\"]\n    fn __swift_bridge__Foo_new() -> *mut std::ffi::c_void;",
		"    #[link_name = \"__swift_bridge__$Foo$as_slice\"]\n    fn __swift_bridge__Foo_as_slice(this: *mut std::ffi::c_void) -> swift_bridge::RustSlice<u8>;",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("missing %q in:\n%s", want, content)
		}
	}
}

func TestRustGenerator_Full(t *testing.T) {
	content := generateRust(t, loadTestBridge(t, "full.yaml", nil))

	for _, want := range []string{
		"/// A configured processing pipeline.\n#[repr(transparent)]\npub struct Pipeline(",
		"pub struct Frame(",
		"pub fn new(label: &str) -> Pipeline {\n        Pipeline(unsafe { __swift_bridge__Pipeline_new(swift_bridge::string::RustStr::from_str(label)) })",
		"pub fn with_capacity(capacity: usize) -> Pipeline",
		"    /// Human-readable label.\n    pub fn label(&self) -> &str {",
		"unsafe { __swift_bridge__Pipeline_push(self.0, std::mem::ManuallyDrop::new(frame).0) }",
		"pub fn finish(self) -> u32 {\n        unsafe { __swift_bridge__Pipeline_finish(std::mem::ManuallyDrop::new(self).0) }",
		"pub fn last_timestamp(&self) -> Option<u64> {\n        unsafe { __swift_bridge__Pipeline_last_timestamp(self.0) }.into_option()",
		"pub fn decode(bytes: &[u8]) -> Frame {\n        Frame(unsafe { __swift_bridge__Frame_decode(swift_bridge::RustSlice::from_slice(bytes)) })",
		"pub fn pixels_mut(&mut self) -> &mut [u8] {\n        unsafe { __swift_bridge__Frame_pixels_mut(self.0) }.as_slice_mut()",
		"pub fn library_version() -> u32 {\n    unsafe { __swift_bridge__library_version() }\n}",
		"fn __swift_bridge__Frame_rename(this: *mut std::ffi::c_void, name: swift_bridge::option::FfiOption<swift_bridge::string::RustString>) -> swift_bridge::option::FfiOption<swift_bridge::string::RustString>;",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("missing %q", want)
		}
	}

	// Pipeline's impl block comes before Frame's, and free functions follow
	// every impl block.
	pipelineImpl := strings.Index(content, "impl Pipeline {")
	frameImpl := strings.Index(content, "impl Frame {")
	freeFn := strings.Index(content, "pub fn library_version")
	externs := strings.Index(content, "extern \"C\" {")
	if pipelineImpl < 0 || frameImpl < pipelineImpl || freeFn < frameImpl || externs < freeFn {
		t.Errorf("unexpected section order: Pipeline=%d Frame=%d free=%d extern=%d", pipelineImpl, frameImpl, freeFn, externs)
	}

	// Wrappers keep declaration order inside an impl block.
	if strings.Index(content, "pub fn new(") > strings.Index(content, "pub fn with_capacity(") {
		t.Error("expected new before with_capacity")
	}
}

func TestRustGenerator_Config(t *testing.T) {
	cfg, err := loader.LoadConfig("../testdata/config")
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	cfg.Codegen.Visibility = "pub(crate)"
	content := generateRust(t, loadTestBridge(t, "minimal.yaml", cfg))

	for _, want := range []string{
		"pub(crate) struct Foo(",
		"pub(crate) fn as_slice(&self) -> &[u8]",
		"unsafe { __image__Foo_as_slice(self.0) }.as_slice()",
		"#[link_name = \"__image__$Foo$as_slice\"]",
		"-> crate::ffi::RustSlice<u8>;",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("missing %q in:\n%s", want, content)
		}
	}
}

func TestRustGenerator_SkipsUnsupported(t *testing.T) {
	cfg := loader.DefaultConfig()
	cfg.Codegen.OnError = loader.OnErrorSkip
	content := generateRust(t, loadTestBridge(t, "unsupported.yaml", cfg))

	if strings.Contains(content, "push_all") {
		t.Error("unsupported declaration should not be emitted")
	}
	if !strings.Contains(content, "pub fn len(&self) -> usize") {
		t.Error("missing supported wrapper len")
	}
}

func TestRustGenerator_FailFast(t *testing.T) {
	ctx := loadTestBridge(t, "unsupported.yaml", nil)
	files, err := (&RustGenerator{}).Generate(ctx)
	if err == nil {
		t.Fatal("expected error")
	}
	if files != nil {
		t.Error("expected no partial output")
	}
	if !strings.Contains(err.Error(), "Foo::push_all: param items: unsupported type Vec<u8>") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGroupWrappers_Order(t *testing.T) {
	ctx := loadTestBridge(t, "minimal.yaml", nil)
	wrappers := []*bridge.WrapperFunction{
		{Name: "a", TypeName: "Other"},
		{Name: "b", TypeName: "Foo"},
		{Name: "c"},
		{Name: "d", TypeName: "Other"},
	}
	groups, order := groupWrappers(ctx, wrappers)
	if strings.Join(order, ",") != "Foo,Other" {
		t.Errorf("expected declared types first, got %v", order)
	}
	if len(groups["Other"]) != 2 || groups["Other"][1].Name != "d" {
		t.Errorf("expected both Other wrappers in declaration order, got %v", groups["Other"])
	}
	if len(groups[""]) != 1 {
		t.Errorf("expected one free function, got %d", len(groups[""]))
	}
}
