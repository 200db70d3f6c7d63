package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapperFunction_Render(t *testing.T) {
	d := method("as_slice", "&[u8]", param("self", "&Foo"))
	d.Description = "Borrow the underlying bytes."
	w, err := newTestSynthesizer().Synthesize(d)
	require.NoError(t, err)

	want := "    /// Borrow the underlying bytes.\n" +
		"    pub fn as_slice(&self) -> &[u8] {\n" +
		"        unsafe { __swift_bridge__Foo_as_slice(self.0) }.as_slice()\n" +
		"    }\n"
	assert.Equal(t, want, w.Render("    "))
}

func TestExternFunction_Render(t *testing.T) {
	w, err := newTestSynthesizer().Synthesize(method("some_function", "&str", param("self", "&Foo"), param("arg", "&str")))
	require.NoError(t, err)

	want := "#[link_name = \"__swift_bridge__$Foo$some_function\"]\n" +
		"fn __swift_bridge__Foo_some_function(this: *mut std::ffi::c_void, arg: swift_bridge::string::RustStr) -> swift_bridge::string::RustStr;\n"
	assert.Equal(t, want, w.Extern.Render(""))
}

func TestExternFunction_RenderUnit(t *testing.T) {
	e := newTestSynthesizer().FreeExtern("Foo")
	assert.Equal(t,
		"    #[link_name = \"__swift_bridge__$Foo$_free\"]\n    fn __swift_bridge__Foo__free(this: *mut std::ffi::c_void);\n",
		e.Render("    "))
}
