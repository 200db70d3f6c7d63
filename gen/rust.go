package gen

import (
	"fmt"
	"strings"

	"github.com/rkreutz/swift-bridge/bridge"
)

func init() {
	Register("rust", func() Generator { return &RustGenerator{} })
}

// RustGenerator produces the Rust wrapper module: one handle struct per
// opaque type with its Drop impl, impl blocks holding the synthesized
// wrappers, free functions, and the extern "C" block they call into.
type RustGenerator struct{}

func (g *RustGenerator) Name() string { return "rust" }

func (g *RustGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	batch, err := ctx.Wrappers()
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	s := ctx.Synthesizer
	groups, order := groupWrappers(ctx, batch.Wrappers)

	for _, t := range ctx.Definition.Types {
		writeHandleStruct(&b, s, t.Name, t.Description)
	}
	for _, typeName := range order {
		writeImplBlock(&b, typeName, groups[typeName])
	}
	for _, w := range groups[""] {
		b.WriteString(w.Render(""))
		b.WriteString("\n")
	}
	writeExternBlock(&b, ctx, batch.Wrappers)

	content := prependHeader(GeneratedFileHeader(ctx, "//"), []byte(b.String()))
	return []*OutputFile{{
		Path:    RustFileName(ctx.Definition.Bridge.Name),
		Content: content,
		Rust:    true,
	}}, nil
}

// groupWrappers buckets wrappers by impl block, keeping declaration order
// within each bucket. order lists the non-empty type buckets: declared types
// first, then any other association in order of first appearance.
func groupWrappers(ctx *Context, wrappers []*bridge.WrapperFunction) (map[string][]*bridge.WrapperFunction, []string) {
	groups := make(map[string][]*bridge.WrapperFunction)
	var extra []string
	for _, w := range wrappers {
		if _, seen := groups[w.TypeName]; !seen && w.TypeName != "" && !ctx.Synthesizer.Classifier().IsDeclared(w.TypeName) {
			extra = append(extra, w.TypeName)
		}
		groups[w.TypeName] = append(groups[w.TypeName], w)
	}

	var order []string
	for _, t := range ctx.Definition.Types {
		if len(groups[t.Name]) > 0 {
			order = append(order, t.Name)
		}
	}
	return groups, append(order, extra...)
}

func writeHandleStruct(b *strings.Builder, s *bridge.Synthesizer, name, description string) {
	vis := ""
	if s.Visibility() != "" {
		vis = s.Visibility() + " "
	}
	if description != "" {
		fmt.Fprintf(b, "/// %s\n", description)
	}
	fmt.Fprintf(b, "#[repr(transparent)]\n")
	fmt.Fprintf(b, "%sstruct %s(%s);\n\n", vis, name, bridge.OpaqueFFIType)

	free := s.FreeExtern(name)
	fmt.Fprintf(b, "impl Drop for %s {\n", name)
	fmt.Fprintf(b, "    fn drop(&mut self) {\n")
	fmt.Fprintf(b, "        %s\n", bridge.UnsafeCall(free.Symbol.Ident, []string{"self.0"}))
	fmt.Fprintf(b, "    }\n")
	fmt.Fprintf(b, "}\n\n")
}

func writeImplBlock(b *strings.Builder, typeName string, wrappers []*bridge.WrapperFunction) {
	fmt.Fprintf(b, "impl %s {\n", typeName)
	for i, w := range wrappers {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(w.Render("    "))
	}
	b.WriteString("}\n\n")
}

func writeExternBlock(b *strings.Builder, ctx *Context, wrappers []*bridge.WrapperFunction) {
	var externs []bridge.ExternFunction
	for _, t := range ctx.Definition.Types {
		externs = append(externs, ctx.Synthesizer.FreeExtern(t.Name))
	}
	for _, w := range wrappers {
		externs = append(externs, w.Extern)
	}

	b.WriteString("#[allow(non_snake_case, improper_ctypes)]\n")
	b.WriteString("extern \"C\" {\n")
	for i := range externs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(externs[i].Render("    "))
	}
	b.WriteString("}\n")
}
