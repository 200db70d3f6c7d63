package bridge

import (
	"fmt"
	"strings"
)

// Signature renders the wrapper's Rust signature without a body.
func (w *WrapperFunction) Signature() string {
	params := make([]string, len(w.Params))
	for i, p := range w.Params {
		params[i] = p.String()
	}

	var b strings.Builder
	if w.Visibility != "" {
		b.WriteString(w.Visibility)
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "fn %s(%s)", w.Name, strings.Join(params, ", "))
	if !w.Returns.IsUnit() {
		b.WriteString(" -> ")
		b.WriteString(w.Returns.String())
	}
	return b.String()
}

// Render writes the complete wrapper function, each line prefixed by indent.
func (w *WrapperFunction) Render(indent string) string {
	var b strings.Builder
	if w.Description != "" {
		fmt.Fprintf(&b, "%s/// %s\n", indent, w.Description)
	}
	fmt.Fprintf(&b, "%s%s {\n", indent, w.Signature())
	fmt.Fprintf(&b, "%s    %s\n", indent, w.Body)
	fmt.Fprintf(&b, "%s}\n", indent)
	return b.String()
}

// Render writes the extern declaration with its link name attribute.
func (e *ExternFunction) Render(indent string) string {
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = p.Name + ": " + p.Type
	}
	ret := ""
	if e.Returns != "" {
		ret = " -> " + e.Returns
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s#[link_name = %q]\n", indent, e.Symbol.LinkName)
	fmt.Fprintf(&b, "%sfn %s(%s)%s;\n", indent, e.Symbol.Ident, strings.Join(params, ", "), ret)
	return b.String()
}
