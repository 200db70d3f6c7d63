package builtin

import "github.com/rkreutz/swift-bridge/model"

func init() {
	Register("option", matchOption)
}

// Option is Option<T> over another built-in. Nested options are not
// representable.
type Option struct {
	cat   *Catalog
	Inner Type
}

func (o Option) Kind() string { return "option" }

func (o Option) FFIType() string {
	return o.cat.path("option::FfiOption<" + o.Inner.FFIType() + ">")
}

func (o Option) ToFFI(expr string) string {
	if !o.Inner.Passthrough() {
		expr = expr + ".map(|v| " + o.Inner.ToFFI("v") + ")"
	}
	return o.cat.path("option::FfiOption::from_option") + "(" + expr + ")"
}

func (o Option) FromFFI(expr string) string {
	out := expr + ".into_option()"
	if !o.Inner.Passthrough() {
		out += ".map(|v| " + o.Inner.FromFFI("v") + ")"
	}
	return out
}

func (o Option) Passthrough() bool { return false }

func matchOption(c *Catalog, t *model.Type) (Type, bool) {
	if t.Kind != model.TypePath || len(t.Args) != 1 {
		return nil, false
	}
	if t.Name != "Option" && t.Name != "std::option::Option" {
		return nil, false
	}
	inner, ok := c.Lookup(t.Args[0])
	if !ok || inner.Kind() == "option" {
		return nil, false
	}
	return Option{cat: c, Inner: inner}, true
}
