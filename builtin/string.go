package builtin

import "github.com/rkreutz/swift-bridge/model"

func init() {
	Register("str", matchStr)
	Register("string", matchString)
}

// Str is a borrowed &str, passed as a pointer/length RustStr.
type Str struct {
	cat *Catalog
}

func (s Str) Kind() string    { return "str" }
func (s Str) FFIType() string { return s.cat.path("string::RustStr") }

func (s Str) ToFFI(expr string) string {
	return s.cat.path("string::RustStr::from_str") + "(" + expr + ")"
}

func (s Str) FromFFI(expr string) string { return expr + ".to_str()" }
func (s Str) Passthrough() bool          { return false }

func matchStr(c *Catalog, t *model.Type) (Type, bool) {
	if t.Kind == model.TypeReference && !t.Mut && t.Elem.IsPath("str") {
		return Str{cat: c}, true
	}
	return nil, false
}

// String is an owned String, moved across the boundary as a RustString.
type String struct {
	cat *Catalog
}

func (s String) Kind() string    { return "string" }
func (s String) FFIType() string { return s.cat.path("string::RustString") }

func (s String) ToFFI(expr string) string {
	return s.cat.path("string::RustString::from_string") + "(" + expr + ")"
}

func (s String) FromFFI(expr string) string { return expr + ".into_string()" }
func (s String) Passthrough() bool          { return false }

func matchString(c *Catalog, t *model.Type) (Type, bool) {
	if t.IsPath("String") || t.IsPath("std::string::String") {
		return String{cat: c}, true
	}
	return nil, false
}
