package builtin

import "github.com/rkreutz/swift-bridge/model"

func init() {
	Register("slice", matchSlice)
}

// Slice is &[T] or &mut [T] over a primitive element type, passed as a
// pointer/length pair.
type Slice struct {
	cat  *Catalog
	Elem string
	Mut  bool
}

func (s Slice) Kind() string { return "slice" }

func (s Slice) FFIType() string {
	if s.Mut {
		return s.cat.path("RustSliceMut<" + s.Elem + ">")
	}
	return s.cat.path("RustSlice<" + s.Elem + ">")
}

func (s Slice) ToFFI(expr string) string {
	if s.Mut {
		return s.cat.path("RustSliceMut::from_slice_mut") + "(" + expr + ")"
	}
	return s.cat.path("RustSlice::from_slice") + "(" + expr + ")"
}

func (s Slice) FromFFI(expr string) string {
	if s.Mut {
		return expr + ".as_slice_mut()"
	}
	return expr + ".as_slice()"
}

func (s Slice) Passthrough() bool { return false }

func matchSlice(c *Catalog, t *model.Type) (Type, bool) {
	if t.Kind != model.TypeReference || t.Elem == nil || t.Elem.Kind != model.TypeSlice {
		return nil, false
	}
	elem := t.Elem.Elem
	if !IsPrimitive(elem) {
		return nil, false
	}
	return Slice{cat: c, Elem: elem.Name, Mut: t.Mut}, true
}
