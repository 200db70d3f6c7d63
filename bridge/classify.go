package bridge

import (
	"github.com/rkreutz/swift-bridge/builtin"
	"github.com/rkreutz/swift-bridge/model"
)

// OpaqueFFIType is the FFI representation of every opaque handle.
const OpaqueFFIType = "*mut std::ffi::c_void"

// Catalog answers whether a type has a known FFI-safe encoding.
// *builtin.Catalog satisfies it.
type Catalog interface {
	Lookup(t *model.Type) (builtin.Type, bool)
}

// ClassKind is the branch a type expression classifies into.
type ClassKind int

const (
	ClassBuiltIn ClassKind = iota
	ClassOpaque
)

// Classification is the result of classifying one type expression.
type Classification struct {
	Kind     ClassKind
	BuiltIn  builtin.Type // ClassBuiltIn only
	TypeName string       // ClassOpaque only
	Borrowed bool         // ClassOpaque only: written as &T or &mut T
}

// FFIType returns the Rust type used for this value at the FFI boundary.
func (c Classification) FFIType() string {
	if c.Kind == ClassOpaque {
		return OpaqueFFIType
	}
	return c.BuiltIn.FFIType()
}

// Classifier resolves type expressions against the built-in catalog and the
// set of declared opaque types. It is read-only after construction.
type Classifier struct {
	catalog Catalog
	types   map[string]bool
}

// NewClassifier returns a classifier over the given catalog and declared types.
func NewClassifier(catalog Catalog, typeNames []string) *Classifier {
	types := make(map[string]bool, len(typeNames))
	for _, n := range typeNames {
		types[n] = true
	}
	return &Classifier{catalog: catalog, types: types}
}

// IsDeclared returns true if name is a declared opaque type.
func (c *Classifier) IsDeclared(name string) bool {
	return c.types[name]
}

// Classify classifies t. The returned error is an *UnsupportedTypeError
// without declaration context.
func (c *Classifier) Classify(t *model.Type) (Classification, error) {
	if t == nil || t.IsUnit() {
		return Classification{}, &UnsupportedTypeError{Type: "()", Reason: "unit is only valid as a return type"}
	}
	if bt, ok := c.catalog.Lookup(t); ok {
		return Classification{Kind: ClassBuiltIn, BuiltIn: bt}, nil
	}

	named, borrowed := t, false
	if t.Kind == model.TypeReference {
		named, borrowed = t.Elem, true
	}
	if named.Kind == model.TypePath && len(named.Args) == 0 && c.types[named.Name] {
		return Classification{Kind: ClassOpaque, TypeName: named.Name, Borrowed: borrowed}, nil
	}
	return Classification{}, &UnsupportedTypeError{
		Type:   t.String(),
		Reason: "not a built-in type and not a declared opaque type",
	}
}
