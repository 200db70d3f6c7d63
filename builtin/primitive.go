package builtin

import "github.com/rkreutz/swift-bridge/model"

func init() {
	Register("primitive", matchPrimitive)
}

var primitiveTypes = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true, "usize": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "isize": true,
	"f32": true, "f64": true, "bool": true,
}

// IsPrimitive returns true if t is a numeric or boolean primitive.
func IsPrimitive(t *model.Type) bool {
	return t != nil && t.Kind == model.TypePath && len(t.Args) == 0 && primitiveTypes[t.Name]
}

// Primitive is a numeric or boolean type. It crosses the boundary unchanged.
type Primitive struct {
	Name string
}

func (p Primitive) Kind() string               { return "primitive" }
func (p Primitive) FFIType() string            { return p.Name }
func (p Primitive) ToFFI(expr string) string   { return expr }
func (p Primitive) FromFFI(expr string) string { return expr }
func (p Primitive) Passthrough() bool          { return true }

func matchPrimitive(_ *Catalog, t *model.Type) (Type, bool) {
	if !IsPrimitive(t) {
		return nil, false
	}
	return Primitive{Name: t.Name}, true
}
