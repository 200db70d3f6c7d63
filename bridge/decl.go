package bridge

import (
	"github.com/rkreutz/swift-bridge/model"
)

// ReceiverForm is how a method receives its instance.
type ReceiverForm int

const (
	ReceiverNone ReceiverForm = iota
	ReceiverByValue
	ReceiverByReference
	ReceiverByMutableReference
)

// String returns the bare receiver token ("self", "&self", "&mut self").
func (r ReceiverForm) String() string {
	switch r {
	case ReceiverByValue:
		return "self"
	case ReceiverByReference:
		return "&self"
	case ReceiverByMutableReference:
		return "&mut self"
	default:
		return ""
	}
}

// Param is a function parameter. A normalized receiver has a nil Type and a
// Receiver other than ReceiverNone.
type Param struct {
	Name     string
	Type     *model.Type
	Receiver ReceiverForm
}

// IsReceiverToken returns true for an already-normalized receiver.
func (p Param) IsReceiverToken() bool {
	return p.Receiver != ReceiverNone
}

// String renders the parameter as it appears in a Rust signature.
func (p Param) String() string {
	if p.IsReceiverToken() {
		return p.Receiver.String()
	}
	return p.Name + ": " + p.Type.String()
}

// Modifiers are the declaration attributes that change how a function binds.
type Modifiers struct {
	Init         bool   // constructs the associated type
	AssociatedTo string // explicit association for static functions
}

// FunctionDeclaration is a parsed foreign function or method signature.
type FunctionDeclaration struct {
	Name           string
	Description    string
	Params         []Param
	Returns        *model.Type // nil means unit
	AssociatedType string      // declaring type; empty for free functions
	Modifiers      Modifiers
}

// QualifiedName returns "Type::name" or "name" for free functions.
func (d *FunctionDeclaration) QualifiedName() string {
	return qualify(d.AssociatedType, d.Name)
}

// WrapperFunction is a synthesized native-side wrapper.
type WrapperFunction struct {
	Name        string
	Description string
	Visibility  string // "pub", "pub(crate)", "pub(super)", or empty for private
	TypeName    string // impl block the wrapper belongs to; empty for free functions
	Receiver    ReceiverForm
	Params      []Param // normalized; the receiver token, if any, is first
	Returns     *model.Type
	Body        string
	Extern      ExternFunction
}

// ExternFunction is the foreign symbol a wrapper calls, as declared in the
// extern "C" block.
type ExternFunction struct {
	Symbol  Symbol
	Params  []ExternParam
	Returns string // FFI type; empty for unit
}

// ExternParam is one parameter of an extern declaration.
type ExternParam struct {
	Name string
	Type string
}
