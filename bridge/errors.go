package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType matches any *UnsupportedTypeError.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrMalformedReceiver matches any *MalformedReceiverError.
	ErrMalformedReceiver = errors.New("malformed receiver")
)

// UnsupportedTypeError reports a parameter or return type that is neither a
// built-in nor a declared opaque type.
type UnsupportedTypeError struct {
	TypeName string // declaring type, empty for free functions
	Function string
	Position string // "param <name>" or "return"
	Type     string
	Reason   string
}

func (e *UnsupportedTypeError) Error() string {
	msg := fmt.Sprintf("%s: unsupported type %s", e.Position, e.Type)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return qualify(e.TypeName, e.Function) + ": " + msg
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// MalformedReceiverError reports a "self" parameter whose shape cannot be
// rewritten into one of the three receiver forms.
type MalformedReceiverError struct {
	TypeName string
	Function string
	Type     string
	Reason   string
}

func (e *MalformedReceiverError) Error() string {
	msg := "malformed receiver"
	if e.Type != "" {
		msg += " self: " + e.Type
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return qualify(e.TypeName, e.Function) + ": " + msg
}

func (e *MalformedReceiverError) Is(target error) bool {
	return target == ErrMalformedReceiver
}

// annotate stamps the declaration context onto errors raised by the
// context-free stages.
func annotate(err error, d *FunctionDeclaration) error {
	var ut *UnsupportedTypeError
	if errors.As(err, &ut) {
		ut.TypeName, ut.Function = d.AssociatedType, d.Name
		return err
	}
	var mr *MalformedReceiverError
	if errors.As(err, &mr) {
		mr.TypeName, mr.Function = d.AssociatedType, d.Name
	}
	return err
}

func qualify(typeName, fn string) string {
	if typeName == "" {
		return fn
	}
	return typeName + "::" + fn
}
