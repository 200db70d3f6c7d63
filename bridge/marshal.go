package bridge

import (
	"github.com/rkreutz/swift-bridge/model"
)

// CallArg is one argument of the raw extern call: the expression passed at
// the call site and the parameter it binds to in the extern declaration.
type CallArg struct {
	Expr   string
	Extern ExternParam
}

// receiverParamName names the receiver handle in extern declarations.
const receiverParamName = "this"

// ReceiverArg returns the leading call argument for a receiver: the raw
// handle inside the wrapped opaque pointer. A by-value receiver gives up
// ownership, so its destructor must not run.
func ReceiverArg(form ReceiverForm) (CallArg, bool) {
	if form == ReceiverNone {
		return CallArg{}, false
	}
	expr := "self.0"
	if form == ReceiverByValue {
		expr = ownedHandle("self")
	}
	return CallArg{
		Expr:   expr,
		Extern: ExternParam{Name: receiverParamName, Type: OpaqueFFIType},
	}, true
}

// MarshalArgs converts each non-receiver parameter into its FFI call
// argument, in declaration order. Receiver tokens are skipped.
func (c *Classifier) MarshalArgs(params []Param) ([]CallArg, error) {
	var args []CallArg
	for _, p := range params {
		if p.IsReceiverToken() {
			continue
		}
		cls, err := c.Classify(p.Type)
		if err != nil {
			return nil, atPosition(err, "param "+p.Name)
		}
		args = append(args, CallArg{
			Expr:   argExpr(cls, p.Name),
			Extern: ExternParam{Name: p.Name, Type: cls.FFIType()},
		})
	}
	return args, nil
}

func argExpr(cls Classification, name string) string {
	switch {
	case cls.Kind == ClassOpaque && cls.Borrowed:
		return name + ".0"
	case cls.Kind == ClassOpaque:
		return ownedHandle(name)
	case cls.BuiltIn.Passthrough():
		return name
	default:
		return cls.BuiltIn.ToFFI(name)
	}
}

// MarshalReturn wraps the raw extern call so the wrapper returns a safe
// native value. It also returns the FFI return type, empty for unit.
func (c *Classifier) MarshalReturn(ret *model.Type, raw string) (string, string, error) {
	if ret.IsUnit() {
		return raw, "", nil
	}
	cls, err := c.Classify(ret)
	if err != nil {
		return "", "", atPosition(err, "return")
	}
	switch {
	case cls.Kind == ClassOpaque && cls.Borrowed:
		return "", "", &UnsupportedTypeError{
			Position: "return",
			Type:     ret.String(),
			Reason:   "a borrowed opaque handle cannot be returned",
		}
	case cls.Kind == ClassOpaque:
		// The new value owns the handle the foreign side returned.
		return cls.TypeName + "(" + raw + ")", OpaqueFFIType, nil
	default:
		return cls.BuiltIn.FromFFI(raw), cls.BuiltIn.FFIType(), nil
	}
}

func ownedHandle(name string) string {
	return "std::mem::ManuallyDrop::new(" + name + ").0"
}

func atPosition(err error, pos string) error {
	if ut, ok := err.(*UnsupportedTypeError); ok {
		ut.Position = pos
	}
	return err
}
