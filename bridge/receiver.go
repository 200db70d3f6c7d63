package bridge

import (
	"github.com/rkreutz/swift-bridge/model"
)

// NormalizeParams rewrites an explicitly typed "self" parameter into its bare
// receiver token:
//
//	self: Foo      -> self
//	self: &Foo     -> &self
//	self: &mut Foo -> &mut self
//
// Detection is by name only, so an ordinary parameter typed &Foo passes
// through untouched. Already-bare receiver tokens are left as they are.
// Parameters are never reordered, added or removed.
func NormalizeParams(params []Param, associatedType string) ([]Param, ReceiverForm, error) {
	out := make([]Param, len(params))
	form := ReceiverNone

	for i, p := range params {
		if !isReceiverSlot(p) {
			out[i] = p
			continue
		}
		if i != 0 {
			return nil, ReceiverNone, &MalformedReceiverError{
				Type:   receiverTypeString(p),
				Reason: "the receiver must be the first parameter",
			}
		}
		if associatedType == "" {
			return nil, ReceiverNone, &MalformedReceiverError{
				Type:   receiverTypeString(p),
				Reason: "function has no associated type",
			}
		}

		form = p.Receiver
		if !p.IsReceiverToken() {
			f, err := receiverForm(p.Type, associatedType)
			if err != nil {
				return nil, ReceiverNone, err
			}
			form = f
		}
		out[i] = Param{Name: model.SelfName, Receiver: form}
	}
	return out, form, nil
}

func isReceiverSlot(p Param) bool {
	return p.IsReceiverToken() || p.Name == model.SelfName
}

func receiverTypeString(p Param) string {
	if p.Type == nil {
		return ""
	}
	return p.Type.String()
}

func receiverForm(t *model.Type, associatedType string) (ReceiverForm, error) {
	switch {
	case t == nil:
		return ReceiverNone, &MalformedReceiverError{Reason: "missing receiver type"}
	case t.IsPath(associatedType):
		return ReceiverByValue, nil
	case t.Kind == model.TypeReference && t.Elem.IsPath(associatedType):
		if t.Mut {
			return ReceiverByMutableReference, nil
		}
		return ReceiverByReference, nil
	}
	return ReceiverNone, &MalformedReceiverError{
		Type:   t.String(),
		Reason: "expected " + associatedType + ", &" + associatedType + " or &mut " + associatedType,
	}
}
