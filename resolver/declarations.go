package resolver

import (
	"fmt"

	"github.com/rkreutz/swift-bridge/bridge"
	"github.com/rkreutz/swift-bridge/model"
)

// receiverTokens maps bare receiver spellings to their form.
var receiverTokens = map[string]bridge.ReceiverForm{
	"self":      bridge.ReceiverByValue,
	"&self":     bridge.ReceiverByReference,
	"&mut self": bridge.ReceiverByMutableReference,
}

// Declarations lowers every function of a bridge definition into a core
// declaration, in definition order.
func Declarations(def *model.BridgeDefinition) ([]*bridge.FunctionDeclaration, error) {
	decls := make([]*bridge.FunctionDeclaration, 0, len(def.Functions))
	for i := range def.Functions {
		d, err := Declaration(def, &def.Functions[i])
		if err != nil {
			return nil, fmt.Errorf("functions[%d] %s: %w", i, def.Functions[i].Name, err)
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// Declaration lowers a single function definition.
func Declaration(def *model.BridgeDefinition, fn *model.FunctionDef) (*bridge.FunctionDeclaration, error) {
	d := &bridge.FunctionDeclaration{
		Name:        fn.Name,
		Description: fn.Description,
		Modifiers: bridge.Modifiers{
			Init:         fn.Init,
			AssociatedTo: fn.AssociatedTo,
		},
	}

	for _, p := range fn.Parameters {
		param, err := lowerParam(&p)
		if err != nil {
			return nil, err
		}
		d.Params = append(d.Params, param)
	}

	if fn.Returns != "" {
		ret, err := model.ParseType(fn.Returns)
		if err != nil {
			return nil, fmt.Errorf("returns: %w", err)
		}
		d.Returns = ret
	}

	assoc, err := AssociatedType(def, fn, d)
	if err != nil {
		return nil, err
	}
	d.AssociatedType = assoc
	return d, nil
}

func lowerParam(p *model.ParameterDef) (bridge.Param, error) {
	if p.IsReceiver() {
		if form, ok := receiverTokens[p.Type]; ok {
			return bridge.Param{Name: model.SelfName, Receiver: form}, nil
		}
	}
	t, err := model.ParseType(p.Type)
	if err != nil {
		return bridge.Param{}, fmt.Errorf("parameter %s: %w", p.Name, err)
	}
	return bridge.Param{Name: p.Name, Type: t}, nil
}

// AssociatedType links a function to its declaring type. In order of
// precedence: an explicit associated_to, the type named by a typed receiver,
// the return type of an initializer, and finally the only declared type when
// a bare receiver or initializer leaves no other clue. Free functions resolve
// to "".
func AssociatedType(def *model.BridgeDefinition, fn *model.FunctionDef, d *bridge.FunctionDeclaration) (string, error) {
	if fn.AssociatedTo != "" {
		return fn.AssociatedTo, nil
	}

	needsType := fn.Init
	if len(d.Params) > 0 && (d.Params[0].IsReceiverToken() || d.Params[0].Name == model.SelfName) {
		if name := namedType(d.Params[0].Type); name != "" {
			return name, nil
		}
		needsType = true
	}
	if fn.Init {
		if name := namedType(d.Returns); name != "" && def.TypeByName(name) != nil {
			return name, nil
		}
	}
	if !needsType {
		return "", nil
	}
	if len(def.Types) == 1 {
		return def.Types[0].Name, nil
	}
	return "", fmt.Errorf("cannot infer the associated type; set associated_to")
}

// namedType returns the path name of T, &T or &mut T.
func namedType(t *model.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind == model.TypeReference {
		t = t.Elem
	}
	if t.Kind == model.TypePath && len(t.Args) == 0 {
		return t.Name
	}
	return ""
}
