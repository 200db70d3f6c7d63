// Package bridge turns foreign function declarations into Rust wrapper
// functions that marshal their arguments, call the linked foreign symbol and
// convert the result back into a safe native value.
//
// Every stage is a pure function of the declaration and the read-only
// classifier, so declarations can be synthesized concurrently.
package bridge

import (
	"strings"

	"github.com/rkreutz/swift-bridge/model"
)

// DefaultVisibility is the visibility of generated wrappers.
const DefaultVisibility = "pub"

// Options configures a Synthesizer.
type Options struct {
	SymbolPrefix string // empty means DefaultSymbolPrefix
	Visibility   string // "-" means private; empty means DefaultVisibility
}

// Synthesizer composes classification, receiver normalization, marshalling
// and symbol resolution into complete wrapper functions.
type Synthesizer struct {
	classifier *Classifier
	prefix     string
	visibility string
}

// NewSynthesizer returns a synthesizer over the given classifier.
func NewSynthesizer(c *Classifier, opts Options) *Synthesizer {
	s := &Synthesizer{
		classifier: c,
		prefix:     opts.SymbolPrefix,
		visibility: opts.Visibility,
	}
	if s.prefix == "" {
		s.prefix = DefaultSymbolPrefix
	}
	switch s.visibility {
	case "":
		s.visibility = DefaultVisibility
	case "-":
		s.visibility = ""
	}
	return s
}

// Classifier returns the classifier the synthesizer consults.
func (s *Synthesizer) Classifier() *Classifier {
	return s.classifier
}

// Synthesize produces the wrapper for one declaration. It fails with an
// *UnsupportedTypeError or *MalformedReceiverError and never returns a
// partial wrapper.
func (s *Synthesizer) Synthesize(d *FunctionDeclaration) (*WrapperFunction, error) {
	w, err := s.synthesize(d)
	if err != nil {
		return nil, annotate(err, d)
	}
	return w, nil
}

func (s *Synthesizer) synthesize(d *FunctionDeclaration) (*WrapperFunction, error) {
	params, form, err := NormalizeParams(d.Params, d.AssociatedType)
	if err != nil {
		return nil, err
	}

	ret, err := returnType(d)
	if err != nil {
		return nil, err
	}

	sym := ResolveSymbol(s.prefix, d.AssociatedType, d.Name)

	var callArgs []CallArg
	if recv, ok := ReceiverArg(form); ok {
		recv.Extern.Name = receiverHandleName(params)
		callArgs = append(callArgs, recv)
	}
	args, err := s.classifier.MarshalArgs(params)
	if err != nil {
		return nil, err
	}
	callArgs = append(callArgs, args...)

	exprs := make([]string, len(callArgs))
	externParams := make([]ExternParam, len(callArgs))
	for i, a := range callArgs {
		exprs[i] = a.Expr
		externParams[i] = a.Extern
	}

	raw := UnsafeCall(sym.Ident, exprs)
	body, ffiRet, err := s.classifier.MarshalReturn(ret, raw)
	if err != nil {
		return nil, err
	}

	return &WrapperFunction{
		Name:        d.Name,
		Description: d.Description,
		Visibility:  s.visibility,
		TypeName:    d.AssociatedType,
		Receiver:    form,
		Params:      params,
		Returns:     ret,
		Body:        body,
		Extern: ExternFunction{
			Symbol:  sym,
			Params:  externParams,
			Returns: ffiRet,
		},
	}, nil
}

// receiverHandleName names the receiver in the extern declaration without
// shadowing any declared parameter.
func receiverHandleName(params []Param) string {
	taken := make(map[string]bool, len(params))
	for _, p := range params {
		if !p.IsReceiverToken() {
			taken[p.Name] = true
		}
	}
	name := receiverParamName
	for taken[name] {
		name += "_"
	}
	return name
}

// returnType is the declared return type, or the associated type for an
// initializer that does not spell one out.
func returnType(d *FunctionDeclaration) (*model.Type, error) {
	if !d.Modifiers.Init || !d.Returns.IsUnit() {
		return d.Returns, nil
	}
	if d.AssociatedType == "" {
		return nil, &UnsupportedTypeError{
			Position: "return",
			Type:     "()",
			Reason:   "initializer has no associated type",
		}
	}
	return model.PathType(d.AssociatedType), nil
}

// UnsafeCall is the raw extern call. The unsafe block contains the call and
// nothing else.
func UnsafeCall(ident string, args []string) string {
	return "unsafe { " + ident + "(" + strings.Join(args, ", ") + ") }"
}

// FreeExtern returns the destructor symbol declaration for an opaque type.
func (s *Synthesizer) FreeExtern(typeName string) ExternFunction {
	return ExternFunction{
		Symbol: ResolveSymbol(s.prefix, typeName, FreeFunctionName),
		Params: []ExternParam{{Name: receiverParamName, Type: OpaqueFFIType}},
	}
}

// Visibility returns the visibility applied to generated items.
func (s *Synthesizer) Visibility() string {
	return s.visibility
}

// SymbolPrefix returns the prefix used for derived symbols.
func (s *Synthesizer) SymbolPrefix() string {
	return s.prefix
}
