package validate

import (
	"fmt"
	"strings"

	"github.com/rkreutz/swift-bridge/bridge"
	"github.com/rkreutz/swift-bridge/model"
	"github.com/rkreutz/swift-bridge/resolver"
)

// ValidationError represents a single semantic validation error.
type ValidationError struct {
	Path    string // e.g., "functions[1].parameters[0].type"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationResult holds all validation errors.
type ValidationResult struct {
	Errors []ValidationError
}

func (r *ValidationResult) addError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// symbolOwner records which declaration first derived a symbol.
type symbolOwner struct {
	path string
	name string
}

// Validate performs semantic validation on a parsed bridge definition. It
// enforces the preconditions wrapper synthesis relies on, most importantly
// that no two declarations derive the same foreign symbol. prefix is the
// symbol prefix in effect; empty means the default.
func Validate(def *model.BridgeDefinition, prefix string) *ValidationResult {
	result := &ValidationResult{}

	// Check for duplicate type names
	seen := make(map[string]bool)
	for i, t := range def.Types {
		path := fmt.Sprintf("types[%d].name", i)
		if !model.IsTypeName(t.Name) {
			result.addError(path, fmt.Sprintf("type name %q must be PascalCase", t.Name))
		} else if model.IsRustKeyword(t.Name) {
			result.addError(path, fmt.Sprintf("type name %q is a Rust keyword", t.Name))
		}
		if seen[t.Name] {
			result.addError(path, fmt.Sprintf("duplicate type name %q", t.Name))
		}
		seen[t.Name] = true
	}

	links := make(map[string]symbolOwner)
	idents := make(map[string]symbolOwner)
	claim := func(path, name string, sym bridge.Symbol) {
		if prev, ok := links[sym.LinkName]; ok {
			result.addError(path, fmt.Sprintf("symbol %q for %s collides with %s (%s)", sym.LinkName, name, prev.name, prev.path))
			return
		}
		links[sym.LinkName] = symbolOwner{path, name}
		if prev, ok := idents[sym.Ident]; ok {
			result.addError(path, fmt.Sprintf("extern identifier %q for %s collides with %s (%s)", sym.Ident, name, prev.name, prev.path))
			return
		}
		idents[sym.Ident] = symbolOwner{path, name}
	}

	for i, t := range def.Types {
		claim(fmt.Sprintf("types[%d]", i), t.Name+" destructor", bridge.ResolveSymbol(prefix, t.Name, bridge.FreeFunctionName))
	}

	for i := range def.Functions {
		fn := &def.Functions[i]
		path := fmt.Sprintf("functions[%d]", i)

		assoc, ok := validateFunction(result, path, def, fn)
		if !ok {
			continue
		}
		claim(path+".name", qualified(assoc, fn.Name), bridge.ResolveSymbol(prefix, assoc, fn.Name))
	}

	return result
}

// validateFunction checks one function and returns its associated type. ok is
// false when the association itself could not be determined.
func validateFunction(result *ValidationResult, path string, def *model.BridgeDefinition, fn *model.FunctionDef) (string, bool) {
	if fn.Name == bridge.FreeFunctionName {
		result.addError(path+".name", fmt.Sprintf("%q is reserved for the destructor symbol", fn.Name))
	}
	if model.IsRustKeyword(fn.Name) {
		result.addError(path+".name", fmt.Sprintf("function name %q is a Rust keyword", fn.Name))
	}
	if fn.AssociatedTo != "" && def.TypeByName(fn.AssociatedTo) == nil {
		result.addError(path+".associated_to", fmt.Sprintf("type %q not defined in types section", fn.AssociatedTo))
	}
	if fn.Init && fn.HasReceiver() {
		result.addError(path+".parameters[0]", fmt.Sprintf("initializer %q must not take a receiver", fn.Name))
	}

	paramNames := make(map[string]bool)
	for k, p := range fn.Parameters {
		paramPath := fmt.Sprintf("%s.parameters[%d]", path, k)
		if paramNames[p.Name] {
			result.addError(paramPath+".name", fmt.Sprintf("duplicate parameter name %q", p.Name))
		}
		paramNames[p.Name] = true
		if p.IsReceiver() {
			if k != 0 {
				result.addError(paramPath+".name", "the receiver must be the first parameter")
			}
		} else if model.IsRustKeyword(p.Name) {
			result.addError(paramPath+".name", fmt.Sprintf("parameter name %q is a Rust keyword", p.Name))
		}
	}

	d, err := resolver.Declaration(def, fn)
	if err != nil {
		result.addError(path, err.Error())
		return "", false
	}
	if fn.AssociatedTo == "" && d.AssociatedType != "" && def.TypeByName(d.AssociatedType) == nil {
		result.addError(path, fmt.Sprintf("associated type %q not defined in types section", d.AssociatedType))
	}
	if fn.Init && d.AssociatedType == "" {
		result.addError(path+".init", fmt.Sprintf("initializer %q has no associated type", fn.Name))
	}
	return d.AssociatedType, true
}

func qualified(typeName, fn string) string {
	if typeName == "" {
		return fn
	}
	return typeName + "::" + fn
}
