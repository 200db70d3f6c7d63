package model

import "regexp"

// BridgeDefinition is the top-level structure of a bridge definition YAML file.
type BridgeDefinition struct {
	Bridge    BridgeMetadata `yaml:"bridge"`
	Types     []TypeDef      `yaml:"types,omitempty"`
	Functions []FunctionDef  `yaml:"functions"`
}

// BridgeMetadata holds bridge-level metadata.
type BridgeMetadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// TypeDef declares an opaque foreign type. On the Rust side it is a
// single-field struct holding the foreign handle.
type TypeDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// FunctionDef declares a single foreign function, method or initializer.
type FunctionDef struct {
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description,omitempty"`
	AssociatedTo string         `yaml:"associated_to,omitempty"`
	Init         bool           `yaml:"init,omitempty"`
	Parameters   []ParameterDef `yaml:"parameters,omitempty"`
	Returns      string         `yaml:"returns,omitempty"`
}

// ParameterDef defines a function parameter. A parameter named "self" is the
// receiver; its type may be written explicitly ("&Foo") or as a bare
// receiver token ("&self").
type ParameterDef struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

// SelfName is the identifier bound to the receiver slot.
const SelfName = "self"

var typeNamePattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

// IsTypeName returns true if s is a valid opaque type name.
func IsTypeName(s string) bool {
	return typeNamePattern.MatchString(s)
}

// IsReceiver returns true if the parameter occupies the receiver slot.
func (p *ParameterDef) IsReceiver() bool {
	return p.Name == SelfName
}

// HasReceiver returns true if the function's first parameter is the receiver.
func (f *FunctionDef) HasReceiver() bool {
	return len(f.Parameters) > 0 && f.Parameters[0].IsReceiver()
}

// TypeByName looks up an opaque type definition by name.
func (b *BridgeDefinition) TypeByName(name string) *TypeDef {
	for i := range b.Types {
		if b.Types[i].Name == name {
			return &b.Types[i]
		}
	}
	return nil
}

// TypeNames returns the set of declared opaque type names.
func (b *BridgeDefinition) TypeNames() map[string]bool {
	names := make(map[string]bool, len(b.Types))
	for _, t := range b.Types {
		names[t.Name] = true
	}
	return names
}

// rustKeywords are the strict and reserved keywords of Rust 2021, plus "gen"
// which edition 2024 reserves.
var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true,
	"mod": true, "move": true, "mut": true, "pub": true, "ref": true,
	"return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true,
	"use": true, "where": true, "while": true,
	"abstract": true, "become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "try": true, "typeof": true,
	"unsized": true, "virtual": true, "yield": true, "gen": true,
}

// IsRustKeyword returns true if name cannot be used as a plain Rust identifier.
// The wildcard "_" counts as a keyword.
func IsRustKeyword(name string) bool {
	return name == "_" || rustKeywords[name]
}
