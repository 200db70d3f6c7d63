package gen

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rkreutz/swift-bridge/bridge"
)

func init() {
	Register("symbols", func() Generator { return &SymbolsGenerator{} })
}

// SymbolsGenerator writes the symbol table the foreign side must export.
type SymbolsGenerator struct{}

func (g *SymbolsGenerator) Name() string { return "symbols" }

// SymbolTable is the serialized form of every foreign entry point of a bridge.
type SymbolTable struct {
	Bridge  string        `yaml:"bridge"`
	Version string        `yaml:"version"`
	Prefix  string        `yaml:"prefix"`
	Symbols []SymbolEntry `yaml:"symbols"`
}

// SymbolEntry describes one foreign entry point.
type SymbolEntry struct {
	LinkName string        `yaml:"link_name"`
	Ident    string        `yaml:"ident"`
	Kind     string        `yaml:"kind"`
	Type     string        `yaml:"type,omitempty"`
	Function string        `yaml:"function"`
	Receiver string        `yaml:"receiver,omitempty"`
	Params   []SymbolParam `yaml:"params,omitempty"`
	Returns  string        `yaml:"returns,omitempty"`
}

// SymbolParam is one FFI-level parameter.
type SymbolParam struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Symbol kinds.
const (
	KindDestructor  = "destructor"
	KindInitializer = "initializer"
	KindMethod      = "method"
	KindAssociated  = "associated"
	KindFree        = "free"
)

func (g *SymbolsGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	table, err := BuildSymbolTable(ctx)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("encoding symbol table: %w", err)
	}
	return []*OutputFile{{
		Path:    SymbolsFileName(ctx.Definition.Bridge.Name),
		Content: prependHeader(GeneratedFileHeader(ctx, "#"), data),
	}}, nil
}

// BuildSymbolTable collects destructors, then wrappers in declaration order.
func BuildSymbolTable(ctx *Context) (*SymbolTable, error) {
	batch, err := ctx.Wrappers()
	if err != nil {
		return nil, err
	}

	table := &SymbolTable{
		Bridge:  ctx.Definition.Bridge.Name,
		Version: ctx.Definition.Bridge.Version,
		Prefix:  ctx.Synthesizer.SymbolPrefix(),
	}
	for _, t := range ctx.Definition.Types {
		free := ctx.Synthesizer.FreeExtern(t.Name)
		table.Symbols = append(table.Symbols, symbolEntry(&free, KindDestructor, t.Name, bridge.FreeFunctionName, ""))
	}

	// Initializer flags live on the declarations, which the batch drops
	// when skipping, so index them by qualified name.
	inits := make(map[string]bool)
	for _, d := range ctx.Declarations {
		if d.Modifiers.Init {
			inits[d.QualifiedName()] = true
		}
	}

	for _, w := range batch.Wrappers {
		kind := KindFree
		switch {
		case inits[qualifiedName(w.TypeName, w.Name)]:
			kind = KindInitializer
		case w.Receiver != bridge.ReceiverNone:
			kind = KindMethod
		case w.TypeName != "":
			kind = KindAssociated
		}
		table.Symbols = append(table.Symbols, symbolEntry(&w.Extern, kind, w.TypeName, w.Name, w.Receiver.String()))
	}
	return table, nil
}

func symbolEntry(e *bridge.ExternFunction, kind, typeName, fn, receiver string) SymbolEntry {
	entry := SymbolEntry{
		LinkName: e.Symbol.LinkName,
		Ident:    e.Symbol.Ident,
		Kind:     kind,
		Type:     typeName,
		Function: fn,
		Receiver: receiver,
		Returns:  e.Returns,
	}
	for _, p := range e.Params {
		entry.Params = append(entry.Params, SymbolParam{Name: p.Name, Type: p.Type})
	}
	return entry
}

func qualifiedName(typeName, fn string) string {
	if typeName == "" {
		return fn
	}
	return typeName + "::" + fn
}
