package model

import (
	"fmt"
	"strings"
	"text/scanner"
)

// TypeKind classifies the syntactic shape of a type expression.
type TypeKind int

const (
	TypePath TypeKind = iota
	TypeReference
	TypeSlice
	TypeUnit
)

func (k TypeKind) String() string {
	switch k {
	case TypePath:
		return "path"
	case TypeReference:
		return "reference"
	case TypeSlice:
		return "slice"
	case TypeUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// Type is a Rust type expression as written in a bridge definition.
//
//	u8            Path{Name: "u8"}
//	Option<u32>   Path{Name: "Option", Args: [u32]}
//	&mut Foo      Reference{Mut: true, Elem: Foo}
//	&[u8]         Reference{Elem: Slice{Elem: u8}}
//	()            Unit
type Type struct {
	Kind TypeKind
	Name string  // Path only; may be "::"-qualified
	Args []*Type // Path generic arguments
	Elem *Type   // Reference and Slice
	Mut  bool    // Reference only
}

// PathType returns a path type with optional generic arguments.
func PathType(name string, args ...*Type) *Type {
	return &Type{Kind: TypePath, Name: name, Args: args}
}

// RefType returns a shared reference to elem.
func RefType(elem *Type) *Type {
	return &Type{Kind: TypeReference, Elem: elem}
}

// RefMutType returns a mutable reference to elem.
func RefMutType(elem *Type) *Type {
	return &Type{Kind: TypeReference, Elem: elem, Mut: true}
}

// SliceType returns [elem].
func SliceType(elem *Type) *Type {
	return &Type{Kind: TypeSlice, Elem: elem}
}

// UnitType returns ().
func UnitType() *Type {
	return &Type{Kind: TypeUnit}
}

// String renders the type in Rust syntax.
func (t *Type) String() string {
	if t == nil {
		return "()"
	}
	switch t.Kind {
	case TypeReference:
		if t.Mut {
			return "&mut " + t.Elem.String()
		}
		return "&" + t.Elem.String()
	case TypeSlice:
		return "[" + t.Elem.String() + "]"
	case TypeUnit:
		return "()"
	default:
		if len(t.Args) == 0 {
			return t.Name
		}
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		return t.Name + "<" + strings.Join(args, ", ") + ">"
	}
}

// IsUnit returns true for a missing type or an explicit ().
func (t *Type) IsUnit() bool {
	return t == nil || t.Kind == TypeUnit
}

// IsPath returns true if t is a plain path type with the given name and no generic arguments.
func (t *Type) IsPath(name string) bool {
	return t != nil && t.Kind == TypePath && t.Name == name && len(t.Args) == 0
}

// Equal reports whether two type expressions are structurally identical.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t.IsUnit() && o.IsUnit()
	}
	if t.Kind != o.Kind || t.Name != o.Name || t.Mut != o.Mut || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	if t.Elem != nil || o.Elem != nil {
		if t.Elem == nil || o.Elem == nil {
			return false
		}
		return t.Elem.Equal(o.Elem)
	}
	return true
}

// ParseType parses a Rust type expression. Lifetimes, tuples other than ()
// and function pointer types are rejected.
func ParseType(src string) (*Type, error) {
	p := &typeParser{src: src}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.Error = func(_ *scanner.Scanner, msg string) { p.fail(msg) }
	p.next()

	t := p.parseType()
	if p.err == nil && p.tok != scanner.EOF {
		p.fail(fmt.Sprintf("unexpected %q", p.s.TokenText()))
	}
	if p.err != nil {
		return nil, p.err
	}
	return t, nil
}

// MustParseType is ParseType for statically known inputs; it panics on error.
func MustParseType(src string) *Type {
	t, err := ParseType(src)
	if err != nil {
		panic(err)
	}
	return t
}

type typeParser struct {
	src string
	s   scanner.Scanner
	tok rune
	err error
}

func (p *typeParser) next() {
	p.tok = p.s.Scan()
}

func (p *typeParser) fail(msg string) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid type %q: %s", p.src, msg)
	}
}

func (p *typeParser) expect(r rune) {
	if p.tok != r {
		p.fail(fmt.Sprintf("expected %q", string(r)))
		return
	}
	p.next()
}

func (p *typeParser) parseType() *Type {
	if p.err != nil {
		return nil
	}
	switch p.tok {
	case '&':
		p.next()
		mut := false
		if p.tok == scanner.Ident && p.s.TokenText() == "mut" {
			mut = true
			p.next()
		}
		elem := p.parseType()
		return &Type{Kind: TypeReference, Elem: elem, Mut: mut}
	case '[':
		p.next()
		elem := p.parseType()
		p.expect(']')
		return SliceType(elem)
	case '(':
		p.next()
		p.expect(')')
		return UnitType()
	case scanner.Ident:
		return p.parsePath()
	case scanner.EOF:
		p.fail("unexpected end of input")
	default:
		p.fail(fmt.Sprintf("unexpected %q", p.s.TokenText()))
	}
	return nil
}

func (p *typeParser) parsePath() *Type {
	var name strings.Builder
	name.WriteString(p.s.TokenText())
	p.next()
	for p.tok == ':' {
		p.next()
		p.expect(':')
		if p.tok != scanner.Ident {
			p.fail("expected identifier after \"::\"")
			return nil
		}
		name.WriteString("::")
		name.WriteString(p.s.TokenText())
		p.next()
	}

	t := PathType(name.String())
	if t.Name == "mut" || t.Name == SelfName {
		p.fail(fmt.Sprintf("%q is not a type", t.Name))
		return nil
	}
	if p.tok != '<' {
		return t
	}
	p.next()
	for {
		arg := p.parseType()
		if p.err != nil {
			return nil
		}
		t.Args = append(t.Args, arg)
		if p.tok != ',' {
			break
		}
		p.next()
	}
	p.expect('>')
	return t
}
