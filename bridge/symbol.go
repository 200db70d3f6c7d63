package bridge

// DefaultSymbolPrefix prefixes every exported foreign symbol.
const DefaultSymbolPrefix = "__swift_bridge__"

// FreeFunctionName is the function name of an opaque type's destructor symbol.
const FreeFunctionName = "_free"

// Symbol names one foreign entry point.
type Symbol struct {
	LinkName string // exported by the foreign side, e.g. "__swift_bridge__$Foo$new"
	Ident    string // Rust identifier in the extern block, e.g. "__swift_bridge__Foo_new"
}

// ResolveSymbol derives the symbol for (typeName, fnName). The format is the
// linkage contract with the foreign-side generator:
//
//	method/associated/init:  <prefix>$<Type>$<fn>   ident <prefix><Type>_<fn>
//	free function:           <prefix>$<fn>          ident <prefix><fn>
//
// Uniqueness across one bridge is a precondition enforced by validation.
func ResolveSymbol(prefix, typeName, fnName string) Symbol {
	if prefix == "" {
		prefix = DefaultSymbolPrefix
	}
	if typeName == "" {
		return Symbol{
			LinkName: prefix + "$" + fnName,
			Ident:    prefix + fnName,
		}
	}
	return Symbol{
		LinkName: prefix + "$" + typeName + "$" + fnName,
		Ident:    prefix + typeName + "_" + fnName,
	}
}
