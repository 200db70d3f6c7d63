// Package builtin is the catalog of Rust types with a known FFI-safe encoding.
//
// Each kind registers a matcher; the wrapper synthesizer only ever asks the
// catalog "is this a built-in, and if so how is it converted", so adding a
// kind never touches the synthesizer.
package builtin

import (
	"fmt"
	"sync"

	"github.com/rkreutz/swift-bridge/model"
)

// DefaultCrate is the path of the support crate the conversions call into.
const DefaultCrate = "swift_bridge"

// Type is a recognized built-in type and its conversion rules.
type Type interface {
	// Kind returns the catalog kind that matched (e.g., "primitive", "str").
	Kind() string

	// FFIType returns the Rust type used at the FFI boundary.
	FFIType() string

	// ToFFI converts a native expression into its FFI-safe representation
	// (argument position).
	ToFFI(expr string) string

	// FromFFI converts a raw FFI expression back into the native type
	// (return position).
	FromFFI(expr string) string

	// Passthrough is true when both conversions are the identity.
	Passthrough() bool
}

// Matcher reports whether t is an instance of a kind. Composite kinds use the
// catalog to resolve their element types.
type Matcher func(c *Catalog, t *model.Type) (Type, bool)

type kind struct {
	name  string
	match Matcher
}

var (
	registryMu sync.RWMutex
	registry   []kind
)

// Register adds a kind to the catalog. Typically called from init() in each
// kind's file.
func Register(name string, m Matcher) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for _, k := range registry {
		if k.name == name {
			panic(fmt.Sprintf("built-in kind %q already registered", name))
		}
	}
	registry = append(registry, kind{name: name, match: m})
}

// Catalog is a read-only snapshot of the registered kinds bound to a support
// crate path. It is safe for concurrent use.
type Catalog struct {
	crate string
	kinds []kind
}

// NewCatalog snapshots the registry. An empty crate means DefaultCrate.
func NewCatalog(crate string) *Catalog {
	if crate == "" {
		crate = DefaultCrate
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]kind, len(registry))
	copy(kinds, registry)
	return &Catalog{crate: crate, kinds: kinds}
}

// Crate returns the support crate path.
func (c *Catalog) Crate() string {
	return c.crate
}

// Lookup returns the built-in matching t, if any.
func (c *Catalog) Lookup(t *model.Type) (Type, bool) {
	if t == nil {
		return nil, false
	}
	for _, k := range c.kinds {
		if bt, ok := k.match(c, t); ok {
			return bt, true
		}
	}
	return nil, false
}

// Kinds returns the registered kind names in registration order.
func (c *Catalog) Kinds() []string {
	names := make([]string, len(c.kinds))
	for i, k := range c.kinds {
		names[i] = k.name
	}
	return names
}

// path joins a support crate item onto the crate path.
func (c *Catalog) path(item string) string {
	return c.crate + "::" + item
}
