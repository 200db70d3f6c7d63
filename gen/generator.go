package gen

import (
	"fmt"
	"sort"
	"sync"
)

// OutputFile represents a single generated file.
type OutputFile struct {
	Path    string // Relative path within output directory
	Content []byte
	Rust    bool // If true, the file is Rust source and eligible for rustfmt
}

// Generator is the interface all code generators implement.
// Each generator produces output files for one artifact of a bridge
// (e.g., the Rust wrapper module or the symbol table).
type Generator interface {
	// Name returns the generator name (e.g., "rust", "symbols").
	Name() string

	// Generate produces output files for the given bridge definition.
	Generate(ctx *Context) ([]*OutputFile, error)
}

// DefaultGenerators are run by generate when no subset is requested.
var DefaultGenerators = []string{"rust", "symbols"}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Generator{}
)

// Register adds a generator factory to the registry.
// Typically called from init() in each generator's file.
func Register(name string, factory func() Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("generator %q already registered", name))
	}
	registry[name] = factory
}

// Get returns a new instance of the named generator.
func Get(name string) (Generator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// All returns the names of all registered generators, sorted.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run runs the named generators in order and concatenates their output.
func Run(ctx *Context, names []string) ([]*OutputFile, error) {
	var all []*OutputFile
	for _, name := range names {
		g, ok := Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown generator %q (available: %v)", name, All())
		}
		ctx.logger().Debugf("running generator %s", g.Name())
		files, err := g.Generate(ctx)
		if err != nil {
			return nil, fmt.Errorf("generator %s failed: %w", name, err)
		}
		all = append(all, files...)
	}
	return all, nil
}
