package stage

import (
	"sort"
	"sync"
)

// Registry is a write-once collection of definitions keyed by stage type
// name. Definitions are registered during program startup and read thereafter
// by unlimited concurrent readers; registering the same name twice is an
// error so a resolved definition can never be replaced out from under its
// members.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a definition under its stage type name. It fails if the name
// is already taken.
func (r *Registry) Register(def *Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.name]; exists {
		return newInvalidDefinitionError(def.name, "already registered")
	}
	r.defs[def.name] = def
	return nil
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered stage type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry backs the package-level registration helpers.
var defaultRegistry = NewRegistry()

// Register adds a definition to the package-level registry.
func Register(def *Definition) error { return defaultRegistry.Register(def) }

// Lookup returns a definition from the package-level registry.
func Lookup(name string) (*Definition, bool) { return defaultRegistry.Lookup(name) }
