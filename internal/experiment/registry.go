package experiment

import (
	"fmt"
	"sort"
	"sync"

	"github.com/visionforge-labs/visionforge/internal/configs/core"
)

// Factory builds a fully-populated experiment configuration. Each call must
// return a fresh object graph; callers may mutate the result freely.
type Factory func() *core.ExperimentConfig

// Registry maps experiment names to factories. Registration is append-only:
// duplicate names are rejected, and entries are never removed.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given name.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("registering experiment: name is empty")
	}
	if factory == nil {
		return fmt.Errorf("registering experiment %q: factory is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("registering experiment %q: already registered", name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is Register for init-time use; it panics on error so a
// duplicate or malformed registration fails at startup.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the process-wide registry that config packages register into.
var Default = New()

// Register adds a factory to the default registry.
func Register(name string, factory Factory) error {
	return Default.Register(name, factory)
}

// MustRegister adds a factory to the default registry, panicking on error.
func MustRegister(name string, factory Factory) {
	Default.MustRegister(name, factory)
}

// Lookup returns a factory from the default registry.
func Lookup(name string) (Factory, bool) {
	return Default.Lookup(name)
}

// Names returns all names registered in the default registry.
func Names() []string {
	return Default.Names()
}
