package dock

import "sync"

// Factory reconstructs a live panel from its serialized state. The state
// is the "panel" item that named this factory's panel type.
type Factory func(area *DockArea, state *ItemState) Panel

// panelRegistry is the process-wide mapping from a stable panel type name
// to its reconstruction function. It is populated at application start
// and read-only thereafter; registration after startup is not supported.
type panelRegistry struct {
	mu    sync.RWMutex
	items map[string]Factory
}

var (
	registry     *panelRegistry
	registryOnce sync.Once
)

// globalRegistry returns the registry, creating it on first use.
func globalRegistry() *panelRegistry {
	registryOnce.Do(func() {
		registry = &panelRegistry{items: make(map[string]Factory)}
	})
	return registry
}

// RegisterPanel maps a panel type name to its factory. Re-registering a
// name overwrites the previous factory; last writer wins.
func RegisterPanel(name string, factory Factory) {
	r := globalRegistry()
	r.mu.Lock()
	r.items[name] = factory
	r.mu.Unlock()
}

// lookupFactory returns the factory registered for name, if any.
func lookupFactory(name string) (Factory, bool) {
	r := globalRegistry()
	r.mu.RLock()
	f, ok := r.items[name]
	r.mu.RUnlock()
	return f, ok
}

// resetRegistry clears all registrations. Tests only.
func resetRegistry() {
	r := globalRegistry()
	r.mu.Lock()
	r.items = make(map[string]Factory)
	r.mu.Unlock()
}
