package backend

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/nativegpu"
)

// Backend identifiers known to the registry's priority order.
const (
	BackendVulkan = "vulkan"
	BackendNoop   = "noop"
)

// Factory creates a new platform instance.
type Factory func() (Platform, error)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for Default (first platform that opens wins).
	// Real hardware first, noop as the last resort.
	backendPriority = []string{BackendVulkan, BackendNoop}
)

// Register registers a platform factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Get opens a platform from the named backend.
func Get(name string) (Platform, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return open(name, factory)
}

// Default opens the best available platform.
// Priority order: vulkan > noop, then any other registered backend by name.
// Backends whose factory fails are skipped.
func Default() (Platform, error) {
	registryMu.RLock()
	order := make([]string, 0, len(backends))
	seen := make(map[string]bool, len(backends))
	for _, name := range backendPriority {
		if _, ok := backends[name]; ok {
			order = append(order, name)
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(backends))
	for name := range backends {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)
	factories := make([]Factory, len(order))
	for i, name := range order {
		factories[i] = backends[name]
	}
	registryMu.RUnlock()

	var errs []error
	for i, name := range order {
		p, err := open(name, factories[i])
		if err == nil {
			return p, nil
		}
		nativegpu.Logger().Warn("backend: platform unavailable", "backend", name, "err", err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrBackendNotAvailable
	}
	return nil, fmt.Errorf("%w: %w", ErrBackendNotAvailable, errors.Join(errs...))
}

func open(name string, factory Factory) (Platform, error) {
	p, err := factory()
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", name, err)
	}
	if p == nil {
		return nil, fmt.Errorf("backend %s: %w", name, ErrNilPlatform)
	}
	return p, nil
}
