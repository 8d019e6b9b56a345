package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/inquira/promptkit/config"
)

// Builder constructs a provider's slot from settings. Optional providers
// whose credentials are absent return Unconfigured() and a nil error;
// an error is reserved for genuine construction failures.
type Builder func(ctx context.Context, cfg config.Settings) (Slot, error)

// registry stores registered provider builders.
var (
	registryMu sync.RWMutex
	registry   = make(map[ID]Builder)
)

// Register adds a provider builder to the registry.
// Providers should call this in their init() function.
// Panics if a builder with the same ID is already registered.
//
// Example:
//
//	func init() {
//	    provider.Register(provider.Mistral, build)
//	}
func Register(id ID, builder Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[id]; exists {
		panic(fmt.Sprintf("provider %q already registered", id))
	}
	registry[id] = builder
}

// Registered returns the IDs of all registered providers in the stable
// order of IDs(), followed by any non-standard registrations.
func Registered() []ID {
	registryMu.RLock()
	defer registryMu.RUnlock()

	ids := make([]ID, 0, len(registry))
	for _, id := range IDs() {
		if _, ok := registry[id]; ok {
			ids = append(ids, id)
		}
	}
	for id := range registry {
		if !id.Valid() {
			ids = append(ids, id)
		}
	}
	return ids
}

// IsRegistered checks if a provider has a registered builder.
func IsRegistered(id ID) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, ok := registry[id]
	return ok
}

// Unregister removes a provider from the registry.
// This is primarily useful for testing.
func Unregister(id ID) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, id)
}

// builderFor returns the registered builder for id, if any.
func builderFor(id ID) (Builder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	b, ok := registry[id]
	return b, ok
}
