package provider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inquira/promptkit/config"
)

// Selector resolves provider IDs to ready handles, degrading to the
// default provider when an optional one has no credentials. Built once at
// startup; safe for concurrent use afterwards, since its slots never
// change.
type Selector struct {
	slots  map[ID]Slot
	logger *slog.Logger
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithLogger sets the logger used for degradation warnings.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) SelectorOption {
	return func(s *Selector) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSelector runs every registered builder against the settings and
// collects the resulting slots. Optional providers without credentials
// occupy unconfigured slots; that is not an error. The default provider
// (openai) must end up configured, otherwise selection could not be
// total and NewSelector fails instead.
func NewSelector(ctx context.Context, cfg config.Settings, opts ...SelectorOption) (*Selector, error) {
	s := &Selector{
		slots:  make(map[ID]Slot),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, id := range Registered() {
		builder, _ := builderFor(id)
		slot, err := builder(ctx, cfg)
		if err != nil {
			return nil, NewError(id, "build", err, false)
		}
		s.slots[id] = slot
	}

	if !s.slots[OpenAI].IsConfigured() {
		return nil, fmt.Errorf("%w: %s (import the providers package to register it)", ErrNotRegistered, OpenAI)
	}
	return s, nil
}

// NewSelectorFromSlots builds a selector out of pre-constructed slots,
// bypassing the registry. Useful for tests and embedders with their own
// wiring. The openai slot must be configured.
func NewSelectorFromSlots(slots map[ID]Slot, opts ...SelectorOption) (*Selector, error) {
	s := &Selector{
		slots:  make(map[ID]Slot, len(slots)),
		logger: slog.Default(),
	}
	for id, slot := range slots {
		s.slots[id] = slot
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.slots[OpenAI].IsConfigured() {
		return nil, fmt.Errorf("%w: %s", ErrNotConfigured, OpenAI)
	}
	return s, nil
}

// Select returns the handle for the requested provider. An unconfigured
// or unregistered provider degrades to the openai handle and logs exactly
// one warning; the caller sees nothing but a usable handle. IDs that
// ParseID folded to OpenAI take the default path, which does not warn.
func (s *Selector) Select(id ID) Handle {
	if handle, ok := s.slots[id].Handle(); ok {
		return handle
	}

	s.logger.Warn("provider not configured, falling back",
		"provider", id,
		"fallback", OpenAI)

	handle, _ := s.slots[OpenAI].Handle()
	return handle
}

// Handles returns a copy of the selector's slots for introspection.
func (s *Selector) Handles() map[ID]Slot {
	out := make(map[ID]Slot, len(s.slots))
	for id, slot := range s.slots {
		out[id] = slot
	}
	return out
}
