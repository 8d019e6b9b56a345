package openai

import (
	"context"

	"github.com/inquira/promptkit/catalog"
	"github.com/inquira/promptkit/config"
	"github.com/inquira/promptkit/provider"
)

func init() {
	provider.Register(provider.OpenAI, build)
}

// build constructs the openai slot. openai is mandatory: the slot is
// always configured, with or without credentials.
func build(_ context.Context, settings config.Settings) (provider.Slot, error) {
	cfg := DefaultConfig()
	if settings.OpenAI.APIKey != "" {
		cfg.APIKey = settings.OpenAI.APIKey
	}
	if settings.OpenAI.Endpoint != "" {
		cfg.BaseURL = settings.OpenAI.Endpoint
	}
	if settings.OpenAI.Model != "" {
		cfg.Model = settings.OpenAI.Model
	}

	// Reasoning effort only applies to models that take one.
	entry, known := catalog.Builtin().Lookup(cfg.Model)
	if known && !entry.Reasoning {
		cfg.ReasoningEffort = ""
	}

	caps := provider.Capabilities{
		StructuredOutput: true,
		ReasoningEffort:  cfg.ReasoningEffort,
		ContextWindow:    catalog.Builtin().ContextWindow(cfg.Model),
	}
	return provider.Configured(provider.NewHandle(provider.OpenAI, cfg.Model, caps, New(cfg))), nil
}
