package mistral

import (
	"context"

	"github.com/inquira/promptkit/catalog"
	"github.com/inquira/promptkit/config"
	"github.com/inquira/promptkit/provider"
)

func init() {
	provider.Register(provider.Mistral, build)
}

// build constructs the mistral slot. mistral is optional: without an API
// key the slot stays unconfigured, which is not an error.
func build(_ context.Context, settings config.Settings) (provider.Slot, error) {
	if settings.Mistral.APIKey == "" {
		return provider.Unconfigured(), nil
	}

	cfg := DefaultConfig().WithAPIKey(settings.Mistral.APIKey)
	if settings.Mistral.Endpoint != "" {
		cfg.BaseURL = settings.Mistral.Endpoint
	}
	if settings.Mistral.Model != "" {
		cfg.Model = settings.Mistral.Model
	}

	caps := provider.Capabilities{
		StructuredOutput: false,
		ContextWindow:    catalog.Builtin().ContextWindow(cfg.Model),
	}
	return provider.Configured(provider.NewHandle(provider.Mistral, cfg.Model, caps, New(cfg))), nil
}
