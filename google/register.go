package google

import (
	"context"

	"github.com/inquira/promptkit/catalog"
	"github.com/inquira/promptkit/config"
	"github.com/inquira/promptkit/provider"
)

func init() {
	provider.Register(provider.Google, build)
}

// build constructs the google slot. google is mandatory: the slot is
// always configured, with or without credentials.
func build(_ context.Context, settings config.Settings) (provider.Slot, error) {
	cfg := DefaultConfig().WithAPIKey(settings.Google.APIKey)
	if settings.Google.Model != "" {
		cfg.Model = settings.Google.Model
	}

	caps := provider.Capabilities{
		StructuredOutput: true,
		ContextWindow:    catalog.Builtin().ContextWindow(cfg.Model),
	}
	return provider.Configured(provider.NewHandle(provider.Google, cfg.Model, caps, New(cfg))), nil
}
