package azure

import (
	"context"

	"github.com/inquira/promptkit/catalog"
	"github.com/inquira/promptkit/config"
	"github.com/inquira/promptkit/provider"
)

func init() {
	provider.Register(provider.Azure, build)
}

// build constructs the azure slot. azure is optional: without both a key
// and an endpoint the slot stays unconfigured, which is not an error.
func build(_ context.Context, settings config.Settings) (provider.Slot, error) {
	cfg := DefaultConfig().
		WithAPIKey(settings.Azure.APIKey).
		WithEndpoint(settings.Azure.Endpoint)
	if settings.Azure.Model != "" {
		cfg.Deployment = settings.Azure.Model
	}
	if settings.Azure.APIVersion != "" {
		cfg.APIVersion = settings.Azure.APIVersion
	}

	if !cfg.Complete() {
		return provider.Unconfigured(), nil
	}

	caps := provider.Capabilities{
		StructuredOutput: true,
		ContextWindow:    catalog.Builtin().ContextWindow(cfg.Deployment),
	}
	return provider.Configured(provider.NewHandle(provider.Azure, cfg.Deployment, caps, New(cfg))), nil
}
