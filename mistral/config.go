package mistral

// DefaultBaseURL is the Mistral platform endpoint.
const DefaultBaseURL = "https://api.mistral.ai/v1/"

// DefaultModel is used when no model override is configured.
const DefaultModel = "mistral-large-latest"

// Config holds construction settings for the Mistral client.
type Config struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// BaseURL overrides the platform endpoint, for proxies and
	// self-hosted gateways speaking the same wire format.
	BaseURL string

	// Model is the model name requests are sent to.
	Model string
}

// DefaultConfig returns a Config with the default endpoint and model;
// the API key must still be set.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
	}
}

// WithAPIKey returns a copy of the config with the given API key.
func (c Config) WithAPIKey(key string) Config {
	c.APIKey = key
	return c
}

// WithBaseURL returns a copy of the config with the given base URL.
func (c Config) WithBaseURL(url string) Config {
	c.BaseURL = url
	return c
}

// WithModel returns a copy of the config with the given model.
func (c Config) WithModel(model string) Config {
	c.Model = model
	return c
}
