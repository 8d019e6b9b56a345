package google

// DefaultModel is used when no model override is configured.
const DefaultModel = "gemini-2.0-flash"

// Config holds construction settings for the Gemini client.
type Config struct {
	// APIKey authenticates requests. Empty is allowed; the first request
	// then fails with an auth error.
	APIKey string

	// Model is the model name requests are sent to.
	Model string
}

// DefaultConfig returns a Config with the default model.
func DefaultConfig() Config {
	return Config{Model: DefaultModel}
}

// WithAPIKey returns a copy of the config with the given API key.
func (c Config) WithAPIKey(key string) Config {
	c.APIKey = key
	return c
}

// WithModel returns a copy of the config with the given model.
func (c Config) WithModel(model string) Config {
	c.Model = model
	return c
}
