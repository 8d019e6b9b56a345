package openai

// DefaultModel is used when no model override is configured.
const DefaultModel = "o3-mini"

// DefaultReasoningEffort is sent with requests to reasoning models.
const DefaultReasoningEffort = "medium"

// Config holds construction settings for the OpenAI client.
type Config struct {
	// APIKey authenticates requests. Empty is allowed; requests then
	// fail at the API with an auth error.
	APIKey string

	// BaseURL overrides the API endpoint. Empty uses the platform default.
	BaseURL string

	// Model is the model name requests are sent to.
	Model string

	// ReasoningEffort is the effort level for reasoning models.
	// Empty omits the parameter entirely.
	ReasoningEffort string
}

// DefaultConfig returns a Config with the default model and effort.
func DefaultConfig() Config {
	return Config{
		Model:           DefaultModel,
		ReasoningEffort: DefaultReasoningEffort,
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

// WithReasoningEffort returns a copy of the config with the given effort.
func (c Config) WithReasoningEffort(effort string) Config {
	c.ReasoningEffort = effort
	return c
}
