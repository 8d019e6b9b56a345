package azure

// DefaultDeployment is used when no deployment override is configured.
const DefaultDeployment = "gpt-4o"

// DefaultAPIVersion is the Azure OpenAI API revision requests use.
const DefaultAPIVersion = "2025-01-01-preview"

// Config holds construction settings for the Azure OpenAI client.
type Config struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// Endpoint is the Azure resource endpoint, e.g.
	// https://example.openai.azure.com. Required.
	Endpoint string

	// Deployment is the deployment name requests are sent to.
	Deployment string

	// APIVersion selects the API revision.
	APIVersion string
}

// DefaultConfig returns a Config with the default deployment and API
// version; key and endpoint must still be set.
func DefaultConfig() Config {
	return Config{
		Deployment: DefaultDeployment,
		APIVersion: DefaultAPIVersion,
	}
}

// Complete reports whether the config carries everything a client needs.
func (c Config) Complete() bool {
	return c.APIKey != "" && c.Endpoint != ""
}

// WithAPIKey returns a copy of the config with the given API key.
func (c Config) WithAPIKey(key string) Config {
	c.APIKey = key
	return c
}

// WithEndpoint returns a copy of the config with the given endpoint.
func (c Config) WithEndpoint(endpoint string) Config {
	c.Endpoint = endpoint
	return c
}

// WithDeployment returns a copy of the config with the given deployment.
func (c Config) WithDeployment(deployment string) Config {
	c.Deployment = deployment
	return c
}

// WithAPIVersion returns a copy of the config with the given API version.
func (c Config) WithAPIVersion(version string) Config {
	c.APIVersion = version
	return c
}
