package config

// DefaultContextSize is the token budget assumed when no context size is
// configured. It is a conservative middle ground across current frontier
// models; callers with a known model should prefer the catalog's window.
const DefaultContextSize = 128_000

// ProviderSettings holds credentials and model choice for a single provider.
// The zero value means the provider is not configured.
type ProviderSettings struct {
	// APIKey authenticates requests to the provider.
	APIKey string `toml:"api_key" json:"api_key" yaml:"api_key"`

	// Endpoint overrides the provider's default base URL.
	// Required for azure (the resource endpoint), optional elsewhere.
	Endpoint string `toml:"endpoint" json:"endpoint" yaml:"endpoint"`

	// Model overrides the provider's default model or deployment name.
	Model string `toml:"model" json:"model" yaml:"model"`

	// APIVersion selects the API revision. Only azure uses it.
	APIVersion string `toml:"api_version" json:"api_version" yaml:"api_version"`
}

// Configured reports whether an API key is present.
func (p ProviderSettings) Configured() bool {
	return p.APIKey != ""
}

// Settings is the process-wide configuration for provider selection and
// prompt trimming. It is established once at startup and treated as
// immutable afterwards; the With* methods return modified copies.
type Settings struct {
	// --- Providers ---

	// OpenAI is always constructed regardless of key presence; a missing
	// key surfaces as an API error at request time, not at selection.
	OpenAI ProviderSettings `toml:"openai" json:"openai" yaml:"openai"`

	// Google is always constructed, like OpenAI.
	Google ProviderSettings `toml:"google" json:"google" yaml:"google"`

	// Azure is optional. Without both api_key and endpoint the azure
	// slot stays unconfigured and selection degrades to openai.
	Azure ProviderSettings `toml:"azure" json:"azure" yaml:"azure"`

	// Mistral is optional. Without an api_key the mistral slot stays
	// unconfigured and selection degrades to openai.
	Mistral ProviderSettings `toml:"mistral" json:"mistral" yaml:"mistral"`

	// --- Budgets ---

	// ContextSize is the default token budget for prompt trimming.
	// Zero or negative values are replaced by DefaultContextSize.
	ContextSize int `toml:"context_size" json:"context_size" yaml:"context_size"`
}

// Default returns Settings with sensible defaults and no credentials.
func Default() Settings {
	return Settings{
		ContextSize: DefaultContextSize,
	}
}

// EffectiveContextSize returns ContextSize, or DefaultContextSize when the
// configured value is not a positive integer.
func (s Settings) EffectiveContextSize() int {
	if s.ContextSize > 0 {
		return s.ContextSize
	}
	return DefaultContextSize
}

// WithContextSize returns a copy of the settings with the given context size.
func (s Settings) WithContextSize(n int) Settings {
	s.ContextSize = n
	return s
}

// WithOpenAI returns a copy of the settings with the given openai settings.
func (s Settings) WithOpenAI(p ProviderSettings) Settings {
	s.OpenAI = p
	return s
}

// WithGoogle returns a copy of the settings with the given google settings.
func (s Settings) WithGoogle(p ProviderSettings) Settings {
	s.Google = p
	return s
}

// WithAzure returns a copy of the settings with the given azure settings.
func (s Settings) WithAzure(p ProviderSettings) Settings {
	s.Azure = p
	return s
}

// WithMistral returns a copy of the settings with the given mistral settings.
func (s Settings) WithMistral(p ProviderSettings) Settings {
	s.Mistral = p
	return s
}
