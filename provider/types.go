package provider

import (
	"encoding/json"
	"strings"
)

// ID identifies a provider.
type ID string

// Known providers.
const (
	OpenAI  ID = "openai"
	Google  ID = "google"
	Azure   ID = "azure"
	Mistral ID = "mistral"
)

// IDs returns the known provider identifiers in stable order.
func IDs() []ID {
	return []ID{OpenAI, Google, Azure, Mistral}
}

// Valid reports whether id names a known provider.
func (id ID) Valid() bool {
	switch id {
	case OpenAI, Google, Azure, Mistral:
		return true
	}
	return false
}

// String returns the identifier as a plain string.
func (id ID) String() string {
	return string(id)
}

// ParseID maps a string to a provider ID, case-insensitively. Anything
// unrecognized resolves to OpenAI, the default provider. That is not a
// degradation, so no warning accompanies it.
func ParseID(s string) ID {
	switch ID(strings.ToLower(strings.TrimSpace(s))) {
	case Google:
		return Google
	case Azure:
		return Azure
	case Mistral:
		return Mistral
	default:
		return OpenAI
	}
}

// Request configures a completion call.
// This is the provider-agnostic request format used across all providers.
type Request struct {
	// System sets the system message that guides the model's behavior.
	System string `json:"system,omitempty"`

	// Prompt is the user message to complete.
	Prompt string `json:"prompt"`

	// Schema, when set, requests output conforming to this JSON Schema.
	// Providers without native structured output emulate it with prompt
	// instructions and response parsing.
	Schema json.RawMessage `json:"schema,omitempty"`

	// MaxTokens limits the response length. Zero uses the provider default.
	MaxTokens int `json:"max_tokens,omitempty"`

	// Temperature controls response randomness. Nil uses the provider
	// default.
	Temperature *float64 `json:"temperature,omitempty"`
}

// Response is the output of a completion call.
type Response struct {
	// Text is the model's response. For structured requests this is the
	// JSON payload.
	Text string `json:"text"`

	// Model is the model that actually served the request.
	Model string `json:"model"`

	// Usage tracks token consumption for this request.
	Usage Usage `json:"usage"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add combines token usage from another Usage.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}
