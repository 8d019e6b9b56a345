package openai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/promptkit/config"
	"github.com/inquira/promptkit/provider"
	"github.com/inquira/promptkit/schema"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultReasoningEffort, cfg.ReasoningEffort)
	assert.Empty(t, cfg.APIKey)
}

func TestConfigChaining(t *testing.T) {
	cfg := DefaultConfig().
		WithAPIKey("sk-test").
		WithModel("gpt-4o").
		WithReasoningEffort("")

	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Empty(t, cfg.ReasoningEffort)

	// Value-copy semantics: the original is untouched.
	assert.Equal(t, DefaultModel, DefaultConfig().Model)
}

func TestRegistered(t *testing.T) {
	assert.True(t, provider.IsRegistered(provider.OpenAI))
}

func TestBuildAlwaysConfigured(t *testing.T) {
	slot, err := build(context.Background(), config.Default())
	require.NoError(t, err)
	require.True(t, slot.IsConfigured(), "openai must be configured even without a key")

	h, ok := slot.Handle()
	require.True(t, ok)
	assert.Equal(t, provider.OpenAI, h.ID())
	assert.Equal(t, DefaultModel, h.Model())
	assert.True(t, h.Capabilities().StructuredOutput)
	assert.Equal(t, DefaultReasoningEffort, h.Capabilities().ReasoningEffort)
	assert.Equal(t, 200_000, h.Capabilities().ContextWindow)
}

func TestBuildModelOverride(t *testing.T) {
	settings := config.Default().WithOpenAI(config.ProviderSettings{
		APIKey: "sk-test",
		Model:  "gpt-4o",
	})

	slot, err := build(context.Background(), settings)
	require.NoError(t, err)

	h, ok := slot.Handle()
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", h.Model())
	assert.Empty(t, h.Capabilities().ReasoningEffort, "gpt-4o takes no reasoning effort")
	assert.Equal(t, 128_000, h.Capabilities().ContextWindow)
}

func TestCompletionParams(t *testing.T) {
	c := New(DefaultConfig().WithAPIKey("sk-test"))

	params, err := c.completionParams(provider.Request{
		System:    "You are terse.",
		Prompt:    "Say hi.",
		MaxTokens: 64,
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, string(params.Model))
	require.Len(t, params.Messages, 2)
	assert.Equal(t, int64(64), params.MaxCompletionTokens.Value)
	assert.Equal(t, DefaultReasoningEffort, string(params.ReasoningEffort))
	assert.Nil(t, params.ResponseFormat.OfJSONSchema)
}

func TestCompletionParamsStructured(t *testing.T) {
	type verdict struct {
		Label string `json:"label"`
	}

	c := New(DefaultConfig())
	params, err := c.completionParams(provider.Request{
		Prompt: "Classify.",
		Schema: schema.MustFor[verdict](),
	})
	require.NoError(t, err)

	require.NotNil(t, params.ResponseFormat.OfJSONSchema)
	assert.Equal(t, "response", params.ResponseFormat.OfJSONSchema.JSONSchema.Name)
	assert.True(t, params.ResponseFormat.OfJSONSchema.JSONSchema.Strict.Value)
}

func TestCompletionParamsBadSchema(t *testing.T) {
	c := New(DefaultConfig())
	_, err := c.completionParams(provider.Request{
		Prompt: "Classify.",
		Schema: []byte("{not json"),
	})
	assert.Error(t, err)
}
