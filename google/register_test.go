package google

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/promptkit/config"
	"github.com/inquira/promptkit/provider"
)

func TestRegistered(t *testing.T) {
	assert.True(t, provider.IsRegistered(provider.Google))
}

func TestBuildAlwaysConfigured(t *testing.T) {
	slot, err := build(context.Background(), config.Default())
	require.NoError(t, err)
	require.True(t, slot.IsConfigured(), "google must be configured even without a key")

	h, ok := slot.Handle()
	require.True(t, ok)
	assert.Equal(t, provider.Google, h.ID())
	assert.Equal(t, DefaultModel, h.Model())
	assert.True(t, h.Capabilities().StructuredOutput)
	assert.Equal(t, 1_048_576, h.Capabilities().ContextWindow)
}

func TestBuildModelOverride(t *testing.T) {
	settings := config.Default().WithGoogle(config.ProviderSettings{
		APIKey: "test-key",
		Model:  "gemini-2.5-pro",
	})

	slot, err := build(context.Background(), settings)
	require.NoError(t, err)

	h, ok := slot.Handle()
	require.True(t, ok)
	assert.Equal(t, "gemini-2.5-pro", h.Model())
}

func TestGenerationConfigPlain(t *testing.T) {
	gcfg := generationConfig(provider.Request{
		System:    "You are terse.",
		Prompt:    "Say hi.",
		MaxTokens: 64,
	})

	require.NotNil(t, gcfg.SystemInstruction)
	assert.Empty(t, gcfg.ResponseMIMEType)
	assert.Equal(t, int32(64), gcfg.MaxOutputTokens)
}

func TestGenerationConfigStructured(t *testing.T) {
	gcfg := generationConfig(provider.Request{
		System: "You classify mail.",
		Prompt: "Classify.",
		Schema: []byte(`{"type":"object"}`),
	})

	assert.Equal(t, "application/json", gcfg.ResponseMIMEType)
	require.NotNil(t, gcfg.SystemInstruction)
	require.NotEmpty(t, gcfg.SystemInstruction.Parts)

	text := gcfg.SystemInstruction.Parts[0].Text
	assert.True(t, strings.HasPrefix(text, "You classify mail."))
	assert.Contains(t, text, `{"type":"object"}`)
}
