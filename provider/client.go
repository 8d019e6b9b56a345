// Package provider defines the unified interface for language-model
// providers and selects between them with deterministic fallback.
//
// A Selector is built once at startup from config.Settings. Every
// registered provider contributes a Slot: either Configured with a ready
// Handle, or Unconfigured when its credentials are absent. Selection is
// total: asking for an unconfigured optional provider degrades to the
// openai handle with a single warning, never an error.
//
// # Usage
//
//	import (
//	    "github.com/inquira/promptkit/config"
//	    "github.com/inquira/promptkit/provider"
//	    _ "github.com/inquira/promptkit/providers" // register all providers
//	)
//
//	selector, err := provider.NewSelector(ctx, config.FromEnv())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handle := selector.Select(provider.ParseID("mistral"))
//	resp, err := handle.Client().Complete(ctx, provider.Request{
//	    Prompt: "Summarize the attached log.",
//	})
//
// # Available Providers
//
//   - "openai": OpenAI chat completions (always constructed)
//   - "google": Gemini API (always constructed)
//   - "azure": Azure OpenAI deployment (optional; needs key and endpoint)
//   - "mistral": Mistral platform (optional; needs key)
package provider

import "context"

// Client is the unified completion interface all providers implement.
// Implementations must be safe for concurrent use.
type Client interface {
	// Complete sends a request and returns the full response.
	// The context controls cancellation and timeouts.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Capabilities describes what a provider's configured model supports.
// They are fixed at construction time from configuration; there are no
// per-call overrides.
type Capabilities struct {
	// StructuredOutput indicates the model enforces JSON-schema output
	// natively. Without it, structured requests fall back to prompt
	// instructions plus output parsing.
	StructuredOutput bool `json:"structured_output"`

	// ReasoningEffort is the effort level sent with requests, for
	// models that accept one. Empty means not a reasoning model.
	ReasoningEffort string `json:"reasoning_effort,omitempty"`

	// ContextWindow is the model's context size in tokens.
	ContextWindow int `json:"context_window"`
}
