// Package promptkit provides utilities for selecting language-model
// providers and fitting prompts into their context windows.
//
// promptkit is designed to be imported à la carte. Each subpackage can be
// used independently:
//
//   - config: process-wide settings from environment and TOML
//   - catalog: model context windows and capability metadata
//   - provider: provider selection with deterministic fallback
//   - openai, google, azure, mistral: SDK-backed provider clients
//   - tokens: token counting (BPE-exact and estimated) and budgets
//   - textsplit: recursive chunking of text to a target size
//   - trim: token-aware prompt trimming
//   - schema: JSON Schema reflection for structured output
//   - prompt: template rendering and structured-output instructions
//   - parser: extract JSON and YAML payloads from model responses
//
// # Quick Start
//
// Select a provider and trim a prompt to its window:
//
//	import (
//	    "github.com/inquira/promptkit/config"
//	    "github.com/inquira/promptkit/provider"
//	    "github.com/inquira/promptkit/trim"
//	    _ "github.com/inquira/promptkit/providers"
//	)
//
//	cfg := config.FromEnv()
//	selector, err := provider.NewSelector(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handle := selector.Select(provider.ParseID(os.Getenv("LLM_PROVIDER")))
//	fitted := trim.ForModel(document, handle.Model())
//	resp, err := handle.Client().Complete(ctx, provider.Request{Prompt: fitted})
//
// # Design Philosophy
//
//   - Each package usable independently
//   - Selection never fails: optional providers degrade to the default
//     with a logged warning, not an error
//   - Trimming never fails: budgets too small to honor clip to a fixed
//     floor instead
//   - Interfaces for extensibility, concrete types for simplicity
package promptkit
