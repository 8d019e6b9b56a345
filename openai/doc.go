// Package openai implements the provider.Client interface over the
// OpenAI chat completions API.
//
// openai is the default provider: it is always constructed, even without
// an API key, so a missing credential surfaces as an API error at request
// time rather than at selection.
//
// # Basic Usage
//
//	client := openai.New(openai.DefaultConfig().WithAPIKey(key))
//	resp, err := client.Complete(ctx, provider.Request{Prompt: "Hello!"})
//
// # Registry Usage
//
//	import _ "github.com/inquira/promptkit/openai" // register provider
//
// Structured output uses the native JSON-schema response format; the
// default model takes a reasoning effort, configured at construction.
package openai
