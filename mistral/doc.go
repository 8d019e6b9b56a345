// Package mistral implements the provider.Client interface over the
// Mistral platform, which speaks the OpenAI chat completions wire format.
//
// mistral is an optional provider: without an API key the slot stays
// unconfigured and selection degrades to openai with a warning.
//
//	import _ "github.com/inquira/promptkit/mistral" // register provider
//
// Mistral has no schema-enforced output mode here; structured requests
// fall back to prompt instructions, and the JSON payload is extracted
// from the response before it is returned.
package mistral
