// Package google implements the provider.Client interface over the
// Gemini API.
//
// google is a mandatory provider like openai: the slot is always
// configured, and a missing API key surfaces as an error on the first
// request rather than at selection. The underlying SDK client is created
// lazily on first use for the same reason.
//
//	import _ "github.com/inquira/promptkit/google" // register provider
//
// Gemini enforces JSON output via a response MIME type; the schema itself
// travels in the system instruction.
package google
