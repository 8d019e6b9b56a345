package catalog

import "strings"

// DefaultContextWindow is assumed for models the catalog does not know.
// A conservative middle ground: large enough to be useful, small enough
// not to overrun the models commonly deployed today.
const DefaultContextWindow = 128_000

// Entry describes one model's context window and capability flags.
type Entry struct {
	// Name is the model identifier as sent to the provider.
	Name string `yaml:"name"`

	// ContextWindow is the model's total context size in tokens.
	ContextWindow int `yaml:"context_window"`

	// StructuredOutput reports whether the model enforces JSON schema
	// output natively. Models without it rely on prompt instructions
	// plus output parsing.
	StructuredOutput bool `yaml:"structured_output"`

	// Reasoning reports whether the model accepts a reasoning effort.
	Reasoning bool `yaml:"reasoning"`
}

// Catalog is an immutable model lookup table. Merging returns a new
// catalog; existing values are never mutated, so a catalog can be shared
// across goroutines freely.
type Catalog struct {
	entries map[string]Entry
}

// Builtin returns the compiled-in model table.
func Builtin() *Catalog {
	return &Catalog{entries: builtinEntries()}
}

// New builds a catalog from the given entries on top of the builtin table.
func New(entries ...Entry) *Catalog {
	return Builtin().Merge(entries...)
}

// Merge returns a new catalog with the given entries layered on top.
// Later entries win over earlier ones and over the receiver's.
func (c *Catalog) Merge(entries ...Entry) *Catalog {
	merged := make(map[string]Entry, len(c.entries)+len(entries))
	for name, e := range c.entries {
		merged[name] = e
	}
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		merged[normalize(e.Name)] = e
	}
	return &Catalog{entries: merged}
}

// Lookup returns the entry for a model name, if known.
func (c *Catalog) Lookup(model string) (Entry, bool) {
	e, ok := c.entries[normalize(model)]
	return e, ok
}

// ContextWindow returns the model's context window in tokens, or
// DefaultContextWindow when the model is unknown.
func (c *Catalog) ContextWindow(model string) int {
	if e, ok := c.Lookup(model); ok && e.ContextWindow > 0 {
		return e.ContextWindow
	}
	return DefaultContextWindow
}

// Len returns the number of known models.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func normalize(model string) string {
	return strings.ToLower(strings.TrimSpace(model))
}

// builtinEntries is rebuilt per call so merges can never alias the
// builtin table.
func builtinEntries() map[string]Entry {
	list := []Entry{
		// OpenAI
		{Name: "o3", ContextWindow: 200_000, StructuredOutput: true, Reasoning: true},
		{Name: "o3-mini", ContextWindow: 200_000, StructuredOutput: true, Reasoning: true},
		{Name: "o4-mini", ContextWindow: 200_000, StructuredOutput: true, Reasoning: true},
		{Name: "gpt-4o", ContextWindow: 128_000, StructuredOutput: true},
		{Name: "gpt-4o-mini", ContextWindow: 128_000, StructuredOutput: true},
		{Name: "gpt-4.1", ContextWindow: 1_047_576, StructuredOutput: true},
		{Name: "gpt-4.1-mini", ContextWindow: 1_047_576, StructuredOutput: true},

		// Google
		{Name: "gemini-2.5-pro", ContextWindow: 1_048_576, StructuredOutput: true, Reasoning: true},
		{Name: "gemini-2.5-flash", ContextWindow: 1_048_576, StructuredOutput: true, Reasoning: true},
		{Name: "gemini-2.0-flash", ContextWindow: 1_048_576, StructuredOutput: true},
		{Name: "gemini-1.5-pro", ContextWindow: 2_097_152, StructuredOutput: true},

		// Mistral
		{Name: "mistral-large-latest", ContextWindow: 128_000},
		{Name: "mistral-small-latest", ContextWindow: 32_000},
		{Name: "codestral-latest", ContextWindow: 256_000},
		{Name: "open-mistral-nemo", ContextWindow: 128_000},
	}

	entries := make(map[string]Entry, len(list))
	for _, e := range list {
		entries[normalize(e.Name)] = e
	}
	return entries
}
