// Package catalog maps model names to context windows and capability flags.
//
// The builtin table covers the common OpenAI, Gemini and Mistral families.
// Deployments with custom or fine-tuned models layer a YAML overlay on top:
//
//	cat, err := catalog.LoadFile("models.yaml")
//	window := cat.ContextWindow("my-finetune")
//
// Unknown models report a context window of 128,000 tokens.
//
// Catalogs are immutable; Merge returns a new value. For long-running
// processes, Watch delivers a fresh catalog whenever the overlay changes:
//
//	go catalog.Watch(ctx, "models.yaml", func(c *catalog.Catalog) {
//	    current.Store(c)
//	})
package catalog
