// Package prompt renders prompt templates and composes the instruction
// blocks that stand in for native structured output.
//
// Templates use {{variable}} syntax with optional {{#if x}} and
// {{#each items}} blocks, converted to Go template syntax before
// execution:
//
//	out, err := prompt.Render("Summarize for {{audience}}:\n\n{{text}}", map[string]any{
//	    "audience": "an on-call engineer",
//	    "text":     report,
//	})
//
// For providers without schema-enforced output, StructuredInstruction
// builds the system-prompt suffix that asks the model for bare JSON
// matching a schema.
package prompt
