// Package trim shrinks oversized prompts to fit a token budget.
//
// Token counts and character counts are related only loosely, so the
// trimmer works by estimation: it measures the text, converts the token
// overflow to a character target using a conservative characters-per-token
// ratio, asks a text splitter for a chunk of that size, and re-measures.
// The loop repeats until the text fits, bottoming out at a fixed 140-rune
// floor when the budget is too small for any meaningful chunk.
//
// # Basic Usage
//
//	fitted := trim.ToBudget(prompt, 128_000)
//
// Trim to a specific model's context window:
//
//	fitted := trim.ForModel(prompt, "gpt-4o")
//
// Custom counter and splitter:
//
//	trimmer := trim.New().
//	    WithCounter(tokens.NewTiktokenCounter()).
//	    WithSplitter(textsplit.New())
//	fitted := trimmer.Trim(prompt, budget)
//
// Text already within budget is returned unchanged, and the result is
// never longer than the input.
package trim
