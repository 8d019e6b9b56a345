// Package tokens provides token counting and budget management for LLM prompts.
//
// Two counters are available. The estimator uses the rule-of-thumb that
// approximately 4 characters equals 1 token for English text, which is fast
// and needs no vocabulary files. The tiktoken counter encodes against a real
// BPE vocabulary and degrades to the estimator when the vocabulary cannot be
// loaded.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// For one-off counting, use the convenience function:
//
//	count := tokens.EstimateTokens("Hello, world!")
//
// # Exact counting
//
// TiktokenCounter counts against a BPE encoding:
//
//	counter := tokens.NewTiktokenCounter()           // o200k_base
//	counter = tokens.NewTiktokenCounterForEncoding("cl100k_base")
//
// To pick the encoding from a model name:
//
//	counter := tokens.NewCounterForModel("gpt-4o")
//
// # Budget
//
// Budget helps allocate tokens across prompt components:
//
//	budget := tokens.NewBudget(100000)
//	// Default allocation: 20% system, 40% context, 30% user, 10% reserved
//	budget.FitsSystem(text)                     // check system prompt
//	budget.FitsContext(text)                    // check context
//	budget.RemainingContext(usedTokens)         // remaining context budget
//
// Custom allocations:
//
//	budget := tokens.NewBudgetWithAllocation(
//	    100000,  // total
//	    30,      // 30% system
//	    40,      // 40% context
//	    20,      // 20% user
//	    10,      // 10% reserved
//	)
package tokens
