// Package textsplit splits text into chunks bounded by a target size.
//
// The splitter works recursively: it tries to break on the largest
// separator present (paragraphs, then lines, then words), and only falls
// back to hard character windows when a single word exceeds the chunk
// size. Pieces are then merged back together so each chunk is as full as
// possible without exceeding the target.
//
// # Basic Usage
//
//	splitter := textsplit.New()
//	chunks := splitter.Split(document, 1000, 100)
//	for _, chunk := range chunks {
//	    // each chunk is at most 1000 runes, overlapping the previous by ~100
//	}
//
// Sizes are measured in runes, not bytes, so multi-byte text never splits
// mid-character.
package textsplit
