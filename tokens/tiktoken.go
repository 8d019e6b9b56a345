package tokens

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the BPE encoding used when no model is specified.
// o200k_base covers current OpenAI models and is a close approximation
// for other vendors' tokenizers.
const DefaultEncoding = "o200k_base"

// TiktokenCounter counts tokens against a real BPE vocabulary. The encoding
// loads lazily on first use; if loading fails (unknown encoding name, or an
// offline environment without a cached vocabulary) counting falls back to a
// character estimator so callers always get a usable count.
//
// Safe for concurrent use.
type TiktokenCounter struct {
	encoding string
	fallback Counter

	mu     sync.Mutex
	enc    *tiktoken.Tiktoken
	loaded bool
}

// NewTiktokenCounter creates a counter for the default encoding.
func NewTiktokenCounter() *TiktokenCounter {
	return NewTiktokenCounterForEncoding(DefaultEncoding)
}

// NewTiktokenCounterForEncoding creates a counter for a named encoding,
// such as "o200k_base" or "cl100k_base".
func NewTiktokenCounterForEncoding(encoding string) *TiktokenCounter {
	return &TiktokenCounter{
		encoding: encoding,
		fallback: NewEstimatingCounter(),
	}
}

// NewCounterForModel returns a counter tuned to the given model name.
// Models tiktoken does not recognize use the default encoding; if that
// cannot be loaded either, counts come from the character estimator.
func NewCounterForModel(model string) Counter {
	c := NewTiktokenCounterForEncoding(DefaultEncoding)
	if enc, err := tiktoken.EncodingForModel(model); err == nil {
		c.enc = enc
		c.loaded = true
	}
	return c
}

// Count returns the number of tokens in the given text.
func (c *TiktokenCounter) Count(text string) int {
	if enc := c.load(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return c.fallback.Count(text)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *TiktokenCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// load resolves the encoding once; a nil result means the fallback applies.
func (c *TiktokenCounter) load() *tiktoken.Tiktoken {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		c.loaded = true
		if enc, err := tiktoken.GetEncoding(c.encoding); err == nil {
			c.enc = enc
		}
	}
	return c.enc
}
