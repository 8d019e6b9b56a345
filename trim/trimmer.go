package trim

import (
	"unicode/utf8"

	"github.com/inquira/promptkit/textsplit"
	"github.com/inquira/promptkit/tokens"
)

// MinChunkSize is the floor, in runes, below which no further splitting is
// attempted. When the estimated keep-size drops under it the trimmer clips
// to exactly this many runes and stops, regardless of token count.
const MinChunkSize = 140

// CharsPerToken is the ratio used to convert token overflow into a
// character target. Three characters per token deliberately undershoots
// typical prose (closer to four), so each pass removes slightly more than
// strictly needed and converges from below the limit rather than above it.
const CharsPerToken = 3

// Splitter produces ordered chunks of at most chunkSize runes. The
// trimmer only ever uses the first chunk and passes a zero overlap.
type Splitter interface {
	Split(text string, chunkSize, chunkOverlap int) []string
}

// Trimmer reduces text until its token count fits a budget.
type Trimmer struct {
	counter  tokens.Counter
	splitter Splitter
}

// New creates a trimmer with the estimating counter and the recursive
// splitter.
func New() *Trimmer {
	return &Trimmer{
		counter:  tokens.NewEstimatingCounter(),
		splitter: textsplit.New(),
	}
}

// WithCounter sets a custom token counter. Nil counters are ignored.
func (t *Trimmer) WithCounter(c tokens.Counter) *Trimmer {
	if c != nil {
		t.counter = c
	}
	return t
}

// WithSplitter sets a custom splitter. Nil splitters are ignored.
func (t *Trimmer) WithSplitter(s Splitter) *Trimmer {
	if s != nil {
		t.splitter = s
	}
	return t
}

// Trim returns text reduced until its token count is at most budget.
//
// Text already within budget comes back unchanged, and the result is
// never longer in runes than the input. When the budget is too small for
// even a minimal chunk the result is clipped to the first MinChunkSize
// runes whatever its token count ends up being; budgets below 1 degrade
// to that same clip and should not be relied on for anything more.
func (t *Trimmer) Trim(text string, budget int) string {
	for {
		if text == "" {
			return ""
		}

		count := t.counter.Count(text)
		if count <= budget {
			return text
		}

		runes := []rune(text)
		overflow := count - budget
		target := len(runes) - overflow*CharsPerToken

		if target < MinChunkSize {
			if len(runes) <= MinChunkSize {
				return text
			}
			return string(runes[:MinChunkSize])
		}

		candidate := ""
		if chunks := t.splitter.Split(text, target, 0); len(chunks) > 0 {
			candidate = chunks[0]
		}

		// A splitter that fails to shrink the text would loop forever;
		// force progress with a hard slice at the target length.
		if utf8.RuneCountInString(candidate) == len(runes) {
			text = string(runes[:target])
			continue
		}
		text = candidate
	}
}
