package textsplit

import (
	"strings"
	"unicode/utf8"
)

// DefaultChunkSize is used when Split is called with a non-positive size.
const DefaultChunkSize = 1000

// DefaultSeparators is the separator hierarchy tried in order: paragraph
// breaks, line breaks, word breaks, and finally individual characters.
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter breaks text into chunks no longer than a target rune count.
type Splitter struct {
	separators []string
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithSeparators sets the separator hierarchy. Separators are tried in
// order; an empty-string separator is appended if missing so splitting
// always bottoms out at character windows.
func WithSeparators(separators []string) Option {
	return func(s *Splitter) {
		s.separators = separators
	}
}

// New creates a splitter with the default separator hierarchy.
func New(opts ...Option) *Splitter {
	s := &Splitter{separators: DefaultSeparators}
	for _, opt := range opts {
		opt(s)
	}
	if n := len(s.separators); n == 0 || s.separators[n-1] != "" {
		s.separators = append(append([]string{}, s.separators...), "")
	}
	return s
}

// Split breaks text into ordered chunks of at most chunkSize runes, with
// adjacent chunks sharing roughly chunkOverlap runes. Chunks are trimmed
// of surrounding whitespace; empty input yields no chunks.
func (s *Splitter) Split(text string, chunkSize, chunkOverlap int) []string {
	if text == "" {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 2
	}
	return s.split(text, chunkSize, chunkOverlap, s.separators)
}

// split recursively breaks text on the first separator it contains, then
// merges the resulting pieces back up to chunkSize. Pieces still longer
// than chunkSize descend to the next separator level.
func (s *Splitter) split(text string, chunkSize, chunkOverlap int, separators []string) []string {
	sep := ""
	var rest []string
	for i, candidate := range separators {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			rest = separators[i+1:]
			break
		}
	}

	if sep == "" {
		return window(text, chunkSize, chunkOverlap)
	}

	var chunks []string
	var pending []string
	for _, piece := range strings.Split(text, sep) {
		if utf8.RuneCountInString(piece) <= chunkSize {
			pending = append(pending, piece)
			continue
		}
		chunks = append(chunks, merge(pending, sep, chunkSize, chunkOverlap)...)
		pending = nil
		chunks = append(chunks, s.split(piece, chunkSize, chunkOverlap, rest)...)
	}
	return append(chunks, merge(pending, sep, chunkSize, chunkOverlap)...)
}

// merge joins pieces into chunks as close to chunkSize as possible without
// exceeding it, carrying chunkOverlap runes of trailing pieces into the
// next chunk.
func merge(pieces []string, sep string, chunkSize, chunkOverlap int) []string {
	sepLen := utf8.RuneCountInString(sep)

	var chunks []string
	var current []string
	total := 0

	for _, piece := range pieces {
		pieceLen := utf8.RuneCountInString(piece)

		joined := pieceLen
		if len(current) > 0 {
			joined += sepLen
		}
		if total+joined > chunkSize && len(current) > 0 {
			if chunk := joinTrimmed(current, sep); chunk != "" {
				chunks = append(chunks, chunk)
			}
			// Drop leading pieces until the retained tail is within the
			// overlap and the incoming piece fits.
			for len(current) > 0 && (total > chunkOverlap || total+joined > chunkSize) {
				drop := utf8.RuneCountInString(current[0])
				if len(current) > 1 {
					drop += sepLen
				}
				total -= drop
				current = current[1:]
				joined = pieceLen
				if len(current) > 0 {
					joined += sepLen
				}
			}
		}
		current = append(current, piece)
		total += joined
	}

	if chunk := joinTrimmed(current, sep); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// window slices text into fixed-size rune windows. Used at the bottom of
// the separator hierarchy, where no natural break point exists.
func window(text string, chunkSize, chunkOverlap int) []string {
	runes := []rune(text)
	step := chunkSize - chunkOverlap
	if step < 1 {
		step = 1
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}

func joinTrimmed(pieces []string, sep string) string {
	return strings.TrimSpace(strings.Join(pieces, sep))
}
