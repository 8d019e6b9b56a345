package textsplit

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitEmpty(t *testing.T) {
	chunks := New().Split("", 100, 0)
	if chunks != nil {
		t.Errorf("Split(\"\") = %v, want nil", chunks)
	}
}

func TestSplitShortText(t *testing.T) {
	chunks := New().Split("hello world", 100, 0)
	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	if chunks[0] != "hello world" {
		t.Errorf("chunks[0] = %q, want %q", chunks[0], "hello world")
	}
}

func TestSplitChunkSizeBound(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		chunkSize int
	}{
		{"paragraphs", strings.Repeat("lorem ipsum dolor sit amet\n\n", 50), 100},
		{"single line words", strings.Repeat("word ", 200), 40},
		{"no separators at all", strings.Repeat("x", 500), 64},
		{"mixed", "short\n\n" + strings.Repeat("a", 300) + "\n\nmore words here", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := New().Split(tt.text, tt.chunkSize, 0)
			if len(chunks) == 0 {
				t.Fatal("Split returned no chunks")
			}
			for i, chunk := range chunks {
				if n := utf8.RuneCountInString(chunk); n > tt.chunkSize {
					t.Errorf("chunk %d has %d runes, want <= %d", i, n, tt.chunkSize)
				}
			}
		})
	}
}

func TestSplitPrefersParagraphBreaks(t *testing.T) {
	text := "first paragraph here\n\nsecond paragraph here"
	chunks := New().Split(text, 25, 0)

	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2: %q", len(chunks), chunks)
	}
	if chunks[0] != "first paragraph here" {
		t.Errorf("chunks[0] = %q, want %q", chunks[0], "first paragraph here")
	}
	if chunks[1] != "second paragraph here" {
		t.Errorf("chunks[1] = %q, want %q", chunks[1], "second paragraph here")
	}
}

func TestSplitOverlap(t *testing.T) {
	text := strings.Repeat("ab ", 100)
	chunks := New().Split(text, 30, 10)

	if len(chunks) < 2 {
		t.Fatalf("len(chunks) = %d, want >= 2", len(chunks))
	}
	// With overlap, the tail of one chunk reappears at the head of the next.
	for i := 1; i < len(chunks); i++ {
		prevWords := strings.Fields(chunks[i-1])
		currWords := strings.Fields(chunks[i])
		if len(prevWords) == 0 || len(currWords) == 0 {
			continue
		}
		if prevWords[len(prevWords)-1] != currWords[0] {
			t.Errorf("chunk %d does not overlap chunk %d: %q vs %q", i, i-1, chunks[i-1], chunks[i])
		}
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	text := "alpha\n\nbravo\n\ncharlie\n\ndelta"
	chunks := New().Split(text, 10, 0)

	want := []string{"alpha", "bravo", "charlie", "delta"}
	if len(chunks) != len(want) {
		t.Fatalf("len(chunks) = %d, want %d: %q", len(chunks), len(want), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunks[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplitMultibyte(t *testing.T) {
	text := strings.Repeat("日本語テキスト", 50)
	chunks := New().Split(text, 40, 0)

	for i, chunk := range chunks {
		if !utf8.ValidString(chunk) {
			t.Errorf("chunk %d is not valid UTF-8", i)
		}
		if n := utf8.RuneCountInString(chunk); n > 40 {
			t.Errorf("chunk %d has %d runes, want <= 40", i, n)
		}
	}
}

func TestSplitDefaultsOnBadArguments(t *testing.T) {
	// Non-positive chunk size falls back to the default; oversized overlap
	// is clamped rather than rejected.
	text := strings.Repeat("word ", 500)

	chunks := New().Split(text, 0, 0)
	if len(chunks) == 0 {
		t.Fatal("Split with zero chunk size returned no chunks")
	}
	for i, chunk := range chunks {
		if n := utf8.RuneCountInString(chunk); n > DefaultChunkSize {
			t.Errorf("chunk %d has %d runes, want <= %d", i, n, DefaultChunkSize)
		}
	}

	chunks = New().Split(text, 20, 100)
	if len(chunks) == 0 {
		t.Fatal("Split with oversized overlap returned no chunks")
	}
	for i, chunk := range chunks {
		if n := utf8.RuneCountInString(chunk); n > 20 {
			t.Errorf("chunk %d has %d runes, want <= 20", i, n)
		}
	}
}

func TestWithSeparators(t *testing.T) {
	s := New(WithSeparators([]string{"|"}))
	chunks := s.Split("aa|bb|cc", 2, 0)

	want := []string{"aa", "bb", "cc"}
	if len(chunks) != len(want) {
		t.Fatalf("len(chunks) = %d, want %d: %q", len(chunks), len(want), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunks[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}
}
