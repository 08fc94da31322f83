package verilator

import "strings"

// RawLine is one line of the captured stream, keyed by its index in
// the pass.
type RawLine struct {
	Index int
	Text  string
}

// Stream is an immutable, indexed view over the raw text split into
// lines. It backs the forward scans over continuation windows and the
// bounded backward scan used for severity backfill.
type Stream struct {
	lines []RawLine
}

// NewStream splits text on \r?\n. Empty input yields an empty stream.
func NewStream(text string) *Stream {
	if text == "" {
		return &Stream{}
	}
	parts := strings.Split(text, "\n")
	lines := make([]RawLine, len(parts))
	for i, part := range parts {
		lines[i] = RawLine{Index: i, Text: strings.TrimSuffix(part, "\r")}
	}
	return &Stream{lines: lines}
}

// Len returns the number of lines in the stream.
func (s *Stream) Len() int {
	return len(s.lines)
}

// At returns the line at index i, or false when i is out of range.
func (s *Stream) At(i int) (RawLine, bool) {
	if i < 0 || i >= len(s.lines) {
		return RawLine{}, false
	}
	return s.lines[i], true
}
