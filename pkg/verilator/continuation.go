package verilator

import (
	"strconv"
	"strings"
)

// secondary is one bottom message collected from a continuation
// window. loc is nil when the message inherits the header's range;
// markerLen is the length of the highlight marker that refined it, 0
// when unrefined.
type secondary struct {
	loc       *SourceLocation
	markerLen int
	message   string
}

// block is everything collected from the continuation window of one
// located header.
type block struct {
	elaborations []string
	highlightLen int // primary highlight marker length, 0 if none
	secondaries  []secondary
}

// collect gathers the continuation block for the header at index h.
// Three independent forward scans run over the same bounded window
// [h+1, nextHeader): the contiguous elaboration run, the first
// primary highlight, and the secondary messages with their highlight
// refinements. Their outputs are combined only at build time.
func (g *grammar) collect(s *Stream, h int) block {
	end := s.Len()
	for i := h + 1; i < s.Len(); i++ {
		line, _ := s.At(i)
		if strings.HasPrefix(line.Text, "%") {
			end = i
			break
		}
	}

	var b block

	// Elaboration lines: only the contiguous run immediately after
	// the header counts; the scan stops at the first non-matching
	// line, not just at the window end.
	for i := h + 1; i < end; i++ {
		line, _ := s.At(i)
		m := g.elaboration.FindStringSubmatch(line.Text)
		if m == nil {
			break
		}
		b.elaborations = append(b.elaborations, m[1])
	}

	// Primary highlight: the first caret line in the window sizes the
	// header range's end column.
	for i := h + 1; i < end; i++ {
		line, _ := s.At(i)
		if m := g.highlight.FindStringSubmatch(line.Text); m != nil {
			b.highlightLen = len(m[1])
			break
		}
	}

	// Secondary messages, with at most one highlight refinement each,
	// applied to the most recently pushed message. A second caret
	// line in a row is attributed to nothing.
	for i := h + 1; i < end; i++ {
		line, _ := s.At(i)
		if m := g.secondary.FindStringSubmatch(line.Text); m != nil {
			sec := secondary{message: m[4]}
			if m[1] != "" {
				sec.loc = secondaryLocation(m[1], m[2], m[3])
			}
			b.secondaries = append(b.secondaries, sec)
			continue
		}
		if m := g.highlight.FindStringSubmatch(line.Text); m != nil {
			if n := len(b.secondaries); n > 0 && b.secondaries[n-1].markerLen == 0 {
				b.secondaries[n-1].markerLen = len(m[1])
			}
		}
	}

	return b
}

// secondaryLocation converts the 1-based file:line:col triple of a
// bottom message. The secondary pattern only matches when all three
// parts are present, so partial triples never reach here.
func secondaryLocation(file, lineRaw, colRaw string) *SourceLocation {
	line, err := strconv.Atoi(lineRaw)
	if err != nil {
		return nil
	}
	col, err := strconv.Atoi(colRaw)
	if err != nil {
		return nil
	}
	return &SourceLocation{File: file, Line: line - 1, Col: col - 1}
}
