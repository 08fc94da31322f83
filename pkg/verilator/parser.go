package verilator

import (
	"strings"

	"github.com/yaklabco/vlint/pkg/hdl"
)

// Parser turns one captured Verilator output block into a Result per
// pass. A Parser is immutable after construction and safe for
// concurrent passes.
type Parser struct {
	grammar *grammar
}

// New returns a Parser recognizing the given source suffixes. A nil
// set uses hdl.DefaultSuffixes.
func New(suffixes *hdl.SuffixSet) *Parser {
	if suffixes == nil {
		suffixes = hdl.DefaultSuffixes()
	}
	return &Parser{grammar: newGrammar(suffixes)}
}

// Parse runs one pass over text. It never fails: header lines with a
// location become diagnostics, header lines without one and free-text
// lines become passthrough, and everything else is dropped from
// structure. An empty buffer yields an empty result.
func (p *Parser) Parse(text string) *Result {
	res := &Result{Diagnostics: DiagnosticSet{}}
	if strings.TrimSpace(text) == "" {
		return res
	}

	s := NewStream(text)
	for i := 0; i < s.Len(); i++ {
		line, _ := s.At(i)

		if !strings.HasPrefix(line.Text, "%") {
			p.plainLine(res, s, line)
			continue
		}

		h := p.grammar.parseHeader(line.Text)
		switch h.kind {
		case headerLocated:
			if d, ok := build(h, p.grammar.collect(s, line.Index)); ok {
				res.Diagnostics.Add(d)
			}
			// An unparsable line number drops the header and its
			// whole block: no diagnostic, no passthrough.
		case headerPlain:
			res.Passthrough = append(res.Passthrough, PassthroughLine{
				Severity: passthroughSeverity(h.severity),
				Text:     line.Text,
			})
		case headerNone:
			p.plainLine(res, s, line)
		}
	}

	return res
}

// plainLine forwards a non-header line as passthrough text unless it
// is blank or fits a continuation shape; continuation-shaped lines
// belong to a block (or to a dropped one) and stay out of the
// passthrough stream either way.
func (p *Parser) plainLine(res *Result, s *Stream, line RawLine) {
	if strings.TrimSpace(line.Text) == "" {
		return
	}
	if p.grammar.matchesContinuation(line.Text) {
		return
	}
	res.Passthrough = append(res.Passthrough, PassthroughLine{
		Severity: backfillSeverity(s, line.Index),
		Text:     line.Text,
	})
}

// backfillSeverity resolves the display severity of a plain line by
// scanning backward to the nearest Error or Warning header marker.
// With no such marker above it the line defaults to Error, which
// covers startup failures emitted before any diagnostic.
func backfillSeverity(s *Stream, from int) Severity {
	for i := from - 1; i >= 0; i-- {
		line, _ := s.At(i)
		switch {
		case strings.HasPrefix(line.Text, "%Error"):
			return SeverityError
		case strings.HasPrefix(line.Text, "%Warning"):
			return SeverityWarning
		}
	}
	return SeverityError
}

// passthroughSeverity clamps a header severity to the Error/Warning
// pair that passthrough lines carry.
func passthroughSeverity(sev Severity) Severity {
	if sev == SeverityWarning {
		return SeverityWarning
	}
	return SeverityError
}
