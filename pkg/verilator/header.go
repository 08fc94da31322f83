package verilator

import (
	"regexp"
	"strings"

	"github.com/yaklabco/vlint/pkg/hdl"
)

// headerRe matches the fixed prefix of a header line: marker,
// severity word, optional error code. The remainder is resolved
// against the suffix-dependent location pattern.
var headerRe = regexp.MustCompile(`^%([A-Za-z]+)(?:-([A-Z0-9]+))?:\s*(.*)$`)

// headerKind tags the classification of a %-prefixed line.
type headerKind int

const (
	headerNone    headerKind = iota // starts with % but fits no header grammar
	headerPlain                     // header without a recognized location
	headerLocated                   // header with file path and line token
)

// header is the parsed form of a %-prefixed line. lineRaw and colRaw
// keep the 1-based tokens unvalidated; the builder decides whether
// they survive.
type header struct {
	kind     headerKind
	severity Severity
	code     string
	file     string
	lineRaw  string
	colRaw   string
	message  string
}

// grammar holds the compiled line patterns for one pass
// configuration. The location and secondary patterns depend on the
// recognized suffix set, so the grammar is built per parser rather
// than at package init.
type grammar struct {
	location    *regexp.Regexp
	elaboration *regexp.Regexp
	highlight   *regexp.Regexp
	secondary   *regexp.Regexp
}

func newGrammar(suffixes *hdl.SuffixSet) *grammar {
	alt := suffixes.Pattern()
	return &grammar{
		// The path group is greedy so a suffix-looking token embedded
		// in the path resolves to the last viable suffix occurrence.
		// The line token is captured loosely; integer validation is
		// the builder's job.
		location:    regexp.MustCompile(`^(.+(?:` + alt + `)):([^:\s][^:]*)(?::(\d+))?:\s?(.*)$`),
		elaboration: regexp.MustCompile(`^\s*: \.\.\.\s?(.*)$`),
		highlight:   regexp.MustCompile(`^\s*\|\s+(\^~*)\s*$`),
		secondary:   regexp.MustCompile(`^\s+(?:(.+(?:` + alt + `)):(\d+):(\d+):)?\s*\.\.\.\s?(.*)$`),
	}
}

// parseHeader classifies one line's text. Lines not starting with %
// are never headers; the caller handles them as plain text.
func (g *grammar) parseHeader(text string) header {
	m := headerRe.FindStringSubmatch(text)
	if m == nil {
		return header{kind: headerNone}
	}

	h := header{
		severity: severityForWord(m[1]),
		code:     m[2],
	}

	rest := m[3]
	if lm := g.location.FindStringSubmatch(rest); lm != nil {
		h.kind = headerLocated
		h.file = lm[1]
		h.lineRaw = strings.TrimSpace(lm[2])
		h.colRaw = lm[3]
		h.message = lm[4]
		return h
	}

	h.kind = headerPlain
	h.message = rest
	return h
}

// severityForWord maps the token after the % marker. Anything that is
// neither an Error nor a Warning prefix is informational, matching
// Verilator's %Info lines.
func severityForWord(word string) Severity {
	switch {
	case strings.HasPrefix(word, "Error"):
		return SeverityError
	case strings.HasPrefix(word, "Warning"):
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// matchesContinuation reports whether text fits any continuation
// shape (elaboration, highlight, or secondary). Such lines belong to
// a diagnostic block and are never surfaced as passthrough text.
func (g *grammar) matchesContinuation(text string) bool {
	return g.elaboration.MatchString(text) ||
		g.highlight.MatchString(text) ||
		g.secondary.MatchString(text)
}
