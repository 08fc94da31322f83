// Package hdl recognizes HDL source file references inside tool
// output. Recognition is suffix-driven with a configurable,
// longest-match-first suffix list; go-enry provides a fallback
// classifier for extensions the list does not cover.
package hdl

import (
	"regexp"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// SuffixSet is an ordered, longest-match-first set of recognized
// source file suffixes.
type SuffixSet struct {
	suffixes []string
}

// DefaultSuffixes returns the stock Verilog/SystemVerilog suffix set.
func DefaultSuffixes() *SuffixSet {
	return NewSuffixSet(".svh", ".sv", ".SV", ".vh", ".vl", ".v")
}

// NewSuffixSet builds a set ordered longest first, so ".svh" is tried
// before ".sv" and ".sv" before ".v". Empty suffixes are dropped.
func NewSuffixSet(suffixes ...string) *SuffixSet {
	ordered := make([]string, 0, len(suffixes))
	for _, suf := range suffixes {
		if suf != "" {
			ordered = append(ordered, suf)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	return &SuffixSet{suffixes: ordered}
}

// Suffixes returns the ordered suffix list.
func (s *SuffixSet) Suffixes() []string {
	out := make([]string, len(s.suffixes))
	copy(out, s.suffixes)
	return out
}

// Pattern returns a regexp alternation matching any suffix in the
// set, longest first. It is empty for an empty set.
func (s *SuffixSet) Pattern() string {
	quoted := make([]string, len(s.suffixes))
	for i, suf := range s.suffixes {
		quoted[i] = regexp.QuoteMeta(suf)
	}
	return strings.Join(quoted, "|")
}

// Match reports whether path ends with a recognized suffix. Paths the
// list misses are admitted when go-enry classifies the extension as a
// Verilog dialect, so an unusual extension like ".svi" still counts
// without being configured.
func (s *SuffixSet) Match(path string) bool {
	for _, suf := range s.suffixes {
		if strings.HasSuffix(path, suf) {
			return true
		}
	}
	return isVerilogExtension(path)
}

func isVerilogExtension(path string) bool {
	lang, safe := enry.GetLanguageByExtension(path)
	if !safe {
		return false
	}
	switch lang {
	case "Verilog", "SystemVerilog":
		return true
	default:
		return false
	}
}
