package hdl_test

import (
	"reflect"
	"testing"

	"github.com/yaklabco/vlint/pkg/hdl"
)

func TestNewSuffixSet_OrdersLongestFirst(t *testing.T) {
	t.Parallel()

	set := hdl.NewSuffixSet(".v", ".sv", ".svh", "")
	want := []string{".svh", ".sv", ".v"}
	if got := set.Suffixes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Suffixes() = %v, want %v", got, want)
	}
}

func TestSuffixSet_Pattern(t *testing.T) {
	t.Parallel()

	set := hdl.NewSuffixSet(".sv", ".v")
	if got, want := set.Pattern(), `\.sv|\.v`; got != want {
		t.Errorf("Pattern() = %q, want %q", got, want)
	}
}

func TestSuffixSet_Match(t *testing.T) {
	t.Parallel()

	set := hdl.DefaultSuffixes()

	tests := []struct {
		path string
		want bool
	}{
		{"top.sv", true},
		{"pkg.svh", true},
		{"old.v", true},
		{"dir/with space.vh", true},
		{"readme.md", false},
		{"main.go", false},
	}

	for _, tt := range tests {
		if got := set.Match(tt.path); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
