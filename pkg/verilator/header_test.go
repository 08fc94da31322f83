package verilator

import (
	"testing"

	"github.com/yaklabco/vlint/pkg/hdl"
)

func TestParseHeader(t *testing.T) {
	t.Parallel()

	g := newGrammar(hdl.DefaultSuffixes())

	tests := []struct {
		name string
		text string
		want header
	}{
		{
			"located with code and column",
			"%Warning-WIDTH: top.sv:10:3: Width mismatch",
			header{
				kind: headerLocated, severity: SeverityWarning, code: "WIDTH",
				file: "top.sv", lineRaw: "10", colRaw: "3", message: "Width mismatch",
			},
		},
		{
			"located without column",
			"%Error: foo.sv:12: msg",
			header{
				kind: headerLocated, severity: SeverityError,
				file: "foo.sv", lineRaw: "12", message: "msg",
			},
		},
		{
			"located with bad line token",
			"%Error: foo.sv:NOTANUMBER: msg",
			header{
				kind: headerLocated, severity: SeverityError,
				file: "foo.sv", lineRaw: "NOTANUMBER", message: "msg",
			},
		},
		{
			"no location",
			"%Error: Exiting due to 2 error(s)",
			header{
				kind: headerPlain, severity: SeverityError,
				message: "Exiting due to 2 error(s)",
			},
		},
		{
			"severity word prefix match",
			"%Warnings: a.sv:1:1: m",
			header{
				kind: headerLocated, severity: SeverityWarning,
				file: "a.sv", lineRaw: "1", colRaw: "1", message: "m",
			},
		},
		{
			"unknown severity word",
			"%Info: using configuration defaults",
			header{
				kind: headerPlain, severity: SeverityInfo,
				message: "using configuration defaults",
			},
		},
		{
			"code requires no space after dash",
			"%Error- X: oops",
			header{kind: headerNone},
		},
		{
			"not a header",
			"plain text",
			header{kind: headerNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := g.parseHeader(tt.text); got != tt.want {
				t.Errorf("parseHeader(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchesContinuation(t *testing.T) {
	t.Parallel()

	g := newGrammar(hdl.DefaultSuffixes())

	tests := []struct {
		text string
		want bool
	}{
		{"           : ... In instance top", true},
		{"      |     ^~~~~", true},
		{"        ... note: see also", true},
		{"    a.v:3:4: ... Location of first driving block", true},
		{"free text", false},
		{"   10 |   assign o = i;", false},
	}

	for _, tt := range tests {
		if got := g.matchesContinuation(tt.text); got != tt.want {
			t.Errorf("matchesContinuation(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
