package verilator

import "strconv"

// build assembles one Diagnostic from a located header and its
// continuation block. ok is false when the header's line token is not
// a valid integer, which discards the header and its entire block.
func build(h header, b block) (Diagnostic, bool) {
	line, err := strconv.Atoi(h.lineRaw)
	if err != nil {
		return Diagnostic{}, false
	}

	// 1-based text positions become 0-based. A missing column
	// defaults to 0 for producers that omit column numbers.
	col := 0
	if h.colRaw != "" {
		c, err := strconv.Atoi(h.colRaw)
		if err != nil {
			return Diagnostic{}, false
		}
		col = c - 1
	}

	rng := SourceRange{
		Start: SourceLocation{File: h.file, Line: line - 1, Col: col},
		End:   EndOfLine,
	}
	if b.highlightLen > 0 {
		rng.End = rng.Start.Col + b.highlightLen
	}

	d := Diagnostic{
		Severity: h.severity,
		Code:     h.code,
		Message:  h.message,
		Range:    rng,
	}

	// Related information: secondaries in discovery order, then the
	// elaboration run.
	for _, sec := range b.secondaries {
		r := rng
		if sec.loc != nil {
			r = SourceRange{Start: *sec.loc, End: EndOfLine}
		}
		if sec.markerLen > 0 {
			r.End = r.Start.Col + sec.markerLen
		}
		d.Related = append(d.Related, RelatedMessage{Range: r, Message: sec.message})
	}
	for _, text := range b.elaborations {
		d.Related = append(d.Related, RelatedMessage{Range: rng, Message: text})
	}

	return d, true
}
