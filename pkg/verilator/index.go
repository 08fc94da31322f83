package verilator

import (
	"sort"
	"sync"
)

// Index is the authoritative, file-grouped diagnostic state across
// passes. Each applied pass replaces the previous contents wholesale;
// there is no merging. A caller-supplied monotonic sequence number
// keeps a slow, stale pass from overwriting a newer result when
// passes overlap.
type Index struct {
	mu      sync.Mutex
	seq     uint64
	applied bool
	set     DiagnosticSet
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{set: DiagnosticSet{}}
}

// Apply installs set as the new authoritative state if seq is newer
// than the last applied pass. It returns the file paths that had
// diagnostics before but none now — consumers must clear those — and
// whether the pass was applied at all. The index takes ownership of
// set; callers must not mutate it afterwards.
func (x *Index) Apply(seq uint64, set DiagnosticSet) (removed []string, ok bool) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.applied && seq <= x.seq {
		return nil, false
	}

	if set == nil {
		set = DiagnosticSet{}
	}
	for path := range x.set {
		if _, still := set[path]; !still {
			removed = append(removed, path)
		}
	}
	sort.Strings(removed)

	x.seq = seq
	x.applied = true
	x.set = set
	return removed, true
}

// Get returns the diagnostics currently recorded for path, in
// discovery order.
func (x *Index) Get(path string) []Diagnostic {
	x.mu.Lock()
	defer x.mu.Unlock()
	diags := x.set[path]
	out := make([]Diagnostic, len(diags))
	copy(out, diags)
	return out
}

// Files returns the paths that currently have diagnostics, sorted.
func (x *Index) Files() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.set.Files()
}

// Total returns the number of diagnostics currently held.
func (x *Index) Total() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.set.Total()
}
