// Package kernel holds the slice kernels behind package batch.
//
// Several implementation variants register themselves from init functions:
// a pure Go entry that is always available, and accelerated entries backed by
// algo-vecmath (float64) and vek32 (float32) on amd64 and arm64. Resolve
// merges the compatible entries by priority so that each operation comes from
// the best variant that provides it.
package kernel

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-vector/internal/cpu"
)

// Entry is one registered implementation variant. Operations a variant does
// not provide are left nil and filled from lower-priority entries.
type Entry struct {
	// Name identifies the variant ("generic", "vecmath", "vek32").
	Name string

	// Level is the instruction set this entry needs.
	Level cpu.SIMDLevel

	// Priority orders compatible entries; higher wins.
	Priority int

	// Hypot computes dst[i] = sqrt(x[i]² + y[i]²).
	Hypot func(dst, x, y []float64)

	// SumSquares computes dst[i] = x[i]² + y[i]².
	SumSquares func(dst, x, y []float64)

	// Mul computes dst[i] = a[i] * b[i].
	Mul func(dst, a, b []float64)

	// Dot32 returns sum(a[i] * b[i]).
	Dot32 func(a, b []float32) float32

	// Sum32 returns sum(x[i]).
	Sum32 func(x []float32) float32

	// Distance32 returns sqrt(sum((a[i] - b[i])²)).
	Distance32 func(a, b []float32) float32
}

// Table is the resolved set of operations plus the name of the variant each
// one came from.
type Table struct {
	Entry
	Sources map[string]string
}

// Registry collects implementation variants.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Global is the registry the init functions of this package fill.
var Global = &Registry{}

// Register adds an entry. Registration should finish before Resolve is used.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Entries returns a copy of the registered entries, highest priority first.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// Reset removes every entry. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Resolve builds the operation table for features. The highest-priority
// compatible entry providing an operation supplies it.
func (r *Registry) Resolve(features cpu.Features) Table {
	t := Table{Sources: make(map[string]string)}
	names := make([]string, 0, 2)

	pick := func(op string, have bool, name string, set func()) {
		if have {
			return
		}
		set()
		t.Sources[op] = name
	}

	for _, e := range r.Entries() {
		if !cpu.Supports(features, e.Level) {
			continue
		}
		used := len(t.Sources)
		if e.Hypot != nil {
			pick("Hypot", t.Hypot != nil, e.Name, func() { t.Hypot = e.Hypot })
		}
		if e.SumSquares != nil {
			pick("SumSquares", t.SumSquares != nil, e.Name, func() { t.SumSquares = e.SumSquares })
		}
		if e.Mul != nil {
			pick("Mul", t.Mul != nil, e.Name, func() { t.Mul = e.Mul })
		}
		if e.Dot32 != nil {
			pick("Dot32", t.Dot32 != nil, e.Name, func() { t.Dot32 = e.Dot32 })
		}
		if e.Sum32 != nil {
			pick("Sum32", t.Sum32 != nil, e.Name, func() { t.Sum32 = e.Sum32 })
		}
		if e.Distance32 != nil {
			pick("Distance32", t.Distance32 != nil, e.Name, func() { t.Distance32 = e.Distance32 })
		}
		if len(t.Sources) > used {
			names = append(names, e.Name)
		}
	}

	if len(names) > 0 {
		t.Name = names[0]
		for _, n := range names[1:] {
			t.Name += "+" + n
		}
	}
	return t
}

// Complete reports whether every operation has an implementation.
func (t Table) Complete() bool {
	return t.Hypot != nil && t.SumSquares != nil && t.Mul != nil &&
		t.Dot32 != nil && t.Sum32 != nil && t.Distance32 != nil
}
