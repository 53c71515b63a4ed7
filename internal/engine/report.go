// Package engine replays whole diagram documents through a validation
// profile and aggregates the verdicts. It is the batch counterpart of the
// per-edit Check call: every edge triple and every node of each diagram is
// checked, and rejections are collected as diagnostics.
package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/graphol-dev/grapholint/internal/profiles"
)

// Kind distinguishes edge diagnostics from node diagnostics.
type Kind string

const (
	// KindEdge marks a diagnostic raised for an edge triple.
	KindEdge Kind = "edge"
	// KindNode marks a diagnostic raised for a single node.
	KindNode Kind = "node"
)

// Diagnostic is one rejected check.
type Diagnostic struct {
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Diagram string `json:"diagram" yaml:"diagram"`
	Element string `json:"element" yaml:"element"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Rule    string `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
}

// Summary provides aggregate statistics about a check run.
type Summary struct {
	Checked int `json:"checked" yaml:"checked"`
	Passed  int `json:"passed" yaml:"passed"`
	Failed  int `json:"failed" yaml:"failed"`
}

// Report is the complete result of one check run.
type Report struct {
	ID          string        `json:"id" yaml:"id"`
	Profile     profiles.Type `json:"profile" yaml:"profile"`
	StartTime   time.Time     `json:"start_time" yaml:"start_time"`
	EndTime     time.Time     `json:"end_time" yaml:"end_time"`
	Duration    time.Duration `json:"-" yaml:"-"`
	DurationMS  int64         `json:"duration_ms" yaml:"duration_ms"`
	Diagnostics []Diagnostic  `json:"diagnostics" yaml:"diagnostics"`
	Summary     Summary       `json:"summary" yaml:"summary"`

	mu      sync.Mutex // protects Diagnostics and checked during parallel runs
	checked int
}

// NewReport starts a report for the given profile.
func NewReport(profile profiles.Type) *Report {
	return &Report{
		ID:          uuid.New().String(),
		Profile:     profile,
		StartTime:   time.Now(),
		Diagnostics: make([]Diagnostic, 0),
	}
}

// Add records the outcome of checking one diagram. Thread-safe for
// concurrent calls during parallel execution.
func (r *Report) Add(checked int, diagnostics []Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checked += checked
	r.Diagnostics = append(r.Diagnostics, diagnostics...)
}

// Finalize completes the report: it sets the end time, computes the
// summary and orders diagnostics deterministically regardless of the
// interleaving that produced them.
func (r *Report) Finalize() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
	r.DurationMS = r.Duration.Milliseconds()

	sort.Slice(r.Diagnostics, func(i, j int) bool {
		a, b := r.Diagnostics[i], r.Diagnostics[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Diagram != b.Diagram {
			return a.Diagram < b.Diagram
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Element < b.Element
	})

	r.Summary = Summary{
		Checked: r.checked,
		Passed:  r.checked - len(r.Diagnostics),
		Failed:  len(r.Diagnostics),
	}
}

// HasFailures reports whether any check was rejected.
func (r *Report) HasFailures() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Diagnostics) > 0
}
