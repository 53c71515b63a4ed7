package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/sync/errgroup"

	"github.com/graphol-dev/grapholint/internal/config"
	"github.com/graphol-dev/grapholint/internal/diagram"
	"github.com/graphol-dev/grapholint/internal/profiles"
)

// Options controls check behavior.
type Options struct {
	// Profile selects the rule set to check against.
	Profile profiles.Type
	// MaxConcurrentFiles limits parallel document checking (0 = no limit).
	MaxConcurrentFiles int
	// FailFast stops checking after the first file with failures.
	FailFast bool
	// Filter keeps only diagnostics matching a compiled expression.
	Filter *vm.Program
}

// DefaultOptions returns sensible defaults for the given profile.
func DefaultOptions(profile profiles.Type) Options {
	return Options{
		Profile:            profile,
		MaxConcurrentFiles: 4,
	}
}

// DiagnosticEnv exposes diagnostic fields for filter expressions.
type DiagnosticEnv struct {
	File    string `expr:"file"`
	Diagram string `expr:"diagram"`
	Element string `expr:"element"`
	Kind    string `expr:"kind"`
	Rule    string `expr:"rule"`
	Message string `expr:"message"`
}

// CompileFilter compiles a filter expression against DiagnosticEnv. The
// expression must evaluate to a boolean.
func CompileFilter(src string) (*vm.Program, error) {
	program, err := expr.Compile(src, expr.Env(DiagnosticEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return program, nil
}

// Checker replays diagram documents through a profile.
type Checker struct {
	opts Options
}

// New creates a checker with the given options.
func New(opts Options) *Checker {
	return &Checker{opts: opts}
}

// errFailFast aborts the errgroup without surfacing an error to the caller.
var errFailFast = errors.New("fail fast")

// CheckFiles loads, builds and checks every document, files in parallel
// under the configured limit. Each diagram gets its own Profile instance;
// the profile cache is single-caller by contract.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) (*Report, error) {
	report := NewReport(c.opts.Profile)

	g, ctx := errgroup.WithContext(ctx)
	if c.opts.MaxConcurrentFiles > 0 {
		g.SetLimit(c.opts.MaxConcurrentFiles)
	}

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			diagrams, err := doc.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			for _, dg := range diagrams {
				profile, err := profiles.New(c.opts.Profile)
				if err != nil {
					return err
				}
				checked, diagnostics := c.CheckDiagram(profile, dg, path)
				report.Add(checked, diagnostics)
				if c.opts.FailFast && len(diagnostics) > 0 {
					return errFailFast
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errFailFast) {
		return nil, err
	}

	report.Finalize()
	return report, nil
}

// CheckDiagram replays every edge triple and every node of one diagram
// through the profile. It returns the number of checks performed and the
// diagnostics that survived the filter. Diagnostics carry the file path so
// filter expressions can select on it; in-memory diagrams may pass "".
func (c *Checker) CheckDiagram(profile *profiles.Profile, dg *diagram.Diagram, file string) (int, []Diagnostic) {
	checked := 0
	var diagnostics []Diagnostic

	for _, e := range dg.Edges() {
		checked++
		result := profile.Check(e.Source(), e, e.Target())
		if result.IsValid() {
			continue
		}
		d := Diagnostic{
			File:    file,
			Diagram: dg.Name(),
			Element: e.ID(),
			Kind:    KindEdge,
			Rule:    result.Rule(),
			Message: result.Message(),
		}
		if c.keep(d) {
			diagnostics = append(diagnostics, d)
		}
	}

	for _, n := range dg.Nodes() {
		checked++
		result := profile.Check(n, nil, nil)
		if result.IsValid() {
			continue
		}
		d := Diagnostic{
			File:    file,
			Diagram: dg.Name(),
			Element: n.ID(),
			Kind:    KindNode,
			Rule:    result.Rule(),
			Message: result.Message(),
		}
		if c.keep(d) {
			diagnostics = append(diagnostics, d)
		}
	}

	return checked, diagnostics
}

// keep applies the filter expression; diagnostics are kept when no filter
// is set or when evaluation fails.
func (c *Checker) keep(d Diagnostic) bool {
	if c.opts.Filter == nil {
		return true
	}
	env := DiagnosticEnv{
		File:    d.File,
		Diagram: d.Diagram,
		Element: d.Element,
		Kind:    string(d.Kind),
		Rule:    d.Rule,
		Message: d.Message,
	}
	output, err := expr.Run(c.opts.Filter, env)
	if err != nil {
		return true
	}
	match, ok := output.(bool)
	return !ok || match
}
