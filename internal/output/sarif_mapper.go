package output

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/graphol-dev/grapholint/internal/engine"
)

type sarifMapper struct {
	report    *engine.Report
	cwd       string                     // Current working directory
	artifacts map[string]*sarif.Artifact // Deduplicated artifacts
}

func newSARIFMapper(report *engine.Report) *sarifMapper {
	cwd, _ := os.Getwd() // Best effort, ignore error
	return &sarifMapper{
		report:    report,
		cwd:       cwd,
		artifacts: make(map[string]*sarif.Artifact),
	}
}

// mapToRun populates the SARIF run with rules, results, artifacts, and invocations.
func (m *sarifMapper) mapToRun(run *sarif.Run) {
	m.addRules(run)
	m.addResults(run)
	m.addArtifacts(run)
	m.addInvocation(run)
	m.addProperties(run)
}

// addRules registers a reporting descriptor for every rule that raised a
// diagnostic. Rules are sorted by ID for deterministic output.
func (m *sarifMapper) addRules(run *sarif.Run) {
	seen := make(map[string]bool, len(m.report.Diagnostics))
	var ids []string
	for _, d := range m.report.Diagnostics {
		if !seen[d.Rule] {
			seen[d.Rule] = true
			ids = append(ids, d.Rule)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		name := ruleDisplayName(id)
		rule := sarif.NewReportingDescriptor().WithID(id)
		rule.WithName(name)
		rule.WithShortDescription(&sarif.MultiformatMessageString{
			Text: &name,
		})
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{
			Level: "error",
		})

		props := sarif.NewPropertyBag()
		props.Add("profile", string(m.report.Profile))
		rule.WithProperties(props)

		run.Tool.Driver.AddRule(rule)
	}
}

// addResults converts diagnostics to SARIF results.
func (m *sarifMapper) addResults(run *sarif.Run) {
	for _, d := range m.report.Diagnostics {
		run.AddResult(m.mapDiagnostic(d))
	}
}

// mapDiagnostic converts a single Diagnostic to a SARIF Result.
func (m *sarifMapper) mapDiagnostic(d engine.Diagnostic) *sarif.Result {
	result := sarif.NewRuleResult(d.Rule)
	result.Level = "error"
	result.Kind = "fail"
	result.Message = sarif.NewTextMessage(d.Message)

	if loc := m.createLocation(d); loc != nil {
		result.Locations = []*sarif.Location{loc}
	}

	props := sarif.NewPropertyBag()
	props.Add("diagram", d.Diagram)
	props.Add("element", d.Element)
	props.Add("kind", string(d.Kind))
	result.WithProperties(props)

	return result
}

// createLocation builds a physical location for the diagnostic's source file.
// Diagnostics from in-memory diagrams carry no file and produce no location.
func (m *sarifMapper) createLocation(d engine.Diagnostic) *sarif.Location {
	if d.File == "" {
		return nil
	}

	uri := m.normalizeURI(d.File)
	m.registerArtifact(uri)

	pLoc := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithURI(uri))

	loc := sarif.NewLocation().WithPhysicalLocation(pLoc)
	loc.Message = sarif.NewTextMessage(d.Diagram + "/" + d.Element)
	return loc
}

// normalizeURI converts a file path to a SARIF-compliant URI.
func (m *sarifMapper) normalizeURI(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path) // Fallback to original
	}

	// Try to make relative to CWD
	if m.cwd != "" {
		if rel, err := filepath.Rel(m.cwd, abs); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	// Use absolute file:// URI
	return "file://" + filepath.ToSlash(abs)
}

// registerArtifact adds a file to the artifacts map (deduplicated).
func (m *sarifMapper) registerArtifact(uri string) {
	if _, exists := m.artifacts[uri]; exists {
		return
	}
	m.artifacts[uri] = sarif.NewArtifact().
		WithLocation(sarif.NewArtifactLocation().WithURI(uri))
}

// addArtifacts adds collected artifacts to the run, sorted for determinism.
func (m *sarifMapper) addArtifacts(run *sarif.Run) {
	uris := make([]string, 0, len(m.artifacts))
	for uri := range m.artifacts {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	for _, uri := range uris {
		run.AddArtifact(m.artifacts[uri])
	}
}

// addInvocation adds execution metadata to the run.
func (m *sarifMapper) addInvocation(run *sarif.Run) {
	invocation := sarif.NewInvocation()

	invocation.ExecutionSuccessful = ptrBool(true)

	// Timestamps (UTC, ISO 8601 format)
	startTime := m.report.StartTime.UTC().Format("2006-01-02T15:04:05.000Z")
	endTime := m.report.EndTime.UTC().Format("2006-01-02T15:04:05.000Z")
	invocation.StartTimeUtc = &startTime
	invocation.EndTimeUtc = &endTime

	if hostname, err := os.Hostname(); err == nil {
		invocation.Machine = &hostname
	}

	if m.cwd != "" {
		cwd := "file://" + filepath.ToSlash(m.cwd)
		invocation.WorkingDirectory = sarif.NewArtifactLocation().WithURI(cwd)
	}

	props := sarif.NewPropertyBag()
	props.Add("profile", string(m.report.Profile))
	props.Add("reportId", m.report.ID)
	invocation.WithProperties(props)

	run.AddInvocation(invocation)
}

// addProperties adds summary statistics to run properties.
func (m *sarifMapper) addProperties(run *sarif.Run) {
	props := sarif.NewPropertyBag()
	props.Add("summary", m.report.Summary)
	run.WithProperties(props)
}

// ruleDisplayName turns a kebab-case rule ID into a readable name.
func ruleDisplayName(id string) string {
	words := strings.Split(id, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func ptrBool(b bool) *bool {
	return &b
}
