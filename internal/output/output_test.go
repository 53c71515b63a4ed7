package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphol-dev/grapholint/internal/engine"
	"github.com/graphol-dev/grapholint/internal/profiles"
)

func sampleReport() *engine.Report {
	report := engine.NewReport(profiles.OWL2)
	report.StartTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	report.Add(5, sampleDiagnostics())
	report.Finalize()
	return report
}

func sampleDiagnostics() []engine.Diagnostic {
	return []engine.Diagnostic{
		{
			File:    "ontology.yaml",
			Diagram: "university",
			Element: "e3",
			Kind:    engine.KindEdge,
			Rule:    "inclusion-between-expressions",
			Message: "Type mismatch: inclusion between Concept and Role",
		},
		{
			File:    "ontology.yaml",
			Diagram: "university",
			Element: "n7",
			Kind:    engine.KindNode,
			Rule:    "cardinality-bounds",
			Message: "Min cardinality must be lower or equal than max cardinality",
		},
	}
}

func TestFactoryCreatesAllFormats(t *testing.T) {
	var buf bytes.Buffer
	for _, format := range SupportedFormats() {
		f, err := New(format, &buf, Options{})
		require.NoError(t, err, format)
		assert.NotNil(t, f, format)
	}
}

func TestFactoryRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := New("xml", &buf, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
	assert.Contains(t, err.Error(), "table")
}

func TestTableFormat(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.EnableColor = false

	require.NoError(t, f.Format(sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "Profile: OWL 2")
	assert.Contains(t, out, "Violations:")
	assert.Contains(t, out, "e3 (edge)")
	assert.Contains(t, out, "n7 (node)")
	assert.Contains(t, out, "Rule: inclusion-between-expressions")
	assert.Contains(t, out, "Checks:     5 total")
	assert.Contains(t, out, "Passed:   3")
	assert.Contains(t, out, "Failed:   2")
	assert.NotContains(t, out, "\033[", "colors disabled")
}

func TestTableFormatCleanReport(t *testing.T) {
	report := engine.NewReport(profiles.OWL2QL)
	report.Add(3, nil)
	report.Finalize()

	var buf bytes.Buffer
	f := NewTableFormatter(&buf)
	f.EnableColor = false
	require.NoError(t, f.Format(report))

	assert.Contains(t, buf.String(), "No violations found.")
	assert.NotContains(t, buf.String(), "Violations:")
}

func TestTableFormatColors(t *testing.T) {
	var buf bytes.Buffer
	f := NewTableFormatter(&buf)

	require.NoError(t, f.Format(sampleReport()))
	assert.Contains(t, buf.String(), colorRed)
	assert.Contains(t, buf.String(), colorReset)
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).Format(sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "OWL 2", decoded["profile"])
	diagnostics, ok := decoded["diagnostics"].([]any)
	require.True(t, ok)
	require.Len(t, diagnostics, 2)

	first, ok := diagnostics[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "e3", first["element"])
	assert.Equal(t, "edge", first["kind"])
}

func TestJSONFormatCompact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).Format(sampleReport()))

	// Compact output is a single line plus trailing newline.
	trimmed := bytes.TrimRight(buf.Bytes(), "\n")
	assert.Zero(t, bytes.Count(trimmed, []byte("\n")))
	assert.True(t, bytes.HasPrefix(trimmed, []byte(`{"id":`)))
}

func TestYAMLFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "profile: OWL 2")
	assert.Contains(t, out, "rule: inclusion-between-expressions")
	assert.Contains(t, out, "element: e3")
}

func TestSARIFFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSARIFFormatter(&buf).Format(sampleReport()))

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Kind    string `json:"kind"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
			} `json:"results"`
			Artifacts []struct {
				Location struct {
					URI string `json:"uri"`
				} `json:"location"`
			} `json:"artifacts"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)

	run := doc.Runs[0]
	assert.Equal(t, "grapholint", run.Tool.Driver.Name)

	// Rules are deduplicated and sorted by ID.
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, "cardinality-bounds", run.Tool.Driver.Rules[0].ID)
	assert.Equal(t, "inclusion-between-expressions", run.Tool.Driver.Rules[1].ID)

	require.Len(t, run.Results, 2)
	for _, result := range run.Results {
		assert.Equal(t, "error", result.Level)
		assert.Equal(t, "fail", result.Kind)
		assert.NotEmpty(t, result.Message.Text)
	}

	require.Len(t, run.Artifacts, 1)
	assert.Contains(t, run.Artifacts[0].Location.URI, "ontology.yaml")
}

func TestRuleDisplayName(t *testing.T) {
	assert.Equal(t, "Inclusion Between Expressions", ruleDisplayName("inclusion-between-expressions"))
	assert.Equal(t, "Ql Forbidden Nodes", ruleDisplayName("ql-forbidden-nodes"))
}
