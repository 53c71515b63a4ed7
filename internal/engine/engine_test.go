package engine

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphol-dev/grapholint/internal/diagram"
	"github.com/graphol-dev/grapholint/internal/profiles"
)

const cleanDocument = `
graphol: "1.0.0"
diagrams:
  - name: clean
    nodes:
      - id: person
        type: concept
      - id: student
        type: concept
    edges:
      - id: e1
        type: inclusion
        source: student
        target: person
`

const brokenDocument = `
graphol: "1.0.0"
diagrams:
  - name: broken
    nodes:
      - id: person
        type: concept
      - id: hasParent
        type: role
    edges:
      - id: e1
        type: inclusion
        source: person
        target: hasParent
      - id: e2
        type: membership
        source: person
        target: hasParent
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func buildDiagram(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := diagram.New("test")
	person := diagram.NewNode("person", diagram.NodeConcept)
	role := diagram.NewNode("hasParent", diagram.NodeRole)
	require.NoError(t, d.AddNode(person))
	require.NoError(t, d.AddNode(role))
	_, err := d.AddEdge("e1", diagram.EdgeInclusion, person, role)
	require.NoError(t, err)
	return d
}

func TestCheckDiagram(t *testing.T) {
	c := New(DefaultOptions(profiles.OWL2))
	profile, err := profiles.New(profiles.OWL2)
	require.NoError(t, err)

	checked, diagnostics := c.CheckDiagram(profile, buildDiagram(t), "mem.yaml")
	assert.Equal(t, 3, checked, "one edge plus two nodes")
	require.Len(t, diagnostics, 1)
	assert.Equal(t, "mem.yaml", diagnostics[0].File)
	assert.Equal(t, "e1", diagnostics[0].Element)
	assert.Equal(t, KindEdge, diagnostics[0].Kind)
	assert.Equal(t, "inclusion-between-expressions", diagnostics[0].Rule)
	assert.NotEmpty(t, diagnostics[0].Message)
}

func TestCheckFiles(t *testing.T) {
	clean := writeDoc(t, "clean.yaml", cleanDocument)
	broken := writeDoc(t, "broken.yaml", brokenDocument)

	c := New(DefaultOptions(profiles.OWL2))
	report, err := c.CheckFiles(context.Background(), []string{clean, broken})
	require.NoError(t, err)

	assert.Equal(t, profiles.OWL2, report.Profile)
	assert.NotEmpty(t, report.ID)
	// clean: 1 edge + 2 nodes; broken: 2 edges + 2 nodes.
	assert.Equal(t, 7, report.Summary.Checked)
	assert.Equal(t, 2, report.Summary.Failed)
	assert.Equal(t, 5, report.Summary.Passed)
	assert.True(t, report.HasFailures())

	require.Len(t, report.Diagnostics, 2)
	for _, d := range report.Diagnostics {
		assert.Equal(t, broken, d.File)
		assert.Equal(t, "broken", d.Diagram)
	}
}

func TestCheckFilesCleanReport(t *testing.T) {
	clean := writeDoc(t, "clean.yaml", cleanDocument)

	c := New(DefaultOptions(profiles.OWL2))
	report, err := c.CheckFiles(context.Background(), []string{clean})
	require.NoError(t, err)
	assert.False(t, report.HasFailures())
	assert.Equal(t, report.Summary.Checked, report.Summary.Passed)
	assert.False(t, report.EndTime.IsZero())
}

func TestCheckFilesLoadError(t *testing.T) {
	c := New(DefaultOptions(profiles.OWL2))
	_, err := c.CheckFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestCheckFilesProfileSelection(t *testing.T) {
	doc := writeDoc(t, "doc.yaml", `
graphol: "1.0.0"
diagrams:
  - name: d
    nodes:
      - id: hasAge
        type: attribute
        iri: http://example.org/hasAge
        functional: true
`)

	base := New(DefaultOptions(profiles.OWL2))
	report, err := base.CheckFiles(context.Background(), []string{doc})
	require.NoError(t, err)
	assert.False(t, report.HasFailures())

	ql := New(DefaultOptions(profiles.OWL2QL))
	report, err = ql.CheckFiles(context.Background(), []string{doc})
	require.NoError(t, err)
	require.True(t, report.HasFailures())
	assert.Equal(t, "ql-property-characteristics", report.Diagnostics[0].Rule)
}

func TestFailFast(t *testing.T) {
	broken := writeDoc(t, "broken.yaml", brokenDocument)

	opts := DefaultOptions(profiles.OWL2)
	opts.FailFast = true
	report, err := New(opts).CheckFiles(context.Background(), []string{broken})
	require.NoError(t, err)
	assert.True(t, report.HasFailures())
}

func TestCompileFilter(t *testing.T) {
	program, err := CompileFilter(`rule == "self-connection"`)
	require.NoError(t, err)
	assert.NotNil(t, program)

	_, err = CompileFilter(`rule +`)
	assert.Error(t, err)

	_, err = CompileFilter(`1 + 2`)
	assert.Error(t, err, "filter must be boolean")
}

func TestFilterKeepsMatchingDiagnostics(t *testing.T) {
	program, err := CompileFilter(`kind == "edge" && rule == "membership-assertion"`)
	require.NoError(t, err)

	opts := DefaultOptions(profiles.OWL2)
	opts.Filter = program
	c := New(opts)

	broken := writeDoc(t, "broken.yaml", brokenDocument)
	report, err := c.CheckFiles(context.Background(), []string{broken})
	require.NoError(t, err)

	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "e2", report.Diagnostics[0].Element)
	assert.Equal(t, "membership-assertion", report.Diagnostics[0].Rule)
	// The summary reflects the kept diagnostics only.
	assert.Equal(t, 1, report.Summary.Failed)
}

func TestFilterOnFileField(t *testing.T) {
	broken := writeDoc(t, "broken.yaml", brokenDocument)
	other := writeDoc(t, "other.yaml", brokenDocument)

	program, err := CompileFilter(`file == "` + broken + `"`)
	require.NoError(t, err)

	opts := DefaultOptions(profiles.OWL2)
	opts.Filter = program
	report, err := New(opts).CheckFiles(context.Background(), []string{broken, other})
	require.NoError(t, err)

	// The file path is visible to the filter, so only the matching
	// document's diagnostics survive.
	require.Len(t, report.Diagnostics, 2)
	for _, d := range report.Diagnostics {
		assert.Equal(t, broken, d.File)
	}
}

func TestFinalizeOrdersDiagnostics(t *testing.T) {
	report := NewReport(profiles.OWL2)
	report.Add(4, []Diagnostic{
		{File: "b.yaml", Diagram: "d", Element: "e2", Kind: KindEdge},
		{File: "a.yaml", Diagram: "d", Element: "n1", Kind: KindNode},
		{File: "a.yaml", Diagram: "d", Element: "e1", Kind: KindEdge},
	})
	report.Finalize()

	got := make([]string, 0, len(report.Diagnostics))
	for _, d := range report.Diagnostics {
		got = append(got, d.File+"/"+d.Element)
	}
	assert.Equal(t, []string{"a.yaml/e1", "a.yaml/n1", "b.yaml/e2"}, got)
	assert.True(t, sort.SliceIsSorted(report.Diagnostics, func(i, j int) bool {
		return report.Diagnostics[i].File < report.Diagnostics[j].File
	}))
	assert.Equal(t, 4, report.Summary.Checked)
	assert.Equal(t, 3, report.Summary.Failed)
	assert.Equal(t, 1, report.Summary.Passed)
}

func TestReportMarshalsDurationInMilliseconds(t *testing.T) {
	report := NewReport(profiles.OWL2)
	report.StartTime = time.Now().Add(-1500 * time.Millisecond)
	report.Finalize()

	assert.Equal(t, report.Duration.Milliseconds(), report.DurationMS)
	assert.GreaterOrEqual(t, report.DurationMS, int64(1500))
	assert.Less(t, report.DurationMS, int64(60000))

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded struct {
		DurationMS int64 `json:"duration_ms"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.DurationMS, decoded.DurationMS)
}
