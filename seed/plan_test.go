package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan_Valid(t *testing.T) {
	plan, err := ParsePlan([]byte(`
name: demo
description: "a plan"
steps:
  - entity: author
    count: 2
  - entity: comment
    overrides:
      username: reviewer
`))
	require.NoError(t, err)

	assert.Equal(t, "demo", plan.Name)
	assert.Equal(t, "a plan", plan.Description)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, Step{Entity: "author", Count: 2}, plan.Steps[0])
	assert.Equal(t, "comment", plan.Steps[1].Entity)
	assert.Equal(t, map[string]any{"username": "reviewer"}, plan.Steps[1].Overrides)
}

func TestParsePlan_CountDefaultsToOne(t *testing.T) {
	plan, err := ParsePlan([]byte(`
name: demo
steps:
  - entity: author
`))
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Steps[0].Count)
}

func TestParsePlan_NormalizesEntityNames(t *testing.T) {
	// "café" written with a combining acute accent (decomposed form).
	plan, err := ParsePlan([]byte("name: demo\nsteps:\n  - entity: \"cafe\\u0301\"\n"))
	require.NoError(t, err)

	// NFC composes it into a single code point.
	assert.Equal(t, "café", plan.Steps[0].Entity)
}

func TestParsePlan_RejectsMissingName(t *testing.T) {
	_, err := ParsePlan([]byte(`
steps:
  - entity: author
`))
	require.Error(t, err)

	var perr *PlanError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "invalid plan")
}

func TestParsePlan_RejectsEmptySteps(t *testing.T) {
	_, err := ParsePlan([]byte("name: demo\nsteps: []\n"))
	require.Error(t, err)
}

func TestParsePlan_RejectsZeroCount(t *testing.T) {
	_, err := ParsePlan([]byte(`
name: demo
steps:
  - entity: author
    count: 0
`))
	require.Error(t, err)
}

func TestParsePlan_RejectsEmptyDocument(t *testing.T) {
	_, err := ParsePlan([]byte(""))
	require.Error(t, err)
}

func TestParsePlan_RejectsMalformedYAML(t *testing.T) {
	_, err := ParsePlan([]byte("name: [unclosed"))
	require.Error(t, err)
}

func TestLoadPlan_AttachesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps: []\n"), 0o644))

	_, err := LoadPlan(path)
	require.Error(t, err)

	var perr *PlanError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
	assert.Contains(t, err.Error(), path)
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
