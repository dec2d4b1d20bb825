package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fabrik/fixtures/blog"
	"github.com/roach88/fabrik/seed"
)

const commentPlan = `
name: one_comment
steps:
  - entity: comment
`

func TestSeed_WritesHierarchyToDatabase(t *testing.T) {
	planPath := writePlanFile(t, commentPlan)
	dbPath := filepath.Join(t.TempDir(), "blog.db")

	stdout, _, err := execute(t, "seed", "--db", dbPath, planPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, `seeded plan "one_comment": 1 entities`)

	store, err := blog.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	authors, posts, comments, err := store.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, authors, "the comment's post's author is written")
	assert.Equal(t, 1, posts)
	assert.Equal(t, 1, comments)
}

func TestSeed_JSONReport(t *testing.T) {
	planPath := writePlanFile(t, commentPlan)
	dbPath := filepath.Join(t.TempDir(), "blog.db")

	stdout, _, err := execute(t, "--format", "json", "seed", "--db", dbPath, planPath)
	require.NoError(t, err)

	var report seed.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "one_comment", report.Plan)
	assert.Equal(t, 1, report.Created)
	assert.NotEmpty(t, report.RunToken)
}

func TestSeed_UnknownEntityFails(t *testing.T) {
	planPath := writePlanFile(t, `
name: bad
steps:
  - entity: spaceship
`)
	dbPath := filepath.Join(t.TempDir(), "blog.db")

	_, _, err := execute(t, "seed", "--db", dbPath, planPath)
	require.Error(t, err)

	var unknown *seed.UnknownEntityError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "spaceship", unknown.Entity)
}

func TestSeed_InvalidPlanFailsBeforeOpeningStore(t *testing.T) {
	planPath := writePlanFile(t, "steps: []\n")

	_, _, err := execute(t, "seed", "--db", filepath.Join(t.TempDir(), "blog.db"), planPath)
	require.Error(t, err)

	var perr *seed.PlanError
	assert.ErrorAs(t, err, &perr)
}
