package importer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combinecli/internal/shared/testutil"
	"combinecli/pkg/contracts/domain"
)

func TestRun(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	dir := t.TempDir()
	inputPath := testutil.WriteCombineCSV(t, dir)
	outputPath := filepath.Join(dir, "out", "athletes_data.json")

	result, err := New(logger).Run(context.Background(), inputPath, outputPath)
	require.NoError(t, err)
	require.NotNil(t, result)

	dataset := result.Dataset
	require.NotNil(t, dataset)

	// The fixture has four rows; the one with no measurements is dropped.
	require.Len(t, dataset.Athletes, 3)
	assert.Equal(t, 3, dataset.TotalRecords)
	assert.Equal(t, domain.DataSourceLabel, dataset.DataSource)

	// IDs are dense and 1-based over the accepted subset.
	for i, a := range dataset.Athletes {
		assert.Equal(t, i+1, a.ID)
	}

	first := dataset.Athletes[0]
	assert.Equal(t, "Jo", first.FirstName)
	require.NotNil(t, first.Height)
	assert.Equal(t, 73.0, *first.Height)
	require.NotNil(t, first.Dash40)
	assert.Equal(t, 4.5, *first.Dash40)

	summary := dataset.Summary
	assert.Equal(t, 3, summary.TotalAthletes)
	assert.Equal(t, 2, summary.With40Time)
	assert.Equal(t, 2, summary.WithVertical)
	assert.Equal(t, 2, summary.WithBroadJump)
	assert.Equal(t, map[string]int{"WR": 2, "QB": 1}, summary.Positions)
	assert.Equal(t, map[string]int{"TX": 2, "CA": 1}, summary.States)
	assert.Equal(t, map[string]int{"2024": 2, "2025": 1}, summary.GradYears)

	dash := dataset.MetricStatistics["dash40"]
	require.Equal(t, 2, dash.Count)
	require.NotNil(t, dash.Mean)
	assert.Equal(t, 4.6, *dash.Mean)
	require.NotNil(t, dash.Std)
	assert.Equal(t, 0.14, *dash.Std)

	// A metric with a single observation keeps its count but no stats.
	agility := dataset.MetricStatistics["proAgility"]
	assert.Equal(t, 1, agility.Count)
	assert.Nil(t, agility.Mean)

	require.NotEmpty(t, result.TopPositions)
	assert.Equal(t, "WR", result.TopPositions[0].Position)
	assert.Equal(t, 2, result.TopPositions[0].Count)

	// The artifact on disk matches the in-memory dataset.
	raw, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	var written domain.Dataset
	require.NoError(t, json.Unmarshal(raw, &written))
	assert.Equal(t, dataset.TotalRecords, written.TotalRecords)
	assert.Equal(t, dataset.Summary, written.Summary)
}

func TestRunMissingInput(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	dir := t.TempDir()

	_, err := New(logger).Run(context.Background(),
		filepath.Join(dir, "missing.csv"),
		filepath.Join(dir, "out.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

func TestRunEmptyDataset(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	dir := t.TempDir()
	inputPath := testutil.WriteCombineCSVContent(t, dir, testutil.CombineCSVHeader+"\n")
	outputPath := filepath.Join(dir, "out.json")

	result, err := New(logger).Run(context.Background(), inputPath, outputPath)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Dataset.TotalRecords)
	assert.Empty(t, result.Dataset.Athletes)
	assert.Empty(t, result.TopPositions)

	for _, name := range domain.MetricNames {
		assert.Equal(t, 0, result.Dataset.MetricStatistics[name].Count, "metric %s", name)
	}
}
