package engine

import (
	"testing"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScenarios(t *testing.T) {
	base := model.DefaultJobSettings()
	scenarios := BuildDefaultScenarios(base)

	require.Len(t, scenarios, 3)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, base, scenarios[0].Settings)

	assert.True(t, scenarios[1].Settings.Alt.UseBack)
	assert.True(t, scenarios[1].Settings.Alt.UseShelf)

	assert.Equal(t, 80.0, scenarios[2].Settings.InteriorEfficiency)
	assert.Equal(t, 75.0, scenarios[2].Settings.ExteriorEfficiency)
	assert.Equal(t, "Efficiency 80%/75%", scenarios[2].Name)
}

func TestBuildDefaultScenarios_AtFullEfficiency(t *testing.T) {
	base := model.DefaultJobSettings()
	base.InteriorEfficiency = 100
	base.ExteriorEfficiency = 100
	base.Alt.UseBack = true

	scenarios := BuildDefaultScenarios(base)

	require.Len(t, scenarios, 2, "no efficiency scenario above 100%")
	assert.False(t, scenarios[1].Settings.Alt.UseBack)
	assert.True(t, scenarios[1].Settings.Alt.UseShelf)
}

func TestCompareScenarios(t *testing.T) {
	job := testJob()
	scenarios := BuildDefaultScenarios(job.Settings)

	results := CompareScenarios(scenarios, job, model.DefaultCatalog(), defaultParams())

	require.Len(t, results, len(scenarios))
	for i, r := range results {
		assert.Equal(t, scenarios[i].Name, r.Scenario.Name)
		assert.Equal(t, r.Calculation.Flat.Plates.Total(), r.TotalPlates)
		assert.InDelta(t, r.Calculation.Labor.Total(), r.LaborHours, delta)
	}

	// A better yield never needs more sheets.
	assert.LessOrEqual(t, results[2].TotalPlates, results[0].TotalPlates)

	// The job itself is untouched.
	assert.Equal(t, model.DefaultJobSettings().InteriorEfficiency, job.Settings.InteriorEfficiency)
	assert.False(t, job.Settings.Alt.UseBack)
}
