package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/KastCalc/internal/model"
)

// ComparisonScenario defines a named set of job settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.JobSettings
}

// ComparisonResult holds the calculation and summary figures for a single
// scenario.
type ComparisonResult struct {
	Scenario    ComparisonScenario
	Calculation Calculation
	TotalPlates int
	LaborHours  float64
	Warnings    int
}

// CompareScenarios recalculates the job once per scenario and returns the
// results in scenario order. Only the settings differ between runs; the
// cabinet list, catalog and parameters are shared.
func CompareScenarios(scenarios []ComparisonScenario, job model.Job, catalog model.Catalog, params *model.ProductionParameters) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		variant := job
		variant.Settings = scenario.Settings
		calc := Calculate(variant, catalog, params)

		results = append(results, ComparisonResult{
			Scenario:    scenario,
			Calculation: calc,
			TotalPlates: calc.Flat.Plates.Total(),
			LaborHours:  calc.Labor.Total(),
			Warnings:    len(calc.Flat.Warnings),
		})
	}

	return results
}

// BuildDefaultScenarios generates a set of comparison scenarios based on
// the current settings, varying key parameters to show what-if alternatives.
func BuildDefaultScenarios(base model.JobSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	// Scenario: flip the alternative routing of backs and shelves
	toggled := base
	toggled.Alt.UseBack = !base.Alt.UseBack
	toggled.Alt.UseShelf = !base.Alt.UseShelf
	name := "Separate Backs/Shelves"
	if base.Alt.UseBack || base.Alt.UseShelf {
		name = "Backs/Shelves Routing Flipped"
	}
	scenarios = append(scenarios, ComparisonScenario{
		Name:     name,
		Settings: toggled,
	})

	// Scenario: 5 points better yield on both sides
	better := base
	better.InteriorEfficiency = math.Min(100, efficiencyOrDefault(base.InteriorEfficiency, model.DefaultInteriorEfficiency)+5)
	better.ExteriorEfficiency = math.Min(100, efficiencyOrDefault(base.ExteriorEfficiency, model.DefaultExteriorEfficiency)+5)
	if better.InteriorEfficiency != base.InteriorEfficiency || better.ExteriorEfficiency != base.ExteriorEfficiency {
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Efficiency %.0f%%/%.0f%%", better.InteriorEfficiency, better.ExteriorEfficiency),
			Settings: better,
		})
	}

	return scenarios
}

func efficiencyOrDefault(pct, def float64) float64 {
	if model.ValidateEfficiency(pct) != nil {
		return def
	}
	return pct
}
