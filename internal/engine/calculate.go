package engine

import "github.com/piwi3910/KastCalc/internal/model"

// CabinetLine pairs a cabinet entry with its result, in job order.
type CabinetLine struct {
	Spec   model.CabinetSpec   `json:"spec"`
	Result model.CabinetResult `json:"result"`
}

// Calculation is the full outcome of one pass over a job.
type Calculation struct {
	Waste    model.WasteFactors    `json:"waste_factors"`
	Cabinets []CabinetLine         `json:"cabinets"`
	Totals   model.AggregateTotals `json:"totals"`
	Flat     model.FlatTotals      `json:"flat"`
	Labor    model.LaborHours      `json:"labor"`
}

// Calculate runs decomposition, aggregation, plate conversion and the labor
// rollup for a job. The job is not modified.
func Calculate(job model.Job, catalog model.Catalog, params *model.ProductionParameters) Calculation {
	waste := job.Settings.WasteFactors()

	lines := make([]CabinetLine, len(job.Cabinets))
	results := make([]model.CabinetResult, len(job.Cabinets))
	for i, spec := range job.Cabinets {
		results[i] = Decompose(spec, waste, params)
		lines[i] = CabinetLine{Spec: spec, Result: results[i]}
	}

	totals := Aggregate(results)
	flat := ToPlates(totals, catalog, job.Settings.Selections, job.Settings.Alt)
	cabinets, sides := job.Counts()

	return Calculation{
		Waste:    waste,
		Cabinets: lines,
		Totals:   totals,
		Flat:     flat,
		Labor:    Rollup(totals, flat, cabinets, sides, params),
	}
}
