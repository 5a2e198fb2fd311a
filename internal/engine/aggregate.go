package engine

import "github.com/piwi3910/KastCalc/internal/model"

// Aggregate sums cabinet results into job totals. Freeform areas are also
// summed per material key, so ids and legacy indexes never collide with
// the category totals.
func Aggregate(results []model.CabinetResult) model.AggregateTotals {
	totals := model.NewAggregateTotals()
	for _, r := range results {
		for _, p := range r.Parts {
			totals.AreaByCategory[p.Category] += p.AreaM2
			if p.Category == model.CategoryFreeform {
				totals.AreaByFreeformMaterial[p.MaterialKey] += p.AreaM2
			}
		}
		totals.EdgeBandingM += r.EdgeBandingM
		totals.Legs += r.Legs
		totals.Hinges += r.Hinges
		totals.Handles += r.Handles
		totals.DrawerHardware += r.DrawerHardware
		totals.ProfileM += r.ProfileM
		totals.Hangers += r.Hangers
		totals.Appliances += r.Appliances
		totals.MontageHours += r.MontageHours
	}
	return totals
}
