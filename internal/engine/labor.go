package engine

import (
	"math"

	"github.com/piwi3910/KastCalc/internal/model"
)

const (
	designHoursPerCabinet    = 15.0 / 60
	minTransportHours        = 0.5
	transportHoursPerCabinet = 0.1
)

// safeDivide returns 0 instead of Inf or NaN for a non-positive divisor.
func safeDivide(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// Rollup turns job totals into labor hours. Side panels are not counted for
// design and transport. A nil params uses DefaultProductionParameters.
func Rollup(totals model.AggregateTotals, flat model.FlatTotals, cabinetCount, sideCount int, params *model.ProductionParameters) model.LaborHours {
	if params == nil {
		defaults := model.DefaultProductionParameters()
		params = &defaults
	}
	nonSide := cabinetCount - sideCount
	if nonSide < 0 {
		nonSide = 0
	}

	workshop := safeDivide(float64(flat.Plates.Total()), params.PlatesPerHour) +
		safeDivide(totals.EdgeBandingM, params.EdgeBandingPerHour) +
		totals.MontageHours
	if params.Mode() == model.ApplianceModeRollup {
		workshop += float64(totals.Appliances) * model.HoursPerAppliance
	}

	placement := model.DefaultPlacementHours
	if params.PlacementPerCab != nil {
		placement = *params.PlacementPerCab
	}

	transport := math.Max(minTransportHours, float64(nonSide)*transportHoursPerCabinet)
	if params.Transport != nil {
		transport = *params.Transport
	}

	return model.LaborHours{
		Design:    float64(nonSide) * designHoursPerCabinet,
		Workshop:  workshop,
		Placement: float64(cabinetCount) * placement,
		Transport: transport,
	}
}
