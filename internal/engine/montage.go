package engine

import "github.com/piwi3910/KastCalc/internal/model"

// MontageHours returns the workshop assembly hours of one cabinet.
//
// Side panels take a fixed time. Freeform cabinets use the hours of their
// complexity tier, medium when unset. Standard cabinets use the base hours
// times the multiplier of their kind, or DefaultMontageHours when params is
// nil. In ApplianceModeMontage the appliance hours are added here instead
// of in the rollup.
func MontageHours(cab model.Cabinet, params *model.ProductionParameters) float64 {
	switch c := cab.(type) {
	case model.SidePanel:
		return model.SidePanelMontageHours
	case model.FreeformCabinet:
		return complexityHours(c.Complexity, params)
	case model.StandardCabinet:
		hours := standardMontageHours(c.Kind, params)
		if params.Mode() == model.ApplianceModeMontage {
			hours += float64(c.Appliances) * model.HoursPerAppliance
		}
		return hours
	}
	return 0
}

func complexityHours(tier model.ComplexityTier, params *model.ProductionParameters) float64 {
	if tier == "" {
		tier = model.ComplexityMedium
	}
	if params != nil {
		if h, ok := params.ComplexityHours[tier]; ok && h > 0 {
			return h
		}
	}
	if h, ok := model.DefaultComplexityHours[tier]; ok {
		return h
	}
	return model.DefaultComplexityHours[model.ComplexityMedium]
}

func standardMontageHours(kind model.Kind, params *model.ProductionParameters) float64 {
	if params == nil {
		return model.DefaultMontageHours
	}
	base := params.BaseMontageHours
	if base <= 0 {
		base = model.DefaultMontageHours
	}
	mult := params.TypeMultipliers[kind]
	if mult <= 0 {
		mult = 1.0
	}
	return base * mult
}
