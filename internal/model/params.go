package model

import "errors"

// DefaultMontageHours is the per-cabinet assembly time used when no
// production parameters are supplied at all.
const DefaultMontageHours = 1.5

// DefaultPlacementHours is the on-site placement time per cabinet.
const DefaultPlacementHours = 0.5

// SidePanelMontageHours is the fixed assembly time of a loose side panel.
const SidePanelMontageHours = 0.17

// HoursPerAppliance is the labor added for every built-in appliance.
const HoursPerAppliance = 1.0

// DefaultInteriorEfficiency and DefaultExteriorEfficiency are the material
// yield percentages used when a job does not set a valid value.
const (
	DefaultInteriorEfficiency = 75.0
	DefaultExteriorEfficiency = 70.0
)

// ErrInvalidEfficiency is returned when an efficiency is outside (0,100].
var ErrInvalidEfficiency = errors.New("efficiency must be greater than 0 and at most 100 percent")

// ApplianceMode selects where appliance labor is counted.
type ApplianceMode string

const (
	// ApplianceModeRollup adds HoursPerAppliance per appliance to the
	// workshop bucket during the labor rollup.
	ApplianceModeRollup ApplianceMode = "rollup"
	// ApplianceModeMontage adds it to the montage hours of the cabinet
	// holding the appliances.
	ApplianceModeMontage ApplianceMode = "montage"
)

// DefaultComplexityHours is the fixed hour table for freeform cabinets.
var DefaultComplexityHours = map[ComplexityTier]float64{
	ComplexityVeryEasy: 1,
	ComplexityEasy:     2,
	ComplexityMedium:   3,
	ComplexityHard:     4,
	ComplexityVeryHard: 6,
}

// ProductionParameters are the workshop rates behind the labor formulas.
// The keys match the admin settings documents saved by earlier versions.
type ProductionParameters struct {
	EdgeBandingPerHour float64                    `json:"afplakkenPerUur" yaml:"afplakkenPerUur"` // m per hour
	PlatesPerHour      float64                    `json:"platenPerUur" yaml:"platenPerUur"`
	BaseMontageHours   float64                    `json:"baseMontageUren" yaml:"baseMontageUren"`
	TypeMultipliers    map[Kind]float64           `json:"typeMultipliers" yaml:"typeMultipliers"`
	ComplexityHours    map[ComplexityTier]float64 `json:"vrijeKastComplexiteit" yaml:"vrijeKastComplexiteit"`
	PlacementPerCab    *float64                   `json:"plaatsingPerKast,omitempty" yaml:"plaatsingPerKast,omitempty"` // nil = 0.5 h
	Transport          *float64                   `json:"transport,omitempty" yaml:"transport,omitempty"`               // nil = derived from cabinet count
	ApplianceMode      ApplianceMode              `json:"applianceMode,omitempty" yaml:"applianceMode,omitempty"`
}

// DefaultProductionParameters returns the one set of defaults every labor
// formula falls back to.
func DefaultProductionParameters() ProductionParameters {
	placement := DefaultPlacementHours
	complexity := make(map[ComplexityTier]float64, len(DefaultComplexityHours))
	for k, v := range DefaultComplexityHours {
		complexity[k] = v
	}
	return ProductionParameters{
		EdgeBandingPerHour: 35,
		PlatesPerHour:      3,
		BaseMontageHours:   DefaultMontageHours,
		TypeMultipliers: map[Kind]float64{
			KindBase:     1.0,
			KindUpper:    0.9,
			KindTall:     1.35,
			KindDrawer:   1.35,
			KindFreeform: 1.0,
		},
		ComplexityHours: complexity,
		PlacementPerCab: &placement,
		ApplianceMode:   ApplianceModeRollup,
	}
}

// Mode returns the appliance mode, defaulting to the rollup stage.
func (p *ProductionParameters) Mode() ApplianceMode {
	if p == nil || p.ApplianceMode != ApplianceModeMontage {
		return ApplianceModeRollup
	}
	return ApplianceModeMontage
}

// WasteFactors inflate net areas to account for material yield loss.
type WasteFactors struct {
	Interior float64 `json:"interior"`
	Exterior float64 `json:"exterior"`
}

// WasteFactor converts an efficiency percentage into a waste factor.
// Percentages outside (0,100] use the fallback percentage instead.
func WasteFactor(efficiencyPercent, fallbackPercent float64) float64 {
	if efficiencyPercent <= 0 || efficiencyPercent > 100 {
		efficiencyPercent = fallbackPercent
	}
	return 100 / efficiencyPercent
}

// NewWasteFactors builds the interior and exterior factors from efficiencies.
func NewWasteFactors(interiorPercent, exteriorPercent float64) WasteFactors {
	return WasteFactors{
		Interior: WasteFactor(interiorPercent, DefaultInteriorEfficiency),
		Exterior: WasteFactor(exteriorPercent, DefaultExteriorEfficiency),
	}
}

// DefaultWasteFactors returns the factors for the default efficiencies.
func DefaultWasteFactors() WasteFactors {
	return NewWasteFactors(DefaultInteriorEfficiency, DefaultExteriorEfficiency)
}

// ValidateEfficiency returns ErrInvalidEfficiency when pct is outside (0,100].
func ValidateEfficiency(pct float64) error {
	if pct <= 0 || pct > 100 {
		return ErrInvalidEfficiency
	}
	return nil
}
