package pricing

import (
	"fmt"

	"github.com/piwi3910/KastCalc/internal/model"
)

// LaborRates are hourly rates per labor bucket.
type LaborRates struct {
	Design    float64 `json:"design" yaml:"design"`
	Workshop  float64 `json:"workshop" yaml:"workshop"`
	Placement float64 `json:"placement" yaml:"placement"`
	Transport float64 `json:"transport" yaml:"transport"`
}

// HingeType selects which hinge the doors are fitted with.
type HingeType string

const (
	HingeType110 HingeType = "110"
	HingeType170 HingeType = "170"
)

// DrawerType selects the drawer runner price.
type DrawerType string

const (
	DrawerTypeStandard DrawerType = "standard"
	DrawerTypeBulk     DrawerType = "bulk" // volume price
)

// PriceList holds unit prices for everything a quote bills besides sheets.
// Sheet prices come from the material catalog.
type PriceList struct {
	EdgeBandingPerM float64    `json:"edge_banding_per_m" yaml:"edge_banding_per_m"`
	Leg             float64    `json:"leg" yaml:"leg"`
	HingeType       HingeType  `json:"hinge_type,omitempty" yaml:"hinge_type,omitempty"` // 110 when empty
	Hinge110        float64    `json:"hinge_110" yaml:"hinge_110"`
	Hinge170        float64    `json:"hinge_170" yaml:"hinge_170"`
	ProfilePerM     float64    `json:"profile_per_m" yaml:"profile_per_m"`
	Hanger          float64    `json:"hanger" yaml:"hanger"`
	DrawerType      DrawerType `json:"drawer_type,omitempty" yaml:"drawer_type,omitempty"` // standard when empty
	Drawer          float64    `json:"drawer" yaml:"drawer"`
	DrawerBulk      float64    `json:"drawer_bulk" yaml:"drawer_bulk"`
	Handle          float64    `json:"handle" yaml:"handle"`
	Labor           LaborRates `json:"labor" yaml:"labor"`
	VATPercent      float64    `json:"vat_percent" yaml:"vat_percent"`

	// Extras are the standard extra hardware lines. Qty is billed on every
	// quote unless the job sets its own quantity.
	Extras []model.ExtraItem `json:"extras" yaml:"extras"`
	// Library is the hardware library jobs can pick articles from.
	Library []model.ExtraItem `json:"library" yaml:"library"`
	// AppliancePrices is keyed by appliance type, then tier.
	AppliancePrices map[string]map[model.ApplianceTier]float64 `json:"appliance_prices" yaml:"appliance_prices"`
}

// DefaultPriceList returns the standard accessory prices and labor rates.
func DefaultPriceList() PriceList {
	return PriceList{
		EdgeBandingPerM: 1.5,
		Leg:             0.8,
		HingeType:       HingeType110,
		Hinge110:        3.05,
		Hinge170:        6.66,
		ProfilePerM:     3,
		Hanger:          2,
		DrawerType:      DrawerTypeStandard,
		Drawer:          100,
		DrawerBulk:      50,
		Handle:          10,
		Labor: LaborRates{
			Design:    65,
			Workshop:  55,
			Placement: 55,
			Transport: 45,
		},
		VATPercent:      21,
		Extras:          DefaultExtras(),
		Library:         DefaultLibrary(),
		AppliancePrices: DefaultAppliancePrices(),
	}
}

// DefaultExtras returns the standard extra hardware at quantity zero.
func DefaultExtras() []model.ExtraItem {
	return []model.ExtraItem{
		{Code: "led", Label: "LED strip", Category: "Lighting", Unit: "m", Price: 35},
		{Code: "towel_rail", Label: "Towel rail", Category: "Kitchen & bathroom", Unit: "pc", Price: 16.5},
		{Code: "alu_shelf_600", Label: "Aluminium base mat 600", Category: "Kitchen & bathroom", Unit: "pc", Price: 7},
		{Code: "alu_shelf_1200", Label: "Aluminium base mat 1200", Category: "Kitchen & bathroom", Unit: "pc", Price: 14},
		{Code: "waste_bin", Label: "Waste bin system", Category: "Kitchen & bathroom", Unit: "pc", Price: 170},
		{Code: "cutlery_tray", Label: "Cutlery tray", Category: "Kitchen & bathroom", Unit: "pc", Price: 14},
		{Code: "lock", Label: "Lock", Category: "Locks", Unit: "pc", Price: 10},
		{Code: "cylinder_lock", Label: "Cylinder lock", Category: "Locks", Unit: "pc", Price: 25},
	}
}

// HingeLine returns the label and unit price of the selected hinge.
func (p PriceList) HingeLine() (string, float64) {
	if p.HingeType == HingeType170 {
		return "Hinges 155-170°", p.Hinge170
	}
	return "Hinges 110°", p.Hinge110
}

// DrawerLine returns the label and unit price of the selected drawer runner.
func (p PriceList) DrawerLine() (string, float64) {
	if p.DrawerType == DrawerTypeBulk {
		return "Drawers (bulk)", p.DrawerBulk
	}
	return "Drawers", p.Drawer
}

// Validate rejects unknown selections and negative prices.
func (p PriceList) Validate() error {
	switch p.HingeType {
	case "", HingeType110, HingeType170:
	default:
		return fmt.Errorf("unknown hinge type %q", p.HingeType)
	}
	switch p.DrawerType {
	case "", DrawerTypeStandard, DrawerTypeBulk:
	default:
		return fmt.Errorf("unknown drawer type %q", p.DrawerType)
	}
	for _, v := range []float64{p.EdgeBandingPerM, p.Leg, p.Hinge110, p.Hinge170, p.ProfilePerM,
		p.Hanger, p.Drawer, p.DrawerBulk, p.Handle, p.VATPercent,
		p.Labor.Design, p.Labor.Workshop, p.Labor.Placement, p.Labor.Transport} {
		if v < 0 {
			return fmt.Errorf("prices must not be negative")
		}
	}
	for _, lists := range [][]model.ExtraItem{p.Extras, p.Library} {
		for _, it := range lists {
			if it.Code == "" {
				return fmt.Errorf("extra item %q has no code", it.Label)
			}
			if it.Price < 0 || it.Qty < 0 {
				return fmt.Errorf("extra item %s: negative price or quantity", it.Code)
			}
		}
	}
	for typ, tiers := range p.AppliancePrices {
		for tier, v := range tiers {
			if !tier.Valid() {
				return fmt.Errorf("appliance %s: unknown tier %q", typ, tier)
			}
			if v < 0 {
				return fmt.Errorf("appliance %s: negative price", typ)
			}
		}
	}
	return nil
}
