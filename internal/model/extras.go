package model

import "fmt"

// ExtraItem is hardware billed on top of what the cabinets need, such as
// LED strips, waste bins, locks or a hardware library article.
type ExtraItem struct {
	Code      string  `json:"code" yaml:"code"`
	Label     string  `json:"label,omitempty" yaml:"label,omitempty"`
	Category  string  `json:"category,omitempty" yaml:"category,omitempty"`
	ArticleNo string  `json:"article_no,omitempty" yaml:"article_no,omitempty"`
	Unit      string  `json:"unit,omitempty" yaml:"unit,omitempty"` // "m" or "pc"
	Price     float64 `json:"price,omitempty" yaml:"price,omitempty"`
	Qty       float64 `json:"qty,omitempty" yaml:"qty,omitempty"`
}

// ApplianceTier is the price class of a kitchen appliance.
type ApplianceTier string

const (
	ApplianceBudget  ApplianceTier = "budget"
	ApplianceMedium  ApplianceTier = "medium"
	AppliancePremium ApplianceTier = "premium"
)

// ApplianceTiers lists the tiers from cheapest to most expensive.
var ApplianceTiers = []ApplianceTier{ApplianceBudget, ApplianceMedium, AppliancePremium}

// Valid reports whether t is a known tier. The empty tier means medium.
func (t ApplianceTier) Valid() bool {
	switch t {
	case "", ApplianceBudget, ApplianceMedium, AppliancePremium:
		return true
	}
	return false
}

// ApplianceSelection is one kitchen appliance supplied with the job.
type ApplianceSelection struct {
	Type  string        `json:"type"`
	Model string        `json:"model,omitempty"`
	Tier  ApplianceTier `json:"tier,omitempty"` // medium when empty
	Qty   int           `json:"qty,omitempty"`  // 1 when 0
}

// Resolved fills in the default tier and quantity.
func (a ApplianceSelection) Resolved() ApplianceSelection {
	if a.Tier == "" {
		a.Tier = ApplianceMedium
	}
	if a.Qty == 0 {
		a.Qty = 1
	}
	return a
}

func validateExtras(extras []ExtraItem, appliances []ApplianceSelection) error {
	for i, it := range extras {
		if it.Qty < 0 || it.Price < 0 {
			return fmt.Errorf("extra %d (%s): negative quantity or price", i+1, it.Code)
		}
	}
	for i, a := range appliances {
		if a.Type == "" {
			return fmt.Errorf("appliance %d: missing type", i+1)
		}
		if !a.Tier.Valid() {
			return fmt.Errorf("appliance %d (%s): unknown tier %q", i+1, a.Type, a.Tier)
		}
		if a.Qty < 0 {
			return fmt.Errorf("appliance %d (%s): negative quantity", i+1, a.Type)
		}
	}
	return nil
}
