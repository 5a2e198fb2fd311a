package pricing

import (
	"fmt"
	"strings"

	"github.com/piwi3910/KastCalc/internal/model"
)

// LibraryCategories lists the hardware library categories in display order.
var LibraryCategories = []string{
	"Hinges",
	"Drawer systems",
	"Locks",
	"Connectors & profiles",
	"Sliding door fittings",
	"Construction hardware",
	"Lighting",
	"Shelf & worktop brackets",
	"Office fittings",
	"Kitchen & bathroom",
	"Multimedia & specials",
	"Legs",
	"Castors",
	"Wardrobe",
}

func libraryItem(category, articleNo, label string, price float64) model.ExtraItem {
	return model.ExtraItem{
		Code:      "lib." + strings.ToLower(articleNo),
		Label:     label,
		Category:  category,
		ArticleNo: articleNo,
		Unit:      "pc",
		Price:     price,
	}
}

// DefaultLibrary returns the built-in hardware library.
func DefaultLibrary() []model.ExtraItem {
	return []model.ExtraItem{
		libraryItem("Hinges", "71B3550", "Clip top hinge 110° with damper", 4.2),
		libraryItem("Hinges", "79B3550", "Clip top hinge 155°", 11.8),
		libraryItem("Hinges", "173L6100", "Mounting plate 0 mm", 1.1),
		libraryItem("Drawer systems", "TB-M500", "Drawer runner set 500 mm", 62),
		libraryItem("Drawer systems", "TB-D500", "Deep drawer set 500 mm", 89),
		libraryItem("Locks", "SL-2020", "Cam lock 20 mm", 6.5),
		libraryItem("Connectors & profiles", "MX-15", "Minifix connector 15 mm", 0.45),
		libraryItem("Connectors & profiles", "GP-2500", "Handle profile 2500 mm", 18),
		libraryItem("Sliding door fittings", "SD-40", "Sliding door set 40 kg", 74),
		libraryItem("Construction hardware", "BH-100", "Wall mounting bracket", 3.2),
		libraryItem("Lighting", "LED-DRV30", "LED driver 30 W", 24),
		libraryItem("Lighting", "LED-SW1", "Door contact switch", 9.5),
		libraryItem("Shelf & worktop brackets", "TD-300", "Concealed shelf bracket 300 mm", 21),
		libraryItem("Office fittings", "KG-80", "Cable grommet 80 mm", 4.8),
		libraryItem("Kitchen & bathroom", "PO-300", "Pull-out basket 300 mm", 95),
		libraryItem("Kitchen & bathroom", "CR-900", "Corner carousel", 145),
		libraryItem("Multimedia & specials", "TV-LIFT", "TV lift", 890),
		libraryItem("Legs", "PT-150", "Adjustable leg 150 mm", 1.6),
		libraryItem("Castors", "WL-50", "Castor 50 mm with brake", 5.5),
		libraryItem("Wardrobe", "GR-1000", "Wardrobe rail 1000 mm", 8),
		libraryItem("Wardrobe", "PL-600", "Pull-down rail 600 mm", 120),
	}
}

// FindLibraryItem looks up a library article by code or article number.
func (p PriceList) FindLibraryItem(code string) (model.ExtraItem, bool) {
	for _, it := range p.Library {
		if strings.EqualFold(it.Code, code) || (it.ArticleNo != "" && strings.EqualFold(it.ArticleNo, code)) {
			return it, true
		}
	}
	return model.ExtraItem{}, false
}

// SearchLibrary returns the library articles whose label or article number
// contains query, limited to category when it is not empty.
func (p PriceList) SearchLibrary(query, category string) []model.ExtraItem {
	query = strings.ToLower(strings.TrimSpace(query))
	out := []model.ExtraItem{}
	for _, it := range p.Library {
		if category != "" && !strings.EqualFold(it.Category, category) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(it.Label), query) &&
			!strings.Contains(strings.ToLower(it.ArticleNo), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// ResolveExtras merges the job's extra items into the standard extras. A job
// item with a standard code sets its quantity and, when given, its label and
// price. Other codes are looked up in the library, and unknown codes are
// billed as entered. Repeated job codes add up.
func (p PriceList) ResolveExtras(job []model.ExtraItem) []model.ExtraItem {
	out := make([]model.ExtraItem, len(p.Extras))
	copy(out, p.Extras)
	index := make(map[string]int, len(out)+len(job))
	for i, it := range out {
		index[it.Code] = i
	}
	fromJob := make(map[string]bool, len(job))

	for n, it := range job {
		if it.Code == "" {
			it.Code = fmt.Sprintf("custom%d", n+1)
		}
		if _, ok := index[it.Code]; !ok {
			if lib, found := p.FindLibraryItem(it.Code); found {
				it.Code = lib.Code
				if _, seen := index[lib.Code]; !seen {
					index[lib.Code] = len(out)
					out = append(out, lib)
				}
			}
		}
		i, ok := index[it.Code]
		switch {
		case !ok:
			if it.Label == "" {
				it.Label = it.Code
			}
			index[it.Code] = len(out)
			out = append(out, it)
		case fromJob[it.Code]:
			out[i].Qty += it.Qty
		default:
			out[i] = mergeExtra(out[i], it)
		}
		fromJob[it.Code] = true
	}
	return out
}

func mergeExtra(base, job model.ExtraItem) model.ExtraItem {
	base.Qty = job.Qty
	if job.Label != "" {
		base.Label = job.Label
	}
	if job.Unit != "" {
		base.Unit = job.Unit
	}
	if job.Price > 0 {
		base.Price = job.Price
	}
	return base
}

// ApplianceType is a kind of kitchen appliance with a price per tier.
type ApplianceType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ApplianceTypes lists the appliance types the default prices cover.
var ApplianceTypes = []ApplianceType{
	{"oven", "Oven"},
	{"combi_oven", "Combination oven"},
	{"microwave", "Microwave"},
	{"dishwasher", "Dishwasher"},
	{"fridge", "Fridge"},
	{"freezer", "Freezer"},
	{"hob", "Induction hob"},
	{"hood", "Extractor hood"},
	{"sink", "Sink with tap"},
}

// ApplianceLabel returns the display name of an appliance type.
func ApplianceLabel(id string) string {
	for _, t := range ApplianceTypes {
		if t.ID == id {
			return t.Label
		}
	}
	return id
}

// DefaultAppliancePrices returns the built-in appliance prices per tier.
func DefaultAppliancePrices() map[string]map[model.ApplianceTier]float64 {
	tiers := func(budget, medium, premium float64) map[model.ApplianceTier]float64 {
		return map[model.ApplianceTier]float64{
			model.ApplianceBudget:  budget,
			model.ApplianceMedium:  medium,
			model.AppliancePremium: premium,
		}
	}
	return map[string]map[model.ApplianceTier]float64{
		"oven":       tiers(350, 650, 1200),
		"combi_oven": tiers(450, 850, 1500),
		"microwave":  tiers(200, 400, 800),
		"dishwasher": tiers(400, 700, 1200),
		"fridge":     tiers(450, 800, 1500),
		"freezer":    tiers(400, 700, 1200),
		"hob":        tiers(300, 650, 1400),
		"hood":       tiers(200, 500, 1100),
		"sink":       tiers(150, 350, 700),
	}
}

// AppliancePrice returns the unit price of an appliance type in a tier.
// Unknown combinations cost 0.
func (p PriceList) AppliancePrice(typ string, tier model.ApplianceTier) float64 {
	return p.AppliancePrices[typ][tier]
}
