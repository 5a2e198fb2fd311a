package pricing

import (
	"fmt"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/shopspring/decimal"
)

// Section groups quote lines.
type Section string

const (
	SectionLabor       Section = "labor"
	SectionPlates      Section = "plates"
	SectionEdgeBanding Section = "edge_banding"
	SectionHardware    Section = "hardware"
	SectionExtras      Section = "extras"
	SectionAppliances  Section = "appliances"
)

// Sections lists the sections in quote order.
var Sections = []Section{SectionLabor, SectionPlates, SectionEdgeBanding, SectionHardware, SectionExtras, SectionAppliances}

// Line is one billed quantity.
type Line struct {
	Code      string          `json:"code"` // Key for manual adjustments
	Section   Section         `json:"section"`
	Label     string          `json:"label"`
	Info      string          `json:"info,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	Extra     decimal.Decimal `json:"extra"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// SectionTotal is the sum of the lines of one section.
type SectionTotal struct {
	Section Section         `json:"section"`
	Total   decimal.Decimal `json:"total"`
}

// Quote is the priced result of a calculation.
type Quote struct {
	Lines    []Line          `json:"lines"`
	Sections []SectionTotal  `json:"sections"`
	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`
}

// LinesIn returns the lines of one section in quote order.
func (q Quote) LinesIn(s Section) []Line {
	var out []Line
	for _, l := range q.Lines {
		if l.Section == s {
			out = append(out, l)
		}
	}
	return out
}

// LineTotal computes (quantity + extra) × price, where a manual override
// replaces the unit price.
func LineTotal(quantity, unitPrice decimal.Decimal, adj model.LineAdjustment) (total, extra, price decimal.Decimal) {
	extra = decimal.NewFromFloat(adj.Extra)
	price = unitPrice
	if adj.Override != nil {
		price = decimal.NewFromFloat(*adj.Override)
	}
	return quantity.Add(extra).Mul(price).Round(2), extra, price
}

// Build prices the plate counts, edge banding, hardware and labor hours,
// followed by the job's extra hardware and appliances. Adjustments from the
// settings are keyed by line code. Lines that end up with no quantity are
// left out.
func Build(flat model.FlatTotals, labor model.LaborHours, prices PriceList, settings model.JobSettings) Quote {
	b := builder{adj: settings.Adjustments}

	b.add("design", SectionLabor, "Design", "", labor.Design, prices.Labor.Design)
	b.add("workshop", SectionLabor, "Workshop", "", labor.Workshop, prices.Labor.Workshop)
	b.add("placement", SectionLabor, "Placement", "", labor.Placement, prices.Labor.Placement)
	b.add("transport", SectionLabor, "Transport", "", labor.Transport, prices.Labor.Transport)

	b.plate("plates.interior", "Interior", flat.InteriorMaterial, flat.Plates.Interior)
	if flat.BackMaterial != nil {
		b.plate("plates.back", "Backs", *flat.BackMaterial, flat.Plates.Back)
	}
	if flat.ShelfMaterial != nil {
		b.plate("plates.shelf", "Shelves", *flat.ShelfMaterial, flat.Plates.Shelf)
	}
	b.plate("plates.exterior", "Exterior", flat.ExteriorMaterial, flat.Plates.Exterior)
	for _, fp := range flat.FreeformByMaterial {
		b.plate("plates.freeform."+string(fp.Key), "Freeform", fp.Material, fp.Plates)
	}

	b.add("edge_banding", SectionEdgeBanding, "Edge banding", "m", flat.EdgeBandingM, prices.EdgeBandingPerM)

	b.add("legs", SectionHardware, "Legs", "", float64(flat.Legs), prices.Leg)
	hingeLabel, hingePrice := prices.HingeLine()
	b.add("hinges", SectionHardware, hingeLabel, "", float64(flat.Hinges), hingePrice)
	b.add("profile", SectionHardware, "Upper cabinet profile", "m", flat.ProfileM, prices.ProfilePerM)
	b.add("hangers", SectionHardware, "Hangers", "", float64(flat.Hangers), prices.Hanger)
	drawerLabel, drawerPrice := prices.DrawerLine()
	b.add("drawers", SectionHardware, drawerLabel, "", float64(flat.DrawerHardware), drawerPrice)
	b.add("handles", SectionHardware, "Handles", "", float64(flat.Handles), prices.Handle)

	for _, it := range prices.ResolveExtras(settings.Extras) {
		info := it.ArticleNo
		if it.Unit == "m" {
			info = "m"
		}
		b.add("extras."+it.Code, SectionExtras, it.Label, info, it.Qty, it.Price)
	}

	seen := make(map[string]int, len(settings.Appliances))
	for _, a := range settings.Appliances {
		a = a.Resolved()
		seen[a.Type]++
		code := "appliances." + a.Type
		if n := seen[a.Type]; n > 1 {
			code = fmt.Sprintf("%s.%d", code, n)
		}
		info := string(a.Tier)
		if a.Model != "" {
			info = a.Model + ", " + info
		}
		b.add(code, SectionAppliances, ApplianceLabel(a.Type), info, float64(a.Qty), prices.AppliancePrice(a.Type, a.Tier))
	}

	return b.finish(prices.VATPercent)
}

type builder struct {
	adj   map[string]model.LineAdjustment
	lines []Line
}

func (b *builder) plate(code, label string, m model.Material, plates int) {
	info := fmt.Sprintf("%s %.0f×%.0f", m.Name, m.Width, m.Height)
	b.add(code, SectionPlates, label, info, float64(plates), m.PlatePrice())
}

func (b *builder) add(code string, section Section, label, info string, quantity, unitPrice float64) {
	adj := b.adj[code]
	qty := decimal.NewFromFloat(quantity)
	total, extra, price := LineTotal(qty, decimal.NewFromFloat(unitPrice), adj)
	if qty.Add(extra).IsZero() {
		return
	}
	b.lines = append(b.lines, Line{
		Code:      code,
		Section:   section,
		Label:     label,
		Info:      info,
		Quantity:  qty,
		Extra:     extra,
		UnitPrice: price,
		Total:     total,
	})
}

func (b *builder) finish(vatPercent float64) Quote {
	q := Quote{Lines: b.lines, Subtotal: decimal.Zero}
	for _, s := range Sections {
		sum := decimal.Zero
		for _, l := range b.lines {
			if l.Section == s {
				sum = sum.Add(l.Total)
			}
		}
		q.Sections = append(q.Sections, SectionTotal{Section: s, Total: sum})
		q.Subtotal = q.Subtotal.Add(sum)
	}
	q.VAT = q.Subtotal.Mul(decimal.NewFromFloat(vatPercent)).Div(decimal.NewFromInt(100)).Round(2)
	q.Total = q.Subtotal.Add(q.VAT)
	return q
}
