package engine

import (
	"math"

	"github.com/piwi3910/KastCalc/internal/model"
)

const (
	mm2PerM2 = 1e6
	mmPerM   = 1000.0

	// Trim profile length per metre of upper cabinet width.
	profileMultiplier = 1.2
	hangersPerUpper   = 2
)

// HingesPerDoor returns the number of hinges a door of the given height needs.
func HingesPerDoor(height float64) int {
	switch {
	case height >= 2600:
		return 7
	case height >= 2400:
		return 6
	case height >= 2200:
		return 5
	case height >= 1700:
		return 4
	case height >= 1000:
		return 3
	default:
		return 2
	}
}

// LegCount returns the number of adjustable legs for a cabinet width.
func LegCount(width float64) int {
	switch {
	case width < 601:
		return 4
	case width < 1201:
		return 6
	default:
		return int(math.Ceil(width/600))*2 + 2
	}
}

// Decompose splits one cabinet into tagged surface quantities, edge banding,
// hardware and montage hours. Cabinets without a positive height and width
// yield an empty result.
func Decompose(spec model.CabinetSpec, waste model.WasteFactors, params *model.ProductionParameters) model.CabinetResult {
	if !spec.Valid() {
		return model.CabinetResult{}
	}

	cab := spec.Variant()
	var res model.CabinetResult
	switch c := cab.(type) {
	case model.SidePanel:
		res = decomposeSidePanel(c, waste)
	case model.FreeformCabinet:
		res = decomposeFreeform(c, waste)
	case model.StandardCabinet:
		res = decomposeStandard(c, waste)
	}
	res.MontageHours = MontageHours(cab, params)
	return res
}

func area(a, b float64) float64 {
	return a * b / mm2PerM2
}

func decomposeSidePanel(c model.SidePanel, waste model.WasteFactors) model.CabinetResult {
	return model.CabinetResult{
		Parts: []model.PartQuantity{{
			Name:     "Side panel",
			AreaM2:   area(c.Width, c.Height) * waste.Exterior,
			Category: model.CategoryExterior,
		}},
		EdgeBandingM: (2*c.Width + 2*c.Height) / mmPerM,
	}
}

func decomposeFreeform(c model.FreeformCabinet, waste model.WasteFactors) model.CabinetResult {
	var res model.CabinetResult
	pinned := func(name string, m2 float64) {
		res.Parts = append(res.Parts, model.PartQuantity{
			Name:        name,
			AreaM2:      m2 * waste.Exterior,
			Category:    model.CategoryFreeform,
			MaterialKey: c.Material,
		})
	}

	if c.Faces.Left {
		pinned("Left side", area(c.Height, c.Depth))
		res.EdgeBandingM += c.Height / mmPerM
	}
	if c.Faces.Right {
		pinned("Right side", area(c.Height, c.Depth))
		res.EdgeBandingM += c.Height / mmPerM
	}
	if c.Faces.Top {
		pinned("Top", area(c.Width, c.Depth))
		res.EdgeBandingM += c.Width / mmPerM
	}
	if c.Faces.Bottom {
		pinned("Bottom", area(c.Width, c.Depth))
		res.EdgeBandingM += c.Width / mmPerM
	}
	// The back is never banded.
	if c.Faces.Back {
		pinned("Back", area(c.Width, c.Height))
	}

	if c.Doors > 0 {
		pinned("Doors", area(c.Width, c.Height))
		res.Handles += c.Doors
		res.Hinges += c.Doors * HingesPerDoor(c.Height)
		res.EdgeBandingM += c.Height * 2 * float64(c.Doors) / mmPerM
	}

	if c.Shelves > 0 {
		res.Parts = append(res.Parts, model.PartQuantity{
			Name:     "Shelves",
			AreaM2:   area(c.Width, c.Depth) * float64(c.Shelves) * waste.Interior,
			Category: model.CategoryShelf,
		})
		res.EdgeBandingM += c.Width * float64(c.Shelves) / mmPerM
	}

	// Dividers are cut from shelf stock; only their edges are counted.
	if c.Dividers > 0 {
		res.EdgeBandingM += c.Height * float64(c.Dividers) / mmPerM
	}
	return res
}

func decomposeStandard(c model.StandardCabinet, waste model.WasteFactors) model.CabinetResult {
	var res model.CabinetResult

	shelves := float64(c.Shelves)
	dividers := float64(c.Dividers)
	carcass := area(c.Depth, c.Height)*(2+dividers) + area(c.Width, c.Depth)*2
	back := area(c.Width, c.Height) * waste.Interior

	if c.OpenFront {
		res.Parts = append(res.Parts,
			model.PartQuantity{Name: "Carcass (open)", AreaM2: carcass * waste.Exterior, Category: model.CategoryExterior},
			model.PartQuantity{Name: "Back", AreaM2: back, Category: model.CategoryBack},
		)
		if c.Shelves > 0 {
			res.Parts = append(res.Parts, model.PartQuantity{
				Name:     "Shelves (open)",
				AreaM2:   area(c.Width, c.Depth) * shelves * waste.Exterior,
				Category: model.CategoryExterior,
			})
		}
		res.EdgeBandingM = (c.Width*(2+shelves) + c.Height*(2+dividers) + c.Width*2) / mmPerM
	} else {
		res.Parts = append(res.Parts,
			model.PartQuantity{Name: "Carcass", AreaM2: carcass * waste.Interior, Category: model.CategoryInterior},
			model.PartQuantity{Name: "Back", AreaM2: back, Category: model.CategoryBack},
		)
		if c.Shelves > 0 {
			res.Parts = append(res.Parts, model.PartQuantity{
				Name:     "Shelves",
				AreaM2:   area(c.Width, c.Depth) * shelves * waste.Interior,
				Category: model.CategoryShelf,
			})
		}
		if c.Doors > 0 {
			res.Parts = append(res.Parts, model.PartQuantity{
				Name:     "Doors",
				AreaM2:   area(c.Width, c.Height) * waste.Exterior,
				Category: model.CategoryExterior,
			})
			res.Hinges = c.Doors * HingesPerDoor(c.Height)
		}
		doors := float64(c.Doors)
		res.EdgeBandingM = (c.Width*(2+shelves) + c.Height*(2+dividers) + c.Height*2*doors + c.Width*2) / mmPerM
	}

	switch c.Kind {
	case model.KindBase, model.KindDrawer:
		res.Legs = LegCount(c.Width)
	case model.KindUpper:
		res.ProfileM = c.Width / mmPerM * profileMultiplier
		res.Hangers = hangersPerUpper
	}

	res.Handles = c.Drawers
	if !c.OpenFront {
		res.Handles += c.Doors
	}
	res.DrawerHardware = c.Drawers
	res.Appliances = c.Appliances
	return res
}
