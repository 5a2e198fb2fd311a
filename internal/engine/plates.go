package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/KastCalc/internal/model"
)

// plateEpsilon absorbs float noise so an area of exactly k plates stays k.
const plateEpsilon = 1e-9

// PlateCount returns the whole sheets needed to cover areaM2. A sheet
// without area yields 0.
func PlateCount(areaM2, plateAreaM2 float64) int {
	if plateAreaM2 <= 0 || areaM2 <= 0 {
		return 0
	}
	n := int(math.Ceil(areaM2/plateAreaM2 - plateEpsilon))
	if n == 0 {
		n = 1
	}
	return n
}

// ToPlates converts aggregate areas into sheet counts. Backs and shelves
// join the interior bucket unless they are rerouted to an alternative
// material, in which case they get their own bucket. Freeform areas are
// rounded per material and then summed.
func ToPlates(totals model.AggregateTotals, catalog model.Catalog, sel model.Selections, alt model.AltMaterials) model.FlatTotals {
	flat := model.FlatTotals{
		InteriorM2:   totals.Area(model.CategoryInterior),
		BackM2:       totals.Area(model.CategoryBack),
		ShelfM2:      totals.Area(model.CategoryShelf),
		ExteriorM2:   totals.Area(model.CategoryExterior),
		FreeformM2:   totals.Area(model.CategoryFreeform),
		Hardware:     totals.Hardware,
		MontageHours: totals.MontageHours,
	}
	warn := newWarnings()

	interior := SourceFor(model.CategoryInterior, "", sel, alt).Resolve(&catalog)
	flat.InteriorMaterial = interior.Material

	interiorArea := flat.InteriorM2
	if alt.UseBack {
		back := SourceFor(model.CategoryBack, "", sel, alt).Resolve(&catalog)
		warn.add(back, flat.BackM2)
		flat.BackMaterial = &back.Material
		flat.Plates.Back = PlateCount(flat.BackM2, back.Material.PlateArea())
	} else {
		interiorArea += flat.BackM2
	}
	if alt.UseShelf {
		shelf := SourceFor(model.CategoryShelf, "", sel, alt).Resolve(&catalog)
		warn.add(shelf, flat.ShelfM2)
		flat.ShelfMaterial = &shelf.Material
		flat.Plates.Shelf = PlateCount(flat.ShelfM2, shelf.Material.PlateArea())
	} else {
		interiorArea += flat.ShelfM2
	}
	warn.add(interior, interiorArea)
	flat.Plates.Interior = PlateCount(interiorArea, interior.Material.PlateArea())

	exterior := SourceFor(model.CategoryExterior, "", sel, alt).Resolve(&catalog)
	warn.add(exterior, flat.ExteriorM2)
	flat.ExteriorMaterial = exterior.Material
	flat.Plates.Exterior = PlateCount(flat.ExteriorM2, exterior.Material.PlateArea())

	keys := make([]string, 0, len(totals.AreaByFreeformMaterial))
	for k := range totals.AreaByFreeformMaterial {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := model.MaterialKey(k)
		m2 := totals.AreaByFreeformMaterial[key]
		res := SourceFor(model.CategoryFreeform, key, sel, alt).Resolve(&catalog)
		warn.add(res, m2)
		plates := PlateCount(m2, res.Material.PlateArea())
		flat.Plates.Freeform += plates
		flat.FreeformByMaterial = append(flat.FreeformByMaterial, model.FreeformPlates{
			Key:      key,
			Material: res.Material,
			AreaM2:   m2,
			Plates:   plates,
		})
	}

	flat.Warnings = warn.list
	return flat
}

type warnings struct {
	seen map[string]bool
	list []string
}

func newWarnings() *warnings {
	return &warnings{seen: make(map[string]bool)}
}

// add records the fallback warning of a resolution that area was actually
// converted against.
func (w *warnings) add(r Resolution, areaM2 float64) {
	if r.Warning == "" || areaM2 <= 0 || w.seen[r.Warning] {
		return
	}
	w.seen[r.Warning] = true
	w.list = append(w.list, r.Warning)
}
