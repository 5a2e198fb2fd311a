package engine

import (
	"testing"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func defaultWaste() model.WasteFactors {
	return model.NewWasteFactors(75, 70)
}

func defaultParams() *model.ProductionParameters {
	p := model.DefaultProductionParameters()
	return &p
}

func cabinet(kind model.Kind, h, w, d float64) model.CabinetSpec {
	return model.CabinetSpec{ID: "test", Kind: kind, Dimensions: model.Dimensions{Height: h, Width: w, Depth: d}}
}

func partByName(t *testing.T, r model.CabinetResult, name string) model.PartQuantity {
	t.Helper()
	for _, p := range r.Parts {
		if p.Name == name {
			return p
		}
	}
	require.Failf(t, "part not found", "no part named %q in %+v", name, r.Parts)
	return model.PartQuantity{}
}

func TestHingesPerDoor(t *testing.T) {
	tests := []struct {
		height float64
		want   int
	}{
		{0, 2}, {999, 2}, {1000, 3}, {1699, 3}, {1700, 4}, {2199, 4},
		{2200, 5}, {2399, 5}, {2400, 6}, {2599, 6}, {2600, 7}, {3500, 7},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HingesPerDoor(tt.height), "height %.0f", tt.height)
	}

	prev := 0
	for h := 0.0; h <= 3000; h += 10 {
		n := HingesPerDoor(h)
		assert.GreaterOrEqual(t, n, prev, "hinges must not decrease at %.0f", h)
		prev = n
	}
}

func TestLegCount(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{300, 4}, {600, 4}, {601, 6}, {1200, 6}, {1201, 8}, {1800, 8}, {1801, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LegCount(tt.width), "width %.0f", tt.width)
	}
}

func TestDecompose_ClosedBaseCabinet(t *testing.T) {
	spec := cabinet(model.KindBase, 900, 600, 600)
	spec.Shelves = 1
	spec.Doors = 2

	res := Decompose(spec, defaultWaste(), defaultParams())

	require.Len(t, res.Parts, 4)
	carcass := partByName(t, res, "Carcass")
	assert.Equal(t, model.CategoryInterior, carcass.Category)
	assert.InDelta(t, 2.4, carcass.AreaM2, delta)

	back := partByName(t, res, "Back")
	assert.Equal(t, model.CategoryBack, back.Category)
	assert.InDelta(t, 0.72, back.AreaM2, delta)

	shelves := partByName(t, res, "Shelves")
	assert.Equal(t, model.CategoryShelf, shelves.Category)
	assert.InDelta(t, 0.48, shelves.AreaM2, delta)

	doors := partByName(t, res, "Doors")
	assert.Equal(t, model.CategoryExterior, doors.Category)
	assert.InDelta(t, 0.54*100/70, doors.AreaM2, delta)
	assert.InDelta(t, 0.771, doors.AreaM2, 0.001)

	assert.InDelta(t, 8.4, res.EdgeBandingM, delta)
	assert.Equal(t, 4, res.Hinges)
	assert.Equal(t, 2, res.Handles)
	assert.Equal(t, 4, res.Legs)
	assert.Equal(t, 0, res.DrawerHardware)
	assert.Equal(t, 0.0, res.ProfileM)
	assert.InDelta(t, 1.5, res.MontageHours, delta)
}

func TestDecompose_OpenFront(t *testing.T) {
	spec := cabinet(model.KindBase, 900, 600, 600)
	spec.Shelves = 1
	spec.Doors = 2
	spec.Drawers = 1
	spec.OpenFront = true

	res := Decompose(spec, defaultWaste(), defaultParams())

	carcass := partByName(t, res, "Carcass (open)")
	assert.Equal(t, model.CategoryExterior, carcass.Category)
	assert.InDelta(t, 1.8*100/70, carcass.AreaM2, delta)

	back := partByName(t, res, "Back")
	assert.Equal(t, model.CategoryBack, back.Category)
	assert.InDelta(t, 0.72, back.AreaM2, delta)

	shelves := partByName(t, res, "Shelves (open)")
	assert.Equal(t, model.CategoryExterior, shelves.Category)
	assert.InDelta(t, 0.36*100/70, shelves.AreaM2, delta)

	assert.InDelta(t, 4.8, res.EdgeBandingM, delta)
	assert.Equal(t, 0, res.Hinges)
	assert.Equal(t, 1, res.Handles, "drawer handles are still counted")
	assert.Equal(t, 1, res.DrawerHardware)
}

func TestDecompose_SidePanel(t *testing.T) {
	spec := cabinet(model.KindSidePanel, 900, 600, 0)
	spec.Doors = 2

	res := Decompose(spec, defaultWaste(), defaultParams())

	require.Len(t, res.Parts, 1)
	assert.Equal(t, model.CategoryExterior, res.Parts[0].Category)
	assert.InDelta(t, 0.54*100/70, res.Parts[0].AreaM2, delta)
	assert.InDelta(t, 3.0, res.EdgeBandingM, delta)
	assert.InDelta(t, 0.17, res.MontageHours, delta)
	assert.Equal(t, 0, res.Hinges)
	assert.Equal(t, 0, res.Handles)
}

func TestDecompose_Freeform(t *testing.T) {
	id := 6
	spec := cabinet(model.KindFreeform, 900, 600, 600)
	spec.Faces = model.Faces{Left: true, Right: true, Top: true, Bottom: true, Back: true}
	spec.Doors = 1
	spec.Shelves = 2
	spec.Dividers = 1
	spec.MaterialID = &id
	spec.Complexity = model.ComplexityHard

	res := Decompose(spec, defaultWaste(), defaultParams())

	ext := 100.0 / 70
	assert.InDelta(t, 0.54*ext, partByName(t, res, "Left side").AreaM2, delta)
	assert.InDelta(t, 0.54*ext, partByName(t, res, "Right side").AreaM2, delta)
	assert.InDelta(t, 0.36*ext, partByName(t, res, "Top").AreaM2, delta)
	assert.InDelta(t, 0.36*ext, partByName(t, res, "Bottom").AreaM2, delta)
	assert.InDelta(t, 0.54*ext, partByName(t, res, "Back").AreaM2, delta)
	assert.InDelta(t, 0.54*ext, partByName(t, res, "Doors").AreaM2, delta)

	shelves := partByName(t, res, "Shelves")
	assert.Equal(t, model.CategoryShelf, shelves.Category)
	assert.Empty(t, shelves.MaterialKey)
	assert.InDelta(t, 0.96, shelves.AreaM2, delta)

	for _, p := range res.Parts {
		if p.Category == model.CategoryFreeform {
			assert.Equal(t, model.MaterialKey("6"), p.MaterialKey)
		}
	}

	// 0.9+0.9 sides, 0.6+0.6 top/bottom, 1.8 door, 1.2 shelves, 0.9 divider
	assert.InDelta(t, 6.9, res.EdgeBandingM, delta)
	assert.Equal(t, 2, res.Hinges)
	assert.Equal(t, 1, res.Handles)
	assert.Equal(t, 0, res.Legs)
	assert.InDelta(t, 4, res.MontageHours, delta)
}

func TestDecompose_FreeformBackHasNoEdgeBanding(t *testing.T) {
	spec := cabinet(model.KindLegacyFreeform, 900, 600, 600)
	spec.Faces = model.Faces{Back: true}

	res := Decompose(spec, defaultWaste(), nil)

	require.Len(t, res.Parts, 1)
	assert.Equal(t, 0.0, res.EdgeBandingM)
	assert.InDelta(t, 3, res.MontageHours, delta, "default tier is medium")
}

func TestDecompose_UpperCabinetTrim(t *testing.T) {
	spec := cabinet(model.KindUpper, 600, 800, 350)
	spec.Doors = 2

	res := Decompose(spec, defaultWaste(), defaultParams())

	assert.InDelta(t, 0.96, res.ProfileM, delta)
	assert.Equal(t, 2, res.Hangers)
	assert.Equal(t, 0, res.Legs)
	assert.InDelta(t, 1.35, res.MontageHours, delta)
}

func TestDecompose_DrawerCabinet(t *testing.T) {
	spec := cabinet(model.KindDrawer, 900, 1200, 600)
	spec.Drawers = 3

	res := Decompose(spec, defaultWaste(), defaultParams())

	assert.Equal(t, 3, res.Handles)
	assert.Equal(t, 3, res.DrawerHardware)
	assert.Equal(t, 6, res.Legs)
	assert.Equal(t, 0, res.Hinges)
}

func TestDecompose_SkipsInvalidGeometry(t *testing.T) {
	for _, spec := range []model.CabinetSpec{
		cabinet(model.KindBase, 0, 600, 600),
		cabinet(model.KindBase, 900, 0, 600),
		cabinet(model.KindSidePanel, -1, 600, 0),
		cabinet(model.KindFreeform, 0, 600, 600),
	} {
		res := Decompose(spec, defaultWaste(), defaultParams())
		assert.True(t, res.IsEmpty(), "expected empty result for %+v", spec.Dimensions)
	}
}

func TestDecompose_CategoryExhaustive(t *testing.T) {
	specs := []model.CabinetSpec{
		cabinet(model.KindBase, 900, 600, 600),
		cabinet(model.KindTall, 2100, 600, 600),
		cabinet(model.KindSidePanel, 900, 600, 0),
		cabinet(model.KindFreeform, 900, 600, 600),
	}
	specs[0].Shelves, specs[0].Doors = 1, 2
	specs[1].Shelves, specs[1].Doors, specs[1].OpenFront = 4, 2, true
	specs[3].Faces = model.Faces{Left: true, Back: true}
	specs[3].Shelves = 1
	legacy := 1
	specs[3].LegacyMaterialIndex = &legacy

	valid := map[model.PartCategory]bool{}
	for _, c := range model.PartCategories {
		valid[c] = true
	}

	for _, spec := range specs {
		res := Decompose(spec, defaultWaste(), defaultParams())
		totals := Aggregate([]model.CabinetResult{res})
		for _, p := range res.Parts {
			assert.True(t, valid[p.Category], "unknown category %q", p.Category)
			assert.GreaterOrEqual(t, p.AreaM2, 0.0)
			if p.Category == model.CategoryFreeform {
				assert.NotEmpty(t, p.MaterialKey)
			} else {
				assert.Empty(t, p.MaterialKey)
			}
		}
		for cat, sum := range res.AreaByCategory() {
			assert.InDelta(t, sum, totals.Area(cat), delta)
		}
	}
}

func TestDecompose_Deterministic(t *testing.T) {
	spec := cabinet(model.KindTall, 2100, 600, 600)
	spec.Shelves, spec.Doors, spec.Appliances = 4, 2, 1

	a := Decompose(spec, defaultWaste(), defaultParams())
	b := Decompose(spec, defaultWaste(), defaultParams())
	assert.Equal(t, a, b)
}
