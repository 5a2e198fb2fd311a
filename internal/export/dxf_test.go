package export

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func countLayer(segs []segment, layer string) int {
	n := 0
	for _, s := range segs {
		if s.layer == layer {
			n++
		}
	}
	return n
}

func TestElevation(t *testing.T) {
	tests := []struct {
		name    string
		spec    model.CabinetSpec
		carcass int
		fronts  int
		shelves int
	}{
		{"base two doors one shelf", model.CabinetSpec{Kind: model.KindBase, Dimensions: model.Dimensions{Height: 900, Width: 600, Depth: 600}, Doors: 2, Shelves: 1}, 4, 1, 1},
		{"single door draws no split", model.CabinetSpec{Kind: model.KindUpper, Dimensions: model.Dimensions{Height: 600, Width: 400, Depth: 350}, Doors: 1}, 4, 0, 0},
		{"drawers replace doors", model.CabinetSpec{Kind: model.KindDrawer, Dimensions: model.Dimensions{Height: 900, Width: 600, Depth: 600}, Drawers: 3, Doors: 2}, 4, 2, 0},
		{"open front has no fronts", model.CabinetSpec{Kind: model.KindBase, Dimensions: model.Dimensions{Height: 900, Width: 600, Depth: 600}, Doors: 2, OpenFront: true, Dividers: 1}, 5, 0, 0},
		{"side panel outline only", model.CabinetSpec{Kind: model.KindSidePanel, Dimensions: model.Dimensions{Height: 900, Width: 600}, Shelves: 3}, 4, 0, 0},
		{"freeform", model.CabinetSpec{Kind: model.KindFreeform, Dimensions: model.Dimensions{Height: 700, Width: 1200, Depth: 400}, Doors: 3, Shelves: 2, Dividers: 2}, 6, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, notes := elevation(tt.spec, 100)
			assert.Equal(t, tt.carcass, countLayer(segs, LayerCarcass))
			assert.Equal(t, tt.fronts, countLayer(segs, LayerFronts))
			assert.Equal(t, tt.shelves, countLayer(segs, LayerShelves))
			require.Len(t, notes, 2)
			for _, s := range segs {
				assert.GreaterOrEqual(t, s.x1, 100.0)
				assert.LessOrEqual(t, s.x2, 100+tt.spec.Width)
			}
		})
	}
}

func TestExportElevationsDXF(t *testing.T) {
	doc := buildTestDocument()
	path := filepath.Join(t.TempDir(), "front.dxf")

	require.NoError(t, ExportElevationsDXF(path, doc.Job))

	drawing, err := dxf.Open(path)
	require.NoError(t, err)

	var lines, texts int
	for _, e := range drawing.Entities() {
		switch e.(type) {
		case *entity.Line:
			lines++
		case *entity.Text:
			texts++
		}
	}
	// Six drawn cabinets, the zero-height entry is skipped.
	assert.Equal(t, 12, texts)
	assert.GreaterOrEqual(t, lines, 6*4)
}

func TestExportElevationsDXF_NothingToDraw(t *testing.T) {
	job := model.NewJob("Leeg")
	job.AddCabinet(model.NewCabinet(model.KindBase, 0, 600, 600))

	err := ExportElevationsDXF(filepath.Join(t.TempDir(), "x.dxf"), job)
	assert.Error(t, err)
}
