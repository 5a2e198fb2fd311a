package engine

import (
	"fmt"

	"github.com/piwi3910/KastCalc/internal/model"
)

// DebugRow is one itemized line of the per-cabinet table.
type DebugRow struct {
	Index        int                            `json:"index"`
	Kind         model.Kind                     `json:"kind"`
	Size         string                         `json:"size"` // H×W×D in mm
	Area         map[model.PartCategory]float64 `json:"area"`
	Material     string                         `json:"material,omitempty"` // Freeform material name
	EdgeBandingM float64                        `json:"edge_banding_m"`
	MontageHours float64                        `json:"montage_hours"`
	Skipped      bool                           `json:"skipped,omitempty"`
}

// DebugRows itemizes a calculation per cabinet. Freeform material names are
// resolved against the catalog so the table shows what the plates were
// counted against.
func DebugRows(calc Calculation, catalog model.Catalog) []DebugRow {
	rows := make([]DebugRow, len(calc.Cabinets))
	for i, line := range calc.Cabinets {
		spec := line.Spec
		row := DebugRow{
			Index:        i + 1,
			Kind:         spec.Kind,
			Size:         fmt.Sprintf("%.0f×%.0f×%.0f", spec.Height, spec.Width, spec.Depth),
			Area:         line.Result.AreaByCategory(),
			EdgeBandingM: line.Result.EdgeBandingM,
			MontageHours: line.Result.MontageHours,
			Skipped:      !spec.Valid(),
		}
		if ff, ok := spec.Variant().(model.FreeformCabinet); ok && row.Area[model.CategoryFreeform] > 0 {
			m, _ := ResolveFreeformMaterial(ff.Material, &catalog)
			row.Material = m.Name
		}
		rows[i] = row
	}
	return rows
}
