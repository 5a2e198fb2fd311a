package export

import (
	"fmt"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

// DXF layers of the front elevation drawing.
const (
	LayerCarcass = "CARCASS"
	LayerFronts  = "FRONTS"
	LayerShelves = "SHELVES"
	LayerText    = "TEXT"
)

// Elevation spacing in mm.
const (
	elevationGap = 150.0
	textHeight   = 40.0
)

// segment is one line of an elevation in drawing coordinates.
type segment struct {
	layer          string
	x1, y1, x2, y2 float64
}

// note is one text entity in drawing coordinates.
type note struct {
	text string
	x, y float64
}

// elevation returns the front view of a cabinet with its lower left corner
// at (x, 0).
func elevation(spec model.CabinetSpec, x float64) ([]segment, []note) {
	d := spec.Dimensions
	w, h := d.Width, d.Height
	segs := rect(LayerCarcass, x, 0, w, h)

	switch c := spec.Variant().(type) {
	case model.StandardCabinet:
		segs = append(segs, dividers(x, w, h, c.Dividers)...)
		segs = append(segs, shelves(x, w, h, c.Shelves)...)
		if c.Drawers > 0 {
			for i := 1; i < c.Drawers; i++ {
				y := h * float64(i) / float64(c.Drawers)
				segs = append(segs, segment{LayerFronts, x, y, x + w, y})
			}
		} else if !c.OpenFront {
			segs = append(segs, doors(x, w, h, c.Doors)...)
		}
	case model.FreeformCabinet:
		segs = append(segs, dividers(x, w, h, c.Dividers)...)
		segs = append(segs, shelves(x, w, h, c.Shelves)...)
		segs = append(segs, doors(x, w, h, c.Doors)...)
	}

	label := spec.Kind.Label()
	if spec.Name != "" {
		label += " " + spec.Name
	}
	notes := []note{
		{label, x, h + textHeight},
		{fmt.Sprintf("%.0f x %.0f x %.0f", d.Height, d.Width, d.Depth), x, -1.5 * textHeight},
	}
	return segs, notes
}

func rect(layer string, x, y, w, h float64) []segment {
	return []segment{
		{layer, x, y, x + w, y},
		{layer, x + w, y, x + w, y + h},
		{layer, x + w, y + h, x, y + h},
		{layer, x, y + h, x, y},
	}
}

func dividers(x, w, h float64, n int) []segment {
	var segs []segment
	for i := 1; i <= n; i++ {
		dx := x + w*float64(i)/float64(n+1)
		segs = append(segs, segment{LayerCarcass, dx, 0, dx, h})
	}
	return segs
}

func shelves(x, w, h float64, n int) []segment {
	var segs []segment
	for i := 1; i <= n; i++ {
		y := h * float64(i) / float64(n+1)
		segs = append(segs, segment{LayerShelves, x, y, x + w, y})
	}
	return segs
}

// doors splits the front into n leaves; a single door draws no split.
func doors(x, w, h float64, n int) []segment {
	var segs []segment
	for i := 1; i < n; i++ {
		dx := x + w*float64(i)/float64(n)
		segs = append(segs, segment{LayerFronts, dx, 0, dx, h})
	}
	return segs
}

// ExportElevationsDXF draws the front elevation of every cabinet of a job
// side by side. Zero-size entries are left out.
func ExportElevationsDXF(path string, job model.Job) error {
	d := dxf.NewDrawing()
	layers := []struct {
		name  string
		color color.ColorNumber
	}{
		{LayerCarcass, color.White},
		{LayerFronts, color.Cyan},
		{LayerShelves, color.Yellow},
		{LayerText, color.Red},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("add layer %s: %w", l.name, err)
		}
	}

	x := 0.0
	drawn := 0
	for _, spec := range job.Cabinets {
		if !spec.Valid() {
			continue
		}
		segs, notes := elevation(spec, x)
		for _, s := range segs {
			if err := d.ChangeLayer(s.layer); err != nil {
				return err
			}
			if _, err := d.Line(s.x1, s.y1, 0, s.x2, s.y2, 0); err != nil {
				return fmt.Errorf("draw cabinet %s: %w", spec.ID, err)
			}
		}
		if err := d.ChangeLayer(LayerText); err != nil {
			return err
		}
		for _, n := range notes {
			if _, err := d.Text(n.text, n.x, n.y, 0, textHeight); err != nil {
				return fmt.Errorf("label cabinet %s: %w", spec.ID, err)
			}
		}
		x += spec.Width + elevationGap
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("no cabinets to draw")
	}

	return d.SaveAs(path)
}
