package export

import (
	"fmt"
	"io"
	"math"

	"github.com/piwi3910/KastCalc/internal/engine"
	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the bill of materials workbook.
const (
	SheetCabinets = "Cabinets"
	SheetPlates   = "Plates"
	SheetHardware = "Hardware"
	SheetQuote    = "Quote"
)

// ExportBOMWorkbook writes the bill of materials of a job to an xlsx file.
func ExportBOMWorkbook(path string, doc Document) error {
	f, err := buildWorkbook(doc)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// WriteBOMWorkbook writes the bill of materials workbook to w.
func WriteBOMWorkbook(w io.Writer, doc Document) error {
	f, err := buildWorkbook(doc)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

type sheetWriter struct {
	f      *excelize.File
	sheet  string
	row    int
	header int
}

func (s *sheetWriter) put(values ...interface{}) error {
	s.row++
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return err
	}
	return s.f.SetSheetRow(s.sheet, cell, &values)
}

func (s *sheetWriter) title(values ...interface{}) error {
	if err := s.put(values...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), s.row)
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(s.sheet, fmt.Sprintf("A%d", s.row), last, s.header)
}

func buildWorkbook(doc Document) (*excelize.File, error) {
	if len(doc.Job.Cabinets) == 0 {
		return nil, model.ErrNoCabinets
	}

	f := excelize.NewFile()
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	steps := []struct {
		sheet string
		fill  func(*sheetWriter, Document) error
	}{
		{SheetCabinets, writeCabinetSheet},
		{SheetPlates, writePlateSheet},
		{SheetHardware, writeHardwareSheet},
		{SheetQuote, writeQuoteSheet},
	}
	for i, step := range steps {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), step.sheet)
		} else {
			_, err = f.NewSheet(step.sheet)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", step.sheet, err)
		}
		if err := step.fill(&sheetWriter{f: f, sheet: step.sheet, header: header}, doc); err != nil {
			f.Close()
			return nil, fmt.Errorf("fill sheet %s: %w", step.sheet, err)
		}
		if err := f.SetColWidth(step.sheet, "A", "B", 24); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeCabinetSheet(s *sheetWriter, doc Document) error {
	headers := []interface{}{"#", "Name", "Kind", "Height", "Width", "Depth"}
	for _, cat := range model.PartCategories {
		headers = append(headers, string(cat)+" m²")
	}
	headers = append(headers, "Freeform material", "Edge banding m", "Montage h", "Skipped")
	if err := s.title(headers...); err != nil {
		return err
	}

	rows := engine.DebugRows(doc.Calculation, doc.Catalog)
	for i, r := range rows {
		spec := doc.Calculation.Cabinets[i].Spec
		values := []interface{}{r.Index, spec.Name, string(r.Kind), spec.Height, spec.Width, spec.Depth}
		for _, cat := range model.PartCategories {
			values = append(values, round3(r.Area[cat]))
		}
		values = append(values, r.Material, round3(r.EdgeBandingM), round3(r.MontageHours), r.Skipped)
		if err := s.put(values...); err != nil {
			return err
		}
	}
	return nil
}

func writePlateSheet(s *sheetWriter, doc Document) error {
	flat := doc.Calculation.Flat
	if err := s.title("Bucket", "Material", "Sheet mm", "Area m²", "Plates"); err != nil {
		return err
	}

	size := func(m model.Material) string { return fmt.Sprintf("%.0f×%.0f", m.Width, m.Height) }
	interiorMaterial := flat.InteriorMaterial
	if err := s.put("interior", interiorMaterial.Name, size(interiorMaterial), round3(flat.InteriorM2), flat.Plates.Interior); err != nil {
		return err
	}
	if m := flat.BackMaterial; m != nil {
		if err := s.put("back", m.Name, size(*m), round3(flat.BackM2), flat.Plates.Back); err != nil {
			return err
		}
	}
	if m := flat.ShelfMaterial; m != nil {
		if err := s.put("shelf", m.Name, size(*m), round3(flat.ShelfM2), flat.Plates.Shelf); err != nil {
			return err
		}
	}
	if err := s.put("exterior", flat.ExteriorMaterial.Name, size(flat.ExteriorMaterial), round3(flat.ExteriorM2), flat.Plates.Exterior); err != nil {
		return err
	}
	for _, fp := range flat.FreeformByMaterial {
		if err := s.put("freeform", fp.Material.Name, size(fp.Material), round3(fp.AreaM2), fp.Plates); err != nil {
			return err
		}
	}
	if err := s.put("total", "", "", nil, flat.Plates.Total()); err != nil {
		return err
	}

	for _, w := range flat.Warnings {
		if err := s.put("warning", w); err != nil {
			return err
		}
	}
	return nil
}

func writeHardwareSheet(s *sheetWriter, doc Document) error {
	hw := doc.Calculation.Flat.Hardware
	labor := doc.Calculation.Labor
	rows := [][]interface{}{
		{"Edge banding (m)", round3(hw.EdgeBandingM)},
		{"Legs", hw.Legs},
		{"Hinges", hw.Hinges},
		{"Handles", hw.Handles},
		{"Drawer hardware", hw.DrawerHardware},
		{"Profile (m)", round3(hw.ProfileM)},
		{"Hangers", hw.Hangers},
		{"Appliances", hw.Appliances},
		{"Montage (h)", round3(doc.Calculation.Flat.MontageHours)},
		{"Design (h)", round3(labor.Design)},
		{"Workshop (h)", round3(labor.Workshop)},
		{"Placement (h)", round3(labor.Placement)},
		{"Transport (h)", round3(labor.Transport)},
	}
	if err := s.title("Item", "Quantity"); err != nil {
		return err
	}
	for _, r := range rows {
		if err := s.put(r...); err != nil {
			return err
		}
	}
	return nil
}

func writeQuoteSheet(s *sheetWriter, doc Document) error {
	if err := s.title("Code", "Item", "Details", "Quantity", "Extra", "Unit price", "Total"); err != nil {
		return err
	}
	for _, l := range doc.Quote.Lines {
		qty, _ := l.Quantity.Float64()
		extra, _ := l.Extra.Float64()
		price, _ := l.UnitPrice.Round(2).Float64()
		total, _ := l.Total.Float64()
		if err := s.put(l.Code, l.Label, l.Info, qty, extra, price, total); err != nil {
			return err
		}
	}
	for _, t := range []struct {
		label string
		value interface{}
	}{
		{"Subtotal", doc.Quote.Subtotal.InexactFloat64()},
		{"VAT", doc.Quote.VAT.InexactFloat64()},
		{"Total", doc.Quote.Total.InexactFloat64()},
	} {
		if err := s.put("", t.label, "", nil, nil, nil, t.value); err != nil {
			return err
		}
	}
	return nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
