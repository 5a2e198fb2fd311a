package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/KastCalc/internal/engine"
	"github.com/piwi3910/KastCalc/internal/export"
	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/piwi3910/KastCalc/internal/pricing"
)

// summary is the JSON form of a run.
type summary struct {
	Job         string             `json:"job"`
	Calculation engine.Calculation `json:"calculation"`
	Quote       pricing.Quote      `json:"quote"`
	Scenarios   []scenarioSummary  `json:"scenarios,omitempty"`
	Debug       []engine.DebugRow  `json:"debug,omitempty"`
}

type scenarioSummary struct {
	Name        string  `json:"name"`
	TotalPlates int     `json:"total_plates"`
	LaborHours  float64 `json:"labor_hours"`
	Warnings    int     `json:"warnings"`
}

func summarizeScenarios(results []engine.ComparisonResult) []scenarioSummary {
	out := make([]scenarioSummary, 0, len(results))
	for _, r := range results {
		out = append(out, scenarioSummary{
			Name:        r.Scenario.Name,
			TotalPlates: r.TotalPlates,
			LaborHours:  r.LaborHours,
			Warnings:    r.Warnings,
		})
	}
	return out
}

func writeJSON(out io.Writer, doc export.Document, comparison []engine.ComparisonResult, debug bool) error {
	s := summary{
		Job:         doc.Job.Name,
		Calculation: doc.Calculation,
		Quote:       doc.Quote,
	}
	if len(comparison) > 0 {
		s.Scenarios = summarizeScenarios(comparison)
	}
	if debug {
		s.Debug = engine.DebugRows(doc.Calculation, doc.Catalog)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func writeText(out io.Writer, doc export.Document, comparison []engine.ComparisonResult, debug bool) error {
	calc := doc.Calculation
	flat := calc.Flat
	cabinets, sides := doc.Job.Counts()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Job:\t%s\n", doc.Job.Name)
	fmt.Fprintf(tw, "Cabinets:\t%d (side panels: %d)\n", cabinets, sides)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "PLATES")
	fmt.Fprintf(tw, "  interior\t%s\t%.3f m²\t%d\n", flat.InteriorMaterial.Name, flat.InteriorM2, flat.Plates.Interior)
	if m := flat.BackMaterial; m != nil {
		fmt.Fprintf(tw, "  back\t%s\t%.3f m²\t%d\n", m.Name, flat.BackM2, flat.Plates.Back)
	}
	if m := flat.ShelfMaterial; m != nil {
		fmt.Fprintf(tw, "  shelf\t%s\t%.3f m²\t%d\n", m.Name, flat.ShelfM2, flat.Plates.Shelf)
	}
	fmt.Fprintf(tw, "  exterior\t%s\t%.3f m²\t%d\n", flat.ExteriorMaterial.Name, flat.ExteriorM2, flat.Plates.Exterior)
	for _, fp := range flat.FreeformByMaterial {
		fmt.Fprintf(tw, "  freeform\t%s\t%.3f m²\t%d\n", fp.Material.Name, fp.AreaM2, fp.Plates)
	}
	fmt.Fprintf(tw, "  total\t\t\t%d\n", flat.Plates.Total())
	fmt.Fprintln(tw)

	hw := flat.Hardware
	fmt.Fprintln(tw, "HARDWARE")
	fmt.Fprintf(tw, "  edge banding\t%.2f m\n", hw.EdgeBandingM)
	fmt.Fprintf(tw, "  legs\t%d\n", hw.Legs)
	fmt.Fprintf(tw, "  hinges\t%d\n", hw.Hinges)
	fmt.Fprintf(tw, "  handles\t%d\n", hw.Handles)
	fmt.Fprintf(tw, "  drawers\t%d\n", hw.DrawerHardware)
	fmt.Fprintf(tw, "  profile\t%.2f m\n", hw.ProfileM)
	fmt.Fprintf(tw, "  hangers\t%d\n", hw.Hangers)
	fmt.Fprintln(tw)

	l := calc.Labor
	fmt.Fprintln(tw, "LABOR (h)")
	fmt.Fprintf(tw, "  design\t%.2f\n", l.Design)
	fmt.Fprintf(tw, "  workshop\t%.2f\n", l.Workshop)
	fmt.Fprintf(tw, "  placement\t%.2f\n", l.Placement)
	fmt.Fprintf(tw, "  transport\t%.2f\n", l.Transport)
	fmt.Fprintf(tw, "  total\t%.2f\n", l.Total())
	fmt.Fprintln(tw)

	q := doc.Quote
	fmt.Fprintln(tw, "QUOTE")
	for _, st := range q.Sections {
		if !st.Total.IsZero() {
			fmt.Fprintf(tw, "  %s\t%s %s\n", strings.ReplaceAll(string(st.Section), "_", " "), doc.Currency, st.Total.StringFixed(2))
		}
	}
	fmt.Fprintf(tw, "  subtotal\t%s %s\n", doc.Currency, q.Subtotal.StringFixed(2))
	fmt.Fprintf(tw, "  VAT\t%s %s\n", doc.Currency, q.VAT.StringFixed(2))
	fmt.Fprintf(tw, "  total\t%s %s\n", doc.Currency, q.Total.StringFixed(2))

	if len(flat.Warnings) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "WARNINGS")
		for _, w := range flat.Warnings {
			fmt.Fprintf(tw, "  - %s\n", w)
		}
	}

	if len(comparison) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "SCENARIOS")
		fmt.Fprintln(tw, "  name\tplates\tlabor h\twarnings")
		for _, s := range summarizeScenarios(comparison) {
			fmt.Fprintf(tw, "  %s\t%d\t%.2f\t%d\n", s.Name, s.TotalPlates, s.LaborHours, s.Warnings)
		}
	}

	if debug {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "CABINETS")
		header := []string{"#", "kind", "size"}
		for _, cat := range model.PartCategories {
			header = append(header, string(cat))
		}
		header = append(header, "edge m", "montage h", "")
		fmt.Fprintln(tw, "  "+strings.Join(header, "\t"))
		for _, r := range engine.DebugRows(calc, doc.Catalog) {
			cells := []string{fmt.Sprint(r.Index), string(r.Kind), r.Size}
			for _, cat := range model.PartCategories {
				cells = append(cells, fmt.Sprintf("%.3f", r.Area[cat]))
			}
			skipped := ""
			if r.Skipped {
				skipped = "skipped"
			}
			cells = append(cells, fmt.Sprintf("%.2f", r.EdgeBandingM), fmt.Sprintf("%.2f", r.MontageHours), skipped)
			fmt.Fprintln(tw, "  "+strings.Join(cells, "\t"))
		}
	}

	return tw.Flush()
}
