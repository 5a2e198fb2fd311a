// Package export renders a calculated job to files: a quote PDF, QR cabinet
// labels, an Excel bill of materials and DXF front elevations.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/KastCalc/internal/engine"
	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/piwi3910/KastCalc/internal/pricing"
)

// Document bundles a job with its calculation and quote.
type Document struct {
	Job         model.Job
	Catalog     model.Catalog
	Calculation engine.Calculation
	Quote       pricing.Quote
	CompanyName string
	Currency    string
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 6.0
	contentWidth = pageWidth - marginLeft - marginRight
)

var sectionTitles = map[pricing.Section]string{
	pricing.SectionLabor:       "Labor",
	pricing.SectionPlates:      "Sheet material",
	pricing.SectionEdgeBanding: "Edge banding",
	pricing.SectionHardware:    "Hardware",
	pricing.SectionExtras:      "Extra hardware",
	pricing.SectionAppliances:  "Appliances",
}

// ExportQuotePDF writes the quote of a job to a PDF file.
func ExportQuotePDF(path string, doc Document) error {
	pdf, err := renderQuote(doc)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WriteQuotePDF writes the quote PDF to w.
func WriteQuotePDF(w io.Writer, doc Document) error {
	pdf, err := renderQuote(doc)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// quoteWriter tracks the cursor while rendering and breaks pages.
type quoteWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func renderQuote(doc Document) (*fpdf.Fpdf, error) {
	if len(doc.Job.Cabinets) == 0 {
		return nil, model.ErrNoCabinets
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle("Quote "+doc.Job.Name, true)
	w := &quoteWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.AddPage()
	w.y = marginTop
	w.header(doc)
	w.cabinetTable(doc)
	w.quoteLines(doc)
	w.totals(doc)
	w.warnings(doc.Calculation.Flat.Warnings)
	w.footer()

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render quote: %w", err)
	}
	return pdf, nil
}

// ensure starts a new page when h more millimetres do not fit.
func (w *quoteWriter) ensure(h float64) {
	if w.y+h <= pageHeight-marginBottom-8 {
		return
	}
	w.pdf.AddPage()
	w.y = marginTop
}

func (w *quoteWriter) text(x, width, h float64, s, align string, fill bool) {
	w.pdf.SetXY(x, w.y)
	w.pdf.CellFormat(width, h, w.tr(s), "", 0, align, fill, 0, "")
}

func (w *quoteWriter) header(doc Document) {
	pdf := w.pdf
	if doc.CompanyName != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(100, 100, 100)
		w.text(marginLeft, contentWidth, 5, doc.CompanyName, "R", false)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont("Helvetica", "B", 16)
	w.text(marginLeft, contentWidth, 10, "Quote: "+doc.Job.Name, "L", false)
	w.y += 11

	pdf.SetFont("Helvetica", "", 9)
	info := []string{}
	if doc.Job.Customer != "" {
		info = append(info, "Customer: "+doc.Job.Customer)
	}
	if doc.Job.CreatedAt != "" {
		info = append(info, "Date: "+doc.Job.CreatedAt)
	}
	cabinets, sides := doc.Job.Counts()
	info = append(info, fmt.Sprintf("Cabinets: %d, side panels: %d", cabinets, sides))
	w.text(marginLeft, contentWidth, 5, strings.Join(info, "  |  "), "L", false)
	w.y += 7

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, w.y, pageWidth-marginRight, w.y)
	w.y += 4
}

func (w *quoteWriter) sectionTitle(title string) {
	w.ensure(16)
	w.pdf.SetFont("Helvetica", "B", 12)
	w.text(marginLeft, contentWidth, 7, title, "L", false)
	w.y += 8
}

func (w *quoteWriter) tableHeader(widths []float64, headers []string) {
	pdf := w.pdf
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, w.y)
		pdf.CellFormat(widths[i], rowHeight, w.tr(h), "1", 0, "C", true, 0, "")
		x += widths[i]
	}
	w.y += rowHeight
}

func (w *quoteWriter) tableRow(widths []float64, cells []string, aligns string, shade bool) {
	pdf := w.pdf
	if shade {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	x := marginLeft
	for i, c := range cells {
		pdf.SetXY(x, w.y)
		pdf.CellFormat(widths[i], rowHeight, w.tr(c), "1", 0, string(aligns[i]), true, 0, "")
		x += widths[i]
	}
	w.y += rowHeight
}

func (w *quoteWriter) cabinetTable(doc Document) {
	w.sectionTitle("Cabinets")

	widths := []float64{10, 45, 15, 40, 25, 25, 20}
	headers := []string{"#", "Name", "Type", "H × W × D (mm)", "Area (m²)", "Edge (m)", "Montage (h)"}
	w.tableHeader(widths, headers)

	w.pdf.SetFont("Helvetica", "", 8)
	for i, line := range doc.Calculation.Cabinets {
		if w.y+rowHeight > pageHeight-marginBottom-8 {
			w.ensure(rowHeight * 2)
			w.tableHeader(widths, headers)
			w.pdf.SetFont("Helvetica", "", 8)
		}
		spec := line.Spec
		name := spec.Name
		if name == "" {
			name = string(spec.Kind)
		}
		w.tableRow(widths, []string{
			fmt.Sprintf("%d", i+1),
			name,
			spec.Kind.Label(),
			fmt.Sprintf("%.0f × %.0f × %.0f", spec.Height, spec.Width, spec.Depth),
			fmt.Sprintf("%.2f", line.Result.TotalArea()),
			fmt.Sprintf("%.2f", line.Result.EdgeBandingM),
			fmt.Sprintf("%.2f", line.Result.MontageHours),
		}, "RLCCRRR", i%2 == 0)
	}
	w.y += 4
}

func (w *quoteWriter) quoteLines(doc Document) {
	widths := []float64{60, 45, 20, 15, 20, 20}
	headers := []string{"Item", "Details", "Qty", "Extra", "Price", "Total"}
	money := func(s string) string { return doc.Currency + " " + s }

	for _, st := range doc.Quote.Sections {
		lines := doc.Quote.LinesIn(st.Section)
		if len(lines) == 0 {
			continue
		}
		w.sectionTitle(sectionTitles[st.Section])
		w.tableHeader(widths, headers)
		w.pdf.SetFont("Helvetica", "", 8)
		for i, l := range lines {
			w.ensure(rowHeight)
			extra := ""
			if !l.Extra.IsZero() {
				extra = l.Extra.String()
			}
			w.tableRow(widths, []string{
				l.Label,
				l.Info,
				l.Quantity.Round(2).String(),
				extra,
				l.UnitPrice.StringFixed(2),
				l.Total.StringFixed(2),
			}, "LLRRRR", i%2 == 0)
		}
		w.pdf.SetFont("Helvetica", "B", 8)
		w.text(marginLeft, contentWidth-20, rowHeight, "Subtotal", "R", false)
		w.text(pageWidth-marginRight-20, 20, rowHeight, money(st.Total.StringFixed(2)), "R", false)
		w.y += rowHeight + 3
	}
}

func (w *quoteWriter) totals(doc Document) {
	w.ensure(rowHeight*3 + 6)
	pdf := w.pdf
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(pageWidth-marginRight-80, w.y, pageWidth-marginRight, w.y)
	w.y += 2

	rows := []struct {
		label string
		value string
		bold  bool
	}{
		{"Subtotal", doc.Quote.Subtotal.StringFixed(2), false},
		{"VAT", doc.Quote.VAT.StringFixed(2), false},
		{"Total", doc.Quote.Total.StringFixed(2), true},
	}
	for _, r := range rows {
		style := ""
		if r.bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		w.text(pageWidth-marginRight-80, 50, rowHeight, r.label, "L", false)
		w.text(pageWidth-marginRight-30, 30, rowHeight, doc.Currency+" "+r.value, "R", false)
		w.y += rowHeight
	}

	labor := doc.Calculation.Labor
	w.y += 4
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	w.text(marginLeft, contentWidth, 5, fmt.Sprintf(
		"Hours: design %.2f, workshop %.2f, placement %.2f, transport %.2f (total %.2f)",
		labor.Design, labor.Workshop, labor.Placement, labor.Transport, labor.Total()), "L", false)
	pdf.SetTextColor(0, 0, 0)
	w.y += 6
}

func (w *quoteWriter) warnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	w.ensure(16)
	pdf := w.pdf
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(200, 0, 0)
	w.text(marginLeft, contentWidth, 6, "Warnings", "L", false)
	w.y += 7

	pdf.SetFont("Helvetica", "", 8)
	for _, msg := range warnings {
		w.ensure(5)
		w.text(marginLeft+5, contentWidth-5, 5, "- "+msg, "L", false)
		w.y += 5
	}
	pdf.SetTextColor(0, 0, 0)
}

func (w *quoteWriter) footer() {
	pdf := w.pdf
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Generated by KastCalc", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
