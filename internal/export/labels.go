package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/KastCalc/internal/engine"
	"github.com/piwi3910/KastCalc/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each cabinet label's QR code.
type LabelInfo struct {
	Job       string  `json:"job"`
	CabinetID string  `json:"id"`
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Height    float64 `json:"height_mm"`
	Width     float64 `json:"width_mm"`
	Depth     float64 `json:"depth_mm"`
	Position  int     `json:"pos"`
	Of        int     `json:"of"`
	Faces     string  `json:"faces,omitempty"` // Freeform only
}

// Label layout for A4 sheets of 3 × 7 labels (63.5 × 38.1 mm).
const (
	labelMarginTop  = 15.15
	labelMarginLeft = 7.2
	labelWidth      = 63.5
	labelHeight     = 38.1
	labelGapX       = 2.5
	labelCols       = 3
	labelRows       = 7
	labelsPerPage   = labelCols * labelRows
	qrSize          = 24.0
	labelPadding    = 2.5
)

// CollectLabelInfos returns one label per cabinet that contributes to the
// calculation. Zero-size entries get no label.
func CollectLabelInfos(job model.Job, calc engine.Calculation) []LabelInfo {
	var labels []LabelInfo
	for _, line := range calc.Cabinets {
		spec := line.Spec
		if !spec.Valid() {
			continue
		}
		info := LabelInfo{
			Job:       job.Name,
			CabinetID: spec.ID,
			Name:      spec.Name,
			Kind:      spec.Kind.Label(),
			Height:    spec.Height,
			Width:     spec.Width,
			Depth:     spec.Depth,
		}
		if ff, ok := spec.Variant().(model.FreeformCabinet); ok {
			info.Faces = ff.Faces.String()
		}
		labels = append(labels, info)
	}
	for i := range labels {
		labels[i].Position = i + 1
		labels[i].Of = len(labels)
	}
	return labels
}

// ExportCabinetLabels writes a PDF of QR-coded labels, one per cabinet.
func ExportCabinetLabels(path string, job model.Job, calc engine.Calculation) error {
	labels := CollectLabelInfos(job, calc)
	if len(labels) == 0 {
		return fmt.Errorf("no cabinets to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*(labelWidth+labelGapX)
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, tr, x, y, label); err != nil {
			return fmt.Errorf("render label for cabinet %s: %w", label.CabinetID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", info.Position, info.CabinetID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Kind code and position, large
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 7, fmt.Sprintf("%s %d/%d", info.Kind, info.Position, info.Of), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(textX, y+labelPadding+8)
	pdf.CellFormat(textW, 4, tr(truncate(pdf, info.Name, textW)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+13)
	dims := fmt.Sprintf("%.0f × %.0f × %.0f", info.Height, info.Width, info.Depth)
	pdf.CellFormat(textW, 3.5, tr(dims), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+17)
	pdf.CellFormat(textW, 3, tr(truncate(pdf, info.Job, textW)), "", 1, "L", false, 0, "")

	if info.Faces != "" {
		pdf.SetXY(textX, y+labelPadding+20.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Faces: "+info.Faces, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// truncate shortens s with an ellipsis until it fits width at the current font.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return strings.TrimSpace(string(r)) + "..."
}
