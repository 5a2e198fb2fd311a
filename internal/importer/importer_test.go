package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "Kind,Height,Width,Depth\nOnderkast,900,600,600\nBovenkast,600,600,350\n", ','},
		{"semicolon", "Soort;Hoogte;Breedte;Diepte\nOnderkast;900;600;600\nBovenkast;600;600;350\n", ';'},
		{"tab", "Kind\tHeight\tWidth\tDepth\nOnderkast\t900\t600\t600\n", '\t'},
		{"pipe", "Kind|Height|Width|Depth\nOnderkast|900|600|600\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tt.data)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_EnglishHeaders(t *testing.T) {
	row := []string{"Name", "Kind", "Height", "Width", "Depth", "Qty", "Shelves", "Doors"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Name != 0 || mapping.Kind != 1 || mapping.Height != 2 || mapping.Width != 3 || mapping.Depth != 4 {
		t.Errorf("unexpected dimension mapping: %+v", mapping)
	}
	if mapping.Quantity != 5 || mapping.Shelves != 6 || mapping.Doors != 7 {
		t.Errorf("unexpected count mapping: %+v", mapping)
	}
	if mapping.Drawers != -1 || mapping.Material != -1 {
		t.Errorf("expected absent columns to be -1, got %+v", mapping)
	}
}

func TestDetectColumns_DutchHeaders(t *testing.T) {
	row := []string{"SOORT", "Breedte", "Hoogte", "Diepte", "Aantal", "Legplanken", "Laden", "Materiaal"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Kind != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Depth != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
	if mapping.Quantity != 4 || mapping.Shelves != 5 || mapping.Drawers != 6 || mapping.Material != 7 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Spoelkast", "Onderkast", "900", "600", "600"})
	if isHeader {
		t.Error("expected no header")
	}
	if mapping != positionalMapping {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── ParseKind Tests ───────────────────────────────────────

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want model.Kind
		ok   bool
	}{
		{"Onderkast", model.KindBase, true},
		{"bovenkast", model.KindUpper, true},
		{"  KOLOMKAST ", model.KindTall, true},
		{"Vrije Kast", model.KindFreeform, true},
		{"open nis hpl", model.KindLegacyFreeform, true},
		{"Schuifdeur Onderkast", model.KindSlidingDoorBase, true},
		{"base", model.KindBase, true},
		{"LK", model.KindDrawer, true},
		{"side panel", model.KindSidePanel, true},
		{"tablet", model.KindShelfTablet, true},
		{"wardrobe", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseKind(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// ─── ImportCSVFromReader Tests ─────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Name,Kind,Height,Width,Depth,Qty,Shelves,Doors\n" +
		"Spoelkast,Onderkast,900,600,600,1,1,2\n" +
		"Wandkast,Bovenkast,600,800,350,2,2,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cabinets) != 3 {
		t.Fatalf("expected 3 cabinets, got %d", len(result.Cabinets))
	}

	c := result.Cabinets[0]
	if c.Name != "Spoelkast" || c.Kind != model.KindBase {
		t.Errorf("unexpected first cabinet: %+v", c)
	}
	if c.Height != 900 || c.Width != 600 || c.Depth != 600 || c.Shelves != 1 || c.Doors != 2 {
		t.Errorf("unexpected first cabinet sizes: %+v", c)
	}

	a, b := result.Cabinets[1], result.Cabinets[2]
	if a.Name != "Wandkast" || b.Name != "Wandkast" {
		t.Errorf("expected quantity copies to keep the name, got %q and %q", a.Name, b.Name)
	}
	if a.ID == b.ID {
		t.Error("expected quantity copies to get distinct IDs")
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Spoelkast,Onderkast,900,600,600,1\nKolom,Kolomkast,2100,600,600\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cabinets) != 2 {
		t.Fatalf("expected 2 cabinets, got %d", len(result.Cabinets))
	}
	if result.Cabinets[1].Kind != model.KindTall || result.Cabinets[1].Height != 2100 {
		t.Errorf("unexpected second cabinet: %+v", result.Cabinets[1])
	}
}

func TestImportCSVFromReader_UnrecognisedHeaderSkipped(t *testing.T) {
	data := "Ref,Model,H,W,D\nA,Onderkast,900,600,600\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	// "h" and "d" are height/depth aliases, so this is a recognised header
	// without a kind column.
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Kind") {
		t.Fatalf("expected missing kind column error, got %v", result.Errors)
	}

	data = "Pos,Model,Hoog,Breed,Diep\nA,Onderkast,900,600,600\n"
	result = ImportCSVFromReader(strings.NewReader(data), ',')
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cabinets) != 1 {
		t.Fatalf("expected 1 cabinet, got %d", len(result.Cabinets))
	}
}

func TestImportCSVFromReader_DecimalComma(t *testing.T) {
	data := "Soort;Hoogte;Breedte;Diepte\nOnderkast;900,5;600;600\n"
	result := ImportCSVFromReader(strings.NewReader(data), ';')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Cabinets[0].Height != 900.5 {
		t.Errorf("expected height 900.5, got %f", result.Cabinets[0].Height)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"600", 600},
		{"900,5", 900.5},
		{"900.5", 900.5},
		{"1.200", 1200},
		{"1,200", 1200},
		{"12.500.000", 12500000},
		{"1.200,5", 1200.5},
		{"1,200.5", 1200.5},
		{"0.600", 0.6},
		{"1,25", 1.25},
	}
	for _, tt := range tests {
		got, err := parseNumber(tt.in)
		if err != nil {
			t.Errorf("parseNumber(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"1,2,3", "1.2.3", "abc"} {
		if _, err := parseNumber(bad); err == nil {
			t.Errorf("parseNumber(%q): expected error", bad)
		}
	}
}

func TestImportCSVFromReader_ThousandsSeparator(t *testing.T) {
	data := "type;hoogte;breedte;diepte\nOnderkast;900;1.200;600\nOnderkast;900;1,200;600\n"
	result := ImportCSVFromReader(strings.NewReader(data), ';')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cabinets) != 2 {
		t.Fatalf("expected 2 cabinets, got %d", len(result.Cabinets))
	}
	for i, c := range result.Cabinets {
		if c.Width != 1200 {
			t.Errorf("cabinet %d: expected width 1200, got %v", i, c.Width)
		}
	}
	readAs := 0
	for _, w := range result.Warnings {
		if strings.Contains(w, "as 1200 mm") {
			readAs++
		}
	}
	if readAs != 2 {
		t.Errorf("expected 2 thousands warnings, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_TinyDimensionWarns(t *testing.T) {
	data := "Kind,Height,Width,Depth\nOnderkast,0.9,600,600\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "height") && strings.Contains(w, "below 10 mm") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected below 10 mm warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_QuantityCap(t *testing.T) {
	data := "Kind,Height,Width,Depth,Qty\nOnderkast,900,600,600,1000\nOnderkast,900,600,600,1001\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Cabinets) != 1000 {
		t.Errorf("expected 1000 cabinets, got %d", len(result.Cabinets))
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Line 3") ||
		!strings.Contains(result.Errors[0], "exceeds the maximum") {
		t.Errorf("expected quantity cap error on line 3, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_RowErrors(t *testing.T) {
	data := "Kind,Height,Width,Depth,Qty\n" +
		"Onderkast,900,600,600,1\n" +
		"Wardrobe,900,600,600,1\n" +
		"Onderkast,abc,600,600,1\n" +
		"Onderkast,900,-5,600,1\n" +
		"Onderkast,900,600,600,0\n" +
		",900,600,600,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Cabinets) != 1 {
		t.Errorf("expected 1 valid cabinet, got %d", len(result.Cabinets))
	}
	if len(result.Errors) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Line 3") || !strings.Contains(result.Errors[0], "Wardrobe") {
		t.Errorf("unexpected first error: %s", result.Errors[0])
	}
}

func TestImportCSVFromReader_SidePanelWithoutDepth(t *testing.T) {
	data := "Kind,Height,Width,Depth\nZijpaneel,900,600,\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Cabinets[0].Depth != 0 {
		t.Errorf("expected depth 0, got %f", result.Cabinets[0].Depth)
	}
}

func TestImportCSVFromReader_Freeform(t *testing.T) {
	data := "Kind,Height,Width,Depth,Material,Complexity\n" +
		"Vrije Kast,700,1200,400,106,heel moeilijk\n" +
		"Vrije Kast,700,1200,400,Eik,extreme\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	first := result.Cabinets[0]
	if first.MaterialID == nil || *first.MaterialID != 106 {
		t.Errorf("expected material id 106, got %v", first.MaterialID)
	}
	if first.Complexity != model.ComplexityVeryHard {
		t.Errorf("expected very hard complexity, got %q", first.Complexity)
	}
	if !first.Faces.Any() {
		t.Error("expected all faces enabled on import")
	}

	second := result.Cabinets[1]
	if second.MaterialID != nil {
		t.Errorf("expected no material id for a name, got %d", *second.MaterialID)
	}
	if second.Complexity != model.ComplexityMedium {
		t.Errorf("expected medium fallback, got %q", second.Complexity)
	}
	if len(result.Warnings) < 3 {
		t.Errorf("expected header, material and complexity warnings, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_InvalidCountWarns(t *testing.T) {
	data := "Kind,Height,Width,Depth,Shelves,Open\nOnderkast,900,600,600,two,ja\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	c := result.Cabinets[0]
	if c.Shelves != 0 {
		t.Errorf("expected 0 shelves, got %d", c.Shelves)
	}
	if !c.OpenFront {
		t.Error("expected open front")
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "shelves") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected shelves warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_EmptyAndBlankRows(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}

	data := "Kind,Height,Width,Depth\n,,,\nOnderkast,900,600,600\n  ,  ,  ,  \n"
	result = ImportCSVFromReader(strings.NewReader(data), ',')
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cabinets) != 1 {
		t.Errorf("expected 1 cabinet, got %d", len(result.Cabinets))
	}
}

func TestImportCSVFromReader_DefaultName(t *testing.T) {
	data := "Kind,Height,Width,Depth\nOnderkast,900,600,600\nBovenkast,600,600,350\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if result.Cabinets[0].Name != "OK 1" || result.Cabinets[1].Name != "BK 2" {
		t.Errorf("unexpected default names %q, %q", result.Cabinets[0].Name, result.Cabinets[1].Name)
	}
}

// ─── File Import Tests ─────────────────────────────────────

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kasten.csv")
	content := "Soort;Hoogte;Breedte;Diepte;Aantal\nOnderkast;900;600;600;2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result := Import(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cabinets) != 2 {
		t.Errorf("expected 2 cabinets, got %d", len(result.Cabinets))
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "semicolon") {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_Errors(t *testing.T) {
	result := ImportCSV("/nonexistent/kasten.csv")
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	result = ImportCSV(path)
	if len(result.Errors) == 0 || result.Errors[0] != "File is empty" {
		t.Errorf("expected empty file error, got %v", result.Errors)
	}
}

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kasten.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Naam", "Soort", "Hoogte", "Breedte", "Diepte", "Laden"},
		{"Ladekast links", "Ladekast", 900, 600, 600, 4},
		{"Kolom", "Kolomkast", 2100, 600, 600, ""},
	})

	result := Import(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cabinets) != 2 {
		t.Fatalf("expected 2 cabinets, got %d", len(result.Cabinets))
	}
	if result.Cabinets[0].Drawers != 4 || result.Cabinets[0].Kind != model.KindDrawer {
		t.Errorf("unexpected first cabinet: %+v", result.Cabinets[0])
	}
	if result.Cabinets[1].Height != 2100 {
		t.Errorf("expected height 2100, got %f", result.Cabinets[1].Height)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/kasten.xlsx")
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

func TestImportExcel_EmptySheet(t *testing.T) {
	path := createTestExcel(t, nil)
	result := ImportExcel(path)
	if len(result.Errors) == 0 {
		t.Error("expected error for empty sheet")
	}
}
