// Package importer reads cabinet lists from CSV and Excel files.
// It detects the CSV delimiter and maps columns by Dutch or English header
// names, case-insensitively.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Cabinets []model.CabinetSpec `json:"cabinets"`
	Errors   []string            `json:"errors"`
	Warnings []string            `json:"warnings"`
}

// ColumnMapping maps column roles to their indices in the data. -1 means absent.
type ColumnMapping struct {
	Name       int
	Kind       int
	Height     int
	Width      int
	Depth      int
	Quantity   int
	Shelves    int
	Doors      int
	Drawers    int
	Dividers   int
	Appliances int
	Material   int
	Complexity int
	OpenFront  int
}

// positionalMapping is used when the first row is not a recognised header.
var positionalMapping = ColumnMapping{
	Name: 0, Kind: 1, Height: 2, Width: 3, Depth: 4, Quantity: 5,
	Shelves: 6, Doors: 7, Drawers: 8,
	Dividers: -1, Appliances: -1, Material: -1, Complexity: -1, OpenFront: -1,
}

// headerAliases maps column roles to their accepted header names (all lowercase).
var headerAliases = map[string][]string{
	"name":       {"name", "naam", "label", "omschrijving", "description", "ref"},
	"kind":       {"kind", "type", "soort", "kast", "cabinet"},
	"height":     {"height", "hoogte", "h"},
	"width":      {"width", "breedte", "b", "w"},
	"depth":      {"depth", "diepte", "d"},
	"quantity":   {"quantity", "qty", "aantal", "count", "pcs"},
	"shelves":    {"shelves", "legplanken", "leggers", "planken"},
	"doors":      {"doors", "deuren"},
	"drawers":    {"drawers", "laden", "lades"},
	"dividers":   {"dividers", "tussenschotten", "schotten"},
	"appliances": {"appliances", "toestellen", "apparaten"},
	"material":   {"material", "materiaal", "material id", "materiaal id"},
	"complexity": {"complexity", "complexiteit"},
	"open":       {"open", "open front", "open kast"},
}

// kindAliases resolves the kind column. Canonical kind names match
// case-insensitively as well.
var kindAliases = map[string]model.Kind{
	"upper": model.KindUpper, "bk": model.KindUpper, "wall": model.KindUpper,
	"base": model.KindBase, "ok": model.KindBase,
	"tall": model.KindTall, "kk": model.KindTall, "column": model.KindTall,
	"drawer": model.KindDrawer, "lk": model.KindDrawer,
	"side panel": model.KindSidePanel, "zp": model.KindSidePanel, "side": model.KindSidePanel,
	"freeform": model.KindFreeform, "vk": model.KindFreeform, "custom": model.KindFreeform,
	"dishwasher panel": model.KindDishwasherPanel,
	"tablet":           model.KindShelfTablet,
}

var allKinds = []model.Kind{
	model.KindUpper, model.KindBase, model.KindTall, model.KindDrawer,
	model.KindSidePanel, model.KindFreeform, model.KindLegacyFreeform,
	model.KindDishwasherPanel, model.KindSlidingDoorBase, model.KindSlidingDoorTall,
	model.KindShelfTablet,
}

// ParseKind resolves a kind cell. It accepts the saved kind names, their
// English names and the short label codes.
func ParseKind(s string) (model.Kind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return "", false
	}
	for _, k := range allKinds {
		if strings.ToLower(string(k)) == normalized {
			return k, true
		}
	}
	k, ok := kindAliases[normalized]
	return k, ok
}

// parseComplexity accepts the tier keys with spaces or underscores.
func parseComplexity(s string) (model.ComplexityTier, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	for _, tier := range model.ComplexityTiers {
		if string(tier) == normalized {
			return tier, true
		}
	}
	return "", false
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "no", "nee", "false", "n":
		return false, true
	case "1", "yes", "ja", "true", "y", "j", "x":
		return true, true
	}
	return false, false
}

// DetectCSVDelimiter determines the most likely CSV delimiter. It tries
// comma, semicolon, tab and pipe; the one that yields the most consistent
// multi-column rows wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It returns the positional mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name: -1, Kind: -1, Height: -1, Width: -1, Depth: -1, Quantity: -1,
		Shelves: -1, Doors: -1, Drawers: -1, Dividers: -1, Appliances: -1,
		Material: -1, Complexity: -1, OpenFront: -1,
	}
	roles := map[string]*int{
		"name":       &mapping.Name,
		"kind":       &mapping.Kind,
		"height":     &mapping.Height,
		"width":      &mapping.Width,
		"depth":      &mapping.Depth,
		"quantity":   &mapping.Quantity,
		"shelves":    &mapping.Shelves,
		"doors":      &mapping.Doors,
		"drawers":    &mapping.Drawers,
		"dividers":   &mapping.Dividers,
		"appliances": &mapping.Appliances,
		"material":   &mapping.Material,
		"complexity": &mapping.Complexity,
		"open":       &mapping.OpenFront,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if idx := roles[role]; *idx == -1 {
					*idx = i
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// getCell returns the trimmed cell at idx, or "" when out of range.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// maxQuantity caps how many copies one row may expand into.
const maxQuantity = 1000

// minDimension is the smallest plausible cabinet dimension in mm.
const minDimension = 10

// thousandsPattern matches whole numbers grouped per thousand, such as
// "1.200", "1,200" or "12.500.000".
var thousandsPattern = regexp.MustCompile(`^[1-9]\d{0,2}([.,]\d{3})+$`)

// parseNumber accepts decimal points and decimal commas. A separator followed
// by exactly three digits groups thousands, so "1.200" and "1,200" are 1200.
// When both separators appear the last one is the decimal mark.
func parseNumber(s string) (float64, error) {
	if thousandsPattern.MatchString(s) {
		return strconv.ParseFloat(strings.NewReplacer(".", "", ",", "").Replace(s), 64)
	}
	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma > dot:
		s = strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
	case comma >= 0 && dot > comma:
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}

// rowParser collects the messages of one row.
type rowParser struct {
	row      []string
	label    string
	warnings []string
}

func (p *rowParser) dimension(idx int, name string) (float64, string) {
	s := getCell(p.row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", p.label, name)
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", p.label, name, s)
	}
	if v < 0 {
		return 0, fmt.Sprintf("%s: %s must not be negative", p.label, name)
	}
	if thousandsPattern.MatchString(s) {
		p.warnings = append(p.warnings, fmt.Sprintf("%s: Read %s '%s' as %g mm", p.label, name, s, v))
	}
	if v > 0 && v < minDimension {
		p.warnings = append(p.warnings, fmt.Sprintf("%s: %s %g mm is below %d mm, check the unit", p.label, name, v, minDimension))
	}
	return v, ""
}

// count parses an optional non-negative integer column; bad values become 0
// with a warning.
func (p *rowParser) count(idx int, name string) int {
	s := getCell(p.row, idx)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		p.warnings = append(p.warnings, fmt.Sprintf("%s: Invalid %s '%s', using 0", p.label, name, s))
		return 0
	}
	return n
}

// parseRow extracts a cabinet and its quantity from a row.
// It returns the cabinet, the quantity and an error message.
func (p *rowParser) parseRow(mapping ColumnMapping, index int) (model.CabinetSpec, int, string) {
	kindStr := getCell(p.row, mapping.Kind)
	if kindStr == "" {
		return model.CabinetSpec{}, 0, fmt.Sprintf("%s: Missing kind value", p.label)
	}
	kind, ok := ParseKind(kindStr)
	if !ok {
		return model.CabinetSpec{}, 0, fmt.Sprintf("%s: Unknown cabinet kind '%s'", p.label, kindStr)
	}

	height, msg := p.dimension(mapping.Height, "height")
	if msg != "" {
		return model.CabinetSpec{}, 0, msg
	}
	width, msg := p.dimension(mapping.Width, "width")
	if msg != "" {
		return model.CabinetSpec{}, 0, msg
	}
	var depth float64
	if kind != model.KindSidePanel || getCell(p.row, mapping.Depth) != "" {
		if depth, msg = p.dimension(mapping.Depth, "depth"); msg != "" {
			return model.CabinetSpec{}, 0, msg
		}
	}

	qty := 1
	if s := getCell(p.row, mapping.Quantity); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return model.CabinetSpec{}, 0, fmt.Sprintf("%s: Invalid quantity '%s'", p.label, s)
		}
		if n > maxQuantity {
			return model.CabinetSpec{}, 0, fmt.Sprintf("%s: Quantity %d exceeds the maximum of %d", p.label, n, maxQuantity)
		}
		qty = n
	}

	cab := model.NewCabinet(kind, height, width, depth)
	cab.Name = getCell(p.row, mapping.Name)
	if cab.Name == "" {
		cab.Name = fmt.Sprintf("%s %d", kind.Label(), index+1)
	}
	cab.Shelves = p.count(mapping.Shelves, "shelves")
	cab.Doors = p.count(mapping.Doors, "doors")
	cab.Drawers = p.count(mapping.Drawers, "drawers")
	cab.Dividers = p.count(mapping.Dividers, "dividers")
	cab.Appliances = p.count(mapping.Appliances, "appliances")

	if s := getCell(p.row, mapping.OpenFront); s != "" {
		if open, ok := parseBool(s); ok {
			cab.OpenFront = open
		} else {
			p.warnings = append(p.warnings, fmt.Sprintf("%s: Unknown open value '%s', assuming closed", p.label, s))
		}
	}

	if kind.IsFreeform() {
		cab.Faces = model.Faces{Left: true, Right: true, Bottom: true, Top: true, Back: true}
		cab.Complexity = model.ComplexityMedium
		if s := getCell(p.row, mapping.Complexity); s != "" {
			if tier, ok := parseComplexity(s); ok {
				cab.Complexity = tier
			} else {
				p.warnings = append(p.warnings, fmt.Sprintf("%s: Unknown complexity '%s', using %s", p.label, s, model.ComplexityMedium))
			}
		}
		if s := getCell(p.row, mapping.Material); s != "" {
			if id, err := strconv.Atoi(s); err == nil {
				cab.MaterialID = &id
			} else {
				p.warnings = append(p.warnings, fmt.Sprintf("%s: Material must be a catalog id, got '%s'", p.label, s))
			}
		}
	}

	return cab, qty, ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Import dispatches on the file extension.
func Import(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return ImportExcel(path)
	default:
		return ImportCSV(path)
	}
}

// ImportCSV imports cabinets from a CSV file, detecting the delimiter.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	var warnings []string
	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", warnings)
}

// ImportCSVFromReader imports cabinets from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	if len(records) == 0 {
		return ImportResult{Errors: []string{"File is empty"}}
	}
	return importFromRows(records, "Line", nil)
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// ImportExcel imports cabinets from the first sheet of an Excel file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		var missing []string
		if mapping.Kind == -1 {
			missing = append(missing, "Kind")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if _, ok := ParseKind(getCell(rows[0], mapping.Kind)); !ok {
		// Unrecognised header: skip it but keep the positional mapping.
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		p := rowParser{row: row, label: fmt.Sprintf("%s %d", rowPrefix, i+1)}
		cab, qty, errMsg := p.parseRow(mapping, len(result.Cabinets))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, p.warnings...)

		result.Cabinets = append(result.Cabinets, cab)
		for n := 1; n < qty; n++ {
			dup := cab
			dup.ID = model.NewCabinet(cab.Kind, 0, 0, 0).ID
			if cab.MaterialID != nil {
				id := *cab.MaterialID
				dup.MaterialID = &id
			}
			result.Cabinets = append(result.Cabinets, dup)
		}
	}

	return result
}
