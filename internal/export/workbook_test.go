package export

import (
	"bytes"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportBOMWorkbook(t *testing.T) {
	doc := buildTestDocument()
	path := filepath.Join(t.TempDir(), "bom.xlsx")

	require.NoError(t, ExportBOMWorkbook(path, doc))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetCabinets, SheetPlates, SheetHardware, SheetQuote}, f.GetSheetList())

	cabinets, err := f.GetRows(SheetCabinets)
	require.NoError(t, err)
	require.Len(t, cabinets, len(doc.Job.Cabinets)+1, "header plus one row per cabinet")
	assert.Equal(t, "#", cabinets[0][0])
	assert.Equal(t, "Spoelkast", cabinets[1][1])
	assert.Equal(t, string(model.KindBase), cabinets[1][2])

	plates, err := f.GetRows(SheetPlates)
	require.NoError(t, err)
	var total string
	for _, row := range plates {
		if len(row) > 0 && row[0] == "total" {
			total = row[len(row)-1]
		}
	}
	assert.Equal(t, strconv.Itoa(doc.Calculation.Flat.Plates.Total()), total)

	quote, err := f.GetRows(SheetQuote)
	require.NoError(t, err)
	assert.Len(t, quote, 1+len(doc.Quote.Lines)+3)
}

func TestExportBOMWorkbook_HardwareCounts(t *testing.T) {
	doc := buildTestDocument()
	var buf bytes.Buffer
	require.NoError(t, WriteBOMWorkbook(&buf, doc))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	hinges, err := f.GetCellValue(SheetHardware, "B4")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(doc.Calculation.Flat.Hinges), hinges)
}

func TestExportBOMWorkbook_NoCabinets(t *testing.T) {
	err := ExportBOMWorkbook(filepath.Join(t.TempDir(), "x.xlsx"), Document{Job: model.NewJob("Leeg")})
	assert.ErrorIs(t, err, model.ErrNoCabinets)
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 1.235, round3(1.23456))
	assert.Equal(t, 0.0, round3(0.0004))
}
