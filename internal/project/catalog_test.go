package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.json")} {
		cat, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultCatalog(), cat)
	}
}

func TestSaveAndLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	cat := model.DefaultCatalog()
	cat.Materials = append(cat.Materials, model.Material{ID: 200, Name: "Eik fineer", Width: 2500, Height: 1220, PricePerM2: 55})

	require.NoError(t, SaveCatalog(path, cat))
	loaded, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, cat, loaded)
	require.NotNil(t, loaded.FindByID(200))
	assert.Equal(t, "Eik fineer", loaded.FindByID(200).Name)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))
	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestImportCatalog_SkipsDuplicateIDs(t *testing.T) {
	existing := model.DefaultCatalog()
	incoming := model.Catalog{
		Materials: []model.Material{
			{ID: 101, Name: "M18 Wit (dup)"},
			{ID: 300, Name: "HPL Antraciet", Width: 3050, Height: 1300, PricePerM2: 60},
		},
		Tablet: []model.Material{
			{ID: 300, Name: "HPL Antraciet", Width: 3050, Height: 1300, PricePerM2: 60},
		},
	}
	path := filepath.Join(t.TempDir(), "extra.json")
	require.NoError(t, SaveCatalog(path, incoming))

	merged, err := ImportCatalog(path, existing)
	require.NoError(t, err)

	assert.Len(t, merged.Materials, len(existing.Materials)+1)
	assert.Equal(t, "M18 Wit", merged.FindByID(101).Name)
	assert.Equal(t, "HPL Antraciet", merged.Tablet[len(merged.Tablet)-1].Name)
	assert.Equal(t, len(existing.Interior), len(merged.Interior))
}

func TestImportCatalog_MissingFile(t *testing.T) {
	existing := model.DefaultCatalog()
	merged, err := ImportCatalog(filepath.Join(t.TempDir(), "nope.json"), existing)
	assert.Error(t, err)
	assert.Equal(t, existing, merged)
}
