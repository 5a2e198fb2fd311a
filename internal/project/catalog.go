package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/KastCalc/internal/model"
)

// DefaultCatalogPath returns the default file path for the material catalog.
// This is located at ~/.kastcalc/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
func SaveCatalog(path string, catalog model.Catalog) error {
	return writeJSON(path, catalog)
}

// LoadCatalog reads the catalog from the specified JSON file. A missing
// file or an empty path yields the default catalog.
func LoadCatalog(path string) (model.Catalog, error) {
	if path == "" {
		return model.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultCatalog(), nil
		}
		return model.Catalog{}, err
	}
	var catalog model.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ImportCatalog merges the catalog in path into existing. Materials whose
// id is already present are skipped, per list.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	existing.Materials = mergeMaterials(existing.Materials, imported.Materials)
	existing.Interior = mergeMaterials(existing.Interior, imported.Interior)
	existing.Exterior = mergeMaterials(existing.Exterior, imported.Exterior)
	existing.Tablet = mergeMaterials(existing.Tablet, imported.Tablet)
	return existing, nil
}

func mergeMaterials(into, from []model.Material) []model.Material {
	ids := make(map[int]bool, len(into))
	for _, m := range into {
		ids[m.ID] = true
	}
	for _, m := range from {
		if !ids[m.ID] {
			into = append(into, m)
			ids[m.ID] = true
		}
	}
	return into
}
