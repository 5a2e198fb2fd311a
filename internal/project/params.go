package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/piwi3910/KastCalc/internal/pricing"
	"gopkg.in/yaml.v3"
)

// isYAML reports whether the path names a YAML file.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// decodeFile decodes a JSON or YAML file over v. A missing file leaves v
// untouched and reports false.
func decodeFile(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if isYAML(path) {
		err = yaml.Unmarshal(data, v)
	} else {
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}

// encodeFile writes v as JSON or YAML depending on the extension.
func encodeFile(path string, v interface{}) error {
	if !isYAML(path) {
		return writeJSON(path, v)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadParams reads production parameters from a .json, .yaml or .yml file.
// Values absent from the file keep their defaults; a missing file or an
// empty path yields the defaults.
func LoadParams(path string) (model.ProductionParameters, error) {
	params := model.DefaultProductionParameters()
	if path == "" {
		return params, nil
	}
	if _, err := decodeFile(path, &params); err != nil {
		return model.DefaultProductionParameters(), err
	}
	if err := validateParams(params); err != nil {
		return model.DefaultProductionParameters(), fmt.Errorf("%s: %w", path, err)
	}
	return params, nil
}

// SaveParams writes production parameters as JSON or YAML.
func SaveParams(path string, params model.ProductionParameters) error {
	return encodeFile(path, params)
}

func validateParams(p model.ProductionParameters) error {
	switch p.ApplianceMode {
	case "", model.ApplianceModeRollup, model.ApplianceModeMontage:
	default:
		return fmt.Errorf("unknown appliance mode %q", p.ApplianceMode)
	}
	if p.EdgeBandingPerHour < 0 || p.PlatesPerHour < 0 || p.BaseMontageHours < 0 ||
		(p.PlacementPerCab != nil && *p.PlacementPerCab < 0) {
		return fmt.Errorf("production rates must not be negative")
	}
	if p.Transport != nil && *p.Transport < 0 {
		return fmt.Errorf("transport hours must not be negative")
	}
	return nil
}

// LoadPriceList reads a price list from a .json, .yaml or .yml file over
// the default prices. A missing file or an empty path yields the defaults.
func LoadPriceList(path string) (pricing.PriceList, error) {
	prices := pricing.DefaultPriceList()
	if path == "" {
		return prices, nil
	}
	if _, err := decodeFile(path, &prices); err != nil {
		return pricing.DefaultPriceList(), err
	}
	if err := prices.Validate(); err != nil {
		return pricing.DefaultPriceList(), fmt.Errorf("price list %s: %w", path, err)
	}
	return prices, nil
}

// SavePriceList writes a price list as JSON or YAML.
func SavePriceList(path string, prices pricing.PriceList) error {
	return encodeFile(path, prices)
}
