package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/KastCalc/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultInteriorEfficiency = 80
	cfg.CompanyName = "Schrijnwerkerij Peeters"
	cfg.DefaultAltMaterials.UseBack = true
	cfg.RecentJobs = []string{"/tmp/keuken.kastcalc", "/tmp/badkamer.kastcalc"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultInteriorEfficiency != 80 {
		t.Errorf("expected interior efficiency 80, got %f", loaded.DefaultInteriorEfficiency)
	}
	if loaded.CompanyName != "Schrijnwerkerij Peeters" {
		t.Errorf("expected company name, got %q", loaded.CompanyName)
	}
	if !loaded.DefaultAltMaterials.UseBack {
		t.Error("expected UseBack to survive the round trip")
	}
	if len(loaded.RecentJobs) != 2 {
		t.Errorf("expected 2 recent jobs, got %d", len(loaded.RecentJobs))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("expected default currency EUR, got %q", cfg.Currency)
	}
	if cfg.RecentJobs == nil {
		t.Error("expected non-nil recent jobs")
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"company_name":"Test"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.CompanyName != "Test" {
		t.Errorf("expected company name Test, got %q", cfg.CompanyName)
	}
	if cfg.DefaultInteriorEfficiency != model.DefaultInteriorEfficiency {
		t.Errorf("expected default interior efficiency, got %f", cfg.DefaultInteriorEfficiency)
	}
	if cfg.MaxRecentJobs != 10 {
		t.Errorf("expected default max recent jobs, got %d", cfg.MaxRecentJobs)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected config.json, got %s", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != ".kastcalc" {
		t.Errorf("expected .kastcalc directory, got %s", filepath.Dir(path))
	}
}
