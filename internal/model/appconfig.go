package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new jobs
	DefaultInteriorEfficiency float64      `json:"default_interior_efficiency"`
	DefaultExteriorEfficiency float64      `json:"default_exterior_efficiency"`
	DefaultSelections         Selections   `json:"default_selections"`
	DefaultAltMaterials       AltMaterials `json:"default_alt_materials"`

	// Application preferences
	Currency      string   `json:"currency"`
	CompanyName   string   `json:"company_name"`
	ParamsFile    string   `json:"params_file"`  // Production parameters, "" = built-in defaults
	CatalogFile   string   `json:"catalog_file"` // Material catalog, "" = built-in defaults
	PricesFile    string   `json:"prices_file,omitempty"`
	RecentJobs    []string `json:"recent_jobs"`
	MaxRecentJobs int      `json:"max_recent_jobs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultJobSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultJobSettings()
	return AppConfig{
		DefaultInteriorEfficiency: defaults.InteriorEfficiency,
		DefaultExteriorEfficiency: defaults.ExteriorEfficiency,
		DefaultSelections:         defaults.Selections,
		DefaultAltMaterials:       defaults.Alt,
		Currency:                  "EUR",
		RecentJobs:                []string{},
		MaxRecentJobs:             10,
	}
}

// ApplyToSettings copies the default values from AppConfig into a JobSettings struct.
// This is used when creating a new job so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *JobSettings) {
	s.InteriorEfficiency = c.DefaultInteriorEfficiency
	s.ExteriorEfficiency = c.DefaultExteriorEfficiency
	s.Selections = c.DefaultSelections
	s.Alt = c.DefaultAltMaterials
}

// AddRecentJob moves path to the front of the recent list and trims it.
func (c *AppConfig) AddRecentJob(path string) {
	list := []string{path}
	for _, p := range c.RecentJobs {
		if p != path {
			list = append(list, p)
		}
	}
	limit := c.MaxRecentJobs
	if limit <= 0 {
		limit = 10
	}
	if len(list) > limit {
		list = list[:limit]
	}
	c.RecentJobs = list
}
