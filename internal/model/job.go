package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNoCabinets is returned when a job without cabinets is validated.
var ErrNoCabinets = errors.New("job has no cabinets")

// Selections are the positions of the selected material in each category list.
type Selections struct {
	Interior int `json:"interior"`
	Exterior int `json:"exterior"`
	Tablet   int `json:"tablet"`
}

// AltMaterials reroutes backs and shelves to their own interior-list material.
type AltMaterials struct {
	UseBack       bool `json:"use_back"`
	BackMaterial  int  `json:"back_material"`
	UseShelf      bool `json:"use_shelf"`
	ShelfMaterial int  `json:"shelf_material"`
}

// LineAdjustment is a manual correction on one quote line.
type LineAdjustment struct {
	Extra    float64  `json:"extra,omitempty"`    // Added to the computed quantity
	Override *float64 `json:"override,omitempty"` // Replaces the unit price
}

// JobSettings are the per-job calculation inputs besides the cabinets.
type JobSettings struct {
	InteriorEfficiency float64                   `json:"interior_efficiency"` // percent
	ExteriorEfficiency float64                   `json:"exterior_efficiency"` // percent
	Selections         Selections                `json:"selections"`
	Alt                AltMaterials              `json:"alt_materials"`
	Adjustments        map[string]LineAdjustment `json:"adjustments,omitempty"` // Keyed by quote line code
	Extras             []ExtraItem               `json:"extras,omitempty"`
	Appliances         []ApplianceSelection      `json:"appliances,omitempty"`
}

// DefaultJobSettings returns the settings a fresh job starts from.
func DefaultJobSettings() JobSettings {
	return JobSettings{
		InteriorEfficiency: DefaultInteriorEfficiency,
		ExteriorEfficiency: DefaultExteriorEfficiency,
	}
}

// WasteFactors derives the waste factors from the efficiencies.
func (s JobSettings) WasteFactors() WasteFactors {
	return NewWasteFactors(s.InteriorEfficiency, s.ExteriorEfficiency)
}

// Job ties a cabinet list and its settings together for save/load.
type Job struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Customer  string        `json:"customer,omitempty"`
	CreatedAt string        `json:"created_at"`
	Cabinets  []CabinetSpec `json:"cabinets"`
	Settings  JobSettings   `json:"settings"`
}

// NewJob creates an empty job with default settings.
func NewJob(name string) Job {
	if name == "" {
		name = "Untitled"
	}
	return Job{
		ID:        uuid.New().String()[:8],
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Cabinets:  []CabinetSpec{},
		Settings:  DefaultJobSettings(),
	}
}

// AddCabinet appends a cabinet, assigning an ID when it has none.
func (j *Job) AddCabinet(c CabinetSpec) {
	if c.ID == "" {
		c.ID = uuid.New().String()[:8]
	}
	j.Cabinets = append(j.Cabinets, c)
}

// RemoveCabinet removes a cabinet by ID. Returns true if found and removed.
func (j *Job) RemoveCabinet(id string) bool {
	for i, c := range j.Cabinets {
		if c.ID == id {
			j.Cabinets = append(j.Cabinets[:i], j.Cabinets[i+1:]...)
			return true
		}
	}
	return false
}

// Counts returns the number of cabinets and the number of side panels.
func (j Job) Counts() (cabinets, sidePanels int) {
	for _, c := range j.Cabinets {
		if _, ok := c.Variant().(SidePanel); ok {
			sidePanels++
		}
	}
	return len(j.Cabinets), sidePanels
}

// Validate checks the job for inputs the calculation would silently replace.
func (j Job) Validate() error {
	if len(j.Cabinets) == 0 {
		return ErrNoCabinets
	}
	if err := ValidateEfficiency(j.Settings.InteriorEfficiency); err != nil {
		return fmt.Errorf("interior: %w", err)
	}
	if err := ValidateEfficiency(j.Settings.ExteriorEfficiency); err != nil {
		return fmt.Errorf("exterior: %w", err)
	}
	for i, c := range j.Cabinets {
		if c.Height < 0 || c.Width < 0 || c.Depth < 0 {
			return fmt.Errorf("cabinet %d (%s): negative dimension", i+1, c.Kind)
		}
		if c.Shelves < 0 || c.Dividers < 0 || c.Drawers < 0 || c.Doors < 0 || c.Appliances < 0 {
			return fmt.Errorf("cabinet %d (%s): negative count", i+1, c.Kind)
		}
	}
	return validateExtras(j.Settings.Extras, j.Settings.Appliances)
}
