package model

import (
	"time"

	"github.com/google/uuid"
)

// JobTemplate is a reusable cabinet list with its settings.
type JobTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	Cabinets    []CabinetSpec `json:"cabinets"`
	Settings    JobSettings   `json:"settings"`
}

// NewJobTemplate creates a template from the given cabinets and settings.
// Manual line adjustments belong to one quote and are not copied.
func NewJobTemplate(name, description string, cabinets []CabinetSpec, settings JobSettings) JobTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	settings.Adjustments = nil
	return JobTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Cabinets:    copyCabinets(cabinets),
		Settings:    settings,
	}
}

// ToJob creates a new Job from this template.
// Cabinets get fresh IDs so they are independent of the template.
func (t JobTemplate) ToJob(name string) Job {
	job := NewJob(name)
	job.Settings = t.Settings
	for _, c := range t.Cabinets {
		c.ID = uuid.New().String()[:8]
		job.Cabinets = append(job.Cabinets, c)
	}
	return job
}

// TemplateStore holds a collection of job templates.
type TemplateStore struct {
	Templates []JobTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []JobTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t JobTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// copyCabinets creates a copy of a cabinet slice. Pointer fields are
// shared; they are never mutated in place.
func copyCabinets(cabinets []CabinetSpec) []CabinetSpec {
	if cabinets == nil {
		return []CabinetSpec{}
	}
	cp := make([]CabinetSpec, len(cabinets))
	copy(cp, cabinets)
	return cp
}
