package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/KastCalc/internal/model"
)

// JobExtension is the file extension of saved jobs.
const JobExtension = ".kastcalc"

// SaveJob writes a job to a JSON file.
func SaveJob(path string, job model.Job) error {
	if err := writeJSON(path, job); err != nil {
		return fmt.Errorf("save job %s: %w", path, err)
	}
	return nil
}

// LoadJob reads a job from a JSON file. Settings missing from the file
// take the default job settings.
func LoadJob(path string) (model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Job{}, fmt.Errorf("read job: %w", err)
	}
	job := model.Job{Settings: model.DefaultJobSettings()}
	if err := json.Unmarshal(data, &job); err != nil {
		return model.Job{}, fmt.Errorf("parse job %s: %w", path, err)
	}
	if job.Cabinets == nil {
		job.Cabinets = []model.CabinetSpec{}
	}
	if job.Settings.Adjustments == nil {
		job.Settings.Adjustments = map[string]model.LineAdjustment{}
	}
	return job, nil
}
