package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/piwi3910/KastCalc/internal/project"
)

// maintain runs the requested data management steps in order: restore,
// catalog import, then init.
func maintain(opts options, in *inputs) error {
	if opts.RestoreFile != "" {
		if err := restore(opts.RestoreFile, in); err != nil {
			return err
		}
	}
	if opts.ImportCatalog != "" {
		before := len(in.catalog.Materials)
		merged, err := project.ImportCatalog(opts.ImportCatalog, in.catalog)
		if err != nil {
			return fmt.Errorf("import catalog: %w", err)
		}
		in.catalog = merged
		if err := project.SaveCatalog(in.paths.catalog, merged); err != nil {
			return fmt.Errorf("save catalog: %w", err)
		}
		log.Printf("imported %d materials into %s", len(merged.Materials)-before, in.paths.catalog)
	}
	if opts.Init {
		return initDataDir(in)
	}
	return nil
}

func restore(path string, in *inputs) error {
	backup, err := project.ImportAllData(path)
	if err != nil {
		return err
	}
	in.config = backup.Config
	in.catalog = backup.Catalog
	in.templates = backup.Templates

	if err := errors.Join(
		project.SaveAppConfig(in.paths.config, in.config),
		project.SaveCatalog(in.paths.catalog, in.catalog),
		project.SaveTemplates(in.paths.templates, in.templates),
	); err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	log.Printf("restored backup from %s (version %s, %s)", path, backup.Version, backup.CreatedAt)
	return nil
}

// initDataDir writes the loaded settings to every data file that does not
// exist yet, so they can be edited by hand.
func initDataDir(in *inputs) error {
	steps := []struct {
		path  string
		write func(string) error
	}{
		{in.paths.catalog, func(p string) error { return project.SaveCatalog(p, in.catalog) }},
		{in.paths.params, func(p string) error { return project.SaveParams(p, in.params) }},
		{in.paths.prices, func(p string) error { return project.SavePriceList(p, in.prices) }},
		{in.paths.templates, func(p string) error { return project.SaveTemplates(p, in.templates) }},
		{in.paths.config, func(p string) error { return project.SaveAppConfig(p, in.config) }},
	}
	for _, step := range steps {
		if _, err := os.Stat(step.path); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := step.write(step.path); err != nil {
			return fmt.Errorf("init %s: %w", step.path, err)
		}
		log.Printf("created %s", step.path)
	}
	return nil
}

// saveJob writes the job and records it in the recent jobs list.
func saveJob(path string, job model.Job, in *inputs) error {
	if err := project.SaveJob(path, job); err != nil {
		return fmt.Errorf("save job: %w", err)
	}
	log.Printf("saved job to %s", path)

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	in.config.AddRecentJob(path)
	if err := project.SaveAppConfig(in.paths.config, in.config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// saveTemplate stores the job's cabinets and settings under name, replacing
// a template with the same name.
func saveTemplate(name string, job model.Job, in *inputs) error {
	if existing := in.templates.FindByName(name); existing != nil {
		in.templates.Remove(existing.ID)
	}
	in.templates.Add(model.NewJobTemplate(name, "From job "+job.Name, job.Cabinets, job.Settings))
	if err := project.SaveTemplates(in.paths.templates, in.templates); err != nil {
		return fmt.Errorf("save template: %w", err)
	}
	log.Printf("saved template %s to %s", name, in.paths.templates)
	return nil
}
