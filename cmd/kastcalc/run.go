package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/piwi3910/KastCalc/internal/engine"
	"github.com/piwi3910/KastCalc/internal/export"
	"github.com/piwi3910/KastCalc/internal/importer"
	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/piwi3910/KastCalc/internal/pricing"
	"github.com/piwi3910/KastCalc/internal/project"
)

type options struct {
	JobFile       string
	ImportFile    string
	Template      string
	Name          string
	ConfigFile    string
	ParamsFile    string
	PricesFile    string
	CatalogFile   string
	TemplatesFile string
	SaveFile      string
	SaveTemplate  string
	PDFOut        string
	LabelsOut     string
	XLSXOut       string
	DXFOut        string
	Format        string
	Compare       bool
	Debug         bool

	Init          bool
	ImportCatalog string
	RestoreFile   string
	BackupFile    string
	ListTemplates bool
}

// hasJob reports whether a job source was given.
func (o options) hasJob() bool {
	return o.JobFile != "" || o.ImportFile != "" || o.Template != ""
}

// maintenance reports whether a data management step was requested.
func (o options) maintenance() bool {
	return o.Init || o.ImportCatalog != "" || o.RestoreFile != "" || o.BackupFile != "" || o.ListTemplates
}

// dataPaths are the files kept in the data directory next to the config.
type dataPaths struct {
	config    string
	catalog   string
	params    string
	prices    string
	templates string
}

// inputs are the loaded files a calculation runs against.
type inputs struct {
	paths     dataPaths
	config    model.AppConfig
	catalog   model.Catalog
	params    model.ProductionParameters
	prices    pricing.PriceList
	templates model.TemplateStore
}

func resolvePaths(opts options, cfg model.AppConfig) dataPaths {
	paths := dataPaths{
		config:    project.DefaultConfigPath(),
		catalog:   project.DefaultCatalogPath(),
		templates: project.DefaultTemplatePath(),
	}
	if opts.ConfigFile != "" {
		dir := filepath.Dir(opts.ConfigFile)
		paths = dataPaths{
			config:    opts.ConfigFile,
			catalog:   filepath.Join(dir, "catalog.json"),
			templates: filepath.Join(dir, "templates.json"),
		}
	}
	dir := filepath.Dir(paths.config)
	paths.catalog = firstNonEmpty(opts.CatalogFile, cfg.CatalogFile, paths.catalog)
	paths.params = firstNonEmpty(opts.ParamsFile, cfg.ParamsFile, filepath.Join(dir, "params.yaml"))
	paths.prices = firstNonEmpty(opts.PricesFile, cfg.PricesFile, filepath.Join(dir, "prices.yaml"))
	paths.templates = firstNonEmpty(opts.TemplatesFile, paths.templates)
	return paths
}

func loadInputs(opts options) (inputs, error) {
	var in inputs
	configPath := firstNonEmpty(opts.ConfigFile, project.DefaultConfigPath())
	cfg, err := project.LoadAppConfig(configPath)
	if err != nil {
		return in, fmt.Errorf("load config: %w", err)
	}
	in.config = cfg
	in.paths = resolvePaths(opts, cfg)

	if in.catalog, err = project.LoadCatalog(in.paths.catalog); err != nil {
		return in, fmt.Errorf("load catalog: %w", err)
	}
	if in.params, err = project.LoadParams(in.paths.params); err != nil {
		return in, fmt.Errorf("load parameters: %w", err)
	}
	if in.prices, err = project.LoadPriceList(in.paths.prices); err != nil {
		return in, fmt.Errorf("load price list: %w", err)
	}
	if in.templates, err = project.LoadTemplates(in.paths.templates); err != nil {
		return in, fmt.Errorf("load templates: %w", err)
	}
	return in, nil
}

func loadJob(opts options, in inputs) (model.Job, error) {
	cfg := in.config
	if opts.JobFile != "" {
		job, err := project.LoadJob(opts.JobFile)
		if err != nil {
			return model.Job{}, fmt.Errorf("load job: %w", err)
		}
		return job, nil
	}

	if opts.Template != "" {
		tmpl := in.templates.FindByName(opts.Template)
		if tmpl == nil {
			tmpl = in.templates.FindByID(opts.Template)
		}
		if tmpl == nil {
			return model.Job{}, fmt.Errorf("template %q not found in %s", opts.Template, in.paths.templates)
		}
		log.Printf("new job from template %s", tmpl.Name)
		return tmpl.ToJob(firstNonEmpty(opts.Name, tmpl.Name)), nil
	}

	res := importer.Import(opts.ImportFile)
	for _, w := range res.Warnings {
		log.Printf("import warning: %s", w)
	}
	if len(res.Errors) > 0 {
		return model.Job{}, fmt.Errorf("import %s: %s", opts.ImportFile, strings.Join(res.Errors, "; "))
	}
	job := model.NewJob(firstNonEmpty(opts.Name, "Import"))
	cfg.ApplyToSettings(&job.Settings)
	for _, c := range res.Cabinets {
		job.AddCabinet(c)
	}
	log.Printf("imported %d cabinets from %s", len(res.Cabinets), opts.ImportFile)
	return job, nil
}

func run(opts options, out io.Writer) error {
	in, err := loadInputs(opts)
	if err != nil {
		return err
	}
	if err := maintain(opts, &in); err != nil {
		return err
	}
	if opts.ListTemplates {
		for _, name := range in.templates.Names() {
			fmt.Fprintln(out, name)
		}
	}
	if opts.hasJob() {
		if err := calculate(opts, &in, out); err != nil {
			return err
		}
	}
	if opts.BackupFile != "" {
		if err := project.ExportAllData(opts.BackupFile, in.config, in.catalog, in.templates); err != nil {
			return err
		}
		log.Printf("wrote backup to %s", opts.BackupFile)
	}
	return nil
}

func calculate(opts options, in *inputs, out io.Writer) error {
	job, err := loadJob(opts, *in)
	if err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	if opts.SaveFile != "" {
		if err := saveJob(opts.SaveFile, job, in); err != nil {
			return err
		}
	}
	if opts.SaveTemplate != "" {
		if err := saveTemplate(opts.SaveTemplate, job, in); err != nil {
			return err
		}
	}

	calc := engine.Calculate(job, in.catalog, &in.params)
	doc := export.Document{
		Job:         job,
		Catalog:     in.catalog,
		Calculation: calc,
		Quote:       pricing.Build(calc.Flat, calc.Labor, in.prices, job.Settings),
		CompanyName: in.config.CompanyName,
		Currency:    in.config.Currency,
	}

	if err := writeExports(opts, doc); err != nil {
		return err
	}

	var comparison []engine.ComparisonResult
	if opts.Compare {
		comparison = engine.CompareScenarios(engine.BuildDefaultScenarios(job.Settings), job, in.catalog, &in.params)
	}

	switch opts.Format {
	case "", "text":
		return writeText(out, doc, comparison, opts.Debug)
	case "json":
		return writeJSON(out, doc, comparison, opts.Debug)
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

func writeExports(opts options, doc export.Document) error {
	var errs []error
	step := func(path, what string, fn func() error) {
		if path == "" {
			return
		}
		if err := fn(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", what, err))
			return
		}
		log.Printf("wrote %s to %s", what, path)
	}

	step(opts.PDFOut, "quote", func() error { return export.ExportQuotePDF(opts.PDFOut, doc) })
	step(opts.LabelsOut, "labels", func() error { return export.ExportCabinetLabels(opts.LabelsOut, doc.Job, doc.Calculation) })
	step(opts.XLSXOut, "workbook", func() error { return export.ExportBOMWorkbook(opts.XLSXOut, doc) })
	step(opts.DXFOut, "elevations", func() error { return export.ExportElevationsDXF(opts.DXFOut, doc.Job) })
	return errors.Join(errs...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
