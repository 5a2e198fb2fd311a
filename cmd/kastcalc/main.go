// KastCalc estimates sheet material, hardware and labor for a cabinet job.
//
// Usage:
//
//	kastcalc -job keuken.kastcalc -pdf offerte.pdf
//	kastcalc -import kasten.csv -name "Keuken Janssens" -xlsx bom.xlsx -format json
//	kastcalc -template "Standaard keuken" -name "Keuken Peeters" -save peeters.kastcalc
//	kastcalc -init -import-catalog leverancier.json -backup backup.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	var (
		jobFile       = flag.String("job", "", "Path to a saved job (.kastcalc or .json)")
		importFile    = flag.String("import", "", "Path to a cabinet list (.csv or .xlsx)")
		template      = flag.String("template", "", "Start a new job from the template with this name or id")
		name          = flag.String("name", "", "Job name for imported or templated jobs")
		configFile    = flag.String("config", "", "Path to the app config (default ~/.kastcalc/config.json)")
		paramsFile    = flag.String("params", "", "Production parameters (.json, .yaml or .yml)")
		pricesFile    = flag.String("prices", "", "Price list (.json, .yaml or .yml)")
		catalogFile   = flag.String("catalog", "", "Material catalog (.json)")
		templatesFile = flag.String("templates", "", "Template store (default templates.json next to the config)")
		saveFile      = flag.String("save", "", "Save the job to this path and add it to the recent jobs")
		saveTemplate  = flag.String("save-template", "", "Save the job's cabinets and settings as a template")
		pdfOut        = flag.String("pdf", "", "Write the quote PDF to this path")
		labelsOut     = flag.String("labels", "", "Write the cabinet label PDF to this path")
		xlsxOut       = flag.String("xlsx", "", "Write the bill of materials workbook to this path")
		dxfOut        = flag.String("dxf", "", "Write the front elevations DXF to this path")
		format        = flag.String("format", "text", "Summary format: text, json")
		compare       = flag.Bool("compare", false, "Compare the default what-if scenarios")
		debug         = flag.Bool("debug", false, "Print the per-cabinet table")
		initData      = flag.Bool("init", false, "Write the default config, catalog, parameters, prices and templates where missing")
		importCatalog = flag.String("import-catalog", "", "Merge the materials of this catalog into the catalog file")
		restoreFile   = flag.String("restore", "", "Restore config, catalog and templates from a backup")
		backupFile    = flag.String("backup", "", "Write config, catalog and templates to a backup file")
		listTemplates = flag.Bool("list-templates", false, "Print the template names")
	)
	flag.Parse()

	opts := options{
		JobFile:       *jobFile,
		ImportFile:    *importFile,
		Template:      *template,
		Name:          *name,
		ConfigFile:    *configFile,
		ParamsFile:    *paramsFile,
		PricesFile:    *pricesFile,
		CatalogFile:   *catalogFile,
		TemplatesFile: *templatesFile,
		SaveFile:      *saveFile,
		SaveTemplate:  *saveTemplate,
		PDFOut:        *pdfOut,
		LabelsOut:     *labelsOut,
		XLSXOut:       *xlsxOut,
		DXFOut:        *dxfOut,
		Format:        *format,
		Compare:       *compare,
		Debug:         *debug,
		Init:          *initData,
		ImportCatalog: *importCatalog,
		RestoreFile:   *restoreFile,
		BackupFile:    *backupFile,
		ListTemplates: *listTemplates,
	}

	if !opts.hasJob() && !opts.maintenance() {
		fmt.Fprintln(os.Stderr, "kastcalc: one of -job, -import or -template is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("kastcalc: %v", err)
	}
}
