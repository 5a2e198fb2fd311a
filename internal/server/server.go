// Package server exposes the calculation pipeline as an HTTP JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/piwi3910/KastCalc/internal/engine"
	"github.com/piwi3910/KastCalc/internal/export"
	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/piwi3910/KastCalc/internal/pricing"
)

// maxBodyBytes caps request bodies; a job with a few hundred cabinets stays
// well below it.
const maxBodyBytes = 4 << 20

// Server holds the read-only inputs every request is calculated against.
type Server struct {
	catalog  model.Catalog
	params   model.ProductionParameters
	prices   pricing.PriceList
	config   model.AppConfig
	defaults model.JobSettings
}

// New creates a server. The values are copied and never modified afterwards,
// so handlers may run concurrently.
func New(catalog model.Catalog, params model.ProductionParameters, prices pricing.PriceList, config model.AppConfig) *Server {
	defaults := model.DefaultJobSettings()
	if config.DefaultInteriorEfficiency > 0 && config.DefaultExteriorEfficiency > 0 {
		config.ApplyToSettings(&defaults)
	}
	return &Server{catalog: catalog, params: params, prices: prices, config: config, defaults: defaults}
}

// Router returns the HTTP handler with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/materials/{ref}", s.handleMaterial)
		r.Get("/presets", s.handlePresets)
		r.Get("/presets/{kind}", s.handlePreset)
		r.Get("/params", s.handleParams)
		r.Get("/prices", s.handlePrices)
		r.Get("/library", s.handleLibrary)
		r.Get("/appliances", s.handleAppliances)
		r.Post("/import", s.handleImport)
		r.Post("/calculate", s.handleCalculate)
		r.Post("/compare", s.handleCompare)
		r.Post("/debug", s.handleDebug)
		r.Post("/quote.pdf", s.handleQuotePDF)
		r.Post("/bom.xlsx", s.handleBOMWorkbook)
	})
	return r
}

// CalculateResponse is the body returned by POST /api/calculate.
type CalculateResponse struct {
	Calculation engine.Calculation `json:"calculation"`
	Quote       pricing.Quote      `json:"quote"`
}

// ScenarioSummary is one row of POST /api/compare.
type ScenarioSummary struct {
	Name        string            `json:"name"`
	Settings    model.JobSettings `json:"settings"`
	TotalPlates int               `json:"total_plates"`
	LaborHours  float64           `json:"labor_hours"`
	Warnings    int               `json:"warnings"`
	Total       string            `json:"total"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCatalog returns the catalog, or with ?for=<category> the unified
// material list with the materials popular for that category first.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("for")
	if category == "" {
		writeJSON(w, http.StatusOK, s.catalog)
		return
	}
	switch cat := model.MaterialCategory(category); cat {
	case model.MaterialInterior, model.MaterialExterior, model.MaterialTablet:
		writeJSON(w, http.StatusOK, s.catalog.SortedFor(cat))
	default:
		http.Error(w, fmt.Sprintf("unknown material category %q", category), http.StatusBadRequest)
	}
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.params)
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.prices)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	job, ok := s.decodeJob(w, r)
	if !ok {
		return
	}
	doc := s.document(job)
	writeJSON(w, http.StatusOK, CalculateResponse{Calculation: doc.Calculation, Quote: doc.Quote})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	job, ok := s.decodeJob(w, r)
	if !ok {
		return
	}
	params := s.params
	results := engine.CompareScenarios(engine.BuildDefaultScenarios(job.Settings), job, s.catalog, &params)

	summaries := make([]ScenarioSummary, 0, len(results))
	for _, res := range results {
		quote := pricing.Build(res.Calculation.Flat, res.Calculation.Labor, s.prices, res.Scenario.Settings)
		summaries = append(summaries, ScenarioSummary{
			Name:        res.Scenario.Name,
			Settings:    res.Scenario.Settings,
			TotalPlates: res.TotalPlates,
			LaborHours:  res.LaborHours,
			Warnings:    res.Warnings,
			Total:       quote.Total.StringFixed(2),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	job, ok := s.decodeJob(w, r)
	if !ok {
		return
	}
	doc := s.document(job)
	writeJSON(w, http.StatusOK, engine.DebugRows(doc.Calculation, s.catalog))
}

func (s *Server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	job, ok := s.decodeJob(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", attachment(job, "pdf"))
	if err := export.WriteQuotePDF(w, s.document(job)); err != nil {
		log.Printf("render quote pdf: %v", err)
		http.Error(w, "failed to render quote", http.StatusInternalServerError)
	}
}

func (s *Server) handleBOMWorkbook(w http.ResponseWriter, r *http.Request) {
	job, ok := s.decodeJob(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachment(job, "xlsx"))
	if err := export.WriteBOMWorkbook(w, s.document(job)); err != nil {
		log.Printf("render workbook: %v", err)
		http.Error(w, "failed to render workbook", http.StatusInternalServerError)
	}
}

// decodeJob reads a job from the request body over the default settings and
// validates it. On failure the error response is already written.
func (s *Server) decodeJob(w http.ResponseWriter, r *http.Request) (model.Job, bool) {
	job := model.Job{Settings: s.defaults}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&job); err != nil {
		http.Error(w, "invalid job: "+err.Error(), http.StatusBadRequest)
		return model.Job{}, false
	}
	if err := job.Validate(); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, model.ErrNoCabinets) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return model.Job{}, false
	}
	return job, true
}

func (s *Server) document(job model.Job) export.Document {
	params := s.params
	calc := engine.Calculate(job, s.catalog, &params)
	return export.Document{
		Job:         job,
		Catalog:     s.catalog,
		Calculation: calc,
		Quote:       pricing.Build(calc.Flat, calc.Labor, s.prices, job.Settings),
		CompanyName: s.config.CompanyName,
		Currency:    s.config.Currency,
	}
}

func attachment(job model.Job, ext string) string {
	name := job.Name
	if name == "" {
		name = "quote"
	}
	return fmt.Sprintf("attachment; filename=%q", name+"."+ext)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
