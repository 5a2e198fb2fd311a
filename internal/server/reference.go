package server

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/piwi3910/KastCalc/internal/importer"
	"github.com/piwi3910/KastCalc/internal/model"
	"github.com/piwi3910/KastCalc/internal/pricing"
)

// LibraryResponse is the body returned by GET /api/library.
type LibraryResponse struct {
	Categories []string          `json:"categories"`
	Items      []model.ExtraItem `json:"items"`
}

// AppliancesResponse is the body returned by GET /api/appliances.
type AppliancesResponse struct {
	Types  []pricing.ApplianceType                    `json:"types"`
	Tiers  []model.ApplianceTier                      `json:"tiers"`
	Prices map[string]map[model.ApplianceTier]float64 `json:"prices"`
}

// handleMaterial looks a material up by catalog id or by name.
func (s *Server) handleMaterial(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	catalog := s.catalog
	var m *model.Material
	if id, err := strconv.Atoi(ref); err == nil {
		m = catalog.FindByID(id)
	} else {
		m = catalog.FindByName(ref)
	}
	if m == nil {
		http.Error(w, "material not found: "+ref, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// handlePresets returns the preset of every kind, keyed by kind.
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	presets := make(map[model.Kind]model.CabinetSpec, len(model.Kinds))
	for _, k := range model.Kinds {
		presets[k] = model.DefaultCabinet(k)
	}
	writeJSON(w, http.StatusOK, presets)
}

// handlePreset returns the preset of one kind. Import aliases such as
// "base" or "OK" are accepted.
func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "kind")
	kind, ok := importer.ParseKind(name)
	if !ok {
		http.Error(w, "unknown cabinet kind: "+name, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, model.DefaultCabinet(kind))
}

// handleLibrary searches the hardware library with ?q= and ?category=.
func (s *Server) handleLibrary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, LibraryResponse{
		Categories: pricing.LibraryCategories,
		Items:      s.prices.SearchLibrary(q.Get("q"), q.Get("category")),
	})
}

func (s *Server) handleAppliances(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AppliancesResponse{
		Types:  pricing.ApplianceTypes,
		Tiers:  model.ApplianceTiers,
		Prices: s.prices.AppliancePrices,
	})
}

// handleImport parses a CSV cabinet list from the request body. The
// delimiter is detected. Row errors are reported alongside the cabinets that
// did parse; a list without any cabinet is rejected.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		http.Error(w, "empty cabinet list", http.StatusBadRequest)
		return
	}
	res := importer.ImportCSVFromReader(bytes.NewReader(data), importer.DetectCSVDelimiter(data))
	status := http.StatusOK
	if len(res.Cabinets) == 0 {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, res)
}
