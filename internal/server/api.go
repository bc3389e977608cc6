package server

import (
	"net/http"
	"time"

	"antennacalc/internal/calc"
	"antennacalc/internal/metrics"
	"antennacalc/internal/models"
	"antennacalc/internal/units"
)

// HandleAPICalculate runs a calculator on a JSON input
func (s *Server) HandleAPICalculate(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseKind(r.PathValue("calculator"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "unknown calculator"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	start := time.Now()
	result, err := s.calculateJSON(kind, r.Body)
	s.observe(kind, err, start)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleAPIReport runs a calculator and stores its report bundle
func (s *Server) HandleAPIReport(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseKind(r.PathValue("calculator"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{"error": "unknown calculator"})
		return
	}
	u := units.ParseOr(r.URL.Query().Get("unit"), s.defaultUnit())

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	start := time.Now()
	result, err := s.calculateJSON(kind, r.Body)
	s.observe(kind, err, start)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	saved, err := s.Reports.Save(r.Context(), result, u)
	if err != nil {
		s.Metrics.ObserveReport(string(kind), metrics.OutcomeError)
		s.log.Error("Failed to store report", err, map[string]interface{}{"calculator": string(kind)})
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "failed to store report"})
		return
	}
	s.Metrics.ObserveReport(string(kind), metrics.OutcomeOK)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"folder": saved.Folder,
		"files":  saved.Files,
		"url":    "/files/" + saved.Folder + "/index.html",
	})
}

// HandleCatalog returns the coax component catalog grouped for selectors
func (s *Server) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"groups": s.Catalog.Groups(),
		"count":  len(s.Catalog.Components()),
	})
}

// HandleCoaxChart renders the feed-line loss of a JSON input as an ECharts page
func (s *Server) HandleCoaxChart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	start := time.Now()
	result, err := s.calculateJSON(models.KindCoax, r.Body)
	s.observe(models.KindCoax, err, start)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	page, err := s.Charts.CoaxLossEChart(result.(models.CoaxResult))
	if err != nil {
		writeCalcError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// HandleYagiChart renders the element layout of a JSON input as a PNG
func (s *Server) HandleYagiChart(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	start := time.Now()
	result, err := s.calculateJSON(models.KindYagi, r.Body)
	s.observe(models.KindYagi, err, start)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	png, err := s.Charts.YagiLayoutPNG(result.(models.YagiResult))
	if err != nil {
		writeCalcError(w, &calc.CalculationError{Err: err})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
