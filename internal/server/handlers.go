package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"antennacalc/internal/models"
	"antennacalc/internal/storage"
)

const (
	defaultReportLimit = 10
	maxReportLimit     = 100
	indexArticles      = 5
)

// HandleIndex serves the calculator list with recent blog articles
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	articles, err := s.Feeds.Recent(r.Context(), s.Config.BlogFeedURL, indexArticles)
	if err != nil {
		s.log.Warn("Failed to fetch blog feed", map[string]interface{}{
			"url":   s.Config.BlogFeedURL,
			"error": err.Error(),
		})
	}

	s.render(w, http.StatusOK, "index", PageData{
		Title:    "Antenna Calculators",
		Nav:      navItems(""),
		Articles: articles,
		Version:  s.Version,
	})
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"config":  "ok",
		"storage": s.Config.StorageMode,
		"catalog": strconv.Itoa(len(s.Catalog.Components())) + " components",
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"version":   s.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}

// HandleListReports lists recent reports
func (s *Server) HandleListReports(w http.ResponseWriter, r *http.Request) {
	limit := defaultReportLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
		if limit > maxReportLimit {
			limit = maxReportLimit
		}
	}

	list, err := s.Storage.ListReports(r.Context(), limit)
	if err != nil {
		s.log.Error("Failed to list reports", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error": "failed to list reports",
		})
		return
	}
	if list == nil {
		list = []storage.ReportInfo{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reports":   list,
		"count":     len(list),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleFile serves a stored report file
func (s *Server) HandleFile(w http.ResponseWriter, r *http.Request) {
	filePath, err := storage.CleanPath(r.PathValue("path"))
	if err != nil {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	data, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		s.log.Error("Failed to get file from storage", err, map[string]interface{}{"path": filePath})
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Write(data)
}

func navItems(active models.Kind) []NavItem {
	items := make([]NavItem, 0, len(models.Kinds))
	for _, k := range models.Kinds {
		items = append(items, NavItem{Kind: k, Title: k.Title(), Path: "/" + string(k), Active: k == active})
	}
	return items
}
