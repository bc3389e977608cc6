package server

import (
	"html/template"
	"net/http"
	"time"

	"antennacalc/internal/charts"
	"antennacalc/internal/coax"
	"antennacalc/internal/config"
	"antennacalc/internal/feeds"
	"antennacalc/internal/logger"
	"antennacalc/internal/metrics"
	"antennacalc/internal/reports"
	"antennacalc/internal/storage"
	"antennacalc/internal/units"
)

// Server represents the main application server
type Server struct {
	Config  *config.Config
	Storage storage.StorageClient
	Reports *reports.ReportService
	Catalog *coax.Catalog
	Feeds   *feeds.Fetcher
	Metrics *metrics.Collector
	Charts  *charts.ChartGenerator
	Version string

	pages *template.Template
	log   *logger.Logger
}

// NewServer creates a new server instance around an opened storage client
func NewServer(cfg *config.Config, store storage.StorageClient, collector *metrics.Collector) *Server {
	version := config.GetVersion()

	return &Server{
		Config:  cfg,
		Storage: store,
		Reports: reports.NewReportService(store, version),
		Catalog: coax.Default(),
		Feeds:   feeds.NewFetcher(cfg.FeedTimeout, 1),
		Metrics: collector,
		Charts:  charts.NewChartGenerator(),
		Version: version,
		pages:   pageTemplates,
		log:     logger.WithComponent("server"),
	}
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.HandleIndex)
	mux.HandleFunc("GET /{calculator}", s.HandleCalculatorPage)
	mux.HandleFunc("POST /{calculator}", s.HandleCalculatorPage)

	mux.HandleFunc("GET /api/coax/catalog", s.HandleCatalog)
	mux.HandleFunc("POST /api/coax/chart", s.HandleCoaxChart)
	mux.HandleFunc("POST /api/yagi/chart", s.HandleYagiChart)
	mux.HandleFunc("POST /api/{calculator}", s.HandleAPICalculate)
	mux.HandleFunc("POST /api/{calculator}/report", s.HandleAPIReport)

	mux.HandleFunc("GET /reports", s.HandleListReports)
	mux.HandleFunc("GET /files/{path...}", s.HandleFile)
	mux.HandleFunc("GET /health", s.HandleHealth)
	mux.Handle("GET /metrics", s.Metrics.Handler())

	return s.logRequests(mux)
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}

func (s *Server) defaultUnit() units.Unit {
	return units.ParseOr(s.Config.DefaultUnit, units.Default)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.log.Debug("Request handled", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}
