// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/okian/mingpan/internal/domain/chart"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Generate derives and stores a chart record for the given birth input.
	Generate(ctx context.Context, in chart.BirthInput) (chart.Record, error)

	// Read operations expose stored chart records.
	Chart(ctx context.Context, id string) (chart.Record, error)
	Recent(ctx context.Context, n int) ([]chart.Record, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	chartsHandler *ChartsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxRecentLimit int) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		chartsHandler: NewChartsHandler(deps, maxRecentLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/charts", MetricsMiddleware(s.chartsHandler.HandleCharts, "charts"))
	mux.HandleFunc("/charts/", MetricsMiddleware(s.chartsHandler.HandleGetChart, "chart"))
}

// chartRequest mirrors the OpenAPI schema for POST /charts.
type chartRequest struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
	IsLunar   bool   `json:"is_lunar"`
	BirthHour int    `json:"birth_hour"`
}

func (c chartRequest) validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return errors.New("missing name")
	case strings.TrimSpace(c.BirthDate) == "":
		return errors.New("missing birth_date")
	case c.Gender != string(chart.Male) && c.Gender != string(chart.Female):
		return errors.New("invalid gender; must be male or female")
	case c.BirthHour < 0 || c.BirthHour > 23:
		return errors.New("invalid birth_hour; must be 0-23")
	}
	if _, err := time.Parse("2006-01-02", c.BirthDate); err != nil {
		return errors.New("invalid birth_date; must be YYYY-MM-DD")
	}
	return nil
}

func (c chartRequest) toInput() chart.BirthInput {
	date, _ := time.Parse("2006-01-02", c.BirthDate)
	return chart.BirthInput{
		Name:      strings.TrimSpace(c.Name),
		Gender:    chart.Gender(c.Gender),
		BirthDate: date,
		IsLunar:   c.IsLunar,
		BirthHour: c.BirthHour,
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
