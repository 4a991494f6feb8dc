// Package server exposes the scraper as a small web form and JSON API.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gstscan-backend/lib/scrapers/gstportal"
	"gstscan-backend/services/gstscan"
)

type Service struct {
	scanner *gstscan.Service
}

func New(scanner *gstscan.Service) Service {
	return Service{scanner: scanner}
}

func (s Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/scrape", s.handleScrapeForm)
	r.Post("/api/scrape", s.handleScrapeAPI)
	r.Get("/health", s.handleHealth)
	return r
}

func (s Service) handleIndex(w http.ResponseWriter, r *http.Request) {
	err := indexTemplate.Execute(w, indexData{
		Flash:    r.URL.Query().Get("flash"),
		DemoMode: s.scanner.Config().DemoMode,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "render index", "err", err)
	}
}

func redirectWithFlash(w http.ResponseWriter, r *http.Request, flash string) {
	http.Redirect(w, r, "/?flash="+url.QueryEscape(flash), http.StatusSeeOther)
}

func (s Service) handleScrapeForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := strings.TrimSpace(r.FormValue("gstin"))
	if id == "" {
		redirectWithFlash(w, r, "Please provide a GSTIN")
		return
	}

	slog.InfoContext(ctx, "form scrape request", "gstin", id)

	outcome := s.scanner.Scrape(ctx, id)
	if !outcome.OK() {
		slog.WarnContext(ctx, "form scrape failed",
			"gstin", id, "kind", outcome.Kind.String(), "err", outcome.Err)
		redirectWithFlash(w, r, "Failed to scrape GSTIN. Please try again.")
		return
	}

	paths, err := s.scanner.SaveResults([]gstportal.Record{*outcome.Record})
	if err != nil {
		slog.ErrorContext(ctx, "failed to save result", "gstin", id, "err", err)
	}

	err = resultTemplate.Execute(w, resultData{
		Record: *outcome.Record,
		Paths:  paths,
	})
	if err != nil {
		slog.ErrorContext(ctx, "render result", "err", err)
	}
}

type scrapeRequest struct {
	Gstin string `json:"gstin"`
}

type scrapeResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (s Service) handleScrapeAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, scrapeResponse{Error: "invalid request body"})
		return
	}
	id := strings.TrimSpace(req.Gstin)
	if id == "" {
		writeJSON(w, http.StatusBadRequest, scrapeResponse{Error: "gstin is required"})
		return
	}

	slog.InfoContext(ctx, "api scrape request", "gstin", id)

	outcome := s.scanner.Scrape(ctx, id)
	if !outcome.OK() {
		writeJSON(w, http.StatusInternalServerError, scrapeResponse{
			Error: "failed to scrape GSTIN",
		})
		return
	}

	writeJSON(w, http.StatusOK, scrapeResponse{
		Success: true,
		Data:    outcome.Record,
	})
}

func (s Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"demo_mode": s.scanner.Config().DemoMode,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}
