package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jusunglee/precinct-go/internal/chrome"
	"github.com/jusunglee/precinct-go/internal/format"
	"github.com/jusunglee/precinct-go/internal/models"
	"github.com/jusunglee/precinct-go/internal/report"
	"github.com/jusunglee/precinct-go/internal/views"
	"github.com/jusunglee/precinct-go/pkg/directory"
)

// Handler handles HTTP requests
type Handler struct {
	client   directory.Client
	renderer *views.Renderer
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// NewHandler creates a new HTTP handler
func NewHandler(client directory.Client, renderer *views.Renderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		client:   client,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// RegisterRoutes registers all routes. apiMiddleware wraps the /api subrouter only.
func (h *Handler) RegisterRoutes(r *mux.Router, apiMiddleware ...mux.MiddlewareFunc) {
	r.HandleFunc("/", h.handleIndex).Methods("GET")
	r.HandleFunc("/index.html", h.handleIndex).Methods("GET")
	r.HandleFunc("/partials/stations", h.handleResults).Methods("GET")
	r.HandleFunc("/station", h.handleStation).Methods("GET")
	r.HandleFunc("/station.html", h.handleStation).Methods("GET")
	r.HandleFunc("/report", h.handleReportForm).Methods("GET")
	r.HandleFunc("/report", h.handleReportSubmit).Methods("POST")
	r.HandleFunc("/banner", h.handleBanner).Methods("POST")
	r.HandleFunc("/health", h.handleHealth).Methods("GET")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", views.Static())).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(apiMiddleware...)
	api.HandleFunc("/stations", h.handleAPIStations).Methods("GET", "OPTIONS")
	api.HandleFunc("/stations/{id}", h.handleAPIStation).Methods("GET", "OPTIONS")
	api.HandleFunc("/report", h.handleAPIReport).Methods("POST", "OPTIONS")
}

// StationsResponse wraps a list of stations
type StationsResponse struct {
	Data  []models.StationResponse `json:"data"`
	Count int                      `json:"count"`
	Label string                   `json:"label"`
}

// StationResponse wraps a single station
type StationResponse struct {
	Data models.StationResponse `json:"data"`
}

// HealthResponse reports liveness and the dataset being served
type HealthResponse struct {
	Status   string `json:"status"`
	Site     string `json:"site"`
	Stations int    `json:"stations"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) chrome(r *http.Request) chrome.Chrome {
	return chrome.FromRequest(r, h.client.Site().BannerText, h.now())
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page := views.BuildDirectory(h.client.Site(), h.client.Search(query), query, h.chrome(r))
	h.render(w, views.PageDirectory, page)
}

func (h *Handler) handleResults(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page := views.BuildDirectory(h.client.Site(), h.client.Search(query), query, h.chrome(r))

	var buf bytes.Buffer
	if err := h.renderer.RenderResults(&buf, page); err != nil {
		h.logger.Errorw("failed to render station results", "error", err, "query", query)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *Handler) handleStation(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	station, ok := h.client.Station(id)
	if id == "" || !ok {
		h.logger.Debugw("station not found, redirecting to directory", "id", id)
		http.Redirect(w, r, views.NotFoundRedirect(), http.StatusFound)
		return
	}

	h.render(w, views.PageStation, views.BuildDetail(h.client.Site(), station, h.chrome(r)))
}

func (h *Handler) handleReportForm(w http.ResponseWriter, r *http.Request) {
	form := report.Form{}
	if id := r.URL.Query().Get("station"); id != "" {
		if _, ok := h.client.Station(id); ok {
			form.Station = id
		}
	}

	page := views.BuildReport(h.client.Site(), h.client.Stations(), report.Result{}, form, h.chrome(r))
	h.render(w, views.PageReport, page)
}

func (h *Handler) handleReportSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := report.Form{
		Details: r.PostFormValue("details"),
		Date:    r.PostFormValue("date"),
		Consent: r.PostFormValue("consent") != "",
		Station: r.PostFormValue("station"),
	}
	result := h.client.Validate(form)
	h.logger.Infow("report form validated", "ok", result.OK)

	page := views.BuildReport(h.client.Site(), h.client.Stations(), result, result.Form, h.chrome(r))
	h.render(w, views.PageReport, page)
}

func (h *Handler) handleBanner(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	banner := h.chrome(r).Banner
	switch r.PostFormValue("action") {
	case "dismiss":
		banner.Dismiss()
	case "toggle":
		banner.Toggle()
	default:
		http.Error(w, "Unknown banner action", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, banner.Cookie())
	http.Redirect(w, r, safeReturn(r.PostFormValue("return")), http.StatusSeeOther)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, HealthResponse{
		Status:   "ok",
		Site:     h.client.Site().Key,
		Stations: h.client.Count(),
	})
}

func (h *Handler) handleAPIStations(w http.ResponseWriter, r *http.Request) {
	stations := h.client.Search(r.URL.Query().Get("q"))

	data := make([]models.StationResponse, len(stations))
	for i := range stations {
		data[i] = stations[i].ConvertToResponse()
	}

	h.writeJSON(w, StationsResponse{
		Data:  data,
		Count: len(data),
		Label: format.CountLabel(len(data)),
	})
}

func (h *Handler) handleAPIStation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	station, ok := h.client.Station(id)
	if !ok {
		h.writeError(w, "station "+id+" not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, StationResponse{Data: station.ConvertToResponse()})
}

func (h *Handler) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	var form report.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.writeError(w, "Invalid report body", http.StatusBadRequest)
		return
	}

	result := h.client.Validate(form)
	h.logger.Infow("report validated", "ok", result.OK)
	h.writeJSON(w, result)
}

// render buffers the page so a template error never leaves a half-written response
func (h *Handler) render(w http.ResponseWriter, page string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page, data); err != nil {
		h.logger.Errorw("failed to render page", "page", page, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Errorw("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// safeReturn keeps banner redirects on this site
func safeReturn(path string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	return path
}
