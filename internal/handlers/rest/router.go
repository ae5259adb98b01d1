// Package rest serves the forge over plain HTTP: health, metrics and a small
// JSON API for building items and rendering tooltips.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/metrics"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
	"github.com/KirkDiggler/itemforge/internal/tooltip"
)

const maxBodyBytes = 1 << 20

// Config holds dependencies for the HTTP router
type Config struct {
	ForgeService forge.Service
	// Gatherer backs /metrics; defaults to the global registry
	Gatherer prometheus.Gatherer
	// Metrics records request counts; optional
	Metrics *metrics.Metrics
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.ForgeService == nil {
		return errors.InvalidArgument("forge service is required")
	}
	return nil
}

type handler struct {
	forgeService forge.Service
}

// NewRouter builds the HTTP routes
func NewRouter(cfg *Config) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	h := &handler{forgeService: cfg.ForgeService}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cfg.Metrics.Middleware(routePattern))
	r.Use(loggingMiddleware)

	r.Get("/healthz", handleHealthz)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/items:build", h.handleBuildItem)
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.handleListTemplates)
			r.Get("/{id}", h.handleGetTemplate)
			r.Get("/{id}/tooltip", h.handleTooltip)
		})
	})

	return r, nil
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.DebugContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// BuildResponse is the body returned by POST /v1/items:build
type BuildResponse struct {
	Item    *itemdef.Item `json:"item"`
	Tooltip string        `json:"tooltip"`
}

func (h *handler) handleBuildItem(w http.ResponseWriter, r *http.Request) {
	var tmpl itemdef.Template
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tmpl); err != nil {
		writeError(w, r, errors.InvalidArgumentf("invalid template body: %v", err))
		return
	}

	output, err := h.forgeService.BuildTemplate(r.Context(), &forge.BuildTemplateInput{Template: &tmpl})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, BuildResponse{
		Item:    output.Item.Summary,
		Tooltip: tooltip.Text(output.Item.Stack, false),
	})
}

// ListResponse is the body returned by GET /v1/templates
type ListResponse struct {
	Templates     []*itemdef.Template `json:"templates"`
	NextPageToken string              `json:"next_page_token,omitempty"`
	TotalSize     int32               `json:"total_size"`
}

func (h *handler) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	input := &forge.ListTemplatesInput{PageToken: r.URL.Query().Get("page_token")}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, r, errors.InvalidArgumentf("invalid page_size %q", raw))
			return
		}
		input.PageSize = int32(size)
	}

	output, err := h.forgeService.ListTemplates(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Templates:     output.Templates,
		NextPageToken: output.NextPageToken,
		TotalSize:     output.TotalSize,
	})
}

func (h *handler) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	output, err := h.forgeService.GetTemplate(r.Context(), &forge.GetTemplateInput{
		TemplateID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Template)
}

func (h *handler) handleTooltip(w http.ResponseWriter, r *http.Request) {
	output, err := h.forgeService.BuildItem(r.Context(), &forge.BuildItemInput{
		TemplateID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	colour, _ := strconv.ParseBool(r.URL.Query().Get("colour"))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(tooltip.Text(output.Item.Stack, colour)))
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	body := ErrorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
	}
	if fields, ok := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string); ok {
		body.Fields = fields
	}

	if code == errors.CodeInternal {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		body.Message = "internal error"
	}

	writeJSON(w, code.HTTPStatus(), body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
