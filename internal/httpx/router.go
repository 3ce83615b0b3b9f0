package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/karthik1105235/admybrand-dashboard/internal/content"
	"github.com/karthik1105235/admybrand-dashboard/internal/metrics"
	"github.com/karthik1105235/admybrand-dashboard/internal/playback"
	"github.com/karthik1105235/admybrand-dashboard/internal/pricing"
	"github.com/karthik1105235/admybrand-dashboard/internal/theme"
	"github.com/karthik1105235/admybrand-dashboard/internal/utils"
	"github.com/karthik1105235/admybrand-dashboard/internal/window"
)

type handlers struct {
	log     *slog.Logger
	svc     *metrics.Service
	themes  *theme.Manager
	demo    *playback.Manager
	catalog *content.Catalog
}

func NewRouter(log *slog.Logger, svc *metrics.Service, themes *theme.Manager, demo *playback.Manager, catalog *content.Catalog) http.Handler {
	h := &handlers{log: log, svc: svc, themes: themes, demo: demo, catalog: catalog}

	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.Metrics)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Route("/api", func(api chi.Router) {
		api.Get("/dashboard", h.dashboard)
		api.Get("/dashboard/series", h.series)
		api.Get("/dashboard/traffic", h.traffic)
		api.Get("/dashboard/teams", h.teams)

		api.Get("/pricing/plans", h.plans)
		api.Post("/pricing/quote", h.quote)

		api.Get("/theme", h.getTheme)
		api.Post("/theme/toggle", h.toggleTheme)

		api.Get("/demo", h.demoInfo)
		api.Post("/demo/sessions", h.createSession)
		api.Route("/demo/sessions/{id}", func(s chi.Router) {
			s.Get("/", h.sessionState)
			s.Post("/pause", h.pauseSession)
			s.Post("/resume", h.resumeSession)
			s.Post("/seek", h.seekSession)
			s.Delete("/", h.closeSession)
			s.Get("/watch", h.watchSession)
		})

		api.Get("/resources", h.resources)
		api.Get("/resources/categories", h.resourceCategories)
	})

	return mux
}

func (h *handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	t := window.Parse(r.URL.Query().Get("range"))
	writeJSON(w, h.svc.Snapshot(t))
}

func (h *handlers) series(w http.ResponseWriter, r *http.Request) {
	t := window.Parse(r.URL.Query().Get("range"))
	writeJSON(w, h.svc.Series(t))
}

func (h *handlers) traffic(w http.ResponseWriter, r *http.Request) {
	t := window.Parse(r.URL.Query().Get("range"))
	writeJSON(w, h.svc.Traffic(t))
}

func (h *handlers) teams(w http.ResponseWriter, r *http.Request) {
	t := window.Parse(r.URL.Query().Get("range"))
	writeJSON(w, h.svc.Teams(t))
}

func (h *handlers) plans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"plans":   pricing.Plans(),
		"default": string(pricing.DefaultPlan),
	})
}

func (h *handlers) quote(w http.ResponseWriter, r *http.Request) {
	var in pricing.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad request body", 400)
		return
	}
	writeJSON(w, pricing.Quote(in))
}

func (h *handlers) getTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"theme": string(h.themes.Get())})
}

func (h *handlers) toggleTheme(w http.ResponseWriter, r *http.Request) {
	t, err := h.themes.Toggle()
	if err != nil {
		// the flip took effect in-process even if persisting failed
		h.log.Error("theme persist failed", slog.String("err", err.Error()))
	}
	writeJSON(w, map[string]string{"theme": string(t)})
}

func (h *handlers) demoInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"steps": playback.Steps,
		"stats": playback.Stats,
	})
}

func (h *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	writeJSONStatus(w, 201, h.demo.Create())
}

func (h *handlers) sessionState(w http.ResponseWriter, r *http.Request) {
	s, err := h.demo.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	writeJSON(w, s.State())
}

func (h *handlers) pauseSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.demo.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	s.Pause()
	writeJSON(w, s.State())
}

func (h *handlers) resumeSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.demo.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	s.Resume()
	writeJSON(w, s.State())
}

func (h *handlers) seekSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.demo.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	var body struct {
		Position int `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad request body", 400)
		return
	}
	s.Seek(body.Position)
	writeJSON(w, s.State())
}

func (h *handlers) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := h.demo.Close(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, playback.ErrNotFound) {
			http.Error(w, err.Error(), 404)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(204)
}

func (h *handlers) resources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, h.catalog.List(q.Get("category"), q.Get("q")))
}

func (h *handlers) resourceCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.catalog.Categories())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
