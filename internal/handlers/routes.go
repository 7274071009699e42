package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	_ "github.com/fightcast/predictor-api/docs"
)

// Routes builds the HTTP router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(PeerAddr)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestMetrics)
	if h.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-Cache"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.With(h.RateLimit).Post("/predict", h.Predict)

	r.Get("/fighters", h.ListFighters)
	r.Get("/fighters-by-weight-class/{weight_class}", h.FightersByWeightClass)
	r.Get("/fighter-weight-classes/{fighter_name}", h.FighterWeightClasses)
	r.Get("/weight-classes", h.WeightClasses)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/ready", h.Ready)
		r.With(h.CacheResponse(h.cfg.StatsCacheTTL)).Get("/stats", h.DatasetStats)
		r.With(h.CacheResponse(h.cfg.ResponseCacheTTL)).Get("/fighter/{fighter_name}", h.FighterProfile)
		r.With(h.CacheResponse(h.cfg.ResponseCacheTTL)).Get("/compare/{fighter1}/{fighter2}", h.CompareFighters)
		r.Get("/docs", h.APIDocs)
	})

	r.Get("/apispec.json", h.APISpec)
	r.Handle("/metrics", promhttp.Handler())

	if h.cfg.StaticDir != "" {
		r.Get("/*", h.Static(h.cfg.StaticDir))
	}
	return r
}

// APISpec serves the OpenAPI document.
func (h *Handler) APISpec(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.logger.Errorw("Failed to read API spec", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "API spec unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

const docsPage = `<!DOCTYPE html>
<html>
<head><title>Fight Predictor API</title><meta charset="utf-8"></head>
<body>
<redoc spec-url="/apispec.json"></redoc>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`

// APIDocs serves a browsable rendering of /apispec.json.
func (h *Handler) APIDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(docsPage))
}

// Static serves the frontend from dir, falling back to index.html for unknown paths.
func (h *Handler) Static(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		p := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+strings.TrimPrefix(r.URL.Path, "/"))))
		if info, err := os.Stat(p); err != nil || info.IsDir() {
			http.ServeFile(w, r, index)
			return
		}
		fs.ServeHTTP(w, r)
	}
}
