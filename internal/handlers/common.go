package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Health reports liveness. Models are loaded before the server starts listening.
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":        "healthy",
		"timestamp":     time.Now().UTC(),
		"models_loaded": true,
	})
}

// Ready pings every configured dependency concurrently.
// @Summary Readiness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		checks = make(map[string]bool, len(h.checks))
	)
	for name, p := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Ping(ctx)
			if err != nil {
				h.logger.Warnw("Readiness check failed", "dependency", name, "error", err)
			}
			mu.Lock()
			checks[name] = err == nil
			mu.Unlock()
		}()
	}
	wg.Wait()

	allHealthy := true
	names := make([]string, 0, len(checks))
	for name, ok := range checks {
		names = append(names, name)
		allHealthy = allHealthy && ok
	}
	sort.Strings(names)

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":        allHealthy,
		"checks":       checks,
		"dependencies": names,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Errorw("Failed to encode response", "error", err)
	}
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message, "status": "error"})
}
