package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fightcast/predictor-api/internal/logic"
)

// ListFighters returns all fighter names, optionally filtered by weight class
// @Summary List fighters
// @Tags Fighters
// @Produce json
// @Param weight_class query string false "Weight class filter; All disables filtering"
// @Success 200 {object} map[string][]string
// @Router /fighters [get]
func (h *Handler) ListFighters(w http.ResponseWriter, r *http.Request) {
	weightClass := r.URL.Query().Get("weight_class")

	fighters, err := h.fighters.ListFighters(r.Context(), weightClass)
	if err != nil {
		h.logger.Errorw("Failed to list fighters", "error", err, "weight_class", weightClass)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list fighters")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"fighters": fighters})
}

// FightersByWeightClass returns the fighters who competed in one weight class
// @Summary Fighters by weight class
// @Tags Fighters
// @Produce json
// @Param weight_class path string true "Weight class"
// @Success 200 {object} map[string]interface{}
// @Router /fighters-by-weight-class/{weight_class} [get]
func (h *Handler) FightersByWeightClass(w http.ResponseWriter, r *http.Request) {
	weightClass := chi.URLParam(r, "weight_class")

	fighters, err := h.fighters.ListFighters(r.Context(), weightClass)
	if err != nil {
		h.logger.Errorw("Failed to list fighters", "error", err, "weight_class", weightClass)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list fighters")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"weight_class": weightClass,
		"fighters":     fighters,
		"count":        len(fighters),
	})
}

// FighterWeightClasses returns every weight class a fighter competed in
// @Summary Fighter weight classes
// @Tags Fighters
// @Produce json
// @Param fighter_name path string true "Fighter name"
// @Success 200 {object} map[string]interface{}
// @Router /fighter-weight-classes/{fighter_name} [get]
func (h *Handler) FighterWeightClasses(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "fighter_name")

	classes, err := h.fighters.FighterWeightClasses(r.Context(), name)
	if err != nil {
		h.logger.Errorw("Failed to get fighter weight classes", "error", err, "fighter", name)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get weight classes")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"fighter":        name,
		"weight_classes": classes,
		"count":          len(classes),
	})
}

// WeightClasses returns every recorded weight class plus Unknown
// @Summary List weight classes
// @Tags Fighters
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /weight-classes [get]
func (h *Handler) WeightClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.fighters.WeightClasses(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to list weight classes", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list weight classes")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"weight_classes": classes})
}

// FighterProfile returns appearance counts and latest career stats for a fighter
// @Summary Fighter profile
// @Tags Fighters
// @Produce json
// @Param fighter_name path string true "Fighter name"
// @Success 200 {object} models.FighterProfile
// @Failure 404 {object} map[string]string "Fighter not found"
// @Router /api/fighter/{fighter_name} [get]
func (h *Handler) FighterProfile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "fighter_name"))

	profile, err := h.fighters.Profile(r.Context(), name)
	if errors.Is(err, logic.ErrNotFound) {
		h.errorResponse(w, http.StatusNotFound, "Fighter not found")
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to build fighter profile", "error", err, "fighter", name)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get fighter profile")
		return
	}
	h.jsonResponse(w, http.StatusOK, profile)
}

// CompareFighters returns two fighters' career stats side by side
// @Summary Compare fighters
// @Tags Fighters
// @Produce json
// @Param fighter1 path string true "First fighter"
// @Param fighter2 path string true "Second fighter"
// @Success 200 {object} models.FighterComparison
// @Failure 404 {object} map[string]string "Fighter not found"
// @Router /api/compare/{fighter1}/{fighter2} [get]
func (h *Handler) CompareFighters(w http.ResponseWriter, r *http.Request) {
	f1 := chi.URLParam(r, "fighter1")
	f2 := chi.URLParam(r, "fighter2")

	cmp, err := h.fighters.Compare(r.Context(), f1, f2)
	if errors.Is(err, logic.ErrNotFound) {
		h.errorResponse(w, http.StatusNotFound, "One or both fighters not found")
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to compare fighters", "error", err, "fighter1", f1, "fighter2", f2)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compare fighters")
		return
	}
	h.jsonResponse(w, http.StatusOK, cmp)
}

// DatasetStats summarizes the loaded fight history
// @Summary Dataset statistics
// @Tags Statistics
// @Produce json
// @Success 200 {object} models.DatasetSummary
// @Router /api/stats [get]
func (h *Handler) DatasetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.fighters.Summary(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to summarize history", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get statistics")
		return
	}
	h.jsonResponse(w, http.StatusOK, summary)
}
