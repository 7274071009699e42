package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fightcast/predictor-api/internal/logic"
	"github.com/fightcast/predictor-api/internal/models"
)

// Predict runs the dual-model prediction for two fighters
// @Summary Predict a fight
// @Description Fighter order is randomized internally and mapped back before responding.
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body models.PredictRequest true "Fighters and optional weight class"
// @Success 200 {object} models.PredictionResponse
// @Failure 400 {object} map[string]interface{} "Invalid input or incompatible weight class"
// @Failure 404 {object} map[string]string "Fighter not found"
// @Failure 429 {object} map[string]string "Rate limited"
// @Failure 500 {object} map[string]string "Prediction failed"
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	trimmed := models.PredictRequest{
		Fighter1:    strings.TrimSpace(req.Fighter1),
		Fighter2:    strings.TrimSpace(req.Fighter2),
		WeightClass: strings.TrimSpace(req.WeightClass),
	}
	if err := h.validator.Struct(trimmed); err != nil {
		h.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	resp, err := h.prediction.Predict(r.Context(), trimmed)
	if err != nil {
		h.predictionError(w, err, trimmed)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

func (h *Handler) predictionError(w http.ResponseWriter, err error, req models.PredictRequest) {
	var (
		ve *logic.ValidationError
		ie *logic.IncompatibleWeightClassError
		nf *logic.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		h.errorResponse(w, http.StatusBadRequest, ve.Message)
	case errors.As(err, &ie):
		h.jsonResponse(w, http.StatusBadRequest, map[string]interface{}{
			"error":                  ie.Error(),
			"status":                 "error",
			"fighter1_weight_classes": ie.Fighter1Classes,
			"fighter2_weight_classes": ie.Fighter2Classes,
		})
	case errors.As(err, &nf):
		h.errorResponse(w, http.StatusNotFound, "Fighter not found: "+nf.Fighter)
	case errors.Is(err, logic.ErrPredictionBackend):
		h.logger.Errorw("Model backend failed", "error", err, "fighter1", req.Fighter1, "fighter2", req.Fighter2)
		h.errorResponse(w, http.StatusInternalServerError, "Prediction failed")
	default:
		h.logger.Errorw("Prediction failed", "error", err, "fighter1", req.Fighter1, "fighter2", req.Fighter2)
		h.errorResponse(w, http.StatusInternalServerError, "Prediction failed")
	}
}

// validationMessage maps struct tag failures to the same messages the service uses.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}
	fe := verrs[0]
	if fe.Field() == "WeightClass" {
		return "Weight class too long"
	}
	switch fe.Tag() {
	case "required":
		return "Fighter name must be a non-empty string"
	case "min":
		return "Fighter name too short"
	case "max":
		return "Fighter name too long"
	}
	return "Invalid request"
}
