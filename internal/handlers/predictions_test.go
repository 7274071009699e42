package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/fightcast/predictor-api/internal/logic"
	"github.com/fightcast/predictor-api/internal/models"
)

func newTestHandler(cfg Config) *Handler {
	cfg.Logger = zap.NewNop()
	if cfg.AllowedOrigins == nil {
		cfg.AllowedOrigins = []string{"*"}
	}
	return New(cfg)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestPredict(t *testing.T) {
	okResponse := &models.PredictionResponse{
		Prediction: "Jon Jones is predicted to win with 76.0% probability", Status: "success",
		Winner: "Jon Jones", WinProbability: 0.76, ConfidenceLevel: 0.52, WeightClass: "Heavyweight",
		ModelDetails: models.ModelDetails{PredictionMethod: models.MethodWeighted},
	}

	tests := []struct {
		name       string
		body       string
		predictErr error
		wantStatus int
		wantError  string
		wantCalled bool
	}{
		{name: "success", body: `{"fighter1":"Jon Jones","fighter2":"Stipe Miocic"}`, wantStatus: http.StatusOK, wantCalled: true},
		{name: "malformed json", body: `{"fighter1":`, wantStatus: http.StatusBadRequest, wantError: "Invalid JSON data"},
		{name: "missing fighter", body: `{"fighter1":"Jon Jones"}`, wantStatus: http.StatusBadRequest, wantError: "Fighter name must be a non-empty string"},
		{name: "blank fighter", body: `{"fighter1":"   ","fighter2":"Jon Jones"}`, wantStatus: http.StatusBadRequest, wantError: "Fighter name must be a non-empty string"},
		{name: "short name", body: `{"fighter1":"J","fighter2":"Stipe Miocic"}`, wantStatus: http.StatusBadRequest, wantError: "Fighter name too short"},
		{name: "long name", body: fmt.Sprintf(`{"fighter1":"%s","fighter2":"Stipe Miocic"}`, strings.Repeat("x", 101)), wantStatus: http.StatusBadRequest, wantError: "Fighter name too long"},
		{
			name:       "duplicate",
			body:       `{"fighter1":"Jon Jones","fighter2":"jon jones"}`,
			predictErr: &logic.ValidationError{Kind: logic.ErrDuplicateCompetitor, Message: "Cannot predict a fighter against themselves"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Cannot predict a fighter against themselves",
			wantCalled: true,
		},
		{
			name:       "not found",
			body:       `{"fighter1":"Jon Jones","fighter2":"Nobody"}`,
			predictErr: &logic.NotFoundError{Fighter: "Nobody", Corner: "red"},
			wantStatus: http.StatusNotFound,
			wantError:  "Fighter not found: Nobody",
			wantCalled: true,
		},
		{
			name:       "backend failure hides internals",
			body:       `{"fighter1":"Jon Jones","fighter2":"Stipe Miocic"}`,
			predictErr: fmt.Errorf("%w: %w", logic.ErrPredictionBackend, errors.New("scaler: column 3 is NaN")),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Prediction failed",
			wantCalled: true,
		},
		{
			name:       "store failure",
			body:       `{"fighter1":"Jon Jones","fighter2":"Stipe Miocic"}`,
			predictErr: errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Prediction failed",
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockPredictionService{PredictFunc: func(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error) {
				if tt.predictErr != nil {
					return nil, tt.predictErr
				}
				return okResponse, nil
			}}
			h := newTestHandler(Config{Prediction: mock})

			req := httptest.NewRequest("POST", "/predict", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Routes().ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("StatusCode = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if (mock.Calls > 0) != tt.wantCalled {
				t.Errorf("service called %d times, wantCalled %v", mock.Calls, tt.wantCalled)
			}
			body := decodeBody(t, w)
			if tt.wantError != "" {
				if body["error"] != tt.wantError || body["status"] != "error" {
					t.Errorf("unexpected error body %v", body)
				}
				return
			}
			if body["winner"] != "Jon Jones" || body["status"] != "success" {
				t.Errorf("unexpected body %v", body)
			}
		})
	}
}

func TestPredictIncompatibleWeightClass(t *testing.T) {
	mock := &MockPredictionService{PredictFunc: func(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error) {
		return nil, &logic.IncompatibleWeightClassError{
			WeightClass:     req.WeightClass,
			Fighter1Classes: []string{"Light Heavyweight"},
			Fighter2Classes: []string{},
		}
	}}
	h := newTestHandler(Config{Prediction: mock})

	req := httptest.NewRequest("POST", "/predict", strings.NewReader(`{"fighter1":"Jon Jones","fighter2":"Stipe Miocic","weight_class":" Flyweight "}`))
	w := httptest.NewRecorder()
	h.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("StatusCode = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "Neither fighter has competed in Flyweight" {
		t.Errorf("unexpected error %v", body["error"])
	}
	if classes, ok := body["fighter1_weight_classes"].([]interface{}); !ok || len(classes) != 1 {
		t.Errorf("unexpected fighter1_weight_classes %v", body["fighter1_weight_classes"])
	}
	if classes, ok := body["fighter2_weight_classes"].([]interface{}); !ok || len(classes) != 0 {
		t.Errorf("unexpected fighter2_weight_classes %v", body["fighter2_weight_classes"])
	}
}

func TestPredictRateLimit(t *testing.T) {
	mock := &MockPredictionService{PredictFunc: func(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error) {
		return &models.PredictionResponse{Status: "success"}, nil
	}}
	h := newTestHandler(Config{Prediction: mock, RateLimitPerSecond: 1, RateLimitBurst: 2})
	router := h.Routes()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/predict", strings.NewReader(`{"fighter1":"Jon Jones","fighter2":"Stipe Miocic"}`))
		req.RemoteAddr = "203.0.113.7:5555"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}

	// a different client has its own bucket
	req := httptest.NewRequest("POST", "/predict", strings.NewReader(`{"fighter1":"Jon Jones","fighter2":"Stipe Miocic"}`))
	req.RemoteAddr = "198.51.100.1:5555"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("StatusCode = %d for second client, want 200", w.Code)
	}
}

func TestPredictRateLimitIgnoresForwardedFor(t *testing.T) {
	mock := &MockPredictionService{PredictFunc: func(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error) {
		return &models.PredictionResponse{Status: "success"}, nil
	}}
	h := newTestHandler(Config{Prediction: mock, RateLimitPerSecond: 1, RateLimitBurst: 1})
	router := h.Routes()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/predict", strings.NewReader(`{"fighter1":"Jon Jones","fighter2":"Stipe Miocic"}`))
		req.RemoteAddr = "203.0.113.7:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i+1))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}
	if mock.Calls != 1 {
		t.Errorf("expected 1 prediction call, got %d", mock.Calls)
	}
}
