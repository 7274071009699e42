package logic

import (
	"math"
	"testing"

	"github.com/fightcast/predictor-api/internal/models"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBlend(t *testing.T) {
	tests := []struct {
		name       string
		red, blue  float64
		want       float64
		wantMethod string
	}{
		{"clear confidence gap uses weighted blend", 0.9, 0.55, (0.9*0.8 + 0.55*0.1) / (0.8 + 0.1 + 0.01), models.MethodWeighted},
		{"gap exactly at threshold uses simple average", 0.6, 0.45, 0.525, models.MethodSimpleAverage},
		{"both uninformative", 0.5, 0.5, 0.5, models.MethodSimpleAverage},
		{"opposing confident models", 1, 0.2, (1*1.0 + 0.2*0.6) / (1.0 + 0.6 + 0.01), models.MethodWeighted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, method := Blend(tt.red, tt.blue, DefaultBlendConfig())
			if method != tt.wantMethod {
				t.Errorf("expected method %s, got %s", tt.wantMethod, method)
			}
			if !approx(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBlendConfigurable(t *testing.T) {
	// 0.9/0.55 has a 0.7 confidence gap
	_, method := Blend(0.9, 0.55, BlendConfig{Threshold: 0.75, Epsilon: 0.01})
	if method != models.MethodSimpleAverage {
		t.Errorf("expected simple average above a raised threshold, got %s", method)
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name        string
		red, blue   float64
		swapped     bool
		wantWinner  string
		wantProb    float64
		wantFighter float64
	}{
		{name: "role x wins, not swapped", red: 0.7, blue: 0.7, wantWinner: "A", wantProb: 0.7, wantFighter: 0.7},
		{name: "role x wins, swapped", red: 0.7, blue: 0.7, swapped: true, wantWinner: "B", wantProb: 0.7, wantFighter: 0.3},
		{name: "role x loses, not swapped", red: 0.25, blue: 0.25, wantWinner: "B", wantProb: 0.75, wantFighter: 0.25},
		{name: "role x loses, swapped", red: 0.25, blue: 0.25, swapped: true, wantWinner: "A", wantProb: 0.75, wantFighter: 0.75},
		{name: "exact tie goes to fighter2", red: 0.5, blue: 0.5, wantWinner: "B", wantProb: 0.5, wantFighter: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Reconcile(tt.red, tt.blue, tt.swapped, "A", "B", DefaultBlendConfig())
			if out.Winner != tt.wantWinner {
				t.Errorf("expected winner %s, got %s", tt.wantWinner, out.Winner)
			}
			if !approx(out.WinProbability, tt.wantProb) {
				t.Errorf("expected probability %v, got %v", tt.wantProb, out.WinProbability)
			}
			if !approx(out.Fighter1Probability, tt.wantFighter) {
				t.Errorf("expected fighter1 probability %v, got %v", tt.wantFighter, out.Fighter1Probability)
			}
		})
	}
}

func TestReconcileWinnerConsistency(t *testing.T) {
	for red := 0.0; red <= 1.0; red += 0.05 {
		for blue := 0.0; blue <= 1.0; blue += 0.05 {
			for _, swapped := range []bool{false, true} {
				out := Reconcile(red, blue, swapped, "A", "B", DefaultBlendConfig())
				if math.Abs(out.Blended-0.5) > 1e-12 && out.WinProbability <= 0.5 {
					t.Fatalf("red=%v blue=%v swapped=%v: win probability %v not above 0.5", red, blue, swapped, out.WinProbability)
				}
				if !approx(out.ConfidenceLevel, math.Abs(out.WinProbability-0.5)*2) {
					t.Fatalf("red=%v blue=%v: confidence %v inconsistent with probability %v", red, blue, out.ConfidenceLevel, out.WinProbability)
				}
				if out.WinProbability > 1 || out.ConfidenceLevel < 0 || out.ConfidenceLevel > 1 {
					t.Fatalf("red=%v blue=%v: out of range %+v", red, blue, out)
				}
			}
		}
	}
}

// A blend a rounding step below one half cannot be told apart from a tie once inverted,
// so it resolves like the exact tie: fighter2 at 0.5.
func TestReconcileNearTie(t *testing.T) {
	out := Reconcile(0.44999999999999996, 0.5499999999999999, false, "A", "B", DefaultBlendConfig())
	if out.Method != models.MethodSimpleAverage {
		t.Fatalf("expected simple average, got %s", out.Method)
	}
	if out.Blended >= 0.5 {
		t.Fatalf("expected blend just below 0.5, got %v", out.Blended)
	}
	if out.Winner != "B" || !approx(out.WinProbability, 0.5) || !approx(out.ConfidenceLevel, 0) {
		t.Errorf("near tie: got winner %s probability %v confidence %v", out.Winner, out.WinProbability, out.ConfidenceLevel)
	}
}
