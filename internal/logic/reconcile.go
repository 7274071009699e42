package logic

import (
	"math"

	"github.com/fightcast/predictor-api/internal/models"
)

const (
	DefaultBlendThreshold = 0.1
	DefaultBlendEpsilon   = 0.01

	// blendTolerance absorbs float noise when comparing the confidence gap to the threshold.
	blendTolerance = 1e-9
)

// BlendConfig tunes how the red and blue model estimates are combined.
type BlendConfig struct {
	// Threshold is the confidence gap above which the weighted blend is used.
	Threshold float64
	// Epsilon keeps the weighted blend defined when both confidences are zero.
	Epsilon float64
}

func DefaultBlendConfig() BlendConfig {
	return BlendConfig{Threshold: DefaultBlendThreshold, Epsilon: DefaultBlendEpsilon}
}

// Outcome is a reconciled prediction expressed in the caller's fighter order.
type Outcome struct {
	Winner              string
	WinProbability      float64
	ConfidenceLevel     float64
	Fighter1Probability float64
	Blended             float64
	RedConfidence       float64
	BlueConfidence      float64
	Method              string
	Swapped             bool
}

// Confidence is the distance of p from 0.5 scaled to [0,1].
func Confidence(p float64) float64 {
	return math.Abs(p-0.5) * 2
}

// Blend combines two estimates that both refer to the role-X fighter.
func Blend(red, blue float64, cfg BlendConfig) (float64, string) {
	redConf := Confidence(red)
	blueConf := Confidence(blue)

	if math.Abs(redConf-blueConf)-cfg.Threshold > blendTolerance {
		return (red*redConf + blue*blueConf) / (redConf + blueConf + cfg.Epsilon), models.MethodWeighted
	}
	return (red + blue) / 2, models.MethodSimpleAverage
}

// Reconcile blends the two model estimates, undoes the role swap and picks a winner.
// swapped means role X was assigned to fighter2.
func Reconcile(red, blue float64, swapped bool, fighter1, fighter2 string, cfg BlendConfig) Outcome {
	blended, method := Blend(red, blue, cfg)

	p1 := blended
	if swapped {
		p1 = 1 - blended
	}

	out := Outcome{
		Fighter1Probability: p1,
		Blended:             blended,
		RedConfidence:       Confidence(red),
		BlueConfidence:      Confidence(blue),
		Method:              method,
		Swapped:             swapped,
	}
	if p1 > 0.5 {
		out.Winner = fighter1
		out.WinProbability = p1
	} else {
		out.Winner = fighter2
		out.WinProbability = 1 - p1
	}
	out.ConfidenceLevel = Confidence(out.WinProbability)
	return out
}
