package logic

import "github.com/fightcast/predictor-api/internal/models"

// BuildFeatures computes the model input with red as the red-corner snapshot
// and blue as the blue-corner snapshot.
func BuildFeatures(red, blue *models.Snapshot, weightClass string) models.FeatureVector {
	return models.FeatureVector{
		StrDiff:      red.Strikes - blue.Strikes,
		TdDiff:       red.Takedowns - blue.Takedowns,
		KdDiff:       red.Knockdowns - blue.Knockdowns,
		FightsDiff:   red.CareerFights - blue.CareerFights,
		WinsDiff:     red.CareerWins - blue.CareerWins,
		LossesDiff:   red.CareerLosses - blue.CareerLosses,
		WinRateDiff:  red.CareerWinRate - blue.CareerWinRate,
		StrRatio:     (red.Strikes + 1) / (blue.Strikes + 1),
		TdRatio:      (red.Takedowns + 1) / (blue.Takedowns + 1),
		WinRateRatio: (red.CareerWinRate + 0.01) / (blue.CareerWinRate + 0.01),
		AvgStrDiff:   perFight(red.CareerStrikes, red.CareerFights) - perFight(blue.CareerStrikes, blue.CareerFights),
		AvgTdDiff:    perFight(red.CareerTakedowns, red.CareerFights) - perFight(blue.CareerTakedowns, blue.CareerFights),
		AvgKdDiff:    perFight(red.CareerKnockdowns, red.CareerFights) - perFight(blue.CareerKnockdowns, blue.CareerFights),
		WeightClass:  weightClass,
	}
}

// perFight divides a career total by max(1, fights).
func perFight(total, fights float64) float64 {
	return total / max(1, fights)
}
