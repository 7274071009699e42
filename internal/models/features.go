package models

// FeatureCount is the number of numeric columns in a FeatureVector.
const FeatureCount = 13

// FeatureNames lists the numeric columns in the order returned by Numeric.
var FeatureNames = [FeatureCount]string{
	"str_diff",
	"td_diff",
	"kd_diff",
	"fights_diff",
	"wins_diff",
	"losses_diff",
	"win_rate_diff",
	"str_ratio",
	"td_ratio",
	"win_rate_ratio",
	"avg_str_diff",
	"avg_td_diff",
	"avg_kd_diff",
}

// FeatureVector is the model input for one red/blue assignment.
// Field order matches FeatureNames and the column order of the fitted scaler.
type FeatureVector struct {
	StrDiff      float64 `json:"str_diff"`
	TdDiff       float64 `json:"td_diff"`
	KdDiff       float64 `json:"kd_diff"`
	FightsDiff   float64 `json:"fights_diff"`
	WinsDiff     float64 `json:"wins_diff"`
	LossesDiff   float64 `json:"losses_diff"`
	WinRateDiff  float64 `json:"win_rate_diff"`
	StrRatio     float64 `json:"str_ratio"`
	TdRatio      float64 `json:"td_ratio"`
	WinRateRatio float64 `json:"win_rate_ratio"`
	AvgStrDiff   float64 `json:"avg_str_diff"`
	AvgTdDiff    float64 `json:"avg_td_diff"`
	AvgKdDiff    float64 `json:"avg_kd_diff"`
	WeightClass  string  `json:"weight_class"`
}

// Numeric returns the numeric columns in schema order.
func (f FeatureVector) Numeric() [FeatureCount]float64 {
	return [FeatureCount]float64{
		f.StrDiff,
		f.TdDiff,
		f.KdDiff,
		f.FightsDiff,
		f.WinsDiff,
		f.LossesDiff,
		f.WinRateDiff,
		f.StrRatio,
		f.TdRatio,
		f.WinRateRatio,
		f.AvgStrDiff,
		f.AvgTdDiff,
		f.AvgKdDiff,
	}
}
