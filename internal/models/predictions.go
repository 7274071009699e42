package models

// PredictRequest is the body of POST /predict
type PredictRequest struct {
	Fighter1    string `json:"fighter1" validate:"required,min=2,max=100"`
	Fighter2    string `json:"fighter2" validate:"required,min=2,max=100"`
	WeightClass string `json:"weight_class,omitempty" validate:"omitempty,max=100"`
}

// Prediction methods reported in ModelDetails
const (
	MethodWeighted      = "weighted"
	MethodSimpleAverage = "simple_average"
)

// ModelDetails reports how the two model estimates were combined
type ModelDetails struct {
	RedModelConfidence  float64 `json:"red_model_confidence"`
	BlueModelConfidence float64 `json:"blue_model_confidence"`
	PredictionMethod    string  `json:"prediction_method"`
}

// PredictionResponse is the successful result of a fight prediction
type PredictionResponse struct {
	Prediction             string       `json:"prediction"`
	Status                 string       `json:"status"`
	PredictionID           string       `json:"prediction_id"`
	Winner                 string       `json:"winner"`
	WinProbability         float64      `json:"win_probability"`
	ConfidenceLevel        float64      `json:"confidence_level"`
	WeightClass            string       `json:"weight_class"`
	FighterOrderRandomized bool         `json:"fighter_order_randomized"`
	ModelDetails           ModelDetails `json:"model_details"`
}
