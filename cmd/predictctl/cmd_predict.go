package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fightcast/predictor-api/internal/models"
)

func newPredictCommand(e *env) *cobra.Command {
	var (
		weightClass string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "predict <fighter1> <fighter2>",
		Short: "Predict a matchup with the local models",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.Prediction.Predict(cmd.Context(), models.PredictRequest{
				Fighter1:    args[0],
				Fighter2:    args[1],
				WeightClass: weightClass,
			})
			if err != nil {
				return err
			}
			return printPrediction(cmd.OutOrStdout(), resp, asJSON)
		},
	}
	cmd.Flags().StringVarP(&weightClass, "weight-class", "w", "", "Weight class to predict in")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON response")
	return cmd
}

func printPrediction(w io.Writer, resp *models.PredictionResponse, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Fprintln(w, resp.Prediction)
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")
	table.Append("Winner", resp.Winner)
	table.Append("Win probability", fmt.Sprintf("%.4f", resp.WinProbability))
	table.Append("Confidence", fmt.Sprintf("%.4f", resp.ConfidenceLevel))
	table.Append("Weight class", resp.WeightClass)
	table.Append("Order randomized", fmt.Sprintf("%t", resp.FighterOrderRandomized))
	table.Append("Method", resp.ModelDetails.PredictionMethod)
	table.Append("Red confidence", fmt.Sprintf("%.4f", resp.ModelDetails.RedModelConfidence))
	table.Append("Blue confidence", fmt.Sprintf("%.4f", resp.ModelDetails.BlueModelConfidence))
	table.Append("Prediction ID", resp.PredictionID)
	return table.Render()
}
