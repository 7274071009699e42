package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fightcast/predictor-api/internal/models"
)

func newRemoteCommand() *cobra.Command {
	var (
		apiURL      string
		weightClass string
		asJSON      bool
		timeout     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "remote <fighter1> <fighter2>",
		Short: "Request a prediction from a running API",
		Args:  cobra.ExactArgs(2),
		// remote needs no local configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := json.Marshal(models.PredictRequest{
				Fighter1:    args[0],
				Fighter2:    args[1],
				WeightClass: weightClass,
			})
			if err != nil {
				return err
			}

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost,
				strings.TrimRight(apiURL, "/")+"/predict", bytes.NewReader(body))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")

			client := &http.Client{Timeout: timeout}
			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				var apiErr struct {
					Error string `json:"error"`
				}
				if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
					return fmt.Errorf("api returned %d: %s", resp.StatusCode, apiErr.Error)
				}
				return fmt.Errorf("api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
			}

			var out models.PredictionResponse
			if err := json.Unmarshal(raw, &out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return printPrediction(cmd.OutOrStdout(), &out, asJSON)
		},
	}
	cmd.Flags().StringVar(&apiURL, "url", "http://localhost:5000", "Base URL of the prediction API")
	cmd.Flags().StringVarP(&weightClass, "weight-class", "w", "", "Weight class to predict in")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON response")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP timeout")
	return cmd
}
