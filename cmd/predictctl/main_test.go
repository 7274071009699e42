package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightcast/predictor-api/internal/models"
)

const historyCSV = "r_fighter,b_fighter,weight_class," +
	"r_str,r_td,r_kd,r_career_fights,r_career_wins,r_career_losses,r_career_win_rate,r_career_str,r_career_td,r_career_kd," +
	"b_str,b_td,b_kd,b_career_fights,b_career_wins,b_career_losses,b_career_win_rate,b_career_str,b_career_td,b_career_kd\n" +
	"Jon Jones,Daniel Cormier,Light Heavyweight,50,2,0,10,9,1,0.9,500,20,3,40,1,0,12,10,2,0.83,400,30,1\n" +
	"Daniel Cormier,Jon Jones,Light Heavyweight,30,4,0,13,11,2,0.85,430,34,1,45,2,1,12,11,1,0.92,610,25,5\n"

// setupEnv points the configuration at neutral artifacts and a two-bout history.
func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	classes := []string{"Light Heavyweight"}
	width := len(classes) + models.FeatureCount

	scale := make([]float64, width)
	for i := range scale {
		scale[i] = 1
	}
	model := map[string]any{"coefficients": make([]float64, width), "intercept": 0.4}
	files := map[string]any{
		"red_model.json":            model,
		"blue_model.json":           model,
		"scaler.json":               map[string]any{"mean": make([]float64, width), "scale": scale},
		"weight_class_encoder.json": map[string]any{"categories": classes},
	}
	for name, v := range files {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), b, 0o644))
	}
	csvPath := filepath.Join(dir, "history.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(historyCSV), 0o644))

	t.Setenv("ARTIFACTS_DIR", dir)
	t.Setenv("HISTORY_BACKEND", "csv")
	t.Setenv("HISTORY_CSV", csvPath)
	t.Setenv("REDIS_URL", "")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPredictCommand(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "predict", "Jon Jones", "Daniel Cormier")
	require.NoError(t, err)
	assert.Contains(t, out, "is predicted to win")
	assert.Contains(t, out, "Light Heavyweight")
}

func TestPredictCommandJSON(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "predict", "Jon Jones", "Daniel Cormier", "--json")
	require.NoError(t, err)

	var resp models.PredictionResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, models.MethodSimpleAverage, resp.ModelDetails.PredictionMethod)
}

func TestPredictCommandUnknownFighter(t *testing.T) {
	setupEnv(t)

	_, err := runCommand(t, "predict", "Jon Jones", "Nobody Here")
	assert.ErrorContains(t, err, "Nobody Here")
}

func TestFightersCommand(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "fighters")
	require.NoError(t, err)
	assert.Equal(t, "Daniel Cormier\nJon Jones\n", out)
}

func TestProfileCommand(t *testing.T) {
	setupEnv(t)

	out, err := runCommand(t, "profile", "Jon Jones")
	require.NoError(t, err)
	assert.Contains(t, out, "Jon Jones: 2 fights (1 red, 1 blue)")
	assert.Contains(t, out, "Win rate")
}

func TestRemoteCommand(t *testing.T) {
	var got models.PredictRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		if got.Fighter2 == "Nobody Here" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Fighter not found: Nobody Here","status":"error"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(models.PredictionResponse{
			Prediction:     "Jon Jones is predicted to win with 71.0% probability",
			Status:         "success",
			Winner:         "Jon Jones",
			WinProbability: 0.71,
		})
	}))
	defer srv.Close()

	out, err := runCommand(t, "remote", "Jon Jones", "Daniel Cormier", "--url", srv.URL, "-w", "Light Heavyweight")
	require.NoError(t, err)
	assert.Contains(t, out, "Jon Jones is predicted to win with 71.0% probability")
	assert.Equal(t, "Light Heavyweight", got.WeightClass)

	_, err = runCommand(t, "remote", "Jon Jones", "Nobody Here", "--url", srv.URL)
	assert.EqualError(t, err, "api returned 404: Fighter not found: Nobody Here")
}

func TestImportCommandRejectsCSVBackend(t *testing.T) {
	setupEnv(t)

	_, err := runCommand(t, "import")
	assert.ErrorContains(t, err, "database backend")
}
