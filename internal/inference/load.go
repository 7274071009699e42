package inference

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names inside the artifacts directory.
const (
	RedModelFile  = "red_model.json"
	BlueModelFile = "blue_model.json"
	ScalerFile    = "scaler.json"
	EncoderFile   = "weight_class_encoder.json"
)

// Load reads all four artifacts from dir and assembles an Engine.
func Load(dir string) (*Engine, error) {
	var (
		red, blue LogisticModel
		scaler    StandardScaler
		encoder   OneHotEncoder
	)
	for _, a := range []struct {
		file string
		dst  any
	}{
		{RedModelFile, &red},
		{BlueModelFile, &blue},
		{ScalerFile, &scaler},
		{EncoderFile, &encoder},
	} {
		if err := readJSON(filepath.Join(dir, a.file), a.dst); err != nil {
			return nil, err
		}
	}

	if err := encoder.init(); err != nil {
		return nil, fmt.Errorf("%s: %w", EncoderFile, err)
	}
	if err := scaler.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ScalerFile, err)
	}
	return NewEngine(&encoder, &scaler, &red, &blue)
}

func readJSON(path string, dst any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load artifact: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode artifact %s: %w", filepath.Base(path), err)
	}
	return nil
}
