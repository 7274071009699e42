package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fightcast/predictor-api/internal/models"
)

// statColumns are the per-corner column suffixes, in CornerStats field order.
var statColumns = []string{
	"str", "td", "kd",
	"career_fights", "career_wins", "career_losses", "career_win_rate",
	"career_str", "career_td", "career_kd",
}

// LoadCSV reads the fight history file. Row order is taken as chronological order.
func LoadCSV(path string, mode MatchMode) (*MemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	bouts, err := ReadBouts(f)
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}
	return NewMemoryStore(bouts, mode), nil
}

// ReadBouts parses history rows from r. Missing or unparseable stat cells read as 0.
func ReadBouts(r io.Reader) ([]models.Bout, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty history file")
		}
		return nil, err
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range requiredColumns() {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var bouts []models.Bout
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cell := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		bouts = append(bouts, models.Bout{
			RedFighter:  strings.TrimSpace(cell("r_fighter")),
			BlueFighter: strings.TrimSpace(cell("b_fighter")),
			WeightClass: cell("weight_class"),
			Red:         readStats(cell, models.CornerRed),
			Blue:        readStats(cell, models.CornerBlue),
		})
	}
	return bouts, nil
}

func requiredColumns() []string {
	cols := []string{"r_fighter", "b_fighter", "weight_class"}
	for _, c := range []models.Corner{models.CornerRed, models.CornerBlue} {
		for _, s := range statColumns {
			cols = append(cols, string(c)+"_"+s)
		}
	}
	return cols
}

func readStats(cell func(string) string, c models.Corner) models.CornerStats {
	v := make([]float64, len(statColumns))
	for i, s := range statColumns {
		v[i] = parseStat(cell(string(c) + "_" + s))
	}
	return models.CornerStats{
		Strikes:          v[0],
		Takedowns:        v[1],
		Knockdowns:       v[2],
		CareerFights:     v[3],
		CareerWins:       v[4],
		CareerLosses:     v[5],
		CareerWinRate:    v[6],
		CareerStrikes:    v[7],
		CareerTakedowns:  v[8],
		CareerKnockdowns: v[9],
	}
}

func parseStat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
