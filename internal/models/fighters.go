package models

// Corner is the role a fighter occupied in a recorded bout.
type Corner string

const (
	CornerRed  Corner = "r"
	CornerBlue Corner = "b"
)

// Opposite returns the other corner.
func (c Corner) Opposite() Corner {
	if c == CornerRed {
		return CornerBlue
	}
	return CornerRed
}

// Bout is one row of the fight history table. Rows are stored in chronological order.
type Bout struct {
	RedFighter  string
	BlueFighter string
	WeightClass string
	Red         CornerStats
	Blue        CornerStats
}

// CornerStats holds the corner-prefixed columns of a bout row (r_* or b_*).
type CornerStats struct {
	Strikes          float64 `json:"str"` // single-bout landed strikes
	Takedowns        float64 `json:"td"`
	Knockdowns       float64 `json:"kd"`
	CareerFights     float64 `json:"career_fights"`
	CareerWins       float64 `json:"career_wins"`
	CareerLosses     float64 `json:"career_losses"`
	CareerWinRate    float64 `json:"career_win_rate"`
	CareerStrikes    float64 `json:"career_str"`
	CareerTakedowns  float64 `json:"career_td"`
	CareerKnockdowns float64 `json:"career_kd"`
}

// Fighter returns the name recorded for a corner.
func (b *Bout) Fighter(c Corner) string {
	if c == CornerRed {
		return b.RedFighter
	}
	return b.BlueFighter
}

// Stats returns the stats recorded for a corner.
func (b *Bout) Stats(c Corner) CornerStats {
	if c == CornerRed {
		return b.Red
	}
	return b.Blue
}

// Snapshot is a fighter's latest recorded stat line in one corner.
type Snapshot struct {
	Name        string `json:"name"`
	Corner      Corner `json:"corner"`
	WeightClass string `json:"weight_class"`
	CornerStats
}

// SnapshotOf builds the snapshot for one corner of a bout.
func SnapshotOf(b *Bout, c Corner) *Snapshot {
	return &Snapshot{
		Name:        b.Fighter(c),
		Corner:      c,
		WeightClass: b.WeightClass,
		CornerStats: b.Stats(c),
	}
}

// CareerStats is the public view of a snapshot's career numbers
type CareerStats struct {
	Fights        int     `json:"fights"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"win_rate"`
	AvgStrikes    float64 `json:"avg_strikes"`
	AvgTakedowns  float64 `json:"avg_takedowns"`
	AvgKnockdowns float64 `json:"avg_knockdowns"`
}

// FighterProfile is returned by the fighter profile endpoint
type FighterProfile struct {
	Name          string       `json:"name"`
	TotalFights   int          `json:"total_fights"`
	WeightClasses []string     `json:"weight_classes"`
	FightsAsRed   int          `json:"fights_as_red"`
	FightsAsBlue  int          `json:"fights_as_blue"`
	CareerStats   *CareerStats `json:"career_stats,omitempty"`
}

// ComparedFighter is one side of a fighter comparison
type ComparedFighter struct {
	Name          string  `json:"name"`
	CareerFights  int     `json:"career_fights"`
	CareerWins    int     `json:"career_wins"`
	CareerLosses  int     `json:"career_losses"`
	WinRate       float64 `json:"win_rate"`
	AvgStrikes    float64 `json:"avg_strikes"`
	AvgTakedowns  float64 `json:"avg_takedowns"`
	AvgKnockdowns float64 `json:"avg_knockdowns"`
}

// FighterComparison is returned by the compare endpoint
type FighterComparison struct {
	Fighter1 ComparedFighter `json:"fighter1"`
	Fighter2 ComparedFighter `json:"fighter2"`
}

// DatasetSummary describes the loaded fight history
type DatasetSummary struct {
	TotalFights             int            `json:"total_fights"`
	TotalFighters           int            `json:"total_fighters"`
	WeightClasses           int            `json:"weight_classes"`
	WeightClassDistribution map[string]int `json:"weight_class_distribution"`
}
