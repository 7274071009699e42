package logic

import (
	"slices"

	"github.com/fightcast/predictor-api/internal/history"
	"github.com/fightcast/predictor-api/internal/models"
)

// UnknownWeightClass is used when no weight class can be derived from history.
const UnknownWeightClass = "Unknown"

// Candidate is what the resolver knows about one fighter of the pairing.
type Candidate struct {
	Name          string
	WeightClasses []string
	// Snapshot is the stat line feeding this fighter's side of the primary perspective.
	Snapshot *models.Snapshot
}

// weightClassStrategy returns a class and true when its condition holds.
type weightClassStrategy struct {
	name    string
	resolve func(a, b Candidate) (string, bool)
}

// defaultWeightClassChain is evaluated in order when the caller supplies no class.
var defaultWeightClassChain = []weightClassStrategy{
	{name: "common_class", resolve: commonClass},
	{name: "role_x_snapshot_class", resolve: roleXSnapshotClass},
	{name: "role_y_snapshot_class", resolve: roleYSnapshotClass},
	{name: "unknown", resolve: unknownClass},
}

// ResolveWeightClass picks the weight class a prediction runs under.
// a is the role-X (red in the primary perspective) fighter and b the role-Y fighter.
func ResolveWeightClass(provided string, a, b Candidate) (string, error) {
	class, _, err := resolveWeightClass(provided, a, b)
	return class, err
}

func resolveWeightClass(provided string, a, b Candidate) (string, string, error) {
	if provided != "" {
		if slices.Contains(a.WeightClasses, provided) || slices.Contains(b.WeightClasses, provided) {
			return provided, "provided", nil
		}
		return "", "", &IncompatibleWeightClassError{
			WeightClass:     provided,
			Fighter1Classes: nonNil(a.WeightClasses),
			Fighter2Classes: nonNil(b.WeightClasses),
		}
	}

	for _, s := range defaultWeightClassChain {
		if class, ok := s.resolve(a, b); ok {
			return class, s.name, nil
		}
	}
	return UnknownWeightClass, "unknown", nil
}

// commonClass returns the lexicographically smallest class both fighters share.
func commonClass(a, b Candidate) (string, bool) {
	var common []string
	for _, c := range a.WeightClasses {
		if slices.Contains(b.WeightClasses, c) {
			common = append(common, c)
		}
	}
	if len(common) == 0 {
		return "", false
	}
	return slices.Min(common), true
}

func roleXSnapshotClass(a, _ Candidate) (string, bool) {
	return snapshotClass(a.Snapshot)
}

func roleYSnapshotClass(_, b Candidate) (string, bool) {
	return snapshotClass(b.Snapshot)
}

func unknownClass(_, _ Candidate) (string, bool) {
	return UnknownWeightClass, true
}

func snapshotClass(s *models.Snapshot) (string, bool) {
	if s == nil || history.IsSentinel(s.WeightClass) {
		return "", false
	}
	return s.WeightClass, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
