// Package history provides read-only access to the fight history table: each fighter's
// latest stat line per corner, the weight classes they fought in, and dataset summaries.
package history

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fightcast/predictor-api/internal/models"
)

// ErrNotFound is returned when a fighter has no row in the requested corner.
var ErrNotFound = errors.New("history: not found")

// Store is implemented by every history backend.
type Store interface {
	// Latest returns the fighter's stat line from their last recorded bout in corner.
	Latest(ctx context.Context, name string, corner models.Corner) (*models.Snapshot, error)
	// WeightClasses returns every class the fighter competed in from either corner, sorted.
	WeightClasses(ctx context.Context, name string) ([]string, error)
	// Fighters lists unique fighter names, optionally restricted to a weight class.
	Fighters(ctx context.Context, weightClass string) ([]string, error)
	AllWeightClasses(ctx context.Context) ([]string, error)
	Appearances(ctx context.Context, name string) (red, blue int, err error)
	Summary(ctx context.Context) (*models.DatasetSummary, error)
	Ping(ctx context.Context) error
}

// MatchMode controls how a requested name is compared to stored names.
type MatchMode string

const (
	// MatchFold compares names case-insensitively.
	MatchFold MatchMode = "fold"
	// MatchExact requires the stored casing.
	MatchExact MatchMode = "exact"
)

// ParseMatchMode parses a NAME_MATCH value.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case MatchFold, "":
		return MatchFold, nil
	case MatchExact:
		return MatchExact, nil
	}
	return "", fmt.Errorf("unknown name match mode %q", s)
}

// Key normalizes a name for index lookups.
func (m MatchMode) Key(name string) string {
	if m == MatchExact {
		return name
	}
	return strings.ToLower(name)
}

// AllClasses is the weight class filter value meaning "no filter".
const AllClasses = "All"

// IsSentinel reports whether a stored value stands for a missing entry.
func IsSentinel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nan", "none", "null":
		return true
	}
	return false
}

// cleanNames trims, drops sentinels, dedupes and sorts.
func cleanNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if IsSentinel(n) {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// cleanClasses drops sentinels, dedupes and sorts without trimming stored values.
func cleanClasses(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if IsSentinel(c) {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

func filterClass(weightClass string) bool {
	return weightClass != "" && weightClass != AllClasses
}
