package logic

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName             = errors.New("invalid fighter name")
	ErrDuplicateCompetitor     = errors.New("duplicate competitor")
	ErrNotFound                = errors.New("fighter not found")
	ErrIncompatibleWeightClass = errors.New("incompatible weight class")
	ErrPredictionBackend       = errors.New("prediction backend failure")
)

// ValidationError carries a caller-facing message for a rejected input.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

// IncompatibleWeightClassError is returned when neither fighter has competed in the
// requested weight class. The class lists are in the caller's fighter order.
type IncompatibleWeightClassError struct {
	WeightClass     string
	Fighter1Classes []string
	Fighter2Classes []string
}

func (e *IncompatibleWeightClassError) Error() string {
	return fmt.Sprintf("Neither fighter has competed in %s", e.WeightClass)
}

func (e *IncompatibleWeightClassError) Unwrap() error { return ErrIncompatibleWeightClass }

// NotFoundError names the fighter and corner whose snapshot is missing.
type NotFoundError struct {
	Fighter string
	Corner  string
}

func (e *NotFoundError) Error() string {
	if e.Corner == "" {
		return fmt.Sprintf("fighter %q not found", e.Fighter)
	}
	return fmt.Sprintf("fighter %q has no history in corner %q", e.Fighter, e.Corner)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
