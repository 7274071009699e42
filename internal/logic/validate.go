package logic

import (
	"strings"
	"unicode/utf8"
)

const (
	minNameLength = 2
	maxNameLength = 100
)

// ValidateFighterName trims a fighter name and checks its length.
func ValidateFighterName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Kind: ErrInvalidName, Message: "Fighter name must be a non-empty string"}
	}
	n := utf8.RuneCountInString(name)
	if n < minNameLength {
		return "", &ValidationError{Kind: ErrInvalidName, Message: "Fighter name too short"}
	}
	if n > maxNameLength {
		return "", &ValidationError{Kind: ErrInvalidName, Message: "Fighter name too long"}
	}
	return name, nil
}

// ValidateMatchup validates both names and rejects a fighter paired with themselves.
func ValidateMatchup(fighter1, fighter2 string) (string, string, error) {
	f1, err := ValidateFighterName(fighter1)
	if err != nil {
		return "", "", err
	}
	f2, err := ValidateFighterName(fighter2)
	if err != nil {
		return "", "", err
	}
	if strings.EqualFold(f1, f2) {
		return "", "", &ValidationError{Kind: ErrDuplicateCompetitor, Message: "Cannot predict a fighter against themselves"}
	}
	return f1, f2, nil
}
