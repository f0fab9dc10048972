package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitleLen is the maximum title length in characters.
	MaxTitleLen = 200

	// MaxDescriptionLen is the maximum description length in characters.
	MaxDescriptionLen = 1000
)

// ErrInvalidInput is matched by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes a rejected field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ValidateTitle checks a raw title and returns its trimmed form.
// Emptiness is checked on the trimmed value, length on the raw value.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", &ValidationError{Field: "title", Reason: "cannot be empty"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return "", &ValidationError{Field: "title", Reason: fmt.Sprintf("cannot exceed %d characters", MaxTitleLen)}
	}
	return trimmed, nil
}

// ValidateDescription checks a description. Descriptions are stored untrimmed.
func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return &ValidationError{Field: "description", Reason: fmt.Sprintf("cannot exceed %d characters", MaxDescriptionLen)}
	}
	return nil
}
