package service

import (
	"errors"
	"fmt"

	"fitgen/workout-service/internal/domain"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrVideoNotFound    = errors.New("exercise has no video")
	ErrNoUpdateFields   = errors.New("no fields to update")
)

// invalid builds an error matching both ErrValidationFailed and
// *domain.ValidationError.
func invalid(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, domain.NewValidationError(field, message))
}

func validatePaging(page, perPage, maxPerPage int) error {
	if page < 1 {
		return invalid("page", "must be at least 1")
	}
	if perPage < 1 || perPage > maxPerPage {
		return invalid("per_page", fmt.Sprintf("must be between 1 and %d", maxPerPage))
	}
	return nil
}
