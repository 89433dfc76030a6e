package generator

import (
	"fmt"
)

// Codes carried by GenerationError.
const (
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeGenerationFailed = "generation_failed"
)

// GenerationError is the structured failure of Compose. It marshals to
// {"error", "message", "workout_id": null} so callers can return it as is.
type GenerationError struct {
	Code      string  `json:"error"`
	Message   string  `json:"message"`
	WorkoutID *string `json:"workout_id"`

	Err error `json:"-"`
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func generationFailed(cause error) *GenerationError {
	return &GenerationError{
		Code:    ErrCodeGenerationFailed,
		Message: "An error occurred during workout generation. Please try again.",
		Err:     cause,
	}
}
