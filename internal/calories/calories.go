package calories

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a MET, weight or duration is not positive.
var ErrInvalidInput = errors.New("met, weight and duration must be positive")

// Burned returns met × weightKg × durationMinutes/60, rounded to one decimal.
func Burned(met, weightKg, durationMinutes float64) (float64, error) {
	if met <= 0 || weightKg <= 0 || durationMinutes <= 0 {
		return 0, fmt.Errorf("%w: met=%v weight=%v duration=%v", ErrInvalidInput, met, weightKg, durationMinutes)
	}
	return Round1(met * weightKg * (durationMinutes / 60)), nil
}

// Round1 rounds x to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
