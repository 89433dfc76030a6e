package calories

import (
	"strings"

	"fitgen/workout-service/internal/domain"
)

const defaultSecondsPerRep = 3

var secondsPerRep = map[string]int{
	domain.TypeStrength:    4,
	domain.TypeCardio:      3,
	domain.TypeStretching:  30, // a "rep" is a held stretch
	domain.TypeWarmup:      4,
	domain.TypePlyometrics: 2,
}

// SecondsPerRep returns the time under work of one repetition of exerciseType.
func SecondsPerRep(exerciseType string) int {
	if s, ok := secondsPerRep[strings.TrimSpace(exerciseType)]; ok {
		return s
	}
	return defaultSecondsPerRep
}

// EstimateDuration returns the minutes needed for sets × reps of exerciseType
// with restSeconds between consecutive sets, rounded to one decimal.
// No rest is credited before the first set.
func EstimateDuration(exerciseType string, sets, reps, restSeconds int) float64 {
	if sets <= 0 || reps <= 0 {
		return 0
	}
	work := sets * reps * SecondsPerRep(exerciseType)
	rest := 0
	if sets > 1 && restSeconds > 0 {
		rest = restSeconds * (sets - 1)
	}
	return Round1(float64(work+rest) / 60)
}
