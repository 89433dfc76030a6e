// Package calories estimates energy expenditure and exercise duration from
// metabolic equivalents (MET).
package calories

import (
	"strings"

	"fitgen/workout-service/internal/domain"
)

// DefaultMET is returned for exercise types missing from the table.
const DefaultMET = 4.5

// levelMETs holds the types whose MET depends on the fitness level.
var levelMETs = map[string]map[domain.Level]float64{
	domain.TypeStrength: {
		domain.LevelBeginner:     3.5,
		domain.LevelIntermediate: 5.0,
		domain.LevelExpert:       6.0,
	},
	domain.TypeCardio: {
		domain.LevelBeginner:     5.0,
		domain.LevelIntermediate: 7.0,
		domain.LevelExpert:       10.0,
	},
}

// fixedMETs holds the types with a single MET regardless of level.
var fixedMETs = map[string]float64{
	domain.TypeStretching:           2.5,
	domain.TypeWarmup:               4.0,
	domain.TypePlyometrics:          8.0,
	domain.TypePowerlifting:         6.0,
	domain.TypeOlympicWeightlifting: 6.0,
	domain.TypeStrongman:            7.0,
	domain.TypeCrossfit:             8.0,
	domain.TypeHIIT:                 10.0,
	domain.TypeYoga:                 2.5,
	domain.TypePilates:              3.0,
	domain.TypeCircuitTraining:      8.0,
}

// METValue looks up the MET of an exercise type at a fitness level.
// Level-dependent types fall back to their Intermediate value for an unknown
// level; unknown types get DefaultMET. It never fails.
func METValue(exerciseType string, level domain.Level) float64 {
	exerciseType = strings.TrimSpace(exerciseType)
	level = domain.Level(strings.TrimSpace(string(level)))

	if byLevel, ok := levelMETs[exerciseType]; ok {
		if met, ok := byLevel[level]; ok {
			return met
		}
		return byLevel[domain.LevelIntermediate]
	}
	if met, ok := fixedMETs[exerciseType]; ok {
		return met
	}
	return DefaultMET
}
