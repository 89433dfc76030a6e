package domain

// Fitness goals.
const (
	GoalWeightLoss          = "Weight Loss"
	GoalMuscleGain          = "Muscle Gain"
	GoalStrength            = "Strength"
	GoalEndurance           = "Endurance"
	GoalGeneralFitness      = "General Fitness"
	GoalAthleticPerformance = "Athletic Performance"
)

// BMI categories.
const (
	BMISevereUnderweight = "Severe Underweight"
	BMIUnderweight       = "Underweight"
	BMINormal            = "Normal"
	BMIOverweight        = "Overweight"
	BMIObese             = "Obese"
	BMISeverelyObese     = "Severely Obese"
	BMIExtremelyObese    = "Extremely Obese"
)

// MaxRecentExercises bounds the recency window used for penalties.
const MaxRecentExercises = 20

// UserContext is everything exercise selection knows about the user.
// It is assembled per request and never stored by the generator.
type UserContext struct {
	UserID             string
	WeightKg           float64
	FitnessLevel       Level
	TargetBodyParts    []string
	Goal               string
	Injuries           []string
	BMICategory        string
	EquipmentAvailable []string
	// BodyPartPreferences maps a body part to a preference in [0, 1].
	BodyPartPreferences map[string]float64
	// SatisfactionRatings maps an exercise title to a past rating in [0, 10].
	SatisfactionRatings map[string]float64
	RecentExerciseIDs   []string
}

// HasEquipment reports whether equipment is available to the user.
func (u UserContext) HasEquipment(equipment string) bool {
	for _, e := range u.EquipmentAvailable {
		if e == equipment {
			return true
		}
	}
	return false
}

// IsRecent reports whether the exercise is within the recency window.
func (u UserContext) IsRecent(exerciseID string) bool {
	recent := u.RecentExerciseIDs
	if len(recent) > MaxRecentExercises {
		recent = recent[len(recent)-MaxRecentExercises:]
	}
	for _, id := range recent {
		if id == exerciseID {
			return true
		}
	}
	return false
}

// PushRecent appends ids to the recency window, keeping the newest MaxRecentExercises.
func (u *UserContext) PushRecent(ids ...string) {
	u.RecentExerciseIDs = append(u.RecentExerciseIDs, ids...)
	if over := len(u.RecentExerciseIDs) - MaxRecentExercises; over > 0 {
		u.RecentExerciseIDs = u.RecentExerciseIDs[over:]
	}
}
