// internal/domain/exercise.go
package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

// Level is the difficulty of an exercise, and the fitness level of a user.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelExpert       Level = "Expert"
)

// Levels lists every accepted fitness level in ascending order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelExpert}

// IsValid reports whether l is one of the known levels.
func (l Level) IsValid() bool {
	for _, known := range Levels {
		if l == known {
			return true
		}
	}
	return false
}

// Exercise types as they appear in the dataset.
const (
	TypeStrength             = "Strength"
	TypeCardio               = "Cardio"
	TypeStretching           = "Stretching"
	TypeWarmup               = "Warmup"
	TypePlyometrics          = "Plyometrics"
	TypePowerlifting         = "Powerlifting"
	TypeOlympicWeightlifting = "Olympic Weightlifting"
	TypeStrongman            = "Strongman"
	TypeCrossfit             = "Crossfit"
	TypeHIIT                 = "HIIT"
	TypeYoga                 = "Yoga"
	TypePilates              = "Pilates"
	TypeCircuitTraining      = "Circuit Training"
)

// Body parts. "Cardio" is not anatomical but the dataset uses it as a body part
// for conditioning drills, so it is listed here too.
const (
	BodyPartChest      = "Chest"
	BodyPartBack       = "Back"
	BodyPartShoulders  = "Shoulders"
	BodyPartBiceps     = "Biceps"
	BodyPartTriceps    = "Triceps"
	BodyPartForearms   = "Forearms"
	BodyPartQuadriceps = "Quadriceps"
	BodyPartHamstrings = "Hamstrings"
	BodyPartGlutes     = "Glutes"
	BodyPartCalves     = "Calves"
	BodyPartAbdominals = "Abdominals"
	BodyPartObliques   = "Obliques"
	BodyPartLowerBack  = "Lower Back"
	BodyPartMiddleBack = "Middle Back"
	BodyPartLats       = "Lats"
	BodyPartTraps      = "Traps"
	BodyPartNeck       = "Neck"
	BodyPartHipFlexors = "Hip Flexors"
	BodyPartAdductors  = "Adductors"
	BodyPartAbductors  = "Abductors"
	BodyPartFullBody   = "Full Body"
	BodyPartCardio     = "Cardio"
	BodyPartLegs       = "Legs"
	BodyPartArms       = "Arms"
	BodyPartCore       = "Core"
)

// BodyParts is the fixed enumeration of body parts accepted in requests.
var BodyParts = []string{
	BodyPartChest, BodyPartBack, BodyPartShoulders, BodyPartBiceps, BodyPartTriceps,
	BodyPartForearms, BodyPartQuadriceps, BodyPartHamstrings, BodyPartGlutes, BodyPartCalves,
	BodyPartAbdominals, BodyPartObliques, BodyPartLowerBack, BodyPartMiddleBack, BodyPartLats,
	BodyPartTraps, BodyPartNeck, BodyPartHipFlexors, BodyPartAdductors, BodyPartAbductors,
	BodyPartFullBody, BodyPartCardio, BodyPartLegs, BodyPartArms, BodyPartCore,
}

// Equipment tags with special meaning.
const (
	EquipmentBodyOnly = "Body Only"
	EquipmentOther    = "Other"
)

// Equipment is the fixed enumeration of equipment values in the dataset.
var Equipment = []string{
	EquipmentBodyOnly, "Dumbbell", "Barbell", "Cable", "Machine", "Kettlebells",
	"Bands", "Medicine Ball", "Exercise Ball", "E-Z Curl Bar", "Foam Roll", EquipmentOther,
}

var (
	bodyPartAliases = map[string]string{
		"abs":        BodyPartAbdominals,
		"ab":         BodyPartAbdominals,
		"quads":      BodyPartQuadriceps,
		"quad":       BodyPartQuadriceps,
		"hams":       BodyPartHamstrings,
		"glute":      BodyPartGlutes,
		"calf":       BodyPartCalves,
		"bicep":      BodyPartBiceps,
		"tricep":     BodyPartTriceps,
		"forearm":    BodyPartForearms,
		"shoulder":   BodyPartShoulders,
		"delts":      BodyPartShoulders,
		"trapezius":  BodyPartTraps,
		"latissimus": BodyPartLats,
		"lowerback":  BodyPartLowerBack,
		"middleback": BodyPartMiddleBack,
		"hip flexor": BodyPartHipFlexors,
		"adductor":   BodyPartAdductors,
		"abductor":   BodyPartAbductors,
		"fullbody":   BodyPartFullBody,
		"total body": BodyPartFullBody,
	}
	equipmentAliases = map[string]string{
		"bodyweight":     EquipmentBodyOnly,
		"body weight":    EquipmentBodyOnly,
		"none":           EquipmentBodyOnly,
		"dumbbells":      "Dumbbell",
		"kettlebell":     "Kettlebells",
		"band":           "Bands",
		"cables":         "Cable",
		"ez bar":         "E-Z Curl Bar",
		"ez curl bar":    "E-Z Curl Bar",
		"foam roller":    "Foam Roll",
		"stability ball": "Exercise Ball",
	}
)

// NormalizeBodyPart maps v onto BodyParts, ignoring case and resolving common
// aliases like "Quads". It reports false for unknown values.
func NormalizeBodyPart(v string) (string, bool) {
	return normalize(v, BodyParts, bodyPartAliases)
}

// NormalizeEquipment maps v onto Equipment the way NormalizeBodyPart does.
func NormalizeEquipment(v string) (string, bool) {
	return normalize(v, Equipment, equipmentAliases)
}

func normalize(v string, known []string, aliases map[string]string) (string, bool) {
	v = strings.TrimSpace(v)
	for _, k := range known {
		if strings.EqualFold(k, v) {
			return k, true
		}
	}
	canonical, ok := aliases[strings.ToLower(v)]
	return canonical, ok
}

// Exercise represents a single catalog entry imported from the exercise dataset.
type Exercise struct {
	ID          string  `bson:"_id" json:"exercise_id"` // derived from Title, see ExerciseIDFromTitle
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description,omitempty" json:"description"`
	Type        string  `bson:"type" json:"type"`
	BodyPart    string  `bson:"body_part" json:"body_part"`
	Equipment   string  `bson:"equipment" json:"equipment"`
	Level       Level   `bson:"level" json:"level"`
	Rating      float64 `bson:"rating" json:"rating"`
	RatingDesc  string  `bson:"rating_desc,omitempty" json:"rating_desc,omitempty"`
	METValue    float64 `bson:"met_value" json:"met_value"` // derived from Type and Level on import

	VideoURL             *string `bson:"video_url,omitempty" json:"video_url"`
	VideoDurationSeconds *int    `bson:"video_duration_seconds,omitempty" json:"video_duration_seconds"`

	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ExerciseIDFromTitle derives the stable catalog id of an exercise.
func ExerciseIDFromTitle(title string) string {
	sum := md5.Sum([]byte(strings.TrimSpace(title)))
	return "ex_" + hex.EncodeToString(sum[:])[:8]
}

// ExerciseFilter narrows catalog queries. Empty fields mean "no constraint";
// slice fields match any of their values. All set fields are AND-combined.
type ExerciseFilter struct {
	BodyParts []string
	Equipment []string
	Level     Level
	Types     []string
}

// ExerciseUpdate holds the admin-editable fields of an exercise.
// Nil fields are left untouched.
type ExerciseUpdate struct {
	VideoURL             *string
	VideoDurationSeconds *int
	IsActive             *bool
}

// IsEmpty reports whether the update changes nothing.
func (u ExerciseUpdate) IsEmpty() bool {
	return u.VideoURL == nil && u.VideoDurationSeconds == nil && u.IsActive == nil
}
