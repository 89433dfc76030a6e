package domain

import (
	"time"
)

// Phase names one of the three structural segments of a workout.
type Phase string

const (
	PhaseWarmup     Phase = "warmup"
	PhaseMainCourse Phase = "main_course"
	PhaseStretches  Phase = "stretches"
)

// IsValid reports whether p is a known phase.
func (p Phase) IsValid() bool {
	return p == PhaseWarmup || p == PhaseMainCourse || p == PhaseStretches
}

// ExerciseInstance is an exercise as prescribed inside a generated workout.
type ExerciseInstance struct {
	ExerciseID        string   `bson:"exercise_id" json:"exercise_id"`
	Title             string   `bson:"title" json:"title"`
	Description       string   `bson:"description" json:"description"`
	BodyPart          string   `bson:"body_part,omitempty" json:"body_part,omitempty"`
	Equipment         string   `bson:"equipment,omitempty" json:"equipment,omitempty"`
	DurationMinutes   float64  `bson:"duration_minutes" json:"duration_minutes"`
	Sets              int      `bson:"sets" json:"sets"`
	Reps              int      `bson:"reps" json:"reps"`
	RestSeconds       int      `bson:"rest_seconds" json:"rest_seconds"`
	METValue          float64  `bson:"met_value" json:"met_value"`
	EstimatedCalories float64  `bson:"estimated_calories" json:"estimated_calories"`
	VideoURL          *string  `bson:"video_url,omitempty" json:"video_url"`
	Order             int      `bson:"order" json:"order"` // 1-indexed within the phase
	Phase             Phase    `bson:"phase" json:"phase"`
	RPERange          *[2]int  `bson:"rpe_range,omitempty" json:"rpe_range,omitempty"`
	Notes             []string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// WorkoutPhase holds the ordered exercises of a phase and its aggregates.
type WorkoutPhase struct {
	DurationMinutes   float64            `bson:"duration_minutes" json:"duration_minutes"`
	EstimatedCalories float64            `bson:"estimated_calories" json:"estimated_calories"`
	Exercises         []ExerciseInstance `bson:"exercises" json:"exercises"`
}

// Phases groups the three phases of a workout. All three keys are always present.
type Phases struct {
	Warmup     WorkoutPhase `bson:"warmup" json:"warmup"`
	MainCourse WorkoutPhase `bson:"main_course" json:"main_course"`
	Stretches  WorkoutPhase `bson:"stretches" json:"stretches"`
}

// Workout is the generated, immutable workout document.
type Workout struct {
	ID                     string    `bson:"_id" json:"workout_id"`
	UserID                 string    `bson:"user_id" json:"user_id"`
	GeneratedAt            time.Time `bson:"generated_at" json:"generated_at"`
	TotalDurationMinutes   float64   `bson:"total_duration_minutes" json:"total_duration_minutes"`
	EstimatedTotalCalories float64   `bson:"estimated_total_calories" json:"estimated_total_calories"`
	TargetBodyParts        []string  `bson:"target_body_parts" json:"target_body_parts"`
	FitnessLevel           Level     `bson:"fitness_level" json:"fitness_level"`
	Phases                 Phases    `bson:"phases" json:"phases"`
	// CascadeLevels records, per target body part, the deepest selection level
	// consulted for the main course. Kept for observability only.
	CascadeLevels map[string]int `bson:"cascade_levels,omitempty" json:"cascade_levels,omitempty"`
}

// Phase returns a pointer to the named phase of the workout.
func (w *Workout) Phase(p Phase) *WorkoutPhase {
	switch p {
	case PhaseWarmup:
		return &w.Phases.Warmup
	case PhaseStretches:
		return &w.Phases.Stretches
	default:
		return &w.Phases.MainCourse
	}
}

// AllExercises returns every exercise instance in phase order.
func (w *Workout) AllExercises() []ExerciseInstance {
	all := make([]ExerciseInstance, 0,
		len(w.Phases.Warmup.Exercises)+len(w.Phases.MainCourse.Exercises)+len(w.Phases.Stretches.Exercises))
	all = append(all, w.Phases.Warmup.Exercises...)
	all = append(all, w.Phases.MainCourse.Exercises...)
	all = append(all, w.Phases.Stretches.Exercises...)
	return all
}
