package domain

import (
	"time"
)

// WorkoutStatus tracks the lifecycle of a workout as seen through its logs.
type WorkoutStatus string

const (
	WorkoutStatusNotStarted WorkoutStatus = "not_started" // no log references the workout yet
	WorkoutStatusInProgress WorkoutStatus = "in_progress"
	WorkoutStatusCompleted  WorkoutStatus = "completed"
)

// ExerciseLogEntry records one completed exercise of a workout. Entries are
// append-only; only WorkoutStatus flips to completed, once per workout.
type ExerciseLogEntry struct {
	ID               string        `bson:"_id" json:"log_id"`
	UserID           string        `bson:"user_id" json:"user_id"`
	WorkoutID        string        `bson:"workout_id" json:"workout_id"`
	ExerciseID       string        `bson:"exercise_id" json:"exercise_id"`
	ExerciseTitle    string        `bson:"exercise_title" json:"exercise_title"`
	Phase            Phase         `bson:"phase" json:"phase"`
	CompletedAt      time.Time     `bson:"completed_at" json:"completed_at"`
	PlannedSets      int           `bson:"planned_sets" json:"planned_sets"`
	CompletedSets    int           `bson:"completed_sets" json:"completed_sets"`
	PlannedReps      int           `bson:"planned_reps" json:"planned_reps"`
	ActualReps       []int         `bson:"actual_reps" json:"actual_reps"`
	WeightUsedKg     float64       `bson:"weight_used_kg" json:"weight_used_kg"`
	DurationMinutes  float64       `bson:"duration_minutes" json:"duration_minutes"`
	CaloriesBurned   float64       `bson:"calories_burned" json:"calories_burned"`
	DifficultyRating int           `bson:"difficulty_rating" json:"difficulty_rating"`
	Notes            string        `bson:"notes,omitempty" json:"notes"`
	WorkoutStatus    WorkoutStatus `bson:"workout_status" json:"workout_status"`
}

// WorkoutLogStatus summarizes the logs of one workout.
type WorkoutLogStatus struct {
	WorkoutID               string             `json:"workout_id"`
	Status                  WorkoutStatus      `json:"status"`
	TotalExercisesCompleted int                `json:"total_exercises_completed"`
	TotalCaloriesBurned     float64            `json:"total_calories_burned"`
	TotalDurationMinutes    float64            `json:"total_duration_minutes"`
	Exercises               []ExerciseLogEntry `json:"exercises"`
}

// WorkoutHistoryPage is one page of a user's log history, newest first.
type WorkoutHistoryPage struct {
	UserID       string             `json:"user_id"`
	Page         int                `json:"page"`
	PerPage      int                `json:"per_page"`
	TotalRecords int64              `json:"total_records"`
	History      []ExerciseLogEntry `json:"history"`
}

// CalorieSummary aggregates calories burned over a look-back window.
type CalorieSummary struct {
	UserID                string  `json:"user_id"`
	PeriodDays            int     `json:"period_days"`
	TotalCaloriesBurned   float64 `json:"total_calories_burned"`
	TotalWorkouts         int     `json:"total_workouts"`
	TotalExercises        int     `json:"total_exercises"`
	AvgCaloriesPerWorkout float64 `json:"avg_calories_per_workout"`
}

// ExerciseCount is a (title, count) pair used by analytics.
type ExerciseCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// WorkoutAnalytics is the derived analytics view of a user's logs.
type WorkoutAnalytics struct {
	UserID               string          `json:"user_id"`
	PeriodDays           int             `json:"period_days"`
	CalorieSummary       CalorieSummary  `json:"calorie_summary"`
	WorkoutFrequency     float64         `json:"workout_frequency"`
	TotalExercisesLogged int             `json:"total_exercises_logged"`
	AverageDifficulty    float64         `json:"average_difficulty"`
	TopExercises         []ExerciseCount `json:"top_exercises"`
	CurrentStreakDays    int             `json:"current_streak_days"`
	LongestStreakDays    int             `json:"longest_streak_days"`
}
