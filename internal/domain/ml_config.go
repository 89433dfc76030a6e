package domain

import (
	"time"
)

// MLConfigType is the config_type key of the ML training configuration document.
const MLConfigType = "ml_training"

// Defaults and bounds of the ML readiness configuration.
const (
	DefaultTrainingWindowDays     = 30
	DefaultMinSessionsForTraining = 5

	MinTrainingWindowDays = 7
	MaxTrainingWindowDays = 90
	MinSessionsLowerBound = 1
	MinSessionsUpperBound = 100
)

// MLConfig holds the thresholds of the ML readiness check.
type MLConfig struct {
	ConfigType             string    `bson:"config_type" json:"config_type"`
	TrainingWindowDays     int       `bson:"training_window_days" json:"training_window_days"`
	MinSessionsForTraining int       `bson:"min_sessions_for_training" json:"min_sessions_for_training"`
	CreatedAt              time.Time `bson:"created_at" json:"created_at"`
	LastUpdated            time.Time `bson:"last_updated" json:"last_updated"`
}

// DefaultMLConfig returns the configuration used when none is stored.
func DefaultMLConfig() MLConfig {
	now := time.Now().UTC()
	return MLConfig{
		ConfigType:             MLConfigType,
		TrainingWindowDays:     DefaultTrainingWindowDays,
		MinSessionsForTraining: DefaultMinSessionsForTraining,
		CreatedAt:              now,
		LastUpdated:            now,
	}
}

// Validate checks the configuration against its accepted ranges.
func (c MLConfig) Validate() error {
	if c.TrainingWindowDays < MinTrainingWindowDays || c.TrainingWindowDays > MaxTrainingWindowDays {
		return NewValidationError("training_window_days", "must be between 7 and 90")
	}
	if c.MinSessionsForTraining < MinSessionsLowerBound || c.MinSessionsForTraining > MinSessionsUpperBound {
		return NewValidationError("min_sessions_for_training", "must be between 1 and 100")
	}
	return nil
}

// MLReadiness is the outcome of the ML readiness check.
type MLReadiness struct {
	UserID             string `json:"user_id"`
	Ready              bool   `json:"ml_ready"`
	WorkoutsInWindow   int    `json:"workouts_in_window"`
	TrainingWindowDays int    `json:"training_window_days"`
	MinSessions        int    `json:"min_sessions_for_training"`
}
