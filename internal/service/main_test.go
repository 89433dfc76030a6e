package service_test

import (
	"testing"

	"go.uber.org/goleak"

	"fitgen/workout-service/internal/calories"
	"fitgen/workout-service/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func catalogExercise(title, bodyPart, equipment, exerciseType string, level domain.Level) domain.Exercise {
	return domain.Exercise{
		ID:        domain.ExerciseIDFromTitle(title),
		Title:     title,
		Type:      exerciseType,
		BodyPart:  bodyPart,
		Equipment: equipment,
		Level:     level,
		Rating:    8,
		METValue:  calories.METValue(exerciseType, level),
		IsActive:  true,
	}
}

func ptr[T any](v T) *T {
	return &v
}
