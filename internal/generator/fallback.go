package generator

import (
	"fitgen/workout-service/internal/calories"
	"fitgen/workout-service/internal/domain"
)

func bodyweight(title, bodyPart, exerciseType, description string, rating float64) domain.Exercise {
	return domain.Exercise{
		ID:          domain.ExerciseIDFromTitle(title),
		Title:       title,
		Description: description,
		Type:        exerciseType,
		BodyPart:    bodyPart,
		Equipment:   domain.EquipmentBodyOnly,
		Level:       domain.LevelBeginner,
		Rating:      rating,
		METValue:    calories.METValue(exerciseType, domain.LevelBeginner),
		IsActive:    true,
	}
}

// EmergencyExercises is the last cascade level. It never touches a repository.
func EmergencyExercises() []domain.Exercise {
	return []domain.Exercise{
		bodyweight("Push-ups", domain.BodyPartChest, domain.TypeStrength, "Basic upper body pressing exercise", 9.0),
		bodyweight("Bodyweight Squats", domain.BodyPartQuadriceps, domain.TypeStrength, "Fundamental lower body exercise", 9.0),
		bodyweight("Plank", domain.BodyPartAbdominals, domain.TypeStrength, "Core stability exercise", 8.5),
		bodyweight("Lunges", domain.BodyPartHamstrings, domain.TypeStrength, "Single leg strength exercise", 8.5),
		bodyweight("Jumping Jacks", domain.BodyPartFullBody, domain.TypeCardio, "Full body cardio exercise", 8.0),
		bodyweight("Burpees", domain.BodyPartFullBody, domain.TypeStrength, "Full body compound exercise", 8.5),
		bodyweight("Mountain Climbers", domain.BodyPartFullBody, domain.TypeCardio, "Cardio and core exercise", 8.0),
	}
}

// Per-phase templates used when a phase query comes back empty.

var warmupFallback = []domain.Exercise{
	{ID: "fallback_warmup_1", Title: "Jumping Jacks", Description: "Full body warmup exercise",
		Type: domain.TypeCardio, BodyPart: domain.BodyPartFullBody, Equipment: domain.EquipmentBodyOnly,
		Level: domain.LevelBeginner, METValue: 4.0, IsActive: true},
	{ID: "fallback_warmup_2", Title: "Arm Circles", Description: "Shoulder warmup exercise",
		Type: domain.TypeWarmup, BodyPart: domain.BodyPartShoulders, Equipment: domain.EquipmentBodyOnly,
		Level: domain.LevelBeginner, METValue: 3.5, IsActive: true},
}

var mainFallback = []domain.Exercise{
	{ID: "fallback_main_1", Title: "Push-ups", Description: "Chest and triceps exercise",
		Type: domain.TypeStrength, BodyPart: domain.BodyPartChest, Equipment: domain.EquipmentBodyOnly,
		Level: domain.LevelBeginner, IsActive: true},
}

var stretchFallback = []domain.Exercise{
	{ID: "fallback_stretch_1", Title: "Hamstring Stretch", Description: "Stretch hamstrings and lower back",
		Type: domain.TypeStretching, BodyPart: domain.BodyPartHamstrings, Equipment: domain.EquipmentBodyOnly,
		Level: domain.LevelBeginner, METValue: 2.5, IsActive: true},
	{ID: "fallback_stretch_2", Title: "Chest Opener Stretch", Description: "Open the chest and front shoulders",
		Type: domain.TypeStretching, BodyPart: domain.BodyPartChest, Equipment: domain.EquipmentBodyOnly,
		Level: domain.LevelBeginner, METValue: 2.5, IsActive: true},
}
