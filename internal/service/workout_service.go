package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/generator"
	"fitgen/workout-service/internal/metrics"
	"fitgen/workout-service/internal/repository"
)

// Accepted ranges of a generation request.
const (
	MinDurationMinutes = 10
	MaxDurationMinutes = 180
	MinWeightKg        = 30.0
	MaxWeightKg        = 200.0
)

// GenerateWorkoutInput is a validated-at-the-boundary generation request.
// Only the first block of fields is required.
type GenerateWorkoutInput struct {
	UserID           string
	TargetBodyParts  []string
	DurationMinutes  int
	WeightKg         float64
	IncludeWarmup    bool
	IncludeStretches bool
	FitnessLevel     domain.Level

	Goal                string
	Equipment           []string
	Injuries            []string
	BMICategory         string
	BodyPartPreferences map[string]float64
	SatisfactionRatings map[string]float64
}

// WorkoutComposer generates workouts. *generator.Composer implements it.
type WorkoutComposer interface {
	Compose(ctx context.Context, req generator.Request) (*domain.Workout, error)
}

type WorkoutService interface {
	GenerateWorkout(ctx context.Context, in GenerateWorkoutInput) (*domain.Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID string) (*domain.Workout, error)
}

type workoutService struct {
	composer    WorkoutComposer
	workoutRepo repository.WorkoutRepository
	logRepo     repository.ExerciseLogRepository
	metrics     *metrics.Manager
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	composer WorkoutComposer,
	workoutRepo repository.WorkoutRepository,
	logRepo repository.ExerciseLogRepository,
	metricsManager *metrics.Manager,
) WorkoutService {
	return &workoutService{
		composer:    composer,
		workoutRepo: workoutRepo,
		logRepo:     logRepo,
		metrics:     metricsManager,
	}
}

// GenerateWorkout validates the request, builds the user context and composes
// a workout. The workout is returned even when storing it fails.
func (s *workoutService) GenerateWorkout(ctx context.Context, in GenerateWorkoutInput) (*domain.Workout, error) {
	if err := validateGenerateInput(in); err != nil {
		return nil, err
	}

	user := domain.UserContext{
		UserID:              in.UserID,
		WeightKg:            in.WeightKg,
		FitnessLevel:        in.FitnessLevel,
		TargetBodyParts:     in.TargetBodyParts,
		Goal:                in.Goal,
		Injuries:            in.Injuries,
		BMICategory:         in.BMICategory,
		EquipmentAvailable:  in.Equipment,
		BodyPartPreferences: in.BodyPartPreferences,
		SatisfactionRatings: in.SatisfactionRatings,
	}
	recent, err := s.logRepo.RecentExerciseIDs(ctx, in.UserID, domain.MaxRecentExercises)
	if err != nil {
		log.Warnf("failed to load recent exercises for user %s: %s", in.UserID, err)
	} else {
		user.PushRecent(recent...)
	}

	start := time.Now()
	workout, err := s.composer.Compose(ctx, generator.Request{
		User:             user,
		DurationMinutes:  in.DurationMinutes,
		IncludeWarmup:    in.IncludeWarmup,
		IncludeStretches: in.IncludeStretches,
	})
	s.metrics.HistGenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		code := generator.ErrCodeGenerationFailed
		var genErr *generator.GenerationError
		if errors.As(err, &genErr) {
			code = genErr.Code
		}
		s.metrics.CounterGenerationErrors.WithLabelValues(code).Inc()
		return nil, err
	}
	s.metrics.CounterWorkoutsGenerated.Inc()

	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		log.Errorf("failed to store workout %s for user %s: %s", workout.ID, in.UserID, err)
	}

	return workout, nil
}

func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func validateGenerateInput(in GenerateWorkoutInput) error {
	if in.UserID == "" {
		return invalid("user_id", "is required")
	}
	if len(in.TargetBodyParts) == 0 {
		return invalid("target_body_parts", "at least one body part is required")
	}
	for _, bp := range in.TargetBodyParts {
		if !slices.Contains(domain.BodyParts, bp) {
			return invalid("target_body_parts", fmt.Sprintf("unknown body part %q", bp))
		}
	}
	if in.DurationMinutes < MinDurationMinutes || in.DurationMinutes > MaxDurationMinutes {
		return invalid("duration_minutes", fmt.Sprintf("must be between %d and %d", MinDurationMinutes, MaxDurationMinutes))
	}
	if in.WeightKg < MinWeightKg || in.WeightKg > MaxWeightKg {
		return invalid("user_weight_kg", fmt.Sprintf("must be between %.0f and %.0f", MinWeightKg, MaxWeightKg))
	}
	if !in.FitnessLevel.IsValid() {
		return invalid("fitness_level", fmt.Sprintf("must be one of %v", domain.Levels))
	}
	for part, pref := range in.BodyPartPreferences {
		if pref < 0 || pref > 1 {
			return invalid("body_part_preferences", fmt.Sprintf("preference for %q must be between 0 and 1", part))
		}
	}
	for title, rating := range in.SatisfactionRatings {
		if rating < 0 || rating > 10 {
			return invalid("satisfaction_ratings", fmt.Sprintf("rating for %q must be between 0 and 10", title))
		}
	}
	return nil
}
