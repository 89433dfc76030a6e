package memory

import (
	"context"
	"sync"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

// WorkoutRepository is an in-memory repository.WorkoutRepository.
type WorkoutRepository struct {
	mu       sync.RWMutex
	workouts map[string]domain.Workout
}

var _ repository.WorkoutRepository = (*WorkoutRepository)(nil)

func NewWorkoutRepository() *WorkoutRepository {
	return &WorkoutRepository{workouts: make(map[string]domain.Workout)}
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *WorkoutRepository) GetByID(ctx context.Context, userID, workoutID string) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.workouts[workoutID]
	if !ok || w.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}
