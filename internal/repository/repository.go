package repository

import (
	"context"
	"time"

	"fitgen/workout-service/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository_mocks.go -package=mocks

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	// ErrUnavailable marks a store that could not be reached at all.
	ErrUnavailable = RepositoryError("repository unavailable")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository is the catalog store queried by exercise selection.
// Find and GetByID only ever see active exercises.
type ExerciseRepository interface {
	// Find returns at most limit active exercises matching every set field of
	// filter. A limit <= 0 means no limit.
	Find(ctx context.Context, filter domain.ExerciseFilter, limit int) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id string) (*domain.Exercise, error)
	// List pages through active exercises ordered by title, returning the page
	// and the total match count.
	List(ctx context.Context, filter domain.ExerciseFilter, page, perPage int) ([]domain.Exercise, int64, error)
	// Upsert inserts or replaces the exercise keyed by its ID.
	// It reports whether a new document was created.
	Upsert(ctx context.Context, exercise *domain.Exercise) (bool, error)
	// Update applies admin edits. It sees inactive exercises too.
	Update(ctx context.Context, id string, update domain.ExerciseUpdate) (*domain.Exercise, error)
}

// WorkoutRepository stores generated workouts.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, userID, workoutID string) (*domain.Workout, error)
}

// ExerciseLogRepository is the append-only log sink of completed exercises.
type ExerciseLogRepository interface {
	// Append stores entry, assigning its ID when empty, and returns the ID.
	Append(ctx context.Context, entry *domain.ExerciseLogEntry) (string, error)
	// ListByWorkout returns the logs of a workout in completion order.
	ListByWorkout(ctx context.Context, workoutID string) ([]domain.ExerciseLogEntry, error)
	// MarkCompleted flips every log the user wrote for the workout to completed
	// and returns the number of entries that changed. ErrNotFound when the user
	// has no log with workoutID.
	MarkCompleted(ctx context.Context, userID, workoutID string) (int64, error)
	// ListByUser pages through a user's logs, newest first.
	ListByUser(ctx context.Context, userID string, page, perPage int) ([]domain.ExerciseLogEntry, int64, error)
	// ListByUserSince returns every log of the user completed at or after since.
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.ExerciseLogEntry, error)
	// RecentExerciseIDs returns up to limit exercise ids of the user's latest
	// logs, oldest first.
	RecentExerciseIDs(ctx context.Context, userID string, limit int) ([]string, error)
}

// ConfigRepository stores system-wide configuration documents.
type ConfigRepository interface {
	// GetMLConfig returns ErrNotFound when no configuration was stored yet.
	GetMLConfig(ctx context.Context) (*domain.MLConfig, error)
	SaveMLConfig(ctx context.Context, cfg *domain.MLConfig) error
}
