package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

// ExerciseLogRepository is an in-memory repository.ExerciseLogRepository.
// Entries are kept in append order.
type ExerciseLogRepository struct {
	mu   sync.RWMutex
	logs []domain.ExerciseLogEntry
}

var _ repository.ExerciseLogRepository = (*ExerciseLogRepository)(nil)

func NewExerciseLogRepository() *ExerciseLogRepository {
	return &ExerciseLogRepository{}
}

func (r *ExerciseLogRepository) Append(ctx context.Context, entry *domain.ExerciseLogEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = "log_" + uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *entry)
	return entry.ID, nil
}

func (r *ExerciseLogRepository) ListByWorkout(ctx context.Context, workoutID string) ([]domain.ExerciseLogEntry, error) {
	out := r.filter(func(e domain.ExerciseLogEntry) bool { return e.WorkoutID == workoutID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].CompletedAt.Before(out[j].CompletedAt) })
	return out, nil
}

func (r *ExerciseLogRepository) MarkCompleted(ctx context.Context, userID, workoutID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found bool
	var changed int64
	for i := range r.logs {
		if r.logs[i].UserID != userID || r.logs[i].WorkoutID != workoutID {
			continue
		}
		found = true
		if r.logs[i].WorkoutStatus != domain.WorkoutStatusCompleted {
			r.logs[i].WorkoutStatus = domain.WorkoutStatusCompleted
			changed++
		}
	}
	if !found {
		return 0, repository.ErrNotFound
	}
	return changed, nil
}

func (r *ExerciseLogRepository) ListByUser(ctx context.Context, userID string, page, perPage int) ([]domain.ExerciseLogEntry, int64, error) {
	out := r.newestFirst(userID)
	return paginate(out, page, perPage), int64(len(out)), nil
}

func (r *ExerciseLogRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]domain.ExerciseLogEntry, error) {
	out := r.filter(func(e domain.ExerciseLogEntry) bool {
		return e.UserID == userID && !e.CompletedAt.Before(since)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CompletedAt.Before(out[j].CompletedAt) })
	return out, nil
}

func (r *ExerciseLogRepository) RecentExerciseIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	out := r.newestFirst(userID)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	ids := make([]string, len(out))
	for i, e := range out {
		ids[len(out)-1-i] = e.ExerciseID
	}
	return ids, nil
}

func (r *ExerciseLogRepository) newestFirst(userID string) []domain.ExerciseLogEntry {
	out := r.filter(func(e domain.ExerciseLogEntry) bool { return e.UserID == userID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out
}

func (r *ExerciseLogRepository) filter(keep func(domain.ExerciseLogEntry) bool) []domain.ExerciseLogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.ExerciseLogEntry
	for _, e := range r.logs {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
