// Package memory implements the repository interfaces on top of process
// memory. It backs the "memory" database mode and serves as the test double of
// the Mongo repositories.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

// ExerciseRepository is an in-memory repository.ExerciseRepository.
type ExerciseRepository struct {
	mu        sync.RWMutex
	exercises map[string]domain.Exercise
}

var _ repository.ExerciseRepository = (*ExerciseRepository)(nil)

// NewExerciseRepository returns a repository seeded with exercises.
func NewExerciseRepository(exercises ...domain.Exercise) *ExerciseRepository {
	r := &ExerciseRepository{exercises: make(map[string]domain.Exercise, len(exercises))}
	for _, ex := range exercises {
		if ex.ID == "" {
			ex.ID = domain.ExerciseIDFromTitle(ex.Title)
		}
		r.exercises[ex.ID] = ex
	}
	return r
}

func (r *ExerciseRepository) Find(ctx context.Context, filter domain.ExerciseFilter, limit int) ([]domain.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches := r.matching(filter, true)
	sortByRating(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ex, ok := r.exercises[id]
	if !ok || !ex.IsActive {
		return nil, repository.ErrNotFound
	}
	return &ex, nil
}

func (r *ExerciseRepository) List(ctx context.Context, filter domain.ExerciseFilter, page, perPage int) ([]domain.Exercise, int64, error) {
	matches := r.matching(filter, true)
	sort.Slice(matches, func(i, j int) bool { return matches[i].Title < matches[j].Title })
	return paginate(matches, page, perPage), int64(len(matches)), nil
}

func (r *ExerciseRepository) Upsert(ctx context.Context, exercise *domain.Exercise) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	existing, found := r.exercises[exercise.ID]
	if found {
		exercise.CreatedAt = existing.CreatedAt
	} else {
		exercise.CreatedAt = now
	}
	exercise.UpdatedAt = now
	r.exercises[exercise.ID] = *exercise
	return !found, nil
}

func (r *ExerciseRepository) Update(ctx context.Context, id string, update domain.ExerciseUpdate) (*domain.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ex, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.VideoURL != nil {
		url := *update.VideoURL
		ex.VideoURL = &url
	}
	if update.VideoDurationSeconds != nil {
		secs := *update.VideoDurationSeconds
		ex.VideoDurationSeconds = &secs
	}
	if update.IsActive != nil {
		ex.IsActive = *update.IsActive
	}
	ex.UpdatedAt = time.Now().UTC()
	r.exercises[id] = ex
	return &ex, nil
}

// Len returns the number of stored exercises, active or not.
func (r *ExerciseRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.exercises)
}

func (r *ExerciseRepository) matching(filter domain.ExerciseFilter, activeOnly bool) []domain.Exercise {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Exercise
	for _, ex := range r.exercises {
		if activeOnly && !ex.IsActive {
			continue
		}
		if matches(ex, filter) {
			out = append(out, ex)
		}
	}
	return out
}

func matches(ex domain.Exercise, f domain.ExerciseFilter) bool {
	if len(f.BodyParts) > 0 && !contains(f.BodyParts, ex.BodyPart) {
		return false
	}
	if len(f.Equipment) > 0 && !contains(f.Equipment, ex.Equipment) {
		return false
	}
	if f.Level != "" && ex.Level != f.Level {
		return false
	}
	if len(f.Types) > 0 && !contains(f.Types, ex.Type) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// sortByRating orders the way the Mongo repository does: rating desc, title asc.
func sortByRating(exs []domain.Exercise) {
	sort.Slice(exs, func(i, j int) bool {
		if exs[i].Rating != exs[j].Rating {
			return exs[i].Rating > exs[j].Rating
		}
		return exs[i].Title < exs[j].Title
	})
}

func paginate[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return []T{}
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
