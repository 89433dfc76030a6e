package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

// ExerciseRepository serves Find and GetByID from a Cache and delegates
// everything else. Writes bump a generation counter that is part of every
// key, so entries cached before a write are never read again. When the cache
// is a Versioner the generation is kept in the cache itself and a write on one
// instance invalidates the entries of all of them.
type ExerciseRepository struct {
	repository.ExerciseRepository
	cache      Cache
	ttl        time.Duration
	generation atomic.Uint64
}

var _ repository.ExerciseRepository = (*ExerciseRepository)(nil)

// generationKey names the shared generation counter of a Versioner cache.
const generationKey = "exercises::generation"

func NewExerciseRepository(next repository.ExerciseRepository, cache Cache, ttl time.Duration) *ExerciseRepository {
	return &ExerciseRepository{ExerciseRepository: next, cache: cache, ttl: ttl}
}

func (r *ExerciseRepository) Find(ctx context.Context, filter domain.ExerciseFilter, limit int) ([]domain.Exercise, error) {
	key, ok := r.key(ctx, "find", filterKey(filter), fmt.Sprint(limit))
	var cached []domain.Exercise
	if ok && r.load(ctx, key, &cached) {
		return cached, nil
	}

	exercises, err := r.ExerciseRepository.Find(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	if ok {
		r.store(ctx, key, exercises)
	}
	return exercises, nil
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	key, ok := r.key(ctx, "exercise", id)
	var cached domain.Exercise
	if ok && r.load(ctx, key, &cached) {
		return &cached, nil
	}

	exercise, err := r.ExerciseRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ok {
		r.store(ctx, key, exercise)
	}
	return exercise, nil
}

func (r *ExerciseRepository) Upsert(ctx context.Context, exercise *domain.Exercise) (bool, error) {
	created, err := r.ExerciseRepository.Upsert(ctx, exercise)
	r.bump(ctx)
	return created, err
}

func (r *ExerciseRepository) Update(ctx context.Context, id string, update domain.ExerciseUpdate) (*domain.Exercise, error) {
	exercise, err := r.ExerciseRepository.Update(ctx, id, update)
	r.bump(ctx)
	return exercise, err
}

func (r *ExerciseRepository) bump(ctx context.Context) {
	r.generation.Add(1)
	if v, ok := r.cache.(Versioner); ok {
		if _, err := v.BumpVersion(ctx, generationKey); err != nil {
			log.Errorf("failed to bump shared exercise cache generation: %s", err)
		}
	}
}

// key reports false when the current generation is unknown, in which case
// the cache must not be used at all.
func (r *ExerciseRepository) key(ctx context.Context, parts ...string) (string, bool) {
	generation := r.generation.Load()
	if v, ok := r.cache.(Versioner); ok {
		shared, err := v.Version(ctx, generationKey)
		if err != nil {
			log.Warnf("exercise cache generation: %s", err)
			return "", false
		}
		generation = shared
	}
	return fmt.Sprintf("exercises::%d::%s", generation, strings.Join(parts, "::")), true
}

func (r *ExerciseRepository) load(ctx context.Context, key string, dst any) bool {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Warnf("exercise cache get %s: %s", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Errorf("failed to unmarshal cached %s: %s", key, err)
		return false
	}
	log.Tracef("exercise cache hit: %s", key)
	return true
}

func (r *ExerciseRepository) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal %s for cache: %s", key, err)
		return
	}
	if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
		log.Warnf("exercise cache set %s: %s", key, err)
	}
}

// filterKey renders a filter independently of the order of its slice values.
func filterKey(f domain.ExerciseFilter) string {
	sorted := func(values []string) string {
		s := append([]string(nil), values...)
		sort.Strings(s)
		return strings.Join(s, ",")
	}
	return fmt.Sprintf("bp=%s|eq=%s|lvl=%s|type=%s", sorted(f.BodyParts), sorted(f.Equipment), f.Level, sorted(f.Types))
}
