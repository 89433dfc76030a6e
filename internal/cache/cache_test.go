package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
	"fitgen/workout-service/internal/repository/memory"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func TestFreeCache(t *testing.T) {
	ctx := context.Background()
	c := NewFreeCache(1)

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
	assert.EqualValues(t, 1, c.EntryCount())
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisCache(db, "fitgen::")

	mock.ExpectGet("fitgen::missing").SetErr(redis.Nil)
	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	mock.ExpectSet("fitgen::k", []byte("v"), time.Minute).SetVal("OK")
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	mock.ExpectGet("fitgen::k").SetVal("v")
	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	mock.ExpectGet("fitgen::broken").SetErr(errors.New("connection reset"))
	_, err = c.Get(ctx, "broken")
	assert.EqualError(t, err, "connection reset")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Versions(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	c := NewRedisCache(db, "fitgen::")

	mock.ExpectGet("fitgen::gen").SetErr(redis.Nil)
	version, err := c.Version(ctx, "gen")
	require.NoError(t, err)
	assert.Zero(t, version)

	mock.ExpectIncr("fitgen::gen").SetVal(1)
	version, err = c.BumpVersion(ctx, "gen")
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)

	mock.ExpectGet("fitgen::gen").SetVal("1")
	version, err = c.Version(ctx, "gen")
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)

	mock.ExpectGet("fitgen::gen").SetErr(errors.New("connection reset"))
	_, err = c.Version(ctx, "gen")
	assert.EqualError(t, err, "connection reset")

	require.NoError(t, mock.ExpectationsWereMet())
}

// sharedCache stands in for a cache shared by several service instances.
type sharedCache struct {
	mu         sync.Mutex
	values     map[string][]byte
	versions   map[string]uint64
	versionErr error
}

func newSharedCache() *sharedCache {
	return &sharedCache{values: map[string][]byte{}, versions: map[string]uint64{}}
}

func (c *sharedCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (c *sharedCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *sharedCache) Version(_ context.Context, name string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[name], c.versionErr
}

func (c *sharedCache) BumpVersion(_ context.Context, name string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[name]++
	return c.versions[name], nil
}

// countingRepo counts the calls that reach the wrapped repository.
type countingRepo struct {
	repository.ExerciseRepository
	finds, gets int
}

func (r *countingRepo) Find(ctx context.Context, f domain.ExerciseFilter, limit int) ([]domain.Exercise, error) {
	r.finds++
	return r.ExerciseRepository.Find(ctx, f, limit)
}

func (r *countingRepo) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	r.gets++
	return r.ExerciseRepository.GetByID(ctx, id)
}

func TestExerciseRepository_CachesReads(t *testing.T) {
	ctx := context.Background()
	plank := domain.Exercise{
		ID: domain.ExerciseIDFromTitle("Plank"), Title: "Plank", BodyPart: "Abdominals",
		Equipment: "Body Only", Level: domain.LevelBeginner, IsActive: true,
	}
	inner := &countingRepo{ExerciseRepository: memory.NewExerciseRepository(plank)}
	repo := NewExerciseRepository(inner, NewFreeCache(1), time.Minute)

	filter := domain.ExerciseFilter{BodyParts: []string{"Abdominals"}, Equipment: []string{"Body Only", "Bands"}}
	for i := 0; i < 3; i++ {
		got, err := repo.Find(ctx, filter, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, plank.ID, got[0].ID)
	}
	// same filter with its values in another order hits the same entry
	_, err := repo.Find(ctx, domain.ExerciseFilter{BodyParts: []string{"Abdominals"}, Equipment: []string{"Bands", "Body Only"}}, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.finds)

	for i := 0; i < 2; i++ {
		got, err := repo.GetByID(ctx, plank.ID)
		require.NoError(t, err)
		assert.Equal(t, "Plank", got.Title)
	}
	assert.Equal(t, 1, inner.gets)

	_, err = repo.GetByID(ctx, "ex_missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExerciseRepository_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	inner := &countingRepo{ExerciseRepository: memory.NewExerciseRepository()}
	repo := NewExerciseRepository(inner, NewFreeCache(1), time.Minute)
	filter := domain.ExerciseFilter{BodyParts: []string{"Chest"}}

	got, err := repo.Find(ctx, filter, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	pushups := domain.Exercise{ID: "ex_push", Title: "Push-ups", BodyPart: "Chest", IsActive: true}
	_, err = repo.Upsert(ctx, &pushups)
	require.NoError(t, err)

	got, err = repo.Find(ctx, filter, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, inner.finds)

	inactive := false
	_, err = repo.Update(ctx, "ex_push", domain.ExerciseUpdate{IsActive: &inactive})
	require.NoError(t, err)
	got, err = repo.Find(ctx, filter, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExerciseRepository_WriteInvalidatesOtherInstances(t *testing.T) {
	ctx := context.Background()
	plank := domain.Exercise{ID: "ex_plank", Title: "Plank", BodyPart: "Abdominals", IsActive: true}
	inner := &countingRepo{ExerciseRepository: memory.NewExerciseRepository(plank)}
	shared := newSharedCache()
	first := NewExerciseRepository(inner, shared, time.Minute)
	second := NewExerciseRepository(inner, shared, time.Minute)

	got, err := second.GetByID(ctx, "ex_plank")
	require.NoError(t, err)
	assert.Nil(t, got.VideoURL)
	// the entry cached by one instance is served to the other
	_, err = first.GetByID(ctx, "ex_plank")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.gets)

	url := "https://cdn.example.com/plank.mp4"
	_, err = first.Update(ctx, "ex_plank", domain.ExerciseUpdate{VideoURL: &url})
	require.NoError(t, err)

	got, err = second.GetByID(ctx, "ex_plank")
	require.NoError(t, err)
	require.NotNil(t, got.VideoURL)
	assert.Equal(t, url, *got.VideoURL)
	assert.Equal(t, 2, inner.gets)
}

func TestExerciseRepository_BypassesCacheWithoutGeneration(t *testing.T) {
	ctx := context.Background()
	plank := domain.Exercise{ID: "ex_plank", Title: "Plank", BodyPart: "Abdominals", IsActive: true}
	inner := &countingRepo{ExerciseRepository: memory.NewExerciseRepository(plank)}
	shared := newSharedCache()
	shared.versionErr = errors.New("connection refused")
	repo := NewExerciseRepository(inner, shared, time.Minute)

	for i := 0; i < 2; i++ {
		got, err := repo.GetByID(ctx, "ex_plank")
		require.NoError(t, err)
		assert.Equal(t, "Plank", got.Title)
	}
	assert.Equal(t, 2, inner.gets)
	assert.Empty(t, shared.values)
}
