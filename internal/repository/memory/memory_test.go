package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

func exercise(title, bodyPart, equipment, typ string, level domain.Level, rating float64) domain.Exercise {
	return domain.Exercise{
		ID:        domain.ExerciseIDFromTitle(title),
		Title:     title,
		Type:      typ,
		BodyPart:  bodyPart,
		Equipment: equipment,
		Level:     level,
		Rating:    rating,
		IsActive:  true,
	}
}

func TestExerciseRepository_Find(t *testing.T) {
	ctx := context.Background()
	inactive := exercise("Retired Press", "Chest", "Barbell", "Strength", domain.LevelBeginner, 9.9)
	inactive.IsActive = false
	repo := NewExerciseRepository(
		exercise("Bench Press", "Chest", "Barbell", "Strength", domain.LevelBeginner, 8.1),
		exercise("Push-ups", "Chest", "Body Only", "Strength", domain.LevelBeginner, 9.0),
		exercise("Cable Fly", "Chest", "Cable", "Strength", domain.LevelExpert, 7.0),
		exercise("Pull-ups", "Lats", "Body Only", "Strength", domain.LevelIntermediate, 9.5),
		inactive,
	)

	got, err := repo.Find(ctx, domain.ExerciseFilter{BodyParts: []string{"Chest"}}, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Push-ups", got[0].Title, "highest rating first")

	got, err = repo.Find(ctx, domain.ExerciseFilter{
		BodyParts: []string{"Chest"},
		Equipment: []string{"Barbell", "Body Only"},
		Level:     domain.LevelBeginner,
	}, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Push-ups", got[0].Title)

	got, err = repo.Find(ctx, domain.ExerciseFilter{Types: []string{"Cardio"}}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExerciseRepository_GetByIDSkipsInactive(t *testing.T) {
	ctx := context.Background()
	ex := exercise("Plank", "Abdominals", "Body Only", "Strength", domain.LevelBeginner, 8.5)
	repo := NewExerciseRepository(ex)

	got, err := repo.GetByID(ctx, ex.ID)
	require.NoError(t, err)
	assert.Equal(t, "Plank", got.Title)

	inactive := false
	_, err = repo.Update(ctx, ex.ID, domain.ExerciseUpdate{IsActive: &inactive})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, ex.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Update(ctx, "ex_missing", domain.ExerciseUpdate{IsActive: &inactive})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExerciseRepository_UpsertAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewExerciseRepository()

	ex := exercise("Lunges", "Hamstrings", "Body Only", "Strength", domain.LevelBeginner, 8.5)
	created, err := repo.Upsert(ctx, &ex)
	require.NoError(t, err)
	assert.True(t, created)

	ex.Rating = 9.1
	created, err = repo.Upsert(ctx, &ex)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, repo.Len())

	for _, title := range []string{"A Squat", "B Squat", "C Squat"} {
		e := exercise(title, "Quadriceps", "Barbell", "Strength", domain.LevelExpert, 5)
		_, err := repo.Upsert(ctx, &e)
		require.NoError(t, err)
	}

	page, total, err := repo.List(ctx, domain.ExerciseFilter{BodyParts: []string{"Quadriceps"}}, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "C Squat", page[0].Title)

	page, _, err = repo.List(ctx, domain.ExerciseFilter{}, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestExerciseLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewExerciseLogRepository()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, exID := range []string{"ex_1", "ex_2", "ex_3"} {
		id, err := repo.Append(ctx, &domain.ExerciseLogEntry{
			UserID:        "u1",
			WorkoutID:     "wk_1",
			ExerciseID:    exID,
			CompletedAt:   base.Add(time.Duration(i) * time.Minute),
			WorkoutStatus: domain.WorkoutStatusInProgress,
		})
		require.NoError(t, err)
		assert.Contains(t, id, "log_")
	}
	_, err := repo.Append(ctx, &domain.ExerciseLogEntry{UserID: "u2", WorkoutID: "wk_2", ExerciseID: "ex_9", CompletedAt: base})
	require.NoError(t, err)
	// another user logging against the same workout id
	_, err = repo.Append(ctx, &domain.ExerciseLogEntry{
		UserID: "u2", WorkoutID: "wk_1", ExerciseID: "ex_9", CompletedAt: base,
		WorkoutStatus: domain.WorkoutStatusInProgress,
	})
	require.NoError(t, err)

	logs, err := repo.ListByWorkout(ctx, "wk_1")
	require.NoError(t, err)
	assert.Len(t, logs, 4)

	changed, err := repo.MarkCompleted(ctx, "u1", "wk_1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, changed)

	changed, err = repo.MarkCompleted(ctx, "u1", "wk_1")
	require.NoError(t, err)
	assert.Zero(t, changed)

	_, err = repo.MarkCompleted(ctx, "u1", "wk_missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.MarkCompleted(ctx, "u3", "wk_1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	logs, err = repo.ListByWorkout(ctx, "wk_1")
	require.NoError(t, err)
	for _, l := range logs {
		if l.UserID == "u2" {
			assert.Equal(t, domain.WorkoutStatusInProgress, l.WorkoutStatus, "foreign log must stay untouched")
		}
	}

	history, total, err := repo.ListByUser(ctx, "u1", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, history, 2)
	assert.Equal(t, "ex_3", history[0].ExerciseID)

	recent, err := repo.RecentExerciseIDs(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"ex_2", "ex_3"}, recent)

	since, err := repo.ListByUserSince(ctx, "u1", base.Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, since, 2)
}

func TestWorkoutAndConfigRepositories(t *testing.T) {
	ctx := context.Background()

	workouts := NewWorkoutRepository()
	require.NoError(t, workouts.Create(ctx, &domain.Workout{ID: "wk_1", UserID: "u1"}))
	got, err := workouts.GetByID(ctx, "u1", "wk_1")
	require.NoError(t, err)
	assert.Equal(t, "wk_1", got.ID)
	_, err = workouts.GetByID(ctx, "u2", "wk_1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	configs := NewConfigRepository()
	_, err = configs.GetMLConfig(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	cfg := domain.DefaultMLConfig()
	require.NoError(t, configs.SaveMLConfig(ctx, &cfg))
	stored, err := configs.GetMLConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30, stored.TrainingWindowDays)
}
