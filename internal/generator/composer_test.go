package generator

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitgen/workout-service/internal/calories"
	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository/memory"
)

func request(duration int, bodyParts ...string) Request {
	return Request{
		User: domain.UserContext{
			UserID:          "user_1",
			WeightKg:        70,
			FitnessLevel:    domain.LevelIntermediate,
			TargetBodyParts: bodyParts,
		},
		DurationMinutes:  duration,
		IncludeWarmup:    true,
		IncludeStretches: true,
	}
}

func TestAllocatePhases(t *testing.T) {
	tests := []struct {
		total           int
		warmup, stretch bool
		want            PhasePlan
	}{
		{60, true, true, PhasePlan{Warmup: 8, Main: 45, Stretches: 7}},
		{12, true, true, PhasePlan{Main: 12}},
		{25, true, true, PhasePlan{Warmup: 8, Main: 10, Stretches: 7}},
		{24, true, true, PhasePlan{Main: 24}},
		{30, false, true, PhasePlan{Main: 23, Stretches: 7}},
		{10, false, false, PhasePlan{Main: 10}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AllocatePhases(tt.total, tt.warmup, tt.stretch), "total %d", tt.total)
	}
}

func TestMainExerciseCount(t *testing.T) {
	assert.Equal(t, 5, MainExerciseCount(10))
	assert.Equal(t, 5, MainExerciseCount(45))
	assert.Equal(t, 7, MainExerciseCount(56))
	assert.Equal(t, 8, MainExerciseCount(165))
}

func TestComposer_SixtyMinuteWorkout(t *testing.T) {
	c := NewComposer(fakeCatalog(t, 1, 500), WithRandSeed(11))
	w, err := c.Compose(context.Background(), request(60, "Chest", "Triceps"))
	require.NoError(t, err)

	assert.Equal(t, 8.0, w.Phases.Warmup.DurationMinutes)
	assert.Equal(t, 45.0, w.Phases.MainCourse.DurationMinutes)
	assert.Equal(t, 7.0, w.Phases.Stretches.DurationMinutes)
	assert.Equal(t, 60.0, w.TotalDurationMinutes)

	assert.Len(t, w.Phases.MainCourse.Exercises, 5)
	assert.GreaterOrEqual(t, len(w.Phases.Warmup.Exercises), 2)
	assert.LessOrEqual(t, len(w.Phases.Warmup.Exercises), 3)
	assert.GreaterOrEqual(t, len(w.Phases.Stretches.Exercises), 2)
	assert.LessOrEqual(t, len(w.Phases.Stretches.Exercises), 5)
	assert.Contains(t, w.CascadeLevels, "Chest")
	assert.Contains(t, w.CascadeLevels, "Triceps")
}

func TestComposer_ShortWorkoutDropsWarmupAndStretches(t *testing.T) {
	c := NewComposer(fakeCatalog(t, 2, 200))
	w, err := c.Compose(context.Background(), request(12, "Back"))
	require.NoError(t, err)

	assert.Zero(t, w.Phases.Warmup.DurationMinutes)
	assert.Zero(t, w.Phases.Stretches.DurationMinutes)
	assert.Empty(t, w.Phases.Warmup.Exercises)
	assert.Empty(t, w.Phases.Stretches.Exercises)
	assert.NotNil(t, w.Phases.Warmup.Exercises)
	assert.NotNil(t, w.Phases.Stretches.Exercises)
	assert.Equal(t, 12.0, w.Phases.MainCourse.DurationMinutes)
}

func TestComposer_PhaseExercisePrescription(t *testing.T) {
	req := request(40, "Quadriceps")
	req.User.FitnessLevel = domain.LevelExpert
	req.User.BMICategory = domain.BMISeverelyObese

	w, err := NewComposer(fakeCatalog(t, 3, 400), WithRandSeed(3)).Compose(context.Background(), req)
	require.NoError(t, err)

	for _, e := range w.Phases.Warmup.Exercises {
		assert.Equal(t, 1, e.Sets)
		assert.Zero(t, e.RestSeconds)
		assert.Contains(t, []int{10, 20}, e.Reps)
		assert.Equal(t, domain.PhaseWarmup, e.Phase)
	}
	for _, e := range w.Phases.MainCourse.Exercises {
		assert.Equal(t, 4, e.Sets)
		assert.Equal(t, 8, e.Reps)
		assert.Equal(t, 120, e.RestSeconds)
		require.NotNil(t, e.RPERange)
		assert.Equal(t, [2]int{4, 7}, *e.RPERange)
	}
	for _, e := range w.Phases.Stretches.Exercises {
		assert.Equal(t, 2, e.Sets)
		assert.Equal(t, 1, e.Reps)
		assert.Zero(t, e.RestSeconds)
		assert.Equal(t, 2.5, e.METValue)
	}
}

func TestComposer_RandomRequestsStayWellFormed(t *testing.T) {
	faker := gofakeit.New(99)
	repo := fakeCatalog(t, 99, 250)
	levels := []string{"Beginner", "Intermediate", "Expert"}
	bmis := []string{"", domain.BMINormal, domain.BMIObese, domain.BMISevereUnderweight, domain.BMIExtremelyObese}

	for i := 0; i < 60; i++ {
		var targets []string
		for n := faker.Number(1, 3); n > 0; n-- {
			targets = append(targets, faker.RandomString(domain.BodyParts))
		}
		req := Request{
			User: domain.UserContext{
				UserID:             faker.UUID(),
				WeightKg:           faker.Float64Range(30, 200),
				FitnessLevel:       domain.Level(faker.RandomString(levels)),
				TargetBodyParts:    targets,
				Injuries:           []string{faker.RandomString(domain.BodyParts)},
				BMICategory:        faker.RandomString(bmis),
				EquipmentAvailable: []string{faker.RandomString(domain.Equipment)},
			},
			DurationMinutes:  faker.Number(10, 180),
			IncludeWarmup:    faker.Bool(),
			IncludeStretches: faker.Bool(),
		}

		w, err := NewComposer(repo, WithRandSeed(uint64(i))).Compose(context.Background(), req)
		require.NoError(t, err)

		total := w.Phases.Warmup.DurationMinutes + w.Phases.MainCourse.DurationMinutes + w.Phases.Stretches.DurationMinutes
		assert.InDelta(t, float64(req.DurationMinutes), total, 1e-6, "request %d", i)
		assert.InDelta(t, float64(req.DurationMinutes), w.TotalDurationMinutes, 1e-6)
		assert.NotEmpty(t, w.Phases.MainCourse.Exercises)

		for _, phase := range []domain.Phase{domain.PhaseWarmup, domain.PhaseMainCourse, domain.PhaseStretches} {
			seen := map[string]bool{}
			for j, e := range w.Phase(phase).Exercises {
				assert.False(t, seen[e.ExerciseID], "duplicate %s in %s", e.ExerciseID, phase)
				seen[e.ExerciseID] = true
				assert.Equal(t, j+1, e.Order)
				assert.Equal(t, phase, e.Phase)
				assert.Greater(t, e.METValue, 0.0)
				assert.GreaterOrEqual(t, e.EstimatedCalories, 0.0)
				assert.Greater(t, e.DurationMinutes, 0.0)
			}
		}
	}
}

func TestComposer_CaloriesFollowMETFormula(t *testing.T) {
	w, err := NewComposer(fakeCatalog(t, 4, 300)).Compose(context.Background(), request(50, "Biceps"))
	require.NoError(t, err)

	var sum float64
	for _, e := range w.AllExercises() {
		want, err := calories.Burned(e.METValue, 70, e.DurationMinutes)
		require.NoError(t, err)
		assert.Equal(t, want, e.EstimatedCalories, e.Title)
		sum += e.EstimatedCalories
	}
	assert.InDelta(t, sum, w.EstimatedTotalCalories, 0.051)
}

func TestComposer_MissingWeightYieldsZeroCalories(t *testing.T) {
	req := request(30, "Chest")
	req.User.WeightKg = 0
	w, err := NewComposer(fakeCatalog(t, 5, 100)).Compose(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, w.EstimatedTotalCalories)
}

func TestComposer_RepositoryUnavailableDegradesEveryPhase(t *testing.T) {
	repo := &mockExerciseRepository{}
	repo.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("no reachable servers"))
	spy := newRecorderSpy()

	w, err := NewComposer(repo, WithRecorder(spy)).Compose(context.Background(), request(60, "Chest"))
	require.NoError(t, err)

	assert.Equal(t, []string{"fallback_warmup_1", "fallback_warmup_2"}, instanceIDs(w.Phases.Warmup.Exercises))
	assert.Equal(t, []string{"fallback_stretch_1", "fallback_stretch_2"}, instanceIDs(w.Phases.Stretches.Exercises))
	require.NotEmpty(t, w.Phases.MainCourse.Exercises)
	for _, e := range w.Phases.MainCourse.Exercises {
		assert.Equal(t, domain.EquipmentBodyOnly, e.Equipment)
	}
	assert.Equal(t, int(LevelEmergency), w.CascadeLevels["Chest"])
	assert.Equal(t, []string{"warmup", "stretches"}, spy.fallbacks)
	assert.InDelta(t, 60.0, w.TotalDurationMinutes, 1e-6)
}

func TestComposer_SelectionExhaustedUsesMainFallback(t *testing.T) {
	spy := newRecorderSpy()
	c := NewComposer(memory.NewExerciseRepository(), WithEmergencyExercises(nil), WithRecorder(spy))
	w, err := c.Compose(context.Background(), request(30, "Neck"))
	require.NoError(t, err)

	require.Len(t, w.Phases.MainCourse.Exercises, 1)
	main := w.Phases.MainCourse.Exercises[0]
	assert.Equal(t, "fallback_main_1", main.ExerciseID)
	assert.Equal(t, "Push-ups", main.Title)
	assert.Equal(t, 15.0, main.DurationMinutes)
	assert.Equal(t, 5.0, main.METValue)
	assert.Contains(t, spy.fallbacks, "main_course")
}

func TestComposer_InjuryNotes(t *testing.T) {
	req := request(30, "Chest")
	req.IncludeWarmup, req.IncludeStretches = false, false
	req.User.Injuries = []string{"Chest"}

	w, err := NewComposer(chestCatalog()).Compose(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, w.Phases.MainCourse.Exercises, 5)
	assert.Equal(t, int(LevelEmergency), w.CascadeLevels["Chest"])

	for _, e := range w.Phases.MainCourse.Exercises {
		if e.BodyPart == "Chest" {
			assert.Equal(t, []string{"Modify: reduce range of motion due to Chest"}, e.Notes)
		} else {
			assert.Empty(t, e.Notes)
		}
	}
}

func TestComposer_InvalidRequest(t *testing.T) {
	_, err := NewComposer(memory.NewExerciseRepository()).Compose(context.Background(), request(30))
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, ErrCodeInvalidRequest, genErr.Code)
	assert.Nil(t, genErr.WorkoutID)
}

func TestComposer_RecoversFromPanics(t *testing.T) {
	repo := &mockExerciseRepository{}
	repo.On("Find", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { panic("corrupt document") }).
		Return(nil, nil)

	w, err := NewComposer(repo).Compose(context.Background(), request(45, "Back"))
	assert.Nil(t, w)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, ErrCodeGenerationFailed, genErr.Code)
	assert.Nil(t, genErr.WorkoutID)
	assert.Contains(t, genErr.Error(), "corrupt document")
}

func TestComposer_SeededGenerationIsReproducible(t *testing.T) {
	repo := fakeCatalog(t, 8, 400)
	at := time.Date(2024, 3, 1, 10, 15, 0, 0, time.UTC)
	opts := []Option{WithRandSeed(2024), WithClock(func() time.Time { return at })}

	req := request(75, "Chest", "Back", "Glutes")
	req.User.SatisfactionRatings = map[string]float64{"anything": 7}
	first, err := NewComposer(repo, opts...).Compose(context.Background(), req)
	require.NoError(t, err)
	second, err := NewComposer(repo, opts...).Compose(context.Background(), req)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(domain.Workout{}, "ID")); diff != "" {
		t.Errorf("same seed produced different workouts (-first +second):\n%s", diff)
	}
	assert.NotEqual(t, first.ID, second.ID)
	assert.Regexp(t, regexp.MustCompile(`^wk_20240301_101500_[0-9a-f]{8}$`), first.ID)
	assert.Equal(t, at, first.GeneratedAt)
}

func TestSplitEvenly(t *testing.T) {
	parts := splitEvenly(8, 3)
	assert.Equal(t, []float64{2.7, 2.7, 2.6}, parts)

	for n := 1; n <= 8; n++ {
		for _, total := range []float64{7, 8, 10, 45, 173} {
			var sum float64
			for _, p := range splitEvenly(total, n) {
				sum += p
			}
			assert.True(t, math.Abs(sum-total) < 1e-6, "total %v n %d sum %v", total, n, sum)
		}
	}
}

func instanceIDs(exercises []domain.ExerciseInstance) []string {
	out := make([]string, len(exercises))
	for i, e := range exercises {
		out[i] = e.ExerciseID
	}
	return out
}
