package generator

import (
	"context"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/mock"

	"fitgen/workout-service/internal/calories"
	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
	"fitgen/workout-service/internal/repository/memory"
)

func ex(title, bodyPart, equipment, typ string, level domain.Level, rating float64) domain.Exercise {
	return domain.Exercise{
		ID:        domain.ExerciseIDFromTitle(title),
		Title:     title,
		Type:      typ,
		BodyPart:  bodyPart,
		Equipment: equipment,
		Level:     level,
		Rating:    rating,
		METValue:  calories.METValue(typ, level),
		IsActive:  true,
	}
}

// fakeCatalog builds a seeded synthetic catalog covering every body part.
func fakeCatalog(t *testing.T, seed int64, size int) *memory.ExerciseRepository {
	t.Helper()
	faker := gofakeit.New(seed)
	types := []string{
		domain.TypeStrength, domain.TypeCardio, domain.TypeStretching, domain.TypePlyometrics,
		domain.TypePowerlifting, domain.TypeWarmup, domain.TypeStrongman,
	}
	levels := []string{string(domain.LevelBeginner), string(domain.LevelIntermediate), string(domain.LevelExpert)}

	exercises := make([]domain.Exercise, 0, size)
	for i := 0; i < size; i++ {
		level := domain.Level(faker.RandomString(levels))
		typ := faker.RandomString(types)
		title := fmt.Sprintf("%s %s %d", faker.Adjective(), faker.Noun(), i)
		if typ == domain.TypeStretching && faker.Bool() {
			title += " Stretch"
		}
		e := ex(title, faker.RandomString(domain.BodyParts), faker.RandomString(domain.Equipment), typ, level,
			faker.Float64Range(0, 10))
		e.Description = faker.Sentence(8)
		exercises = append(exercises, e)
	}
	return memory.NewExerciseRepository(exercises...)
}

// mockExerciseRepository is a testify mock used to inject repository failures.
type mockExerciseRepository struct {
	mock.Mock
}

var _ repository.ExerciseRepository = (*mockExerciseRepository)(nil)

func (m *mockExerciseRepository) Find(ctx context.Context, filter domain.ExerciseFilter, limit int) ([]domain.Exercise, error) {
	args := m.Called(ctx, filter, limit)
	exercises, _ := args.Get(0).([]domain.Exercise)
	return exercises, args.Error(1)
}

func (m *mockExerciseRepository) GetByID(ctx context.Context, id string) (*domain.Exercise, error) {
	args := m.Called(ctx, id)
	exercise, _ := args.Get(0).(*domain.Exercise)
	return exercise, args.Error(1)
}

func (m *mockExerciseRepository) List(ctx context.Context, filter domain.ExerciseFilter, page, perPage int) ([]domain.Exercise, int64, error) {
	args := m.Called(ctx, filter, page, perPage)
	exercises, _ := args.Get(0).([]domain.Exercise)
	return exercises, args.Get(1).(int64), args.Error(2)
}

func (m *mockExerciseRepository) Upsert(ctx context.Context, exercise *domain.Exercise) (bool, error) {
	args := m.Called(ctx, exercise)
	return args.Bool(0), args.Error(1)
}

func (m *mockExerciseRepository) Update(ctx context.Context, id string, update domain.ExerciseUpdate) (*domain.Exercise, error) {
	args := m.Called(ctx, id, update)
	exercise, _ := args.Get(0).(*domain.Exercise)
	return exercise, args.Error(1)
}

// recorderSpy collects what a Selector or Composer reports.
type recorderSpy struct {
	levels    map[string]int
	fallbacks []string
}

func newRecorderSpy() *recorderSpy {
	return &recorderSpy{levels: map[string]int{}}
}

func (r *recorderSpy) CascadeLevelUsed(bodyPart string, level int) { r.levels[bodyPart] = level }
func (r *recorderSpy) PhaseFallbackUsed(phase string)             { r.fallbacks = append(r.fallbacks, phase) }

func titles(exercises []domain.Exercise) []string {
	out := make([]string, len(exercises))
	for i, e := range exercises {
		out[i] = e.Title
	}
	return out
}
