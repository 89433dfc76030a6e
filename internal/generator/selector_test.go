package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository/memory"
)

func chestCatalog() *memory.ExerciseRepository {
	return memory.NewExerciseRepository(
		ex("Barbell Bench Press", "Chest", "Barbell", "Strength", domain.LevelBeginner, 9.5),
		ex("Dumbbell Press", "Chest", "Dumbbell", "Strength", domain.LevelBeginner, 9.0),
		ex("Decline Barbell Press", "Chest", "Barbell", "Strength", domain.LevelExpert, 8.0),
		ex("Barbell Overhead Press", "Shoulders", "Barbell", "Strength", domain.LevelExpert, 7.0),
	)
}

func TestSelector_StopsAtFirstSufficientLevel(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantLevel CascadeLevel
		want      []string
	}{
		{"perfect match", 1, LevelPerfectMatch, []string{"Barbell Bench Press"}},
		{"equipment relaxed pads", 2, LevelEquipmentRelaxed, []string{"Barbell Bench Press", "Dumbbell Press"}},
		{"difficulty relaxed pads", 3, LevelDifficultyRelaxed,
			[]string{"Barbell Bench Press", "Dumbbell Press", "Decline Barbell Press"}},
		{"related body parts pad", 4, LevelRelatedBodyParts,
			[]string{"Barbell Bench Press", "Dumbbell Press", "Decline Barbell Press", "Barbell Overhead Press"}},
		{"emergency list pads the rest", 5, LevelEmergency,
			[]string{"Barbell Bench Press", "Dumbbell Press", "Decline Barbell Press", "Barbell Overhead Press", "Push-ups"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := newRecorderSpy()
			s := NewSelector(chestCatalog(), WithRecorder(spy))
			sel, err := s.Select(context.Background(), Criteria{
				BodyPart:  "Chest",
				Equipment: []string{"Barbell"},
				Level:     domain.LevelBeginner,
				Count:     tt.count,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, sel.Level)
			assert.Equal(t, tt.want, titles(sel.Exercises))
			assert.Equal(t, int(tt.wantLevel), spy.levels["Chest"])
		})
	}
}

func TestSelector_EmptyRepositoryReturnsEmergencyList(t *testing.T) {
	s := NewSelector(memory.NewExerciseRepository())
	emergency := map[string]bool{}
	for _, e := range EmergencyExercises() {
		emergency[e.Title] = true
	}

	for _, bodyPart := range domain.BodyParts {
		sel, err := s.Select(context.Background(), Criteria{
			BodyPart:    bodyPart,
			Equipment:   []string{"Machine"},
			Level:       domain.LevelExpert,
			Injuries:    []string{"knee"},
			BMICategory: domain.BMIExtremelyObese,
			Count:       8,
		})
		require.NoError(t, err, bodyPart)
		assert.Equal(t, LevelEmergency, sel.Level)
		require.NotEmpty(t, sel.Exercises, bodyPart)
		for _, e := range sel.Exercises {
			assert.True(t, emergency[e.Title], "%s is not an emergency exercise", e.Title)
			assert.Equal(t, domain.LevelBeginner, e.Level)
		}
	}
}

func TestSelector_EmergencyPrefersMatchingBodyPart(t *testing.T) {
	s := NewSelector(memory.NewExerciseRepository())
	sel, err := s.Select(context.Background(), Criteria{BodyPart: "Quadriceps", Count: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bodyweight Squats", "Jumping Jacks"}, titles(sel.Exercises))
}

func TestSelector_RepositoryUnavailableSkipsToEmergency(t *testing.T) {
	repo := &mockExerciseRepository{}
	repo.On("Find", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	s := NewSelector(repo)
	sel, err := s.Select(context.Background(), Criteria{BodyPart: "Chest", Level: domain.LevelBeginner, Count: 3})
	require.NoError(t, err)
	assert.Equal(t, LevelEmergency, sel.Level)
	assert.Len(t, sel.Exercises, 3)
	repo.AssertNumberOfCalls(t, "Find", 1)
}

func TestSelector_SelectionExhausted(t *testing.T) {
	s := NewSelector(memory.NewExerciseRepository(), WithEmergencyExercises(nil))
	sel, err := s.Select(context.Background(), Criteria{BodyPart: "Neck", Count: 3})
	assert.ErrorIs(t, err, ErrSelectionExhausted)
	assert.Empty(t, sel.Exercises)
	assert.Equal(t, LevelEmergency, sel.Level)
}

func TestSelector_InjuriesExcludedUntilSafetyRelaxed(t *testing.T) {
	s := NewSelector(chestCatalog())
	sel, err := s.Select(context.Background(), Criteria{
		BodyPart:  "Chest",
		Equipment: []string{"Barbell"},
		Level:     domain.LevelBeginner,
		Injuries:  []string{"chest"},
		Count:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, LevelSafetyRelaxed, sel.Level)
	require.Len(t, sel.Exercises, 2)
	assert.Equal(t, "Barbell Overhead Press", sel.Exercises[0].Title, "levels 1-4 must skip injured body parts")
	assert.Equal(t, "Chest", sel.Exercises[1].BodyPart)
}

func TestSelector_BMIExclusions(t *testing.T) {
	repo := memory.NewExerciseRepository(
		ex("Box Jumps", "Quadriceps", "Other", "Plyometrics", domain.LevelBeginner, 9.9),
		ex("Goblet Squat", "Quadriceps", "Kettlebells", "Strength", domain.LevelBeginner, 8.0),
	)
	s := NewSelector(repo)
	sel, err := s.Select(context.Background(), Criteria{
		BodyPart:    "Quadriceps",
		Level:       domain.LevelBeginner,
		BMICategory: domain.BMIObese,
		Count:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Goblet Squat"}, titles(sel.Exercises))

	sel, err = s.Select(context.Background(), Criteria{
		BodyPart:    "Quadriceps",
		Level:       domain.LevelBeginner,
		BMICategory: domain.BMINormal,
		Count:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Box Jumps"}, titles(sel.Exercises))
}

func TestSelector_GoalPreference(t *testing.T) {
	repo := memory.NewExerciseRepository(
		ex("Sled Push", "Quadriceps", "Other", "Strongman", domain.LevelBeginner, 9.0),
		ex("Stair Sprint", "Quadriceps", "Body Only", "Cardio", domain.LevelBeginner, 5.0),
	)
	sel, err := NewSelector(repo).Select(context.Background(), Criteria{
		BodyPart: "Quadriceps",
		Level:    domain.LevelBeginner,
		Goal:     domain.GoalWeightLoss,
		Count:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Stair Sprint"}, titles(sel.Exercises))
}

func TestSelector_NeverRepeatsExercises(t *testing.T) {
	repo := fakeCatalog(t, 7, 300)
	s := NewSelector(repo)
	for _, bodyPart := range domain.BodyParts {
		for count := 1; count <= 12; count += 3 {
			sel, err := s.Select(context.Background(), Criteria{
				BodyPart:  bodyPart,
				Equipment: []string{"Dumbbell"},
				Level:     domain.LevelIntermediate,
				Count:     count,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, sel.Exercises)
			assert.LessOrEqual(t, len(sel.Exercises), count)

			seen := map[string]bool{}
			for _, e := range sel.Exercises {
				assert.False(t, seen[e.ID], "duplicate %s for %s", e.ID, bodyPart)
				seen[e.ID] = true
			}
		}
	}
}

func TestSelector_PerfectMatchIsSubsetOfEquipmentRelaxed(t *testing.T) {
	repo := fakeCatalog(t, 42, 400)
	s := NewSelector(repo)
	ctx := context.Background()

	for _, bodyPart := range domain.BodyParts {
		for _, level := range domain.Levels {
			c := Criteria{BodyPart: bodyPart, Equipment: []string{"Barbell", "Cable"}, Level: level}
			strict, err := repo.Find(ctx, s.filterFor(LevelPerfectMatch, c), 0)
			require.NoError(t, err)
			relaxed, err := repo.Find(ctx, s.filterFor(LevelEquipmentRelaxed, c), 0)
			require.NoError(t, err)

			ids := map[string]bool{}
			for _, e := range relaxed {
				ids[e.ID] = true
			}
			for _, e := range strict {
				assert.True(t, ids[e.ID], "%s missing from level 2 for %s/%s", e.Title, bodyPart, level)
			}
		}
	}
}

func TestCascadeLevel_String(t *testing.T) {
	assert.Equal(t, "perfect_match", LevelPerfectMatch.String())
	assert.Equal(t, "emergency_fallback", LevelEmergency.String())
	assert.Equal(t, "level_9", CascadeLevel(9).String())
}

func TestRelatedBodyParts(t *testing.T) {
	assert.Equal(t, []string{"Chest", "Shoulders", "Triceps"}, RelatedBodyParts("Chest"))
	assert.Equal(t, []string{"Neck"}, RelatedBodyParts("Neck"))

	for _, bp := range domain.BodyParts {
		related := RelatedBodyParts(bp)
		require.NotEmpty(t, related)
		assert.Equal(t, bp, related[0])
	}
}

func TestRPERange(t *testing.T) {
	assert.Equal(t, [2]int{7, 10}, RPERange(domain.BMINormal))
	assert.Equal(t, [2]int{3, 6}, RPERange(domain.BMIExtremelyObese))
	assert.Equal(t, [2]int{7, 10}, RPERange(""))
}
