package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"fitgen/workout-service/internal/domain"
)

func TestScorer_Score(t *testing.T) {
	pushups := ex("Push-ups", "Chest", "Body Only", "Strength", domain.LevelBeginner, 9)
	user := domain.UserContext{
		EquipmentAvailable:  []string{"Body Only"},
		BodyPartPreferences: map[string]float64{"Chest": 0.5},
		SatisfactionRatings: map[string]float64{"Push-ups": 8},
	}
	s := NewScorer(DefaultWeights, nil)

	// 0.1 + 0.2*0.5 + 0.15*0.8
	assert.InDelta(t, 0.32, s.Score(pushups, user), 1e-9)

	user.RecentExerciseIDs = []string{pushups.ID}
	assert.InDelta(t, 0.02, s.Score(pushups, user), 1e-9)

	assert.Zero(t, s.Score(pushups, domain.UserContext{}))
}

func TestScorer_VarietyIsBoundedAndSeeded(t *testing.T) {
	plank := ex("Plank", "Abdominals", "Body Only", "Strength", domain.LevelBeginner, 8.5)
	user := domain.UserContext{}

	a := NewScorer(DefaultWeights, rand.New(rand.NewPCG(1, 1)))
	b := NewScorer(DefaultWeights, rand.New(rand.NewPCG(1, 1)))
	for i := 0; i < 50; i++ {
		sa, sb := a.Score(plank, user), b.Score(plank, user)
		assert.Equal(t, sa, sb)
		assert.GreaterOrEqual(t, sa, 0.0)
		assert.Less(t, sa, DefaultWeights.Variety)
	}
}

func TestScorer_RankPushesRecentExercisesDown(t *testing.T) {
	a := ex("A", "Chest", "Barbell", "Strength", domain.LevelBeginner, 5)
	b := ex("B", "Chest", "Barbell", "Strength", domain.LevelBeginner, 5)
	c := ex("C", "Chest", "Body Only", "Strength", domain.LevelBeginner, 5)
	user := domain.UserContext{
		EquipmentAvailable: []string{"Body Only"},
		RecentExerciseIDs:  []string{a.ID},
	}

	ranked := NewScorer(DefaultWeights, rand.New(rand.NewPCG(3, 9))).Rank([]domain.Exercise{a, b, c}, user)
	assert.Equal(t, []string{"C", "B", "A"}, titles(ranked))
}

func TestScorer_RankKeepsInputOrderOnTies(t *testing.T) {
	a := ex("A", "Chest", "Barbell", "Strength", domain.LevelBeginner, 5)
	b := ex("B", "Back", "Cable", "Strength", domain.LevelBeginner, 5)
	ranked := NewScorer(DefaultWeights, nil).Rank([]domain.Exercise{a, b}, domain.UserContext{})
	assert.Equal(t, []string{"A", "B"}, titles(ranked))
}
