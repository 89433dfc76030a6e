package generator

import (
	"math/rand/v2"
	"sort"

	"fitgen/workout-service/internal/domain"
)

// Weights are the coefficients of the additive exercise score.
type Weights struct {
	EquipmentMatch     float64
	BodyPartPreference float64
	PastSatisfaction   float64
	RecencyPenalty     float64 // negative
	Variety            float64
}

var DefaultWeights = Weights{
	EquipmentMatch:     0.1,
	BodyPartPreference: 0.2,
	PastSatisfaction:   0.15,
	RecencyPenalty:     -0.3,
	Variety:            0.1,
}

// Scorer ranks candidate exercises for a user. A Scorer is not safe for
// concurrent use because of its random source; create one per generation.
type Scorer struct {
	weights Weights
	rng     *rand.Rand
}

// NewScorer returns a Scorer drawing variety jitter from rng.
// A nil rng disables the variety term.
func NewScorer(weights Weights, rng *rand.Rand) *Scorer {
	return &Scorer{weights: weights, rng: rng}
}

// Score returns the preference score of ex for user; higher is better.
func (s *Scorer) Score(ex domain.Exercise, user domain.UserContext) float64 {
	var score float64
	if user.HasEquipment(ex.Equipment) {
		score += s.weights.EquipmentMatch
	}
	if pref, ok := user.BodyPartPreferences[ex.BodyPart]; ok {
		score += s.weights.BodyPartPreference * pref
	}
	if rating, ok := user.SatisfactionRatings[ex.Title]; ok {
		score += s.weights.PastSatisfaction * (rating / 10)
	}
	if user.IsRecent(ex.ID) {
		score += s.weights.RecencyPenalty
	}
	if s.rng != nil {
		score += s.weights.Variety * s.rng.Float64()
	}
	return score
}

// Rank returns exercises ordered by descending score. Each exercise is scored
// exactly once; ties keep their input order.
func (s *Scorer) Rank(exercises []domain.Exercise, user domain.UserContext) []domain.Exercise {
	type scored struct {
		ex    domain.Exercise
		score float64
	}
	all := make([]scored, len(exercises))
	for i, ex := range exercises {
		all[i] = scored{ex: ex, score: s.Score(ex, user)}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	ranked := make([]domain.Exercise, len(all))
	for i, sc := range all {
		ranked[i] = sc.ex
	}
	return ranked
}
