package generator

import (
	"math/rand/v2"
	"time"

	"fitgen/workout-service/internal/domain"
)

// DefaultCandidateLimit is the minimum number of candidates fetched per query.
const DefaultCandidateLimit = 50

// Recorder observes cascade and fallback decisions. metrics.Manager satisfies it.
type Recorder interface {
	CascadeLevelUsed(bodyPart string, level int)
	PhaseFallbackUsed(phase string)
}

type noopRecorder struct{}

func (noopRecorder) CascadeLevelUsed(string, int) {}
func (noopRecorder) PhaseFallbackUsed(string)     {}

type settings struct {
	candidateLimit int
	emergency      []domain.Exercise
	weights        Weights
	newRand        func() *rand.Rand
	now            func() time.Time
	recorder       Recorder
}

func defaultSettings() settings {
	return settings{
		candidateLimit: DefaultCandidateLimit,
		emergency:      EmergencyExercises(),
		weights:        DefaultWeights,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		now:      func() time.Time { return time.Now().UTC() },
		recorder: noopRecorder{},
	}
}

// Option configures a Selector or a Composer.
type Option func(*settings)

// WithCandidateLimit sets the minimum per-query candidate limit.
func WithCandidateLimit(limit int) Option {
	return func(s *settings) {
		if limit > 0 {
			s.candidateLimit = limit
		}
	}
}

// WithEmergencyExercises replaces the level 6 list.
func WithEmergencyExercises(exercises []domain.Exercise) Option {
	return func(s *settings) {
		s.emergency = exercises
	}
}

// WithWeights replaces the scoring weights.
func WithWeights(w Weights) Option {
	return func(s *settings) {
		s.weights = w
	}
}

// WithRandSeed makes every generation draw from a PCG source seeded with seed.
func WithRandSeed(seed uint64) Option {
	return func(s *settings) {
		s.newRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(seed, seed))
		}
	}
}

// WithClock overrides the time source used for workout ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// WithRecorder reports cascade levels and fallbacks to r.
func WithRecorder(r Recorder) Option {
	return func(s *settings) {
		if r != nil {
			s.recorder = r
		}
	}
}
