package generator

import (
	"context"
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

// CascadeLevel is one of the progressively relaxed selection strategies.
type CascadeLevel int

const (
	LevelPerfectMatch CascadeLevel = iota + 1
	LevelEquipmentRelaxed
	LevelDifficultyRelaxed
	LevelRelatedBodyParts
	LevelSafetyRelaxed
	LevelEmergency
)

func (l CascadeLevel) String() string {
	switch l {
	case LevelPerfectMatch:
		return "perfect_match"
	case LevelEquipmentRelaxed:
		return "equipment_relaxed"
	case LevelDifficultyRelaxed:
		return "difficulty_relaxed"
	case LevelRelatedBodyParts:
		return "related_body_parts"
	case LevelSafetyRelaxed:
		return "safety_relaxed"
	case LevelEmergency:
		return "emergency_fallback"
	default:
		return fmt.Sprintf("level_%d", int(l))
	}
}

// ErrSelectionExhausted is returned when even the emergency list yields nothing.
var ErrSelectionExhausted = errors.New("exercise selection exhausted")

// Criteria describes what the caller needs for one target body part.
type Criteria struct {
	BodyPart    string
	Equipment   []string // empty means any equipment
	Level       domain.Level
	Goal        string
	Injuries    []string
	BMICategory string
	Count       int
	// Rank orders each level's candidates before the pool is truncated.
	// Nil keeps the repository order.
	Rank func([]domain.Exercise) []domain.Exercise
}

// Selection is the outcome of a cascade run.
type Selection struct {
	Exercises []domain.Exercise
	// Level is the deepest cascade level consulted.
	Level CascadeLevel
}

// goalTypes lists the exercise types preferred for each goal.
var goalTypes = map[string][]string{
	domain.GoalWeightLoss:          {domain.TypeCardio, domain.TypeHIIT, domain.TypePlyometrics, domain.TypeCircuitTraining},
	domain.GoalMuscleGain:          {domain.TypeStrength, domain.TypePowerlifting},
	domain.GoalStrength:            {domain.TypeStrength, domain.TypePowerlifting, domain.TypeOlympicWeightlifting, domain.TypeStrongman},
	domain.GoalEndurance:           {domain.TypeCardio, domain.TypeCircuitTraining, domain.TypeCrossfit},
	domain.GoalAthleticPerformance: {domain.TypePlyometrics, domain.TypeOlympicWeightlifting, domain.TypeCrossfit},
}

// Selector runs the six level selection cascade against an exercise repository.
// It holds no per-call state and is safe for concurrent use.
type Selector struct {
	repo     repository.ExerciseRepository
	settings settings
}

func NewSelector(repo repository.ExerciseRepository, opts ...Option) *Selector {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Selector{repo: repo, settings: s}
}

// Select returns up to c.Count exercises for c.BodyPart. Levels are tried in
// order; a level that leaves the pool short is padded by the next one without
// repeating exercise ids. A repository failure skips straight to the emergency
// list. The result is empty only when the emergency list is, in which case
// ErrSelectionExhausted is returned.
func (s *Selector) Select(ctx context.Context, c Criteria) (Selection, error) {
	if c.Count < 1 {
		c.Count = 1
	}
	logger := log.WithFields(log.Fields{"body_part": c.BodyPart, "count": c.Count})

	pool := newPool(c.Count)
	limit := max(c.Count*4, s.settings.candidateLimit)
	rule := safetyFor(c.BMICategory)

	for level := LevelPerfectMatch; level < LevelEmergency; level++ {
		found, err := s.repo.Find(ctx, s.filterFor(level, c), limit)
		if err != nil {
			logger.WithError(err).Warnf("exercise repository failed at cascade level %d, using emergency list", level)
			break
		}
		if level != LevelSafetyRelaxed {
			found = keepSafe(found, rule, c.Injuries)
		}
		if c.Rank != nil {
			found = c.Rank(found)
		}
		pool.add(preferGoal(found, c.Goal))
		if pool.full() {
			s.settings.recorder.CascadeLevelUsed(c.BodyPart, int(level))
			return Selection{Exercises: pool.items, Level: level}, nil
		}
		logger.Debugf("cascade level %d (%s) left %d/%d candidates", level, level, len(pool.items), c.Count)
	}

	logger.Warnf("cascade exhausted for %s, using emergency list", c.BodyPart)
	pool.add(s.emergencyFor(c.BodyPart))
	s.settings.recorder.CascadeLevelUsed(c.BodyPart, int(LevelEmergency))
	if len(pool.items) == 0 {
		return Selection{Level: LevelEmergency}, ErrSelectionExhausted
	}
	return Selection{Exercises: pool.items, Level: LevelEmergency}, nil
}

// filterFor builds the repository filter of a cascade level below LevelEmergency.
func (s *Selector) filterFor(level CascadeLevel, c Criteria) domain.ExerciseFilter {
	bodyParts := []string{c.BodyPart}
	switch level {
	case LevelPerfectMatch:
		return domain.ExerciseFilter{BodyParts: bodyParts, Equipment: c.Equipment, Level: c.Level}
	case LevelEquipmentRelaxed:
		return domain.ExerciseFilter{BodyParts: bodyParts, Level: c.Level}
	case LevelDifficultyRelaxed:
		return domain.ExerciseFilter{BodyParts: bodyParts, Equipment: c.Equipment}
	case LevelRelatedBodyParts:
		return domain.ExerciseFilter{BodyParts: RelatedBodyParts(c.BodyPart), Equipment: c.Equipment}
	default:
		return domain.ExerciseFilter{BodyParts: bodyParts}
	}
}

// emergencyFor prefers emergency entries for bodyPart or the full body and
// falls back to the whole list.
func (s *Selector) emergencyFor(bodyPart string) []domain.Exercise {
	var matching []domain.Exercise
	for _, ex := range s.settings.emergency {
		if ex.BodyPart == bodyPart || ex.BodyPart == domain.BodyPartFullBody {
			matching = append(matching, ex)
		}
	}
	if len(matching) == 0 {
		matching = s.settings.emergency
	}
	out := make([]domain.Exercise, len(matching))
	copy(out, matching)
	return out
}

func keepSafe(exercises []domain.Exercise, rule safetyRule, injuries []string) []domain.Exercise {
	var kept []domain.Exercise
	for _, ex := range exercises {
		if rule.allows(ex) && injuryConflict(ex, injuries) == "" {
			kept = append(kept, ex)
		}
	}
	return kept
}

// preferGoal moves exercises whose type suits goal to the front, keeping the
// repository order otherwise.
func preferGoal(exercises []domain.Exercise, goal string) []domain.Exercise {
	preferred := goalTypes[goal]
	if len(preferred) == 0 {
		return exercises
	}
	suits := func(ex domain.Exercise) bool {
		for _, t := range preferred {
			if ex.Type == t {
				return true
			}
		}
		return false
	}
	out := make([]domain.Exercise, len(exercises))
	copy(out, exercises)
	sort.SliceStable(out, func(i, j int) bool { return suits(out[i]) && !suits(out[j]) })
	return out
}

// pool accumulates exercises up to a capacity, deduplicated by id.
type pool struct {
	capacity int
	seen     map[string]struct{}
	items    []domain.Exercise
}

func newPool(capacity int) *pool {
	return &pool{capacity: capacity, seen: make(map[string]struct{})}
}

func (p *pool) add(exercises []domain.Exercise) {
	for _, ex := range exercises {
		if p.full() {
			return
		}
		if _, dup := p.seen[ex.ID]; dup {
			continue
		}
		p.seen[ex.ID] = struct{}{}
		p.items = append(p.items, ex)
	}
}

func (p *pool) full() bool {
	return len(p.items) >= p.capacity
}
