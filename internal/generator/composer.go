package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/calories"
	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

// Phase time allocation, in minutes.
const (
	WarmupMinutes  = 8
	StretchMinutes = 7
	MinMainMinutes = 10
)

const (
	minWarmupExercises = 2
	maxWarmupExercises = 3
	minMainExercises   = 5
	maxMainExercises   = 8
	minStretches       = 3
	maxStretches       = 5

	warmupQueryLimit     = 20
	stretchTypeLimit     = 50
	stretchBodyOnlyLimit = 30

	defaultWarmupMET = 4.0
	stretchMET       = 2.5
)

var (
	warmupBodyParts = []string{domain.BodyPartFullBody, domain.BodyPartCardio, domain.BodyPartCore}
	warmupTypes     = []string{domain.TypeCardio, domain.TypeStretching, domain.TypeWarmup}
)

// Request is the input of one workout generation.
type Request struct {
	User             domain.UserContext
	DurationMinutes  int
	IncludeWarmup    bool
	IncludeStretches bool
}

// PhasePlan is the number of minutes given to each phase.
type PhasePlan struct {
	Warmup, Main, Stretches int
}

// AllocatePhases splits total minutes into phases. When the main course
// would be shorter than MinMainMinutes, it takes the whole duration.
func AllocatePhases(total int, includeWarmup, includeStretches bool) PhasePlan {
	var plan PhasePlan
	if includeWarmup {
		plan.Warmup = WarmupMinutes
	}
	if includeStretches {
		plan.Stretches = StretchMinutes
	}
	plan.Main = total - plan.Warmup - plan.Stretches
	if plan.Main < MinMainMinutes {
		return PhasePlan{Main: total}
	}
	return plan
}

// MainExerciseCount is the number of main course exercises for a main phase
// of the given length.
func MainExerciseCount(mainMinutes int) int {
	return min(maxMainExercises, max(minMainExercises, mainMinutes/8))
}

// Composer assembles phase-structured workouts. It is safe for concurrent use.
type Composer struct {
	repo     repository.ExerciseRepository
	selector *Selector
	settings settings
}

func NewComposer(repo repository.ExerciseRepository, opts ...Option) *Composer {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Composer{
		repo:     repo,
		selector: &Selector{repo: repo, settings: s},
		settings: s,
	}
}

// Compose generates a workout for req. Failures, including panics, are
// returned as *GenerationError; missing catalog data never is one.
func (c *Composer) Compose(ctx context.Context, req Request) (workout *domain.Workout, err error) {
	logger := log.WithField("user_id", req.User.UserID)
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("workout generation panicked: %v", r)
			workout, err = nil, generationFailed(fmt.Errorf("panic: %v", r))
		}
	}()

	if len(req.User.TargetBodyParts) == 0 || req.DurationMinutes <= 0 {
		return nil, &GenerationError{
			Code:    ErrCodeInvalidRequest,
			Message: "at least one target body part and a positive duration are required",
		}
	}

	plan := AllocatePhases(req.DurationMinutes, req.IncludeWarmup, req.IncludeStretches)
	g := &generation{
		ctx:      ctx,
		c:        c,
		user:     req.User,
		scorer:   NewScorer(c.settings.weights, c.settings.newRand()),
		logger:   logger,
		cascade:  make(map[string]int, len(req.User.TargetBodyParts)),
		recorder: c.settings.recorder,
	}

	now := c.settings.now()
	workout = &domain.Workout{
		ID:              newWorkoutID(now),
		UserID:          req.User.UserID,
		GeneratedAt:     now,
		TargetBodyParts: req.User.TargetBodyParts,
		FitnessLevel:    req.User.FitnessLevel,
		CascadeLevels:   g.cascade,
	}
	workout.Phases.Warmup = summarize(g.warmup(plan.Warmup))
	workout.Phases.MainCourse = summarize(g.main(plan.Main))
	workout.Phases.Stretches = summarize(g.stretches(plan.Stretches))

	workout.TotalDurationMinutes = calories.Round1(workout.Phases.Warmup.DurationMinutes +
		workout.Phases.MainCourse.DurationMinutes + workout.Phases.Stretches.DurationMinutes)
	workout.EstimatedTotalCalories = calories.Round1(workout.Phases.Warmup.EstimatedCalories +
		workout.Phases.MainCourse.EstimatedCalories + workout.Phases.Stretches.EstimatedCalories)

	logger.WithFields(log.Fields{
		"workout_id":     workout.ID,
		"exercises":      len(workout.AllExercises()),
		"cascade_levels": g.cascade,
	}).Info("workout generated")
	return workout, nil
}

func newWorkoutID(now time.Time) string {
	return fmt.Sprintf("wk_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8])
}

// generation carries the state of a single Compose call.
type generation struct {
	ctx      context.Context
	c        *Composer
	user     domain.UserContext
	scorer   *Scorer
	logger   *log.Entry
	cascade  map[string]int
	recorder Recorder
}

func (g *generation) rank(exercises []domain.Exercise) []domain.Exercise {
	return g.scorer.Rank(exercises, g.user)
}

// query runs the given filters and concatenates their results. It stops at
// the first repository error.
func (g *generation) query(filters []domain.ExerciseFilter, limits []int) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for i, f := range filters {
		found, err := g.c.repo.Find(g.ctx, f, limits[i])
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func (g *generation) warmup(minutes int) []domain.ExerciseInstance {
	if minutes <= 0 {
		return nil
	}
	var filters []domain.ExerciseFilter
	var limits []int
	for _, bp := range warmupBodyParts {
		filters = append(filters, domain.ExerciseFilter{BodyParts: []string{bp}, Level: domain.LevelBeginner})
		limits = append(limits, warmupQueryLimit)
	}
	for _, t := range warmupTypes {
		filters = append(filters, domain.ExerciseFilter{Types: []string{t}})
		limits = append(limits, warmupQueryLimit)
	}

	candidates, err := g.query(filters, limits)
	if err != nil {
		g.logger.WithError(err).Warn("warmup query failed, using fallback warmup")
	}
	picked := truncate(g.rank(dedupe(candidates)), maxWarmupExercises)
	if len(picked) < minWarmupExercises {
		g.logger.Warn("not enough warmup exercises found, using fallback warmup")
		g.recorder.PhaseFallbackUsed(string(domain.PhaseWarmup))
		picked = pad(picked, warmupFallback, minWarmupExercises)
	}

	durations := splitEvenly(float64(minutes), len(picked))
	out := make([]domain.ExerciseInstance, len(picked))
	for i, ex := range picked {
		reps := 10
		if strings.Contains(ex.Type, domain.TypeCardio) {
			reps = 20
		}
		met := ex.METValue
		if met <= 0 {
			met = defaultWarmupMET
		}
		out[i] = g.instance(ex, domain.PhaseWarmup, i+1, durations[i], met, 1, reps, 0)
	}
	return out
}

func (g *generation) main(minutes int) []domain.ExerciseInstance {
	count := MainExerciseCount(minutes)
	level := g.user.FitnessLevel

	pools := make([][]domain.Exercise, 0, len(g.user.TargetBodyParts))
	for _, bp := range g.user.TargetBodyParts {
		sel, err := g.c.selector.Select(g.ctx, Criteria{
			BodyPart:    bp,
			Equipment:   g.user.EquipmentAvailable,
			Level:       level,
			Goal:        g.user.Goal,
			Injuries:    g.user.Injuries,
			BMICategory: g.user.BMICategory,
			Count:       count,
			Rank:        g.rank,
		})
		g.cascade[bp] = int(sel.Level)
		if errors.Is(err, ErrSelectionExhausted) {
			g.logger.WithField("body_part", bp).Warn("selection exhausted, no emergency exercises configured")
		}
		pools = append(pools, sel.Exercises)
	}

	picked := interleave(pools, count)
	if len(picked) == 0 {
		g.logger.Warn("no main course exercises found, using fallback main course")
		g.recorder.PhaseFallbackUsed(string(domain.PhaseMainCourse))
		picked = pad(nil, mainFallback, len(mainFallback))
	}

	sets, reps, rest := mainVolume(level)
	rpe := RPERange(g.user.BMICategory)
	durations := splitEvenly(float64(minutes), len(picked))
	out := make([]domain.ExerciseInstance, len(picked))
	for i, ex := range picked {
		met := ex.METValue
		if met <= 0 {
			met = calories.METValue(ex.Type, level)
		}
		inst := g.instance(ex, domain.PhaseMainCourse, i+1, durations[i], met, sets, reps, rest)
		r := rpe
		inst.RPERange = &r
		inst.Notes = injuryNotes(ex, g.user.Injuries)
		out[i] = inst
	}
	return out
}

func (g *generation) stretches(minutes int) []domain.ExerciseInstance {
	if minutes <= 0 {
		return nil
	}
	candidates, err := g.query(
		[]domain.ExerciseFilter{
			{Types: []string{domain.TypeStretching}},
			{Equipment: []string{domain.EquipmentBodyOnly}, Level: domain.LevelBeginner},
		},
		[]int{stretchTypeLimit, stretchBodyOnlyLimit},
	)
	if err != nil {
		g.logger.WithError(err).Warn("stretch query failed, using fallback stretches")
	}

	var stretches []domain.Exercise
	for _, ex := range dedupe(candidates) {
		if ex.Type == domain.TypeStretching || strings.Contains(strings.ToLower(ex.Title), "stretch") {
			stretches = append(stretches, ex)
		}
	}
	picked := truncate(g.rank(stretches), maxStretches)
	if len(picked) < minStretches {
		g.logger.Warn("not enough stretches found, using fallback stretches")
		g.recorder.PhaseFallbackUsed(string(domain.PhaseStretches))
		picked = pad(picked, stretchFallback, minStretches)
	}

	durations := splitEvenly(float64(minutes), len(picked))
	out := make([]domain.ExerciseInstance, len(picked))
	for i, ex := range picked {
		out[i] = g.instance(ex, domain.PhaseStretches, i+1, durations[i], stretchMET, 2, 1, 0)
	}
	return out
}

func (g *generation) instance(ex domain.Exercise, phase domain.Phase, order int, minutes, met float64, sets, reps, rest int) domain.ExerciseInstance {
	kcal, err := calories.Burned(met, g.user.WeightKg, minutes)
	if err != nil {
		g.logger.WithError(err).WithField("exercise_id", ex.ID).Warn("calories not estimated")
		kcal = 0
	}
	return domain.ExerciseInstance{
		ExerciseID:        ex.ID,
		Title:             ex.Title,
		Description:       ex.Description,
		BodyPart:          ex.BodyPart,
		Equipment:         ex.Equipment,
		DurationMinutes:   minutes,
		Sets:              sets,
		Reps:              reps,
		RestSeconds:       rest,
		METValue:          met,
		EstimatedCalories: kcal,
		VideoURL:          ex.VideoURL,
		Order:             order,
		Phase:             phase,
	}
}

// mainVolume returns sets, reps and rest seconds for a fitness level.
func mainVolume(level domain.Level) (sets, reps, rest int) {
	switch level {
	case domain.LevelBeginner:
		return 3, 12, 60
	case domain.LevelExpert:
		return 4, 8, 120
	default:
		return 3, 10, 90
	}
}

func injuryNotes(ex domain.Exercise, injuries []string) []string {
	var notes []string
	bodyPart := strings.ToLower(ex.BodyPart)
	for _, injury := range injuries {
		injury = strings.TrimSpace(injury)
		if injury != "" && strings.Contains(bodyPart, strings.ToLower(injury)) {
			notes = append(notes, "Modify: reduce range of motion due to "+injury)
		}
	}
	return notes
}

func summarize(exercises []domain.ExerciseInstance) domain.WorkoutPhase {
	phase := domain.WorkoutPhase{Exercises: exercises}
	if phase.Exercises == nil {
		phase.Exercises = []domain.ExerciseInstance{}
	}
	for _, ex := range exercises {
		phase.DurationMinutes += ex.DurationMinutes
		phase.EstimatedCalories += ex.EstimatedCalories
	}
	phase.DurationMinutes = calories.Round1(phase.DurationMinutes)
	phase.EstimatedCalories = calories.Round1(phase.EstimatedCalories)
	return phase
}

// splitEvenly divides total into n parts rounded to one decimal. The last part
// absorbs the rounding remainder so the parts add up to total.
func splitEvenly(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	each := calories.Round1(total / float64(n))
	out := make([]float64, n)
	var used float64
	for i := 0; i < n-1; i++ {
		out[i] = each
		used += each
	}
	out[n-1] = calories.Round1(total - used)
	return out
}

func dedupe(exercises []domain.Exercise) []domain.Exercise {
	seen := make(map[string]struct{}, len(exercises))
	var out []domain.Exercise
	for _, ex := range exercises {
		if _, dup := seen[ex.ID]; dup {
			continue
		}
		seen[ex.ID] = struct{}{}
		out = append(out, ex)
	}
	return out
}

func truncate(exercises []domain.Exercise, n int) []domain.Exercise {
	if len(exercises) > n {
		return exercises[:n]
	}
	return exercises
}

// pad appends templates not already present, by id or title, until exercises
// holds n entries or the templates run out.
func pad(exercises, templates []domain.Exercise, n int) []domain.Exercise {
	out := append([]domain.Exercise(nil), exercises...)
	for _, t := range templates {
		if len(out) >= n {
			break
		}
		present := false
		for _, ex := range out {
			if ex.ID == t.ID || strings.EqualFold(ex.Title, t.Title) {
				present = true
				break
			}
		}
		if !present {
			out = append(out, t)
		}
	}
	return out
}

// interleave takes one exercise from each pool in turn so every target body
// part is represented, skipping ids already taken, until n are picked.
func interleave(pools [][]domain.Exercise, n int) []domain.Exercise {
	p := newPool(n)
	for i := 0; !p.full(); i++ {
		progressed := false
		for _, candidates := range pools {
			if i < len(candidates) {
				progressed = true
				p.add(candidates[i : i+1])
			}
		}
		if !progressed {
			break
		}
	}
	return p.items
}
