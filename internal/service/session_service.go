package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/calories"
	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/metrics"
	"fitgen/workout-service/internal/repository"
)

const (
	MaxHistoryPerPage = 200
	MaxAnalyticsDays  = 365
	topExercisesLimit = 10

	// assumed rest between sets when a log carries no duration
	defaultRestSeconds = 60
	defaultDifficulty  = 5.0
)

// LogExerciseInput is one real-time completion event. Nil pointers mean the
// value was not reported by the client and should be derived.
type LogExerciseInput struct {
	UserID           string
	WorkoutID        string
	ExerciseID       string
	ExerciseTitle    string
	Phase            domain.Phase
	PlannedSets      int
	CompletedSets    int
	PlannedReps      int
	ActualReps       []int
	WeightUsedKg     float64
	DurationMinutes  *float64
	CaloriesBurned   *float64
	BodyWeightKg     *float64
	DifficultyRating int
	Notes            string
	WorkoutStatus    domain.WorkoutStatus
}

type SessionService interface {
	LogExercise(ctx context.Context, in LogExerciseInput) (*domain.ExerciseLogEntry, error)
	GetWorkoutStatus(ctx context.Context, userID, workoutID string) (*domain.WorkoutLogStatus, error)
	// CompleteWorkout marks every log of the workout completed and reports
	// whether anything changed. Completing twice is not an error.
	CompleteWorkout(ctx context.Context, userID, workoutID string) (bool, error)
	GetHistory(ctx context.Context, userID string, page, perPage int) (*domain.WorkoutHistoryPage, error)
	GetCalorieSummary(ctx context.Context, userID string, days int) (*domain.CalorieSummary, error)
	GetAnalytics(ctx context.Context, userID string, days int) (*domain.WorkoutAnalytics, error)
}

type sessionService struct {
	logRepo      repository.ExerciseLogRepository
	exerciseRepo repository.ExerciseRepository
	metrics      *metrics.Manager
	now          func() time.Time
}

func NewSessionService(
	logRepo repository.ExerciseLogRepository,
	exerciseRepo repository.ExerciseRepository,
	metricsManager *metrics.Manager,
) SessionService {
	return &sessionService{
		logRepo:      logRepo,
		exerciseRepo: exerciseRepo,
		metrics:      metricsManager,
		now:          time.Now,
	}
}

func (s *sessionService) LogExercise(ctx context.Context, in LogExerciseInput) (*domain.ExerciseLogEntry, error) {
	if in.WorkoutStatus == "" {
		in.WorkoutStatus = domain.WorkoutStatusInProgress
	}
	if in.DifficultyRating == 0 {
		in.DifficultyRating = int(defaultDifficulty)
	}
	if err := validateLogInput(in); err != nil {
		return nil, err
	}

	// Fallback and emergency exercises are not in the catalog, so a missing
	// exercise only costs us the type and MET used for estimates.
	exerciseType, met := "", calories.DefaultMET
	ex, err := s.exerciseRepo.GetByID(ctx, in.ExerciseID)
	switch {
	case err == nil:
		exerciseType, met = ex.Type, ex.METValue
		if in.ExerciseTitle == "" {
			in.ExerciseTitle = ex.Title
		}
	case errors.Is(err, repository.ErrNotFound):
		log.Debugf("logged exercise %s is not in the catalog", in.ExerciseID)
	default:
		log.Warnf("failed to look up logged exercise %s: %s", in.ExerciseID, err)
	}
	if in.ExerciseTitle == "" {
		in.ExerciseTitle = in.ExerciseID
	}
	if met <= 0 {
		met = calories.METValue(exerciseType, domain.LevelIntermediate)
	}

	entry := &domain.ExerciseLogEntry{
		UserID:           in.UserID,
		WorkoutID:        in.WorkoutID,
		ExerciseID:       in.ExerciseID,
		ExerciseTitle:    in.ExerciseTitle,
		Phase:            in.Phase,
		CompletedAt:      s.now().UTC(),
		PlannedSets:      in.PlannedSets,
		CompletedSets:    in.CompletedSets,
		PlannedReps:      in.PlannedReps,
		ActualReps:       in.ActualReps,
		WeightUsedKg:     in.WeightUsedKg,
		DifficultyRating: in.DifficultyRating,
		Notes:            in.Notes,
		WorkoutStatus:    domain.WorkoutStatusInProgress,
	}
	if entry.ActualReps == nil {
		entry.ActualReps = []int{}
	}

	if in.DurationMinutes != nil {
		entry.DurationMinutes = *in.DurationMinutes
	} else {
		sets := in.CompletedSets
		if sets == 0 {
			sets = in.PlannedSets
		}
		entry.DurationMinutes = calories.EstimateDuration(exerciseType, sets, in.PlannedReps, defaultRestSeconds)
	}

	switch {
	case in.CaloriesBurned != nil:
		entry.CaloriesBurned = *in.CaloriesBurned
	case in.BodyWeightKg != nil:
		burned, err := calories.Burned(met, *in.BodyWeightKg, entry.DurationMinutes)
		if err != nil {
			log.Warnf("calories not computed for log of exercise %s: %s", in.ExerciseID, err)
		}
		entry.CaloriesBurned = burned
	}

	// A workout completes once for all of its logs: a log reporting completion
	// goes through markCompleted and later logs inherit the completed status.
	completing := in.WorkoutStatus == domain.WorkoutStatusCompleted
	if s.isCompleted(ctx, in.UserID, in.WorkoutID) {
		entry.WorkoutStatus = domain.WorkoutStatusCompleted
		completing = false
	}

	if _, err := s.logRepo.Append(ctx, entry); err != nil {
		return nil, err
	}
	s.metrics.CounterExercisesLogged.Inc()

	if completing {
		if _, err := s.markCompleted(ctx, in.UserID, in.WorkoutID); err != nil {
			log.Warnf("logged exercise %s but failed to complete workout %s: %s", in.ExerciseID, in.WorkoutID, err)
		} else {
			entry.WorkoutStatus = domain.WorkoutStatusCompleted
		}
	}

	log.Infof("logged exercise %s (%d/%d sets) for workout %s", entry.ExerciseTitle, entry.CompletedSets, entry.PlannedSets, entry.WorkoutID)
	return entry, nil
}

func (s *sessionService) GetWorkoutStatus(ctx context.Context, userID, workoutID string) (*domain.WorkoutLogStatus, error) {
	logs, err := s.workoutLogs(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	status := &domain.WorkoutLogStatus{
		WorkoutID:               workoutID,
		Status:                  domain.WorkoutStatusInProgress,
		TotalExercisesCompleted: len(logs),
		Exercises:               logs,
	}
	for _, l := range logs {
		status.TotalCaloriesBurned += l.CaloriesBurned
		status.TotalDurationMinutes += l.DurationMinutes
		if l.WorkoutStatus == domain.WorkoutStatusCompleted {
			status.Status = domain.WorkoutStatusCompleted
		}
	}
	status.TotalCaloriesBurned = calories.Round1(status.TotalCaloriesBurned)
	status.TotalDurationMinutes = calories.Round1(status.TotalDurationMinutes)
	return status, nil
}

func (s *sessionService) CompleteWorkout(ctx context.Context, userID, workoutID string) (bool, error) {
	if _, err := s.workoutLogs(ctx, userID, workoutID); err != nil {
		return false, err
	}

	return s.markCompleted(ctx, userID, workoutID)
}

// markCompleted flips the user's logs of the workout and reports whether
// anything changed.
func (s *sessionService) markCompleted(ctx context.Context, userID, workoutID string) (bool, error) {
	changed, err := s.logRepo.MarkCompleted(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrWorkoutNotFound
		}
		return false, err
	}
	if changed > 0 {
		s.metrics.CounterWorkoutsCompleted.Inc()
		log.Infof("completed workout %s (%d logs)", workoutID, changed)
	}
	return changed > 0, nil
}

// isCompleted reports whether the user already completed the workout. Lookup
// failures count as not completed.
func (s *sessionService) isCompleted(ctx context.Context, userID, workoutID string) bool {
	logs, err := s.logRepo.ListByWorkout(ctx, workoutID)
	if err != nil {
		log.Warnf("failed to read logs of workout %s: %s", workoutID, err)
		return false
	}
	for _, l := range logs {
		if l.UserID == userID && l.WorkoutStatus == domain.WorkoutStatusCompleted {
			return true
		}
	}
	return false
}

// workoutLogs returns the user's logs of a workout, ErrWorkoutNotFound when
// there are none.
func (s *sessionService) workoutLogs(ctx context.Context, userID, workoutID string) ([]domain.ExerciseLogEntry, error) {
	all, err := s.logRepo.ListByWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	var logs []domain.ExerciseLogEntry
	for _, l := range all {
		if l.UserID == userID {
			logs = append(logs, l)
		}
	}
	if len(logs) == 0 {
		return nil, ErrWorkoutNotFound
	}
	return logs, nil
}

func (s *sessionService) GetHistory(ctx context.Context, userID string, page, perPage int) (*domain.WorkoutHistoryPage, error) {
	if err := validatePaging(page, perPage, MaxHistoryPerPage); err != nil {
		return nil, err
	}
	logs, total, err := s.logRepo.ListByUser(ctx, userID, page, perPage)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []domain.ExerciseLogEntry{}
	}
	return &domain.WorkoutHistoryPage{
		UserID:       userID,
		Page:         page,
		PerPage:      perPage,
		TotalRecords: total,
		History:      logs,
	}, nil
}

func (s *sessionService) GetCalorieSummary(ctx context.Context, userID string, days int) (*domain.CalorieSummary, error) {
	logs, err := s.logsWithin(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	summary := calorieSummary(userID, days, logs)
	return &summary, nil
}

func (s *sessionService) GetAnalytics(ctx context.Context, userID string, days int) (*domain.WorkoutAnalytics, error) {
	logs, err := s.logsWithin(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	analytics := &domain.WorkoutAnalytics{
		UserID:               userID,
		PeriodDays:           days,
		CalorieSummary:       calorieSummary(userID, days, logs),
		TotalExercisesLogged: len(logs),
		AverageDifficulty:    defaultDifficulty,
		TopExercises:         topExercises(logs, topExercisesLimit),
	}
	analytics.WorkoutFrequency = math.Round(float64(analytics.CalorieSummary.TotalWorkouts)/float64(days)*100) / 100

	if len(logs) > 0 {
		var sum int
		for _, l := range logs {
			sum += l.DifficultyRating
		}
		analytics.AverageDifficulty = calories.Round1(float64(sum) / float64(len(logs)))
	}

	completions := make([]time.Time, len(logs))
	for i, l := range logs {
		completions[i] = l.CompletedAt
	}
	analytics.CurrentStreakDays, analytics.LongestStreakDays = streaks(completions, s.now())

	return analytics, nil
}

func (s *sessionService) logsWithin(ctx context.Context, userID string, days int) ([]domain.ExerciseLogEntry, error) {
	if days < 1 || days > MaxAnalyticsDays {
		return nil, invalid("days", fmt.Sprintf("must be between 1 and %d", MaxAnalyticsDays))
	}
	since := s.now().UTC().AddDate(0, 0, -days)
	return s.logRepo.ListByUserSince(ctx, userID, since)
}

func calorieSummary(userID string, days int, logs []domain.ExerciseLogEntry) domain.CalorieSummary {
	summary := domain.CalorieSummary{
		UserID:         userID,
		PeriodDays:     days,
		TotalExercises: len(logs),
	}
	workouts := make(map[string]struct{})
	for _, l := range logs {
		summary.TotalCaloriesBurned += l.CaloriesBurned
		workouts[l.WorkoutID] = struct{}{}
	}
	summary.TotalWorkouts = len(workouts)
	if summary.TotalWorkouts > 0 {
		summary.AvgCaloriesPerWorkout = calories.Round1(summary.TotalCaloriesBurned / float64(summary.TotalWorkouts))
	}
	summary.TotalCaloriesBurned = calories.Round1(summary.TotalCaloriesBurned)
	return summary
}

// topExercises counts logs per title, most logged first, ties by title.
func topExercises(logs []domain.ExerciseLogEntry, limit int) []domain.ExerciseCount {
	counts := make(map[string]int)
	for _, l := range logs {
		counts[l.ExerciseTitle]++
	}
	top := make([]domain.ExerciseCount, 0, len(counts))
	for title, n := range counts {
		top = append(top, domain.ExerciseCount{Title: title, Count: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Title < top[j].Title
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

// streaks returns the current and longest runs of consecutive UTC days with at
// least one completion. The current run may end today or yesterday.
func streaks(completions []time.Time, now time.Time) (current, longest int) {
	if len(completions) == 0 {
		return 0, 0
	}

	seen := make(map[time.Time]struct{}, len(completions))
	days := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		d := c.UTC().Truncate(24 * time.Hour)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 0
	for i, d := range days {
		if i > 0 && d.Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	today := now.UTC().Truncate(24 * time.Hour)
	last := days[len(days)-1]
	if last.Equal(today) || last.Equal(today.Add(-24*time.Hour)) {
		current = run
	}
	return current, longest
}

func validateLogInput(in LogExerciseInput) error {
	switch {
	case in.UserID == "" || in.WorkoutID == "" || in.ExerciseID == "":
		return invalid("ids", "user, workout and exercise ids are required")
	case !in.Phase.IsValid():
		return invalid("phase", "must be one of warmup, main_course, stretches")
	case in.PlannedSets < 1:
		return invalid("planned_sets", "must be at least 1")
	case in.CompletedSets < 0:
		return invalid("completed_sets", "must not be negative")
	case in.PlannedReps < 1:
		return invalid("planned_reps", "must be at least 1")
	case in.WeightUsedKg < 0:
		return invalid("weight_used_kg", "must not be negative")
	case in.DurationMinutes != nil && *in.DurationMinutes < 0:
		return invalid("duration_minutes", "must not be negative")
	case in.CaloriesBurned != nil && *in.CaloriesBurned < 0:
		return invalid("calories_burned", "must not be negative")
	case in.BodyWeightKg != nil && *in.BodyWeightKg <= 0:
		return invalid("user_weight_kg", "must be positive")
	case in.DifficultyRating < 1 || in.DifficultyRating > 10:
		return invalid("difficulty_rating", "must be between 1 and 10")
	case in.WorkoutStatus != domain.WorkoutStatusInProgress && in.WorkoutStatus != domain.WorkoutStatusCompleted:
		return invalid("workout_status", "must be in_progress or completed")
	}
	for _, reps := range in.ActualReps {
		if reps < 0 {
			return invalid("actual_reps", "must not be negative")
		}
	}
	return nil
}
