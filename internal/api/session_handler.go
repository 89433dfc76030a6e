package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/service"
)

const (
	defaultHistoryPerPage = 50
	defaultAnalyticsDays  = 30
)

// SessionHandler serves real-time logging, history and analytics.
type SessionHandler struct {
	sessionService service.SessionService
	mlService      service.MLService
}

func NewSessionHandler(sessionService service.SessionService, mlService service.MLService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService, mlService: mlService}
}

// --- DTOs ---

// LogExerciseRequest is one completed exercise. Omitted duration and calories
// are estimated from the catalog entry.
type LogExerciseRequest struct {
	ExerciseTitle    string   `json:"exercise_title"`
	Phase            string   `json:"phase" binding:"required"`
	PlannedSets      int      `json:"planned_sets"`
	CompletedSets    int      `json:"completed_sets"`
	PlannedReps      int      `json:"planned_reps"`
	ActualReps       []int    `json:"actual_reps"`
	WeightUsedKg     float64  `json:"weight_used_kg"`
	DurationMinutes  *float64 `json:"duration_minutes"`
	CaloriesBurned   *float64 `json:"calories_burned"`
	UserWeightKg     *float64 `json:"user_weight_kg"`
	DifficultyRating int      `json:"difficulty_rating"`
	Notes            string   `json:"notes"`
	WorkoutStatus    string   `json:"workout_status"`
}

type LogExerciseResponse struct {
	Status          string    `json:"status"`
	LogID           string    `json:"log_id"`
	UserID          string    `json:"user_id"`
	WorkoutID       string    `json:"workout_id"`
	ExerciseID      string    `json:"exercise_id"`
	ExerciseTitle   string    `json:"exercise_title"`
	CompletedAt     time.Time `json:"completed_at"`
	DurationMinutes float64   `json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`
	Message         string    `json:"message"`
}

// MLAnalyticsResponse is the 30 day analytics view plus the readiness signal.
type MLAnalyticsResponse struct {
	*domain.WorkoutAnalytics
	MLTrainingReady bool                `json:"ml_training_ready"`
	MLReadiness     *domain.MLReadiness `json:"ml_readiness"`
}

// --- Handler Methods ---

// LogExercise godoc
// @Summary Log an exercise completion in real time
// @Tags Logging
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param workoutId path string true "Workout ID"
// @Param exerciseId path string true "Exercise ID"
// @Param log body LogExerciseRequest true "Completion data"
// @Success 201 {object} LogExerciseResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /users/{userId}/workouts/{workoutId}/exercises/{exerciseId}/log [post]
func (h *SessionHandler) LogExercise(c *gin.Context) {
	var req LogExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.sessionService.LogExercise(c.Request.Context(), service.LogExerciseInput{
		UserID:           c.Param("userId"),
		WorkoutID:        c.Param("workoutId"),
		ExerciseID:       c.Param("exerciseId"),
		ExerciseTitle:    req.ExerciseTitle,
		Phase:            domain.Phase(req.Phase),
		PlannedSets:      req.PlannedSets,
		CompletedSets:    req.CompletedSets,
		PlannedReps:      req.PlannedReps,
		ActualReps:       req.ActualReps,
		WeightUsedKg:     req.WeightUsedKg,
		DurationMinutes:  req.DurationMinutes,
		CaloriesBurned:   req.CaloriesBurned,
		BodyWeightKg:     req.UserWeightKg,
		DifficultyRating: req.DifficultyRating,
		Notes:            req.Notes,
		WorkoutStatus:    domain.WorkoutStatus(req.WorkoutStatus),
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to log exercise.")
		return
	}

	c.JSON(http.StatusCreated, LogExerciseResponse{
		Status:          "success",
		LogID:           entry.ID,
		UserID:          entry.UserID,
		WorkoutID:       entry.WorkoutID,
		ExerciseID:      entry.ExerciseID,
		ExerciseTitle:   entry.ExerciseTitle,
		CompletedAt:     entry.CompletedAt,
		DurationMinutes: entry.DurationMinutes,
		CaloriesBurned:  entry.CaloriesBurned,
		Message:         "Exercise logged successfully",
	})
}

func (h *SessionHandler) GetWorkoutStatus(c *gin.Context) {
	status, err := h.sessionService.GetWorkoutStatus(c.Request.Context(), c.Param("userId"), c.Param("workoutId"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to get workout status.")
		return
	}
	c.JSON(http.StatusOK, status)
}

// CompleteWorkout marks a workout completed. Completing it again succeeds
// with changed=false.
func (h *SessionHandler) CompleteWorkout(c *gin.Context) {
	workoutID := c.Param("workoutId")
	changed, err := h.sessionService.CompleteWorkout(c.Request.Context(), c.Param("userId"), workoutID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to complete workout.")
		return
	}

	message := "Workout completed successfully"
	if !changed {
		message = "Workout was already completed"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"workout_id": workoutID,
		"changed":    changed,
		"message":    message,
	})
}

func (h *SessionHandler) GetHistory(c *gin.Context) {
	page, ok := intQuery(c, "page", 1)
	if !ok {
		return
	}
	perPage, ok := intQuery(c, "per_page", defaultHistoryPerPage)
	if !ok {
		return
	}

	history, err := h.sessionService.GetHistory(c.Request.Context(), c.Param("userId"), page, perPage)
	if err != nil {
		abortWithServiceError(c, err, "Failed to fetch workout history.")
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *SessionHandler) GetCalorieSummary(c *gin.Context) {
	days, ok := intQuery(c, "days", defaultAnalyticsDays)
	if !ok {
		return
	}
	summary, err := h.sessionService.GetCalorieSummary(c.Request.Context(), c.Param("userId"), days)
	if err != nil {
		abortWithServiceError(c, err, "Failed to fetch calorie summary.")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *SessionHandler) GetAnalytics(c *gin.Context) {
	days, ok := intQuery(c, "days", defaultAnalyticsDays)
	if !ok {
		return
	}
	analytics, err := h.sessionService.GetAnalytics(c.Request.Context(), c.Param("userId"), days)
	if err != nil {
		abortWithServiceError(c, err, "Failed to compute analytics.")
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *SessionHandler) GetMLAnalytics(c *gin.Context) {
	userID := c.Param("userId")
	analytics, err := h.sessionService.GetAnalytics(c.Request.Context(), userID, defaultAnalyticsDays)
	if err != nil {
		abortWithServiceError(c, err, "Failed to compute analytics.")
		return
	}
	readiness, err := h.mlService.Readiness(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to check ML readiness.")
		return
	}

	c.JSON(http.StatusOK, MLAnalyticsResponse{
		WorkoutAnalytics: analytics,
		MLTrainingReady:  readiness.Ready,
		MLReadiness:      readiness,
	})
}

// intQuery parses an optional integer query parameter, aborting with 400 on
// garbage.
func intQuery(c *gin.Context, key string, fallback int) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+key+" query parameter.")
		return 0, false
	}
	return v, true
}
