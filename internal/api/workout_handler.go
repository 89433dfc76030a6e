package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/service"
)

// Request defaults for omitted generation fields.
const (
	defaultDurationMinutes = 60
	defaultFitnessLevel    = domain.LevelIntermediate
)

// WorkoutHandler holds the workout generation dependencies.
type WorkoutHandler struct {
	workoutService  service.WorkoutService
	defaultWeightKg float64
}

func NewWorkoutHandler(workoutService service.WorkoutService, defaultWeightKg float64) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, defaultWeightKg: defaultWeightKg}
}

// --- DTOs ---

// GenerateWorkoutRequest defines the expected JSON for generating a workout.
// Ranges are checked by the service so every violation reports its field.
type GenerateWorkoutRequest struct {
	TargetBodyParts  []string `json:"target_body_parts" binding:"required"`
	DurationMinutes  *int     `json:"duration_minutes"`
	UserWeightKg     *float64 `json:"user_weight_kg"`
	IncludeWarmup    *bool    `json:"include_warmup"`
	IncludeStretches *bool    `json:"include_stretches"`
	FitnessLevel     string   `json:"fitness_level"`

	// Optional user context
	Goal                string             `json:"goal"`
	Equipment           []string           `json:"equipment"`
	Injuries            []string           `json:"injuries"`
	BMICategory         string             `json:"bmi_category"`
	BodyPartPreferences map[string]float64 `json:"body_part_preferences"`
	SatisfactionRatings map[string]float64 `json:"satisfaction_ratings"`
}

func (r GenerateWorkoutRequest) toInput(userID string, defaultWeightKg float64) service.GenerateWorkoutInput {
	in := service.GenerateWorkoutInput{
		UserID:              userID,
		TargetBodyParts:     r.TargetBodyParts,
		DurationMinutes:     defaultDurationMinutes,
		WeightKg:            defaultWeightKg,
		IncludeWarmup:       true,
		IncludeStretches:    true,
		FitnessLevel:        defaultFitnessLevel,
		Goal:                r.Goal,
		Equipment:           r.Equipment,
		Injuries:            r.Injuries,
		BMICategory:         r.BMICategory,
		BodyPartPreferences: r.BodyPartPreferences,
		SatisfactionRatings: r.SatisfactionRatings,
	}
	if r.DurationMinutes != nil {
		in.DurationMinutes = *r.DurationMinutes
	}
	if r.UserWeightKg != nil {
		in.WeightKg = *r.UserWeightKg
	}
	if r.IncludeWarmup != nil {
		in.IncludeWarmup = *r.IncludeWarmup
	}
	if r.IncludeStretches != nil {
		in.IncludeStretches = *r.IncludeStretches
	}
	if r.FitnessLevel != "" {
		in.FitnessLevel = domain.Level(r.FitnessLevel)
	}
	return in
}

// --- Handler Methods ---

// GenerateWorkout godoc
// @Summary Generate a structured workout
// @Description Composes a warmup, main course and stretches workout for the user.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body GenerateWorkoutRequest true "Generation parameters"
// @Success 200 {object} domain.Workout
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} generator.GenerationError "Generation failed"
// @Router /users/{userId}/workouts/generate [post]
func (h *WorkoutHandler) GenerateWorkout(c *gin.Context) {
	var req GenerateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.GenerateWorkout(c.Request.Context(), req.toInput(c.Param("userId"), h.defaultWeightKg))
	if err != nil {
		abortWithServiceError(c, err, "Failed to generate workout. Please try again.")
		return
	}

	c.JSON(http.StatusOK, workout)
}

// GetWorkout godoc
// @Summary Get a generated workout
// @Tags Workouts
// @Produce json
// @Param userId path string true "User ID"
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} gin.H "Workout not found"
// @Router /users/{userId}/workouts/{workoutId} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), c.Param("userId"), c.Param("workoutId"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve workout.")
		return
	}
	c.JSON(http.StatusOK, workout)
}
