package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/service"
)

const defaultExercisesPerPage = 100

// ExerciseHandler serves the public exercise catalog.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises godoc
// @Summary List catalog exercises
// @Description Filters repeat, e.g. ?body_part=Chest&body_part=Triceps.
// @Tags Exercises
// @Produce json
// @Param body_part query []string false "Body parts"
// @Param equipment query []string false "Equipment"
// @Param type query []string false "Exercise types"
// @Param level query string false "Level"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Page size" default(100)
// @Success 200 {object} service.ExercisePage
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	page, ok := intQuery(c, "page", 1)
	if !ok {
		return
	}
	perPage, ok := intQuery(c, "per_page", defaultExercisesPerPage)
	if !ok {
		return
	}

	filter := domain.ExerciseFilter{
		BodyParts: c.QueryArray("body_part"),
		Equipment: c.QueryArray("equipment"),
		Types:     c.QueryArray("type"),
		Level:     domain.Level(c.Query("level")),
	}
	if filter.Level != "" && !filter.Level.IsValid() {
		abortWithError(c, http.StatusBadRequest, "Invalid level query parameter.")
		return
	}

	result, err := h.exerciseService.ListExercises(c.Request.Context(), filter, page, perPage)
	if err != nil {
		abortWithServiceError(c, err, "Failed to list exercises.")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), c.Param("exerciseId"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve exercise.")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// GetVideoURL returns a playable URL: external links as stored, bucket keys
// as short-lived presigned links.
func (h *ExerciseHandler) GetVideoURL(c *gin.Context) {
	exerciseID := c.Param("exerciseId")
	url, err := h.exerciseService.GetVideoURL(c.Request.Context(), exerciseID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to get video URL.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercise_id": exerciseID, "video_url": url})
}
