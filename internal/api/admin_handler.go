package api

import (
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/service"
)

// AdminHandler serves catalog maintenance and ML configuration.
type AdminHandler struct {
	datasetService  service.DatasetService
	exerciseService service.ExerciseService
	mlService       service.MLService
}

func NewAdminHandler(datasetService service.DatasetService, exerciseService service.ExerciseService, mlService service.MLService) *AdminHandler {
	return &AdminHandler{
		datasetService:  datasetService,
		exerciseService: exerciseService,
		mlService:       mlService,
	}
}

// --- DTOs ---

type ExerciseUpdateRequest struct {
	VideoURL             *string `json:"video_url"`
	VideoDurationSeconds *int    `json:"video_duration_seconds"`
	IsActive             *bool   `json:"is_active"`
}

type VideoUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

type MLConfigRequest struct {
	TrainingWindowDays     int `json:"training_window_days" binding:"required"`
	MinSessionsForTraining int `json:"min_sessions_for_training" binding:"required"`
}

// --- Handler Methods ---

// LoadDataset godoc
// @Summary Import the exercise dataset
// @Description Accepts a CSV body (text/csv), a multipart "file" field, or
// @Description nothing, in which case the configured or csv_path file is read.
// @Tags Admin
// @Produce json
// @Param csv_path query string false "Server-side CSV path"
// @Success 200 {object} service.DatasetLoadResult
// @Failure 400 {object} gin.H "Malformed dataset"
// @Router /admin/dataset/load [post]
func (h *AdminHandler) LoadDataset(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		result *service.DatasetLoadResult
		err    error
	)
	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
	switch mediaType {
	case "text/csv":
		result, err = h.datasetService.LoadCSV(ctx, c.Request.Body)
	case "multipart/form-data":
		fileHeader, ferr := c.FormFile("file")
		if ferr != nil {
			abortWithError(c, http.StatusBadRequest, "Missing 'file' form field.")
			return
		}
		var f io.ReadCloser
		f, ferr = fileHeader.Open()
		if ferr != nil {
			abortWithError(c, http.StatusBadRequest, "Unreadable upload.")
			return
		}
		defer f.Close()
		result, err = h.datasetService.LoadCSV(ctx, f)
	default:
		result, err = h.datasetService.LoadFile(ctx, c.Query("csv_path"))
	}
	if err != nil {
		abortWithServiceError(c, err, "Failed to load dataset.")
		return
	}

	log.Infof("dataset import: %d loaded, %d skipped", result.Loaded, result.Skipped)
	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) UpdateExercise(c *gin.Context) {
	var req ExerciseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), c.Param("exerciseId"), domain.ExerciseUpdate{
		VideoURL:             req.VideoURL,
		VideoDurationSeconds: req.VideoDurationSeconds,
		IsActive:             req.IsActive,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to update exercise.")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// CreateVideoUploadURL godoc
// @Summary Presign a video upload for an exercise
// @Tags Admin
// @Accept json
// @Produce json
// @Param exerciseId path string true "Exercise ID"
// @Param request body VideoUploadRequest true "Video content type"
// @Success 200 {object} service.VideoUpload
// @Failure 503 {object} gin.H "Video storage not configured"
// @Router /admin/exercises/{exerciseId}/video-upload-url [post]
func (h *AdminHandler) CreateVideoUploadURL(c *gin.Context) {
	var req VideoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	upload, err := h.exerciseService.CreateVideoUploadURL(c.Request.Context(), c.Param("exerciseId"), req.ContentType)
	if err != nil {
		abortWithServiceError(c, err, "Failed to create upload URL.")
		return
	}
	c.JSON(http.StatusOK, upload)
}

func (h *AdminHandler) GetMLConfig(c *gin.Context) {
	cfg, err := h.mlService.GetConfig(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err, "Failed to get ML configuration.")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *AdminHandler) UpdateMLConfig(c *gin.Context) {
	var req MLConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cfg, err := h.mlService.UpdateConfig(c.Request.Context(), req.TrainingWindowDays, req.MinSessionsForTraining)
	if err != nil {
		abortWithServiceError(c, err, "Failed to update ML configuration.")
		return
	}
	c.JSON(http.StatusOK, cfg)
}
