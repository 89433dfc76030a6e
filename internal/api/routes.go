package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/metrics"
	"fitgen/workout-service/internal/service"
)

const healthCheckTimeout = 2 * time.Second

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Workouts  service.WorkoutService
	Sessions  service.SessionService
	Exercises service.ExerciseService
	Dataset   service.DatasetService
	ML        service.MLService
}

// HealthCheck reports whether the backing store is reachable.
type HealthCheck func(ctx context.Context) error

func SetupRoutes(
	router *gin.Engine,
	services Services,
	metricsManager *metrics.Manager,
	registry *prometheus.Registry,
	healthCheck HealthCheck,
	defaultWeightKg float64,
) {
	workoutHandler := NewWorkoutHandler(services.Workouts, defaultWeightKg)
	sessionHandler := NewSessionHandler(services.Sessions, services.ML)
	exerciseHandler := NewExerciseHandler(services.Exercises)
	adminHandler := NewAdminHandler(services.Dataset, services.Exercises, services.ML)

	router.Use(PanicRecovery(metricsManager), RequestLogger(), RequestMetrics(metricsManager))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/health", func(c *gin.Context) {
		if healthCheck != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := healthCheck(ctx); err != nil {
				log.Warnf("health check failed: %s", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	apiV1 := router.Group("/api/v1")

	// --- User Routes ---
	userGroup := apiV1.Group("/users/:userId")
	{
		userGroup.POST("/workouts/generate", workoutHandler.GenerateWorkout)
		userGroup.GET("/workouts/:workoutId", workoutHandler.GetWorkout)

		userGroup.POST("/workouts/:workoutId/exercises/:exerciseId/log", sessionHandler.LogExercise)
		userGroup.GET("/workouts/:workoutId/status", sessionHandler.GetWorkoutStatus)
		userGroup.POST("/workouts/:workoutId/complete", sessionHandler.CompleteWorkout)

		userGroup.GET("/history", sessionHandler.GetHistory)
		userGroup.GET("/analytics", sessionHandler.GetAnalytics)
		userGroup.GET("/analytics/calories", sessionHandler.GetCalorieSummary)
		userGroup.GET("/analytics/ml", sessionHandler.GetMLAnalytics)
	}

	// --- Exercise Catalog ---
	exerciseGroup := apiV1.Group("/exercises")
	{
		exerciseGroup.GET("", exerciseHandler.ListExercises)
		exerciseGroup.GET("/:exerciseId", exerciseHandler.GetExercise)
		exerciseGroup.GET("/:exerciseId/video-url", exerciseHandler.GetVideoURL)
	}

	// --- Admin ---
	// Access control is left to the deployment (gateway or network policy).
	adminGroup := apiV1.Group("/admin")
	{
		adminGroup.POST("/dataset/load", adminHandler.LoadDataset)
		adminGroup.PUT("/exercises/:exerciseId", adminHandler.UpdateExercise)
		adminGroup.POST("/exercises/:exerciseId/video-upload-url", adminHandler.CreateVideoUploadURL)
		adminGroup.GET("/ml-config", adminHandler.GetMLConfig)
		adminGroup.PUT("/ml-config", adminHandler.UpdateMLConfig)
	}
}
