package api

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/generator"
	"fitgen/workout-service/internal/metrics"
	"fitgen/workout-service/internal/service"
	"fitgen/workout-service/internal/storage"
)

// RequestLogger emits one log entry per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Debug("request served")
		}
	}
}

// RequestMetrics records request counts and latencies. Routes are labelled by
// their pattern, not the raw path, to keep label cardinality bounded.
func RequestMetrics(metricsManager *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		metricsManager.GaugeRequests.Inc()
		defer func(begin time.Time) {
			metricsManager.GaugeRequests.Dec()
			metricsManager.HistRequestDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metricsManager.CounterRequests.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// PanicRecovery turns handler panics into a 500 response.
func PanicRecovery(metricsManager *metrics.Manager) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Errorf("http: panic serving %s: %v\n%s", c.Request.URL.Path, recovered, debug.Stack())
		metricsManager.CounterHandleRequestPanic.Inc()
		abortWithError(c, http.StatusInternalServerError, "Internal server error.")
	})
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps service layer errors to HTTP responses.
func abortWithServiceError(c *gin.Context, err error, fallbackMessage string) {
	var genErr *generator.GenerationError
	switch {
	case errors.Is(err, service.ErrValidationFailed), errors.Is(err, service.ErrDatasetMalformed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrDatasetNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrStorageDisabled):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &genErr):
		code := http.StatusInternalServerError
		if genErr.Code == generator.ErrCodeInvalidRequest {
			code = http.StatusBadRequest
		}
		log.Warnf("workout generation failed: %s", genErr)
		c.AbortWithStatusJSON(code, genErr)
	default:
		log.Errorf("%s: %s", fallbackMessage, err)
		abortWithError(c, http.StatusInternalServerError, fallbackMessage)
	}
}
