package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterWorkoutsGenerated  prometheus.Counter
	CounterGenerationErrors   *prometheus.CounterVec
	CounterCascadeLevel       *prometheus.CounterVec
	CounterPhaseFallback      *prometheus.CounterVec
	CounterExercisesLogged    prometheus.Counter
	CounterWorkoutsCompleted  prometheus.Counter
	CounterHandleRequestPanic prometheus.Counter

	// gauges
	GaugeRequests prometheus.Gauge

	// histograms
	HistRequestDuration    prometheus.Histogram
	HistGenerationDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitgen", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitgen", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "route", "status"})
	counterWorkoutsGenerated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_generated",
		Help:      "The total number of generated workouts",
	})
	counterGenerationErrors := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "generation_errors",
		Help:      "The total number of failed workout generations",
	}, []string{"code"})
	counterCascadeLevel := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "selection_cascade_level",
		Help:      "Number of main course selections resolved at each cascade level",
	}, []string{"level"})
	counterPhaseFallback := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "phase_fallback",
		Help:      "Number of phases filled from fallback templates",
	}, []string{"phase"})
	counterExercisesLogged := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exercises_logged",
		Help:      "The total number of logged exercise completions",
	})
	counterWorkoutsCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_completed",
		Help:      "The total number of workouts marked completed",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of panics recovered while handling requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			Name:      "request_duration_seconds",
			Help:      "Total duration of requests in seconds",
		},
	)
	histGenerationDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			Name:      "generation_duration_seconds",
			Help:      "Duration of a single workout generation in seconds",
		},
	)

	return &Manager{
		CounterRequests:           counterRequests,
		CounterWorkoutsGenerated:  counterWorkoutsGenerated,
		CounterGenerationErrors:   counterGenerationErrors,
		CounterCascadeLevel:       counterCascadeLevel,
		CounterPhaseFallback:      counterPhaseFallback,
		CounterExercisesLogged:    counterExercisesLogged,
		CounterWorkoutsCompleted:  counterWorkoutsCompleted,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		GaugeRequests:             gaugeRequests,
		HistRequestDuration:       histReqDuration,
		HistGenerationDuration:    histGenerationDuration,
	}
}

// CascadeLevelUsed counts a selection resolved at level.
func (m *Manager) CascadeLevelUsed(_ string, level int) {
	m.CounterCascadeLevel.WithLabelValues(strconv.Itoa(level)).Inc()
}

// PhaseFallbackUsed counts a phase filled from fallback templates.
func (m *Manager) PhaseFallbackUsed(phase string) {
	m.CounterPhaseFallback.WithLabelValues(phase).Inc()
}
