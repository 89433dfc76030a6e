package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/multierr"

	"fitgen/workout-service/internal/api"
	"fitgen/workout-service/internal/cache"
	"fitgen/workout-service/internal/config"
	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/generator"
	"fitgen/workout-service/internal/logging"
	"fitgen/workout-service/internal/metrics"
	"fitgen/workout-service/internal/repository"
	"fitgen/workout-service/internal/repository/memory"
	"fitgen/workout-service/internal/repository/mongo"
	"fitgen/workout-service/internal/service"
	"fitgen/workout-service/internal/storage"
)

const shutdownTimeout = 5 * time.Second

type repositories struct {
	exercises repository.ExerciseRepository
	workouts  repository.WorkoutRepository
	logs      repository.ExerciseLogRepository
	configs   repository.ConfigRepository
}

// @title Workout Generation API
// @version 1.0
// @description Personalized workout generation, real-time exercise logging and analytics.
// @BasePath /api/v1
func main() {
	fmt.Println("starting workout service ...")

	configPath := flag.String("config", ".", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.Debugf("using server address: %s", cfg.Server.Address)

	// closers run on shutdown, in reverse order
	var closers []func() error
	var healthCheck api.HealthCheck

	// --- Repositories ---
	var repos repositories
	if cfg.Database.InMemory() {
		log.Warnln("using in-memory repositories, nothing will be persisted")
		repos = repositories{
			exercises: memory.NewExerciseRepository(),
			workouts:  memory.NewWorkoutRepository(),
			logs:      memory.NewExerciseLogRepository(),
			configs:   memory.NewConfigRepository(),
		}
	} else {
		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("connect to mongodb: %s", err)
		}
		closers = append(closers, func() error { return mongo.DisconnectDB(dbClient) })
		healthCheck = func(ctx context.Context) error { return dbClient.Ping(ctx, readpref.Primary()) }

		appDB := dbClient.Database(cfg.Database.Name)
		indexCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if err := mongo.EnsureIndexes(indexCtx, appDB); err != nil {
			log.Errorf("ensure mongo indexes: %s", err)
		}
		cancel()

		repos = repositories{
			exercises: mongo.NewMongoExerciseRepository(appDB),
			workouts:  mongo.NewMongoWorkoutRepository(appDB),
			logs:      mongo.NewMongoExerciseLogRepository(appDB),
			configs:   mongo.NewMongoConfigRepository(appDB),
		}
		log.Printf("connected to mongodb database %s", cfg.Database.Name)
	}

	// --- Catalog cache ---
	switch cfg.Cache.Backend {
	case config.CacheFreecache:
		repos.exercises = cache.NewExerciseRepository(repos.exercises, cache.NewFreeCache(cfg.Cache.SizeMB), cfg.Cache.TTL)
		log.Debugf("catalog cache: freecache (%d MB)", cfg.Cache.SizeMB)
	case config.CacheRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Errorf("redis at %s unreachable, catalog cache disabled: %s", cfg.Cache.RedisAddr, err)
			_ = redisClient.Close()
			break
		}
		closers = append(closers, redisClient.Close)
		repos.exercises = cache.NewExerciseRepository(repos.exercises, cache.NewRedisCache(redisClient, "fitgen:"), cfg.Cache.TTL)
		log.Debugf("catalog cache: redis at %s", cfg.Cache.RedisAddr)
	case config.CacheNone, "":
		log.Debugln("catalog cache disabled")
	default:
		log.Fatalf("unknown cache backend: %s", cfg.Cache.Backend)
	}

	// --- Metrics ---
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, promRegistry)

	// --- Video storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("init s3 storage: %s", err)
		}
	} else {
		log.Warnln("s3 bucket not configured, video uploads disabled")
	}

	// --- Services ---
	composer := generator.NewComposer(repos.exercises,
		generator.WithCandidateLimit(cfg.Generation.CandidateLimit),
		generator.WithRecorder(metricsManager),
	)
	mlDefaults := domain.DefaultMLConfig()
	mlDefaults.TrainingWindowDays = cfg.ML.TrainingWindowDays
	mlDefaults.MinSessionsForTraining = cfg.ML.MinSessionsForTraining

	services := api.Services{
		Workouts:  service.NewWorkoutService(composer, repos.workouts, repos.logs, metricsManager),
		Sessions:  service.NewSessionService(repos.logs, repos.exercises, metricsManager),
		Exercises: service.NewExerciseService(repos.exercises, fileStorage, cfg.S3.PresignExpiry),
		Dataset:   service.NewDatasetService(repos.exercises, cfg.Dataset.CSVPath),
		ML:        service.NewMLService(repos.configs, repos.logs, mlDefaults),
	}

	if cfg.Dataset.LoadOnStartup {
		loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		result, err := services.Dataset.LoadFile(loadCtx, "")
		cancel()
		if err != nil {
			log.Errorf("load dataset on startup: %s", err)
		} else {
			log.Infof("dataset loaded on startup: %d exercises, %d skipped", result.Loaded, result.Skipped)
		}
	}

	// --- HTTP ---
	if cfg.Server.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.SetupRoutes(router, services, metricsManager, promRegistry, healthCheck, cfg.Generation.DefaultWeightKg)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	<-chOsInterrupt
	log.Warnln("os interrupt received, shutting down ...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := server.Shutdown(ctx)
	for i := len(closers) - 1; i >= 0; i-- {
		shutdownErr = multierr.Append(shutdownErr, closers[i]())
	}
	if shutdownErr != nil {
		log.Errorf("shutdown: %s", shutdownErr)
		os.Exit(1)
	}
	log.Infoln("server exited")
}
