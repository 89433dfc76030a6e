package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

// MLService owns the ML training configuration and the readiness signal
// derived from it. No model is trained here.
type MLService interface {
	GetConfig(ctx context.Context) (*domain.MLConfig, error)
	UpdateConfig(ctx context.Context, trainingWindowDays, minSessions int) (*domain.MLConfig, error)
	Readiness(ctx context.Context, userID string) (*domain.MLReadiness, error)
}

type mlService struct {
	configRepo repository.ConfigRepository
	logRepo    repository.ExerciseLogRepository
	defaults   domain.MLConfig
	now        func() time.Time
}

// NewMLService creates the service. defaults is stored the first time the
// configuration is read and none exists yet.
func NewMLService(configRepo repository.ConfigRepository, logRepo repository.ExerciseLogRepository, defaults domain.MLConfig) MLService {
	if defaults.Validate() != nil {
		log.Warnf("invalid ML config defaults %d days / %d sessions, using built-in defaults",
			defaults.TrainingWindowDays, defaults.MinSessionsForTraining)
		defaults = domain.DefaultMLConfig()
	}
	return &mlService{
		configRepo: configRepo,
		logRepo:    logRepo,
		defaults:   defaults,
		now:        time.Now,
	}
}

func (s *mlService) GetConfig(ctx context.Context) (*domain.MLConfig, error) {
	cfg, err := s.configRepo.GetMLConfig(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	created := s.defaults
	created.ConfigType = domain.MLConfigType
	created.CreatedAt, created.LastUpdated = now, now
	if err := s.configRepo.SaveMLConfig(ctx, &created); err != nil {
		return nil, err
	}
	log.Infof("created default ML config: %d days / %d sessions", created.TrainingWindowDays, created.MinSessionsForTraining)
	return &created, nil
}

func (s *mlService) UpdateConfig(ctx context.Context, trainingWindowDays, minSessions int) (*domain.MLConfig, error) {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	updated := *cfg
	updated.TrainingWindowDays = trainingWindowDays
	updated.MinSessionsForTraining = minSessions
	if err := updated.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	updated.LastUpdated = s.now().UTC()

	if err := s.configRepo.SaveMLConfig(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Readiness counts the distinct workouts the user logged within the training
// window and compares the count to the configured minimum.
func (s *mlService) Readiness(ctx context.Context, userID string) (*domain.MLReadiness, error) {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	since := s.now().UTC().AddDate(0, 0, -cfg.TrainingWindowDays)
	logs, err := s.logRepo.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	workouts := make(map[string]struct{})
	for _, l := range logs {
		workouts[l.WorkoutID] = struct{}{}
	}

	readiness := &domain.MLReadiness{
		UserID:             userID,
		WorkoutsInWindow:   len(workouts),
		TrainingWindowDays: cfg.TrainingWindowDays,
		MinSessions:        cfg.MinSessionsForTraining,
	}
	readiness.Ready = readiness.WorkoutsInWindow >= cfg.MinSessionsForTraining
	log.Debugf("ML readiness for user %s: %d/%d workouts in %d days",
		userID, readiness.WorkoutsInWindow, cfg.MinSessionsForTraining, cfg.TrainingWindowDays)
	return readiness, nil
}
