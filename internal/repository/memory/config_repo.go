package memory

import (
	"context"
	"sync"

	"fitgen/workout-service/internal/domain"
	"fitgen/workout-service/internal/repository"
)

// ConfigRepository is an in-memory repository.ConfigRepository.
type ConfigRepository struct {
	mu sync.RWMutex
	ml *domain.MLConfig
}

var _ repository.ConfigRepository = (*ConfigRepository)(nil)

func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

func (r *ConfigRepository) GetMLConfig(ctx context.Context) (*domain.MLConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.ml == nil {
		return nil, repository.ErrNotFound
	}
	cfg := *r.ml
	return &cfg, nil
}

func (r *ConfigRepository) SaveMLConfig(ctx context.Context, cfg *domain.MLConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *cfg
	r.ml = &stored
	return nil
}
