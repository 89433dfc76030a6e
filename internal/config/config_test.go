package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "fitgen", cfg.Database.Name)
	assert.False(t, cfg.Database.InMemory())
	assert.Equal(t, CacheFreecache, cfg.Cache.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 50, cfg.Generation.CandidateLimit)
	assert.Equal(t, 30, cfg.ML.TrainingWindowDays)
	assert.Equal(t, 5, cfg.ML.MinSessionsForTraining)
	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, "data/megaGymDataset.csv", cfg.Dataset.CSVPath)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
database:
  uri: memory
cache:
  backend: redis
  ttl: 30s
s3:
  bucket_name: exercise-videos
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("GENERATION_CANDIDATE_LIMIT", "80")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.True(t, cfg.Database.InMemory())
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, 80, cfg.Generation.CandidateLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))
	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
