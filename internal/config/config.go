package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// MemoryDatabaseURI selects the in-memory repositories instead of MongoDB.
const MemoryDatabaseURI = "memory"

// Cache backends.
const (
	CacheNone      = "none"
	CacheFreecache = "freecache"
	CacheRedis     = "redis"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	S3         S3Config         `mapstructure:"s3"`
	Log        LogConfig        `mapstructure:"log"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Generation GenerationConfig `mapstructure:"generation"`
	ML         MLConfig         `mapstructure:"ml"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Dataset    DatasetConfig    `mapstructure:"dataset"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	ReleaseMode  bool          `mapstructure:"release_mode"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// InMemory reports whether the in-memory repositories are configured.
func (c DatabaseConfig) InMemory() bool {
	return c.URI == MemoryDatabaseURI
}

type S3Config struct {
	Endpoint        string        `mapstructure:"endpoint"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	BucketName      string        `mapstructure:"bucket_name"`
	UseSSL          bool          `mapstructure:"use_ssl"`
	PresignExpiry   time.Duration `mapstructure:"presign_expiry"`
}

// Enabled reports whether video storage is configured at all.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	JSON   bool   `mapstructure:"json"`
	File   string `mapstructure:"file"`
	Stdout bool   `mapstructure:"stdout"`
}

type CacheConfig struct {
	Backend       string        `mapstructure:"backend"`
	SizeMB        int           `mapstructure:"size_mb"`
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
}

type GenerationConfig struct {
	CandidateLimit  int     `mapstructure:"candidate_limit"`
	DefaultWeightKg float64 `mapstructure:"default_weight_kg"`
}

// MLConfig holds the defaults written when no ML configuration is stored yet.
type MLConfig struct {
	TrainingWindowDays     int `mapstructure:"training_window_days"`
	MinSessionsForTraining int `mapstructure:"min_sessions_for_training"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

type DatasetConfig struct {
	CSVPath string `mapstructure:"csv_path"`
	// LoadOnStartup imports CSVPath before serving, if the file exists.
	LoadOnStartup bool `mapstructure:"load_on_startup"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.release_mode", false)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitgen")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.presign_expiry", "15m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.stdout", true)
	v.SetDefault("cache.backend", CacheFreecache)
	v.SetDefault("cache.size_mb", 32)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("generation.candidate_limit", 50)
	v.SetDefault("generation.default_weight_kg", 70.0)
	v.SetDefault("ml.training_window_days", 30)
	v.SetDefault("ml.min_sessions_for_training", 5)
	v.SetDefault("metrics.namespace", "fitgen")
	v.SetDefault("metrics.subsystem", "workout_service")
	v.SetDefault("dataset.csv_path", "data/megaGymDataset.csv")
	v.SetDefault("dataset.load_on_startup", false)

	err = v.ReadInConfig()
	// A missing config file is fine; defaults and env vars still apply.
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		err = nil
	} else if err != nil {
		return
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	return config, nil
}
