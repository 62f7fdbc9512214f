package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"

	"survival/internal/storage"
	"survival/pkg/utils"
)

type Config struct {
	Addr            string        `yaml:"addr"`
	Debug           bool          `yaml:"debug"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	Model           ModelConfig   `yaml:"model"`
	Storage         StorageConfig `yaml:"storage"`
	Log             LogConfig     `yaml:"log"`
}

type ModelConfig struct {
	Algo string `yaml:"algo"`
	Path string `yaml:"path"`
}

type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// LogConfig controls the optional rotating log file. Stdout logging is always on.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func Default() Config {
	return Config{
		Addr:            ":5000",
		Debug:           true,
		ShutdownTimeout: 30 * time.Second,
		Model: ModelConfig{
			Algo: "dt",
			Path: "models/model.gob",
		},
		Log: LogConfig{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load applies defaults, then the YAML file at path (skipped when path is
// empty), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if err := envBool("DEBUG", &cfg.Debug); err != nil {
		return err
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	envString("MODEL_ALGO", &cfg.Model.Algo)
	envString("MODEL_PATH", &cfg.Model.Path)
	envString("MINIO_ENDPOINT", &cfg.Storage.Endpoint)
	envString("MINIO_ACCESS_KEY", &cfg.Storage.AccessKey)
	envString("MINIO_SECRET_KEY", &cfg.Storage.SecretKey)
	if err := envBool("MINIO_USE_SSL", &cfg.Storage.UseSSL); err != nil {
		return err
	}
	envString("LOG_FILE", &cfg.Log.File)
	for name, dst := range map[string]*int{
		"LOG_MAX_SIZE_MB":  &cfg.Log.MaxSizeMB,
		"LOG_MAX_BACKUPS":  &cfg.Log.MaxBackups,
		"LOG_MAX_AGE_DAYS": &cfg.Log.MaxAgeDays,
	} {
		if err := envInt(name, dst); err != nil {
			return err
		}
	}
	return nil
}

// MinIO converts the storage section for storage.Open.
func (c Config) MinIO() storage.MinIOConfig {
	return storage.MinIOConfig{
		Endpoint:        c.Storage.Endpoint,
		AccessKeyID:     c.Storage.AccessKey,
		SecretAccessKey: c.Storage.SecretKey,
		UseSSL:          c.Storage.UseSSL,
	}
}

// FileOptions converts the log section for utils.Logger.
func (l LogConfig) FileOptions() utils.FileOptions {
	return utils.FileOptions{
		Path:       l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
	}
}

func envString(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}
