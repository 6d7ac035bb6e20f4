package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	DataPath    string
	DBPath      string
	Timezone    string
	Location    *time.Location
	LogLevel    string
	Env         string
	Backend     string
	PostgresDSN string
	RedisURL    string
	FlushDelay  time.Duration
	Seed        uint64
}

type fileConfig struct {
	Timezone string `yaml:"timezone"`
	LogLevel string `yaml:"log_level"`
	Env      string `yaml:"env"`
	Seed     uint64 `yaml:"seed"`
	Storage  struct {
		Backend     string `yaml:"backend"`
		PostgresDSN string `yaml:"postgres_dsn"`
		RedisURL    string `yaml:"redis_url"`
		FlushDelay  string `yaml:"flush_delay"`
	} `yaml:"storage"`
}

// New returns defaults rooted at dataPath.
func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	return Config{
		DataPath:   dataPath,
		DBPath:     filepath.Join(dataPath, ".bloom", "bloom.db"),
		Timezone:   "Local",
		Location:   time.Local,
		LogLevel:   "warn",
		Env:        "development",
		Backend:    BackendFile,
		FlushDelay: 300 * time.Millisecond,
	}, nil
}

// Load layers <data>/bloom.yaml and BLOOM_* environment variables (a .env in
// the working directory included) over the defaults.
func Load(dataPath string) (Config, error) {
	_ = godotenv.Load()

	cfg, err := New(dataPath)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyFile(filepath.Join(dataPath, "bloom.yaml")); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	setIf(&c.Timezone, fc.Timezone)
	setIf(&c.LogLevel, fc.LogLevel)
	setIf(&c.Env, fc.Env)
	setIf(&c.Backend, fc.Storage.Backend)
	setIf(&c.PostgresDSN, fc.Storage.PostgresDSN)
	setIf(&c.RedisURL, fc.Storage.RedisURL)
	if fc.Seed != 0 {
		c.Seed = fc.Seed
	}
	if fc.Storage.FlushDelay != "" {
		d, err := time.ParseDuration(fc.Storage.FlushDelay)
		if err != nil {
			return fmt.Errorf("parse flush_delay: %w", err)
		}
		c.FlushDelay = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	setIf(&c.Timezone, os.Getenv("BLOOM_TIMEZONE"))
	setIf(&c.LogLevel, os.Getenv("BLOOM_LOG_LEVEL"))
	setIf(&c.Env, os.Getenv("BLOOM_ENV"))
	setIf(&c.Backend, os.Getenv("BLOOM_STORAGE_BACKEND"))
	setIf(&c.PostgresDSN, os.Getenv("BLOOM_POSTGRES_DSN"))
	setIf(&c.RedisURL, os.Getenv("BLOOM_REDIS_URL"))
	if v := os.Getenv("BLOOM_FLUSH_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse BLOOM_FLUSH_DELAY: %w", err)
		}
		c.FlushDelay = d
	}
	if v := os.Getenv("BLOOM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse BLOOM_SEED: %w", err)
		}
		c.Seed = seed
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.New("BLOOM_POSTGRES_DSN is required when storage backend is postgres")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("BLOOM_REDIS_URL is required when storage backend is redis")
		}
	default:
		return fmt.Errorf("storage backend must be one of memory|file|sqlite|postgres|redis, got %q", c.Backend)
	}
	if c.Env != "development" && c.Env != "production" {
		return errors.New("env must be one of: development, production")
	}
	if c.FlushDelay < 0 {
		return errors.New("flush delay must be non-negative")
	}
	return nil
}

func setIf(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
