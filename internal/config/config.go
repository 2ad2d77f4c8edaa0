package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"

	PhotosLocal = "local"
	PhotosS3    = "s3"

	defaultPort          = "3001"
	defaultUploadLimitMB = 20
)

type Config struct {
	Port      string `yaml:"port"`
	DataFile  string `yaml:"data_file"`
	PhotoDir  string `yaml:"photo_dir"`
	ClientDir string `yaml:"client_dir"`
	Timezone  string `yaml:"timezone"`

	StorageBackend string `yaml:"storage_backend"`
	DBPath         string `yaml:"db_path"`

	PhotoBackend string `yaml:"photo_backend"`
	S3Bucket     string `yaml:"s3_bucket"`
	S3Region     string `yaml:"s3_region"`
	S3Endpoint   string `yaml:"s3_endpoint"`
	S3Prefix     string `yaml:"s3_prefix"`
	S3AccessKey  string `yaml:"s3_access_key"`
	S3SecretKey  string `yaml:"s3_secret_key"`

	UploadLimitMB int `yaml:"upload_limit_mb"`
}

func Default() Config {
	return Config{
		Port:           defaultPort,
		DataFile:       filepath.Join("data", "eczema-data.json"),
		PhotoDir:       filepath.Join("data", "photos"),
		ClientDir:      "dist",
		Timezone:       "Local",
		StorageBackend: StorageJSON,
		DBPath:         filepath.Join("data", "eczema.db"),
		PhotoBackend:   PhotosLocal,
		UploadLimitMB:  defaultUploadLimitMB,
	}
}

// Load layers the optional YAML file over the defaults and environment
// variables over both. An empty path skips the file; a missing file at an
// explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DataFile = getEnv("DATA_FILE", cfg.DataFile)
	cfg.PhotoDir = getEnv("PHOTO_DIR", cfg.PhotoDir)
	cfg.ClientDir = getEnv("CLIENT_DIR", cfg.ClientDir)
	cfg.Timezone = getEnv("TZ", cfg.Timezone)
	cfg.StorageBackend = getEnv("STORAGE_BACKEND", cfg.StorageBackend)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.PhotoBackend = getEnv("PHOTO_BACKEND", cfg.PhotoBackend)
	cfg.S3Bucket = getEnv("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3Prefix = getEnv("S3_PREFIX", cfg.S3Prefix)
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", cfg.S3SecretKey)

	if raw := strings.TrimSpace(os.Getenv("UPLOAD_LIMIT_MB")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid UPLOAD_LIMIT_MB %q", raw)
		}
		cfg.UploadLimitMB = limit
	}
	return nil
}

func (cfg Config) Validate() error {
	if _, err := resolvePort(cfg.Port); err != nil {
		return err
	}

	switch cfg.StorageBackend {
	case StorageJSON:
		if strings.TrimSpace(cfg.DataFile) == "" {
			return errors.New("data file path is required for the json backend")
		}
	case StorageSQLite:
		if strings.TrimSpace(cfg.DBPath) == "" {
			return errors.New("db path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	switch cfg.PhotoBackend {
	case PhotosLocal:
		if strings.TrimSpace(cfg.PhotoDir) == "" {
			return errors.New("photo dir is required for the local photo backend")
		}
	case PhotosS3:
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return errors.New("S3_BUCKET is required for the s3 photo backend")
		}
	default:
		return fmt.Errorf("unknown photo backend %q", cfg.PhotoBackend)
	}

	if cfg.UploadLimitMB <= 0 {
		return fmt.Errorf("upload limit must be positive, got %d", cfg.UploadLimitMB)
	}
	return nil
}

// ListenAddr is the fiber listen address for the configured port.
func (cfg Config) ListenAddr() string {
	return ":" + strings.TrimSpace(cfg.Port)
}

func (cfg Config) UploadLimitBytes() int {
	return cfg.UploadLimitMB * 1024 * 1024
}

// Location falls back to UTC for an unknown zone name.
func (cfg Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(cfg.Timezone)
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, fmt.Errorf("invalid TZ %q: %w", name, err)
	}
	return location, nil
}

func resolvePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid PORT %q", raw)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("PORT %d is out of range", port)
	}
	return port, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
