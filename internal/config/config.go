package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "FOLIO_"

	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StorageLocal = "local"
	StorageS3    = "s3"

	defaultEnv          = "development"
	defaultLogLevel     = "info"
	defaultDBHost       = "127.0.0.1"
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
	defaultDBUser       = "root"
	defaultDBName       = "folio"
	defaultDBCharset    = "utf8mb4"
	defaultSQLiteFile   = "folio.db"
	defaultStaticDir    = "static"
	defaultStaticURL    = "/media"
	defaultLogsDir      = "logs"
	defaultCacheTTL     = 60
)

// AppConfig holds runtime configuration loaded from YAML.
type AppConfig struct {
	Env      string         `yaml:"env"` // "development" | "production"
	LogLevel string         `yaml:"log_level"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Storage  StorageConfig  `yaml:"storage"`
	Cache    CacheConfig    `yaml:"cache"`
	Paths    PathsConfig    `yaml:"paths"`
}

type DatabaseConfig struct {
	Driver      string            `yaml:"driver"`
	DSN         string            `yaml:"dsn"`
	Host        string            `yaml:"host"`
	Port        int               `yaml:"port"`
	User        string            `yaml:"user"`
	Password    string            `yaml:"password"`
	Name        string            `yaml:"name"`
	Charset     string            `yaml:"charset"`
	Params      map[string]string `yaml:"params"`
	LogLevel    string            `yaml:"log_level"`
	AutoMigrate bool              `yaml:"auto_migrate"`
}

// RedisConfig enables write event publishing when URL is set.
type RedisConfig struct {
	URL     string `yaml:"url"`
	Channel string `yaml:"channel"`
}

type StorageConfig struct {
	Driver string             `yaml:"driver"`
	Local  LocalStorageConfig `yaml:"local"`
	S3     S3StorageConfig    `yaml:"s3"`
}

type LocalStorageConfig struct {
	Dir     string `yaml:"dir"`
	BaseURL string `yaml:"base_url"`
}

type S3StorageConfig struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PublicURL       string `yaml:"public_url"`
	PathStyle       bool   `yaml:"path_style"`
}

// CacheConfig controls the active listing cache. A zero TTL disables it.
type CacheConfig struct {
	TTLSeconds     int `yaml:"ttl_seconds"`
	CleanupSeconds int `yaml:"cleanup_seconds"`
}

func (c CacheConfig) TTL() time.Duration { return time.Duration(c.TTLSeconds) * time.Second }

func (c CacheConfig) Cleanup() time.Duration {
	return time.Duration(c.CleanupSeconds) * time.Second
}

type PathsConfig struct {
	Logs string `yaml:"logs"`
}

// Load reads the YAML file at configPath on top of the defaults, then applies
// FOLIO_* overrides from the environment and from a .env file next to it.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	dotenv, err := readDotEnv(baseDir)
	if err != nil {
		return nil, err
	}
	applyEnv(&cfg, func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	})

	cfg.normalize(baseDir)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Env:      defaultEnv,
		LogLevel: defaultLogLevel,
		Database: DatabaseConfig{
			Driver:  DriverMySQL,
			Host:    defaultDBHost,
			User:    defaultDBUser,
			Name:    defaultDBName,
			Charset: defaultDBCharset,
		},
		Storage: StorageConfig{
			Driver: StorageLocal,
			Local: LocalStorageConfig{
				Dir:     defaultStaticDir,
				BaseURL: defaultStaticURL,
			},
		},
		Cache: CacheConfig{TTLSeconds: defaultCacheTTL},
		Paths: PathsConfig{Logs: defaultLogsDir},
	}
}

func readDotEnv(dir string) (map[string]string, error) {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return values, nil
}

func applyEnv(cfg *AppConfig, lookup func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(lookup(EnvPrefix + key)); v != "" {
			*dst = v
		}
	}
	set(&cfg.Env, "ENV")
	set(&cfg.LogLevel, "LOG_LEVEL")
	set(&cfg.Database.Driver, "DATABASE_DRIVER")
	set(&cfg.Database.DSN, "DATABASE_DSN")
	set(&cfg.Database.Password, "DATABASE_PASSWORD")
	set(&cfg.Redis.URL, "REDIS_URL")
	set(&cfg.Storage.Driver, "STORAGE_DRIVER")
	set(&cfg.Storage.S3.Bucket, "S3_BUCKET")
	set(&cfg.Storage.S3.AccessKeyID, "S3_ACCESS_KEY_ID")
	set(&cfg.Storage.S3.SecretAccessKey, "S3_SECRET_ACCESS_KEY")
}

func (c *AppConfig) normalize(baseDir string) {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Database.LogLevel = strings.ToLower(strings.TrimSpace(c.Database.LogLevel))
	if c.Database.Port == 0 {
		switch c.Database.Driver {
		case DriverMySQL:
			c.Database.Port = defaultMySQLPort
		case DriverPostgres:
			c.Database.Port = defaultPostgresPort
		}
	}
	if c.Database.Driver == DriverSQLite && c.Database.DSN == "" && !isMemoryDB(c.Database.Name) {
		name := c.Database.Name
		if name == "" || name == defaultDBName {
			name = defaultSQLiteFile
		}
		c.Database.Name = ResolvePath(baseDir, name, defaultSQLiteFile)
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	c.Storage.Local.Dir = ResolvePath(baseDir, c.Storage.Local.Dir, defaultStaticDir)
	c.Storage.S3.PublicURL = strings.TrimRight(strings.TrimSpace(c.Storage.S3.PublicURL), "/")
	c.Paths.Logs = ResolvePath(baseDir, c.Paths.Logs, defaultLogsDir)
}

// Validate reports the first setting that cannot be used.
func (c *AppConfig) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
		if c.Database.DSN == "" && (c.Database.Port < 1 || c.Database.Port > 65535) {
			return fmt.Errorf("invalid database.port %d, expected 1-65535", c.Database.Port)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported database.driver %q", c.Database.Driver)
	}

	switch c.Storage.Driver {
	case StorageLocal:
		if c.Storage.Local.Dir == "" {
			return errors.New("storage.local.dir is required")
		}
	case StorageS3:
		if c.Storage.S3.Bucket == "" {
			return errors.New("storage.s3.bucket is required")
		}
		if c.Storage.S3.Region == "" {
			return errors.New("storage.s3.region is required")
		}
	default:
		return fmt.Errorf("unsupported storage.driver %q", c.Storage.Driver)
	}

	if c.Cache.TTLSeconds < 0 || c.Cache.CleanupSeconds < 0 {
		return errors.New("cache durations must be >= 0")
	}
	return nil
}

func (c *AppConfig) IsDev() bool {
	return c.Env == defaultEnv
}

// ResolvePath resolves a relative path against baseDir, falling back to
// fallback when raw is empty.
func ResolvePath(baseDir, raw, fallback string) string {
	target := strings.TrimSpace(raw)
	if target == "" {
		target = fallback
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Clean(filepath.Join(baseDir, target))
}
