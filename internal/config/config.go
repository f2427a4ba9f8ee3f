package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "taskwell.db"
	DefaultRetentionDays  = 30
	DefaultUpcomingLimit  = 5
)

type Config struct {
	DBPath        string `toml:"db_path"`
	Username      string `toml:"username"`
	RetentionDays int    `toml:"retention_days"`
	UpcomingLimit int    `toml:"upcoming_limit"`
	DefaultSort   string `toml:"default_sort"`
}

// Load reads the config file under the taskwell home directory, writing
// defaults on first run, then applies TASKWELL_* environment overrides. A
// .env file in the working directory is honored if present.
func Load() (Config, error) {
	dir, err := homeDir()
	if err != nil {
		return defaultConfig(), err
	}
	cfg, err := LoadOrCreate(filepath.Join(dir, DefaultConfigFileName))
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadOrCreate reads the config at path, creating it with defaults when
// missing.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath()
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = DefaultRetentionDays
	}
	if cfg.UpcomingLimit <= 0 {
		cfg.UpcomingLimit = DefaultUpcomingLimit
	}
	return cfg, nil
}

// applyEnv overlays environment variables on top of the file config.
func applyEnv(cfg *Config) {
	_ = godotenv.Load() // optional .env, ignore absence

	if v := os.Getenv("TASKWELL_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TASKWELL_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("TASKWELL_RETENTION_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.RetentionDays = days
		}
	}
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:        defaultDBPath(),
		Username:      "default",
		RetentionDays: DefaultRetentionDays,
		UpcomingLimit: DefaultUpcomingLimit,
		DefaultSort:   "due",
	}
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskwell"), nil
}

func defaultDBPath() string {
	dir, err := homeDir()
	if err != nil {
		return DefaultDBName
	}
	return filepath.Join(dir, DefaultDBName)
}
