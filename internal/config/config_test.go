package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, DefaultRetentionDays, cfg.RetentionDays)
	require.Equal(t, DefaultUpcomingLimit, cfg.UpcomingLimit)
	require.Equal(t, "default", cfg.Username)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := []byte("db_path = \"/tmp/tasks.db\"\nusername = \"alice\"\nretention_days = 14\n")
	require.NoError(t, os.WriteFile(path, contents, 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/tasks.db", cfg.DBPath)
	require.Equal(t, "alice", cfg.Username)
	require.Equal(t, 14, cfg.RetentionDays)
	// Unset keys fall back to defaults.
	require.Equal(t, DefaultUpcomingLimit, cfg.UpcomingLimit)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TASKWELL_DB_PATH", "/elsewhere/tasks.db")
	t.Setenv("TASKWELL_RETENTION_DAYS", "7")

	cfg := defaultConfig()
	applyEnv(&cfg)
	require.Equal(t, "/elsewhere/tasks.db", cfg.DBPath)
	require.Equal(t, 7, cfg.RetentionDays)
}
