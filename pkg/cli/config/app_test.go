package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/ticklist/pkg/cli/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadAppConfiguration(t *testing.T) {
	t.Run("no path yields defaults", func(t *testing.T) {
		cfg, err := config.LoadAppConfiguration("")
		gt.NoError(t, err).Required()
		gt.Number(t, cfg.ChangeLog.RetentionDays).Equal(14)
		gt.Number(t, cfg.ChangeLog.PruneIntervalMinutes).Equal(60)
		gt.Number(t, cfg.ChangeLog.ListLimit).Equal(50)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
[changelog]
retention_days = 7
list_limit = 100
`)
		cfg, err := config.LoadAppConfiguration(path)
		gt.NoError(t, err).Required()
		gt.Number(t, cfg.ChangeLog.RetentionDays).Equal(7)
		gt.Number(t, cfg.ChangeLog.ListLimit).Equal(100)
		// untouched keys keep their defaults
		gt.Number(t, cfg.ChangeLog.PruneIntervalMinutes).Equal(60)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := config.LoadAppConfiguration(filepath.Join(t.TempDir(), "nope.toml"))
		gt.Error(t, err)
	})

	t.Run("invalid TOML is an error", func(t *testing.T) {
		path := writeConfig(t, `[changelog`)
		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err)
	})

	t.Run("non-positive values are rejected", func(t *testing.T) {
		path := writeConfig(t, `
[changelog]
retention_days = 0
`)
		_, err := config.LoadAppConfiguration(path)
		gt.Error(t, err)
	})
}

func TestAppConfigDurations(t *testing.T) {
	cfg := config.DefaultAppConfig()
	gt.Value(t, cfg.Retention()).Equal(14 * 24 * time.Hour)
	gt.Value(t, cfg.PruneInterval()).Equal(time.Hour)
}
