package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadWithEnv(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWithEnv(t, map[string]string{"BOT_TOKEN": "token"})
	require.NoError(t, err)

	assert.Equal(t, "mood_tracker.db", cfg.DatabasePath)
	assert.Equal(t, "Asia/Yekaterinburg", cfg.Timezone)
	assert.Equal(t, "20:30", cfg.MoodCheckTime)
	assert.Equal(t, "mistral-large-latest", cfg.MistralModel)
	assert.False(t, cfg.AnalysisCard)
}

func TestLoad_RequiresToken(t *testing.T) {
	_ = os.Unsetenv("BOT_TOKEN")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := loadWithEnv(t, map[string]string{
		"BOT_TOKEN":       "token",
		"DATABASE_PATH":   "/tmp/custom.db",
		"MOOD_CHECK_TIME": "09:15",
		"TIMEZONE":        "Europe/Moscow",
		"ANALYSIS_CARD":   "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom.db", cfg.DatabasePath)
	assert.True(t, cfg.AnalysisCard)

	hour, minute, err := cfg.CheckTime()
	require.NoError(t, err)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 15, minute)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_BadCheckTime(t *testing.T) {
	for _, v := range []string{"25:00", "12:61", "полдень", "1230", "12:"} {
		_, err := loadWithEnv(t, map[string]string{
			"BOT_TOKEN":       "token",
			"MOOD_CHECK_TIME": v,
		})
		assert.Error(t, err, "MOOD_CHECK_TIME=%q", v)
	}
}

func TestLoad_BadTimezone(t *testing.T) {
	_, err := loadWithEnv(t, map[string]string{
		"BOT_TOKEN": "token",
		"TIMEZONE":  "Mars/Olympus",
	})
	assert.Error(t, err)
}
