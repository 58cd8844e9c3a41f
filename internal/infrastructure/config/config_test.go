package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "DB_DRIVER", "DB_DSN", "ADVANCE_DELAY", "SWIPE_COOLDOWN", "CORS_ORIGINS", "IMPORT_WORKERS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "quizbank.db", cfg.DBDSN)
	assert.Equal(t, 500*time.Millisecond, cfg.AdvanceDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.SwipeCooldown)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 4, cfg.ImportWorkers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("ADVANCE_DELAY", "0s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("IMPORT_WORKERS", "2")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, time.Duration(0), cfg.AdvanceDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, 2, cfg.ImportWorkers)
}
