package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("BOOTSTRAP_ADMIN_PASSWORD", "admin-pass")
	t.Setenv("DEFAULT_EMPLOYEE_PASSWORD", "welcome")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, 24*time.Hour, cfg.Scheduler.LeaveRefreshInterval)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "admin", cfg.Bootstrap.AdminUsername)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "./uploads", cfg.Storage.Path)
	assert.EqualValues(t, 10<<20, cfg.Storage.MaxUploadSize)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LEAVE_REFRESH_INTERVAL", "6h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6*time.Hour, cfg.Scheduler.LeaveRefreshInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "DB_DRIVER", "sqlite"},
		{"bad interval", "LEAVE_REFRESH_INTERVAL", "daily"},
		{"negative interval", "LEAVE_REFRESH_INTERVAL", "-1h"},
		{"postgres without password", "DB_PASSWORD", ""},
		{"zero upload size", "STORAGE_MAX_UPLOAD_BYTES", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			if tt.key == "DB_PASSWORD" {
				t.Setenv("DB_DRIVER", "postgres")
			}
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
