package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "mindfuly", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8200", cfg.WellnessBaseURL)
	assert.Equal(t, 5*time.Second, cfg.WellnessTimeout)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.True(t, cfg.MailSendEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_NAME", "mindfuly_test")
	t.Setenv("WELLNESS_BASE_URL", "http://wellness:9000")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("MAIL_SEND_ENABLED", "false")

	cfg := Load()
	assert.Equal(t, "mindfuly_test", cfg.DBName)
	assert.Equal(t, "http://wellness:9000", cfg.WellnessBaseURL)
	assert.Equal(t, 30*time.Minute, cfg.AccessTTL)
	assert.False(t, cfg.MailSendEnabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	t.Setenv("JWT_ACCESS_TTL", "soon")

	cfg := Load()
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, time.Hour, cfg.AccessTTL)
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_HOST", "h")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "d")

	cfg := Load()
	assert.Equal(t, "postgres://u:p@h:5433/d?sslmode=disable", cfg.PostgresDSN())
}

func TestCSVHelpers(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test , http://b.test,")
	t.Setenv("ELASTICSEARCH_ADDRS", "http://es1:9200")

	cfg := Load()
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Equal(t, []string{"http://es1:9200"}, cfg.ESAddrs())
}
