package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"STORAGE", "DB_NAME", "JWT_SECRET", "JWT_EXPIRY", "BCRYPT_COST",
		"TIP_WRITES_ADMIN_ONLY", "LOG_RETENTION_DAYS", "PORT", "AUTH_RATE_LIMIT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "wellness_db", cfg.DBName)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.False(t, cfg.TipWritesAdminOnly)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.AuthRateLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE", "Memory")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("TIP_WRITES_ADMIN_ONLY", "true")
	t.Setenv("ADMIN_EMAILS", " Admin@Example.com, ,ops@example.com")

	cfg := Load()

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.True(t, cfg.TipWritesAdminOnly)
	assert.Equal(t, []string{"admin@example.com", "ops@example.com"}, cfg.AdminEmailList())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")
	t.Setenv("LOG_RETENTION_DAYS", "-3")
	t.Setenv("TIP_WRITES_ADMIN_ONLY", "maybe")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.False(t, cfg.TipWritesAdminOnly)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5433", DBSSLMode: "require"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5433 sslmode=require TimeZone=UTC", cfg.DSN())
}
