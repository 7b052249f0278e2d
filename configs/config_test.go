package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "") // registers the restore
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "MONGO_URI", "MONGO_DB", "PORT", "JWT_SECRET", "CLIENT_URL", "ENV")

	cfg := LoadConfig()
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	assert.Equal(t, "fake_so", cfg.MongoDB)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.ClientURL)
	assert.Empty(t, cfg.JWTSecret, "JWT_SECRET must not have a default")
	assert.False(t, cfg.SecureCookies)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "qna")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CLIENT_URL", "https://forum.example.com")
	t.Setenv("ENV", "production")

	cfg := LoadConfig()
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "qna", cfg.MongoDB)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "https://forum.example.com", cfg.ClientURL)
	assert.True(t, cfg.SecureCookies)
}
