package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "apparel_store", cfg.DBName)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("UPLOAD_DIR", "/tmp/uploads")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURL)
	assert.Equal(t, "shop", cfg.DBName)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
}
