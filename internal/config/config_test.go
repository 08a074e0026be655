package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDBConfigDSN(t *testing.T) {
	cfg := DBConfig{Username: "user", Password: "pass", Host: "db", Port: "5432", DBName: "posts"}
	assert.Equal(t, "postgres://user:pass@db:5432/posts?sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Equal(t, "postgres://user:pass@db:5432/posts?sslmode=require", cfg.DSN())
}

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	cache := CacheConfigFromViper()
	assert.Equal(t, time.Hour, cache.TTL)
	assert.Equal(t, int64(100), cache.ScanCount)
	assert.False(t, cache.WarmOnCreate)

	app := AppConfigFromViper()
	assert.Equal(t, "8080", app.Port)
	assert.Equal(t, 10, app.PageSize)

	collaborators := CollaboratorsConfigFromViper()
	assert.Equal(t, 5*time.Second, collaborators.Timeout)
}

func TestOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set("cache.ttl", "15m")
	viper.Set("cache.warm_on_create", true)

	cache := CacheConfigFromViper()
	assert.Equal(t, 15*time.Minute, cache.TTL)
	assert.True(t, cache.WarmOnCreate)
}
