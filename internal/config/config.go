package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

func DBConfigFromEnv() DBConfig {
	return DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func (c DBConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.Username, c.Password, c.Host, c.Port, c.DBName, sslMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func RedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       viper.GetInt("redis.db"),
	}
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// CacheConfig tunes the post cache.
// WarmOnCreate pre-populates the id and slug entries right after a create.
type CacheConfig struct {
	TTL          time.Duration
	ScanCount    int64
	WarmOnCreate bool
}

func CacheConfigFromViper() CacheConfig {
	return CacheConfig{
		TTL:          viper.GetDuration("cache.ttl"),
		ScanCount:    viper.GetInt64("cache.scan_count"),
		WarmOnCreate: viper.GetBool("cache.warm_on_create"),
	}
}

type CollaboratorsConfig struct {
	BaseURL string
	Timeout time.Duration
}

func CollaboratorsConfigFromViper() CollaboratorsConfig {
	return CollaboratorsConfig{
		BaseURL: viper.GetString("collaborators.base_url"),
		Timeout: viper.GetDuration("collaborators.timeout"),
	}
}

type AppConfig struct {
	Env          string
	Port         string
	PageSize     int
	ClientOrigin string
	AccessSecret string
}

func AppConfigFromViper() AppConfig {
	return AppConfig{
		Env:          viper.GetString("app.env"),
		Port:         viper.GetString("app.port"),
		PageSize:     viper.GetInt("app.page_size"),
		ClientOrigin: viper.GetString("client.origin"),
		AccessSecret: os.Getenv("ACCESS_SECRET"),
	}
}

func SetDefaults() {
	viper.SetDefault("app.env", "production")
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.page_size", 10)
	viper.SetDefault("client.origin", "http://localhost:3000")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("cache.ttl", time.Hour)
	viper.SetDefault("cache.scan_count", 100)
	viper.SetDefault("cache.warm_on_create", false)
	viper.SetDefault("collaborators.base_url", "http://localhost:3000")
	viper.SetDefault("collaborators.timeout", 5*time.Second)
}
