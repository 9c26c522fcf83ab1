package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the server needs, resolved from environment
// variables with sensible defaults.
type Config struct {
	Addr string

	GeminiAPIKey string
	GeminiModel  string

	RedisURI string
	MongoURI string

	CacheDir    string
	CacheMaxAge time.Duration
	CacheTTL    time.Duration

	SessionTTL time.Duration

	HostUsername string
	HostPassword string
	JWTSecret    string

	LogJSON  bool
	LogDebug bool
}

// Load reads configuration from the environment.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("CACHE_DIR", "./cache")
	v.SetDefault("CACHE_MAX_AGE", time.Duration(0))
	v.SetDefault("CACHE_TTL", 720*time.Hour)
	v.SetDefault("SESSION_TTL", 2*time.Hour)
	v.SetDefault("HOST_USERNAME", "admin")
	v.SetDefault("HOST_PASSWORD", "password123")
	v.SetDefault("JWT_SECRET", "dev-secret-change-in-production")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("LOG_DEBUG", false)

	return &Config{
		Addr:         ":" + v.GetString("PORT"),
		GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
		GeminiModel:  v.GetString("GEMINI_MODEL"),
		RedisURI:     v.GetString("REDIS_URI"),
		MongoURI:     v.GetString("MONGO_URI"),
		CacheDir:     v.GetString("CACHE_DIR"),
		CacheMaxAge:  v.GetDuration("CACHE_MAX_AGE"),
		CacheTTL:     v.GetDuration("CACHE_TTL"),
		SessionTTL:   v.GetDuration("SESSION_TTL"),
		HostUsername: v.GetString("HOST_USERNAME"),
		HostPassword: v.GetString("HOST_PASSWORD"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		LogJSON:      v.GetBool("LOG_JSON"),
		LogDebug:     v.GetBool("LOG_DEBUG"),
	}
}
