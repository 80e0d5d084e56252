package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Session configuration
	SessionSecret     string
	SessionTTLMinutes int
	RedisURL          string
	RedisPassword     string
	// File storage configuration
	StorageBackend string // "disk" or "s3"
	StorageDir     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
}

func LoadConfig() (*Config, error) {
	// .env only exists in local development, ignore it elsewhere
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBUrl:             getEnv("DATABASE_URL", ""),
		SessionSecret:     getEnv("SESSION_SECRET", ""),
		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 720),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		StorageBackend:    getEnv("STORAGE_BACKEND", "disk"),
		StorageDir:        getEnv("STORAGE_DIR", "files"),
		S3Region:          getEnv("S3_REGION", ""),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3AccessKey:       getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:       getEnv("S3_SECRET_ACCESS_KEY", ""),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET not set. Using an ephemeral secret; sessions will not survive restarts.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Sessions will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
