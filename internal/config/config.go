package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	// AdminPasswordHash is the bcrypt hash checked at /login. When empty,
	// AdminPassword is compared in plaintext (development only).
	AdminPasswordHash string
	AdminPassword     string

	// RequiredApprovals is the approver quorum a reservation needs before it
	// counts against capacity.
	RequiredApprovals int

	// MaxReservationDays bounds how far ahead a reservation may start.
	MaxReservationDays int

	// RedisURL enables the capacity read-model cache when non-empty.
	RedisURL     string
	CacheTTLSecs int

	IsProduction bool
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "gpuadmin")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "gpu-admin")

	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")
	AdminPassword = getEnv("ADMIN_PASSWORD", "abcd")

	RequiredApprovals = getEnvInt("REQUIRED_APPROVALS", 3)
	MaxReservationDays = getEnvInt("MAX_RESERVATION_DAYS", 90)

	RedisURL = getEnv("REDIS_URL", "")
	CacheTTLSecs = getEnvInt("CACHE_TTL_SECONDS", 30)

	IsProduction = getEnv("ENV", "development") == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}
