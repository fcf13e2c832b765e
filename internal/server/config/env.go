package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvGRPCAddr    = "AUTH_GRPC_ADDR"
	EnvDatabaseDSN = "AUTH_DATABASE_DSN"
	EnvJWTSecret   = "AUTH_JWT_SECRET"
	EnvTokenTTL    = "AUTH_TOKEN_TTL"
	EnvBcryptCost  = "AUTH_BCRYPT_COST"
)

// parseEnv overlays values from the process environment. A .env file in the
// working directory is loaded first if present; real env vars win over it.
// Malformed numeric or duration values are ignored.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.EndpointAddrGRPC = getEnv(EnvGRPCAddr, config.EndpointAddrGRPC)
	config.DatabaseDSN = getEnv(EnvDatabaseDSN, config.DatabaseDSN)
	config.SecretKey = getEnv(EnvJWTSecret, config.SecretKey)
	config.TokenValidityDuration = getEnvAsDuration(EnvTokenTTL, config.TokenValidityDuration)
	config.BcryptCost = getEnvAsInt(EnvBcryptCost, config.BcryptCost)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return defaultValue
}
