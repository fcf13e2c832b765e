package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv(EnvGRPCAddr, "127.0.0.1:7000")
	t.Setenv(EnvDatabaseDSN, "postgres://u:p@db/auth")
	t.Setenv(EnvJWTSecret, "s3cr3t")
	t.Setenv(EnvTokenTTL, "2h")
	t.Setenv(EnvBcryptCost, "12")

	c := defaults()
	parseEnv(c)

	assert.Equal(t, "127.0.0.1:7000", c.EndpointAddrGRPC)
	assert.Equal(t, "postgres://u:p@db/auth", c.DatabaseDSN)
	assert.Equal(t, "s3cr3t", c.SecretKey)
	assert.Equal(t, 2*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, 12, c.BcryptCost)
}

func TestParseEnv_MalformedIgnored(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv(EnvTokenTTL, "forever")
	t.Setenv(EnvBcryptCost, "high")

	c := defaults()
	parseEnv(c)

	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Equal(t, 10, c.BcryptCost)
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte(EnvJWTSecret+"=dotenv-secret\n"+EnvGRPCAddr+"=dotenv:1\n"), 0o600))

	// Real environment beats the file.
	t.Setenv(EnvGRPCAddr, "real:2")
	// godotenv writes into the process env; t.Setenv restores it afterwards.
	t.Setenv(EnvJWTSecret, "")
	require.NoError(t, os.Unsetenv(EnvJWTSecret))

	c := defaults()
	parseEnv(c)

	assert.Equal(t, "real:2", c.EndpointAddrGRPC)
	assert.Equal(t, "dotenv-secret", c.SecretKey)
}
