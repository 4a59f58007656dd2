package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPPort string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	DatabaseRetryAttempts int
	DatabaseRetrySeconds  int
	DatabaseMaxOpenConns  int
	DatabaseMaxIdleConns  int

	OperatorWorkers int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		HTTPPort:         "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		DatabaseRetryAttempts: 10,
		DatabaseRetrySeconds:  5,
		DatabaseMaxOpenConns:  20,
		DatabaseMaxIdleConns:  10,

		OperatorWorkers: 4,
	}

	envHTTPPort := os.Getenv("HTTP_PORT")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	env.DatabaseRetryAttempts = getEnvInt("DATABASE_RETRY_ATTEMPTS", env.DatabaseRetryAttempts)
	env.DatabaseRetrySeconds = getEnvInt("DATABASE_RETRY_INTERVAL", env.DatabaseRetrySeconds)
	env.DatabaseMaxOpenConns = getEnvInt("DATABASE_MAX_OPEN_CONNS", env.DatabaseMaxOpenConns)
	env.DatabaseMaxIdleConns = getEnvInt("DATABASE_MAX_IDLE_CONNS", env.DatabaseMaxIdleConns)
	env.OperatorWorkers = getEnvInt("OPERATOR_WORKERS", env.OperatorWorkers)

	return &env, nil
}

// PostgresDSN builds the lib/pq connection string from the config values.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
