package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AMQPURL is empty when notifications are not published to a broker.
	AMQPURL      string
	AMQPExchange string

	PendingOrdersSchedule string
	StatsSchedule         string

	// NotificationRoutesFile is a YAML file; a missing file means default routes.
	NotificationRoutesFile string

	SeedOnStart bool
}

// LoadConfig reads envFile into the process environment, if it exists, and
// builds Config from the environment. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	return Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 envOr("DB_USER", "postgres"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 envOr("DB_NAME", "workshop"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		AMQPURL:                os.Getenv("AMQP_URL"),
		AMQPExchange:           envOr("AMQP_EXCHANGE", "workshop.notifications"),
		PendingOrdersSchedule:  os.Getenv("PENDING_ORDERS_SCHEDULE"),
		StatsSchedule:          os.Getenv("STATS_SCHEDULE"),
		NotificationRoutesFile: envOr("NOTIFICATION_ROUTES_FILE", "notification_routes.yaml"),
		SeedOnStart:            envOr("SEED_ON_START", "true") == "true",
	}, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
