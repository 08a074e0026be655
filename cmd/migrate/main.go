package main

import (
	"errors"
	"flag"

	"github.com/BloggingApp/post-catalog/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	path := flag.String("path", "migrations", "directory holding the migration files")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Sugar().Warnf("failed to load .env file: %s", err.Error())
	}

	m, err := migrate.New("file://"+*path, config.DBConfigFromEnv().DSN())
	if err != nil {
		logger.Sugar().Panicf("failed to create migrate client: %s", err.Error())
	}
	defer m.Close()

	switch *direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		logger.Sugar().Panicf("unknown direction %q", *direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Sugar().Panicf("failed to migrate %s: %s", *direction, err.Error())
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		logger.Sugar().Panicf("failed to read schema version: %s", err.Error())
	}
	logger.Sugar().Infof("Migrated %s, schema version %d (dirty: %t)", *direction, version, dirty)
}
