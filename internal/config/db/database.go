package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/linskybing/bizportal/internal/config"
	"github.com/linskybing/bizportal/internal/domain/intake"
	"github.com/linskybing/bizportal/internal/domain/workforce"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Schema selects one of the two table groups this module owns.
type Schema string

const (
	SchemaIntake    Schema = "intake"
	SchemaWorkforce Schema = "workforce"
)

var AllSchemas = []Schema{SchemaIntake, SchemaWorkforce}

func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DbDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DbDriver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewLogger(cfg.DbLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DbDriver, err)
	}

	if cfg.DbDriver == config.DriverSQLite && strings.HasPrefix(cfg.SQLitePath, ":memory:") {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return gdb, nil
}

// SQLiteDSN turns on foreign key enforcement for every connection in the pool.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=1"
}

func NewLogger(level string) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  parseLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func Models(schema Schema) ([]interface{}, error) {
	switch schema {
	case SchemaIntake:
		return intake.Models(), nil
	case SchemaWorkforce:
		return workforce.Models(), nil
	default:
		return nil, fmt.Errorf("unknown schema %q", schema)
	}
}

// Migrate creates or updates the tables of the given schemas.
func Migrate(gdb *gorm.DB, schemas ...Schema) error {
	if len(schemas) == 0 {
		schemas = AllSchemas
	}
	for _, schema := range schemas {
		models, err := Models(schema)
		if err != nil {
			return err
		}
		if err := gdb.AutoMigrate(models...); err != nil {
			return fmt.Errorf("migrate %s: %w", schema, err)
		}
		log.Printf("Schema %s migrated", schema)
	}
	return nil
}
