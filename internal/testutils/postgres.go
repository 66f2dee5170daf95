package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/linskybing/bizportal/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgresForIntegration starts Postgres 15 in a container, or uses
// TEST_DB_DSN when set, and applies every schema. The returned func releases it.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		sqlDB := openWithRetry(dsn)
		gdb := wrapAndMigrate(sqlDB)
		return gdb, func() {
			_ = sqlDB.Close()
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "bizportal",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/bizportal?sslmode=disable", host, port.Port())
	sqlDB := openWithRetry(dsn)
	gdb := wrapAndMigrate(sqlDB)

	cleanup := func() {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
	}

	return gdb, cleanup
}

func openWithRetry(dsn string) *sql.DB {
	var sqlDB *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			if err == nil {
				return sqlDB
			}
		}
		time.Sleep(1 * time.Second)
	}
	log.Fatal(err)
	return nil
}

func wrapAndMigrate(sqlDB *sql.DB) *gorm.DB {
	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}
	return gdb
}

// TruncateAll empties every table and resets identities between tests.
func TruncateAll(gdb *gorm.DB) error {
	return gdb.Exec(`TRUNCATE TABLE payment, invoice_item, invoice, timesheet, employee_vendor, vendor, users, application, contact, "user" RESTART IDENTITY CASCADE`).Error
}
