package testutils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/linskybing/bizportal/internal/config/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB returns a private in-memory database with foreign keys
// enforced and the given schemas migrated (all schemas when none are given).
func NewSQLiteDB(t testing.TB, schemas ...db.Schema) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := db.SQLiteDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// the shared-cache database disappears with its last connection
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb, schemas...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}
