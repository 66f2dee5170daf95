package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "SQLITE_PATH", "BCRYPT_COST"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg := LoadConfig()

	assert.Equal(t, DriverPostgres, cfg.DbDriver)
	assert.Equal(t, "bizportal.db", cfg.SQLitePath)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("BCRYPT_COST", "4")

	cfg := LoadConfig()
	assert.Equal(t, DriverSQLite, cfg.DbDriver)
	assert.Equal(t, "/tmp/test.db", cfg.SQLitePath)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestLoadConfig_InvalidBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "99")

	cfg := LoadConfig()
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DbHost:     "db",
		DbPort:     "5433",
		DbUser:     "u",
		DbPassword: "p",
		DbName:     "n",
		DbSSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}
