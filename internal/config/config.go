package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DbDriver   string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string
	SQLitePath string
	DbLogLevel string
	BcryptCost int
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		DbDriver:   getEnv("DB_DRIVER", DriverPostgres),
		DbHost:     getEnv("DB_HOST", "localhost"),
		DbPort:     getEnv("DB_PORT", "5432"),
		DbUser:     getEnv("DB_USER", "postgres"),
		DbPassword: getEnv("DB_PASSWORD", "password"),
		DbName:     getEnv("DB_NAME", "bizportal"),
		DbSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "bizportal.db"),
		DbLogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		BcryptCost: bcrypt.DefaultCost,
	}

	if raw, ok := os.LookupEnv("BCRYPT_COST"); ok {
		cost, err := strconv.Atoi(raw)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			log.Printf("Ignoring invalid BCRYPT_COST %q, using %d", raw, bcrypt.DefaultCost)
		} else {
			cfg.BcryptCost = cost
		}
	}

	return cfg
}

// DSN renders the key/value connection string understood by the postgres driver.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DbHost,
		c.DbPort,
		c.DbUser,
		c.DbPassword,
		c.DbName,
		c.DbSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
