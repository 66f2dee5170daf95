package main

import (
	"fmt"
	"log"
	"os"

	"github.com/linskybing/bizportal/internal/config"
	"github.com/linskybing/bizportal/internal/config/db"
)

func main() {
	// Load configuration from environment variables and .env file
	cfg := config.LoadConfig()

	// Optional arguments narrow the run to the named schemas (intake, workforce)
	var schemas []db.Schema
	for _, arg := range os.Args[1:] {
		schemas = append(schemas, db.Schema(arg))
	}

	if err := run(cfg, schemas); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	log.Printf("Database schema up to date (%s)", cfg.DbDriver)
}

func run(cfg *config.Config, schemas []db.Schema) error {
	gdb, err := db.Open(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer sqlDB.Close()

	return db.Migrate(gdb, schemas...)
}
