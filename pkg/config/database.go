package config

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB holds the database connection
type DB struct {
	Gorm *gorm.DB
}

// InitDB initializes and returns the database connection. Postgres is the
// production engine; the sqlite driver serves local development.
func InitDB(cfg *Config) (*DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
		if err == nil {
			// sqlite leaves foreign keys off unless asked; the comment
			// cascade depends on them
			err = db.Exec("PRAGMA foreign_keys = ON").Error
		}
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Printf("Successfully connected to %s!", cfg.DBDriver)
	return &DB{Gorm: db}, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.Gorm == nil {
		return
	}
	sqlDB, err := db.Gorm.DB()
	if err != nil {
		log.Printf("Error getting SQL DB from GORM: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v\n", err)
	} else {
		log.Println("Database connection closed.")
	}
}
