package db

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/estateshare/backend/config"
)

// NewSQLiteConnection opens an embedded SQLite database for local runs and
// tests. A single connection is used so that every unit of work is
// serialized, which stands in for the row locks SQLite lacks.
func NewSQLiteConnection(dsn string) (*Database, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// One connection serializes every unit of work; row locks are never contended here.
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	return &Database{
		db:  db,
		cfg: &config.DatabaseConfig{URL: dsn, MaxOpenConns: 1},
	}, nil
}
