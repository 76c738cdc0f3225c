package database

import (
	"fmt"
	"os"
	"path/filepath"

	"pets-go/internal/config"
	"pets-go/internal/pets"
)

// DBFileName is the registry file created inside data_dir.
const DBFileName = "pets.db"

// NewDatabaseFromConfig opens the database described by cfg.
// The caller still has to call Initialize before using it.
func NewDatabaseFromConfig(cfg config.DatabaseConfig, clock pets.Clock, logger pets.Logger) (*SQLiteDatabase, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data_dir: %w", err)
		}
		return NewSQLiteDatabase(filepath.Join(cfg.DataDir, DBFileName), clock, logger)
	case "memory":
		return NewSQLiteDatabase(":memory:", clock, logger)
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
