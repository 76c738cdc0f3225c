package testutil

import (
	"testing"

	"pets-go/internal/database"
	"pets-go/internal/pets"
)

// NewTestDatabase creates an in-memory SQLite database with the schema
// applied and no rows. It is closed when the test completes.
func NewTestDatabase(t *testing.T) *database.SQLiteDatabase {
	t.Helper()

	sqlDB, err := database.OpenConnection(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if _, err := sqlDB.Exec(database.Schema); err != nil {
		sqlDB.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	db := database.NewSQLiteDatabaseFromDB(sqlDB, FixedClock(), nil)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// NewSeededTestDatabase creates an in-memory database the way the application
// does on first start: migrated and seeded with the sample pet, dated by clock.
func NewSeededTestDatabase(t *testing.T, clock pets.Clock) *database.SQLiteDatabase {
	t.Helper()

	db, err := database.NewSQLiteDatabase(":memory:", clock, nil)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := db.Initialize(); err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}
	return db
}
