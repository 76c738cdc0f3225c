package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pets-go/internal/database/migrations"
	"pets-go/internal/database/sqlc"
	"pets-go/internal/pets"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDatabase implements pets.Store on top of SQLite.
type SQLiteDatabase struct {
	db      *sql.DB
	queries *sqlc.Queries
	path    string
	hub     *pets.Hub
	clock   pets.Clock
	logger  pets.Logger
}

// NewSQLiteDatabase opens a SQLite database.
// path can be a file path or ":memory:" for an in-memory database.
// A nil clock or logger falls back to the real clock and a no-op logger.
// The schema is not touched until Initialize is called.
func NewSQLiteDatabase(path string, clock pets.Clock, logger pets.Logger) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	s := NewSQLiteDatabaseFromDB(db, clock, logger)
	s.path = path
	return s, nil
}

// NewSQLiteDatabaseFromDB wraps an existing database connection.
// The caller is responsible for ensuring the connection is properly configured.
func NewSQLiteDatabaseFromDB(db *sql.DB, clock pets.Clock, logger pets.Logger) *SQLiteDatabase {
	if clock == nil {
		clock = pets.RealClock{}
	}
	if logger == nil {
		logger = pets.NewNopLogger()
	}
	return &SQLiteDatabase{
		db:      db,
		queries: sqlc.New(db),
		hub:     pets.NewHub(),
		clock:   clock,
		logger:  logger,
	}
}

// OpenConnection opens and configures a SQLite database connection.
// This is exported for use in tools and tests that need a properly configured SQLite connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: every ":memory:" connection is a separate database,
	// and SQLite allows a single writer anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// Initialize brings the schema up to date. When the pets table did not exist
// beforehand the store is new and gets seeded with the sample pet.
func (s *SQLiteDatabase) Initialize() error {
	var tables int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'pets'",
	).Scan(&tables)
	if err != nil {
		return fmt.Errorf("inspecting schema: %w", err)
	}

	if err := migrations.MigrateUp(s.db); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	if tables == 0 {
		s.logger.Info("new pet store created", "path", s.path)
		if err := s.Seed(); err != nil {
			return fmt.Errorf("seeding new store: %w", err)
		}
	}
	return nil
}

// Pet operations

func (s *SQLiteDatabase) InsertPet(pet *sqlc.Pet) (*sqlc.Pet, error) {
	ctx := context.Background()

	var (
		row sqlc.Pet
		err error
	)
	if pet.ID == 0 {
		row, err = s.queries.InsertPet(ctx, sqlc.InsertPetParams{
			Name:        pet.Name,
			Birthdate:   pet.Birthdate,
			Description: pet.Description,
			Race:        pet.Race,
			Image:       pet.Image,
			Type:        pet.Type,
		})
	} else {
		row, err = s.queries.InsertPetWithID(ctx, sqlc.InsertPetWithIDParams{
			ID:          pet.ID,
			Name:        pet.Name,
			Birthdate:   pet.Birthdate,
			Description: pet.Description,
			Race:        pet.Race,
			Image:       pet.Image,
			Type:        pet.Type,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("inserting pet: %w", err)
	}

	s.logger.Debug("pet inserted", "id", row.ID)
	s.hub.Notify()
	return &row, nil
}

func (s *SQLiteDatabase) UpdatePet(pet *sqlc.Pet) error {
	n, err := s.queries.UpdatePet(context.Background(), sqlc.UpdatePetParams{
		Name:        pet.Name,
		Birthdate:   pet.Birthdate,
		Description: pet.Description,
		Race:        pet.Race,
		Image:       pet.Image,
		Type:        pet.Type,
		ID:          pet.ID,
	})
	if err != nil {
		return fmt.Errorf("updating pet %d: %w", pet.ID, err)
	}

	s.logger.Debug("pet updated", "id", pet.ID, "rows", n)
	s.hub.Notify()
	return nil
}

func (s *SQLiteDatabase) DeletePetByID(id int64) error {
	n, err := s.queries.DeletePetByID(context.Background(), id)
	if err != nil {
		return fmt.Errorf("deleting pet %d: %w", id, err)
	}

	s.logger.Debug("pet deleted", "id", id, "rows", n)
	s.hub.Notify()
	return nil
}

func (s *SQLiteDatabase) DeleteAllPets() error {
	if err := s.queries.DeleteAllPets(context.Background()); err != nil {
		return fmt.Errorf("deleting all pets: %w", err)
	}
	s.hub.Notify()
	return nil
}

func (s *SQLiteDatabase) FindPetByID(id int64) (*sqlc.Pet, error) {
	pet, err := s.queries.GetPetByID(context.Background(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding pet %d: %w", id, err)
	}
	return &pet, nil
}

func (s *SQLiteDatabase) ListPets() ([]*sqlc.Pet, error) {
	rows, err := s.queries.ListPets(context.Background())
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}

	result := make([]*sqlc.Pet, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (s *SQLiteDatabase) CountPets() (int64, error) {
	n, err := s.queries.CountPets(context.Background())
	if err != nil {
		return 0, fmt.Errorf("counting pets: %w", err)
	}
	return n, nil
}

// Watches

func (s *SQLiteDatabase) WatchPet(id int64) (pets.Watcher[*sqlc.Pet], error) {
	return pets.NewQueryWatcher(s.hub, func() (*sqlc.Pet, error) {
		return s.FindPetByID(id)
	}), nil
}

func (s *SQLiteDatabase) WatchPets() (pets.Watcher[[]*sqlc.Pet], error) {
	return pets.NewQueryWatcher(s.hub, s.ListPets), nil
}

// Path returns the database file path (or ":memory:" for in-memory databases).
func (s *SQLiteDatabase) Path() string {
	return s.path
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *SQLiteDatabase) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// BackupTo creates a complete copy of the database at destPath using VACUUM INTO.
// destPath must not exist yet.
func (s *SQLiteDatabase) BackupTo(destPath string) error {
	if _, err := s.db.Exec("VACUUM INTO ?", destPath); err != nil {
		return fmt.Errorf("backing up database: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Compile-time check that SQLiteDatabase implements pets.Store
var _ pets.Store = (*SQLiteDatabase)(nil)
