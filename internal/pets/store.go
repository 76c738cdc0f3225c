package pets

import "pets-go/internal/database/sqlc"

// Store is the durable table of pet records.
// Mutations notify every open watcher once they are committed.
type Store interface {
	// InsertPet stores pet and returns the stored row. A zero ID is assigned
	// by the store; a non-zero ID is used as-is and must be unique.
	InsertPet(pet *sqlc.Pet) (*sqlc.Pet, error)

	// UpdatePet replaces the row with pet.ID. A missing row is a no-op.
	UpdatePet(pet *sqlc.Pet) error

	// DeletePetByID removes one row. A missing row is a no-op.
	DeletePetByID(id int64) error

	// DeleteAllPets empties the table.
	DeleteAllPets() error

	// FindPetByID returns nil, nil when no row has the given ID.
	FindPetByID(id int64) (*sqlc.Pet, error)

	// ListPets returns all rows ordered by ID.
	ListPets() ([]*sqlc.Pet, error)

	// WatchPet streams the row with the given ID (nil while absent).
	WatchPet(id int64) (Watcher[*sqlc.Pet], error)

	// WatchPets streams the full ordered table.
	WatchPets() (Watcher[[]*sqlc.Pet], error)

	// Close closes the underlying connection.
	Close() error
}
