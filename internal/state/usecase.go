// Package state holds the presentation state behind the pet screens: a form
// for one pet and a list of all pets. Each holder drives the use case and
// republishes results and errors through Observable slots.
package state

import (
	"pets-go/internal/model"
	"pets-go/internal/pets"
)

// PetUseCase is what the state holders need from the application layer.
type PetUseCase interface {
	GetPet(id int64) (pets.Watcher[*model.PetResponse], error)
	GetPets() (pets.Watcher[*model.PetResponse], error)
	AddPet(pet model.PetModel) error
	UpdatePet(pet model.PetModel) error
	Delete(id int64) error
}

var _ PetUseCase = (*pets.PetUseCase)(nil)
