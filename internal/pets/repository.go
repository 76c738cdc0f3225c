package pets

import (
	"pets-go/internal/database/sqlc"
	"pets-go/internal/model"
)

// PetRepository is the application-facing pet API.
type PetRepository interface {
	GetPet(id int64) (Watcher[*model.PetResponse], error)
	GetPets() (Watcher[*model.PetResponse], error)
	AddPet(pet model.PetModel) error
	UpdatePet(pet model.PetModel) error
	DeletePet(id int64) error
}

// Repository translates between store rows and PetModel. It holds no state
// besides the store, and store errors are returned as they are.
type Repository struct {
	store Store
}

var _ PetRepository = (*Repository)(nil)

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// GetPet streams a response holding the pet with the given ID, or an empty
// response while no such pet exists.
func (r *Repository) GetPet(id int64) (Watcher[*model.PetResponse], error) {
	w, err := r.store.WatchPet(id)
	if err != nil {
		return nil, err
	}
	return MapWatcher(w, singleResponse), nil
}

// GetPets streams a response holding every pet, ordered by ID.
func (r *Repository) GetPets() (Watcher[*model.PetResponse], error) {
	w, err := r.store.WatchPets()
	if err != nil {
		return nil, err
	}
	return MapWatcher(w, listResponse), nil
}

func (r *Repository) AddPet(pet model.PetModel) error {
	row := ToRecord(pet)
	_, err := r.store.InsertPet(&row)
	return err
}

func (r *Repository) UpdatePet(pet model.PetModel) error {
	row := ToRecord(pet)
	return r.store.UpdatePet(&row)
}

func (r *Repository) DeletePet(id int64) error {
	return r.store.DeletePetByID(id)
}

// ToModel converts a store row into a PetModel.
func ToModel(row sqlc.Pet) model.PetModel {
	return model.PetModel{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Type:        row.Type,
		Race:        row.Race,
		Birthdate:   row.Birthdate,
		Image:       row.Image,
	}
}

// ToRecord converts a PetModel into a store row.
func ToRecord(pet model.PetModel) sqlc.Pet {
	return sqlc.Pet{
		ID:          pet.ID,
		Name:        pet.Name,
		Birthdate:   pet.Birthdate,
		Description: pet.Description,
		Race:        pet.Race,
		Image:       pet.Image,
		Type:        pet.Type,
	}
}

func singleResponse(row *sqlc.Pet) *model.PetResponse {
	resp := &model.PetResponse{Success: true, Data: []model.PetModel{}}
	if row != nil {
		resp.Data = append(resp.Data, ToModel(*row))
	}
	return resp
}

func listResponse(rows []*sqlc.Pet) *model.PetResponse {
	resp := &model.PetResponse{Success: true, Data: make([]model.PetModel, 0, len(rows))}
	for _, row := range rows {
		resp.Data = append(resp.Data, ToModel(*row))
	}
	return resp
}
