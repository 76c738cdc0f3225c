package pets

import "pets-go/internal/model"

// PetUseCase is the entry point used by the state holders. It forwards to
// the repository unchanged.
type PetUseCase struct {
	repo PetRepository
}

func NewPetUseCase(repo PetRepository) *PetUseCase {
	return &PetUseCase{repo: repo}
}

func (u *PetUseCase) GetPet(id int64) (Watcher[*model.PetResponse], error) {
	return u.repo.GetPet(id)
}

func (u *PetUseCase) GetPets() (Watcher[*model.PetResponse], error) {
	return u.repo.GetPets()
}

func (u *PetUseCase) AddPet(pet model.PetModel) error {
	return u.repo.AddPet(pet)
}

func (u *PetUseCase) UpdatePet(pet model.PetModel) error {
	return u.repo.UpdatePet(pet)
}

func (u *PetUseCase) Delete(id int64) error {
	return u.repo.DeletePet(id)
}
