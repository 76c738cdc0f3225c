package pets_test

import (
	"testing"

	"pets-go/internal/model"
	"pets-go/internal/pets"
)

// recordingRepo records the calls it receives.
type recordingRepo struct {
	calls []string
	added model.PetModel
}

func (r *recordingRepo) GetPet(id int64) (pets.Watcher[*model.PetResponse], error) {
	r.calls = append(r.calls, "GetPet")
	return nil, nil
}

func (r *recordingRepo) GetPets() (pets.Watcher[*model.PetResponse], error) {
	r.calls = append(r.calls, "GetPets")
	return nil, nil
}

func (r *recordingRepo) AddPet(pet model.PetModel) error {
	r.calls = append(r.calls, "AddPet")
	r.added = pet
	return nil
}

func (r *recordingRepo) UpdatePet(pet model.PetModel) error {
	r.calls = append(r.calls, "UpdatePet")
	return nil
}

func (r *recordingRepo) DeletePet(id int64) error {
	r.calls = append(r.calls, "DeletePet")
	return nil
}

func TestPetUseCase_Forwards(t *testing.T) {
	repo := &recordingRepo{}
	uc := pets.NewPetUseCase(repo)

	pet := model.PetModel{Name: "Kira", Type: "Perro"}
	uc.GetPet(1)
	uc.GetPets()
	uc.AddPet(pet)
	uc.UpdatePet(pet)
	uc.Delete(1)

	want := []string{"GetPet", "GetPets", "AddPet", "UpdatePet", "DeletePet"}
	if len(repo.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", repo.calls, want)
	}
	for i := range want {
		if repo.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, repo.calls[i], want[i])
		}
	}
	if repo.added != pet {
		t.Errorf("AddPet received %+v, want %+v unchanged", repo.added, pet)
	}
}
