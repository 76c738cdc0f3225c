package pets_test

import (
	"errors"
	"testing"

	"pets-go/internal/database/sqlc"
	"pets-go/internal/model"
	"pets-go/internal/pets"
	"pets-go/internal/testutil"
)

func newPet(name string) model.PetModel {
	return model.PetModel{
		Name:        name,
		Description: name + " sleeps all day",
		Type:        "Gato",
		Race:        "Siamés",
		Birthdate:   "2021-03-04",
		Image:       "data:image/png;base64,iVBORw0KGgo=",
	}
}

// sameFields compares everything but the id.
func sameFields(a, b model.PetModel) bool {
	a.ID, b.ID = 0, 0
	return a == b
}

func TestRepository_AddPet_ThenGetPets(t *testing.T) {
	repo := pets.NewRepository(testutil.NewTestDatabase(t))

	want := newPet("Michi")
	if err := repo.AddPet(want); err != nil {
		t.Fatalf("AddPet() error = %v", err)
	}

	w, err := repo.GetPets()
	if err != nil {
		t.Fatalf("GetPets() error = %v", err)
	}
	resp, err := pets.First(w)
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}

	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if len(resp.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(resp.Data))
	}
	got := resp.Data[0]
	if got.ID == 0 {
		t.Error("added pet has no id")
	}
	if !sameFields(got, want) {
		t.Errorf("stored pet = %+v, want fields of %+v", got, want)
	}
}

func TestRepository_UpdatePet_ThenGetPet(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := pets.NewRepository(db)

	created, err := db.InsertPet(&sqlc.Pet{Name: "Old", Race: "Mestizo"})
	if err != nil {
		t.Fatalf("InsertPet() error = %v", err)
	}

	update := newPet("New")
	update.ID = created.ID
	if err := repo.UpdatePet(update); err != nil {
		t.Fatalf("UpdatePet() error = %v", err)
	}

	w, err := repo.GetPet(created.ID)
	if err != nil {
		t.Fatalf("GetPet() error = %v", err)
	}
	resp, err := pets.First(w)
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}

	got, ok := resp.First()
	if !ok {
		t.Fatal("GetPet() returned no pet")
	}
	if got != update {
		t.Errorf("GetPet() = %+v, want %+v", got, update)
	}
}

func TestRepository_DeletePet_ThenGetPets(t *testing.T) {
	repo := pets.NewRepository(testutil.NewTestDatabase(t))

	for _, name := range []string{"A", "B"} {
		if err := repo.AddPet(newPet(name)); err != nil {
			t.Fatalf("AddPet() error = %v", err)
		}
	}

	w, err := repo.GetPets()
	if err != nil {
		t.Fatalf("GetPets() error = %v", err)
	}
	defer w.Stop()

	before := testutil.Recv(t, w.Changes())
	victim := before.Data[0].ID

	if err := repo.DeletePet(victim); err != nil {
		t.Fatalf("DeletePet() error = %v", err)
	}

	after := testutil.Recv(t, w.Changes())
	if after.Contains(victim) {
		t.Errorf("pet %d still listed after delete", victim)
	}
	if len(after.Data) != 1 {
		t.Errorf("len(Data) = %d, want 1", len(after.Data))
	}
}

func TestRepository_GetPet_Missing(t *testing.T) {
	repo := pets.NewRepository(testutil.NewTestDatabase(t))

	w, err := repo.GetPet(404)
	if err != nil {
		t.Fatalf("GetPet() error = %v", err)
	}
	resp, err := pets.First(w)
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("Data = %#v, want empty non-nil slice", resp.Data)
	}
}

func TestRepository_SeededStore(t *testing.T) {
	clock := testutil.FixedClock()
	repo := pets.NewRepository(testutil.NewSeededTestDatabase(t, clock))

	w, err := repo.GetPets()
	if err != nil {
		t.Fatalf("GetPets() error = %v", err)
	}
	resp, err := pets.First(w)
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}

	if len(resp.Data) != 1 {
		t.Fatalf("len(Data) = %d, want 1", len(resp.Data))
	}
	seed := resp.Data[0]
	if seed.ID != 1 || seed.Name != "Firulais" || seed.Race != "Labrador" {
		t.Errorf("seed = %+v", seed)
	}
	if want := clock.Now().Format("2006-01-02"); seed.Birthdate != want {
		t.Errorf("seed Birthdate = %q, want %q", seed.Birthdate, want)
	}
}

func TestRepository_AddPet_DuplicateID(t *testing.T) {
	repo := pets.NewRepository(testutil.NewTestDatabase(t))

	pet := newPet("Twin")
	pet.ID = 5
	if err := repo.AddPet(pet); err != nil {
		t.Fatalf("first AddPet() error = %v", err)
	}
	if err := repo.AddPet(pet); err == nil {
		t.Error("second AddPet() with same id expected error")
	}
}

// failingStore returns err from every call.
type failingStore struct {
	pets.Store
	err error
}

func (s failingStore) InsertPet(*sqlc.Pet) (*sqlc.Pet, error) { return nil, s.err }
func (s failingStore) UpdatePet(*sqlc.Pet) error              { return s.err }
func (s failingStore) DeletePetByID(int64) error              { return s.err }
func (s failingStore) WatchPets() (pets.Watcher[[]*sqlc.Pet], error) {
	return nil, s.err
}

func TestRepository_PassesErrorsThrough(t *testing.T) {
	boom := errors.New("disk full")
	repo := pets.NewRepository(failingStore{err: boom})

	checks := map[string]error{
		"AddPet":    repo.AddPet(newPet("x")),
		"UpdatePet": repo.UpdatePet(newPet("x")),
		"DeletePet": repo.DeletePet(1),
	}
	_, err := repo.GetPets()
	checks["GetPets"] = err

	for name, err := range checks {
		if err != boom {
			t.Errorf("%s() error = %v, want %v unchanged", name, err, boom)
		}
	}
}

func TestToModelToRecord(t *testing.T) {
	pet := newPet("Round")
	pet.ID = 9
	if got := pets.ToModel(pets.ToRecord(pet)); got != pet {
		t.Errorf("ToModel(ToRecord(p)) = %+v, want %+v", got, pet)
	}
}
