package state

import (
	"fmt"
	"sync"

	"pets-go/internal/model"
	"pets-go/internal/pets"
)

// FormState is the snapshot rendered by the pet form. The zero value is an
// empty, idle form.
type FormState struct {
	Name        string
	Description string
	Image       string
	Type        string
	Race        string
	Birthdate   string
	IsLoading   bool
	Error       string
	Success     bool
	HasError    bool
}

func (s FormState) toModel(id int64) model.PetModel {
	return model.PetModel{
		ID:          id,
		Name:        s.Name,
		Description: s.Description,
		Type:        s.Type,
		Race:        s.Race,
		Birthdate:   s.Birthdate,
		Image:       s.Image,
	}
}

// FormEvent is an input to PetForm.OnEvent.
type FormEvent interface {
	formEvent()
}

type (
	NameChanged        struct{ Name string }
	DescriptionChanged struct{ Description string }
	ImageChanged       struct{ Image string }
	TypeChanged        struct{ Type string }
	RaceChanged        struct{ Race string }
	BirthdateChanged   struct{ Birthdate string }

	// AddClicked saves the form as a new pet.
	AddClicked struct{}
	// UpdateClicked saves the form over the pet with ID.
	UpdateClicked struct{ ID int64 }
	// Reset clears the form.
	Reset struct{}
)

func (NameChanged) formEvent()        {}
func (DescriptionChanged) formEvent() {}
func (ImageChanged) formEvent()       {}
func (TypeChanged) formEvent()        {}
func (RaceChanged) formEvent()        {}
func (BirthdateChanged) formEvent()   {}
func (AddClicked) formEvent()         {}
func (UpdateClicked) formEvent()      {}
func (Reset) formEvent()              {}

// PetForm is the state holder of the create/edit pet screen.
type PetForm struct {
	useCase PetUseCase
	logger  pets.Logger
	state   *Observable[FormState]

	mu  sync.Mutex
	sub *subscription
}

func NewPetForm(useCase PetUseCase, logger pets.Logger) *PetForm {
	if logger == nil {
		logger = pets.NewNopLogger()
	}
	return &PetForm{
		useCase: useCase,
		logger:  logger,
		state:   NewObservable(FormState{}),
	}
}

// State returns the observable form snapshot.
func (f *PetForm) State() *Observable[FormState] {
	return f.state
}

// OnEvent applies ev. Field events never fail; save events return the
// error of the write, which is also recorded in the snapshot.
func (f *PetForm) OnEvent(ev FormEvent) error {
	switch e := ev.(type) {
	case NameChanged:
		f.edit(func(s *FormState) { s.Name = e.Name })
	case DescriptionChanged:
		f.edit(func(s *FormState) { s.Description = e.Description })
	case ImageChanged:
		f.edit(func(s *FormState) { s.Image = e.Image })
	case TypeChanged:
		f.edit(func(s *FormState) { s.Type = e.Type })
	case RaceChanged:
		f.edit(func(s *FormState) { s.Race = e.Race })
	case BirthdateChanged:
		f.edit(func(s *FormState) { s.Birthdate = e.Birthdate })
	case AddClicked:
		return f.save("add", f.useCase.AddPet, 0)
	case UpdateClicked:
		return f.save("update", f.useCase.UpdatePet, e.ID)
	case Reset:
		f.state.Set(FormState{})
	default:
		return fmt.Errorf("unknown form event %T", ev)
	}
	return nil
}

func (f *PetForm) edit(fn func(s *FormState)) {
	f.state.Update(func(s FormState) FormState {
		fn(&s)
		return s
	})
}

func (f *PetForm) save(op string, write func(model.PetModel) error, id int64) error {
	snapshot := f.state.Update(func(s FormState) FormState {
		s.IsLoading = true
		s.Success = false
		s.Error = ""
		s.HasError = false
		return s
	})

	err := write(snapshot.toModel(id))
	if err != nil {
		f.logger.Error("failed to save pet", "op", op, "id", id, "error", err)
	}

	f.edit(func(s *FormState) {
		s.IsLoading = false
		if err != nil {
			s.Error = err.Error()
			s.HasError = true
			return
		}
		s.Success = true
	})

	if err != nil {
		return fmt.Errorf("%s pet: %w", op, err)
	}
	return nil
}

// LoadPet fills the editable fields from the pet with the given ID and keeps
// them in sync while the pet changes. It replaces any previous LoadPet.
// A failed or empty lookup leaves the snapshot alone and is logged.
func (f *PetForm) LoadPet(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sub.stop()
	f.sub = nil

	w, err := f.useCase.GetPet(id)
	if err != nil {
		f.logger.Error("failed to load pet", "id", id, "error", err)
		return
	}

	f.sub = subscribe(w,
		func(resp *model.PetResponse) {
			pet, ok := resp.First()
			if !resp.Success || !ok {
				f.logger.Error("pet not available", "id", id)
				return
			}
			f.edit(func(s *FormState) {
				s.Name = pet.Name
				s.Description = pet.Description
				s.Image = pet.Image
				s.Type = pet.Type
				s.Race = pet.Race
				s.Birthdate = pet.Birthdate
			})
		},
		func(err error) {
			if err != nil {
				f.logger.Error("pet stream failed", "id", id, "error", err)
			}
		},
	)
}

// Close stops following the loaded pet.
func (f *PetForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sub.stop()
	f.sub = nil
}
