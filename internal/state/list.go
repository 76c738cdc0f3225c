package state

import (
	"fmt"
	"sync"

	"pets-go/internal/model"
	"pets-go/internal/pets"
)

// PetList is the state holder of the pet list screen. It has two independent
// slots: the latest response (nil until the first one arrives) and the latest
// error message ("" while none).
type PetList struct {
	useCase PetUseCase
	logger  pets.Logger
	pets    *Observable[*model.PetResponse]
	errs    *Observable[string]

	mu  sync.Mutex
	sub *subscription
}

func NewPetList(useCase PetUseCase, logger pets.Logger) *PetList {
	if logger == nil {
		logger = pets.NewNopLogger()
	}
	return &PetList{
		useCase: useCase,
		logger:  logger,
		pets:    NewObservable[*model.PetResponse](nil),
		errs:    NewObservable(""),
	}
}

func (l *PetList) PetsState() *Observable[*model.PetResponse] { return l.pets }
func (l *PetList) ErrorState() *Observable[string]            { return l.errs }

// LoadPets (re)subscribes to the list of all pets. Every emission overwrites
// the pets slot. A failure overwrites the error slot and ends the
// subscription until LoadPets is called again.
func (l *PetList) LoadPets() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sub.stop()
	l.sub = nil

	w, err := l.useCase.GetPets()
	if err != nil {
		l.fail("failed to load pets", err)
		return
	}

	l.sub = subscribe(w,
		l.pets.Set,
		func(err error) {
			if err != nil {
				l.fail("pet list stream failed", err)
			}
		},
	)
}

// OnDeleteClicked deletes the pet and then reloads the list, so the
// refreshed list no longer holds id. A failed delete is reported in the
// error slot and returned; the list is not reloaded then.
func (l *PetList) OnDeleteClicked(id int64) error {
	if err := l.useCase.Delete(id); err != nil {
		l.fail("failed to delete pet", err, "id", id)
		return fmt.Errorf("deleting pet %d: %w", id, err)
	}
	l.LoadPets()
	return nil
}

func (l *PetList) fail(msg string, err error, args ...any) {
	l.logger.Error(msg, append(args, "error", err)...)
	l.errs.Set(err.Error())
}

// Close ends the current subscription.
func (l *PetList) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sub.stop()
	l.sub = nil
}
