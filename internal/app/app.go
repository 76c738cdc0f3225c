package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"pets-go/internal/assets"
	"pets-go/internal/backup"
	"pets-go/internal/config"
	"pets-go/internal/database"
	"pets-go/internal/encryption"
	"pets-go/internal/model"
	"pets-go/internal/pets"
	"pets-go/internal/state"
	"pets-go/internal/vault"
)

// PetsApp is the application layer between the CLI and the registry.
// It constructs all dependencies from config, exposes the operations the
// commands need and closes the store and the log file on Close.
type PetsApp struct {
	cfg       *config.Config
	db        *database.SQLiteDatabase
	useCase   *pets.PetUseCase
	vault     backup.Vault
	encryptor backup.Encryptor
	backup    *backup.Service
	logger    pets.Logger
	logFile   *os.File
}

// BackupStatus describes the snapshot held by the configured vault.
type BackupStatus struct {
	HostID        string
	Vault         string
	RemoteVersion int64 // 0 when nothing was pushed yet
	Encrypted     bool  // keys are set up
}

// NewPetsApp creates a fully wired PetsApp from the given config.
// The store is opened, migrated and, when new, seeded.
// The caller must call Close when done.
func NewPetsApp(cfg *config.Config) (*PetsApp, error) {
	session := time.Now().UTC().Format("20060102T150405Z")
	slogger, logFile, err := newLogger(cfg.LogDir, session, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: slogger}

	db, err := database.NewDatabaseFromConfig(cfg.Database, pets.RealClock{}, logger)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("creating database: %w", err)
	}

	closeAll := func() {
		db.Close()
		logFile.Close()
	}

	if err := db.Initialize(); err != nil {
		closeAll()
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	if err := db.CheckMigrations(); err != nil {
		closeAll()
		return nil, fmt.Errorf("database schema out of date: %w", err)
	}

	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	a := &PetsApp{
		cfg:       cfg,
		db:        db,
		useCase:   pets.NewPetUseCase(pets.NewRepository(db)),
		encryptor: enc,
		logger:    logger,
		logFile:   logFile,
	}

	// Backups are optional; pet commands work without a vault.
	if len(cfg.Vaults) > 0 {
		v, err := vault.NewVaultFromConfig(cfg.Vaults[0])
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("creating vault: %w", err)
		}
		a.vault = v
		a.backup = backup.NewService(db, v, enc, pets.RealClock{}, logger)
	}

	return a, nil
}

// ListPets returns every pet, ordered by ID.
func (a *PetsApp) ListPets() ([]model.PetModel, error) {
	w, err := a.useCase.GetPets()
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}
	resp, err := pets.First(w)
	if err != nil {
		return nil, fmt.Errorf("listing pets: %w", err)
	}
	return resp.Data, nil
}

// GetPet returns the pet with the given ID, or pets.ErrNotFound.
func (a *PetsApp) GetPet(id int64) (model.PetModel, error) {
	w, err := a.useCase.GetPet(id)
	if err != nil {
		return model.PetModel{}, fmt.Errorf("getting pet %d: %w", id, err)
	}
	resp, err := pets.First(w)
	if err != nil {
		return model.PetModel{}, fmt.Errorf("getting pet %d: %w", id, err)
	}
	pet, ok := resp.First()
	if !ok {
		return model.PetModel{}, fmt.Errorf("pet %d: %w", id, pets.ErrNotFound)
	}
	return pet, nil
}

// SavePet submits pet through a PetForm, the same path an edit screen takes.
// A zero ID adds a new pet; any other ID updates that pet.
func (a *PetsApp) SavePet(pet model.PetModel) error {
	form := a.NewPetForm()
	defer form.Close()

	events := []state.FormEvent{
		state.NameChanged{Name: pet.Name},
		state.DescriptionChanged{Description: pet.Description},
		state.ImageChanged{Image: pet.Image},
		state.TypeChanged{Type: pet.Type},
		state.RaceChanged{Race: pet.Race},
		state.BirthdateChanged{Birthdate: pet.Birthdate},
	}
	for _, ev := range events {
		if err := form.OnEvent(ev); err != nil {
			return err
		}
	}

	if pet.ID == 0 {
		return form.OnEvent(state.AddClicked{})
	}
	return form.OnEvent(state.UpdateClicked{ID: pet.ID})
}

// DeletePet removes the pet with the given ID through a PetList and returns
// the refreshed list.
func (a *PetsApp) DeletePet(id int64) ([]model.PetModel, error) {
	list := a.NewPetList()
	defer list.Close()

	if err := list.OnDeleteClicked(id); err != nil {
		return nil, err
	}
	resp, err := a.awaitList(context.Background(), list)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// WatchPets calls fn with the full pet list now and after every change until
// ctx is done or the stream fails.
func (a *PetsApp) WatchPets(ctx context.Context, fn func([]model.PetModel)) error {
	list := a.NewPetList()
	defer list.Close()

	changes, cancel := list.PetsState().Watch()
	defer cancel()
	errs, cancelErrs := list.ErrorState().Watch()
	defer cancelErrs()

	list.LoadPets()

	var last *model.PetResponse
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-errs:
			if msg := list.ErrorState().Value(); msg != "" {
				return errors.New(msg)
			}
		case <-changes:
			if resp := list.PetsState().Value(); resp != nil && resp != last {
				last = resp
				fn(resp.Data)
			}
		}
	}
}

// awaitList waits for the first response or error of a loading list.
func (a *PetsApp) awaitList(ctx context.Context, list *state.PetList) (*model.PetResponse, error) {
	changes, cancel := list.PetsState().Watch()
	defer cancel()
	errs, cancelErrs := list.ErrorState().Watch()
	defer cancelErrs()

	for {
		if resp := list.PetsState().Value(); resp != nil {
			return resp, nil
		}
		if msg := list.ErrorState().Value(); msg != "" {
			return nil, errors.New(msg)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-changes:
		case <-errs:
		}
	}
}

// NewPetForm returns a form state holder bound to the registry.
func (a *PetsApp) NewPetForm() *state.PetForm {
	return state.NewPetForm(a.useCase, a.logger)
}

// NewPetList returns a list state holder bound to the registry.
func (a *PetsApp) NewPetList() *state.PetList {
	return state.NewPetList(a.useCase, a.logger)
}

// PetTypes returns the pet types offered for the type field.
func (a *PetsApp) PetTypes() []string {
	return assets.PetTypesOrEmpty(a.cfg.Assets.PetTypesPath, a.logger)
}

// BackupPush snapshots the registry into the configured vault and returns the
// snapshot version.
func (a *PetsApp) BackupPush() (int64, error) {
	if a.backup == nil {
		return 0, fmt.Errorf("no vaults configured")
	}
	if !a.encryptor.IsConfigured() {
		return 0, fmt.Errorf("encryption keys not set up: run 'pets keys init'")
	}
	if err := a.vault.ValidateSetup(); err != nil {
		return 0, fmt.Errorf("vault not ready: %w", err)
	}
	return a.backup.Push(a.cfg.HostID)
}

// BackupStatus reports the version held by the vault for this host.
func (a *PetsApp) BackupStatus() (*BackupStatus, error) {
	if a.backup == nil {
		return nil, fmt.Errorf("no vaults configured")
	}
	version, err := a.backup.RemoteVersion(a.cfg.HostID)
	if err != nil {
		return nil, err
	}
	return &BackupStatus{
		HostID:        a.cfg.HostID,
		Vault:         a.cfg.Vaults[0].Name,
		RemoteVersion: version,
		Encrypted:     a.encryptor.IsConfigured(),
	}, nil
}

// BackupRestore writes this host's snapshot to destPath, which must not
// exist. The live registry is left untouched.
func (a *PetsApp) BackupRestore(destPath, passphrase string) error {
	if a.backup == nil {
		return fmt.Errorf("no vaults configured")
	}
	decryptCtx, err := a.encryptor.Unlock(passphrase)
	if err != nil {
		return fmt.Errorf("unlocking private key: %w", err)
	}
	return a.backup.Restore(a.cfg.HostID, destPath, decryptCtx)
}

// Close closes the store and the log file.
func (a *PetsApp) Close() error {
	var firstErr error
	if err := a.db.Close(); err != nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	return firstErr
}

// InitKeys generates the backup key pair described by cfg, protecting the
// private key with passphrase. It returns the public key when the encryptor
// exposes one.
func InitKeys(cfg config.EncryptionConfig, passphrase string) (string, error) {
	enc, err := encryption.NewEncryptorFromConfig(cfg)
	if err != nil {
		return "", fmt.Errorf("creating encryptor: %w", err)
	}
	if err := enc.Setup(passphrase); err != nil {
		return "", fmt.Errorf("setting up keys: %w", err)
	}
	if age, ok := enc.(*encryption.AgeEncryptor); ok {
		return age.PublicKey()
	}
	return "", nil
}
