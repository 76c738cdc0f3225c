package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pets-go/internal/pets"
)

// Service pushes and restores registry snapshots.
type Service struct {
	db        Snapshotter
	vault     Vault
	encryptor Encryptor
	clock     pets.Clock
	logger    pets.Logger
}

func NewService(db Snapshotter, vault Vault, encryptor Encryptor, clock pets.Clock, logger pets.Logger) *Service {
	if clock == nil {
		clock = pets.RealClock{}
	}
	if logger == nil {
		logger = pets.NewNopLogger()
	}
	return &Service{
		db:        db,
		vault:     vault,
		encryptor: encryptor,
		clock:     clock,
		logger:    logger,
	}
}

// Push snapshots the database, encrypts it and uploads it for hostID.
// The version is the current unix time, bumped past the stored version when
// the clock has not moved on. Returns the version written.
func (s *Service) Push(hostID string) (int64, error) {
	remote, err := s.vault.GetSnapshotVersion(hostID)
	if err != nil {
		return 0, fmt.Errorf("checking remote snapshot version: %w", err)
	}
	version := s.clock.Now().Unix()
	if version <= remote {
		version = remote + 1
	}

	tmpDir, err := os.MkdirTemp("", "pets-backup-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	plainPath := filepath.Join(tmpDir, "pets.db")
	if err := s.db.BackupTo(plainPath); err != nil {
		return 0, fmt.Errorf("snapshotting database: %w", err)
	}

	encPath := filepath.Join(tmpDir, "pets.db.age")
	if err := s.encryptFile(plainPath, encPath); err != nil {
		return 0, err
	}

	if err := s.upload(hostID, encPath, version); err != nil {
		return 0, err
	}

	s.logger.Info("snapshot pushed", "host", hostID, "version", version)
	return version, nil
}

// RemoteVersion returns the version of the stored snapshot, 0 if none.
func (s *Service) RemoteVersion(hostID string) (int64, error) {
	v, err := s.vault.GetSnapshotVersion(hostID)
	if err != nil {
		return 0, fmt.Errorf("checking remote snapshot version: %w", err)
	}
	return v, nil
}

// Restore downloads the snapshot for hostID, decrypts it and writes it to
// destPath. destPath must not exist; it only appears once fully written.
func (s *Service) Restore(hostID, destPath string, decryptCtx DecryptionContext) error {
	if decryptCtx == nil {
		return fmt.Errorf("snapshot is encrypted but no passphrase was provided")
	}
	if _, err := os.Stat(destPath); err == nil {
		return fmt.Errorf("output file already exists: %s", destPath)
	}

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".pets-restore-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	// Pipe the vault straight into the decryptor.
	pr, pw := io.Pipe()
	vaultErrCh := make(chan error, 1)
	go func() {
		err := s.vault.GetSnapshot(hostID, pw)
		pw.CloseWithError(err)
		vaultErrCh <- err
	}()

	decryptErr := decryptCtx.Decrypt(pr, tmp)
	pr.CloseWithError(decryptErr) // unblock the vault if Decrypt failed early
	<-vaultErrCh
	closeErr := tmp.Close()

	// A vault failure reaches Decrypt through the pipe.
	if decryptErr != nil {
		return fmt.Errorf("decrypting snapshot: %w", decryptErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing restored file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("moving restored file into place: %w", err)
	}
	success = true

	s.logger.Info("snapshot restored", "host", hostID, "path", destPath)
	return nil
}

func (s *Service) encryptFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating encrypted snapshot: %w", err)
	}
	if err := s.encryptor.Encrypt(in, out); err != nil {
		out.Close()
		return fmt.Errorf("encrypting snapshot: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing encrypted snapshot: %w", err)
	}
	return nil
}

func (s *Service) upload(hostID, path string, version int64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening snapshot for upload: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat snapshot: %w", err)
	}

	if err := s.vault.PutSnapshot(hostID, f, info.Size(), version); err != nil {
		return fmt.Errorf("uploading snapshot to vault: %w", err)
	}
	return nil
}
