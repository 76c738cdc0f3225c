// Package backup copies the pet registry off-device: a consistent snapshot
// of the database file is encrypted and stored in a vault, one snapshot per
// host, and can later be downloaded and decrypted back to disk.
package backup

import "io"

// Vault stores encrypted registry snapshots, one per host.
// All operations stream through io.Reader/io.Writer.
type Vault interface {
	// PutSnapshot replaces the snapshot for hostID.
	// size is the number of bytes that will be read from r.
	// version is stored alongside the snapshot.
	PutSnapshot(hostID string, r io.Reader, size int64, version int64) error

	// GetSnapshot writes the snapshot for hostID to w.
	GetSnapshot(hostID string, w io.Writer) error

	// GetSnapshotVersion returns the stored version, or 0 if the host has no
	// snapshot yet.
	GetSnapshotVersion(hostID string) (int64, error)

	// ValidateSetup verifies that the vault is accessible and properly configured.
	ValidateSetup() error
}

// Encryptor encrypts snapshots with a public key and unlocks the private key
// for restores.
type Encryptor interface {
	// Setup generates a key pair and protects the private key with passphrase.
	Setup(passphrase string) error

	// Encrypt encrypts data read from r and writes ciphertext to w.
	// Uses the public key only; no passphrase required.
	Encrypt(r io.Reader, w io.Writer) error

	// Unlock decrypts the private key using the passphrase.
	// Returns an error if the passphrase is incorrect.
	Unlock(passphrase string) (DecryptionContext, error)

	// IsConfigured returns true if both key files exist at configured paths.
	IsConfigured() bool
}

// DecryptionContext holds an unlocked private key in memory for the duration
// of a restore.
type DecryptionContext interface {
	Decrypt(r io.Reader, w io.Writer) error
}

// Snapshotter writes a consistent copy of the live database to a path that
// does not exist yet.
type Snapshotter interface {
	BackupTo(destPath string) error
}
