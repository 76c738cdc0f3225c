package testutil

import (
	"pets-go/internal/backup"
	"pets-go/internal/encryption"
)

// NewTestEncryptor creates a new test encryptor for testing.
func NewTestEncryptor() backup.Encryptor {
	return encryption.NewTestEncryptor()
}
