package testutil

import (
	"pets-go/internal/backup"
	"pets-go/internal/vault"
)

// NewTestVault creates a new in-memory vault for testing.
func NewTestVault() backup.Vault {
	return vault.NewMemoryVault("test-vault")
}
