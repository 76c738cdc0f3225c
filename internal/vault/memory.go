package vault

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"pets-go/internal/backup"
)

// MemoryVault is an in-memory implementation of the Vault interface.
// It keeps every host's snapshot in memory, making it useful for testing.
// This implementation is safe for concurrent use.
type MemoryVault struct {
	name      string
	snapshots map[string][]byte // hostID -> snapshot
	versions  map[string]int64  // hostID -> version
	mu        sync.RWMutex
}

// NewMemoryVault creates a new in-memory vault with the given name.
func NewMemoryVault(name string) *MemoryVault {
	return &MemoryVault{
		name:      name,
		snapshots: make(map[string][]byte),
		versions:  make(map[string]int64),
	}
}

// PutSnapshot stores the snapshot for a host.
func (m *MemoryVault) PutSnapshot(hostID string, r io.Reader, size int64, version int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	if int64(len(data)) != size {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshots[hostID] = data
	m.versions[hostID] = version
	return nil
}

// GetSnapshotVersion returns 0 if no snapshot has been stored for this host.
func (m *MemoryVault) GetSnapshotVersion(hostID string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.versions[hostID], nil
}

// GetSnapshot writes the snapshot of a host to w.
func (m *MemoryVault) GetSnapshot(hostID string, w io.Writer) error {
	m.mu.RLock()
	data, ok := m.snapshots[hostID]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("snapshot not found for host: %s", hostID)
	}

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// ValidateSetup always succeeds for in-memory vault.
func (m *MemoryVault) ValidateSetup() error {
	return nil
}

// Compile-time check that MemoryVault implements backup.Vault interface
var _ backup.Vault = (*MemoryVault)(nil)
