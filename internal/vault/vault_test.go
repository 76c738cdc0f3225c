package vault

import (
	"bytes"
	"strings"
	"testing"

	"pets-go/internal/backup"
)

// testVaultBehavior runs the checks every Vault implementation must pass.
func testVaultBehavior(t *testing.T, v backup.Vault) {
	t.Helper()

	t.Run("version is zero before first put", func(t *testing.T) {
		got, err := v.GetSnapshotVersion("fresh-host")
		if err != nil {
			t.Fatalf("GetSnapshotVersion() error = %v", err)
		}
		if got != 0 {
			t.Errorf("GetSnapshotVersion() = %d, want 0", got)
		}
	})

	t.Run("get missing snapshot fails", func(t *testing.T) {
		var buf bytes.Buffer
		if err := v.GetSnapshot("fresh-host", &buf); err == nil {
			t.Error("GetSnapshot() expected error for missing host")
		}
	})

	t.Run("put then get", func(t *testing.T) {
		data := "encrypted snapshot bytes"
		if err := v.PutSnapshot("host-a", strings.NewReader(data), int64(len(data)), 1700000000); err != nil {
			t.Fatalf("PutSnapshot() error = %v", err)
		}

		var buf bytes.Buffer
		if err := v.GetSnapshot("host-a", &buf); err != nil {
			t.Fatalf("GetSnapshot() error = %v", err)
		}
		if buf.String() != data {
			t.Errorf("GetSnapshot() = %q, want %q", buf.String(), data)
		}

		version, err := v.GetSnapshotVersion("host-a")
		if err != nil {
			t.Fatalf("GetSnapshotVersion() error = %v", err)
		}
		if version != 1700000000 {
			t.Errorf("GetSnapshotVersion() = %d, want %d", version, 1700000000)
		}
	})

	t.Run("put replaces previous snapshot", func(t *testing.T) {
		for i, data := range []string{"first", "second"} {
			if err := v.PutSnapshot("host-b", strings.NewReader(data), int64(len(data)), int64(i+1)); err != nil {
				t.Fatalf("PutSnapshot(%q) error = %v", data, err)
			}
		}

		var buf bytes.Buffer
		if err := v.GetSnapshot("host-b", &buf); err != nil {
			t.Fatalf("GetSnapshot() error = %v", err)
		}
		if buf.String() != "second" {
			t.Errorf("GetSnapshot() = %q, want %q", buf.String(), "second")
		}
		if version, _ := v.GetSnapshotVersion("host-b"); version != 2 {
			t.Errorf("GetSnapshotVersion() = %d, want 2", version)
		}
	})

	t.Run("hosts are isolated", func(t *testing.T) {
		for _, host := range []string{"host-c", "host-d"} {
			if err := v.PutSnapshot(host, strings.NewReader(host), int64(len(host)), 5); err != nil {
				t.Fatalf("PutSnapshot(%s) error = %v", host, err)
			}
		}
		var buf bytes.Buffer
		if err := v.GetSnapshot("host-c", &buf); err != nil {
			t.Fatalf("GetSnapshot() error = %v", err)
		}
		if buf.String() != "host-c" {
			t.Errorf("GetSnapshot(host-c) = %q, want %q", buf.String(), "host-c")
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		if err := v.PutSnapshot("host-e", strings.NewReader("short"), 100, 1); err == nil {
			t.Error("PutSnapshot() expected size mismatch error")
		}
	})

	t.Run("validate setup", func(t *testing.T) {
		if err := v.ValidateSetup(); err != nil {
			t.Errorf("ValidateSetup() error = %v", err)
		}
	})
}
