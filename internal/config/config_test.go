package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManager_ReadWrite_RoundTrip(t *testing.T) {
	original := &Config{
		HostID:  "test-host-abc",
		BaseDir: "/home/user/.local/share/pets",
		LogDir:  "/home/user/.local/share/pets/log",
		Log:     LogConfig{Level: "debug"},
		Vaults: []VaultConfig{
			{Type: "filesystem", Name: "local", FSVaultRoot: "/backup/vault"},
			{Type: "s3", Name: "offsite", S3Bucket: "pets-backups", S3Prefix: "laptop", S3Region: "eu-west-1", S3Endpoint: "http://localhost:9000"},
		},
		Encryption: EncryptionConfig{
			Type:           "age",
			PublicKeyPath:  "/home/user/.local/share/pets/keys/pets.pub",
			PrivateKeyPath: "/home/user/.local/share/pets/keys/pets.key",
		},
		Database: DatabaseConfig{Type: "sqlite", DataDir: "/home/user/.local/share/pets/db"},
		Assets:   AssetsConfig{PetTypesPath: "/etc/pets/pettype.json"},
	}

	var buf bytes.Buffer
	m := &Manager{}

	if err := m.Write(&buf, original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := m.Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.HostID != original.HostID {
		t.Errorf("HostID = %q, want %q", got.HostID, original.HostID)
	}
	if got.BaseDir != original.BaseDir {
		t.Errorf("BaseDir = %q, want %q", got.BaseDir, original.BaseDir)
	}
	if got.LogDir != original.LogDir {
		t.Errorf("LogDir = %q, want %q", got.LogDir, original.LogDir)
	}
	if got.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", got.Log.Level, "debug")
	}
	if len(got.Vaults) != 2 {
		t.Fatalf("len(Vaults) = %d, want 2", len(got.Vaults))
	}
	if got.Vaults[0].FSVaultRoot != "/backup/vault" {
		t.Errorf("Vaults[0].FSVaultRoot = %q, want %q", got.Vaults[0].FSVaultRoot, "/backup/vault")
	}
	if got.Vaults[1] != original.Vaults[1] {
		t.Errorf("Vaults[1] = %+v, want %+v", got.Vaults[1], original.Vaults[1])
	}
	if got.Encryption != original.Encryption {
		t.Errorf("Encryption = %+v, want %+v", got.Encryption, original.Encryption)
	}
	if got.Database != original.Database {
		t.Errorf("Database = %+v, want %+v", got.Database, original.Database)
	}
	if got.Assets.PetTypesPath != "/etc/pets/pettype.json" {
		t.Errorf("Assets.PetTypesPath = %q, want %q", got.Assets.PetTypesPath, "/etc/pets/pettype.json")
	}
}

func TestManager_Read_Invalid(t *testing.T) {
	m := &Manager{}
	_, err := m.Read(strings.NewReader("host_id = [unterminated"))
	if err == nil {
		t.Fatal("Read() expected error for malformed TOML")
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("host-1", "/data/pets")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"HostID", cfg.HostID, "host-1"},
		{"BaseDir", cfg.BaseDir, "/data/pets"},
		{"LogDir", cfg.LogDir, "/data/pets/log"},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Database.Type", cfg.Database.Type, "sqlite"},
		{"Database.DataDir", cfg.Database.DataDir, "/data/pets/db"},
		{"Encryption.Type", cfg.Encryption.Type, "age"},
		{"Encryption.PublicKeyPath", cfg.Encryption.PublicKeyPath, "/data/pets/keys/pets.pub"},
		{"Encryption.PrivateKeyPath", cfg.Encryption.PrivateKeyPath, "/data/pets/keys/pets.key"},
		{"Assets.PetTypesPath", cfg.Assets.PetTypesPath, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}

	if len(cfg.Vaults) != 1 || cfg.Vaults[0].FSVaultRoot != "/data/pets/vault" {
		t.Errorf("Vaults = %+v, want one filesystem vault at /data/pets/vault", cfg.Vaults)
	}
}

func TestInit(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "pets.toml")
		cfg := NewConfig("h1", dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Fatalf("config file not created: %v", err)
		}
	})

	t.Run("fails if file already exists", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "pets.toml")
		cfg := NewConfig("h1", dir)

		if err := Init(path, cfg); err != nil {
			t.Fatalf("first Init() error = %v", err)
		}

		err := Init(path, cfg)
		if err == nil {
			t.Fatal("second Init() expected error")
		}
	})
}

func TestReadFromFile(t *testing.T) {
	t.Run("reads valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "pets.toml")
		cfg := NewConfig("read-test", dir)
		cfg.Database = DatabaseConfig{Type: "memory"}

		if err := Init(path, cfg); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		got, err := ReadFromFile(path)
		if err != nil {
			t.Fatalf("ReadFromFile() error = %v", err)
		}
		if got.HostID != "read-test" {
			t.Errorf("HostID = %q, want %q", got.HostID, "read-test")
		}
		if got.Database.Type != "memory" {
			t.Errorf("Database.Type = %q, want %q", got.Database.Type, "memory")
		}
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		_, err := ReadFromFile("/nonexistent/path/pets.toml")
		if err == nil {
			t.Fatal("ReadFromFile() expected error for missing file")
		}
	})
}
