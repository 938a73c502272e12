package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/admindocentes/backend/models"
)

// sessionSchemaVersion guards the on-disk record shape. Bump it whenever the
// persisted fields change; a mismatch reads as "no session".
const sessionSchemaVersion = 1

type persistedSession struct {
	SchemaVersion int                `json:"schema_version"`
	User          models.SessionUser `json:"user"`
}

// FileStorage keeps the single persisted session record as one JSON document
// on disk, the server-side analog of the mobile client's single storage key.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Save(user models.SessionUser) error {
	record := persistedSession{SchemaVersion: sessionSchemaVersion, User: user}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Load reads the persisted record. A missing file, unparseable content or a
// schema version mismatch all surface as an error for the caller to log and
// treat as logged-out.
func (f *FileStorage) Load() (*models.SessionUser, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	var record persistedSession
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if record.SchemaVersion != sessionSchemaVersion {
		return nil, fmt.Errorf("session schema version %d, want %d", record.SchemaVersion, sessionSchemaVersion)
	}
	return &record.User, nil
}

func (f *FileStorage) Delete() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
