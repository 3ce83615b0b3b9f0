package theme

import (
	"encoding/json"
	"os"
)

// FileStore keeps the preference in a small JSON file keyed by StorageKey,
// standing in for the browser's local storage on the server side.
type FileStore struct{ path string }

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	var kv map[string]string
	if err := json.Unmarshal(b, &kv); err != nil {
		return "", err
	}
	return kv[StorageKey], nil
}

func (s *FileStore) Save(v string) error {
	b, err := json.Marshal(map[string]string{StorageKey: v})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

// MemStore is the test double.
type MemStore struct{ Value string }

func (s *MemStore) Load() (string, error) { return s.Value, nil }
func (s *MemStore) Save(v string) error   { s.Value = v; return nil }
