package token

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// tokenFileName is the fixed storage key for the persisted credential.
const tokenFileName = "courier_token"

// fileBackend persists the credential as a single 0600 file.
type fileBackend struct {
	path string
}

// newFileBackend probes the state directory once. A directory that
// cannot be created or written means no durable storage for this
// process.
func newFileBackend(dir string) (*fileBackend, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("state dir is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o600); err != nil {
		return nil, fmt.Errorf("state dir not writable: %w", err)
	}
	_ = os.Remove(probe)
	return &fileBackend{path: filepath.Join(dir, tokenFileName)}, nil
}

func (b *fileBackend) Read() (string, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (b *fileBackend) Write(token string) error {
	if err := os.WriteFile(b.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (b *fileBackend) Remove() error {
	err := os.Remove(b.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
