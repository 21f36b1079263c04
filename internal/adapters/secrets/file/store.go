// Package file keeps wallet keys in a single TOML keyring readable only by its owner.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"github.com/pelletier/go-toml/v2"
)

const (
	keyringName = "keyring.toml"
	dirMode     = 0o700
	keyringMode = 0o600
)

var errEmptyKey = errors.New("secret key is empty")

type keyring struct {
	Keys map[string]string `toml:"keys"`
}

// Store is a ports.SecretStore over <dir>/keyring.toml. Writes replace the whole
// file through a temp file so a crash never leaves a half-written keyring.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(filepath.Clean(dir), keyringName)}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	key, err := normalizeKey(ctx, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ring, err := s.read()
	if err != nil {
		return err
	}
	ring.Keys[key] = value

	return s.write(ring)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	key, err := normalizeKey(ctx, key)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ring, err := s.read()
	if err != nil {
		return "", err
	}
	value, ok := ring.Keys[key]
	if !ok {
		return "", fmt.Errorf("keyring entry %q: %w", key, domain.ErrSecretNotFound)
	}

	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	key, err := normalizeKey(ctx, key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ring, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := ring.Keys[key]; !ok {
		return nil
	}
	delete(ring.Keys, key)

	return s.write(ring)
}

func (s *Store) read() (keyring, error) {
	ring := keyring{Keys: map[string]string{}}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return ring, nil
	}
	if err != nil {
		return ring, fmt.Errorf("read keyring: %w", err)
	}
	if err := toml.Unmarshal(data, &ring); err != nil {
		return ring, fmt.Errorf("decode keyring %s: %w", s.path, err)
	}
	if ring.Keys == nil {
		ring.Keys = map[string]string{}
	}

	return ring, nil
}

func (s *Store) write(ring keyring) (err error) {
	data, err := toml.Marshal(ring)
	if err != nil {
		return fmt.Errorf("encode keyring: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create keyring directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".keyring-*.toml")
	if err != nil {
		return fmt.Errorf("create keyring temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(keyringMode); err == nil {
		_, err = tmp.Write(data)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write keyring: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace keyring: %w", err)
	}

	return nil
}

func normalizeKey(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", errEmptyKey
	}

	return key, nil
}
