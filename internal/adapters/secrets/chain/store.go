// Package chain reads and writes wallet keys through an ordered list of secret stores.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/lens-agent/internal/adapters/secrets/file"
	passstore "github.com/bnema/lens-agent/internal/adapters/secrets/pass"
	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

var errNoBackends = errors.New("secret chain needs at least one backend")

type Backend struct {
	Name  string
	Store ports.SecretStore
}

// Store writes to the first backend that accepts a key and reads from the first one
// that has it. Context cancellation stops the walk.
type Store struct {
	backends []Backend
	logger   *zap.Logger
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(logger *zap.Logger, backends ...Backend) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend.Store == nil {
			return nil, fmt.Errorf("secret backend %d (%s) is nil", i, backend.Name)
		}
	}

	return &Store{backends: backends, logger: logger}, nil
}

// NewPassFirstWithFileFallback prefers the pass password manager and keeps a file
// keyring below dir for machines without it.
func NewPassFirstWithFileFallback(dir string, logger *zap.Logger) (*Store, error) {
	return NewStore(logger,
		Backend{Name: "pass", Store: passstore.NewStore()},
		Backend{Name: "file", Store: filestore.NewStore(dir)},
	)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for _, backend := range s.backends {
		err := backend.Store.Put(ctx, key, value)
		if err == nil {
			s.logger.Debug("secret stored", zap.String("key", key), zap.String("backend", backend.Name))
			return nil
		}
		if isContextError(err) {
			return err
		}

		s.logger.Debug("secret backend rejected put", zap.String("backend", backend.Name), zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", backend.Name, err))
	}

	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	missing := 0
	for _, backend := range s.backends {
		value, err := backend.Store.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextError(err) {
			return "", err
		}
		if errors.Is(err, domain.ErrSecretNotFound) {
			missing++
		}

		errs = append(errs, fmt.Errorf("%s: %w", backend.Name, err))
	}

	if missing == len(s.backends) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", fmt.Errorf("get secret %q: %w", key, errors.Join(errs...))
}

// Delete removes key from every backend, so a copy left in a fallback cannot be
// read back later. It fails only when no backend could be reached.
func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	for _, backend := range s.backends {
		err := backend.Store.Delete(ctx, key)
		if err == nil {
			continue
		}
		if isContextError(err) {
			return err
		}

		errs = append(errs, fmt.Errorf("%s: %w", backend.Name, err))
	}

	if len(errs) == len(s.backends) {
		return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
	}
	for _, err := range errs {
		s.logger.Debug("secret backend skipped delete", zap.String("key", key), zap.Error(err))
	}

	return nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
