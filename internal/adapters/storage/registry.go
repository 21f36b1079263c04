package storage

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

// DefaultProvider is used when the configured provider name is unknown.
const DefaultProvider = domain.StorageLens

const maxResponseBytes = 1 << 20

type Config struct {
	Provider string
	Timeout  time.Duration
	Lens     LensConfig
	Pinata   PinataConfig
	Storj    StorjConfig
	Local    LocalConfig
}

type Factory func(cfg Config, client *http.Client) (ports.StorageProvider, error)

// Registry maps provider names to constructors. It is resolved once at startup and
// the resulting provider is kept for the process lifetime.
type Registry struct {
	factories map[string]Factory
	logger    *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Registry{factories: map[string]Factory{}, logger: logger}
	r.Register(domain.StorageLens, func(cfg Config, client *http.Client) (ports.StorageProvider, error) {
		return NewLensProvider(cfg.Lens, client), nil
	})
	r.Register(domain.StoragePinata, func(cfg Config, client *http.Client) (ports.StorageProvider, error) {
		return NewPinataProvider(cfg.Pinata, client)
	})
	r.Register(domain.StorageStorj, func(cfg Config, client *http.Client) (ports.StorageProvider, error) {
		return NewStorjProvider(cfg.Storj, client)
	})
	r.Register(domain.StorageLocal, func(cfg Config, _ *http.Client) (ports.StorageProvider, error) {
		return NewLocalProvider(cfg.Local)
	})

	return r
}

func (r *Registry) Register(name string, factory Factory) {
	r.factories[normalizeName(name)] = factory
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (r *Registry) Resolve(cfg Config, client *http.Client) (ports.StorageProvider, error) {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	name := normalizeName(cfg.Provider)
	factory, ok := r.factories[name]
	if !ok {
		r.logger.Warn("unknown storage provider, using default",
			zap.String("requested", cfg.Provider),
			zap.String("provider", DefaultProvider),
			zap.Strings("available", r.Names()),
		)
		name = DefaultProvider
		factory = r.factories[DefaultProvider]
	}

	provider, err := factory(cfg, client)
	if err != nil {
		return nil, fmt.Errorf("configure storage provider %s: %w", name, err)
	}

	return provider, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
