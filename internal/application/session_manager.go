package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type sessionSource interface {
	EnsureAuthenticated(ctx context.Context) (domain.Session, error)
}

type SessionConfig struct {
	Account domain.EvmAddress
	App     domain.EvmAddress
}

type SessionManager struct {
	graph  ports.SocialGraph
	wallet ports.Wallet
	cache  ports.Cache
	clock  ports.Clock
	logger *zap.Logger
	cfg    SessionConfig

	group singleflight.Group

	mu      sync.RWMutex
	session *domain.Session
}

func NewSessionManager(graph ports.SocialGraph, wallet ports.Wallet, cache ports.Cache, clock ports.Clock, cfg SessionConfig, logger *zap.Logger) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionManager{
		graph:  graph,
		wallet: wallet,
		cache:  cache,
		clock:  clock,
		logger: logger,
		cfg:    cfg,
	}
}

// EnsureAuthenticated returns the live session, logging in first when there is none.
// Concurrent callers share one login, which outlives the cancellation of whichever
// caller started it. Each caller still stops waiting when its own ctx is done.
func (m *SessionManager) EnsureAuthenticated(ctx context.Context) (domain.Session, error) {
	if session, ok := m.Session(); ok {
		return session, nil
	}

	loginCtx := context.WithoutCancel(ctx)
	result := m.group.DoChan("authenticate", func() (any, error) {
		if session, ok := m.Session(); ok {
			return session, nil
		}
		if err := m.Authenticate(loginCtx); err != nil {
			return domain.Session{}, err
		}
		session, _ := m.Session()
		return session, nil
	})

	select {
	case <-ctx.Done():
		return domain.Session{}, ctx.Err()
	case res := <-result:
		if res.Shared {
			m.logger.Debug("joined in-flight authentication")
		}
		if res.Err != nil {
			return domain.Session{}, res.Err
		}
		return res.Val.(domain.Session), nil
	}
}

// Authenticate logs in as the account owner and resolves the account profile. On any
// failure the manager is left without a session.
func (m *SessionManager) Authenticate(ctx context.Context) error {
	m.Invalidate()

	req := domain.LoginRequest{
		Account: m.cfg.Account,
		App:     m.cfg.App,
		Owner:   m.wallet.Address(),
	}
	session, err := m.graph.Login(ctx, req, m.wallet.SignMessage)
	if err != nil {
		return fmt.Errorf("%w: login %s as owner %s: %w", domain.ErrAuthentication, req.Account, req.Owner, err)
	}

	account, err := m.graph.FetchAccount(ctx, &session, domain.AccountQuery{Address: m.cfg.Account})
	if err != nil {
		return fmt.Errorf("%w: fetch account %s: %w", domain.ErrAccountResolution, m.cfg.Account, err)
	}

	session.Account = account
	session.AuthenticatedAt = m.clock.Now()

	m.mu.Lock()
	m.session = &session
	m.mu.Unlock()

	m.cache.Set(accountCacheKey(account.Address), account)
	m.logger.Info("authenticated",
		zap.String("account", string(account.Address)),
		zap.String("handle", account.Handle()),
	)

	return nil
}

func (m *SessionManager) Session() (domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil || !m.session.Valid() {
		return domain.Session{}, false
	}

	return *m.session, true
}

func (m *SessionManager) Account() (domain.Account, bool) {
	session, ok := m.Session()
	if !ok {
		return domain.Account{}, false
	}

	return session.Account, true
}

// Invalidate drops the session; the next EnsureAuthenticated logs in again.
func (m *SessionManager) Invalidate() {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
}

func accountCacheKey(address domain.EvmAddress) string {
	return domain.CacheKey(domain.CacheKindAccount, strings.ToLower(string(address)))
}

func handleCacheKey(handle string) string {
	return domain.CacheKey(domain.CacheKindHandle, strings.ToLower(strings.TrimPrefix(handle, "@")))
}

func postCacheKey(id domain.PostID) string {
	return domain.CacheKey(domain.CacheKindPost, string(id))
}
