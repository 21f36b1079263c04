package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/bnema/lens-agent/internal/adapters/cache"
	characterloader "github.com/bnema/lens-agent/internal/adapters/character"
	"github.com/bnema/lens-agent/internal/adapters/knowledge"
	"github.com/bnema/lens-agent/internal/adapters/lens"
	mongostore "github.com/bnema/lens-agent/internal/adapters/memory/mongo"
	"github.com/bnema/lens-agent/internal/adapters/metrics"
	tomlrepo "github.com/bnema/lens-agent/internal/adapters/repo/toml"
	"github.com/bnema/lens-agent/internal/adapters/runtime/gemini"
	chainstore "github.com/bnema/lens-agent/internal/adapters/secrets/chain"
	"github.com/bnema/lens-agent/internal/adapters/storage"
	"github.com/bnema/lens-agent/internal/adapters/wallet"
	"github.com/bnema/lens-agent/internal/application"
	"github.com/bnema/lens-agent/internal/config"
	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const metricsNamespace = "lensagent"

var errNoWalletKey = errors.New("wallet.private_key or wallet.private_key_ref is required")

// app holds the dependencies every command shares. Anything that needs the signing
// key or the network is built on demand.
type app struct {
	cfg        config.Config
	logger     *zap.Logger
	clock      ports.Clock
	metrics    *metrics.Collector
	cache      *cache.Store
	graph      *lens.Client
	secrets    ports.SecretStore
	httpClient *http.Client
	feed       *application.FeedReader
	signer     *signer
}

func wireApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	secrets, err := chainstore.NewPassFirstWithFileFallback(cfg.Secrets.Dir, logger.Named("secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	collector := metrics.NewCollector(metricsNamespace)
	httpClient := &http.Client{}
	a := &app{
		cfg:        cfg,
		logger:     logger,
		clock:      ports.SystemClock{},
		metrics:    collector,
		cache:      cache.NewStore(collector),
		secrets:    secrets,
		httpClient: httpClient,
		graph: lens.NewClient(lens.Config{
			Endpoint:       cfg.Lens.APIURL,
			Origin:         cfg.Lens.Origin,
			RequestTimeout: cfg.Lens.Timeout,
		}, httpClient, logger.Named("lens")),
	}
	a.signer = &signer{app: a}
	a.feed = application.NewFeedReader(a.signer, a.graph, a.cache, logger)

	return a, nil
}

func (a *app) Close() {
	a.signer.close()
	_ = a.logger.Sync()
}

func newLogger(cfg config.Log) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Format == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	return zapConfig.Build()
}

func (a *app) self() domain.EvmAddress {
	return domain.EvmAddress(a.cfg.Account.Address)
}

func (a *app) privateKey(ctx context.Context) (string, error) {
	if key := strings.TrimSpace(a.cfg.Wallet.PrivateKey); key != "" {
		return key, nil
	}

	ref := strings.TrimSpace(a.cfg.Wallet.PrivateKeyRef)
	if ref == "" {
		return "", errNoWalletKey
	}

	key, err := a.secrets.Get(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("load wallet key %s: %w", ref, err)
	}

	return strings.TrimSpace(key), nil
}

func (a *app) storageConfig() storage.Config {
	s := a.cfg.Storage
	return storage.Config{
		Provider: s.Provider,
		Timeout:  s.Timeout,
		Lens:     storage.LensConfig{URL: s.Lens.URL, ChainID: a.cfg.Wallet.ChainID},
		Pinata:   storage.PinataConfig{JWT: s.Pinata.JWT, URL: s.Pinata.URL, Gateway: s.Pinata.Gateway},
		Storj:    storage.StorjConfig{Username: s.Storj.Username, Password: s.Storj.Password, URL: s.Storj.URL, Gateway: s.Storj.Gateway},
		Local:    storage.LocalConfig{Dir: s.Local.Dir},
	}
}

func (a *app) publisher(ctx context.Context) (*application.Publisher, error) {
	sessions, w, err := a.signer.load(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := storage.NewRegistry(a.logger.Named("storage")).Resolve(a.storageConfig(), nil)
	if err != nil {
		return nil, fmt.Errorf("wire storage provider: %w", err)
	}

	return application.NewPublisher(
		sessions,
		a.graph,
		w,
		provider,
		a.cache,
		a.clock,
		a.metrics,
		application.PublishConfig{
			VisibilityAttempts: a.cfg.Publish.VisibilityAttempts,
			VisibilityDelay:    a.cfg.Publish.VisibilityDelay,
		},
		a.logger,
	), nil
}

// agent wires both loops. The returned func releases the memory store connection.
func (a *app) agent(ctx context.Context, dryRun bool) (*application.Agent, func(), error) {
	publisher, err := a.publisher(ctx)
	if err != nil {
		return nil, nil, err
	}

	character, err := characterloader.Load(a.cfg.Character.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load character: %w", err)
	}

	agentID, err := a.agentID(character)
	if err != nil {
		return nil, nil, err
	}

	prompts, err := application.NewPrompts(character, nil)
	if err != nil {
		return nil, nil, err
	}

	runtime, err := gemini.New(ctx, gemini.Config{
		APIKey:     a.cfg.Gemini.APIKey,
		Model:      a.cfg.Gemini.Model,
		HTTPClient: a.httpClient,
	}, character, a.logger.Named("gemini"))
	if err != nil {
		return nil, nil, fmt.Errorf("wire agent runtime: %w", err)
	}

	kb, err := a.knowledgeBase(ctx)
	if err != nil {
		return nil, nil, err
	}

	memories, rooms, release, err := a.memoryStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	thread := application.NewThreadBuilder(a.feed, memories, rooms, agentID, a.clock, a.logger)
	interactions := application.NewInteractionLoop(
		a.feed,
		thread,
		publisher,
		runtime,
		kb,
		memories,
		rooms,
		prompts,
		a.clock,
		application.InteractionConfig{
			AgentID:       agentID,
			Self:          a.self(),
			MentionsLimit: a.cfg.Mentions.Limit,
			TimelineLimit: a.cfg.Timeline.Limit,
			DryRun:        dryRun,
			StartedAt:     a.clock.Now(),
		},
		a.logger,
	)
	posting := application.NewPostingLoop(
		a.feed,
		publisher,
		runtime,
		kb,
		memories,
		rooms,
		prompts,
		a.clock,
		application.PostingConfig{
			AgentID:       agentID,
			Self:          a.self(),
			TimelineLimit: a.cfg.Timeline.Limit,
			DryRun:        dryRun,
			MinInterval:   a.cfg.Posting.MinInterval,
			MaxInterval:   a.cfg.Posting.MaxInterval,
		},
		a.logger,
	)

	agent := application.NewAgent(interactions, posting, application.AgentConfig{
		PollInterval:        a.cfg.Poll.Interval,
		InteractionsEnabled: a.cfg.Interactions.Enabled,
		PostingEnabled:      a.cfg.Posting.Enabled,
	}, a.clock, a.metrics, a.logger)

	a.logger.Info("agent wired",
		zap.Stringer("agent_id", agentID),
		zap.String("character", character.Name),
		zap.String("account", a.cfg.Account.Address),
		zap.Bool("dry_run", dryRun),
	)

	return agent, release, nil
}

func (a *app) agentID(character domain.Character) (domain.AgentID, error) {
	if a.cfg.Agent.ID == "" {
		return domain.NewAgentID(character.Name), nil
	}

	id, err := domain.ParseAgentID(a.cfg.Agent.ID)
	if err != nil {
		return domain.AgentID{}, fmt.Errorf("agent.id: %w", err)
	}

	return id, nil
}

// knowledgeBase returns a nil interface when no documents folder is configured.
func (a *app) knowledgeBase(ctx context.Context) (ports.KnowledgeBase, error) {
	if a.cfg.Knowledge.Dir == "" {
		return nil, nil
	}

	index := knowledge.NewIndex(a.logger.Named("knowledge"))
	if err := index.Load(ctx, a.cfg.Knowledge.Dir); err != nil {
		return nil, fmt.Errorf("load knowledge from %s: %w", a.cfg.Knowledge.Dir, err)
	}
	a.logger.Info("knowledge loaded", zap.String("dir", a.cfg.Knowledge.Dir), zap.Int("chunks", index.Len()))

	return index, nil
}

func (a *app) memoryStore(ctx context.Context) (ports.MemoryStore, ports.RoomRegistry, func(), error) {
	if a.cfg.Mongo.URI != "" {
		client, store, err := mongostore.Connect(ctx, a.cfg.Mongo.URI, a.cfg.Mongo.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		release := func() {
			if err := client.Disconnect(context.WithoutCancel(ctx)); err != nil {
				a.logger.Warn("disconnect mongo", zap.Error(err))
			}
		}
		return store, store, release, nil
	}

	repo, err := tomlrepo.NewRepository(a.cfg.Memory.Path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("wire memory repository: %w", err)
	}

	return repo, repo, func() {}, nil
}

// signer builds the wallet and the session manager on first use, so that read-only
// commands run without a private key.
type signer struct {
	app *app

	mu       sync.Mutex
	wallet   *wallet.Wallet
	sessions *application.SessionManager
}

func (s *signer) load(ctx context.Context) (*application.SessionManager, *wallet.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions != nil {
		return s.sessions, s.wallet, nil
	}

	cfg := s.app.cfg
	for key, value := range map[string]string{"account.address": cfg.Account.Address, "account.app": cfg.Account.App} {
		if err := domain.EvmAddress(value).Validate(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", key, err)
		}
	}

	key, err := s.app.privateKey(ctx)
	if err != nil {
		return nil, nil, err
	}

	w, err := wallet.New(wallet.Config{
		PrivateKey: key,
		RPCURL:     cfg.Wallet.RPCURL,
		ChainID:    cfg.Wallet.ChainID,
	}, s.app.logger.Named("wallet"))
	if err != nil {
		return nil, nil, err
	}

	s.wallet = w
	s.sessions = application.NewSessionManager(s.app.graph, w, s.app.cache, s.app.clock, application.SessionConfig{
		Account: domain.EvmAddress(cfg.Account.Address),
		App:     domain.EvmAddress(cfg.Account.App),
	}, s.app.logger)

	return s.sessions, s.wallet, nil
}

func (s *signer) EnsureAuthenticated(ctx context.Context) (domain.Session, error) {
	sessions, _, err := s.load(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}

	return sessions.EnsureAuthenticated(ctx)
}

func (s *signer) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wallet != nil {
		s.wallet.Close()
	}
}
