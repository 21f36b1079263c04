package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultVisibilityAttempts = 5
	DefaultVisibilityDelay    = 5 * time.Second
)

type PublishConfig struct {
	VisibilityAttempts int
	VisibilityDelay    time.Duration
}

func (c PublishConfig) withDefaults() PublishConfig {
	if c.VisibilityAttempts <= 0 {
		c.VisibilityAttempts = DefaultVisibilityAttempts
	}
	if c.VisibilityDelay <= 0 {
		c.VisibilityDelay = DefaultVisibilityDelay
	}

	return c
}

type Publisher struct {
	sessions sessionSource
	graph    ports.SocialGraph
	wallet   ports.Wallet
	storage  ports.StorageProvider
	cache    ports.Cache
	clock    ports.Clock
	metrics  ports.Metrics
	logger   *zap.Logger
	cfg      PublishConfig
}

func NewPublisher(
	sessions sessionSource,
	graph ports.SocialGraph,
	wallet ports.Wallet,
	storage ports.StorageProvider,
	cache ports.Cache,
	clock ports.Clock,
	metrics ports.Metrics,
	cfg PublishConfig,
	logger *zap.Logger,
) *Publisher {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Publisher{
		sessions: sessions,
		graph:    graph,
		wallet:   wallet,
		storage:  storage,
		cache:    cache,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg.withDefaults(),
	}
}

func (p *Publisher) PublishText(ctx context.Context, text string, parent *domain.PostID) (domain.Post, error) {
	return p.Publish(ctx, domain.NewTextOnlyMetadata(text), nil, parent)
}

// Publish uploads body to storage (the configured provider when storage is nil),
// submits the post and waits until the indexer returns it. A PostNotVisibleError means
// the write went through but the post could not be read back in time.
func (p *Publisher) Publish(ctx context.Context, body any, storage ports.StorageProvider, parent *domain.PostID) (domain.Post, error) {
	started := p.clock.Now()
	path := "unresolved"

	post, err := p.publish(ctx, body, storage, parent, &path)
	p.metrics.ObservePublish(path, publishOutcome(err), p.clock.Now().Sub(started))
	if err != nil {
		return domain.Post{}, err
	}

	return post, nil
}

func (p *Publisher) publish(ctx context.Context, body any, storage ports.StorageProvider, parent *domain.PostID, path *string) (domain.Post, error) {
	if storage == nil {
		storage = p.storage
	}
	if storage == nil {
		return domain.Post{}, fmt.Errorf("%w: no storage provider configured", domain.ErrStorageUpload)
	}

	upload, err := storage.UploadJSON(ctx, body)
	if err != nil {
		return domain.Post{}, fmt.Errorf("%w: %s: %w", domain.ErrStorageUpload, storage.Name(), err)
	}
	if upload.URL == "" {
		return domain.Post{}, fmt.Errorf("%w: %s returned no content url", domain.ErrStorageUpload, storage.Name())
	}
	p.logger.Debug("metadata uploaded", zap.String("provider", storage.Name()), zap.String("url", upload.URL))

	session, err := p.sessions.EnsureAuthenticated(ctx)
	if err != nil {
		return domain.Post{}, err
	}

	result, err := p.graph.SubmitPost(ctx, session, domain.CreatePostRequest{ContentURI: upload.URL, CommentOn: parent})
	if err != nil {
		return domain.Post{}, fmt.Errorf("%w: submit post: %w", domain.ErrProtocolWrite, err)
	}
	*path = domain.OperationResultName(result)

	resolver := &hashResolver{ctx: ctx, wallet: p.wallet}
	if err := result.Accept(resolver); err != nil {
		return domain.Post{}, err
	}
	if err := resolver.hash.Validate(); err != nil {
		return domain.Post{}, err
	}
	p.logger.Info("post submitted", zap.String("path", *path), zap.String("tx_hash", string(resolver.hash)))

	post, err := p.waitVisible(ctx, session, resolver.hash)
	if err != nil {
		return domain.Post{}, err
	}
	p.cache.Set(postCacheKey(post.ID), post)

	return post, nil
}

func (p *Publisher) waitVisible(ctx context.Context, session domain.Session, hash domain.TxHash) (domain.Post, error) {
	var last error
	for attempt := 1; attempt <= p.cfg.VisibilityAttempts; attempt++ {
		post, err := p.graph.FetchPostByHash(ctx, session, hash)
		switch {
		case err != nil:
			last = err
			p.logger.Warn("visibility check failed", zap.String("tx_hash", string(hash)), zap.Int("attempt", attempt), zap.Error(err))
		case post == nil:
			p.logger.Debug("post not indexed yet", zap.String("tx_hash", string(hash)), zap.Int("attempt", attempt))
		default:
			p.metrics.ObserveVisibilityAttempts(attempt)
			return *post, nil
		}

		if attempt == p.cfg.VisibilityAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return domain.Post{}, fmt.Errorf("wait for post %s: %w", hash, ctx.Err())
		case <-p.clock.After(p.cfg.VisibilityDelay):
		}
	}

	p.metrics.ObserveVisibilityAttempts(p.cfg.VisibilityAttempts)
	p.logger.Warn("post not visible", zap.String("tx_hash", string(hash)), zap.Int("attempts", p.cfg.VisibilityAttempts))

	return domain.Post{}, &domain.PostNotVisibleError{Hash: hash, Attempts: p.cfg.VisibilityAttempts, Last: last}
}

type hashResolver struct {
	ctx    context.Context
	wallet ports.Wallet
	hash   domain.TxHash
}

var _ domain.OperationResultVisitor = (*hashResolver)(nil)

func (r *hashResolver) VisitBroadcasted(result domain.Broadcasted) error {
	r.hash = result.Hash
	return nil
}

func (r *hashResolver) VisitSponsored(result domain.SponsoredTransactionRequest) error {
	return r.submit(result.Tx, domain.SubmissionSponsored)
}

func (r *hashResolver) VisitSelfFunded(result domain.SelfFundedTransactionRequest) error {
	return r.submit(result.Tx, domain.SubmissionSelfFunded)
}

func (r *hashResolver) VisitWillFail(result domain.TransactionWillFail) error {
	return fmt.Errorf("%w: %s", domain.ErrTransactionWillFail, result.Reason)
}

func (r *hashResolver) submit(tx domain.RawTransaction, kind domain.SubmissionKind) error {
	hash, err := r.wallet.SubmitTransaction(r.ctx, tx, kind)
	if err != nil {
		if errors.Is(err, domain.ErrSigningRejected) {
			return fmt.Errorf("submit %s transaction: %w", kind, err)
		}
		return fmt.Errorf("%w: submit %s transaction: %w", domain.ErrProtocolWrite, kind, err)
	}

	r.hash = hash
	return nil
}

func publishOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrStorageUpload):
		return "storage_upload"
	case errors.Is(err, domain.ErrAuthentication), errors.Is(err, domain.ErrAccountResolution):
		return "authentication"
	case errors.Is(err, domain.ErrSigningRejected):
		return "signing_rejected"
	case errors.Is(err, domain.ErrTransactionWillFail):
		return "will_fail"
	case errors.Is(err, domain.ErrInvalidTransactionHash):
		return "invalid_hash"
	case errors.Is(err, domain.ErrPostNotVisible):
		return "not_visible"
	case errors.Is(err, domain.ErrProtocolWrite):
		return "protocol_write"
	default:
		return "error"
	}
}
