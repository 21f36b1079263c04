package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

type PageFetcher func(ctx context.Context, cursor domain.Cursor) (domain.Page[domain.Post], error)

type FeedReader struct {
	sessions sessionSource
	graph    ports.SocialGraph
	cache    ports.Cache
	logger   *zap.Logger
}

func NewFeedReader(sessions sessionSource, graph ports.SocialGraph, cache ports.Cache, logger *zap.Logger) *FeedReader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FeedReader{sessions: sessions, graph: graph, cache: cache, logger: logger}
}

// Collect pages through fetch until limit posts passed keep or the feed is exhausted.
// A limit of zero or less collects everything. Every observed post is cached, including
// those past the limit. A failing page ends the walk and the posts gathered so far are
// returned.
func (r *FeedReader) Collect(ctx context.Context, fetch PageFetcher, limit int, keep func(domain.Post) bool) []domain.Post {
	var (
		out    []domain.Post
		cursor domain.Cursor
	)

	for {
		page, err := fetch(ctx, cursor)
		if err != nil {
			r.logger.Warn("feed page failed", zap.String("cursor", string(cursor)), zap.Int("collected", len(out)), zap.Error(err))
			return out
		}

		for _, post := range page.Items {
			r.cache.Set(postCacheKey(post.ID), post)
			if keep != nil && !keep(post) {
				continue
			}
			if limit > 0 && len(out) >= limit {
				continue
			}
			out = append(out, post)
		}

		if limit > 0 && len(out) >= limit {
			return out
		}
		if !page.HasNext() || page.Next == cursor {
			return out
		}
		cursor = page.Next
	}
}

func (r *FeedReader) Mentions(ctx context.Context, limit int) ([]domain.Post, error) {
	session, err := r.sessions.EnsureAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.MentionFilter()
	fetch := func(ctx context.Context, cursor domain.Cursor) (domain.Page[domain.Post], error) {
		page, err := r.graph.FetchNotifications(ctx, session, filter, cursor)
		if err != nil {
			return domain.Page[domain.Post]{}, fmt.Errorf("fetch notifications: %w", err)
		}

		posts := make([]domain.Post, 0, len(page.Items))
		for _, notification := range page.Items {
			posts = append(posts, notification.Post)
		}
		return domain.Page[domain.Post]{Items: posts, Next: page.Next}, nil
	}

	return r.Collect(ctx, fetch, limit, hasText), nil
}

func (r *FeedReader) Timeline(ctx context.Context, account domain.EvmAddress, limit int) ([]domain.Post, error) {
	session, err := r.sessions.EnsureAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, cursor domain.Cursor) (domain.Page[domain.Post], error) {
		page, err := r.graph.FetchTimeline(ctx, session, account, cursor)
		if err != nil {
			return domain.Page[domain.Post]{}, fmt.Errorf("fetch timeline of %s: %w", account, err)
		}
		return page, nil
	}

	return r.Collect(ctx, fetch, limit, hasText), nil
}

// PostsFor lists posts authored by author. It reads without a session.
func (r *FeedReader) PostsFor(ctx context.Context, author domain.EvmAddress, limit int) []domain.Post {
	fetch := func(ctx context.Context, cursor domain.Cursor) (domain.Page[domain.Post], error) {
		page, err := r.graph.FetchPosts(ctx, nil, author, cursor)
		if err != nil {
			return domain.Page[domain.Post]{}, fmt.Errorf("fetch posts of %s: %w", author, err)
		}
		return page, nil
	}

	return r.Collect(ctx, fetch, limit, hasText)
}

// GetPost returns nil without error when the post does not exist.
func (r *FeedReader) GetPost(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	if cached, ok := r.cache.Get(postCacheKey(id)); ok {
		if post, ok := cached.(domain.Post); ok {
			return &post, nil
		}
	}

	session, err := r.sessions.EnsureAuthenticated(ctx)
	if err != nil {
		return nil, err
	}

	post, err := r.graph.FetchPost(ctx, &session, id)
	if err != nil {
		return nil, fmt.Errorf("fetch post %s: %w", id, err)
	}
	if post == nil {
		return nil, nil
	}
	r.cache.Set(postCacheKey(post.ID), *post)

	return post, nil
}

func (r *FeedReader) GetAccount(ctx context.Context, address domain.EvmAddress) (domain.Account, error) {
	if account, ok := r.cachedAccount(accountCacheKey(address)); ok {
		return account, nil
	}

	return r.fetchAccount(ctx, domain.AccountQuery{Address: address})
}

func (r *FeedReader) GetAccountByHandle(ctx context.Context, handle string) (domain.Account, error) {
	handle = strings.TrimPrefix(handle, "@")
	if account, ok := r.cachedAccount(handleCacheKey(handle)); ok {
		return account, nil
	}

	return r.fetchAccount(ctx, domain.AccountQuery{Handle: handle})
}

func (r *FeedReader) fetchAccount(ctx context.Context, query domain.AccountQuery) (domain.Account, error) {
	account, err := r.graph.FetchAccount(ctx, nil, query)
	if err != nil {
		return domain.Account{}, fmt.Errorf("fetch account %s: %w", query, err)
	}

	r.cache.Set(accountCacheKey(account.Address), account)
	if handle := account.Handle(); handle != "" {
		r.cache.Set(handleCacheKey(handle), account)
	}

	return account, nil
}

func (r *FeedReader) cachedAccount(key string) (domain.Account, bool) {
	cached, ok := r.cache.Get(key)
	if !ok {
		return domain.Account{}, false
	}
	account, ok := cached.(domain.Account)

	return account, ok
}

func hasText(post domain.Post) bool {
	_, ok := post.Text()
	return ok
}
