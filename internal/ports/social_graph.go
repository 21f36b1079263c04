package ports

import (
	"context"

	"github.com/bnema/lens-agent/internal/domain"
)

// SignFunc signs a login challenge with the account owner's wallet.
type SignFunc func(ctx context.Context, message string) (string, error)

// SocialGraph is the remote account, post and feed API. Calls that take a *Session
// accept nil for unauthenticated reads.
type SocialGraph interface {
	Login(ctx context.Context, req domain.LoginRequest, sign SignFunc) (domain.Session, error)
	FetchAccount(ctx context.Context, session *domain.Session, query domain.AccountQuery) (domain.Account, error)
	SubmitPost(ctx context.Context, session domain.Session, req domain.CreatePostRequest) (domain.OperationResult, error)
	// FetchPost returns nil without error when the post does not exist.
	FetchPost(ctx context.Context, session *domain.Session, id domain.PostID) (*domain.Post, error)
	// FetchPostByHash returns nil without error while the indexer has not caught up.
	FetchPostByHash(ctx context.Context, session domain.Session, hash domain.TxHash) (*domain.Post, error)
	FetchNotifications(ctx context.Context, session domain.Session, filter domain.NotificationFilter, cursor domain.Cursor) (domain.Page[domain.Notification], error)
	FetchTimeline(ctx context.Context, session domain.Session, account domain.EvmAddress, cursor domain.Cursor) (domain.Page[domain.Post], error)
	FetchPosts(ctx context.Context, session *domain.Session, author domain.EvmAddress, cursor domain.Cursor) (domain.Page[domain.Post], error)
}
