package lens

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

var _ ports.SocialGraph = (*Client)(nil)

func (c *Client) Login(ctx context.Context, req domain.LoginRequest, sign ports.SignFunc) (domain.Session, error) {
	var challenge struct {
		Challenge struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"challenge"`
	}
	err := c.execute(ctx, nil, "challenge", challengeMutation, map[string]any{
		"request": map[string]any{
			"accountOwner": map[string]any{
				"account": req.Account,
				"app":     req.App,
				"owner":   req.Owner,
			},
		},
	}, &challenge)
	if err != nil {
		return domain.Session{}, err
	}
	if challenge.Challenge.ID == "" || challenge.Challenge.Text == "" {
		return domain.Session{}, errors.New("challenge: response missing id or text")
	}

	signature, err := sign(ctx, challenge.Challenge.Text)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign challenge: %w", err)
	}

	var auth struct {
		Authenticate struct {
			Typename     string `json:"__typename"`
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
			IDToken      string `json:"idToken"`
			Reason       string `json:"reason"`
		} `json:"authenticate"`
	}
	err = c.execute(ctx, nil, "authenticate", authenticateMutation, map[string]any{
		"request": map[string]any{"id": challenge.Challenge.ID, "signature": signature},
	}, &auth)
	if err != nil {
		return domain.Session{}, err
	}

	result := auth.Authenticate
	if result.Typename != "AuthenticationTokens" {
		return domain.Session{}, fmt.Errorf("authenticate: %s: %s", result.Typename, result.Reason)
	}
	if result.AccessToken == "" {
		return domain.Session{}, errors.New("authenticate: response missing access token")
	}

	c.logger.Info("lens session established", zap.String("account", req.Account.String()))

	return domain.Session{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		IDToken:      result.IDToken,
	}, nil
}

func (c *Client) FetchAccount(ctx context.Context, session *domain.Session, query domain.AccountQuery) (domain.Account, error) {
	request := map[string]any{}
	switch {
	case query.Address != "":
		request["address"] = query.Address
	case query.Handle != "":
		request["username"] = map[string]any{"localName": query.Handle}
	default:
		return domain.Account{}, errors.New("account query needs an address or a handle")
	}

	var resp struct {
		Account *accountNode `json:"account"`
	}
	if err := c.execute(ctx, session, "account", accountQuery, map[string]any{"request": request}, &resp); err != nil {
		return domain.Account{}, err
	}
	if resp.Account == nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", query, domain.ErrAccountNotFound)
	}

	return resp.Account.toDomain(), nil
}

func (c *Client) SubmitPost(ctx context.Context, session domain.Session, req domain.CreatePostRequest) (domain.OperationResult, error) {
	request := map[string]any{"contentUri": req.ContentURI}
	if req.CommentOn != nil {
		request["commentOn"] = map[string]any{"post": *req.CommentOn}
	}

	var resp struct {
		Post postResultNode `json:"post"`
	}
	if err := c.execute(ctx, &session, "post", postMutation, map[string]any{"request": request}, &resp); err != nil {
		return nil, err
	}

	return resp.Post.toDomain()
}

func (c *Client) FetchPost(ctx context.Context, session *domain.Session, id domain.PostID) (*domain.Post, error) {
	return c.fetchPost(ctx, session, map[string]any{"post": id})
}

func (c *Client) FetchPostByHash(ctx context.Context, session domain.Session, hash domain.TxHash) (*domain.Post, error) {
	return c.fetchPost(ctx, &session, map[string]any{"txHash": hash})
}

func (c *Client) fetchPost(ctx context.Context, session *domain.Session, request map[string]any) (*domain.Post, error) {
	var resp struct {
		Post *postNode `json:"post"`
	}
	if err := c.execute(ctx, session, "post", postQuery, map[string]any{"request": request}, &resp); err != nil {
		return nil, err
	}
	if resp.Post == nil || !resp.Post.isPost() {
		return nil, nil
	}

	post := resp.Post.toDomain()
	return &post, nil
}

func (c *Client) FetchNotifications(ctx context.Context, session domain.Session, filter domain.NotificationFilter, cursor domain.Cursor) (domain.Page[domain.Notification], error) {
	kinds := make([]string, 0, len(filter.Kinds))
	for _, kind := range filter.Kinds {
		kinds = append(kinds, string(kind))
	}

	request := map[string]any{
		"filter": map[string]any{
			"notificationTypes":    kinds,
			"includeLowScore":      filter.IncludeLowScore,
			"timeBasedAggregation": filter.TimeBasedAggregation,
		},
	}
	if cursor != "" {
		request["cursor"] = cursor
	}

	var resp struct {
		Notifications struct {
			Items    []notificationNode `json:"items"`
			PageInfo pageInfo           `json:"pageInfo"`
		} `json:"notifications"`
	}
	if err := c.execute(ctx, &session, "notifications", notificationsQuery, map[string]any{"request": request}, &resp); err != nil {
		return domain.Page[domain.Notification]{}, err
	}

	page := domain.Page[domain.Notification]{Next: resp.Notifications.PageInfo.cursor()}
	for _, item := range resp.Notifications.Items {
		notification, ok := item.toDomain()
		if !ok {
			continue
		}
		page.Items = append(page.Items, notification)
	}

	return page, nil
}

func (c *Client) FetchTimeline(ctx context.Context, session domain.Session, account domain.EvmAddress, cursor domain.Cursor) (domain.Page[domain.Post], error) {
	request := map[string]any{"account": account}
	if cursor != "" {
		request["cursor"] = cursor
	}

	var resp struct {
		Timeline struct {
			Items []struct {
				ID      string    `json:"id"`
				Primary *postNode `json:"primary"`
			} `json:"items"`
			PageInfo pageInfo `json:"pageInfo"`
		} `json:"timeline"`
	}
	if err := c.execute(ctx, &session, "timeline", timelineQuery, map[string]any{"request": request}, &resp); err != nil {
		return domain.Page[domain.Post]{}, err
	}

	nodes := make([]postNode, 0, len(resp.Timeline.Items))
	for _, item := range resp.Timeline.Items {
		if item.Primary == nil {
			continue
		}
		nodes = append(nodes, *item.Primary)
	}

	return decodePostPage(nodes, resp.Timeline.PageInfo), nil
}

func (c *Client) FetchPosts(ctx context.Context, session *domain.Session, author domain.EvmAddress, cursor domain.Cursor) (domain.Page[domain.Post], error) {
	request := map[string]any{
		"pageSize": "FIFTY",
		"filter":   map[string]any{"authors": []domain.EvmAddress{author}},
	}
	if cursor != "" {
		request["cursor"] = cursor
	}

	var resp struct {
		Posts struct {
			Items    []postNode `json:"items"`
			PageInfo pageInfo   `json:"pageInfo"`
		} `json:"posts"`
	}
	if err := c.execute(ctx, session, "posts", postsQuery, map[string]any{"request": request}, &resp); err != nil {
		return domain.Page[domain.Post]{}, err
	}

	return decodePostPage(resp.Posts.Items, resp.Posts.PageInfo), nil
}
