package lens

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	maxGraphQLResponseBytes = 4 << 20
	defaultRequestTimeout   = 30 * time.Second
)

type Config struct {
	Endpoint       string
	Origin         string
	RequestTimeout time.Duration
	// BreakerTimeout is how long the circuit stays open before probing again.
	BreakerTimeout time.Duration
}

// Client speaks the Lens GraphQL API. Transport failures and 5xx responses count
// against a circuit breaker; GraphQL-level errors do not.
type Client struct {
	cfg        Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// ResponseError carries the GraphQL errors array of a failed call.
type ResponseError struct {
	Operation string
	Errors    []GraphQLError
}

func (e *ResponseError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, item := range e.Errors {
		messages = append(messages, item.Message)
	}

	return fmt.Sprintf("%s: %s", e.Operation, strings.Join(messages, "; "))
}

// transportError marks failures the breaker should count.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func NewClient(cfg Config, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = time.Minute
	}

	c := &Client{cfg: cfg, httpClient: httpClient, logger: logger}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "lens-api",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			var transport *transportError
			return !errors.As(err, &transport)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return c
}

func (c *Client) execute(ctx context.Context, session *domain.Session, operation string, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("%s: encode request: %w", operation, err)
	}

	var envelope graphQLResponse
	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, session, operation, body, &envelope)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%s: lens api unavailable: %w", operation, err)
		}
		return err
	}

	if len(envelope.Errors) > 0 {
		return &ResponseError{Operation: operation, Errors: envelope.Errors}
	}
	if out == nil {
		return nil
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("%s: empty response data", operation)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", operation, err)
	}

	return nil
}

func (c *Client) roundTrip(ctx context.Context, session *domain.Session, operation string, body []byte, envelope *graphQLResponse) error {
	requestCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: create request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.cfg.Origin != "" {
		req.Header.Set("Origin", c.cfg.Origin)
	}
	if session != nil && session.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{err: fmt.Errorf("%s: %w", operation, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("lens api call",
		zap.String("operation", operation),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxGraphQLResponseBytes))
	if err != nil {
		return &transportError{err: fmt.Errorf("%s: read response: %w", operation, err)}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return &transportError{err: fmt.Errorf("%s: lens api responded %d", operation, resp.StatusCode)}
	}
	if err := json.Unmarshal(data, envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s: lens api responded %d: %s", operation, resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}

	return nil
}
