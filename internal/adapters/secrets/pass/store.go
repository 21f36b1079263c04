// Package pass stores wallet keys in the standard unix password manager (passwordstore.org).
package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
)

// DefaultPrefix namespaces every entry inside the password store.
const DefaultPrefix = "lensagent/"

const missingEntryMarker = "is not in the password store"

var (
	ErrUnavailable = errors.New("pass command unavailable")
	errInvalidKey  = errors.New("invalid secret key")
)

// invocation is one run of the pass binary. stdin is empty for read commands.
type invocation struct {
	args  []string
	stdin string
}

type runner func(ctx context.Context, call invocation) (stdout string, stderr string, err error)

type Option func(*Store)

// WithPrefix changes the folder entries live under. An empty prefix stores keys at the top level.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		prefix = strings.Trim(prefix, "/")
		if prefix != "" {
			prefix += "/"
		}
		s.prefix = prefix
	}
}

// WithStoreDir points pass at a password store other than ~/.password-store.
func WithStoreDir(dir string) Option {
	return func(s *Store) {
		s.storeDir = dir
	}
}

type Store struct {
	prefix   string
	storeDir string
	run      runner
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(opts ...Option) *Store {
	s := &Store{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(s)
	}
	s.run = s.execPass

	return s
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	entry, err := s.entry(ctx, key)
	if err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, invocation{
		args:  []string{"insert", "--multiline", "--force", entry},
		stdin: value + "\n",
	})
	if err != nil {
		return commandError("insert", entry, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	entry, err := s.entry(ctx, key)
	if err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, invocation{args: []string{"show", entry}})
	if err != nil {
		if strings.Contains(stderr, missingEntryMarker) {
			return "", fmt.Errorf("pass entry %q: %w", entry, domain.ErrSecretNotFound)
		}
		return "", commandError("show", entry, err, stderr)
	}

	// pass convention: the secret is the first line, metadata follows
	secret, _, _ := strings.Cut(stdout, "\n")

	return strings.TrimRight(secret, "\r"), nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	entry, err := s.entry(ctx, key)
	if err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, invocation{args: []string{"rm", "--force", entry}})
	if err != nil && !strings.Contains(stderr, missingEntryMarker) {
		return commandError("rm", entry, err, stderr)
	}

	return nil
}

func (s *Store) entry(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key = strings.Trim(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("%w: empty", errInvalidKey)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return "", fmt.Errorf("%w: %q", errInvalidKey, key)
		}
	}
	if s.prefix != "" && strings.HasPrefix(key, s.prefix) {
		return key, nil
	}

	return s.prefix + key, nil
}

func (s *Store) execPass(ctx context.Context, call invocation) (string, string, error) {
	path, err := exec.LookPath("pass")
	if errors.Is(err, exec.ErrNotFound) {
		return "", "", ErrUnavailable
	}
	if err != nil {
		return "", "", fmt.Errorf("locate pass: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, call.args...)
	if s.storeDir != "" {
		cmd.Env = append(os.Environ(), "PASSWORD_STORE_DIR="+s.storeDir)
	}
	if call.stdin != "" {
		cmd.Stdin = strings.NewReader(call.stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err = cmd.Run()

	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func commandError(op, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %s: %w", op, entry, err)
	}

	return fmt.Errorf("pass %s %s: %w (%s)", op, entry, err, stderr)
}
