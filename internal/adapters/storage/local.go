package storage

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"github.com/zeebo/blake3"
)

const (
	localDirMode  = 0o700
	localFileMode = 0o600
)

type LocalConfig struct {
	Dir string
}

// LocalProvider content-addresses documents on disk by their BLAKE3 digest. It lets the
// agent run offline against a local protocol stub.
type LocalProvider struct {
	dir string
}

var _ ports.StorageProvider = (*LocalProvider)(nil)

func NewLocalProvider(cfg LocalConfig) (*LocalProvider, error) {
	if cfg.Dir == "" {
		return nil, errors.New("local storage directory is required")
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve local storage directory: %w", err)
	}

	return &LocalProvider{dir: filepath.Clean(dir)}, nil
}

func (p *LocalProvider) Name() string {
	return domain.StorageLocal
}

func (p *LocalProvider) UploadJSON(ctx context.Context, payload any) (domain.UploadResponse, error) {
	if err := ctx.Err(); err != nil {
		return domain.UploadResponse{}, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return domain.UploadResponse{}, fmt.Errorf("encode payload: %w", err)
	}

	sum := blake3.Sum256(data)
	cid := hex.EncodeToString(sum[:])
	path := filepath.Join(p.dir, cid+".json")

	if err := os.MkdirAll(p.dir, localDirMode); err != nil {
		return domain.UploadResponse{}, fmt.Errorf("create local storage directory: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, data, localFileMode); err != nil {
			return domain.UploadResponse{}, fmt.Errorf("write local resource: %w", err)
		}
	}

	return domain.UploadResponse{URL: "file://" + filepath.ToSlash(path), CID: cid}, nil
}
