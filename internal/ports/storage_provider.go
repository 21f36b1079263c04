package ports

import (
	"context"

	"github.com/bnema/lens-agent/internal/domain"
)

type StorageProvider interface {
	Name() string
	UploadJSON(ctx context.Context, payload any) (domain.UploadResponse, error)
}
