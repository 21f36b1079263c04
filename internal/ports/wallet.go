package ports

import (
	"context"

	"github.com/bnema/lens-agent/internal/domain"
)

type Wallet interface {
	Address() domain.EvmAddress
	SignMessage(ctx context.Context, message string) (string, error)
	// SubmitTransaction signs tx and sends it through the network path matching kind.
	// Signing failures wrap domain.ErrSigningRejected.
	SubmitTransaction(ctx context.Context, tx domain.RawTransaction, kind domain.SubmissionKind) (domain.TxHash, error)
}
