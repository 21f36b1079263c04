package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrPostNotFound           = errors.New("post not found")
	ErrSecretNotFound         = errors.New("secret not found")
	ErrAuthentication         = errors.New("authentication failed")
	ErrAccountResolution      = errors.New("account resolution failed")
	ErrStorageUpload          = errors.New("storage upload failed")
	ErrProtocolWrite          = errors.New("protocol write failed")
	ErrSigningRejected        = errors.New("signing rejected")
	ErrTransactionWillFail    = errors.New("transaction will fail")
	ErrInvalidTransactionHash = errors.New("invalid transaction hash")
	ErrPostNotVisible         = errors.New("post not visible")
)

// PostNotVisibleError reports a write whose post never showed up in the indexer.
// The write itself succeeded, so fetching Hash again later is safe.
type PostNotVisibleError struct {
	Hash     TxHash
	Attempts int
	Last     error
}

func (e *PostNotVisibleError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("post for tx %s not visible after %d attempts: %v", e.Hash, e.Attempts, e.Last)
	}

	return fmt.Sprintf("post for tx %s not visible after %d attempts", e.Hash, e.Attempts)
}

func (e *PostNotVisibleError) Is(target error) bool {
	return target == ErrPostNotVisible
}

func (e *PostNotVisibleError) Unwrap() error {
	return e.Last
}
