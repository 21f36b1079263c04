package domain

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

type TxHash string

// Validate checks the hash is non-empty, 0x-prefixed and hex encoded.
func (h TxHash) Validate() error {
	raw := string(h)
	if raw == "" {
		return fmt.Errorf("%w: empty hash", ErrInvalidTransactionHash)
	}
	if !strings.HasPrefix(raw, "0x") {
		return fmt.Errorf("%w: %q lacks 0x prefix", ErrInvalidTransactionHash, raw)
	}
	body := raw[2:]
	if body == "" {
		return fmt.Errorf("%w: %q has no digits", ErrInvalidTransactionHash, raw)
	}
	if len(body)%2 == 1 {
		body = "0" + body
	}
	if _, err := hex.DecodeString(body); err != nil {
		return fmt.Errorf("%w: %q is not hex", ErrInvalidTransactionHash, raw)
	}

	return nil
}

type SubmissionKind string

const (
	SubmissionSponsored  SubmissionKind = "sponsored"
	SubmissionSelfFunded SubmissionKind = "self-funded"
)

type PaymasterParams struct {
	Paymaster EvmAddress
	Input     []byte
}

// RawTransaction carries the unsigned fields the protocol asks the wallet to sign.
// Sponsored requests are zkSync EIP-712 transactions; self-funded ones are EIP-1559.
type RawTransaction struct {
	Type                 int64
	From                 EvmAddress
	To                   EvmAddress
	Nonce                uint64
	GasLimit             uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	Value                *big.Int
	Data                 []byte
	ChainID              *big.Int
	GasPerPubdata        *big.Int
	FactoryDeps          [][]byte
	CustomSignature      []byte
	Paymaster            *PaymasterParams
}

// OperationResult is the closed set of outcomes of a protocol write. Adding a variant
// means adding a method to OperationResultVisitor, so every resolver has to handle it.
type OperationResult interface {
	Accept(v OperationResultVisitor) error
	isOperationResult()
}

type OperationResultVisitor interface {
	VisitBroadcasted(Broadcasted) error
	VisitSponsored(SponsoredTransactionRequest) error
	VisitSelfFunded(SelfFundedTransactionRequest) error
	VisitWillFail(TransactionWillFail) error
}

type Broadcasted struct {
	Hash TxHash
}

type SponsoredTransactionRequest struct {
	Reason string
	Tx     RawTransaction
}

type SelfFundedTransactionRequest struct {
	Reason string
	Tx     RawTransaction
}

type TransactionWillFail struct {
	Reason string
}

func (r Broadcasted) Accept(v OperationResultVisitor) error { return v.VisitBroadcasted(r) }
func (r SponsoredTransactionRequest) Accept(v OperationResultVisitor) error {
	return v.VisitSponsored(r)
}
func (r SelfFundedTransactionRequest) Accept(v OperationResultVisitor) error {
	return v.VisitSelfFunded(r)
}
func (r TransactionWillFail) Accept(v OperationResultVisitor) error { return v.VisitWillFail(r) }

func (Broadcasted) isOperationResult()                  {}
func (SponsoredTransactionRequest) isOperationResult()  {}
func (SelfFundedTransactionRequest) isOperationResult() {}
func (TransactionWillFail) isOperationResult()          {}

// OperationResultName is used for logs and metric labels.
func OperationResultName(result OperationResult) string {
	switch result.(type) {
	case Broadcasted:
		return "broadcasted"
	case SponsoredTransactionRequest:
		return "sponsored"
	case SelfFundedTransactionRequest:
		return "self_funded"
	case TransactionWillFail:
		return "will_fail"
	default:
		return "unknown"
	}
}

type CreatePostRequest struct {
	ContentURI string
	CommentOn  *PostID
}
