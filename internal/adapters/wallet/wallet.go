package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

const DefaultChainID = 37111

var _ ports.Wallet = (*Wallet)(nil)

type Config struct {
	PrivateKey string
	RPCURL     string
	ChainID    int64
}

// Wallet holds the account owner key. The RPC connection is dialed on first submission
// so that read-only commands never touch the chain.
type Wallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
	rpcURL  string
	logger  *zap.Logger

	mu     sync.Mutex
	client *ethclient.Client
}

func New(cfg Config, logger *zap.Logger) (*Wallet, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("load private key: %w", err)
	}

	chainID := cfg.ChainID
	if chainID <= 0 {
		chainID = DefaultChainID
	}

	return &Wallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: big.NewInt(chainID),
		rpcURL:  cfg.RPCURL,
		logger:  logger,
	}, nil
}

func (w *Wallet) Address() domain.EvmAddress {
	return domain.EvmAddress(w.address.Hex())
}

// SignMessage produces an EIP-191 personal signature with V in {27, 28}.
func (w *Wallet) SignMessage(_ context.Context, message string) (string, error) {
	sig, err := w.sign(accounts.TextHash([]byte(message)))
	if err != nil {
		return "", err
	}

	return hexutil.Encode(sig), nil
}

func (w *Wallet) SubmitTransaction(ctx context.Context, tx domain.RawTransaction, kind domain.SubmissionKind) (domain.TxHash, error) {
	switch kind {
	case domain.SubmissionSelfFunded:
		return w.submitSelfFunded(ctx, tx)
	case domain.SubmissionSponsored:
		return w.submitSponsored(ctx, tx)
	default:
		return "", fmt.Errorf("submit transaction: unsupported submission kind %q", kind)
	}
}

func (w *Wallet) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.client != nil {
		w.client.Close()
		w.client = nil
	}
}

func (w *Wallet) sign(digest []byte) ([]byte, error) {
	sig, err := crypto.Sign(digest, w.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSigningRejected, err)
	}
	sig[crypto.RecoveryIDOffset] += 27

	return sig, nil
}

func (w *Wallet) submitSelfFunded(ctx context.Context, raw domain.RawTransaction) (domain.TxHash, error) {
	chainID := w.chainFor(raw)
	to := common.HexToAddress(raw.To.String())

	unsigned := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     raw.Nonce,
		GasTipCap: orZero(raw.MaxPriorityFeePerGas),
		GasFeeCap: orZero(raw.MaxFeePerGas),
		Gas:       raw.GasLimit,
		To:        &to,
		Value:     orZero(raw.Value),
		Data:      raw.Data,
	})

	signed, err := types.SignTx(unsigned, types.LatestSignerForChainID(chainID), w.key)
	if err != nil {
		return "", fmt.Errorf("%w: sign self-funded transaction: %v", domain.ErrSigningRejected, err)
	}

	client, err := w.rpc(ctx)
	if err != nil {
		return "", err
	}
	if err := client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send self-funded transaction: %w", err)
	}

	w.logger.Info("self-funded transaction sent", zap.String("hash", signed.Hash().Hex()))

	return domain.TxHash(signed.Hash().Hex()), nil
}

func (w *Wallet) submitSponsored(ctx context.Context, raw domain.RawTransaction) (domain.TxHash, error) {
	from := w.address
	if raw.From != "" {
		from = common.HexToAddress(raw.From.String())
	}
	if from != w.address {
		w.logger.Warn("sponsored transaction sender differs from signer",
			zap.String("from", from.Hex()),
			zap.String("signer", w.address.Hex()),
		)
	}

	chainID := w.chainFor(raw)
	digest, err := eip712Digest(raw, from, chainID)
	if err != nil {
		return "", fmt.Errorf("%w: hash sponsored transaction: %v", domain.ErrSigningRejected, err)
	}
	sig, err := w.sign(digest)
	if err != nil {
		return "", err
	}

	payload, err := serializeEIP712(raw, from, chainID, sig)
	if err != nil {
		return "", fmt.Errorf("serialize sponsored transaction: %w", err)
	}

	client, err := w.rpc(ctx)
	if err != nil {
		return "", err
	}

	var hash common.Hash
	if err := client.Client().CallContext(ctx, &hash, "eth_sendRawTransaction", hexutil.Encode(payload)); err != nil {
		return "", fmt.Errorf("send sponsored transaction: %w", err)
	}

	w.logger.Info("sponsored transaction sent", zap.String("hash", hash.Hex()))

	return domain.TxHash(hash.Hex()), nil
}

func (w *Wallet) chainFor(raw domain.RawTransaction) *big.Int {
	if raw.ChainID != nil && raw.ChainID.Sign() > 0 {
		return new(big.Int).Set(raw.ChainID)
	}

	return new(big.Int).Set(w.chainID)
}

func (w *Wallet) rpc(ctx context.Context) (*ethclient.Client, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.client != nil {
		return w.client, nil
	}
	if w.rpcURL == "" {
		return nil, errors.New("wallet rpc url is not configured")
	}

	client, err := ethclient.DialContext(ctx, w.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc %s: %w", w.rpcURL, err)
	}
	w.client = client

	return client, nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}

	return v
}
