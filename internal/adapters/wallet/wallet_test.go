package wallet

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

type rpcRecorder struct {
	mu      sync.Mutex
	methods []string
	raw     []string
}

func newRPCServer(t *testing.T, result string) (*httptest.Server, *rpcRecorder) {
	t.Helper()

	rec := &rpcRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
			Params []string        `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		rec.mu.Lock()
		rec.methods = append(rec.methods, req.Method)
		if len(req.Params) > 0 {
			rec.raw = append(rec.raw, req.Params[0])
		}
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":"` + result + `"}`))
	}))
	t.Cleanup(srv.Close)

	return srv, rec
}

func newTestWallet(t *testing.T, rpcURL string) *Wallet {
	t.Helper()

	w, err := New(Config{PrivateKey: testKey, RPCURL: rpcURL, ChainID: 37111}, nil)
	require.NoError(t, err)
	t.Cleanup(w.Close)

	return w
}

func recoverSigner(t *testing.T, digest, sig []byte) common.Address {
	t.Helper()

	require.Len(t, sig, 65)
	normalized := append([]byte(nil), sig...)
	normalized[crypto.RecoveryIDOffset] -= 27
	pub, err := crypto.SigToPub(digest, normalized)
	require.NoError(t, err)

	return crypto.PubkeyToAddress(*pub)
}

func TestNewRejectsMalformedKey(t *testing.T) {
	t.Parallel()

	_, err := New(Config{PrivateKey: "0xnothex"}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "load private key")
}

func TestAddressMatchesKey(t *testing.T) {
	t.Parallel()

	w := newTestWallet(t, "")
	key, err := crypto.HexToECDSA(testKey[2:])
	require.NoError(t, err)

	assert.Equal(t, domain.EvmAddress(crypto.PubkeyToAddress(key.PublicKey).Hex()), w.Address())
	assert.NoError(t, w.Address().Validate())
}

func TestSignMessageProducesPersonalSignature(t *testing.T) {
	t.Parallel()

	w := newTestWallet(t, "")
	signature, err := w.SignMessage(context.Background(), "lens challenge")
	require.NoError(t, err)

	sig, err := hexutil.Decode(signature)
	require.NoError(t, err)
	assert.Contains(t, []byte{27, 28}, sig[64])

	signer := recoverSigner(t, accounts.TextHash([]byte("lens challenge")), sig)
	assert.Equal(t, w.Address().String(), signer.Hex())
}

func TestSubmitSelfFundedSendsSignedDynamicFeeTransaction(t *testing.T) {
	t.Parallel()

	srv, rec := newRPCServer(t, "0x0000000000000000000000000000000000000000000000000000000000000001")
	w := newTestWallet(t, srv.URL)

	hash, err := w.SubmitTransaction(context.Background(), domain.RawTransaction{
		Type:                 2,
		To:                   "0x00000000000000000000000000000000000000dd",
		Nonce:                4,
		GasLimit:             21000,
		MaxFeePerGas:         big.NewInt(2000),
		MaxPriorityFeePerGas: big.NewInt(100),
		Value:                big.NewInt(0),
		Data:                 []byte{0xca, 0xfe},
		ChainID:              big.NewInt(37111),
	}, domain.SubmissionSelfFunded)
	require.NoError(t, err)
	require.NoError(t, hash.Validate())

	require.Equal(t, []string{"eth_sendRawTransaction"}, rec.methods)
	payload, err := hexutil.Decode(rec.raw[0])
	require.NoError(t, err)

	var tx types.Transaction
	require.NoError(t, tx.UnmarshalBinary(payload))
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, uint64(4), tx.Nonce())
	assert.Equal(t, []byte{0xca, 0xfe}, tx.Data())
	assert.Equal(t, domain.TxHash(tx.Hash().Hex()), hash)

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(37111)), &tx)
	require.NoError(t, err)
	assert.Equal(t, w.Address().String(), sender.Hex())
}

func TestSubmitSponsoredSendsEIP712Envelope(t *testing.T) {
	t.Parallel()

	const returned = "0x00000000000000000000000000000000000000000000000000000000000000ab"
	srv, rec := newRPCServer(t, returned)
	w := newTestWallet(t, srv.URL)

	raw := domain.RawTransaction{
		Type:                 113,
		From:                 w.Address(),
		To:                   "0x00000000000000000000000000000000000000dd",
		Nonce:                9,
		GasLimit:             300000,
		MaxFeePerGas:         big.NewInt(25000000),
		MaxPriorityFeePerGas: big.NewInt(0),
		Value:                big.NewInt(0),
		Data:                 []byte{0x12, 0x34},
		ChainID:              big.NewInt(37111),
		GasPerPubdata:        big.NewInt(50000),
		Paymaster: &domain.PaymasterParams{
			Paymaster: "0x00000000000000000000000000000000000000ee",
			Input:     []byte{0xab, 0xcd},
		},
	}

	hash, err := w.SubmitTransaction(context.Background(), raw, domain.SubmissionSponsored)
	require.NoError(t, err)
	assert.Equal(t, domain.TxHash(returned), hash)

	require.Len(t, rec.raw, 1)
	payload, err := hexutil.Decode(rec.raw[0])
	require.NoError(t, err)
	require.Equal(t, byte(0x71), payload[0])

	var fields []rlp.RawValue
	require.NoError(t, rlp.DecodeBytes(payload[1:], &fields))
	require.Len(t, fields, 16)

	var signature []byte
	require.NoError(t, rlp.DecodeBytes(fields[14], &signature))

	digest, err := eip712Digest(raw, common.HexToAddress(w.Address().String()), big.NewInt(37111))
	require.NoError(t, err)
	assert.Equal(t, w.Address().String(), recoverSigner(t, digest, signature).Hex())

	var paymaster []rlp.RawValue
	require.NoError(t, rlp.DecodeBytes(fields[15], &paymaster))
	assert.Len(t, paymaster, 2)
}

func TestEIP712DigestCoversPaymaster(t *testing.T) {
	t.Parallel()

	from := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	raw := domain.RawTransaction{To: "0x00000000000000000000000000000000000000dd", GasLimit: 1, ChainID: big.NewInt(37111)}

	plain, err := eip712Digest(raw, from, raw.ChainID)
	require.NoError(t, err)

	raw.Paymaster = &domain.PaymasterParams{Paymaster: "0x00000000000000000000000000000000000000ee"}
	sponsored, err := eip712Digest(raw, from, raw.ChainID)
	require.NoError(t, err)

	assert.Len(t, plain, 32)
	assert.NotEqual(t, plain, sponsored)
}

func TestSubmitWithoutRPCURLFails(t *testing.T) {
	t.Parallel()

	w := newTestWallet(t, "")
	_, err := w.SubmitTransaction(context.Background(), domain.RawTransaction{To: "0x00000000000000000000000000000000000000dd"}, domain.SubmissionSelfFunded)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSigningRejected)
	assert.ErrorContains(t, err, "rpc url")
}

func TestSubmitRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	w := newTestWallet(t, "")
	_, err := w.SubmitTransaction(context.Background(), domain.RawTransaction{}, domain.SubmissionKind("gasless"))
	assert.ErrorContains(t, err, "unsupported submission kind")
}
