package wallet

import (
	"math/big"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	eip712TxType         = 0x71
	defaultGasPerPubdata = 50000
)

var eip712Types = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
	},
	"Transaction": {
		{Name: "txType", Type: "uint256"},
		{Name: "from", Type: "uint256"},
		{Name: "to", Type: "uint256"},
		{Name: "gasLimit", Type: "uint256"},
		{Name: "gasPerPubdataByteLimit", Type: "uint256"},
		{Name: "maxFeePerGas", Type: "uint256"},
		{Name: "maxPriorityFeePerGas", Type: "uint256"},
		{Name: "paymaster", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "value", Type: "uint256"},
		{Name: "data", Type: "bytes"},
		{Name: "factoryDeps", Type: "bytes32[]"},
		{Name: "paymasterInput", Type: "bytes"},
	},
}

// eip712Digest hashes a zkSync EIP-712 transaction the way the sequencer verifies it.
func eip712Digest(raw domain.RawTransaction, from common.Address, chainID *big.Int) ([]byte, error) {
	paymaster := common.Address{}
	var paymasterInput []byte
	if raw.Paymaster != nil {
		paymaster = common.HexToAddress(raw.Paymaster.Paymaster.String())
		paymasterInput = raw.Paymaster.Input
	}

	deps := make([]interface{}, 0, len(raw.FactoryDeps))
	for _, dep := range raw.FactoryDeps {
		deps = append(deps, hexutil.Encode(dep))
	}

	typed := apitypes.TypedData{
		Types:       eip712Types,
		PrimaryType: "Transaction",
		Domain: apitypes.TypedDataDomain{
			Name:    "zkSync",
			Version: "2",
			ChainId: (*math.HexOrDecimal256)(chainID),
		},
		Message: apitypes.TypedDataMessage{
			"txType":                 decimal(big.NewInt(eip712TxType)),
			"from":                   addressAsUint(from),
			"to":                     addressAsUint(common.HexToAddress(raw.To.String())),
			"gasLimit":               decimal(new(big.Int).SetUint64(raw.GasLimit)),
			"gasPerPubdataByteLimit": decimal(gasPerPubdata(raw)),
			"maxFeePerGas":           decimal(raw.MaxFeePerGas),
			"maxPriorityFeePerGas":   decimal(raw.MaxPriorityFeePerGas),
			"paymaster":              addressAsUint(paymaster),
			"nonce":                  decimal(new(big.Int).SetUint64(raw.Nonce)),
			"value":                  decimal(raw.Value),
			"data":                   hexutil.Encode(raw.Data),
			"factoryDeps":            deps,
			"paymasterInput":         hexutil.Encode(paymasterInput),
		},
	}

	digest, _, err := apitypes.TypedDataAndHash(typed)
	if err != nil {
		return nil, err
	}

	return digest, nil
}

// serializeEIP712 builds the 0x71 envelope accepted by eth_sendRawTransaction on zkSync
// chains. The signature travels in the custom signature field.
func serializeEIP712(raw domain.RawTransaction, from common.Address, chainID *big.Int, signature []byte) ([]byte, error) {
	paymasterParams := []interface{}{}
	if raw.Paymaster != nil {
		paymasterParams = []interface{}{
			common.HexToAddress(raw.Paymaster.Paymaster.String()),
			raw.Paymaster.Input,
		}
	}

	deps := raw.FactoryDeps
	if deps == nil {
		deps = [][]byte{}
	}
	data := raw.Data
	if data == nil {
		data = []byte{}
	}

	fields := []interface{}{
		raw.Nonce,
		orZero(raw.MaxPriorityFeePerGas),
		orZero(raw.MaxFeePerGas),
		raw.GasLimit,
		common.HexToAddress(raw.To.String()),
		orZero(raw.Value),
		data,
		chainID,
		[]byte{},
		[]byte{},
		chainID,
		from,
		gasPerPubdata(raw),
		deps,
		signature,
		paymasterParams,
	}

	encoded, err := rlp.EncodeToBytes(fields)
	if err != nil {
		return nil, err
	}

	return append([]byte{eip712TxType}, encoded...), nil
}

func gasPerPubdata(raw domain.RawTransaction) *big.Int {
	if raw.GasPerPubdata != nil && raw.GasPerPubdata.Sign() > 0 {
		return raw.GasPerPubdata
	}

	return big.NewInt(defaultGasPerPubdata)
}

func addressAsUint(addr common.Address) string {
	return new(big.Int).SetBytes(addr.Bytes()).String()
}

func decimal(v *big.Int) string {
	return orZero(v).String()
}
