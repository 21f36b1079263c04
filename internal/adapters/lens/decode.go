package lens

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type accountNode struct {
	Address  string `json:"address"`
	Username *struct {
		ID        string `json:"id"`
		LocalName string `json:"localName"`
		Namespace string `json:"namespace"`
	} `json:"username"`
	Metadata *struct {
		Name         string `json:"name"`
		Bio          string `json:"bio"`
		Picture      string `json:"picture"`
		CoverPicture string `json:"coverPicture"`
	} `json:"metadata"`
}

func (n accountNode) toDomain() domain.Account {
	account := domain.Account{Address: domain.EvmAddress(n.Address)}
	if n.Username != nil {
		account.UsernameID = n.Username.ID
		account.LocalName = n.Username.LocalName
		account.Namespace = n.Username.Namespace
	}
	if n.Metadata != nil {
		account.Name = n.Metadata.Name
		account.Bio = n.Metadata.Bio
		account.Picture = n.Metadata.Picture
		account.Cover = n.Metadata.CoverPicture
	}

	return account
}

type postNode struct {
	Typename  string      `json:"__typename"`
	ID        string      `json:"id"`
	Timestamp string      `json:"timestamp"`
	Author    accountNode `json:"author"`
	CommentOn *struct {
		ID     string `json:"id"`
		Author *struct {
			Username *struct {
				LocalName string `json:"localName"`
			} `json:"username"`
		} `json:"author"`
	} `json:"commentOn"`
	Metadata *struct {
		Typename string `json:"__typename"`
		Content  string `json:"content"`
	} `json:"metadata"`
}

func (n postNode) isPost() bool {
	return n.ID != "" && (n.Typename == "" || n.Typename == "Post")
}

func (n postNode) toDomain() domain.Post {
	post := domain.Post{
		ID:        domain.PostID(n.ID),
		Author:    n.Author.toDomain(),
		Timestamp: parseTimestamp(n.Timestamp),
	}
	if n.CommentOn != nil && n.CommentOn.ID != "" {
		ref := &domain.PostRef{ID: domain.PostID(n.CommentOn.ID)}
		if n.CommentOn.Author != nil && n.CommentOn.Author.Username != nil {
			ref.AuthorHandle = n.CommentOn.Author.Username.LocalName
		}
		post.CommentOn = ref
	}
	if n.Metadata != nil {
		post.Metadata = domain.PostMetadata{
			Kind:    domain.MetadataKind(n.Metadata.Typename),
			Content: n.Metadata.Content,
		}
	} else {
		post.Metadata = domain.PostMetadata{Kind: domain.MetadataKindUnknown}
	}

	return post
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

type pageInfo struct {
	Next *string `json:"next"`
}

func (p pageInfo) cursor() domain.Cursor {
	if p.Next == nil {
		return ""
	}

	return domain.Cursor(*p.Next)
}

// quantity decodes numeric fields that the API returns either as JSON numbers or as
// decimal or 0x-prefixed strings.
type quantity struct {
	*big.Int
}

func (q *quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		q.Int = nil
		return nil
	}

	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		q.Int = new(big.Int)
		return nil
	}

	value, ok := new(big.Int).SetString(raw, 0)
	if !ok {
		return fmt.Errorf("invalid quantity %s", data)
	}
	q.Int = value

	return nil
}

func (q quantity) toBig() *big.Int {
	if q.Int == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(q.Int)
}

func (q quantity) toUint64() uint64 {
	if q.Int == nil || !q.Int.IsUint64() {
		return 0
	}

	return q.Int.Uint64()
}

type rawTransactionNode struct {
	Type                 quantity `json:"type"`
	To                   string   `json:"to"`
	From                 string   `json:"from"`
	Nonce                quantity `json:"nonce"`
	GasLimit             quantity `json:"gasLimit"`
	MaxPriorityFeePerGas quantity `json:"maxPriorityFeePerGas"`
	MaxFeePerGas         quantity `json:"maxFeePerGas"`
	Data                 string   `json:"data"`
	Value                quantity `json:"value"`
	ChainID              quantity `json:"chainId"`
	CustomData           *struct {
		GasPerPubdata   quantity `json:"gasPerPubdata"`
		FactoryDeps     []string `json:"factoryDeps"`
		CustomSignature *string  `json:"customSignature"`
		PaymasterParams *struct {
			Paymaster      string `json:"paymaster"`
			PaymasterInput string `json:"paymasterInput"`
		} `json:"paymasterParams"`
	} `json:"customData"`
}

func (n rawTransactionNode) toDomain() (domain.RawTransaction, error) {
	data, err := decodeHex(n.Data)
	if err != nil {
		return domain.RawTransaction{}, fmt.Errorf("decode tx data: %w", err)
	}

	tx := domain.RawTransaction{
		Type:                 n.Type.toBig().Int64(),
		From:                 domain.EvmAddress(n.From),
		To:                   domain.EvmAddress(n.To),
		Nonce:                n.Nonce.toUint64(),
		GasLimit:             n.GasLimit.toUint64(),
		MaxFeePerGas:         n.MaxFeePerGas.toBig(),
		MaxPriorityFeePerGas: n.MaxPriorityFeePerGas.toBig(),
		Value:                n.Value.toBig(),
		Data:                 data,
		ChainID:              n.ChainID.toBig(),
	}

	if n.CustomData != nil {
		tx.GasPerPubdata = n.CustomData.GasPerPubdata.toBig()
		for _, dep := range n.CustomData.FactoryDeps {
			decoded, err := decodeHex(dep)
			if err != nil {
				return domain.RawTransaction{}, fmt.Errorf("decode factory dep: %w", err)
			}
			tx.FactoryDeps = append(tx.FactoryDeps, decoded)
		}
		if n.CustomData.CustomSignature != nil {
			sig, err := decodeHex(*n.CustomData.CustomSignature)
			if err != nil {
				return domain.RawTransaction{}, fmt.Errorf("decode custom signature: %w", err)
			}
			tx.CustomSignature = sig
		}
		if params := n.CustomData.PaymasterParams; params != nil && params.Paymaster != "" {
			input, err := decodeHex(params.PaymasterInput)
			if err != nil {
				return domain.RawTransaction{}, fmt.Errorf("decode paymaster input: %w", err)
			}
			tx.Paymaster = &domain.PaymasterParams{
				Paymaster: domain.EvmAddress(params.Paymaster),
				Input:     input,
			}
		}
	}

	return tx, nil
}

func decodeHex(raw string) ([]byte, error) {
	if raw == "" || raw == "0x" {
		return nil, nil
	}

	return hexutil.Decode(raw)
}

type postResultNode struct {
	Typename string              `json:"__typename"`
	Hash     string              `json:"hash"`
	Reason   string              `json:"reason"`
	Raw      *rawTransactionNode `json:"raw"`
}

func (n postResultNode) toDomain() (domain.OperationResult, error) {
	switch n.Typename {
	case "PostResponse":
		return domain.Broadcasted{Hash: domain.TxHash(n.Hash)}, nil
	case "SponsoredTransactionRequest":
		tx, err := n.rawTransaction()
		if err != nil {
			return nil, err
		}
		return domain.SponsoredTransactionRequest{Reason: n.Reason, Tx: tx}, nil
	case "SelfFundedTransactionRequest":
		tx, err := n.rawTransaction()
		if err != nil {
			return nil, err
		}
		return domain.SelfFundedTransactionRequest{Reason: n.Reason, Tx: tx}, nil
	case "TransactionWillFail":
		return domain.TransactionWillFail{Reason: n.Reason}, nil
	default:
		return nil, fmt.Errorf("unexpected post result type %q", n.Typename)
	}
}

func (n postResultNode) rawTransaction() (domain.RawTransaction, error) {
	if n.Raw == nil {
		return domain.RawTransaction{}, fmt.Errorf("%s without raw transaction", n.Typename)
	}

	return n.Raw.toDomain()
}

type notificationNode struct {
	Typename string    `json:"__typename"`
	Post     *postNode `json:"post"`
	Comment  *postNode `json:"comment"`
}

func (n notificationNode) toDomain() (domain.Notification, bool) {
	switch {
	case n.Typename == "MentionNotification" && n.Post != nil && n.Post.isPost():
		return domain.Notification{Kind: domain.NotificationMentioned, Post: n.Post.toDomain()}, true
	case n.Typename == "CommentNotification" && n.Comment != nil && n.Comment.isPost():
		return domain.Notification{Kind: domain.NotificationCommented, Post: n.Comment.toDomain()}, true
	default:
		return domain.Notification{}, false
	}
}

func decodePostPage(items []postNode, info pageInfo) domain.Page[domain.Post] {
	page := domain.Page[domain.Post]{Items: make([]domain.Post, 0, len(items)), Next: info.cursor()}
	for _, item := range items {
		if !item.isPost() {
			continue
		}
		page.Items = append(page.Items, item.toDomain())
	}

	return page
}
