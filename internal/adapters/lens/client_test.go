package lens

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Query         string
	Variables     map[string]any
	Authorization string
	Origin        string
}

func newGraphQLServer(t *testing.T, handle func(req recordedRequest) string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		req := recordedRequest{
			Query:         body.Query,
			Variables:     body.Variables,
			Authorization: r.Header.Get("Authorization"),
			Origin:        r.Header.Get("Origin"),
		}
		requests = append(requests, req)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handle(req)))
	}))
	t.Cleanup(srv.Close)

	return srv, &requests
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{Endpoint: srv.URL, Origin: "https://lensagent.test", RequestTimeout: 5 * time.Second}, srv.Client(), nil)
}

const postJSON = `{
  "__typename": "Post",
  "id": "0x01-0x02",
  "timestamp": "2026-03-01T10:00:00.000Z",
  "author": {"address": "0x00000000000000000000000000000000000000aa", "username": {"id": "u1", "localName": "alice", "namespace": "lens"}, "metadata": {"name": "Alice"}},
  "commentOn": {"id": "0x01-0x01", "author": {"username": {"localName": "bob"}}},
  "metadata": {"__typename": "TextOnlyMetadata", "content": "gm @agent"}
}`

func TestLoginSignsChallengeAndReturnsSession(t *testing.T) {
	srv, requests := newGraphQLServer(t, func(req recordedRequest) string {
		switch {
		case strings.Contains(req.Query, "challenge("):
			return `{"data":{"challenge":{"id":"challenge-1","text":"sign me"}}}`
		case strings.Contains(req.Query, "authenticate("):
			return `{"data":{"authenticate":{"__typename":"AuthenticationTokens","accessToken":"access","refreshToken":"refresh","idToken":"id"}}}`
		default:
			return `{"errors":[{"message":"unexpected"}]}`
		}
	})
	client := newTestClient(srv)

	var signed string
	session, err := client.Login(context.Background(), domain.LoginRequest{
		Account: "0x00000000000000000000000000000000000000aa",
		App:     "0x00000000000000000000000000000000000000bb",
		Owner:   "0x00000000000000000000000000000000000000cc",
	}, func(_ context.Context, message string) (string, error) {
		signed = message
		return "0xsig", nil
	})
	require.NoError(t, err)

	assert.Equal(t, "sign me", signed)
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, "refresh", session.RefreshToken)
	require.Len(t, *requests, 2)

	owner := (*requests)[0].Variables["request"].(map[string]any)["accountOwner"].(map[string]any)
	assert.Equal(t, "0x00000000000000000000000000000000000000cc", owner["owner"])
	authReq := (*requests)[1].Variables["request"].(map[string]any)
	assert.Equal(t, "challenge-1", authReq["id"])
	assert.Equal(t, "0xsig", authReq["signature"])
	assert.Empty(t, (*requests)[1].Authorization)
	assert.Equal(t, "https://lensagent.test", (*requests)[0].Origin)
}

func TestLoginRejectsWrongSigner(t *testing.T) {
	srv, _ := newGraphQLServer(t, func(req recordedRequest) string {
		if strings.Contains(req.Query, "challenge(") {
			return `{"data":{"challenge":{"id":"c","text":"t"}}}`
		}
		return `{"data":{"authenticate":{"__typename":"WrongSignerError","reason":"signer is not the owner"}}}`
	})

	_, err := newTestClient(srv).Login(context.Background(), domain.LoginRequest{}, func(context.Context, string) (string, error) {
		return "0xsig", nil
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "WrongSignerError")
	assert.ErrorContains(t, err, "signer is not the owner")
}

func TestLoginPropagatesSigningFailure(t *testing.T) {
	srv, requests := newGraphQLServer(t, func(recordedRequest) string {
		return `{"data":{"challenge":{"id":"c","text":"t"}}}`
	})
	signErr := errors.New("user rejected")

	_, err := newTestClient(srv).Login(context.Background(), domain.LoginRequest{}, func(context.Context, string) (string, error) {
		return "", signErr
	})
	require.ErrorIs(t, err, signErr)
	assert.Len(t, *requests, 1)
}

func TestSubmitPostDecodesEveryResultVariant(t *testing.T) {
	tests := []struct {
		name     string
		response string
		check    func(t *testing.T, result domain.OperationResult)
	}{
		{
			name:     "broadcast",
			response: `{"__typename":"PostResponse","hash":"0xdead"}`,
			check: func(t *testing.T, result domain.OperationResult) {
				assert.Equal(t, domain.Broadcasted{Hash: "0xdead"}, result)
			},
		},
		{
			name: "sponsored",
			response: `{"__typename":"SponsoredTransactionRequest","reason":"sponsored","raw":{
				"type":113,"to":"0x00000000000000000000000000000000000000dd","from":"0x00000000000000000000000000000000000000aa",
				"nonce":7,"gasLimit":"300000","maxPriorityFeePerGas":"0","maxFeePerGas":"25000000","data":"0x1234","value":"0","chainId":37111,
				"customData":{"gasPerPubdata":"50000","factoryDeps":[],"customSignature":null,
				"paymasterParams":{"paymaster":"0x00000000000000000000000000000000000000ee","paymasterInput":"0xabcd"}}}}`,
			check: func(t *testing.T, result domain.OperationResult) {
				sponsored, ok := result.(domain.SponsoredTransactionRequest)
				require.True(t, ok)
				tx := sponsored.Tx
				assert.Equal(t, int64(113), tx.Type)
				assert.Equal(t, uint64(7), tx.Nonce)
				assert.Equal(t, uint64(300000), tx.GasLimit)
				assert.Equal(t, big.NewInt(25000000), tx.MaxFeePerGas)
				assert.Equal(t, big.NewInt(37111), tx.ChainID)
				assert.Equal(t, big.NewInt(50000), tx.GasPerPubdata)
				assert.Equal(t, []byte{0x12, 0x34}, tx.Data)
				require.NotNil(t, tx.Paymaster)
				assert.Equal(t, domain.EvmAddress("0x00000000000000000000000000000000000000ee"), tx.Paymaster.Paymaster)
				assert.Equal(t, []byte{0xab, 0xcd}, tx.Paymaster.Input)
			},
		},
		{
			name: "self funded",
			response: `{"__typename":"SelfFundedTransactionRequest","reason":"no sponsor","raw":{
				"type":2,"to":"0x00000000000000000000000000000000000000dd","from":"0x00000000000000000000000000000000000000aa",
				"nonce":"0x3","gasLimit":21000,"maxPriorityFeePerGas":"1","maxFeePerGas":"2","data":"0x","value":"0","chainId":"37111"}}`,
			check: func(t *testing.T, result domain.OperationResult) {
				selfFunded, ok := result.(domain.SelfFundedTransactionRequest)
				require.True(t, ok)
				assert.Equal(t, uint64(3), selfFunded.Tx.Nonce)
				assert.Equal(t, uint64(21000), selfFunded.Tx.GasLimit)
				assert.Nil(t, selfFunded.Tx.Paymaster)
				assert.Empty(t, selfFunded.Tx.Data)
			},
		},
		{
			name:     "will fail",
			response: `{"__typename":"TransactionWillFail","reason":"insufficient funds"}`,
			check: func(t *testing.T, result domain.OperationResult) {
				assert.Equal(t, domain.TransactionWillFail{Reason: "insufficient funds"}, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, requests := newGraphQLServer(t, func(recordedRequest) string {
				return `{"data":{"post":` + tt.response + `}}`
			})

			parent := domain.PostID("0x01-0x01")
			result, err := newTestClient(srv).SubmitPost(context.Background(), domain.Session{AccessToken: "access"}, domain.CreatePostRequest{
				ContentURI: "lens://abc",
				CommentOn:  &parent,
			})
			require.NoError(t, err)
			tt.check(t, result)

			require.Len(t, *requests, 1)
			assert.Equal(t, "Bearer access", (*requests)[0].Authorization)
			request := (*requests)[0].Variables["request"].(map[string]any)
			assert.Equal(t, "lens://abc", request["contentUri"])
			assert.Equal(t, "0x01-0x01", request["commentOn"].(map[string]any)["post"])
		})
	}
}

func TestSubmitPostRejectsUnknownTypename(t *testing.T) {
	srv, _ := newGraphQLServer(t, func(recordedRequest) string {
		return `{"data":{"post":{"__typename":"SomethingNew"}}}`
	})

	_, err := newTestClient(srv).SubmitPost(context.Background(), domain.Session{AccessToken: "a"}, domain.CreatePostRequest{ContentURI: "lens://x"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "SomethingNew")
}

func TestFetchPostByHashReturnsNilWhileNotIndexed(t *testing.T) {
	srv, requests := newGraphQLServer(t, func(recordedRequest) string {
		return `{"data":{"post":null}}`
	})

	post, err := newTestClient(srv).FetchPostByHash(context.Background(), domain.Session{AccessToken: "a"}, "0xdead")
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.Equal(t, "0xdead", (*requests)[0].Variables["request"].(map[string]any)["txHash"])
}

func TestFetchPostDecodesPost(t *testing.T) {
	srv, _ := newGraphQLServer(t, func(recordedRequest) string {
		return `{"data":{"post":` + postJSON + `}}`
	})

	post, err := newTestClient(srv).FetchPost(context.Background(), nil, "0x01-0x02")
	require.NoError(t, err)
	require.NotNil(t, post)

	assert.Equal(t, domain.PostID("0x01-0x02"), post.ID)
	assert.Equal(t, "alice", post.Author.LocalName)
	assert.Equal(t, "Alice", post.Author.Name)
	require.NotNil(t, post.CommentOn)
	assert.Equal(t, domain.PostID("0x01-0x01"), post.CommentOn.ID)
	assert.Equal(t, "bob", post.CommentOn.AuthorHandle)
	text, ok := post.Text()
	assert.True(t, ok)
	assert.Equal(t, "gm @agent", text)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), post.Timestamp)
}

func TestFetchNotificationsMapsMentionsAndComments(t *testing.T) {
	srv, requests := newGraphQLServer(t, func(recordedRequest) string {
		return `{"data":{"notifications":{"items":[
			{"__typename":"MentionNotification","post":` + postJSON + `},
			{"__typename":"CommentNotification","comment":` + postJSON + `},
			{"__typename":"FollowNotification"}
		],"pageInfo":{"next":"cursor-2"}}}}`
	})

	page, err := newTestClient(srv).FetchNotifications(context.Background(), domain.Session{AccessToken: "a"}, domain.MentionFilter(), "cursor-1")
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, domain.NotificationMentioned, page.Items[0].Kind)
	assert.Equal(t, domain.NotificationCommented, page.Items[1].Kind)
	assert.Equal(t, domain.Cursor("cursor-2"), page.Next)

	request := (*requests)[0].Variables["request"].(map[string]any)
	assert.Equal(t, "cursor-1", request["cursor"])
	filter := request["filter"].(map[string]any)
	assert.Equal(t, []any{"MENTIONED", "COMMENTED"}, filter["notificationTypes"])
	assert.Equal(t, true, filter["includeLowScore"])
	assert.Equal(t, false, filter["timeBasedAggregation"])
}

func TestFetchTimelineUsesPrimaryPosts(t *testing.T) {
	srv, _ := newGraphQLServer(t, func(recordedRequest) string {
		return `{"data":{"timeline":{"items":[{"id":"item-1","primary":` + postJSON + `},{"id":"item-2","primary":null}],"pageInfo":{"next":null}}}}`
	})

	page, err := newTestClient(srv).FetchTimeline(context.Background(), domain.Session{AccessToken: "a"}, "0x00000000000000000000000000000000000000aa", "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.False(t, page.HasNext())
}

func TestFetchAccountNotFound(t *testing.T) {
	srv, _ := newGraphQLServer(t, func(recordedRequest) string {
		return `{"data":{"account":null}}`
	})

	_, err := newTestClient(srv).FetchAccount(context.Background(), nil, domain.AccountQuery{Handle: "ghost"})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.ErrorContains(t, err, "@ghost")
}

func TestGraphQLErrorsAreSurfaced(t *testing.T) {
	srv, _ := newGraphQLServer(t, func(recordedRequest) string {
		return `{"data":null,"errors":[{"message":"Unauthenticated"},{"message":"try again"}]}`
	})

	_, err := newTestClient(srv).FetchTimeline(context.Background(), domain.Session{}, "0x00000000000000000000000000000000000000aa", "")
	var responseErr *ResponseError
	require.ErrorAs(t, err, &responseErr)
	assert.Equal(t, "timeline", responseErr.Operation)
	assert.ErrorContains(t, err, "Unauthenticated; try again")
}

func TestCircuitBreakerOpensAfterRepeatedServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	for i := 0; i < 5; i++ {
		_, err := client.FetchPost(context.Background(), nil, "0x01")
		require.Error(t, err)
		assert.ErrorContains(t, err, "responded 502")
	}

	_, err := client.FetchPost(context.Background(), nil, "0x01")
	require.Error(t, err)
	assert.ErrorContains(t, err, "lens api unavailable")
	assert.Equal(t, int32(5), hits.Load())
}
