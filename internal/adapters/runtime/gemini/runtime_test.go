package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedCall struct {
	Path string
	Body map[string]any
}

func newGeminiServer(t *testing.T, status int, answer string) (*httptest.Server, *[]capturedCall) {
	t.Helper()

	var mu sync.Mutex
	var calls []capturedCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		mu.Lock()
		calls = append(calls, capturedCall{Path: r.URL.Path, Body: body})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
			return
		}

		payload, _ := json.Marshal(answer)
		_, _ = fmt.Fprintf(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":%s}]}}]}`, payload)
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func newTestRuntime(t *testing.T, srv *httptest.Server, character domain.Character) *Runtime {
	t.Helper()

	runtime, err := New(context.Background(), Config{
		APIKey:     "test-key",
		Model:      "gemini-test",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	}, character, nil)
	require.NoError(t, err)

	return runtime
}

func TestShouldRespondParsesDecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		answer string
		want   domain.Decision
	}{
		{answer: "RESPOND", want: domain.DecisionRespond},
		{answer: "[IGNORE]", want: domain.DecisionIgnore},
		{answer: "I would STOP here", want: domain.DecisionStop},
		{answer: "no idea", want: domain.DecisionIgnore},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			t.Parallel()

			srv, _ := newGeminiServer(t, http.StatusOK, tt.answer)
			decision, err := newTestRuntime(t, srv, domain.Character{Name: "bot"}).ShouldRespond(context.Background(), "prompt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, decision)
		})
	}
}

func TestGenerateTextSendsPromptAndSystemInstruction(t *testing.T) {
	t.Parallel()

	srv, calls := newGeminiServer(t, http.StatusOK, "  gm lens  \n")
	runtime := newTestRuntime(t, srv, domain.Character{Name: "bot", System: "Speak like a lighthouse keeper."})

	text, err := runtime.GenerateText(context.Background(), "write a post")
	require.NoError(t, err)
	assert.Equal(t, "gm lens", text)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.True(t, strings.HasSuffix(call.Path, "models/gemini-test:generateContent"), call.Path)

	encoded, err := json.Marshal(call.Body)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "write a post")
	assert.Contains(t, string(encoded), "Speak like a lighthouse keeper.")
}

func TestGenerateTextRejectsEmptyCompletion(t *testing.T) {
	t.Parallel()

	srv, _ := newGeminiServer(t, http.StatusOK, "   ")
	_, err := newTestRuntime(t, srv, domain.Character{Name: "bot"}).GenerateText(context.Background(), "prompt")
	assert.ErrorContains(t, err, "empty completion")
}

func TestGenerateTextSurfacesAPIErrors(t *testing.T) {
	t.Parallel()

	srv, _ := newGeminiServer(t, http.StatusInternalServerError, "")
	_, err := newTestRuntime(t, srv, domain.Character{Name: "bot"}).GenerateText(context.Background(), "prompt")
	assert.ErrorContains(t, err, "gemini generate content")
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{}, domain.Character{}, nil)
	assert.ErrorContains(t, err, "api key")
}

func TestSystemInstructionFallsBackToCharacterName(t *testing.T) {
	t.Parallel()

	assert.Contains(t, systemInstruction(domain.Character{Name: "lens-bot"}), "You are lens-bot")
	assert.Equal(t, "custom", systemInstruction(domain.Character{Name: "x", System: "custom"}))
}
