package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func chatCompletionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 20},
	})
	return string(body)
}

func newTestOpenRouter(t *testing.T, handler http.HandlerFunc) *OpenRouterService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := resty.New().SetBaseURL(srv.URL).SetAuthToken("test-key")
	return NewOpenRouterServiceWithClient(client, 5*time.Second)
}

func testRequest() CompletionRequest {
	return CompletionRequest{
		Model:        "openai/gpt-4o-mini",
		SystemPrompt: "you are a tester",
		UserPrompt:   "score this",
		SchemaName:   "test_result",
		Schema:       testSchema(),
	}
}

func TestOpenRouterComplete(t *testing.T) {
	var captured string
	svc := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		captured = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, chatCompletionBody(`{"score":64,"label":"ok","items":[{"priority":"medium"}],"extra":{"value":12}}`))
	})

	var out testResult
	err := svc.Complete(context.Background(), testRequest(), &out)
	require.NoError(t, err)
	assert.Equal(t, 64, out.Score)
	require.NotNil(t, out.Extra)
	require.NotNil(t, out.Extra.Value)
	assert.Equal(t, 12, *out.Extra.Value)

	assert.Equal(t, "openai/gpt-4o-mini", gjson.Get(captured, "model").String())
	assert.Equal(t, "system", gjson.Get(captured, "messages.0.role").String())
	assert.Equal(t, "you are a tester", gjson.Get(captured, "messages.0.content").String())
	assert.Equal(t, "score this", gjson.Get(captured, "messages.1.content").String())
	assert.Equal(t, "json_schema", gjson.Get(captured, "response_format.type").String())
	assert.Equal(t, "test_result", gjson.Get(captured, "response_format.json_schema.name").String())
	assert.True(t, gjson.Get(captured, "response_format.json_schema.strict").Bool())
	assert.Equal(t, "object", gjson.Get(captured, "response_format.json_schema.schema.type").String())
}

func TestOpenRouterCompleteAPIError(t *testing.T) {
	svc := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"rate limited upstream"}}`)
	})

	var out testResult
	err := svc.Complete(context.Background(), testRequest(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited upstream")
	assert.NotErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenRouterCompleteInvalidOutput(t *testing.T) {
	svc := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, chatCompletionBody(`{"score":64,"label":"ok","items":[{"priority":"urgent"}],"extra":null}`))
	})

	var out testResult
	err := svc.Complete(context.Background(), testRequest(), &out)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenRouterCompleteRefusal(t *testing.T) {
	svc := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":null,"refusal":"cannot help"}}]}`)
	})

	var out testResult
	err := svc.Complete(context.Background(), testRequest(), &out)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestOpenRouterCompleteTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	svc := NewOpenRouterServiceWithClient(resty.New().SetBaseURL(srv.URL), 100*time.Millisecond)

	started := time.Now()
	var out testResult
	err := svc.Complete(context.Background(), testRequest(), &out)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(started), 2*time.Second)
}

func TestOpenRouterCompleteRejectsBadRequest(t *testing.T) {
	calls := 0
	svc := newTestOpenRouter(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	req := testRequest()
	req.UserPrompt = "   "
	var out testResult
	require.Error(t, svc.Complete(context.Background(), req, &out))
	assert.Zero(t, calls)
}
