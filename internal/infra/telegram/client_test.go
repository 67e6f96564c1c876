//go:build unit

package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/pkg/errs"
)

type botServer struct {
	mu    sync.Mutex
	calls []apiCall
	fail  bool
}

type apiCall struct {
	path string
	form map[string]string
}

func (b *botServer) handler(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	form := map[string]string{}
	for k := range r.PostForm {
		form[k] = r.PostForm.Get(k)
	}
	b.mu.Lock()
	b.calls = append(b.calls, apiCall{path: r.URL.Path, form: form})
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if b.fail {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error_code": 400, "description": "Bad Request: chat not found"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": map[string]any{"message_id": 1, "date": 0, "chat": map[string]any{"id": 1}}})
}

func newTestClient(t *testing.T, b *botServer) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(b.handler))
	t.Cleanup(srv.Close)
	return NewClient("123:abc", WithEndpoint(srv.URL+"/bot%s/%s"), WithHTTPClient(srv.Client()))
}

func TestSendMessage(t *testing.T) {
	b := &botServer{}
	c := newTestClient(t, b)

	require.NoError(t, c.SendMessage(context.Background(), 42, "Hello!"))

	require.Len(t, b.calls, 1)
	assert.Equal(t, "/bot123:abc/sendMessage", b.calls[0].path)
	assert.Equal(t, "42", b.calls[0].form["chat_id"])
	assert.Equal(t, "Hello!", b.calls[0].form["text"])
}

func TestSendMessage_APIErrorIsUpstreamUnavailable(t *testing.T) {
	c := newTestClient(t, &botServer{fail: true})

	err := c.SendMessage(context.Background(), 42, "Hello!")

	assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
}

func TestSendMessage_SplitsLongText(t *testing.T) {
	b := &botServer{}
	c := newTestClient(t, b)

	require.NoError(t, c.SendMessage(context.Background(), 42, strings.Repeat("a", MaxMessageLength+10)))

	require.Len(t, b.calls, 2)
	assert.Len(t, b.calls[0].form["text"], MaxMessageLength)
	assert.Len(t, b.calls[1].form["text"], 10)
}

func TestSetWebhook(t *testing.T) {
	b := &botServer{}
	c := newTestClient(t, b)

	require.NoError(t, c.SetWebhook("https://hotel.example.com/webhook/123:abc"))

	require.Len(t, b.calls, 1)
	assert.Equal(t, "/bot123:abc/setWebhook", b.calls[0].path)
	assert.Equal(t, "https://hotel.example.com/webhook/123:abc", b.calls[0].form["url"])
}

type setterFunc func(string) error

func (f setterFunc) SetWebhook(u string) error { return f(u) }

func TestRegisterWebhook(t *testing.T) {
	var got string
	RegisterWebhook(context.Background(), setterFunc(func(u string) error {
		got = u
		return errs.New("unreachable")
	}), "https://hotel.example.com/webhook/t", time.Millisecond)
	assert.Equal(t, "https://hotel.example.com/webhook/t", got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	RegisterWebhook(ctx, setterFunc(func(string) error { called = true; return nil }), "x", time.Hour)
	assert.False(t, called)
}

func TestSplitMessage(t *testing.T) {
	text := strings.Repeat("x", 8) + "\n" + strings.Repeat("y", 8)

	assert.Equal(t, []string{text}, splitMessage(text, 20))
	assert.Equal(t, []string{strings.Repeat("x", 8) + "\n", strings.Repeat("y", 8)}, splitMessage(text, 12))
	assert.Equal(t, []string{"ééé", "éé"}, splitMessage("ééééé", 3))
}
