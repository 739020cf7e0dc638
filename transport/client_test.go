package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer is a minimal in-memory stand-in for the signaling server's
// /get and /set routes, enough to exercise Client's poll/broadcast logic.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	store := make(map[string]string)

	mux := http.NewServeMux()
	mux.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
		var e entry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		mu.Lock()
		store[e.Key] = e.Value
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(struct{}{})
	})
	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		var idx index
		require.NoError(t, json.NewDecoder(r.Body).Decode(&idx))
		mu.Lock()
		v, ok := store[idx.Key]
		mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(entry{Key: idx.Key, Value: v})
	})
	return httptest.NewServer(mux)
}

func TestBroadcastAndPollForBroadcasts(t *testing.T) {
	srv := fakeServer(t)
	defer srv.Close()

	c1 := NewClient(srv.URL, "tok")
	c2 := NewClient(srv.URL, "tok")
	c3 := NewClient(srv.URL, "tok")

	ctx := context.Background()
	require.NoError(t, c2.Broadcast(ctx, 2, "round1", "payload-2", "uuid"))
	require.NoError(t, c3.Broadcast(ctx, 3, "round1", "payload-3", "uuid"))

	got, err := c1.PollForBroadcasts(ctx, 1, 3, "round1", "uuid", 5*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []string{"payload-2", "payload-3"}, got)
}

func TestSendP2PAndPollForP2P(t *testing.T) {
	srv := fakeServer(t)
	defer srv.Close()

	c1 := NewClient(srv.URL, "tok")
	c2 := NewClient(srv.URL, "tok")

	ctx := context.Background()
	require.NoError(t, c2.SendP2P(ctx, 2, 1, "round2", "secret-for-1", "uuid"))

	got, err := c1.PollForP2P(ctx, 1, 2, "round2", "uuid", 5*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []string{"secret-for-1"}, got)
}

func TestPollForBroadcastsCancellation(t *testing.T) {
	srv := fakeServer(t)
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.PollForBroadcasts(ctx, 1, 2, "round-never-written", "uuid", 5*time.Millisecond)
	require.Error(t, err)
}
