package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tss-gg18/signer/config"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	return New(&config.Params{Parties: 3, Threshold: 2}, "http://unused.invalid", "noop.js", 4)
}

func TestStoreGetSetRoundTrip(t *testing.T) {
	s := NewStore()
	s.Set("round1-1-uuid", "payload")
	v, ok := s.Get("round1-1-uuid")
	require.True(t, ok)
	assert.Equal(t, "payload", v)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestRouterBuildsWithoutPanic(t *testing.T) {
	s := newTestServer()
	require.NotNil(t, s.Router())
}

func TestHandleGetSetWithoutAuth(t *testing.T) {
	s := newTestServer()
	r := s.Router()

	body, _ := json.Marshal(Entry{Key: "k", Value: "v"})
	req := httptest.NewRequest(http.MethodPost, "/set", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStoreSignupWraparound(t *testing.T) {
	s := NewStore()
	first := s.signupKeygen(2)
	second := s.signupKeygen(2)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, first.UUID, second.UUID)

	third := s.signupKeygen(2)
	assert.Equal(t, 1, third.Number)
	assert.NotEqual(t, first.UUID, third.UUID)
}
