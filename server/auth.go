// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// TokenChecker validates a bearer token against the external authorization
// collaborator. The core never issues or stores tokens itself; it only
// asks "is this one valid right now". Grounded on
// original_source/examples/gg18_sm_manager.rs's check_token, which posts to
// <SERVER_BASE>/internal/check_token and reads back a "result" field.
type TokenChecker struct {
	baseURL    string
	httpClient *http.Client
}

// NewTokenChecker points at the authorization service's base URL.
func NewTokenChecker(baseURL string) *TokenChecker {
	return &TokenChecker{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Check reports whether token currently authorizes requests. Any network or
// decode failure is treated as "not valid" - the same fail-closed behavior
// as the original's match on a failed response.
func (c *TokenChecker) Check(ctx context.Context, token string) bool {
	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/internal/check_token", bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	var result struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false
	}
	return result.Result == "valid"
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, reporting false if the header is absent or malformed.
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return strings.TrimPrefix(header, prefix), true
}
