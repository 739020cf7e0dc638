// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package transport implements the client side of the signaling server
// protocol every round of keygen and signing drives its messages through:
// broadcast/p2p writes via /set, and blocking polls for peer writes via /get.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/common"
)

// Client is a signaling-server client bound to one bearer token, reused
// across every round of a single party's keygen or signing session.
type Client struct {
	addr       string
	token      string
	httpClient *http.Client
}

// NewClient builds a Client against the signaling server at addr,
// authenticating every request with token.
func NewClient(addr, token string) *Client {
	return &Client{
		addr:  addr,
		token: token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// PartySignup is the response to a signup request: this party's assigned
// 1-indexed position and the session UUID shared by the whole group.
type PartySignup struct {
	Number int    `json:"number"`
	UUID   string `json:"uuid"`
}

type taskRequest struct {
	TaskID string `json:"task_id"`
}

type entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type index struct {
	Key string `json:"key"`
}

// SignupKeygen registers this party for a keygen session bound to taskID.
func (c *Client) SignupKeygen(ctx context.Context, taskID string) (*PartySignup, error) {
	var su PartySignup
	if err := c.postJSON(ctx, "/signupkeygen", taskRequest{TaskID: taskID}, &su); err != nil {
		return nil, errors.Wrap(err, "signup_keygen failed")
	}
	return &su, nil
}

// SignupSign registers this party for a signing session bound to taskID.
func (c *Client) SignupSign(ctx context.Context, taskID string) (*PartySignup, error) {
	var su PartySignup
	if err := c.postJSON(ctx, "/signupsign", taskRequest{TaskID: taskID}, &su); err != nil {
		return nil, errors.Wrap(err, "signup_sign failed")
	}
	return &su, nil
}

// Broadcast publishes payload under the well-known key for (round, party,
// uuid), visible to every other party polling that round.
func (c *Client) Broadcast(ctx context.Context, party int, round, payload, uuid string) error {
	key := broadcastKey(round, party, uuid)
	return c.set(ctx, key, payload)
}

// SendP2P publishes payload under the well-known key for a single (from, to)
// pair in round, visible only to a poller asking for messages addressed to it.
func (c *Client) SendP2P(ctx context.Context, from, to int, round, payload, uuid string) error {
	key := p2pKey(round, from, to, uuid)
	return c.set(ctx, key, payload)
}

// PollForBroadcasts blocks until every party in [1, count] other than self
// has broadcast round, then returns their payloads in ascending party order.
// It retries on a fixed delay and only returns early via ctx cancellation.
func (c *Client) PollForBroadcasts(ctx context.Context, self, count int, round, uuid string, delay time.Duration) ([]string, error) {
	out := make([]string, 0, count-1)
	for party := 1; party <= count; party++ {
		if party == self {
			continue
		}
		val, err := c.pollOne(ctx, broadcastKey(round, party, uuid), delay)
		if err != nil {
			return nil, errors.Wrapf(err, "polling broadcast round %q from party %d", round, party)
		}
		out = append(out, val)
	}
	return out, nil
}

// PollForP2P is PollForBroadcasts's p2p counterpart: it waits for every
// party other than self to have sent self a message in round.
func (c *Client) PollForP2P(ctx context.Context, self, count int, round, uuid string, delay time.Duration) ([]string, error) {
	out := make([]string, 0, count-1)
	for party := 1; party <= count; party++ {
		if party == self {
			continue
		}
		val, err := c.pollOne(ctx, p2pKey(round, party, self, uuid), delay)
		if err != nil {
			return nil, errors.Wrapf(err, "polling p2p round %q from party %d", round, party)
		}
		out = append(out, val)
	}
	return out, nil
}

func broadcastKey(round string, party int, uuid string) string {
	return fmt.Sprintf("%s-%d-%s", round, party, uuid)
}

func p2pKey(round string, from, to int, uuid string) string {
	return fmt.Sprintf("%s-%d-%d-%s", round, from, to, uuid)
}

func (c *Client) set(ctx context.Context, key, value string) error {
	var result struct{}
	return c.postJSON(ctx, "/set", entry{Key: key, Value: value}, &result)
}

// pollOne retries a single /get lookup on a fixed interval until the key is
// present or ctx is done. A present-but-error server response (the key not
// yet written) is treated as "keep retrying", matching the original
// unbounded-retry poll loop; only ctx cancellation can end the wait early.
func (c *Client) pollOne(ctx context.Context, key string, delay time.Duration) (string, error) {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		var e entry
		if err := c.postJSON(ctx, "/get", index{Key: key}, &e); err == nil {
			return e.Value, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.addr+path, bytes.NewReader(buf))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Accept", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		common.Logger.Warnf("transport: %s returned status %d", path, resp.StatusCode)
		return errors.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}
	return nil
}
