// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package server implements the signaling/message-manager service: a blind
// relay parties use to deposit and poll broadcast and point-to-point
// protocol messages, plus the signup counters that hand out party numbers
// and session UUIDs at the start of a keygen or signing session.
package server

import (
	"sync"

	"github.com/google/uuid"
)

// Entry is a single key-value pair as stored by Set and returned by Get.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Index identifies an Entry to retrieve by Get.
type Index struct {
	Key string `json:"key"`
}

// PartySignup is the result of a signup: the caller's assigned 1-indexed
// position within the session and the session's shared UUID.
type PartySignup struct {
	Number int    `json:"number"`
	UUID   string `json:"uuid"`
}

// Store is a process-wide key-value table guarded by a shared/exclusive
// lock, plus the two signup counters layered on top of it. Grounded on
// original_source/examples/gg18_sm_manager.rs's RwLock<HashMap<Key, String>>
// and its signup_keygen/signup_sign handlers; scoped to a value rather than
// package globals so independent instances can be spun up in tests.
type Store struct {
	mu   sync.RWMutex
	data map[string]string

	keygenSignup PartySignup
	signSignup   PartySignup
}

// NewStore returns an empty store with fresh signup counters at zero.
func NewStore() *Store {
	return &Store{
		data:         make(map[string]string),
		keygenSignup: PartySignup{Number: 0, UUID: uuid.New().String()},
		signSignup:   PartySignup{Number: 0, UUID: uuid.New().String()},
	}
}

// Get looks up key, reporting whether it was found.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set inserts or overwrites the value at key.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// signupKeygen advances the keygen signup counter, wrapping around to a
// fresh UUID and party 1 once bound parties have joined.
func (s *Store) signupKeygen(bound int) PartySignup {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keygenSignup.Number < bound {
		s.keygenSignup.Number++
	} else {
		s.keygenSignup = PartySignup{Number: 1, UUID: uuid.New().String()}
	}
	return s.keygenSignup
}

// signupSign advances the signing signup counter the same way, bound by
// threshold+1 rather than the full party count.
func (s *Store) signupSign(bound int) PartySignup {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.signSignup.Number < bound {
		s.signSignup.Number++
	} else {
		s.signSignup = PartySignup{Number: 1, UUID: uuid.New().String()}
	}
	return s.signSignup
}
