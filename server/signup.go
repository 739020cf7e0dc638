// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package server

import (
	"context"

	"github.com/pkg/errors"
)

// ErrUnauthorized means the task service rejected this task/type/status.
var ErrUnauthorized = errors.New("task does not authorize this signup")

type taskRequest struct {
	TaskID string `json:"task_id"`
}

// SignupKeygen gates a keygen signup behind the task service, advances the
// keygen counter bound by parties, and enqueues the server-side counterparty.
// Grounded on original_source/examples/gg18_sm_manager.rs's signup_keygen.
func (s *Server) SignupKeygen(ctx context.Context, taskID, token string, parties int) (PartySignup, error) {
	task, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return PartySignup{}, errors.Wrap(err, "failed to fetch task")
	}
	if !gateKeygen(task) {
		return PartySignup{}, ErrUnauthorized
	}

	su := s.store.signupKeygen(parties)
	s.spawner.Enqueue(SpawnRequest{Script: s.counterpartyScript, TaskID: taskID, Token: token})
	return su, nil
}

// SignupSign gates a signing signup behind the task service, advances the
// signing counter bound by threshold+1, and enqueues the counterparty.
// Grounded on original_source/examples/gg18_sm_manager.rs's signup_sign.
func (s *Server) SignupSign(ctx context.Context, taskID, token string, threshold int) (PartySignup, error) {
	task, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return PartySignup{}, errors.Wrap(err, "failed to fetch task")
	}
	if !gateSign(task) {
		return PartySignup{}, ErrUnauthorized
	}

	su := s.store.signupSign(threshold + 1)
	s.spawner.Enqueue(SpawnRequest{Script: s.counterpartyScript, TaskID: taskID, Token: token})
	return su, nil
}
