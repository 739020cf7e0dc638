// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package server

import (
	"os/exec"

	"github.com/tss-gg18/signer/common"
)

// SpawnRequest describes one out-of-process counterparty to launch after a
// successful signup.
type SpawnRequest struct {
	Script string
	TaskID string
	Token  string
}

// Spawner launches the signup-triggered counterparty process off the
// request path: a signup handler enqueues a SpawnRequest and returns
// immediately, rather than blocking on (or failing because of) the spawn.
// REDESIGN FLAG adopted from SPEC_FULL §9 "External process spawn": this
// decouples spawn failure from signup success, unlike
// original_source/examples/gg18_sm_manager.rs's inline
// `tokio::process::Command::new("node")...spawn()` on the request path.
type Spawner struct {
	requests chan SpawnRequest
}

// NewSpawner starts a Spawner with the given queue depth and launches its
// background dispatch loop.
func NewSpawner(queueDepth int) *Spawner {
	s := &Spawner{requests: make(chan SpawnRequest, queueDepth)}
	go s.run()
	return s
}

// Enqueue schedules req for launch, returning immediately. If the queue is
// full the request is dropped and logged rather than blocking the caller.
func (s *Spawner) Enqueue(req SpawnRequest) {
	select {
	case s.requests <- req:
	default:
		common.Logger.Warnf("spawner: queue full, dropping counterparty spawn for task %s", req.TaskID)
	}
}

func (s *Spawner) run() {
	for req := range s.requests {
		cmd := exec.Command("node", req.Script, req.TaskID, req.Token)
		if err := cmd.Start(); err != nil {
			common.Logger.Errorf("spawner: failed to launch counterparty for task %s: %s", req.TaskID, err)
			continue
		}
		go func(c *exec.Cmd, taskID string) {
			if err := c.Wait(); err != nil {
				common.Logger.Debugf("spawner: counterparty for task %s exited: %s", taskID, err)
			}
		}(cmd, req.TaskID)
	}
}
