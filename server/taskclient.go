// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Task describes the subset of the external task-tracking service's record
// the signup gate needs. Grounded on
// original_source/examples/gg18_sm_manager.rs's Task struct.
type Task struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	CreatedBy string `json:"created_by"`
}

const (
	taskTypeKeygen  = "keygeneration"
	taskTypeSigning = "signing"
	taskStatusNew   = "created"
)

// TaskClient fetches task records from the external task-tracking service.
type TaskClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTaskClient points at the task-tracking service's base URL.
func NewTaskClient(baseURL string) *TaskClient {
	return &TaskClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// GetTask fetches the task record for taskID. Grounded on
// original_source/examples/gg18_sm_manager.rs's get_task, which GETs
// <SERVER_BASE>/internal/tasks/{taskId}.
func (c *TaskClient) GetTask(ctx context.Context, taskID string) (*Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/internal/tasks/"+taskID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build task request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "task request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("get_task: unexpected status %d", resp.StatusCode)
	}

	var task Task
	if err := decodeJSON(resp.Body, &task); err != nil {
		return nil, errors.Wrap(err, "failed to decode task response")
	}
	return &task, nil
}

// gateKeygen reports whether task authorizes a keygen signup.
func gateKeygen(task *Task) bool {
	return task.Type == taskTypeKeygen && task.Status == taskStatusNew
}

// gateSign reports whether task authorizes a signing signup.
func gateSign(task *Task) bool {
	return task.Type == taskTypeSigning && task.Status == taskStatusNew
}
