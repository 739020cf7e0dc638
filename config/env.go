// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package config

import (
	"os"
	"strconv"
	"time"
)

// Env is the ambient process configuration layered from environment
// variables with defaults; nothing in SPEC_FULL's Non-goals excludes having
// this, it simply never appears on the wire.
type Env struct {
	SignalingAddr      string        // GG18_SIGNALING_ADDR
	TaskServiceURL     string        // GG18_TASK_SERVICE_URL
	PollDelay          time.Duration // GG18_POLL_DELAY_MS
	LogLevel           string        // GG18_LOG_LEVEL
	ParamsPath         string        // GG18_PARAMS_PATH
	CounterpartyScript string        // GG18_COUNTERPARTY_SCRIPT
}

// LoadEnv reads process settings from the environment, falling back to
// defaults suitable for local development.
func LoadEnv() *Env {
	return &Env{
		SignalingAddr:      getEnv("GG18_SIGNALING_ADDR", "http://localhost:3000"),
		TaskServiceURL:     getEnv("GG18_TASK_SERVICE_URL", "http://localhost:3000"),
		PollDelay:          getEnvDuration("GG18_POLL_DELAY_MS", 250*time.Millisecond),
		LogLevel:           getEnv("GG18_LOG_LEVEL", "info"),
		ParamsPath:         getEnv("GG18_PARAMS_PATH", "params.json"),
		CounterpartyScript: getEnv("GG18_COUNTERPARTY_SCRIPT", "./scripts/server_side_party.js"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
