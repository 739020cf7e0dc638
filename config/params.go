// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package config loads the session-wide parameters (party count, threshold)
// and process-level settings (signaling address, poll delay, log level) a
// server or client binary needs at startup.
package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Params is the group's fixed (t, n): n parties total, any t+1 of which can
// sign. Grounded on original_source's Params struct, read from params.json
// next to the process; fields are strings there (parsed with
// strconv.ParseUint) rather than JSON numbers, a quirk preserved here so the
// same params.json the original tooling writes still loads unchanged.
type Params struct {
	Parties   int
	Threshold int
}

type wireParams struct {
	Parties   string `json:"parties"`
	Threshold string `json:"threshold"`
}

// LoadParams reads and parses a params.json file at path.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read params, make sure the config file is present")
	}

	var wp wireParams
	if err := json.Unmarshal(data, &wp); err != nil {
		return nil, errors.Wrap(err, "failed to parse params.json")
	}

	parties, err := strconv.ParseUint(wp.Parties, 10, 16)
	if err != nil {
		return nil, errors.Wrap(err, "invalid parties value in params.json")
	}
	threshold, err := strconv.ParseUint(wp.Threshold, 10, 16)
	if err != nil {
		return nil, errors.Wrap(err, "invalid threshold value in params.json")
	}

	return &Params{Parties: int(parties), Threshold: int(threshold)}, nil
}
