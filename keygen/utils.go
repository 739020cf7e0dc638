// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package keygen

import (
	"crypto/elliptic"
	"math/big"

	"github.com/tss-gg18/signer/crypto/vss"
)

// partyIndexes returns the VSS share indexes 1..n used throughout this
// package; party i's share ID is simply i+1, matching its 1-indexed
// PartyNumInt reported by the signaling server.
func partyIndexes(n int) []*big.Int {
	ids := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		ids[i] = big.NewInt(int64(i + 1))
	}
	return ids
}

func vssCreate(ec elliptic.Curve, threshold int, secret *big.Int, ids []*big.Int) (vss.Vs, vss.Shares, error) {
	return vss.Create(ec, threshold, secret, ids)
}
