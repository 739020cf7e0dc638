// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package keygen

import (
	"github.com/pkg/errors"
)

// Round5 verifies every peer's Schnorr proof of knowledge of their ui
// against the point they committed to in round 1, and assembles this
// party's final save data.
func (c *Context) Round5(peerR4 map[int]*Round4Result) (*SaveData, error) {
	n := c.Params.ShareCount
	for partyNum := 1; partyNum <= n; partyNum++ {
		if partyNum == c.Params.PartyNumInt {
			continue
		}
		r4, ok := peerR4[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round4 broadcast from party %d", partyNum), 5, partyNum)
		}
		if !r4.Proof.Verify(c.peerUiGs[partyNum-1]) {
			return nil, newRoundError(errors.Errorf("invalid dlog proof from party %d", partyNum), 5, partyNum)
		}
	}

	return &SaveData{
		Params:         c.Params,
		SkShare:        c.skShare,
		Y:              c.y,
		Address:        AddressFromPublicKey(c.y),
		PaillierSk:     c.paillierSk,
		PaillierPk:     c.paillierPk,
		PeerUiGs:       c.peerUiGs,
		PeerPaillierPk: c.peerPaillierPk,
		PeerVs:         c.peerVs,
		PeerNTilde:     c.peerNTilde,
		PeerH1:         c.peerH1,
		PeerH2:         c.peerH2,
	}, nil
}
