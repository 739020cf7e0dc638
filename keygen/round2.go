// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package keygen

import (
	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/tss"
)

// Round2 computes this party's Shamir shares of ui and broadcasts the
// de-commitment of uiG alongside the public VSS commitment vector. Shares
// themselves are withheld until round 3, once every party's point has been
// revealed and a pairwise AES key can be derived for each peer.
func (c *Context) Round2() (*Round2Result, error) {
	if c.ui == nil {
		return nil, newRoundError(errors.New("round2 called before round1"), 2, 0)
	}
	ids := partyIndexes(c.Params.ShareCount)

	vs, shares, err := vssCreate(tss.EC(), c.Params.Threshold, c.ui, ids)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "vss share creation failed"), 2, 0)
	}
	c.vs = vs
	c.shares = shares

	return &Round2Result{Decommitment: c.decomUiG.D, Vs: vs}, nil
}
