// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/common"
	"github.com/tss-gg18/signer/tss"
)

// Round5 reconstructs delta = sum(delta_j) across the quorum from the
// broadcasts of round4 and inverts it; it then opens this party's round1
// commitment to g^gammaI for broadcast.
func (c *Context) Round5(peerR4 map[int]*Round4Result) (*Round5Result, error) {
	q := tss.EC().Params().N
	modQ := common.ModInt(q)

	delta := big.NewInt(0)
	for _, partyNum := range c.Params.Quorum {
		if partyNum == c.Params.PartyNumInt {
			delta = modQ.Add(delta, c.deltaI)
			continue
		}
		r4, ok := peerR4[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round4 broadcast from party %d", partyNum), 5, partyNum)
		}
		delta = modQ.Add(delta, r4.DeltaI)
	}

	deltaInv := modQ.ModInverse(delta)
	if deltaInv == nil {
		return nil, newRoundError(errors.New("delta is not invertible mod q"), 5, 0)
	}
	c.deltaInv = deltaInv

	return &Round5Result{Decommitment: c.comGammaG.D}, nil
}
