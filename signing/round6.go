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
	"github.com/tss-gg18/signer/crypto"
	cmt "github.com/tss-gg18/signer/crypto/commitments"
	"github.com/tss-gg18/signer/tss"
)

// Round6 opens every peer's round1 commitment to g^gamma_j, reconstructs the
// signature nonce point R = (sum of g^gamma_j)^deltaInv, forms this party's
// signature share sI = kI*m + r*sigmaI, and commits to the HomoElGamal
// opening (V, A, B) that phase 5 will use to verify sI was formed honestly
// before it is ever released.
func (c *Context) Round6(peerR1 map[int]*Round1Result, peerR5 map[int]*Round5Result) (*Round6Result, error) {
	ec := tss.EC()
	q := ec.Params().N

	sumGGamma := c.gGammaI
	c.peerGGamma = make(map[int]*crypto.ECPoint, c.quorumSize()-1)

	for _, partyNum := range c.Params.Quorum {
		if partyNum == c.Params.PartyNumInt {
			continue
		}
		r1, ok := peerR1[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round1 broadcast from party %d", partyNum), 6, partyNum)
		}
		r5, ok := peerR5[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round5 broadcast from party %d", partyNum), 6, partyNum)
		}
		decom := &cmt.HashCommitDecommit{C: r1.Com, D: r5.Decommitment}
		okDecom, err := decom.Verify()
		if err != nil || !okDecom {
			return nil, newRoundError(errors.Errorf("bad gamma commitment from party %d", partyNum), 6, partyNum)
		}
		if len(r5.Decommitment) != 3 {
			return nil, newRoundError(errors.Errorf("malformed gamma decommitment from party %d", partyNum), 6, partyNum)
		}
		gGammaJ, err := crypto.NewECPoint(ec, r5.Decommitment[1], r5.Decommitment[2])
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "party %d sent an invalid gamma point", partyNum), 6, partyNum)
		}
		c.peerGGamma[partyNum] = gGammaJ

		sumGGamma, err = sumGGamma.Add(gGammaJ)
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "failed to accumulate gamma point from party %d", partyNum), 6, partyNum)
		}
	}

	c.bigR = sumGGamma.ScalarMult(c.deltaInv)

	modQ := common.ModInt(q)
	r := new(big.Int).Mod(c.bigR.X(), q)
	sI := modQ.Add(modQ.Mul(c.kI, c.message), modQ.Mul(r, c.sigmaI))
	c.sI = sI

	lI := common.GetRandomPositiveInt(q)
	rhoI := common.GetRandomPositiveInt(q)
	c.lI, c.rhoI = lI, rhoI

	sR := c.bigR.ScalarMult(sI)
	lG := crypto.ScalarBaseMult(ec, lI)
	vI, err := sR.Add(lG)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to form phase5 V commitment"), 6, 0)
	}
	aI := crypto.ScalarBaseMult(ec, rhoI)
	rhoH := c.hGen.ScalarMult(rhoI)
	bI, err := rhoH.Add(lG)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to form phase5 B commitment"), 6, 0)
	}
	c.vI, c.aI, c.bI = vI, aI, bI

	flat, err := cmt.FlattenPointsForCommit([][]*big.Int{{vI.X(), vI.Y()}, {aI.X(), aI.Y()}, {bI.X(), bI.Y()}})
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to flatten phase5 commitment points"), 6, 0)
	}
	decom, err := cmt.NewHashCommitment(flat...)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "phase5 commitment generation failed"), 6, 0)
	}
	c.com5a = decom

	return &Round6Result{Com: decom.C}, nil
}
