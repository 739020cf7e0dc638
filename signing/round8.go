// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

import (
	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/crypto"
	cmt "github.com/tss-gg18/signer/crypto/commitments"
	"github.com/tss-gg18/signer/tss"
)

// Round8 verifies every peer's round6/round7 phase5 commitment and proofs,
// accumulates their V points, and commits to this party's own (lI, rhoI)
// opening. The opening is committed again here, rather than revealed
// directly, so that no party can choose its lI after seeing anyone else's -
// a party that waited could otherwise bias the consistency check performed
// once every lI is finally revealed in round9.
func (c *Context) Round8(peerR6 map[int]*Round6Result, peerR7 map[int]*Round7Result) (*Round8Result, error) {
	ec := tss.EC()
	g := gGen()

	c.peerV = make(map[int]*crypto.ECPoint, c.quorumSize()-1)
	c.peerA = make(map[int]*crypto.ECPoint, c.quorumSize()-1)
	c.peerB = make(map[int]*crypto.ECPoint, c.quorumSize()-1)

	for _, partyNum := range c.Params.Quorum {
		if partyNum == c.Params.PartyNumInt {
			continue
		}
		r6, ok := peerR6[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round6 broadcast from party %d", partyNum), 8, partyNum)
		}
		r7, ok := peerR7[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round7 broadcast from party %d", partyNum), 8, partyNum)
		}
		decom := &cmt.HashCommitDecommit{C: r6.Com, D: r7.Decommitment}
		okDecom, err := decom.Verify()
		if err != nil || !okDecom || len(r7.Decommitment) != 6 {
			return nil, newRoundError(errors.Errorf("bad phase5 commitment from party %d", partyNum), 8, partyNum)
		}
		unflat, err := cmt.UnFlattenPointsAfterDecommit(r7.Decommitment)
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "failed to unpack phase5 commitment from party %d", partyNum), 8, partyNum)
		}
		vJ, err := crypto.NewECPoint(ec, unflat[0][0], unflat[0][1])
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "party %d sent an invalid V point", partyNum), 8, partyNum)
		}
		aJ, err := crypto.NewECPoint(ec, unflat[1][0], unflat[1][1])
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "party %d sent an invalid A point", partyNum), 8, partyNum)
		}
		bJ, err := crypto.NewECPoint(ec, unflat[2][0], unflat[2][1])
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "party %d sent an invalid B point", partyNum), 8, partyNum)
		}

		if !r7.ZKVProof.Verify(vJ, c.bigR) {
			return nil, newRoundError(errors.Errorf("bad phase5 V proof from party %d", partyNum), 8, partyNum)
		}
		if !r7.HelGamalProof.Verify(g, c.hGen, aJ, bJ) {
			return nil, newRoundError(errors.Errorf("bad phase5 homoElGamal proof from party %d", partyNum), 8, partyNum)
		}

		c.peerV[partyNum] = vJ
		c.peerA[partyNum] = aJ
		c.peerB[partyNum] = bJ
	}

	decom, err := cmt.NewHashCommitment(c.lI, c.rhoI)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "phase5 opening commitment generation failed"), 8, 0)
	}
	c.com5c = decom

	return &Round8Result{Com: decom.C}, nil
}
