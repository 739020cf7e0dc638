// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

import (
	"crypto/elliptic"
	"math/big"

	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/common"
	"github.com/tss-gg18/signer/crypto"
	cmt "github.com/tss-gg18/signer/crypto/commitments"
	"github.com/tss-gg18/signer/tss"
)

// Round10 opens every peer's round8 commitment to (l, rho), checks each
// opening against the A, B points proven in round7/round8, and only then
// performs the final phase5 consistency check: that sum(V_j) - sum(l_j)*G
// equals m*G + r*Y, which holds if and only if every party's signature share
// was computed against the same R and the same message. If the check
// passes, it sums every sI into the final (r, s) signature, normalizes s to
// the curve's lower half, and recovers the public key recovery id.
func (c *Context) Round10(peerR8 map[int]*Round8Result, peerR9 map[int]*Round9Result) (*Signature, error) {
	ec := tss.EC()
	q := ec.Params().N
	modQ := common.ModInt(q)

	vSum := c.vI
	l := new(big.Int).Set(c.lI)
	s := new(big.Int).Set(c.sI)

	for _, partyNum := range c.Params.Quorum {
		if partyNum == c.Params.PartyNumInt {
			continue
		}
		r8, ok := peerR8[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round8 broadcast from party %d", partyNum), 10, partyNum)
		}
		r9, ok := peerR9[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round9 broadcast from party %d", partyNum), 10, partyNum)
		}
		decom := &cmt.HashCommitDecommit{C: r8.Com, D: r9.Decommitment}
		okDecom, err := decom.Verify()
		if err != nil || !okDecom || len(r9.Decommitment) != 3 {
			return nil, newRoundError(errors.Errorf("bad phase5 opening commitment from party %d", partyNum), 10, partyNum)
		}
		lJ, rhoJ := r9.Decommitment[1], r9.Decommitment[2]

		expectA := crypto.ScalarBaseMult(ec, rhoJ)
		if !expectA.Equals(c.peerA[partyNum]) {
			return nil, newRoundError(errors.Errorf("party %d's revealed rho does not match its committed A", partyNum), 10, partyNum)
		}
		rhoH := c.hGen.ScalarMult(rhoJ)
		lG := crypto.ScalarBaseMult(ec, lJ)
		expectB, err := rhoH.Add(lG)
		if err != nil || !expectB.Equals(c.peerB[partyNum]) {
			return nil, newRoundError(errors.Errorf("party %d's revealed l does not match its committed B", partyNum), 10, partyNum)
		}

		vJ, ok := c.peerV[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing phase5 V from party %d", partyNum), 10, partyNum)
		}
		vSum, err = vSum.Add(vJ)
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "failed to accumulate V from party %d", partyNum), 10, partyNum)
		}
		l = modQ.Add(l, lJ)
		s = modQ.Add(s, r9.SI)
	}

	lG := crypto.ScalarBaseMult(ec, l)
	lhs, err := vSum.Sub(lG)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to subtract L*G from V sum"), 10, 0)
	}

	r := new(big.Int).Mod(c.bigR.X(), q)
	mG := crypto.ScalarBaseMult(ec, c.message)
	rY := c.save.Y.ScalarMult(r)
	rhs, err := mG.Add(rY)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to form m*G + r*Y"), 10, 0)
	}
	if !lhs.Equals(rhs) {
		return nil, newRoundError(errors.New("phase5 consistency check failed: quorum signature shares do not agree"), 10, 0)
	}

	recovery := recoveryID(ec, c.bigR)
	if s.Cmp(new(big.Int).Rsh(q, 1)) == 1 {
		s = new(big.Int).Sub(q, s)
		recovery ^= 1
	}

	return &Signature{R: r, S: s, Recovery: recovery}, nil
}

func recoveryID(ec elliptic.Curve, R *crypto.ECPoint) byte {
	var recid byte
	if new(big.Int).And(R.Y(), big.NewInt(1)).Sign() != 0 {
		recid |= 1
	}
	if R.X().Cmp(ec.Params().N) >= 0 {
		recid |= 2
	}
	return recid
}
