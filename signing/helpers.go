// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

import (
	"math/big"

	"github.com/tss-gg18/signer/crypto"
	"github.com/tss-gg18/signer/crypto/vss"
	"github.com/tss-gg18/signer/keygen"
	"github.com/tss-gg18/signer/tss"
)

// publicShareCommitment recomputes the public commitment g^x_p to the
// original keygen additive secret share of party p (1-indexed, any member of
// the original n-party keygen, not just the quorum), from the VSS commitment
// vectors every party published during keygen. Grounded on
// crypto/vss/feldman_vss.go's EvaluateCommitment plus the fact that party p's
// additive share is the sum, across every original keygen party j, of j's
// polynomial evaluated at p.
func publicShareCommitment(save *keygen.SaveData, partyNumInt int) (*crypto.ECPoint, error) {
	ec := tss.EC()
	id := big.NewInt(int64(partyNumInt))
	var sum *crypto.ECPoint
	for _, peerVs := range save.PeerVs {
		term, err := vss.EvaluateCommitment(ec, peerVs, save.Params.Threshold, id)
		if err != nil {
			return nil, err
		}
		if sum == nil {
			sum = term
			continue
		}
		sum, err = sum.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// gGen returns the curve's base point G as a crypto.ECPoint, for use in the
// phase 5 HomoElGamal proofs alongside the secondary generator H.
func gGen() *crypto.ECPoint {
	params := tss.EC().Params()
	return crypto.NewECPointNoCurveCheck(tss.EC(), params.Gx, params.Gy)
}

func indexOfQuorum(quorum []int, partyNumInt int) int {
	for i, p := range quorum {
		if p == partyNumInt {
			return i
		}
	}
	return -1
}
