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

// secondGeneratorLabel seeds the derivation of H, signing phase 5's
// HomoElGamal second generator. Any label works as long as every party
// derives the same point and nobody knows its discrete log relative to G.
const secondGeneratorLabel = "tss-gg18/signing/phase5-generator"

// Round1 derives this party's quorum-scaled additive key share wI = lambda_i
// * skShare and its public commitment bigWi, samples the per-signature
// secrets gammaI and kI, and commits to g^gammaI for broadcast.
func (c *Context) Round1() (*Round1Result, error) {
	ec := tss.EC()
	q := ec.Params().N

	myID := big.NewInt(int64(c.Params.PartyNumInt))
	lambda := lagrangeCoefficient(q, myID, c.quorumBig)
	wI := common.ModInt(q).Mul(lambda, c.save.SkShare)

	bigXi, err := publicShareCommitment(c.save, c.Params.PartyNumInt)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to recompute public share commitment"), 1, 0)
	}
	bigWi := bigXi.ScalarMult(lambda)

	hGen, err := crypto.SecondaryPoint(ec, secondGeneratorLabel)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to derive second generator"), 1, 0)
	}

	gammaI := common.GetRandomPositiveInt(q)
	kI := common.GetRandomPositiveInt(q)
	gGammaI := crypto.ScalarBaseMult(ec, gammaI)

	decom, err := cmt.NewHashCommitment(gGammaI.X(), gGammaI.Y())
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "commitment generation failed"), 1, 0)
	}

	c.wI = wI
	c.bigWi = bigWi
	c.hGen = hGen
	c.gammaI = gammaI
	c.kI = kI
	c.gGammaI = gGammaI
	c.comGammaG = decom

	return &Round1Result{Com: decom.C}, nil
}
