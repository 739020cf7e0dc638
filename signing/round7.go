// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

import (
	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/crypto/helgamal"
	"github.com/tss-gg18/signer/crypto/schnorr"
)

// Round7 opens this party's round6 commitment and proves, in zero knowledge,
// that V = R^sI * G^lI (schnorr.ZKVProof) and that A = G^rhoI, B = H^rhoI *
// G^lI (helgamal.Proof) for the same lI in both statements. This lets every
// other party verify the commitment is well-formed without learning sI or lI.
func (c *Context) Round7() (*Round7Result, error) {
	zkvProof, err := schnorr.NewZKVProof(c.vI, c.bigR, c.sI, c.lI)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to build phase5 V proof"), 7, 0)
	}
	helgamalProof, err := helgamal.NewProof(gGen(), c.hGen, c.aI, c.bI, c.lI, c.rhoI)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to build phase5 homoElGamal proof"), 7, 0)
	}

	return &Round7Result{
		Decommitment:  c.com5a.D,
		ZKVProof:      zkvProof,
		HelGamalProof: helgamalProof,
	}, nil
}
