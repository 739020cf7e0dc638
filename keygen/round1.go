// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package keygen

import (
	"context"
	"math/big"

	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/common"
	"github.com/tss-gg18/signer/crypto"
	cmt "github.com/tss-gg18/signer/crypto/commitments"
	"github.com/tss-gg18/signer/crypto/paillier"
	"github.com/tss-gg18/signer/tss"
)

// PaillierModulusLen is the recommended Paillier modulus bit length (GG18Spec).
const PaillierModulusLen = 2048

// safePrimeBitLen is the bit length of each of the two safe primes composing
// the Ring-Pedersen modulus NTilde, matching the Paillier modulus's strength.
const safePrimeBitLen = PaillierModulusLen / 2

// safePrimeConcurrency bounds the worker pool used to search for safe primes.
const safePrimeConcurrency = 4

// NewContext starts a keygen session for this party.
func NewContext(params Params) *Context {
	return &Context{Params: params}
}

// Round1 samples this party's additive secret share ui, commits to its
// public point uiG, and generates a Paillier keypair with a correctness
// proof bound to uiG. The result is broadcast to every other party.
func (c *Context) Round1(ctx context.Context) (*Round1Result, error) {
	ec := tss.EC()

	ui := common.GetRandomPositiveInt(ec.Params().N)
	uiG := crypto.ScalarBaseMult(ec, ui)

	decom, err := cmt.NewHashCommitment(uiG.X(), uiG.Y())
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "commitment generation failed"), 1, 0)
	}

	sk, pk, err := paillier.GenerateKeyPair(ctx, PaillierModulusLen)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "paillier key generation failed"), 1, 0)
	}
	// k must be a value the verifier can reconstruct; uiG.X() becomes public
	// once this party's commitment is opened in round 2.
	proof := sk.Proof(uiG.X(), uiG)

	safePrimes, err := common.GetRandomSafePrimesConcurrent(ctx, safePrimeBitLen, 2, safePrimeConcurrency)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "safe prime generation failed"), 1, 0)
	}
	nTildei, h1i, h2i, err := crypto.GenerateNTildei([2]*big.Int{safePrimes[0].SafePrime(), safePrimes[1].SafePrime()})
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "ring-pedersen parameter generation failed"), 1, 0)
	}

	c.ui = ui
	c.uiG = uiG
	c.decomUiG = &Decommitment{D: decom.D}
	c.paillierSk = sk
	c.paillierPk = pk
	c.nTildei = nTildei
	c.h1i = h1i
	c.h2i = h2i

	return &Round1Result{
		Com:           decom.C,
		PaillierPk:    pk,
		PaillierProof: proof,
		NTildei:       nTildei,
		H1i:           h1i,
		H2i:           h2i,
	}, nil
}
