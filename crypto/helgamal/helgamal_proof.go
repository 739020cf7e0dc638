// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// HomoElGamalProof proves knowledge of the opening (x, r) of a HomoElGamal-style
// commitment pair (A, B) = (G^r, H^r * G^x) without revealing x or r. It is used
// during phase 5 of signing to let a party commit to its local randomness l_i
// (blinded by rho_i) and later prove the commitment was formed honestly.
// Structurally this mirrors schnorr.ZKVProof's Fiat-Shamir shape (GG18Spec
// Fig. 17), generalized from a single commitment point to a pair.
package helgamal

import (
	"errors"
	"math/big"

	"github.com/tss-gg18/signer/common"
	"github.com/tss-gg18/signer/crypto"
	"github.com/tss-gg18/signer/tss"
)

type Proof struct {
	Alpha *crypto.ECPoint
	Beta  *crypto.ECPoint
	T, U  *big.Int
}

// NewProof constructs a proof of knowledge of (x, r) such that A = G^r and
// B = H^r * G^x, for the given base points G, H.
func NewProof(G, H, A, B *crypto.ECPoint, x, r *big.Int) (*Proof, error) {
	if G == nil || H == nil || A == nil || B == nil || x == nil || r == nil {
		return nil, errors.New("helgamal: NewProof received nil value(s)")
	}
	q := tss.EC().Params().N

	a := common.GetRandomPositiveInt(q)
	b := common.GetRandomPositiveInt(q)

	alpha := G.ScalarMult(a)
	hA := H.ScalarMult(a)
	gB := G.ScalarMult(b)
	beta, err := hA.Add(gB)
	if err != nil {
		return nil, err
	}

	var c *big.Int
	{
		cHash := common.SHA512_256i(G.X(), G.Y(), H.X(), H.Y(), A.X(), A.Y(), B.X(), B.Y(), alpha.X(), alpha.Y(), beta.X(), beta.Y())
		c = common.RejectionSample(q, cHash)
	}
	modQ := common.ModInt(q)
	t := modQ.Add(a, new(big.Int).Mul(c, r))
	u := modQ.Add(b, new(big.Int).Mul(c, x))

	return &Proof{Alpha: alpha, Beta: beta, T: t, U: u}, nil
}

func (pf *Proof) Verify(G, H, A, B *crypto.ECPoint) bool {
	if pf == nil || !pf.ValidateBasic() {
		return false
	}
	q := tss.EC().Params().N

	var c *big.Int
	{
		cHash := common.SHA512_256i(G.X(), G.Y(), H.X(), H.Y(), A.X(), A.Y(), B.X(), B.Y(), pf.Alpha.X(), pf.Alpha.Y(), pf.Beta.X(), pf.Beta.Y())
		c = common.RejectionSample(q, cHash)
	}

	// check G^t =?= Alpha * A^c
	gT := G.ScalarMult(pf.T)
	Ac := A.ScalarMult(c)
	alphaAc, err := pf.Alpha.Add(Ac)
	if err != nil || gT.X().Cmp(alphaAc.X()) != 0 || gT.Y().Cmp(alphaAc.Y()) != 0 {
		return false
	}

	// check H^t * G^u =?= Beta * B^c
	hT := H.ScalarMult(pf.T)
	gU := G.ScalarMult(pf.U)
	lhs, err := hT.Add(gU)
	if err != nil {
		return false
	}
	Bc := B.ScalarMult(c)
	rhs, err := pf.Beta.Add(Bc)
	if err != nil {
		return false
	}
	return lhs.X().Cmp(rhs.X()) == 0 && lhs.Y().Cmp(rhs.Y()) == 0
}

func (pf *Proof) ValidateBasic() bool {
	return pf != nil && pf.Alpha != nil && pf.Beta != nil && pf.T != nil && pf.U != nil
}
