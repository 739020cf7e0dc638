// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"crypto/elliptic"
	"fmt"
	"math/big"

	"github.com/tss-gg18/signer/common"
)

// GenerateNTildei derives the Paillier auxiliary modulus NTilde and its two
// generators h1, h2 used in the MtA range proofs, from a pair of safe primes.
func GenerateNTildei(safePrimes [2]*big.Int) (NTildei, h1i, h2i *big.Int, err error) {
	if safePrimes[0] == nil || safePrimes[1] == nil {
		return nil, nil, nil, fmt.Errorf("GenerateNTildei: needs two primes, got %v", safePrimes)
	}
	if !safePrimes[0].ProbablyPrime(30) || !safePrimes[1].ProbablyPrime(30) {
		return nil, nil, nil, fmt.Errorf("GenerateNTildei: expected two primes")
	}
	NTildei = new(big.Int).Mul(safePrimes[0], safePrimes[1])
	h1 := common.GetRandomGeneratorOfTheQuadraticResidue(NTildei)
	h2 := common.GetRandomGeneratorOfTheQuadraticResidue(NTildei)
	return NTildei, h1, h2, nil
}

// SecondaryPoint derives a point of unknown discrete logarithm relative to
// the curve's base point G, by repeated hashing of a label until a valid
// curve x-coordinate is found. Used as the second generator in the
// HomoElGamal commitments of signing phase 5.
func SecondaryPoint(curve elliptic.Curve, label string) (*ECPoint, error) {
	seed := common.SHA512_256([]byte(label))
	for i := 0; i < 1000; i++ {
		if pt, err := DecompressPoint(curve, new(big.Int).SetBytes(seed), 0x2); err == nil {
			return pt, nil
		}
		seed = common.SHA512_256(seed)
	}
	return nil, fmt.Errorf("SecondaryPoint: could not find a valid point after 1000 attempts")
}
