// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
)

var zero = big.NewInt(0)
var one = big.NewInt(1)
var two = big.NewInt(2)

// RejectionSample implements the rejection sample logic used throughout the
// GG18 zero-knowledge proofs to derive a Fiat-Shamir challenge in [0, q).
func RejectionSample(q *big.Int, eHash *big.Int) *big.Int { // e' = eHash
	qBits := q.BitLen()
	e := firstBitsOf(qBits, eHash)
	for !(e.Cmp(q) == -1 && zero.Cmp(e) <= 0) {
		eHash = SHA512_256i(eHash)
		e = firstBitsOf(qBits, eHash)
	}
	return e
}

func firstBitsOf(bits int, v *big.Int) *big.Int {
	e := new(big.Int)
	for i := 0; i < bits; i++ {
		e.SetBit(e, i, v.Bit(i))
	}
	return e
}

func IsInInterval(b *big.Int, bound *big.Int) bool {
	return b.Cmp(bound) == -1 && b.Cmp(zero) >= 0
}

func AppendBigIntToBytesSlice(commonBytes []byte, appended *big.Int) []byte {
	resultBytes := make([]byte, len(commonBytes), len(commonBytes)+len(appended.Bytes()))
	copy(resultBytes, commonBytes)
	resultBytes = append(resultBytes, appended.Bytes()...)
	return resultBytes
}
