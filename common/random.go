// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

const (
	mustGetRandomIntMaxBits = 5000
	primeTestN              = 30
)

// MustGetRandomInt panics if it is unable to gather entropy from `rand.Reader` or when `bits` is <= 0
func MustGetRandomInt(bits int) *big.Int {
	if bits <= 0 || mustGetRandomIntMaxBits < bits {
		panic(fmt.Errorf("MustGetRandomInt: bits should be positive, non-zero and less than %d", mustGetRandomIntMaxBits))
	}
	max := new(big.Int).Sub(new(big.Int).Exp(two, big.NewInt(int64(bits)), nil), one)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in MustGetRandomInt!"))
	}
	return n
}

func GetRandomPositiveInt(lessThan *big.Int) *big.Int {
	if lessThan == nil || zero.Cmp(lessThan) != -1 {
		return nil
	}
	var try *big.Int
	for {
		try = MustGetRandomInt(lessThan.BitLen())
		if try.Cmp(lessThan) < 0 && try.Cmp(zero) >= 0 {
			break
		}
	}
	return try
}

func GetRandomPrimeInt(bits int) *big.Int {
	if bits <= 0 {
		return nil
	}
	try, err := rand.Prime(rand.Reader, bits)
	if err != nil || try.Cmp(zero) == 0 {
		for {
			try = MustGetRandomInt(bits)
			if try.ProbablyPrime(primeTestN) {
				break
			}
		}
	}
	return try
}

// GetRandomPositiveRelativelyPrimeInt returns a random element of Z/nZ that has a multiplicative inverse.
func GetRandomPositiveRelativelyPrimeInt(n *big.Int) *big.Int {
	if n == nil || zero.Cmp(n) != -1 {
		return nil
	}
	var try *big.Int
	for {
		try = MustGetRandomInt(n.BitLen())
		if IsNumberInMultiplicativeGroup(n, try) {
			break
		}
	}
	return try
}

func IsNumberInMultiplicativeGroup(n, v *big.Int) bool {
	if n == nil || v == nil || zero.Cmp(n) != -1 {
		return false
	}
	gcd := big.NewInt(0)
	return v.Cmp(n) < 0 && v.Cmp(one) >= 0 &&
		gcd.GCD(nil, nil, v, n).Cmp(one) == 0
}

// GetRandomGeneratorOfTheQuadraticResidue returns a random generator of RQn with high probability.
// THIS METHOD ONLY WORKS IF N IS THE PRODUCT OF TWO SAFE PRIMES!
// https://github.com/didiercrunch/paillier/blob/d03e8850a8e4c53d04e8016a2ce8762af3278b71/utils.go#L39
func GetRandomGeneratorOfTheQuadraticResidue(n *big.Int) *big.Int {
	r := GetRandomPositiveRelativelyPrimeInt(n)
	return new(big.Int).Mod(new(big.Int).Mul(r, r), n)
}

// SafePrime represents p = 2q + 1 where both p and q are prime.
type SafePrime struct {
	q, p *big.Int
}

func (sp *SafePrime) Prime() *big.Int     { return sp.q }
func (sp *SafePrime) SafePrime() *big.Int { return sp.p }

func trySafePrime(q *big.Int) (*SafePrime, bool) {
	if !q.ProbablyPrime(primeTestN) {
		return nil, false
	}
	p := new(big.Int).Add(new(big.Int).Mul(q, two), one)
	if !p.ProbablyPrime(primeTestN) {
		return nil, false
	}
	return &SafePrime{q: q, p: p}, true
}

// GetRandomSafePrimesConcurrent generates `num` distinct safe primes of the
// given bit length using `concurrency` worker goroutines, stopping early if
// ctx is cancelled. Grounded on the teacher library's safe-prime generator
// used by Paillier key generation (KS-BTL-F-03: use two safe primes for P, Q).
func GetRandomSafePrimesConcurrent(ctx context.Context, bits, num, concurrency int) ([]*SafePrime, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	results := make(chan *SafePrime)
	done := make(chan struct{})
	defer close(done)
	for w := 0; w < concurrency; w++ {
		go func() {
			for {
				select {
				case <-done:
					return
				case <-ctx.Done():
					return
				default:
				}
				q := GetRandomPrimeInt(bits - 1)
				if sp, ok := trySafePrime(q); ok {
					select {
					case results <- sp:
					case <-done:
						return
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
	out := make([]*SafePrime, 0, num)
	for len(out) < num {
		select {
		case sp := <-results:
			out = append(out, sp)
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return out, nil
}
