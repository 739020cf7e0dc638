// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package keygen

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/crypto"
	"github.com/tss-gg18/signer/crypto/aead"
	cmt "github.com/tss-gg18/signer/crypto/commitments"
	"github.com/tss-gg18/signer/crypto/paillier"
	"github.com/tss-gg18/signer/crypto/vss"
	"github.com/tss-gg18/signer/tss"
)

// Round3 verifies every peer's round 1 commitment against their round 2
// decommitment, recovers their public point and Paillier proof, derives a
// pairwise AES key with each peer via scalar multiplication of their point
// by this party's own ui (Diffie-Hellman), and returns this party's VSS
// share for each peer, encrypted under that peer's key.
func (c *Context) Round3(
	peerR1 map[int]*Round1Result,
	peerR2 map[int]*Round2Result,
) (map[int]*Round3Message, error) {
	n := c.Params.ShareCount
	c.peerUiGs = make([]*crypto.ECPoint, n)
	c.peerPaillierPk = make([]*paillier.PublicKey, n)
	c.peerVs = make([]vss.Vs, n)
	c.peerAESKeys = make([][]byte, n)
	c.peerNTilde = make([]*big.Int, n)
	c.peerH1 = make([]*big.Int, n)
	c.peerH2 = make([]*big.Int, n)

	out := make(map[int]*Round3Message, n-1)

	for partyNum := 1; partyNum <= n; partyNum++ {
		idx := partyNum - 1
		if partyNum == c.Params.PartyNumInt {
			c.peerUiGs[idx] = c.uiG
			c.peerPaillierPk[idx] = c.paillierPk
			c.peerVs[idx] = c.vs
			c.peerNTilde[idx] = c.nTildei
			c.peerH1[idx] = c.h1i
			c.peerH2[idx] = c.h2i
			continue
		}
		r1, ok := peerR1[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round1 broadcast from party %d", partyNum), 3, partyNum)
		}
		r2, ok := peerR2[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round2 broadcast from party %d", partyNum), 3, partyNum)
		}
		decom := &cmt.HashCommitDecommit{C: r1.Com, D: r2.Decommitment}
		ok2, err := decom.Verify()
		if err != nil || !ok2 {
			return nil, newRoundError(errors.Errorf("bad commitment from party %d", partyNum), 3, partyNum)
		}
		if len(r2.Decommitment) != 3 {
			return nil, newRoundError(errors.Errorf("malformed decommitment from party %d", partyNum), 3, partyNum)
		}
		peerX, peerY := r2.Decommitment[1], r2.Decommitment[2]
		peerUiG, err := crypto.NewECPoint(tss.EC(), peerX, peerY)
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "party %d sent an invalid point", partyNum), 3, partyNum)
		}

		ok3, err := r1.PaillierProof.Verify(r1.PaillierPk.N, peerUiG.X(), peerUiG)
		if err != nil || !ok3 {
			return nil, newRoundError(errors.Errorf("bad paillier proof from party %d", partyNum), 3, partyNum)
		}

		c.peerUiGs[idx] = peerUiG
		c.peerPaillierPk[idx] = r1.PaillierPk
		c.peerVs[idx] = r2.Vs
		c.peerNTilde[idx] = r1.NTildei
		c.peerH1[idx] = r1.H1i
		c.peerH2[idx] = r1.H2i

		dh := peerUiG.ScalarMult(c.ui)
		key := aead.DeriveKey(dh.X(), dh.Y())
		c.peerAESKeys[idx] = key

		share := c.shares[idx]
		ct, err := aead.Encrypt(key, share.Share.Bytes())
		if err != nil {
			return nil, newRoundError(errors.Wrap(err, "share encryption failed"), 3, 0)
		}
		out[partyNum] = &Round3Message{EncryptedShare: ct}
	}

	return out, nil
}
