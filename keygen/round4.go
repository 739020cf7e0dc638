// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package keygen

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/crypto/aead"
	"github.com/tss-gg18/signer/crypto/schnorr"
	"github.com/tss-gg18/signer/crypto/vss"
	"github.com/tss-gg18/signer/tss"
)

// Round4 decrypts and verifies the VSS share each peer sent in round 3,
// sums them (plus this party's own share to itself) into its additive key
// share, combines every party's committed point into the joint public key
// (its address is derived later, in Round5), and broadcasts a Schnorr proof of
// knowledge of ui binding this party to its round 1 commitment.
func (c *Context) Round4(peerR3 map[int]*Round3Message) (*Round4Result, error) {
	n := c.Params.ShareCount
	ec := tss.EC()
	q := ec.Params().N

	skShare := new(big.Int)
	for partyNum := 1; partyNum <= n; partyNum++ {
		idx := partyNum - 1
		var shareVal *big.Int
		if partyNum == c.Params.PartyNumInt {
			shareVal = c.shares[c.Params.PartyNumInt-1].Share
		} else {
			msg, ok := peerR3[partyNum]
			if !ok {
				return nil, newRoundError(errors.Errorf("missing round3 share from party %d", partyNum), 4, partyNum)
			}
			pt, err := aead.Decrypt(c.peerAESKeys[idx], msg.EncryptedShare)
			if err != nil {
				return nil, newRoundError(errors.Wrapf(err, "could not decrypt share from party %d", partyNum), 4, partyNum)
			}
			shareVal = new(big.Int).SetBytes(pt)
			share := &vss.Share{Threshold: c.Params.Threshold, ID: big.NewInt(int64(c.Params.PartyNumInt)), Share: shareVal}
			if !share.Verify(ec, c.Params.Threshold, c.peerVs[idx]) {
				return nil, newRoundError(errors.Errorf("vss share from party %d failed verification", partyNum), 4, partyNum)
			}
		}
		skShare = new(big.Int).Add(skShare, shareVal)
	}
	skShare.Mod(skShare, q)
	c.skShare = skShare

	y := c.peerUiGs[0]
	for i := 1; i < n; i++ {
		var err error
		y, err = y.Add(c.peerUiGs[i])
		if err != nil {
			return nil, newRoundError(errors.Wrap(err, "combining public points failed"), 4, 0)
		}
	}
	c.y = y

	proof, err := schnorr.NewZKProof(c.ui, c.uiG)
	if err != nil {
		return nil, newRoundError(errors.Wrap(err, "failed to build proof of knowledge of ui"), 4, 0)
	}

	return &Round4Result{Proof: proof}, nil
}
