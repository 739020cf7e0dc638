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
	"github.com/tss-gg18/signer/crypto/mta"
	"github.com/tss-gg18/signer/tss"
)

// Round4 decrypts every peer's Bob-side MtA reply from round3 (the Alice
// side, since this party encrypted kI in round2), and combines the shares
// into its delta = gammaI*kI and sigma = wI*kI additive shares. deltaI is
// broadcast; sigmaI stays secret until the local signature is formed.
func (c *Context) Round4(peerR3 map[int]*Round3Message) (*Round4Result, error) {
	ec := tss.EC()
	q := ec.Params().N
	modQ := common.ModInt(q)
	myIdx := c.Params.PartyNumInt - 1

	c.peerAlphaGamma = make(map[int]*big.Int, c.quorumSize()-1)
	c.peerAlphaW = make(map[int]*big.Int, c.quorumSize()-1)

	deltaI := modQ.Mul(c.gammaI, c.kI)
	sigmaI := modQ.Mul(c.wI, c.kI)

	for _, partyNum := range c.Params.Quorum {
		if partyNum == c.Params.PartyNumInt {
			continue
		}
		msg, ok := peerR3[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round3 message from party %d", partyNum), 4, partyNum)
		}

		alphaGamma, err := mta.AliceEnd(ec, c.save.PaillierPk, msg.PiBGamma,
			c.save.PeerH1[myIdx], c.save.PeerH2[myIdx], c.peerCA[partyNum], msg.CBGamma,
			c.save.PeerNTilde[myIdx], c.save.PaillierSk)
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "MtA AliceEnd (gamma) failed for peer %d", partyNum), 4, partyNum)
		}

		peerBigW, err := publicShareCommitment(c.save, partyNum)
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "failed to recompute public share commitment for peer %d", partyNum), 4, partyNum)
		}
		peerLambda := lagrangeCoefficient(q, big.NewInt(int64(partyNum)), c.quorumBig)
		peerBigWi := peerBigW.ScalarMult(peerLambda)

		alphaW, err := mta.AliceEndWC(ec, c.save.PaillierPk, msg.PiBW, peerBigWi,
			c.peerCA[partyNum], msg.CBW, c.save.PeerNTilde[myIdx], c.save.PeerH1[myIdx], c.save.PeerH2[myIdx],
			c.save.PaillierSk)
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "MtA AliceEndWC (w) failed for peer %d", partyNum), 4, partyNum)
		}

		c.peerAlphaGamma[partyNum] = alphaGamma
		c.peerAlphaW[partyNum] = alphaW

		deltaI = modQ.Add(deltaI, alphaGamma)
		deltaI = modQ.Add(deltaI, c.peerBetaGamma[partyNum])
		sigmaI = modQ.Add(sigmaI, alphaW)
		sigmaI = modQ.Add(sigmaI, c.peerBetaW[partyNum])
	}

	c.deltaI = deltaI
	c.sigmaI = sigmaI

	return &Round4Result{DeltaI: deltaI}, nil
}
