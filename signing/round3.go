// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/crypto/mta"
	"github.com/tss-gg18/signer/tss"
)

// Round3 runs the Bob side of the MtA protocol, twice per peer: once with
// gammaI (feeding into this party's delta share) and once with wI bound to
// bigWi (feeding into this party's sigma share). peerR2 is what every other
// quorum member sent this party in round2.
func (c *Context) Round3(peerR2 map[int]*Round2Message) (map[int]*Round3Message, error) {
	ec := tss.EC()
	myIdx := c.Params.PartyNumInt - 1

	c.peerCA = make(map[int]*big.Int, c.quorumSize()-1)
	c.peerAliceProof = make(map[int]*mta.RangeProofAlice, c.quorumSize()-1)
	c.peerBetaGamma = make(map[int]*big.Int, c.quorumSize()-1)
	c.peerBetaW = make(map[int]*big.Int, c.quorumSize()-1)

	out := make(map[int]*Round3Message, c.quorumSize()-1)

	for _, partyNum := range c.Params.Quorum {
		if partyNum == c.Params.PartyNumInt {
			continue
		}
		msg, ok := peerR2[partyNum]
		if !ok {
			return nil, newRoundError(errors.Errorf("missing round2 message from party %d", partyNum), 3, partyNum)
		}
		c.peerCA[partyNum] = msg.CA
		c.peerAliceProof[partyNum] = msg.Proof

		// NTildeA/h1A/h2A name the Alice (peer) side's own modulus, used by
		// Bob's ProveBob to prove into the party that will later run
		// AliceEnd; NTildeB/h1B/h2B name this party's (Bob's) own modulus,
		// used to verify Alice's incoming range proof. See share_protocol_test.go.
		idx := partyNum - 1
		betaGamma, cBGamma, _, piBGamma, err := mta.BobMid(ec, c.save.PeerPaillierPk[idx], msg.Proof, c.gammaI, msg.CA,
			c.save.PeerNTilde[idx], c.save.PeerH1[idx], c.save.PeerH2[idx],
			c.save.PeerNTilde[myIdx], c.save.PeerH1[myIdx], c.save.PeerH2[myIdx])
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "MtA BobMid (gamma) failed for peer %d", partyNum), 3, partyNum)
		}

		betaW, cBW, _, piBW, err := mta.BobMidWC(ec, c.save.PeerPaillierPk[idx], msg.Proof, c.wI, msg.CA,
			c.save.PeerNTilde[idx], c.save.PeerH1[idx], c.save.PeerH2[idx],
			c.save.PeerNTilde[myIdx], c.save.PeerH1[myIdx], c.save.PeerH2[myIdx], c.bigWi)
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "MtA BobMidWC (w) failed for peer %d", partyNum), 3, partyNum)
		}

		c.peerBetaGamma[partyNum] = betaGamma
		c.peerBetaW[partyNum] = betaW

		out[partyNum] = &Round3Message{
			CBGamma:  cBGamma,
			PiBGamma: piBGamma,
			CBW:      cBW,
			PiBW:     piBW,
		}
	}
	return out, nil
}
