// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

import (
	"github.com/pkg/errors"

	"github.com/tss-gg18/signer/crypto/mta"
	"github.com/tss-gg18/signer/tss"
)

// Round2 runs the Alice side of the MtA protocol for kI against every other
// quorum member, each bound to that peer's own Ring-Pedersen parameters
// (recorded for every original party during keygen). The resulting
// ciphertext and range proof are sent peer-to-peer, not broadcast, since the
// proof is meaningless to anyone but its addressee.
func (c *Context) Round2() (map[int]*Round2Message, error) {
	ec := tss.EC()
	out := make(map[int]*Round2Message, c.quorumSize()-1)

	for _, partyNum := range c.Params.Quorum {
		if partyNum == c.Params.PartyNumInt {
			continue
		}
		idx := partyNum - 1
		cA, pf, err := mta.AliceInit(ec, c.save.PaillierPk, c.kI,
			c.save.PeerNTilde[idx], c.save.PeerH1[idx], c.save.PeerH2[idx])
		if err != nil {
			return nil, newRoundError(errors.Wrapf(err, "MtA AliceInit failed for peer %d", partyNum), 2, partyNum)
		}
		out[partyNum] = &Round2Message{CA: cA, Proof: pf}
	}
	return out, nil
}
