// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package signing

import (
	"math/big"

	"github.com/tss-gg18/signer/crypto"
	cmt "github.com/tss-gg18/signer/crypto/commitments"
	"github.com/tss-gg18/signer/crypto/helgamal"
	"github.com/tss-gg18/signer/crypto/mta"
	"github.com/tss-gg18/signer/crypto/schnorr"
	"github.com/tss-gg18/signer/keygen"
)

// Params describes the fixed parameters of a signing session: the quorum of
// t+1 parties taking part, agreed with the signaling server at signup time.
type Params struct {
	PartyNumInt int   // this party's original keygen party number; must be an element of Quorum
	Quorum      []int // original keygen party numbers of every quorum member, len == threshold+1
	UUID        string
}

// Context threads state from one signing round to the next, mirroring
// keygen.Context's typed-per-round-result design: each round consumes the
// previous round's typed result plus whatever was collected from peers over
// the transport, and returns the next typed result.
type Context struct {
	Params Params
	save   *keygen.SaveData

	quorumBig []*big.Int // big.Int form of Params.Quorum, used as VSS/Lagrange x-coordinates
	message   *big.Int   // the hash of the message being signed

	hGen *crypto.ECPoint // second generator of unknown discrete log, for phase 5 HomoElGamal commitments

	wI        *big.Int        // this party's quorum-scaled additive key share: lambda_i(S) * skShare
	bigWi     *crypto.ECPoint // public commitment to wI, bound into the w MtA range proof
	gammaI    *big.Int
	kI        *big.Int
	gGammaI   *crypto.ECPoint
	comGammaG *cmt.HashCommitDecommit

	peerCA         map[int]*big.Int // peer's Alice ciphertext of their k, targeted at my NTilde
	peerAliceProof map[int]*mta.RangeProofAlice

	peerBetaGamma  map[int]*big.Int // my Bob-side share of k_peer * gammaI
	peerBetaW      map[int]*big.Int // my Bob-side share of k_peer * wI
	peerAlphaGamma map[int]*big.Int // my Alice-side share of kI * gamma_peer
	peerAlphaW     map[int]*big.Int // my Alice-side share of kI * w_peer

	deltaI   *big.Int
	sigmaI   *big.Int
	deltaInv *big.Int

	peerGGamma map[int]*crypto.ECPoint // decommitted g^gamma_peer
	bigR       *crypto.ECPoint         // R = (sum of g^gamma_j) ^ deltaInv
	sI         *big.Int                // this party's signature share: kI*m + r*sigmaI

	lI, rhoI   *big.Int
	vI, aI, bI *crypto.ECPoint
	com5a      *cmt.HashCommitDecommit
	com5c      *cmt.HashCommitDecommit

	peerV map[int]*crypto.ECPoint
	peerA map[int]*crypto.ECPoint
	peerB map[int]*crypto.ECPoint
}

// NewContext starts a signing session for this party over an established key.
func NewContext(params Params, save *keygen.SaveData, messageHash []byte) *Context {
	quorumBig := make([]*big.Int, len(params.Quorum))
	for i, p := range params.Quorum {
		quorumBig[i] = big.NewInt(int64(p))
	}
	return &Context{
		Params:    params,
		save:      save,
		quorumBig: quorumBig,
		message:   new(big.Int).SetBytes(messageHash),
	}
}

// Signature is the final assembled signature over the message hash passed to
// NewContext, recoverable against the key's combined public key Y.
type Signature struct {
	R        *big.Int
	S        *big.Int
	Recovery byte
}

// Round1Result is broadcast at the end of round 1: a commitment to this
// party's per-signature point g^gammaI.
type Round1Result struct {
	Com *big.Int
}

// Round2Message is this party's Alice-side MtA opening of kI, addressed to
// one peer and bound to that peer's Ring-Pedersen parameters.
type Round2Message struct {
	CA    *big.Int
	Proof *mta.RangeProofAlice
}

// Round3Message is this party's Bob-side MtA response to one peer's
// Round2Message, carrying both the gamma and w MtA replies since both
// reuse the same Alice-side ciphertext.
type Round3Message struct {
	CBGamma  *big.Int
	PiBGamma *mta.ProofBob
	CBW      *big.Int
	PiBW     *mta.ProofBobWC
}

// Round4Result is broadcast at the end of round 4: this party's share of the
// MtA-reconstructed delta = gamma * k.
type Round4Result struct {
	DeltaI *big.Int
}

// Round5Result is broadcast at the end of round 5: the decommitment of this
// party's round 1 gamma commitment.
type Round5Result struct {
	Decommitment []*big.Int // [r, gGammaI.X, gGammaI.Y]
}

// Round6Result is broadcast at the end of round 6: a commitment to this
// party's phase 5 HomoElGamal opening (V, A, B).
type Round6Result struct {
	Com *big.Int
}

// Round7Result is broadcast at the end of round 7: the decommitment of the
// round 6 commitment plus the ZK proofs binding (V, A, B) together.
type Round7Result struct {
	Decommitment  []*big.Int // [r, V.X, V.Y, A.X, A.Y, B.X, B.Y]
	ZKVProof      *schnorr.ZKVProof
	HelGamalProof *helgamal.Proof
}

// Round8Result is broadcast at the end of round 8: a commitment to this
// party's (l, rho) opening of its phase 5 commitment.
type Round8Result struct {
	Com *big.Int
}

// Round9Result is broadcast at the end of round 9: the decommitment of the
// round 8 commitment, plus this party's signature share, released once every
// quorum member's phase 5 consistency check has passed.
type Round9Result struct {
	Decommitment []*big.Int // [r, l, rho]
	SI           *big.Int
}

func (c *Context) quorumSize() int {
	return len(c.Params.Quorum)
}
