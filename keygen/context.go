// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package keygen

import (
	"math/big"

	"github.com/tss-gg18/signer/crypto"
	"github.com/tss-gg18/signer/crypto/paillier"
	"github.com/tss-gg18/signer/crypto/schnorr"
	"github.com/tss-gg18/signer/crypto/vss"
)

// Params describes the fixed parameters of a keygen session, agreed with the
// signaling server at signup time and unchanged for the session's lifetime.
type Params struct {
	PartyNumInt int // this party's 1-indexed position within the signup
	ShareCount  int // n, total parties in the group
	Threshold   int // t, shares required to reconstruct the secret
	UUID        string
}

// Context threads state from one keygen round to the next. Each round
// consumes the previous round's typed result plus whatever was collected
// from peers over the transport, and returns the next typed result. This
// replaces the original client's single context struct carrying every
// round's fields as optionals.
type Context struct {
	Params Params

	ui       *big.Int
	uiG      *crypto.ECPoint
	decomUiG *Decommitment

	paillierSk        *paillier.PrivateKey
	paillierPk        *paillier.PublicKey
	nTildei, h1i, h2i *big.Int

	vs     vss.Vs
	shares vss.Shares // indexed by recipient party position (0-based)

	peerUiGs       []*crypto.ECPoint
	peerPaillierPk []*paillier.PublicKey
	peerVs         []vss.Vs
	peerAESKeys    [][]byte // pairwise AES-256 keys, derived DH-style
	peerNTilde     []*big.Int
	peerH1         []*big.Int
	peerH2         []*big.Int

	skShare *big.Int        // this party's final additive secret share
	y       *crypto.ECPoint // combined public key Y = sum(uiG)
}

// Decommitment carries the randomness and revealed coordinates behind a
// round 1 hash commitment of this party's point uiG.
type Decommitment struct {
	D []*big.Int
}

// Round1Result is broadcast to every other party at the end of round 1.
type Round1Result struct {
	Com               *big.Int
	PaillierPk        *paillier.PublicKey
	PaillierProof     paillier.Proof
	NTildei, H1i, H2i *big.Int
}

// Round2Result is broadcast to every other party at the end of round 2: it
// reveals the commitment made in round 1 and the public VSS commitments to
// this party's polynomial.
type Round2Result struct {
	Decommitment []*big.Int // [r, uiG.X, uiG.Y]
	Vs           vss.Vs
}

// Round3Message is the pairwise (not broadcast) AES-GCM encrypted VSS share
// sent by this party to one recipient.
type Round3Message struct {
	EncryptedShare []byte
}

// Round4Result is broadcast at the end of round 4: a Schnorr proof of
// knowledge of ui, binding the party to the point it committed to in round 1.
type Round4Result struct {
	Proof *schnorr.ZKProof
}

// SaveData is this party's final keygen output: everything it needs to take
// part in future signing sessions for this key.
type SaveData struct {
	Params Params

	SkShare *big.Int
	Y       *crypto.ECPoint // combined ECDSA public key
	Address string          // Keccak-derived Ethereum-style address of Y

	PaillierSk *paillier.PrivateKey
	PaillierPk *paillier.PublicKey

	PeerUiGs       []*crypto.ECPoint // v0 for each party's VSS poly, i.e. their uiG
	PeerPaillierPk []*paillier.PublicKey
	PeerVs         []vss.Vs

	// Ring-Pedersen parameters for every party (including self), used as the
	// verifier's auxiliary modulus in MtA range proofs during signing.
	PeerNTilde []*big.Int
	PeerH1     []*big.Int
	PeerH2     []*big.Int
}
