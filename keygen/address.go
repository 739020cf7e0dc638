// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package keygen

import (
	"fmt"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/tss-gg18/signer/crypto"
)

// AddressFromPublicKey derives the Ethereum-style address of a combined
// ECDSA public key: Keccak256 of the uncompressed point (sans the 0x04
// prefix byte), taking the low 20 bytes, hex-encoded with a 0x prefix.
func AddressFromPublicKey(y *crypto.ECPoint) string {
	byteSize := (y.ToECDSAPubKey().Curve.Params().BitSize + 7) / 8
	buf := make([]byte, 1+2*byteSize)
	buf[0] = 0x04
	copyPadded(buf[1:1+byteSize], y.X())
	copyPadded(buf[1+byteSize:], y.Y())

	hash := ethcrypto.Keccak256(buf[1:])
	return fmt.Sprintf("0x%x", hash[len(hash)-20:])
}

func copyPadded(dst []byte, v *big.Int) {
	b := v.Bytes()
	copy(dst[len(dst)-len(b):], b)
}
