// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Pairwise AEAD used to carry VSS shares between parties during keygen.
// There is no third-party AEAD wrapper among the retrieved examples, so this
// talks to crypto/aes and crypto/cipher directly, the same way the teacher
// library reaches for crypto/ecdsa and crypto/elliptic without a wrapper.
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"github.com/tss-gg18/signer/common"
)

const KeyLen = 32 // AES-256-GCM

// DeriveKey turns the coordinates of a shared point (e.g. the peer's
// committed point scalar-multiplied by this party's own secret, a
// Diffie-Hellman-style product) into a 32-byte AES-256 key.
func DeriveKey(x, y *big.Int) []byte {
	return common.SHA512_256(x.Bytes(), y.Bytes())
}

// Encrypt seals plaintext under a 32-byte key, prepending a fresh nonce to
// the returned ciphertext.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	if len(key) != KeyLen {
		return nil, errors.New("aead: key must be 32 bytes")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	if len(key) != KeyLen {
		return nil, errors.New("aead: key must be 32 bytes")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("aead: ciphertext too short")
	}
	nonce, ct := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ct, nil)
}
