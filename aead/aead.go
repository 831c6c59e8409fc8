// Copyright 2020 Cloudflare, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package aead provides the authenticated-encryption ciphers HpkeContext
// seals and opens messages with. Every concrete cipher is constructed
// unkeyed and transitions to keyed exactly once via SetKey; thereafter it
// accepts any number of Encrypt/Decrypt calls. Independent instances may be
// used concurrently; a single instance is not required to be re-entrant.
package aead

import "errors"

// ErrKeyLengthMismatch is returned by SetKey when the supplied key or IV
// does not match the algorithm's declared length.
var ErrKeyLengthMismatch = errors.New("aead: key or IV length mismatch")

// ErrAuthFailure is returned by Decrypt when the tag does not verify.
var ErrAuthFailure = errors.New("aead: authentication failed")

// zeroize overwrites b with zeros in place.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// TrafficKey bundles the key and IV installed into an AEAD via SetKey.
// len(Key) must equal the AEAD's KeySize and len(IV) must equal its
// NonceSize. The key is treated as opaque secret material: once installed
// it is not read back out. The IV stays readable through Cipher.BaseIV,
// which HpkeContext uses for nonce derivation.
type TrafficKey struct {
	Key []byte
	IV  []byte
}

// Cipher is the trait-like interface every concrete AEAD implements. It is
// deliberately narrower than the stdlib cipher.AEAD interface (no variable
// nonce override on Encrypt/Decrypt beyond what the caller supplies, no
// implicit dst buffer growth semantics) so that HpkeContext can treat every
// suite's cipher identically regardless of backend.
type Cipher interface {
	// SetKey installs key material. It must be called exactly once, before
	// any Encrypt or Decrypt call, and returns ErrKeyLengthMismatch if
	// key.Key or key.IV has the wrong length for this algorithm.
	SetKey(key TrafficKey) error

	// Encrypt returns ciphertext‖tag. len(output) == len(plaintext) +
	// TagSize(). Encrypt is deterministic given (plaintext, aad, nonce)
	// and never fails for valid inputs against a keyed cipher.
	Encrypt(plaintext, aad, nonce []byte) ([]byte, error)

	// Decrypt authenticates aad and the tag appended to ciphertext, and on
	// success returns the plaintext. On tag mismatch it returns
	// ErrAuthFailure and no plaintext.
	Decrypt(ciphertext, aad, nonce []byte) ([]byte, error)

	// SetEncryptedBufferHeadroom hints that buffers returned by Encrypt
	// should reserve n bytes of writable space before the ciphertext, so a
	// caller can prepend framing without a copy. It is a layout
	// optimization only: implementations that ignore it must still return
	// a valid, correctly-sized buffer.
	SetEncryptedBufferHeadroom(n int)

	// BaseIV returns the IV installed by SetKey. HpkeContext XORs this
	// with a big-endian sequence number to derive each message's nonce;
	// the cipher itself never does this XOR.
	BaseIV() []byte

	// Destroy zeroes whatever key material this cipher retains directly
	// (the installed IV, plus the key-derived L values for OCB) and
	// releases its keyed backend.
	// The AES/ChaCha20 round-key schedule computed by crypto/aes,
	// x/crypto/chacha20poly1305 or the Yawning/aegis backend lives behind
	// an opaque cipher.Block/cipher.AEAD value; none of those packages
	// expose a way to zero it, so Destroy cannot reach it. Call Destroy
	// once a keyed cipher will no longer be used.
	Destroy()

	KeySize() int
	NonceSize() int
	TagSize() int
}
