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

package hpkecore

import (
	"encoding/binary"

	"github.com/cjpatton/hpkecore/aead"
	"github.com/cjpatton/hpkecore/kdf"
)

// HpkeContext is the encryption/decryption and key-export engine for one
// side of an HPKE exchange: a keyed AEAD, an exporter secret, a labeled
// HKDF and a suite id, plus the sequence counter that feeds nonce
// derivation. It exclusively owns its AEAD, HKDF, suite id and exporter
// secret — nothing here is shared across contexts. A context is not safe
// for concurrent Seal/Open calls; independent contexts may run in
// parallel without coordination.
type HpkeContext struct {
	aead           aead.Cipher
	exporterSecret []byte
	hkdf           *kdf.HKDF
	suiteID        []byte

	seq       []byte // big-endian counter, len == aead.NonceSize()
	exhausted bool
}

// NewHpkeContext constructs an HpkeContext from an already-keyed AEAD, the
// exporter secret produced by the surrounding key schedule, a labeled
// HKDF, and the HPKE suite id for this exchange (see GenerateSuiteID).
// Both peers of an exchange must be constructed with identical arguments,
// starting from seq=0, for Seal on one side to be undone by Open on the
// other.
func NewHpkeContext(keyedAEAD aead.Cipher, exporterSecret []byte, hkdf *kdf.HKDF, suiteID []byte) *HpkeContext {
	return &HpkeContext{
		aead:           keyedAEAD,
		exporterSecret: exporterSecret,
		hkdf:           hkdf,
		suiteID:        suiteID,
		seq:            make([]byte, keyedAEAD.NonceSize()),
	}
}

// Seal encrypts plaintext, authenticating aad alongside it, and advances
// the context's sequence counter. It fails with ErrSequenceOverflow if the
// context is exhausted.
func (c *HpkeContext) Seal(aad, plaintext []byte) ([]byte, error) {
	if c.exhausted {
		return nil, ErrSequenceOverflow
	}
	nonce := c.computeNonce()
	ciphertext, err := c.aead.Encrypt(plaintext, aad, nonce)
	if err != nil {
		return nil, err
	}
	if err := c.advance(); err != nil {
		return nil, err
	}
	return ciphertext, nil
}

// Open authenticates aad and the tag on ciphertext and, on success,
// returns the plaintext and advances the sequence counter. On
// authentication failure it returns ErrAuthFailure and leaves seq
// unchanged, so a caller that misparsed framing may retry with the
// correct ciphertext.
func (c *HpkeContext) Open(aad, ciphertext []byte) ([]byte, error) {
	if c.exhausted {
		return nil, ErrSequenceOverflow
	}
	nonce := c.computeNonce()
	plaintext, err := c.aead.Decrypt(ciphertext, aad, nonce)
	if err != nil {
		return nil, ErrAuthFailure
	}
	if err := c.advance(); err != nil {
		return nil, err
	}
	return plaintext, nil
}

// computeNonce XORs the big-endian nonce-length representation of seq
// with the AEAD's installed IV. Both peers, starting from seq=0, thus
// produce the same sequence of distinct nonces. The nonce length is
// whatever the AEAD declares (12 bytes for GCM/ChaCha20-Poly1305/OCB, 16
// or 32 for AEGIS), never a hardcoded constant.
func (c *HpkeContext) computeNonce() []byte {
	iv := c.aead.BaseIV()
	nonce := make([]byte, len(iv))
	for i := range nonce {
		nonce[i] = c.seq[i] ^ iv[i]
	}
	return nonce
}

// advance increments seq by one, treating it as a big-endian unsigned
// integer of len(seq) bytes, and marks the context exhausted once seq
// would wrap past 2^(8*len(seq))-1.
func (c *HpkeContext) advance() error {
	for i := len(c.seq) - 1; i >= 0; i-- {
		c.seq[i]++
		if c.seq[i] != 0 {
			return nil
		}
	}
	// Every byte wrapped to zero: seq has cycled back to zero, meaning it
	// just consumed the last available nonce. Mark the context exhausted
	// so no further Seal/Open is permitted.
	c.exhausted = true
	return nil
}

// ExportSecret derives an application secret from this context's exporter
// secret, independent of the AEAD key and of any prior Seal/Open call:
//
//	Export(exporterContext, L) = LabeledExpand(exporterSecret, "sec", exporterContext, L)
//
// with the context's suite id mixed in via the labeled HKDF, per HPKE's
// Context.Export. It fails with ErrExportTooLarge when length exceeds
// 255*HashLen.
func (c *HpkeContext) ExportSecret(exporterContext []byte, length int) ([]byte, error) {
	labeledHkdf := &labeledWithSuiteID{c.hkdf, c.suiteID}
	secret, err := labeledHkdf.LabeledExpand(c.exporterSecret, "sec", exporterContext, length)
	if err != nil {
		return nil, ErrExportTooLarge
	}
	return secret, nil
}

// Destroy zeroes this context's exporter secret and sequence counter and
// destroys its AEAD. It cannot reach the AEAD's own round-key schedule,
// which lives behind an opaque cipher.Block/cipher.AEAD value that
// crypto/aes, x/crypto/chacha20poly1305 and the Yawning/aegis backend
// never expose for zeroing; see aead.Cipher.Destroy.
func (c *HpkeContext) Destroy() {
	zeroize(c.exporterSecret)
	zeroize(c.seq)
	c.aead.Destroy()
}

// labeledWithSuiteID mixes suiteID into every labeled HKDF call, matching
// HPKE's convention of scoping each LabeledExtract/LabeledExpand to
// suite_id‖label rather than label alone.
type labeledWithSuiteID struct {
	hkdf    *kdf.HKDF
	suiteID []byte
}

// LabeledExpand computes Expand(prk, I2OSP(L,2)‖prefix‖suite_id‖label‖info,
// L), placing suite_id ahead of label per HPKE's LabeledExpand — not
// folded into info, which would put it after the label instead.
func (l *labeledWithSuiteID) LabeledExpand(prk []byte, label string, info []byte, length int) ([]byte, error) {
	labeledInfo := make([]byte, 2, 2+len(l.hkdf.Prefix)+len(l.suiteID)+len(label)+len(info))
	binary.BigEndian.PutUint16(labeledInfo, uint16(length))
	labeledInfo = append(labeledInfo, l.hkdf.Prefix...)
	labeledInfo = append(labeledInfo, l.suiteID...)
	labeledInfo = append(labeledInfo, label...)
	labeledInfo = append(labeledInfo, info...)
	return l.hkdf.Expand(prk, labeledInfo, length)
}
