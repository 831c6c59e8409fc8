package kdf

import (
	"crypto/hmac"
	"encoding/binary"
)

// tls13ExpandLabelPrefix is the label prefix TLS 1.3 (RFC 8446 §7.1) uses
// for HKDF-Expand-Label, distinct from HPKE's own "HPKE-05 " prefix used
// by HKDF.LabeledExpand. KeyDerivation is the transcript/traffic-secret
// helper a surrounding key-schedule uses; it is not itself part of the
// HPKE Context's labeled-HKDF calls.
const tls13ExpandLabelPrefix = "tls13 "

// KeyDerivation bundles a hash function with HMAC and HKDF built on top of
// it, plus RFC 8446's HKDF-Expand-Label and a transcript-hash helper.
// Mirrors Fizz's KeyDerivationImpl: one instance per suite, constructed by
// the suite factory and shared for the life of a handshake.
type KeyDerivation struct {
	Hash HashFn
	hkdf *HKDF
}

// NewKeyDerivation constructs a KeyDerivation over hash, with no HPKE
// version prefix (KeyDerivation's Expand-Label uses the fixed TLS 1.3
// prefix, not a caller-supplied one).
func NewKeyDerivation(hash HashFn) *KeyDerivation {
	return &KeyDerivation{Hash: hash, hkdf: New(nil, hash)}
}

// HashLen returns the output length of the underlying hash function.
func (k *KeyDerivation) HashLen() int { return k.Hash.HashLen }

// BlankHash returns the hash of the empty string, the default transcript
// value before any handshake message has been processed.
func (k *KeyDerivation) BlankHash() []byte { return k.Hash.BlankHash }

// HashData returns the digest of data.
func (k *KeyDerivation) HashData(data []byte) []byte { return k.Hash.Hash(data) }

// HMAC computes RFC 2104 HMAC(key, data) using the underlying hash.
func (k *KeyDerivation) HMAC(key, data []byte) []byte {
	mac := hmac.New(k.Hash.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// Extract runs raw (unlabeled) HKDF-Extract.
func (k *KeyDerivation) Extract(salt, ikm []byte) []byte {
	return k.hkdf.Extract(salt, ikm)
}

// Expand runs raw (unlabeled) HKDF-Expand.
func (k *KeyDerivation) Expand(prk, info []byte, length int) ([]byte, error) {
	return k.hkdf.Expand(prk, info, length)
}

// ExpandLabel implements RFC 8446 §7.1's HKDF-Expand-Label:
//
//	HKDF-Expand-Label(Secret, Label, Context, Length) =
//	    HKDF-Expand(Secret, HkdfLabel, Length)
//
// where HkdfLabel is Length (uint16) ‖ "tls13 "+Label (length-prefixed) ‖
// Context (length-prefixed).
func (k *KeyDerivation) ExpandLabel(secret []byte, label string, context []byte, length int) ([]byte, error) {
	fullLabel := tls13ExpandLabelPrefix + label

	hkdfLabel := make([]byte, 0, 2+1+len(fullLabel)+1+len(context))
	hkdfLabel = binary.BigEndian.AppendUint16(hkdfLabel, uint16(length))
	hkdfLabel = append(hkdfLabel, byte(len(fullLabel)))
	hkdfLabel = append(hkdfLabel, fullLabel...)
	hkdfLabel = append(hkdfLabel, byte(len(context)))
	hkdfLabel = append(hkdfLabel, context...)

	return k.Expand(secret, hkdfLabel, length)
}

// DeriveSecret implements RFC 8446 §7.1's Derive-Secret, used to walk a
// transcript-bound secret forward from one handshake stage to the next:
//
//	Derive-Secret(Secret, Label, Messages) =
//	    HKDF-Expand-Label(Secret, Label, Hash(Messages), Hash.length)
func (k *KeyDerivation) DeriveSecret(secret []byte, label string, transcript []byte) ([]byte, error) {
	return k.ExpandLabel(secret, label, k.HashData(transcript), k.HashLen())
}
