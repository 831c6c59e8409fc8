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

// Package suite is the stateless factory that turns the algorithm
// identifiers in the root package into concrete, unkeyed instances: an
// aead.Cipher for a CipherSuite, a *kdf.KeyDerivation or a labeled
// *kdf.HKDF for a HashFunction, and a KeyExchange for a NamedGroup. It
// mirrors Fizz's MultiBackendFactory: four independent switches, no shared
// state, no caching.
package suite

import (
	"crypto/ecdh"

	"github.com/cloudflare/circl/dh/x25519"
	"github.com/cloudflare/circl/dh/x448"

	"github.com/cjpatton/hpkecore"
	"github.com/cjpatton/hpkecore/aead"
	"github.com/cjpatton/hpkecore/kdf"
)

// Factory has no fields and no mutable state; a single instance may be
// shared across goroutines and cipher suites.
type Factory struct{}

// MakeAEAD returns an unkeyed Cipher for cipher, or ErrUnsupportedSuite if
// cipher is not a recognized identifier, or ErrNotImplemented if it names
// a suite compiled out of this build (AEGIS without the aegis build tag).
func (Factory) MakeAEAD(cipher hpkecore.CipherSuite) (aead.Cipher, error) {
	switch cipher {
	case hpkecore.TLS_AES_128_GCM_SHA256:
		return aead.NewAES128GCM(), nil
	case hpkecore.TLS_AES_256_GCM_SHA384:
		return aead.NewAES256GCM(), nil
	case hpkecore.TLS_CHACHA20_POLY1305_SHA256:
		return aead.NewChaCha20Poly1305(), nil
	case hpkecore.TLS_AES_128_OCB_SHA256_EXPERIMENTAL:
		return aead.NewAES128OCB(), nil
	case hpkecore.TLS_AEGIS_128L_SHA256:
		if !aead.AEGISEnabled {
			return nil, hpkecore.ErrNotImplemented
		}
		return aead.NewAEGIS128L(), nil
	case hpkecore.TLS_AEGIS_256_SHA512:
		if !aead.AEGISEnabled {
			return nil, hpkecore.ErrNotImplemented
		}
		return aead.NewAEGIS256(), nil
	default:
		return nil, hpkecore.ErrUnsupportedSuite
	}
}

// MakeKeyDeriver returns a *kdf.KeyDerivation for hash, or
// ErrUnsupportedSuite if hash is not a recognized identifier.
func (Factory) MakeKeyDeriver(hash hpkecore.HashFunction) (*kdf.KeyDerivation, error) {
	switch hash {
	case hpkecore.Sha256:
		return kdf.NewKeyDerivation(kdf.Sha256), nil
	case hpkecore.Sha384:
		return kdf.NewKeyDerivation(kdf.Sha384), nil
	case hpkecore.Sha512:
		return kdf.NewKeyDerivation(kdf.Sha512), nil
	default:
		return nil, hpkecore.ErrUnsupportedSuite
	}
}

// MakeHKDF returns a labeled *kdf.HKDF for hash under prefix (the HPKE
// version string, e.g. "HPKE-05 "), or ErrUnsupportedSuite for an
// unrecognized hash.
func (Factory) MakeHKDF(hash hpkecore.HashFunction, prefix []byte) (*kdf.HKDF, error) {
	switch hash {
	case hpkecore.Sha256:
		return kdf.New(prefix, kdf.Sha256), nil
	case hpkecore.Sha384:
		return kdf.New(prefix, kdf.Sha384), nil
	case hpkecore.Sha512:
		return kdf.New(prefix, kdf.Sha512), nil
	default:
		return nil, hpkecore.ErrUnsupportedSuite
	}
}

// MakeKeyExchange returns a KeyExchange for group, or ErrUnsupportedSuite
// for an unrecognized group, or ErrNotImplemented for a post-quantum
// hybrid compiled out of this build (built without the pqc build tag).
func (Factory) MakeKeyExchange(group hpkecore.NamedGroup) (KeyExchange, error) {
	switch group {
	case hpkecore.Secp256r1:
		return newECDHGroup(ecdh.P256()), nil
	case hpkecore.Secp384r1:
		return newECDHGroup(ecdh.P384()), nil
	case hpkecore.Secp521r1:
		return newECDHGroup(ecdh.P521()), nil
	case hpkecore.X25519:
		return newXGroup(x25519.Size), nil

	case hpkecore.X25519Kyber512, hpkecore.X25519Kyber512Experimental:
		return makeHybrid(hybridSpec{newXGroup(x25519.Size), x25519.Size, x25519.Size, kyber512Size})
	case hpkecore.Secp256r1Kyber512:
		return makeHybrid(hybridSpec{newECDHGroup(ecdh.P256()), p256PubSize, p256PrivSize, kyber512Size})
	case hpkecore.Kyber512:
		// A pure-KEM group with no classical leg does not fit the
		// Encapsulate/Decapsulate-over-two-legs KeyExchange shape this
		// factory exposes; unlike the AEGIS/pqc build-tag gates, no build
		// of this package implements it.
		return nil, hpkecore.ErrUnsupportedSuite
	case hpkecore.X25519Kyber768Draft00, hpkecore.X25519Kyber768Experimental:
		return makeHybrid(hybridSpec{newXGroup(x25519.Size), x25519.Size, x25519.Size, kyber768Size})
	case hpkecore.Secp256r1Kyber768Draft00:
		return makeHybrid(hybridSpec{newECDHGroup(ecdh.P256()), p256PubSize, p256PrivSize, kyber768Size})
	case hpkecore.Secp384r1Kyber768:
		return makeHybrid(hybridSpec{newECDHGroup(ecdh.P384()), p384PubSize, p384PrivSize, kyber768Size})

	case hpkecore.X448:
		return newXGroup(x448.Size), nil
	default:
		return nil, hpkecore.ErrUnsupportedSuite
	}
}

// crypto/ecdh public/private key encodings are uncompressed points (1 +
// 2*coordinate size) and raw scalars (coordinate size), fixed per curve.
const (
	p256PubSize  = 65
	p256PrivSize = 32
	p384PubSize  = 97
	p384PrivSize = 48
)

func makeHybrid(spec hybridSpec) (KeyExchange, error) {
	kex, ok := hybridKeyExchangeFor(spec)
	if !ok {
		return nil, hpkecore.ErrNotImplemented
	}
	return kex, nil
}
