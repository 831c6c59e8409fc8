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

package suite

import (
	"crypto/ecdh"
	"crypto/rand"

	"github.com/cloudflare/circl/dh/x25519"
	"github.com/cloudflare/circl/dh/x448"
)

// KeyExchange is the DHKEM-shaped abstraction the factory hands back for a
// NamedGroup: encapsulation derives a shared secret and a value to send to
// the peer (the sender's own ephemeral public key, for a classical DH
// group), and decapsulation recovers the same secret on the other side.
// Modeling classical groups as a degenerate KEM lets hybrid post-quantum
// groups compose a classical group with a real KEM behind the same
// interface, matching draft-irtf-cfrg-hpke's own DHKEM construction.
type KeyExchange interface {
	// GenerateKeyPair returns a fresh (public, private) pair.
	GenerateKeyPair() (public, private []byte, err error)

	// Encapsulate derives a shared secret bound to peerPublic, returning
	// alongside it whatever the peer needs to decapsulate the same value
	// (an ephemeral public key for classical DH, a KEM ciphertext for a
	// true KEM).
	Encapsulate(peerPublic []byte) (enc, sharedSecret []byte, err error)

	// Decapsulate recovers the shared secret Encapsulate produced, given
	// enc and the recipient's own private key.
	Decapsulate(enc, ownPrivate []byte) (sharedSecret []byte, err error)
}

// hybridSpec names the two legs a post-quantum hybrid group combines: a
// classical group and a Kyber parameter set. hybridKeyExchangeFor (defined
// per build tag in group_pqc.go / group_nopqc.go) turns this into a
// KeyExchange, or reports that this build was compiled without pqc
// support.
type hybridSpec struct {
	classical         KeyExchange
	classicalPubSize  int
	classicalPrivSize int
	kyber             kyberSize
}

// kyberSize names a Kyber parameter set independent of whether this build
// was compiled with the pqc tag, so factory.go can reference it
// unconditionally.
type kyberSize int

const (
	kyber512Size kyberSize = iota
	kyber768Size
)

// ecdhGroup implements KeyExchange over crypto/ecdh, for the NIST prime
// curves.
type ecdhGroup struct{ curve ecdh.Curve }

func newECDHGroup(curve ecdh.Curve) KeyExchange { return &ecdhGroup{curve} }

func (g *ecdhGroup) GenerateKeyPair() (public, private []byte, err error) {
	key, err := g.curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return key.PublicKey().Bytes(), key.Bytes(), nil
}

func (g *ecdhGroup) Encapsulate(peerPublic []byte) (enc, sharedSecret []byte, err error) {
	ephemeral, err := g.curve.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	peer, err := g.curve.NewPublicKey(peerPublic)
	if err != nil {
		return nil, nil, err
	}
	shared, err := ephemeral.ECDH(peer)
	if err != nil {
		return nil, nil, err
	}
	return ephemeral.PublicKey().Bytes(), shared, nil
}

func (g *ecdhGroup) Decapsulate(enc, ownPrivate []byte) ([]byte, error) {
	priv, err := g.curve.NewPrivateKey(ownPrivate)
	if err != nil {
		return nil, err
	}
	peer, err := g.curve.NewPublicKey(enc)
	if err != nil {
		return nil, err
	}
	return priv.ECDH(peer)
}

// xGroup implements KeyExchange over circl's constant-time X25519/X448.
type xGroup struct{ size int }

func newXGroup(size int) KeyExchange { return &xGroup{size} }

func (g *xGroup) GenerateKeyPair() (public, private []byte, err error) {
	priv := make([]byte, g.size)
	if _, err := rand.Read(priv); err != nil {
		return nil, nil, err
	}
	pub := make([]byte, g.size)
	g.keyGen(pub, priv)
	return pub, priv, nil
}

func (g *xGroup) Encapsulate(peerPublic []byte) (enc, sharedSecret []byte, err error) {
	pub, priv, err := g.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	shared, err := g.shared(priv, peerPublic)
	if err != nil {
		return nil, nil, err
	}
	return pub, shared, nil
}

func (g *xGroup) Decapsulate(enc, ownPrivate []byte) ([]byte, error) {
	return g.shared(ownPrivate, enc)
}

func (g *xGroup) keyGen(pub, priv []byte) {
	switch g.size {
	case x25519.Size:
		var p, s x25519.Key
		copy(s[:], priv)
		x25519.KeyGen(&p, &s)
		copy(pub, p[:])
	case x448.Size:
		var p, s x448.Key
		copy(s[:], priv)
		x448.KeyGen(&p, &s)
		copy(pub, p[:])
	}
}

func (g *xGroup) shared(priv, peerPublic []byte) ([]byte, error) {
	out := make([]byte, g.size)
	var ok bool
	switch g.size {
	case x25519.Size:
		var ss, s, p x25519.Key
		copy(s[:], priv)
		copy(p[:], peerPublic)
		ok = x25519.Shared(&ss, &s, &p)
		copy(out, ss[:])
	case x448.Size:
		var ss, s, p x448.Key
		copy(s[:], priv)
		copy(p[:], peerPublic)
		ok = x448.Shared(&ss, &s, &p)
		copy(out, ss[:])
	}
	if !ok {
		return nil, ErrInvalidPeerPublicKey
	}
	return out, nil
}
