//go:build pqc

package suite

import (
	"github.com/cloudflare/circl/kem/kyber/kyber512"
	"github.com/cloudflare/circl/kem/kyber/kyber768"
)

// hybridGroup composes a classical KeyExchange with a post-quantum KEM by
// concatenation: GenerateKeyPair, Encapsulate and Decapsulate each run
// both legs independently and concatenate their outputs, mirroring how
// Fizz's HybridKeyExchange pairs an X25519KeyExchange or P-curve
// KeyExchange with an OQSKeyExchange. Splitting the concatenated buffers
// back apart relies on each leg's fixed sizes.
type hybridGroup struct {
	classical              KeyExchange
	classicalPubSize       int
	classicalPrivSize      int
	pqcScheme              kyberScheme
	pqcPubSize, pqcCTSize  int
	pqcPrivSize, pqcSSSize int
}

// kyberScheme narrows circl's kem.Scheme to the operations hybridGroup
// needs, so the field type in hybridGroup does not have to import
// circl/kem directly.
type kyberScheme interface {
	GenerateKeyPairBytes() (pub, priv []byte, err error)
	EncapsulateBytes(pub []byte) (ct, ss []byte, err error)
	DecapsulateBytes(priv, ct []byte) (ss []byte, err error)
}

func hybridKeyExchangeFor(spec hybridSpec) (KeyExchange, bool) {
	var scheme kyberScheme
	var pubSize, ctSize, privSize, ssSize int
	switch spec.kyber {
	case kyber512Size:
		scheme = kyber512Adapter{}
		pubSize, ctSize, privSize, ssSize = kyber512.PublicKeySize, kyber512.CiphertextSize, kyber512.PrivateKeySize, kyber512.SharedKeySize
	case kyber768Size:
		scheme = kyber768Adapter{}
		pubSize, ctSize, privSize, ssSize = kyber768.PublicKeySize, kyber768.CiphertextSize, kyber768.PrivateKeySize, kyber768.SharedKeySize
	default:
		return nil, false
	}
	return &hybridGroup{
		classical:         spec.classical,
		classicalPubSize:  spec.classicalPubSize,
		classicalPrivSize: spec.classicalPrivSize,
		pqcScheme:         scheme,
		pqcPubSize:        pubSize,
		pqcCTSize:         ctSize,
		pqcPrivSize:       privSize,
		pqcSSSize:         ssSize,
	}, true
}

type kyber512Adapter struct{}

func (kyber512Adapter) GenerateKeyPairBytes() ([]byte, []byte, error) {
	pub, priv, err := kyber512.Scheme().GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}
	return pubBytes, privBytes, nil
}

func (kyber512Adapter) EncapsulateBytes(pub []byte) ([]byte, []byte, error) {
	pk, err := kyber512.Scheme().UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return nil, nil, err
	}
	return kyber512.Scheme().Encapsulate(pk)
}

func (kyber512Adapter) DecapsulateBytes(priv, ct []byte) ([]byte, error) {
	sk, err := kyber512.Scheme().UnmarshalBinaryPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return kyber512.Scheme().Decapsulate(sk, ct)
}

type kyber768Adapter struct{}

func (kyber768Adapter) GenerateKeyPairBytes() ([]byte, []byte, error) {
	pub, priv, err := kyber768.Scheme().GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}
	return pubBytes, privBytes, nil
}

func (kyber768Adapter) EncapsulateBytes(pub []byte) ([]byte, []byte, error) {
	pk, err := kyber768.Scheme().UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return nil, nil, err
	}
	return kyber768.Scheme().Encapsulate(pk)
}

func (kyber768Adapter) DecapsulateBytes(priv, ct []byte) ([]byte, error) {
	sk, err := kyber768.Scheme().UnmarshalBinaryPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return kyber768.Scheme().Decapsulate(sk, ct)
}

func (h *hybridGroup) GenerateKeyPair() (public, private []byte, err error) {
	classicalPub, classicalPriv, err := h.classical.GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	pqcPub, pqcPriv, err := h.pqcScheme.GenerateKeyPairBytes()
	if err != nil {
		return nil, nil, err
	}
	return append(classicalPub, pqcPub...), append(classicalPriv, pqcPriv...), nil
}

func (h *hybridGroup) Encapsulate(peerPublic []byte) (enc, sharedSecret []byte, err error) {
	if len(peerPublic) != h.classicalPubSize+h.pqcPubSize {
		return nil, nil, ErrInvalidPeerPublicKey
	}
	classicalPeerPub := peerPublic[:h.classicalPubSize]
	pqcPeerPub := peerPublic[h.classicalPubSize:]

	classicalEnc, classicalSS, err := h.classical.Encapsulate(classicalPeerPub)
	if err != nil {
		return nil, nil, err
	}
	pqcEnc, pqcSS, err := h.pqcScheme.EncapsulateBytes(pqcPeerPub)
	if err != nil {
		return nil, nil, err
	}
	return append(classicalEnc, pqcEnc...), append(classicalSS, pqcSS...), nil
}

func (h *hybridGroup) Decapsulate(enc, ownPrivate []byte) ([]byte, error) {
	if len(enc) != h.classicalPubSize+h.pqcCTSize || len(ownPrivate) != h.classicalPrivSize+h.pqcPrivSize {
		return nil, ErrInvalidPeerPublicKey
	}
	classicalEnc, pqcEnc := enc[:h.classicalPubSize], enc[h.classicalPubSize:]
	classicalPriv, pqcPriv := ownPrivate[:h.classicalPrivSize], ownPrivate[h.classicalPrivSize:]

	classicalSS, err := h.classical.Decapsulate(classicalEnc, classicalPriv)
	if err != nil {
		return nil, err
	}
	pqcSS, err := h.pqcScheme.DecapsulateBytes(pqcPriv, pqcEnc)
	if err != nil {
		return nil, err
	}
	return append(classicalSS, pqcSS...), nil
}
