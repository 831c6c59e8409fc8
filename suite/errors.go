package suite

import "errors"

// ErrInvalidPeerPublicKey is returned by the X25519/X448 groups' Encapsulate
// and Decapsulate when the peer public key is a low-order input, and by a
// post-quantum hybrid group's Encapsulate and Decapsulate when an input
// does not have the length its two legs add up to. The NIST-curve groups
// return crypto/ecdh's own error for an invalid point instead.
var ErrInvalidPeerPublicKey = errors.New("suite: invalid peer public key")
