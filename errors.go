package hpkecore

import (
	"errors"

	"github.com/cjpatton/hpkecore/aead"
)

// Error kinds surfaced by this package and by the suite and aead
// sub-packages. None are retriable: every failure here reflects either a
// caller mistake (bad key length, requesting an export longer than the KDF
// permits) or an adversarial input (an authentication failure).
var (
	// ErrUnsupportedSuite is returned by the suite factory when asked for a
	// CipherSuite, HashFunction or NamedGroup it does not recognize, and for
	// the Kyber512 group, which it recognizes but never builds.
	// GenerateSuiteID returns it for an identifier with no HPKE id.
	ErrUnsupportedSuite = errors.New("hpkecore: unsupported cipher suite")

	// ErrKeyLengthMismatch is returned by AEAD.SetKey when the supplied key
	// or IV does not match the algorithm's declared length.
	ErrKeyLengthMismatch = aead.ErrKeyLengthMismatch

	// ErrAuthFailure is returned by Open when the AEAD tag does not verify.
	// The context's sequence number is left unchanged.
	ErrAuthFailure = errors.New("hpkecore: AEAD authentication failed")

	// ErrSequenceOverflow is returned by Seal or Open once the context's
	// sequence counter has exhausted the AEAD's nonce space.
	ErrSequenceOverflow = errors.New("hpkecore: sequence number overflow")

	// ErrExportTooLarge is returned by ExportSecret when the requested length
	// exceeds 255 times the KDF's hash length.
	ErrExportTooLarge = errors.New("hpkecore: requested export length too large")

	// ErrNotImplemented is returned by the suite factory for algorithms
	// that are recognized but compiled out of this build (post-quantum
	// hybrids and AEGIS are both gated behind build tags).
	ErrNotImplemented = errors.New("hpkecore: algorithm not implemented in this build")
)
