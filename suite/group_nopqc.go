//go:build !pqc

package suite

// hybridKeyExchangeFor always reports unavailable in builds without the pqc
// tag: post-quantum hybrids need circl's kyber512/kyber768 packages, which
// are excluded from non-pqc builds the same way Fizz excludes
// OQSKeyExchange without FIZZ_HAVE_OQS.
func hybridKeyExchangeFor(_ hybridSpec) (KeyExchange, bool) {
	return nil, false
}
