package hpkecore

import "encoding/binary"

// CipherSuite identifies a TLS 1.3 (KDF, AEAD) pair by its two-byte TLS
// registry code point. HPKE reuses these code points to name the AEAD half
// of an HPKE ciphersuite; the KDF half is implied by the suite's declared
// hash (see HashFunction).
type CipherSuite uint16

// Supported TLS 1.3 cipher suites, bit-exact with the IANA TLS registry.
const (
	TLS_AES_128_GCM_SHA256              CipherSuite = 0x1301
	TLS_AES_256_GCM_SHA384              CipherSuite = 0x1302
	TLS_CHACHA20_POLY1305_SHA256        CipherSuite = 0x1303
	TLS_AES_128_OCB_SHA256_EXPERIMENTAL CipherSuite = 0xFF71
	TLS_AEGIS_128L_SHA256               CipherSuite = 0x1307
	TLS_AEGIS_256_SHA512                CipherSuite = 0x1306
)

// NamedGroup identifies a key-exchange group by its TLS supported_groups
// code point, plus experimental code points for post-quantum hybrids.
type NamedGroup uint16

const (
	Secp256r1 NamedGroup = 0x0017
	Secp384r1 NamedGroup = 0x0018
	Secp521r1 NamedGroup = 0x0019
	X25519    NamedGroup = 0x001D
	X448      NamedGroup = 0x001E

	// Post-quantum hybrids. Code points are experimental and only
	// meaningful within a deployment that has agreed on them out of band;
	// they mirror the values Fizz's MultiBackendFactory recognizes.
	X25519Kyber512             NamedGroup = 0x2F39
	X25519Kyber512Experimental NamedGroup = 0xFE30
	Secp256r1Kyber512          NamedGroup = 0x2F3A
	Kyber512                   NamedGroup = 0x023A
	X25519Kyber768Draft00      NamedGroup = 0x6399
	X25519Kyber768Experimental NamedGroup = 0xFE31
	Secp256r1Kyber768Draft00   NamedGroup = 0x639A
	Secp384r1Kyber768          NamedGroup = 0x6398
)

// HashFunction identifies the hash algorithm underlying a suite's KDF.
type HashFunction uint16

const (
	Sha256 HashFunction = 1
	Sha384 HashFunction = 2
	Sha512 HashFunction = 3
)

// hpkeKemID maps a NamedGroup to the two-byte KEM identifier used in the
// HPKE suite_id, per draft-irtf-cfrg-hpke. Only groups with a defined HPKE
// KEM id can appear in an HPKE suite_id; groups outside that registry
// (there are none among the ones this package supports) would need their
// own allocation.
var hpkeKemID = map[NamedGroup]uint16{
	Secp256r1:                  0x0010,
	Secp384r1:                  0x0011,
	Secp521r1:                  0x0012,
	X25519:                     0x0020,
	X448:                       0x0021,
	X25519Kyber512:             0x0030,
	X25519Kyber512Experimental: 0x0030,
	Secp256r1Kyber512:          0x0031,
	Kyber512:                   0x0032,
	X25519Kyber768Draft00:      0x0040,
	X25519Kyber768Experimental: 0x0040,
	Secp256r1Kyber768Draft00:   0x0041,
	Secp384r1Kyber768:          0x0042,
}

// hpkeKdfID maps a HashFunction to the two-byte HPKE KDF identifier.
var hpkeKdfID = map[HashFunction]uint16{
	Sha256: 0x0001,
	Sha384: 0x0002,
	Sha512: 0x0003,
}

// hpkeAeadID maps a CipherSuite to the two-byte HPKE AEAD identifier.
var hpkeAeadID = map[CipherSuite]uint16{
	TLS_AES_128_GCM_SHA256:              0x0001,
	TLS_AES_256_GCM_SHA384:              0x0002,
	TLS_CHACHA20_POLY1305_SHA256:        0x0003,
	TLS_AES_128_OCB_SHA256_EXPERIMENTAL: 0xFF01,
	TLS_AEGIS_128L_SHA256:               0xFFF1,
	TLS_AEGIS_256_SHA512:                0xFFF2,
}

// GenerateSuiteID builds the HPKE suite_id for the (KEM, KDF, AEAD) triple
// named by group, hash and cipher: the ASCII literal "HPKE" followed by
// the three two-byte big-endian identifiers, in that order. Both peers of
// an HPKE exchange must compute the same suite_id from the same triple for
// the labeled HKDF calls on either side to agree.
func GenerateSuiteID(group NamedGroup, hash HashFunction, cipher CipherSuite) ([]byte, error) {
	kemID, ok := hpkeKemID[group]
	if !ok {
		return nil, ErrUnsupportedSuite
	}
	kdfID, ok := hpkeKdfID[hash]
	if !ok {
		return nil, ErrUnsupportedSuite
	}
	aeadID, ok := hpkeAeadID[cipher]
	if !ok {
		return nil, ErrUnsupportedSuite
	}

	suiteID := make([]byte, 0, 4+2+2+2)
	suiteID = append(suiteID, 'H', 'P', 'K', 'E')
	suiteID = binary.BigEndian.AppendUint16(suiteID, kemID)
	suiteID = binary.BigEndian.AppendUint16(suiteID, kdfID)
	suiteID = binary.BigEndian.AppendUint16(suiteID, aeadID)
	return suiteID, nil
}
