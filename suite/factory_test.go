package suite

import (
	"bytes"
	"testing"

	"github.com/cjpatton/hpkecore"
)

func TestMakeAEADCoversEveryAlwaysOnSuite(t *testing.T) {
	f := Factory{}
	for _, cipher := range []hpkecore.CipherSuite{
		hpkecore.TLS_AES_128_GCM_SHA256,
		hpkecore.TLS_AES_256_GCM_SHA384,
		hpkecore.TLS_CHACHA20_POLY1305_SHA256,
		hpkecore.TLS_AES_128_OCB_SHA256_EXPERIMENTAL,
	} {
		c, err := f.MakeAEAD(cipher)
		if err != nil {
			t.Errorf("MakeAEAD(%#x): %v", uint16(cipher), err)
			continue
		}
		if c == nil {
			t.Errorf("MakeAEAD(%#x) returned a nil Cipher with no error", uint16(cipher))
		}
	}
}

func TestMakeAEADRejectsUnknownSuite(t *testing.T) {
	f := Factory{}
	if _, err := f.MakeAEAD(hpkecore.CipherSuite(0xDEAD)); err != hpkecore.ErrUnsupportedSuite {
		t.Fatalf("MakeAEAD(unknown) error = %v, want ErrUnsupportedSuite", err)
	}
}

func TestMakeKeyDeriverCoversEveryHash(t *testing.T) {
	f := Factory{}
	for _, hash := range []hpkecore.HashFunction{hpkecore.Sha256, hpkecore.Sha384, hpkecore.Sha512} {
		if _, err := f.MakeKeyDeriver(hash); err != nil {
			t.Errorf("MakeKeyDeriver(%d): %v", hash, err)
		}
	}
	if _, err := f.MakeKeyDeriver(hpkecore.HashFunction(0)); err != hpkecore.ErrUnsupportedSuite {
		t.Fatalf("MakeKeyDeriver(0) error = %v, want ErrUnsupportedSuite", err)
	}
}

func TestMakeKeyExchangeClassicalGroups(t *testing.T) {
	f := Factory{}
	for _, group := range []hpkecore.NamedGroup{
		hpkecore.Secp256r1,
		hpkecore.Secp384r1,
		hpkecore.Secp521r1,
		hpkecore.X25519,
		hpkecore.X448,
	} {
		kex, err := f.MakeKeyExchange(group)
		if err != nil {
			t.Fatalf("MakeKeyExchange(%#x): %v", uint16(group), err)
		}
		pub, priv, err := kex.GenerateKeyPair()
		if err != nil {
			t.Fatalf("GenerateKeyPair: %v", err)
		}
		enc, ss1, err := kex.Encapsulate(pub)
		if err != nil {
			t.Fatalf("Encapsulate: %v", err)
		}
		ss2, err := kex.Decapsulate(enc, priv)
		if err != nil {
			t.Fatalf("Decapsulate: %v", err)
		}
		if !bytes.Equal(ss1, ss2) {
			t.Errorf("group %#x: shared secrets differ: %x vs %x", uint16(group), ss1, ss2)
		}
	}
}

func TestMakeKeyExchangeRejectsUnknownGroup(t *testing.T) {
	f := Factory{}
	if _, err := f.MakeKeyExchange(hpkecore.NamedGroup(0xBEEF)); err != hpkecore.ErrUnsupportedSuite {
		t.Fatalf("MakeKeyExchange(unknown) error = %v, want ErrUnsupportedSuite", err)
	}
}

func TestMakeKeyExchangePureKyberIsUnsupported(t *testing.T) {
	f := Factory{}
	if _, err := f.MakeKeyExchange(hpkecore.Kyber512); err != hpkecore.ErrUnsupportedSuite {
		t.Fatalf("MakeKeyExchange(Kyber512) error = %v, want ErrUnsupportedSuite", err)
	}
}
