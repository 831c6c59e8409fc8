package aead

import (
	"bytes"
	"testing"
)

func TestGCMRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		new  func() Cipher
		key  []byte
	}{
		{"AES128GCM", NewAES128GCM, make([]byte, 16)},
		{"AES256GCM", NewAES256GCM, make([]byte, 32)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.new()
			iv := make([]byte, c.NonceSize())
			if err := c.SetKey(TrafficKey{Key: tc.key, IV: iv}); err != nil {
				t.Fatalf("SetKey: %v", err)
			}
			plaintext := []byte("plaintext")
			aad := []byte("aad")
			nonce := make([]byte, c.NonceSize())

			ct, err := c.Encrypt(plaintext, aad, nonce)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			if len(ct) != len(plaintext)+c.TagSize() {
				t.Fatalf("len(ct) = %d, want %d", len(ct), len(plaintext)+c.TagSize())
			}
			pt, err := c.Decrypt(ct, aad, nonce)
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if !bytes.Equal(pt, plaintext) {
				t.Errorf("Decrypt = %x, want %x", pt, plaintext)
			}
		})
	}
}

func TestSetKeyRejectsWrongLength(t *testing.T) {
	c := NewAES128GCM()
	err := c.SetKey(TrafficKey{Key: make([]byte, 15), IV: make([]byte, 12)})
	if err != ErrKeyLengthMismatch {
		t.Fatalf("SetKey error = %v, want ErrKeyLengthMismatch", err)
	}
}

func TestDecryptRejectsTamperedTag(t *testing.T) {
	c := NewAES128GCM()
	if err := c.SetKey(TrafficKey{Key: make([]byte, 16), IV: make([]byte, 12)}); err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	ct, err := c.Encrypt([]byte("hello"), nil, make([]byte, 12))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	ct[len(ct)-1] ^= 0xFF
	if _, err := c.Decrypt(ct, nil, make([]byte, 12)); err != ErrAuthFailure {
		t.Fatalf("Decrypt error = %v, want ErrAuthFailure", err)
	}
}

func TestHeadroom(t *testing.T) {
	c := NewAES128GCM()
	if err := c.SetKey(TrafficKey{Key: make([]byte, 16), IV: make([]byte, 12)}); err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	c.SetEncryptedBufferHeadroom(4)
	ct, err := c.Encrypt([]byte("hello"), nil, make([]byte, 12))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(ct) != len("hello")+c.TagSize() {
		t.Errorf("len(ct) = %d, want %d (headroom must not appear in the returned slice)", len(ct), len("hello")+c.TagSize())
	}
}

func TestChaCha20Poly1305RoundTrip(t *testing.T) {
	c := NewChaCha20Poly1305()
	if err := c.SetKey(TrafficKey{Key: make([]byte, c.KeySize()), IV: make([]byte, c.NonceSize())}); err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	plaintext := []byte("the quick brown fox")
	ct, err := c.Encrypt(plaintext, []byte("aad"), make([]byte, c.NonceSize()))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := c.Decrypt(ct, []byte("aad"), make([]byte, c.NonceSize()))
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Errorf("Decrypt = %q, want %q", pt, plaintext)
	}
}

func TestOCBRoundTrip(t *testing.T) {
	for _, ptLen := range []int{0, 1, 15, 16, 17, 31, 32, 100} {
		c := NewAES128OCB()
		if err := c.SetKey(TrafficKey{Key: make([]byte, 16), IV: make([]byte, 12)}); err != nil {
			t.Fatalf("SetKey: %v", err)
		}
		plaintext := bytes.Repeat([]byte{0xAB}, ptLen)
		aad := []byte("associated data of arbitrary length, spanning more than one block")

		ct, err := c.Encrypt(plaintext, aad, make([]byte, 12))
		if err != nil {
			t.Fatalf("ptLen=%d: Encrypt: %v", ptLen, err)
		}
		if len(ct) != ptLen+c.TagSize() {
			t.Fatalf("ptLen=%d: len(ct) = %d, want %d", ptLen, len(ct), ptLen+c.TagSize())
		}
		pt, err := c.Decrypt(ct, aad, make([]byte, 12))
		if err != nil {
			t.Fatalf("ptLen=%d: Decrypt: %v", ptLen, err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Errorf("ptLen=%d: Decrypt = %x, want %x", ptLen, pt, plaintext)
		}
	}
}

func TestOCBDetectsTamperedAAD(t *testing.T) {
	c := NewAES128OCB()
	if err := c.SetKey(TrafficKey{Key: make([]byte, 16), IV: make([]byte, 12)}); err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	ct, err := c.Encrypt([]byte("plaintext"), []byte("aad-one"), make([]byte, 12))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := c.Decrypt(ct, []byte("aad-two"), make([]byte, 12)); err != ErrAuthFailure {
		t.Fatalf("Decrypt error = %v, want ErrAuthFailure", err)
	}
}

func TestBaseIVRoundTripsThroughSetKey(t *testing.T) {
	iv := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	c := NewAES128GCM()
	if err := c.SetKey(TrafficKey{Key: make([]byte, 16), IV: iv}); err != nil {
		t.Fatalf("SetKey: %v", err)
	}
	if !bytes.Equal(c.BaseIV(), iv) {
		t.Errorf("BaseIV() = %x, want %x", c.BaseIV(), iv)
	}
}
