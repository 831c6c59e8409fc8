//go:build aegis

package aead

import (
	"github.com/Yawning/aegis/aegis128l"
	"github.com/Yawning/aegis/aegis256"
)

// AEGISEnabled reports whether this build was compiled with the "aegis"
// build tag. The suite factory checks this before calling
// NewAEGIS128L/NewAEGIS256.
const AEGISEnabled = true

// aegisCipher adapts a Yawning/aegis keyed Instance (Seal/Open with a bool
// success flag, matching the api.Instance shape) to the Cipher interface.
type aegisCipher struct {
	keySize, nonceSize, tagSize int
	newInstance                 func(key []byte) interface {
		Seal(dst, nonce, plaintext, ad []byte) []byte
		Open(dst, nonce, ciphertext, ad []byte) ([]byte, bool)
	}
	instance interface {
		Seal(dst, nonce, plaintext, ad []byte) []byte
		Open(dst, nonce, ciphertext, ad []byte) ([]byte, bool)
	}
	iv       []byte
	headroom int
}

// NewAEGIS128L returns an unkeyed AEGIS-128L/SHA256 cipher: 16-byte key,
// 16-byte nonce, 16-byte tag.
func NewAEGIS128L() Cipher {
	return &aegisCipher{
		keySize: 16, nonceSize: 16, tagSize: 16,
		newInstance: func(key []byte) interface {
			Seal(dst, nonce, plaintext, ad []byte) []byte
			Open(dst, nonce, ciphertext, ad []byte) ([]byte, bool)
		} {
			return aegis128l.New(key)
		},
	}
}

// NewAEGIS256 returns an unkeyed AEGIS-256/SHA512 cipher: 32-byte key,
// 32-byte nonce, 16-byte tag.
func NewAEGIS256() Cipher {
	return &aegisCipher{
		keySize: 32, nonceSize: 32, tagSize: 16,
		newInstance: func(key []byte) interface {
			Seal(dst, nonce, plaintext, ad []byte) []byte
			Open(dst, nonce, ciphertext, ad []byte) ([]byte, bool)
		} {
			return aegis256.New(key)
		},
	}
}

func (c *aegisCipher) SetKey(key TrafficKey) error {
	if len(key.Key) != c.keySize || len(key.IV) != c.nonceSize {
		return ErrKeyLengthMismatch
	}
	c.instance = c.newInstance(key.Key)
	c.iv = append([]byte(nil), key.IV...)
	return nil
}

func (c *aegisCipher) Encrypt(plaintext, aad, nonce []byte) ([]byte, error) {
	dst := make([]byte, c.headroom, c.headroom+len(plaintext)+c.tagSize)
	return c.instance.Seal(dst, nonce, plaintext, aad)[c.headroom:], nil
}

func (c *aegisCipher) Decrypt(ciphertext, aad, nonce []byte) ([]byte, error) {
	plaintext, ok := c.instance.Open(nil, nonce, ciphertext, aad)
	if !ok {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

func (c *aegisCipher) Destroy() {
	zeroize(c.iv)
	c.instance = nil
}

func (c *aegisCipher) SetEncryptedBufferHeadroom(n int) { c.headroom = n }
func (c *aegisCipher) BaseIV() []byte                   { return c.iv }
func (c *aegisCipher) KeySize() int                     { return c.keySize }
func (c *aegisCipher) NonceSize() int                   { return c.nonceSize }
func (c *aegisCipher) TagSize() int                     { return c.tagSize }
