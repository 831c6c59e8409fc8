package aead

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"
)

// chachaCipher implements Cipher over x/crypto/chacha20poly1305.
type chachaCipher struct {
	aead     cipher.AEAD
	iv       []byte
	headroom int
}

// NewChaCha20Poly1305 returns an unkeyed ChaCha20-Poly1305/SHA256 cipher:
// 32-byte key, 12-byte nonce, 16-byte tag.
func NewChaCha20Poly1305() Cipher { return &chachaCipher{} }

func (c *chachaCipher) SetKey(key TrafficKey) error {
	if len(key.Key) != c.KeySize() || len(key.IV) != c.NonceSize() {
		return ErrKeyLengthMismatch
	}
	a, err := chacha20poly1305.New(key.Key)
	if err != nil {
		return err
	}
	c.aead = a
	c.iv = append([]byte(nil), key.IV...)
	return nil
}

func (c *chachaCipher) Encrypt(plaintext, aad, nonce []byte) ([]byte, error) {
	dst := make([]byte, c.headroom, c.headroom+len(plaintext)+c.TagSize())
	return c.aead.Seal(dst, nonce, plaintext, aad)[c.headroom:], nil
}

func (c *chachaCipher) Decrypt(ciphertext, aad, nonce []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

func (c *chachaCipher) Destroy() {
	zeroize(c.iv)
	c.aead = nil
}

func (c *chachaCipher) SetEncryptedBufferHeadroom(n int) { c.headroom = n }
func (c *chachaCipher) BaseIV() []byte                   { return c.iv }
func (c *chachaCipher) KeySize() int                     { return chacha20poly1305.KeySize }
func (c *chachaCipher) NonceSize() int                   { return chacha20poly1305.NonceSize }
func (c *chachaCipher) TagSize() int                     { return 16 }
