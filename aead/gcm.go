package aead

import (
	"crypto/aes"
	"crypto/cipher"
)

// gcmCipher implements Cipher over stdlib AES-GCM (crypto/aes + the
// standard library's cipher.NewGCM), for both the 128- and 256-bit key
// variants; only the key size differs between AES-128-GCM/SHA256 and
// AES-256-GCM/SHA384.
type gcmCipher struct {
	keySize  int
	aead     cipher.AEAD
	iv       []byte
	headroom int
}

// NewAES128GCM returns an unkeyed AES-128-GCM/SHA256 cipher: 16-byte key,
// 12-byte nonce, 16-byte tag.
func NewAES128GCM() Cipher { return &gcmCipher{keySize: 16} }

// NewAES256GCM returns an unkeyed AES-256-GCM/SHA384 cipher: 32-byte key,
// 12-byte nonce, 16-byte tag.
func NewAES256GCM() Cipher { return &gcmCipher{keySize: 32} }

func (c *gcmCipher) SetKey(key TrafficKey) error {
	if len(key.Key) != c.keySize || len(key.IV) != c.NonceSize() {
		return ErrKeyLengthMismatch
	}
	block, err := aes.NewCipher(key.Key)
	if err != nil {
		return err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}
	c.aead = aead
	c.iv = append([]byte(nil), key.IV...)
	return nil
}

func (c *gcmCipher) Encrypt(plaintext, aad, nonce []byte) ([]byte, error) {
	dst := make([]byte, 0, c.headroom+len(plaintext)+c.TagSize())
	dst = append(dst, make([]byte, c.headroom)...)
	return c.aead.Seal(dst, nonce, plaintext, aad)[c.headroom:], nil
}

func (c *gcmCipher) Decrypt(ciphertext, aad, nonce []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

func (c *gcmCipher) Destroy() {
	zeroize(c.iv)
	c.aead = nil
}

func (c *gcmCipher) SetEncryptedBufferHeadroom(n int) { c.headroom = n }
func (c *gcmCipher) BaseIV() []byte                   { return c.iv }
func (c *gcmCipher) KeySize() int                     { return c.keySize }
func (c *gcmCipher) NonceSize() int                   { return 12 }
func (c *gcmCipher) TagSize() int                     { return 16 }
