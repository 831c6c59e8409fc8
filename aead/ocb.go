package aead

import (
	"crypto/aes"
	"crypto/cipher"
)

// ocbCipher implements Cipher with AES-128 in OCB3 mode (RFC 7253), the
// experimental "AES-128-OCB" suite. Fizz constructs this via OpenSSL's EVP
// OCB mode; since no OCB binding exists among this pack's dependencies,
// the mode itself — as opposed to the AES block-cipher primitive it's
// built from — is implemented directly here. See DESIGN.md.
type ocbCipher struct {
	enc      cipher.Block
	iv       []byte
	lTable   [][16]byte
	lStar    [16]byte
	lDollar  [16]byte
	headroom int
}

// NewAES128OCB returns an unkeyed AES-128-OCB/SHA256 cipher: 16-byte key,
// 12-byte nonce, 16-byte tag.
func NewAES128OCB() Cipher { return &ocbCipher{} }

func (c *ocbCipher) SetKey(key TrafficKey) error {
	if len(key.Key) != c.KeySize() || len(key.IV) != c.NonceSize() {
		return ErrKeyLengthMismatch
	}
	block, err := aes.NewCipher(key.Key)
	if err != nil {
		return err
	}
	c.enc = block
	var zero [16]byte
	block.Encrypt(c.lStar[:], zero[:])
	c.lDollar = gfDouble(c.lStar)
	c.lTable = [][16]byte{gfDouble(c.lDollar)}
	c.iv = append([]byte(nil), key.IV...)
	return nil
}

func (c *ocbCipher) Destroy() {
	zeroize(c.iv)
	zeroize(c.lStar[:])
	zeroize(c.lDollar[:])
	for i := range c.lTable {
		zeroize(c.lTable[i][:])
	}
	c.enc = nil
}

func (c *ocbCipher) SetEncryptedBufferHeadroom(n int) { c.headroom = n }
func (c *ocbCipher) BaseIV() []byte                   { return c.iv }
func (c *ocbCipher) KeySize() int                     { return 16 }
func (c *ocbCipher) NonceSize() int                   { return 12 }
func (c *ocbCipher) TagSize() int                     { return 16 }

// lSub returns L_{ntz(i)}, extending the cached table as needed.
func (c *ocbCipher) lSub(i int) [16]byte {
	idx := ntz(i)
	for len(c.lTable) <= idx {
		c.lTable = append(c.lTable, gfDouble(c.lTable[len(c.lTable)-1]))
	}
	return c.lTable[idx]
}

// nonceOffset derives Offset_0 from the 12-byte nonce, specialized to a
// 128-bit tag (so the RFC 7253 bit-packed nonce string collapses to a
// byte-aligned 0x00000001‖N).
func (c *ocbCipher) nonceOffset(nonce []byte) [16]byte {
	var full [16]byte
	full[3] = 0x01
	copy(full[4:], nonce)

	bottom := int(full[15] & 0x3F)
	var top [16]byte
	copy(top[:], full[:])
	top[15] &= 0xC0

	var ktop [16]byte
	c.enc.Encrypt(ktop[:], top[:])

	var stretch [24]byte
	copy(stretch[:16], ktop[:])
	for i := 0; i < 8; i++ {
		stretch[16+i] = ktop[i] ^ ktop[i+1]
	}

	shifted := shiftLeft(stretch[:], bottom)
	var offset [16]byte
	copy(offset[:], shifted[:16])
	return offset
}

// hashAAD implements the OCB3 PMAC-like HASH function over associated
// data, independent of the nonce-derived offset chain used for the
// ciphertext.
func (c *ocbCipher) hashAAD(aad []byte) [16]byte {
	var sum, offset [16]byte
	full := len(aad) / 16
	for i := 1; i <= full; i++ {
		block := aad[(i-1)*16 : i*16]
		l := c.lSub(i)
		offset = xor16(offset, l)
		var in, out [16]byte
		copy(in[:], block)
		in = xor16(in, offset)
		c.enc.Encrypt(out[:], in[:])
		sum = xor16(sum, out)
	}
	rem := aad[full*16:]
	if len(rem) > 0 {
		offset = xor16(offset, c.lStar)
		var in [16]byte
		copy(in[:], rem)
		in[len(rem)] = 0x80
		in = xor16(in, offset)
		var out [16]byte
		c.enc.Encrypt(out[:], in[:])
		sum = xor16(sum, out)
	}
	return sum
}

func (c *ocbCipher) Encrypt(plaintext, aad, nonce []byte) ([]byte, error) {
	offset := c.nonceOffset(nonce)
	var checksum [16]byte
	full := len(plaintext) / 16

	out := make([]byte, c.headroom, c.headroom+len(plaintext)+c.TagSize())
	out = out[:c.headroom]

	for i := 1; i <= full; i++ {
		block := plaintext[(i-1)*16 : i*16]
		l := c.lSub(i)
		offset = xor16(offset, l)
		var in, ct [16]byte
		copy(in[:], block)
		checksum = xor16(checksum, in)
		in = xor16(in, offset)
		c.enc.Encrypt(ct[:], in[:])
		ct = xor16(ct, offset)
		out = append(out, ct[:]...)
	}

	rem := plaintext[full*16:]
	if len(rem) > 0 {
		offset = xor16(offset, c.lStar)
		var pad [16]byte
		c.enc.Encrypt(pad[:], offset[:])
		ct := make([]byte, len(rem))
		for i := range rem {
			ct[i] = rem[i] ^ pad[i]
		}
		out = append(out, ct...)

		var padded [16]byte
		copy(padded[:], rem)
		padded[len(rem)] = 0x80
		checksum = xor16(checksum, padded)
	}

	var tagIn, tag [16]byte
	tagIn = xor16(checksum, offset)
	tagIn = xor16(tagIn, c.lDollar)
	c.enc.Encrypt(tag[:], tagIn[:])
	hashSum := c.hashAAD(aad)
	tag = xor16(tag, hashSum)

	out = append(out, tag[:]...)
	return out[c.headroom:], nil
}

func (c *ocbCipher) Decrypt(ciphertext, aad, nonce []byte) ([]byte, error) {
	if len(ciphertext) < c.TagSize() {
		return nil, ErrAuthFailure
	}
	ct := ciphertext[:len(ciphertext)-c.TagSize()]
	gotTag := ciphertext[len(ciphertext)-c.TagSize():]

	offset := c.nonceOffset(nonce)
	var checksum [16]byte
	full := len(ct) / 16

	plaintext := make([]byte, 0, len(ct))
	for i := 1; i <= full; i++ {
		block := ct[(i-1)*16 : i*16]
		l := c.lSub(i)
		offset = xor16(offset, l)
		var in, pt [16]byte
		copy(in[:], block)
		in = xor16(in, offset)
		c.enc.Decrypt(pt[:], in[:])
		pt = xor16(pt, offset)
		checksum = xor16(checksum, pt)
		plaintext = append(plaintext, pt[:]...)
	}

	rem := ct[full*16:]
	if len(rem) > 0 {
		offset = xor16(offset, c.lStar)
		var pad [16]byte
		c.enc.Encrypt(pad[:], offset[:])
		pt := make([]byte, len(rem))
		for i := range rem {
			pt[i] = rem[i] ^ pad[i]
		}
		plaintext = append(plaintext, pt...)

		var padded [16]byte
		copy(padded[:], pt)
		padded[len(rem)] = 0x80
		checksum = xor16(checksum, padded)
	}

	var tagIn, tag [16]byte
	tagIn = xor16(checksum, offset)
	tagIn = xor16(tagIn, c.lDollar)
	c.enc.Encrypt(tag[:], tagIn[:])
	hashSum := c.hashAAD(aad)
	tag = xor16(tag, hashSum)

	if !constantTimeEqual(tag[:], gotTag) {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

func xor16(a, b [16]byte) [16]byte {
	var out [16]byte
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// gfDouble doubles a 128-bit value in the field GF(2^128) used by OCB and
// GCM, with reduction polynomial x^128+x^7+x^2+x+1 (0x87).
func gfDouble(in [16]byte) [16]byte {
	var out [16]byte
	carry := in[0] >> 7
	for i := 0; i < 15; i++ {
		out[i] = (in[i] << 1) | (in[i+1] >> 7)
	}
	out[15] = in[15] << 1
	if carry == 1 {
		out[15] ^= 0x87
	}
	return out
}

// ntz returns the number of trailing zero bits of i, for i >= 1.
func ntz(i int) int {
	n := 0
	for i&1 == 0 {
		i >>= 1
		n++
	}
	return n
}

// shiftLeft shifts buf left by bits (0..8*len(buf)-1), returning a
// same-length result padded with zero bits on the right.
func shiftLeft(buf []byte, bits int) []byte {
	n := len(buf)
	out := make([]byte, n)
	byteShift := bits / 8
	bitShift := uint(bits % 8)
	for i := 0; i < n; i++ {
		srcIdx := i + byteShift
		if srcIdx >= n {
			continue
		}
		b := buf[srcIdx] << bitShift
		if bitShift > 0 && srcIdx+1 < n {
			b |= buf[srcIdx+1] >> (8 - bitShift)
		}
		out[i] = b
	}
	return out
}

func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
