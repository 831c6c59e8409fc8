// Copyright 2020 Cloudflare, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package kdf provides the hash, HMAC and HKDF machinery HpkeContext and the
// suite factory build key schedules from: fixed-output hashing, RFC 5869
// extract/expand, and the TLS-1.3-style labeled variants HPKE relies on.
package kdf

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// HashFn is a fixed-output hash algorithm, identified by its name and
// output length, with the hash of the empty string precomputed as
// BlankHash — the default transcript-hash value before any message has
// been processed.
type HashFn struct {
	Name      string
	HashLen   int
	New       func() hash.Hash
	BlankHash []byte
}

// Hash returns the digest of data under this hash function.
func (h HashFn) Hash(data []byte) []byte {
	hasher := h.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}

var (
	Sha256 = mustHashFn("sha256", sha256.New)
	Sha384 = mustHashFn("sha384", sha512.New384)
	Sha512 = mustHashFn("sha512", sha512.New)
)

func mustHashFn(name string, newFn func() hash.Hash) HashFn {
	blank := newFn()
	return HashFn{
		Name:      name,
		HashLen:   blank.Size(),
		New:       newFn,
		BlankHash: blank.Sum(nil),
	}
}
