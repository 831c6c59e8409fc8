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

// Package hpkecore implements the encryption/decryption and key-export
// engine at the heart of Hybrid Public Key Encryption (HPKE), built on top
// of a TLS-1.3-style cipher suite abstraction.
//
// The package does not perform the KEM encapsulation step or the HPKE key
// schedule that derives a context's keys from a shared secret; it picks up
// once a caller already has a keyed AEAD, an exporter secret, a labeled
// HKDF, and a suite id, and provides Seal, Open and ExportSecret on top of them.
// Suite selection (mapping a CipherSuite / NamedGroup to concrete AEAD, KDF
// and key-exchange implementations) lives in the sibling suite package.
package hpkecore
