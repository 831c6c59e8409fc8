package kdf

import (
	"encoding/binary"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrExpandTooLarge is returned by Expand (and so by LabeledExpand) when the
// requested length exceeds 255*HashLen; it mirrors HpkeContext's
// ErrExportTooLarge for the raw (non-labeled) Expand operation. Extract
// never fails on length and has no such error.
var ErrExpandTooLarge = errors.New("kdf: requested output exceeds 255*HashLen")

// HKDF implements RFC 5869 extract/expand plus the TLS-1.3/HPKE-style
// labeled variants, all scoped by a version prefix that is prepended
// inside every LabeledExtract/LabeledExpand call. The zero value is not
// usable; construct with New.
type HKDF struct {
	Prefix []byte
	Hash   HashFn
}

// New returns an HKDF that prepends prefix to every labeled operation's
// label field, using hash as the underlying hash function.
func New(prefix []byte, hash HashFn) *HKDF {
	return &HKDF{Prefix: prefix, Hash: hash}
}

// Extract implements RFC 5869 HKDF-Extract.
func (h *HKDF) Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(h.Hash.New, ikm, salt)
}

// Expand implements RFC 5869 HKDF-Expand, producing exactly L bytes. It
// fails if L exceeds 255*HashLen.
func (h *HKDF) Expand(prk, info []byte, length int) ([]byte, error) {
	if length > 255*h.Hash.HashLen {
		return nil, ErrExpandTooLarge
	}
	reader := hkdf.Expand(h.Hash.New, prk, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, err
	}
	return out, nil
}

// LabeledExtract computes Extract(salt, prefix‖label‖ikm), the HPKE
// LabeledExtract construction.
func (h *HKDF) LabeledExtract(salt []byte, label string, ikm []byte) []byte {
	labeledIKM := make([]byte, 0, len(h.Prefix)+len(label)+len(ikm))
	labeledIKM = append(labeledIKM, h.Prefix...)
	labeledIKM = append(labeledIKM, label...)
	labeledIKM = append(labeledIKM, ikm...)
	return h.Extract(salt, labeledIKM)
}

// LabeledExpand computes Expand(prk, I2OSP(L,2)‖prefix‖label‖info, L), the
// HPKE LabeledExpand construction.
func (h *HKDF) LabeledExpand(prk []byte, label string, info []byte, length int) ([]byte, error) {
	labeledInfo := make([]byte, 2, 2+len(h.Prefix)+len(label)+len(info))
	binary.BigEndian.PutUint16(labeledInfo, uint16(length))
	labeledInfo = append(labeledInfo, h.Prefix...)
	labeledInfo = append(labeledInfo, label...)
	labeledInfo = append(labeledInfo, info...)
	return h.Expand(prk, labeledInfo, length)
}
