package kdf

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func hexDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("hex.DecodeString(%q): %v", s, err)
	}
	return b
}

// TestExtractExpandRFC5869Case1 reproduces RFC 5869 Appendix A Test Case 1
// (SHA-256), the basic, unlabeled HKDF this package's labeled variants
// build on.
func TestExtractExpandRFC5869Case1(t *testing.T) {
	h := New(nil, Sha256)
	ikm := hexDecode(t, "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt := hexDecode(t, "000102030405060708090a0b0c")
	info := hexDecode(t, "f0f1f2f3f4f5f6f7f8f9")

	prk := h.Extract(salt, ikm)
	wantPRK := hexDecode(t, "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5")
	if !bytes.Equal(prk, wantPRK) {
		t.Errorf("Extract = %x, want %x", prk, wantPRK)
	}

	okm, err := h.Expand(prk, info, 42)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	wantOKM := hexDecode(t, "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")
	if !bytes.Equal(okm, wantOKM) {
		t.Errorf("Expand = %x, want %x", okm, wantOKM)
	}
}

func TestExpandRejectsTooLarge(t *testing.T) {
	h := New(nil, Sha256)
	prk := h.Extract(nil, []byte("ikm"))
	if _, err := h.Expand(prk, nil, 255*Sha256.HashLen+1); err != ErrExpandTooLarge {
		t.Fatalf("Expand error = %v, want ErrExpandTooLarge", err)
	}
}

// TestLabeledExpandDeterministic checks that LabeledExpand is a pure
// function of its inputs, and that changing the prefix (HPKE's version
// string) changes the output — the labeling scheme this package exists
// to implement.
func TestLabeledExpandDeterministic(t *testing.T) {
	prk := []byte("some-pseudorandom-key-of-appropriate-length!!!!")

	a := New([]byte("HPKE-05 "), Sha256)
	out1, err := a.LabeledExpand(prk, "sec", []byte("ctx"), 32)
	if err != nil {
		t.Fatalf("LabeledExpand: %v", err)
	}
	out2, err := a.LabeledExpand(prk, "sec", []byte("ctx"), 32)
	if err != nil {
		t.Fatalf("LabeledExpand: %v", err)
	}
	if !bytes.Equal(out1, out2) {
		t.Error("LabeledExpand is not deterministic")
	}

	b := New([]byte("HPKE-07 "), Sha256)
	out3, err := b.LabeledExpand(prk, "sec", []byte("ctx"), 32)
	if err != nil {
		t.Fatalf("LabeledExpand: %v", err)
	}
	if bytes.Equal(out1, out3) {
		t.Error("LabeledExpand did not depend on the version prefix")
	}
}

func TestLabeledExtractIncludesPrefixAndLabel(t *testing.T) {
	h := New([]byte("HPKE-05 "), Sha256)
	out1 := h.LabeledExtract(nil, "dkp_prk", []byte("ikm"))
	out2 := h.LabeledExtract(nil, "other", []byte("ikm"))
	if bytes.Equal(out1, out2) {
		t.Error("LabeledExtract did not depend on the label")
	}
	other := New([]byte("HPKE-07 "), Sha256)
	out3 := other.LabeledExtract(nil, "dkp_prk", []byte("ikm"))
	if bytes.Equal(out1, out3) {
		t.Error("LabeledExtract did not depend on the version prefix")
	}
}
