//go:build !aegis

package aead

// AEGISEnabled reports whether this build was compiled with the "aegis"
// build tag. The suite factory checks this before calling
// NewAEGIS128L/NewAEGIS256, rather than relying on their nil return.
const AEGISEnabled = false

// NewAEGIS128L is unavailable in this build; it returns nil and every
// caller must check the accompanying factory error instead. See
// suite.Factory.MakeAEAD, which surfaces ErrNotImplemented before ever
// calling this.
func NewAEGIS128L() Cipher { return nil }

// NewAEGIS256 is unavailable in this build; see NewAEGIS128L.
func NewAEGIS256() Cipher { return nil }
