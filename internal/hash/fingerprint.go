// Package hash provides the xxHash64 fingerprints used to identify schemas
// and field names.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a field name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Fingerprint accumulates an order-sensitive hash over a sequence of strings.
type Fingerprint struct {
	d *xxhash.Digest
}

// NewFingerprint creates an empty fingerprint.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{d: xxhash.New()}
}

// Add mixes s into the fingerprint. Each string is terminated with a NUL
// byte so that ("ab", "c") and ("a", "bc") hash differently.
func (f *Fingerprint) Add(s string) {
	_, _ = f.d.WriteString(s)
	_, _ = f.d.Write([]byte{0})
}

// Sum64 returns the current fingerprint value.
func (f *Fingerprint) Sum64() uint64 {
	return f.d.Sum64()
}
