// Package crc32z provides the CRC-32 accumulator used to checksum entry
// payloads. It wraps hash/crc32's IEEE table (polynomial 0xEDB88320), the
// same table every conformant ZIP reader and writer uses, so its output is
// bit-exact with the CRC field ZIP tools expect.
package crc32z

import "hash/crc32"

// Accumulator computes a running CRC-32 over bytes observed via Update.
// The zero value is ready to use.
type Accumulator struct {
	crc uint32
}

// Reset clears the accumulator back to its initial state.
func (a *Accumulator) Reset() {
	a.crc = 0
}

// Update folds p into the running checksum.
func (a *Accumulator) Update(p []byte) {
	a.crc = crc32.Update(a.crc, crc32.IEEETable, p)
}

// Sum returns the checksum of all bytes observed so far.
func (a *Accumulator) Sum() uint32 {
	return a.crc
}
