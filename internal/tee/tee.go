// Package tee implements the counting tee (spec §4.4): the single point
// that updates the CRC-32 and byte counts for an entry while its payload
// flows through the compressor toward the sink. No other component reads
// raw entry bytes, so both sizes and the checksum are always derived from
// exactly what passed through here.
package tee

import (
	"github.com/streampack/zipstream/crc32z"
	"github.com/streampack/zipstream/internal/codec"
)

// Sink is the minimal write-all contract the tee writes compressed output
// to. zipstream.Sink satisfies this interface structurally.
type Sink interface {
	WriteAll(p []byte) error
}

// Tee wraps a codec.Encoder and forwards its output to a Sink, tracking the
// CRC-32 and both byte counts for the entry as it goes.
type Tee struct {
	enc  codec.Encoder
	sink Sink
	crc  crc32z.Accumulator

	uncompressedSize uint64
	compressedSize   uint64
}

// New returns a Tee driving enc and writing its output to sink.
func New(enc codec.Encoder, sink Sink) *Tee {
	return &Tee{enc: enc, sink: sink}
}

// Write feeds one chunk of uncompressed entry bytes through the tee: the
// CRC and uncompressed count are updated first, then the chunk is
// compressed and any resulting bytes are written to the sink.
func (t *Tee) Write(p []byte) error {
	t.crc.Update(p)
	t.uncompressedSize += uint64(len(p))

	out, err := t.enc.Write(p)
	if err != nil {
		return err
	}
	return t.emit(out)
}

// Finish flushes the compressor's remaining buffered state and writes any
// final bytes to the sink. The Tee must not be used again afterward.
func (t *Tee) Finish() error {
	out, err := t.enc.Close()
	if err != nil {
		return err
	}
	return t.emit(out)
}

func (t *Tee) emit(out []byte) error {
	if len(out) == 0 {
		return nil
	}
	if err := t.sink.WriteAll(out); err != nil {
		return &SinkError{Err: err}
	}
	t.compressedSize += uint64(len(out))
	return nil
}

// SinkError marks a failure as having come from the Sink rather than from
// the codec, so callers can classify it (e.g. into a distinct error kind)
// without the Tee needing to know their error taxonomy.
type SinkError struct{ Err error }

func (e *SinkError) Error() string { return "tee: sink write failed: " + e.Err.Error() }
func (e *SinkError) Unwrap() error { return e.Err }

// CRC32 returns the checksum of all uncompressed bytes seen so far.
func (t *Tee) CRC32() uint32 { return t.crc.Sum() }

// UncompressedSize returns the number of bytes fed into Write so far.
func (t *Tee) UncompressedSize() uint64 { return t.uncompressedSize }

// CompressedSize returns the number of bytes written to the sink so far.
func (t *Tee) CompressedSize() uint64 { return t.compressedSize }

// Method returns the underlying encoder's ZIP method code.
func (t *Tee) Method() uint16 { return t.enc.Method() }

// VersionNeeded returns the underlying encoder's minimum ZIP version.
func (t *Tee) VersionNeeded() uint16 { return t.enc.VersionNeeded() }
