// Package codec presents the ZIP compression methods behind one uniform
// incremental-encoding contract: Write returns whatever compressed bytes an
// input chunk produced (which may be none, since compressors buffer
// internally), and Close flushes any remaining buffered state. Each concrete
// encoder is constructed fresh per entry and dropped after Close, matching
// the archive assembler's per-append lifecycle.
package codec

import (
	"bytes"
	"fmt"
)

// Method codes, matching the ZIP appnote method identifiers used in
// zipstream.Method. Duplicated here (rather than imported) to keep this
// package free of a dependency on the root package, the same way the
// teacher repo carries its Compression enum independently in both
// core/internal/blobtype and internal/blobtype for the same reason.
const (
	MethodStored  uint16 = 0
	MethodDeflate uint16 = 8
	MethodBzip2   uint16 = 12
	MethodLzma    uint16 = 14
	MethodZstd    uint16 = 93
	MethodXz      uint16 = 95
)

// Encoder is the uniform contract every compression method is adapted to.
type Encoder interface {
	// Method returns the ZIP method code this encoder implements.
	Method() uint16
	// VersionNeeded returns the minimum ZIP version required by this method.
	VersionNeeded() uint16
	// Write compresses p and returns whatever compressed bytes are ready.
	// It may return a nil or empty slice if the compressor is still
	// buffering internally.
	Write(p []byte) ([]byte, error)
	// Close flushes any remaining buffered state and returns the final
	// compressed bytes. The encoder must not be used again afterward.
	Close() ([]byte, error)
}

// New constructs a fresh Encoder for method at the given compression level.
// A level of 0 selects each library's default. Level is ignored by Stored,
// Lzma and Xz, whose encoders are always built with fixed settings.
func New(method uint16, level int) (Encoder, error) {
	switch method {
	case MethodStored:
		return newStoredEncoder(), nil
	case MethodDeflate:
		return newDeflateEncoder(level)
	case MethodBzip2:
		return newBzip2Encoder(level)
	case MethodLzma:
		return newLzmaEncoder()
	case MethodZstd:
		return newZstdEncoder(level)
	case MethodXz:
		return newXzEncoder()
	default:
		return nil, fmt.Errorf("codec: unsupported method %d", method)
	}
}

// bufferedEncoder adapts an io.WriteCloser-shaped compressor (the common
// shape of every Go compression library in the pack) to the push-style
// Write/Close contract above: the compressor writes into an in-memory
// buffer, which is drained after every call.
type bufferedEncoder struct {
	buf           bytes.Buffer
	closer        interface {
		Write([]byte) (int, error)
		Close() error
	}
	method        uint16
	versionNeeded uint16
}

func (b *bufferedEncoder) Method() uint16        { return b.method }
func (b *bufferedEncoder) VersionNeeded() uint16 { return b.versionNeeded }

func (b *bufferedEncoder) Write(p []byte) ([]byte, error) {
	if _, err := b.closer.Write(p); err != nil {
		return nil, err
	}
	return b.drain(), nil
}

func (b *bufferedEncoder) Close() ([]byte, error) {
	if err := b.closer.Close(); err != nil {
		return nil, err
	}
	return b.drain(), nil
}

func (b *bufferedEncoder) drain() []byte {
	if b.buf.Len() == 0 {
		return nil
	}
	out := make([]byte, b.buf.Len())
	copy(out, b.buf.Bytes())
	b.buf.Reset()
	return out
}
