// Package wire encodes the fixed-layout records that make up a ZIP archive:
// the local file header, data descriptor, central directory file header, and
// end of central directory record. All multi-byte fields are little-endian,
// per APPNOTE.TXT. This package only encodes; there is no decoder, since
// reading ZIP archives is not a feature of this module.
package wire

// Encoder appends little-endian scalars and raw byte spans to a growable
// buffer. It never inserts padding or alignment.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with capacity pre-reserved for size bytes.
func NewEncoder(size int) *Encoder {
	return &Encoder{buf: make([]byte, 0, size)}
}

// PutUint16 appends a little-endian u16.
func (e *Encoder) PutUint16(v uint16) {
	e.buf = append(e.buf, byte(v), byte(v>>8))
}

// PutUint32 appends a little-endian u32.
func (e *Encoder) PutUint32(v uint32) {
	e.buf = append(e.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// PutBytes appends raw bytes verbatim.
func (e *Encoder) PutBytes(p []byte) {
	e.buf = append(e.buf, p...)
}

// Len returns the number of bytes appended so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Bytes returns the accumulated buffer. The caller must not modify it after
// the Encoder is reused.
func (e *Encoder) Bytes() []byte {
	return e.buf
}
