package codec

import (
	"encoding/binary"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// LZMA properties for the ZIP method: the LZMA SDK's own defaults (lc=3,
// lp=0, pb=2) and a fixed dictionary capacity, chosen per spec's Open
// Question resolution (SPEC_FULL.md §6): APPNOTE.TXT §5.8's 4-byte
// version/properties-length header followed by the 5-byte properties,
// rather than the original_source crate's plain .lzma framing.
const (
	lzmaLC      = 3
	lzmaLP      = 0
	lzmaPB      = 2
	lzmaDictCap = 4 << 20 // 4 MiB
)

// lzmaHeader builds the 9-byte prefix APPNOTE.TXT §5.8 expects before the
// raw LZMA1 stream: 2-byte version, 2-byte properties size, 5-byte
// properties (1 lc/lp/pb byte + 4-byte little-endian dictionary size).
func lzmaHeader() []byte {
	propsByte := byte((lzmaPB*5+lzmaLP)*9 + lzmaLC)
	header := make([]byte, 9)
	header[0] = 9  // major version (LZMA SDK 9.20)
	header[1] = 20 // minor version
	binary.LittleEndian.PutUint16(header[2:4], 5)
	header[4] = propsByte
	binary.LittleEndian.PutUint32(header[5:9], lzmaDictCap)
	return header
}

// newLzmaEncoder wraps ulikunitz/xz/lzma's classic LZMA1 writer and
// prepends the ZIP-specific header manually, since the ZIP LZMA method
// does not use the standalone .lzma container format. The classic writer
// always emits its own lzma.HeaderLen-byte header first (properties byte,
// dictionary size, and a size field the ZIP format doesn't carry), so
// headerSkipWriter discards it and forwards only the raw LZMA1 stream
// that follows.
func newLzmaEncoder() (Encoder, error) {
	b := &bufferedEncoder{method: MethodLzma, versionNeeded: 63}
	b.buf.Write(lzmaHeader())

	props := lzma.Properties{LC: lzmaLC, LP: lzmaLP, PB: lzmaPB}
	cfg := lzma.WriterConfig{
		Properties:   &props,
		DictCap:      lzmaDictCap,
		SizeInHeader: false,
		EOSMarker:    true,
	}
	w, err := cfg.NewWriter(&headerSkipWriter{w: &b.buf, skip: lzma.HeaderLen})
	if err != nil {
		return nil, err
	}
	b.closer = w
	return b, nil
}

// headerSkipWriter discards the first skip bytes written to it (which may
// arrive across multiple Write calls) and forwards everything after.
type headerSkipWriter struct {
	w    io.Writer
	skip int
}

func (h *headerSkipWriter) Write(p []byte) (int, error) {
	n := len(p)
	if h.skip > 0 {
		if h.skip >= len(p) {
			h.skip -= len(p)
			return n, nil
		}
		p = p[h.skip:]
		h.skip = 0
	}
	if _, err := h.w.Write(p); err != nil {
		return 0, err
	}
	return n, nil
}
