package codec

import "github.com/klauspost/compress/flate"

// newDeflateEncoder wraps klauspost/compress's raw DEFLATE writer (no zlib
// or gzip framing), the module the teacher already depends on for zstd. A
// level of 0 selects flate.DefaultCompression.
func newDeflateEncoder(level int) (Encoder, error) {
	if level == 0 {
		level = flate.DefaultCompression
	}
	b := &bufferedEncoder{method: MethodDeflate, versionNeeded: 20}
	w, err := flate.NewWriter(&b.buf, level)
	if err != nil {
		return nil, err
	}
	b.closer = w
	return b, nil
}
