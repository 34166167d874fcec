package codec

import "github.com/dsnet/compress/bzip2"

// newBzip2Encoder wraps dsnet/compress/bzip2. The standard library's
// compress/bzip2 package only decodes; dsnet/compress is the ecosystem's
// pure-Go bzip2 encoder and is named directly (not grounded in the pack)
// per DESIGN.md.
func newBzip2Encoder(level int) (Encoder, error) {
	if level == 0 {
		level = bzip2.DefaultCompression
	}
	b := &bufferedEncoder{method: MethodBzip2, versionNeeded: 46}
	w, err := bzip2.NewWriter(&b.buf, &bzip2.WriterConfig{Level: level})
	if err != nil {
		return nil, err
	}
	b.closer = w
	return b, nil
}
