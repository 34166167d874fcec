package codec

import "github.com/klauspost/compress/zstd"

// newZstdEncoder wraps klauspost/compress/zstd, the same encoder the
// teacher uses for its own archive-creation pipeline (core/create.go).
// A level of 0 selects zstd.SpeedDefault.
func newZstdEncoder(level int) (Encoder, error) {
	speed := zstd.SpeedDefault
	if level > 0 {
		speed = zstd.EncoderLevelFromZstd(level)
	}
	b := &bufferedEncoder{method: MethodZstd, versionNeeded: 63}
	w, err := zstd.NewWriter(&b.buf,
		zstd.WithEncoderLevel(speed),
		zstd.WithEncoderConcurrency(1),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		return nil, err
	}
	b.closer = w
	return b, nil
}
