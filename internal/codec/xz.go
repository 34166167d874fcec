package codec

import "github.com/ulikunitz/xz"

// newXzEncoder wraps ulikunitz/xz, the ecosystem's standard pure-Go XZ
// container implementation. Named directly (not grounded in the pack) per
// DESIGN.md.
func newXzEncoder() (Encoder, error) {
	b := &bufferedEncoder{method: MethodXz, versionNeeded: 63}
	w, err := xz.NewWriter(&b.buf)
	if err != nil {
		return nil, err
	}
	b.closer = w
	return b, nil
}
