package codec

// storedEncoder implements the identity method: output equals input.
type storedEncoder struct{}

func newStoredEncoder() Encoder {
	return storedEncoder{}
}

func (storedEncoder) Method() uint16        { return MethodStored }
func (storedEncoder) VersionNeeded() uint16 { return 10 }

func (storedEncoder) Write(p []byte) ([]byte, error) {
	if len(p) == 0 {
		return nil, nil
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

func (storedEncoder) Close() ([]byte, error) {
	return nil, nil
}
