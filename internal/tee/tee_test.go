package tee

import (
	"errors"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streampack/zipstream/internal/codec"
)

type fakeSink struct {
	written []byte
	failOn  int // fail on the failOn-th WriteAll call, 0 disables
	calls   int
	failErr error
}

func (s *fakeSink) WriteAll(p []byte) error {
	s.calls++
	if s.failOn != 0 && s.calls == s.failOn {
		return s.failErr
	}
	s.written = append(s.written, p...)
	return nil
}

func TestTee_StoredTracksCRCAndSizes(t *testing.T) {
	t.Parallel()

	enc, err := codec.New(codec.MethodStored, 0)
	require.NoError(t, err)
	sink := &fakeSink{}
	tr := New(enc, sink)

	data := []byte("hello world")
	require.NoError(t, tr.Write(data[:5]))
	require.NoError(t, tr.Write(data[5:]))
	require.NoError(t, tr.Finish())

	assert.Equal(t, data, sink.written)
	assert.Equal(t, crc32.ChecksumIEEE(data), tr.CRC32())
	assert.EqualValues(t, len(data), tr.UncompressedSize())
	assert.EqualValues(t, len(data), tr.CompressedSize())
}

func TestTee_EmptyPayload(t *testing.T) {
	t.Parallel()

	enc, err := codec.New(codec.MethodStored, 0)
	require.NoError(t, err)
	sink := &fakeSink{}
	tr := New(enc, sink)

	require.NoError(t, tr.Finish())
	assert.Equal(t, uint32(0), tr.CRC32())
	assert.EqualValues(t, 0, tr.UncompressedSize())
	assert.EqualValues(t, 0, tr.CompressedSize())
}

func TestTee_SinkFailureWrapsAsSinkError(t *testing.T) {
	t.Parallel()

	enc, err := codec.New(codec.MethodStored, 0)
	require.NoError(t, err)
	wantErr := errors.New("disk full")
	sink := &fakeSink{failOn: 1, failErr: wantErr}
	tr := New(enc, sink)

	err = tr.Write([]byte("data"))
	require.Error(t, err)

	var se *SinkError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, wantErr)
}

func TestTee_MethodAndVersionNeeded(t *testing.T) {
	t.Parallel()

	enc, err := codec.New(codec.MethodDeflate, 0)
	require.NoError(t, err)
	tr := New(enc, &fakeSink{})

	assert.Equal(t, codec.MethodDeflate, tr.Method())
	assert.EqualValues(t, 20, tr.VersionNeeded())
}
