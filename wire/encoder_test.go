package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncoder_PutUint16(t *testing.T) {
	t.Parallel()

	e := NewEncoder(0)
	e.PutUint16(0x0102)
	assert.Equal(t, []byte{0x02, 0x01}, e.Bytes())
}

func TestEncoder_PutUint32(t *testing.T) {
	t.Parallel()

	e := NewEncoder(0)
	e.PutUint32(0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, e.Bytes())
}

func TestEncoder_PutBytes(t *testing.T) {
	t.Parallel()

	e := NewEncoder(0)
	e.PutUint16(0xAABB)
	e.PutBytes([]byte("hi"))
	assert.Equal(t, []byte{0xBB, 0xAA, 'h', 'i'}, e.Bytes())
	assert.Equal(t, 4, e.Len())
}
