package zipstream

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEntryOptions_Defaults(t *testing.T) {
	t.Parallel()

	before := time.Now()
	eo := NewEntryOptions(Deflate)
	after := time.Now()

	assert.Equal(t, Deflate, eo.Method)
	assert.Equal(t, fs.FileMode(0o644), eo.Mode)
	assert.False(t, eo.ModTime.Before(before))
	assert.False(t, eo.ModTime.After(after))
}

func TestNewEntryOptions_AppliesOptions(t *testing.T) {
	t.Parallel()

	mtime := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	eo := NewEntryOptions(Stored,
		WithModTime(mtime),
		WithMode(0o755),
		WithComment("a comment"),
		WithLevel(9),
	)

	assert.Equal(t, mtime, eo.ModTime)
	assert.Equal(t, fs.FileMode(0o755), eo.Mode)
	assert.Equal(t, "a comment", eo.Comment)
	assert.Equal(t, 9, eo.Level)
}

func TestExternalAttrs_File(t *testing.T) {
	t.Parallel()

	attrs := externalAttrs(0o644, false)
	assert.Equal(t, uint32(0o644)<<16, attrs)
}

func TestExternalAttrs_Directory(t *testing.T) {
	t.Parallel()

	attrs := externalAttrs(0o755, true)
	assert.NotZero(t, attrs&dosDirectoryBit)
	assert.Equal(t, uint32(0o755), (attrs>>16)&0o777)
}
