package zipstream

import (
	"io/fs"
	"time"
)

// EntryOptions is the immutable per-append configuration for one entry
// (spec.md §3, "Entry descriptor").
type EntryOptions struct {
	Method  Method
	ModTime time.Time
	Mode    fs.FileMode
	Comment string
	// Level is the compression level passed to the selected method's
	// encoder. Zero selects that method's own default. Only Deflate, Bzip2
	// and Zstd use it; Stored, Lzma and Xz ignore it.
	Level int
}

// EntryOption configures an EntryOptions value returned by NewEntryOptions.
type EntryOption func(*EntryOptions)

// NewEntryOptions builds an EntryOptions for method, defaulting ModTime to
// now and Mode to 0o644, then applying opts in order.
func NewEntryOptions(method Method, opts ...EntryOption) EntryOptions {
	eo := EntryOptions{
		Method:  method,
		ModTime: time.Now(),
		Mode:    0o644,
	}
	for _, opt := range opts {
		opt(&eo)
	}
	return eo
}

// WithModTime sets the entry's modification time.
func WithModTime(t time.Time) EntryOption {
	return func(eo *EntryOptions) { eo.ModTime = t }
}

// WithMode sets the entry's POSIX permission bits.
func WithMode(mode fs.FileMode) EntryOption {
	return func(eo *EntryOptions) { eo.Mode = mode }
}

// WithComment sets the entry's central-directory comment.
func WithComment(comment string) EntryOption {
	return func(eo *EntryOptions) { eo.Comment = comment }
}

// WithLevel sets the compression level passed to the entry's encoder.
func WithLevel(level int) EntryOption {
	return func(eo *EntryOptions) { eo.Level = level }
}

// EntryRecord is the sealed bookkeeping record for one appended entry
// (spec.md §3, "Entry record"), used later to synthesise the central
// directory. It is immutable once appended to Archive's entry list.
type EntryRecord struct {
	Name              string
	Method            Method
	ModTime           time.Time
	Mode              fs.FileMode
	Comment           string
	CRC32             uint32
	UncompressedSize  uint64
	CompressedSize    uint64
	LocalHeaderOffset uint64
	Flags             uint16
	VersionNeeded     uint16
}

const dosDirectoryBit = 0x10 // MS-DOS FILE_ATTRIBUTE_DIRECTORY, low byte of external attrs
const unixModeDir = 0x4000   // S_IFDIR, Unix directory bit in the high 16 bits

// externalAttrs packs mode into the high 16 bits of the ZIP external
// attributes field, per spec.md §6, setting the MS-DOS directory bit in
// the low byte for directory entries.
func externalAttrs(mode fs.FileMode, isDir bool) uint32 {
	attrs := uint32(mode.Perm()) << 16
	if isDir {
		attrs |= unixModeDir << 16
		attrs |= dosDirectoryBit
	}
	return attrs
}
