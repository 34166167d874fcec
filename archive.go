package zipstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/streampack/zipstream/internal/codec"
	"github.com/streampack/zipstream/internal/tee"
	"github.com/streampack/zipstream/wire"
)

// maxEntries is the 16-bit ceiling on the ZIP total_entries fields. This
// module does not implement the ZIP64 escape value, so it is also the hard
// limit on entry count.
const maxEntries = 0xFFFF

// max32 is the largest value any 32-bit ZIP offset or size field can hold.
const max32 = 0xFFFFFFFF

type phase uint8

const (
	phaseOpen phase = iota
	phaseFinalised
)

// Archive assembles a ZIP archive into a Sink one entry at a time. It is a
// single-owner object: all mutating methods must be called sequentially by
// one goroutine. Multiple independent Archives may be driven concurrently
// since they share no state.
type Archive struct {
	cfg   archiveConfig
	sink  Sink
	phase phase
	err   error // non-nil once poisoned; all further ops fail with it

	offset  uint64
	entries []EntryRecord
}

// NewArchive returns an Archive that writes to sink. The Archive owns sink
// until Finalize (or a fatal error); it is never closed by this package.
func NewArchive(sink Sink, opts ...ArchiveOption) *Archive {
	cfg := archiveConfig{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := sink
	if cfg.digester != nil {
		s = digestSink{inner: sink, digester: cfg.digester}
	}

	return &Archive{cfg: cfg, sink: s}
}

// Entries returns a snapshot of the sealed entry records appended so far.
func (a *Archive) Entries() []EntryRecord {
	out := make([]EntryRecord, len(a.entries))
	copy(out, a.entries)
	return out
}

// Digest returns the running content digest over every raw byte written to
// the sink, if WithContentDigest was passed to NewArchive and Finalize has
// completed. ok is false otherwise.
func (a *Archive) Digest() (d digest.Digest, ok bool) {
	if a.cfg.digester == nil || a.phase != phaseFinalised {
		return "", false
	}
	return a.cfg.digester.Digest(), true
}

// AppendEntry writes name's local header, then streams r through the
// method selected by opts, and finally writes the data descriptor. r is
// read to EOF. Precondition: the archive must not be finalised or
// poisoned.
func (a *Archive) AppendEntry(name string, opts EntryOptions, r io.Reader) error {
	return a.appendEntry(name, opts, false, r)
}

// AppendBytes is a convenience wrapper equivalent to AppendEntry with a
// reader over data.
func (a *Archive) AppendBytes(name string, opts EntryOptions, data []byte) error {
	return a.appendEntry(name, opts, false, bytes.NewReader(data))
}

// AppendDirectory appends a zero-length Stored entry whose name ends with
// "/". Mode defaults to 0o755 with the directory bit set in the external
// attributes; pass WithMode to override.
func (a *Archive) AppendDirectory(name string, opts ...EntryOption) error {
	dirOpts := NewEntryOptions(Stored, append([]EntryOption{WithMode(0o755)}, opts...)...)
	return a.appendEntry(name, dirOpts, true, nil)
}

func (a *Archive) appendEntry(name string, opts EntryOptions, isDir bool, r io.Reader) error {
	if err := a.checkUsable("append"); err != nil {
		return err
	}
	if len(a.entries) >= maxEntries {
		return a.poison(newError(ErrKindArchiveTooLarge, "append",
			errors.New("entry count would exceed the 16-bit total_entries limit")))
	}

	name = normalizeName(name)
	if isDir {
		opts.Method = Stored
		if !strings.HasSuffix(name, "/") {
			name += "/"
		}
	}
	if !opts.Method.valid() {
		return newError(ErrKindBadUsage, "append", fmt.Errorf("%s: unsupported method %v", name, opts.Method))
	}

	nameBytes := []byte(name)
	commentBytes := []byte(opts.Comment)
	if len(nameBytes) > wire.MaxFieldLength || len(commentBytes) > wire.MaxFieldLength {
		return a.poison(newError(ErrKindNameTooLong, "append", fmt.Errorf("%s: %w", name, wire.ErrFieldTooLong)))
	}

	localOffset := a.offset
	if localOffset > max32 {
		return a.poison(newError(ErrKindArchiveTooLarge, "append",
			fmt.Errorf("%s: local header offset %d exceeds 32-bit limit", name, localOffset)))
	}

	flags := wire.FlagSizesDeferred
	if needsUTF8Flag(name) {
		flags |= wire.FlagUTF8Name
	}
	dosTime, dosDate := toDOSTime(opts.ModTime)
	versionNeeded := methodVersionNeeded(opts.Method)

	enc := wire.NewEncoder(wire.LocalFileHeaderFixedSize + len(nameBytes))
	if err := wire.PutLocalFileHeader(enc, wire.LocalFileHeader{
		VersionNeeded: versionNeeded,
		Flags:         flags,
		Method:        uint16(opts.Method),
		ModTime:       dosTime,
		ModDate:       dosDate,
		Name:          nameBytes,
	}); err != nil {
		return a.poison(newError(ErrKindNameTooLong, "append", fmt.Errorf("%s: %w", name, err)))
	}
	if err := a.sink.WriteAll(enc.Bytes()); err != nil {
		return a.poison(newError(ErrKindSink, "append", fmt.Errorf("%s: %w", name, err)))
	}
	a.offset += uint64(enc.Len())

	uncompressedSize, compressedSize, crc, err := a.pump(name, opts, r)
	if err != nil {
		return err // already poisoned and wrapped by pump
	}
	if uncompressedSize > max32 || compressedSize > max32 {
		return a.poison(newError(ErrKindArchiveTooLarge, "append",
			fmt.Errorf("%s: entry size exceeds 32-bit limit", name)))
	}

	ddEnc := wire.NewEncoder(wire.DataDescriptorSize)
	wire.PutDataDescriptor(ddEnc, wire.DataDescriptor{
		CRC32:            crc,
		CompressedSize:   uint32(compressedSize),
		UncompressedSize: uint32(uncompressedSize),
	})
	if err := a.sink.WriteAll(ddEnc.Bytes()); err != nil {
		return a.poison(newError(ErrKindSink, "append", fmt.Errorf("%s: %w", name, err)))
	}
	a.offset += uint64(ddEnc.Len())

	a.entries = append(a.entries, EntryRecord{
		Name:              name,
		Method:            opts.Method,
		ModTime:           opts.ModTime,
		Mode:              opts.Mode,
		Comment:           opts.Comment,
		CRC32:             crc,
		UncompressedSize:  uncompressedSize,
		CompressedSize:    compressedSize,
		LocalHeaderOffset: localOffset,
		Flags:             flags,
		VersionNeeded:     versionNeeded,
	})

	a.cfg.log().Info("appended zip entry",
		"name", name, "method", opts.Method.String(),
		"uncompressed_size", uncompressedSize, "compressed_size", compressedSize)
	return nil
}

// pump drives r (if non-nil) through the counting tee for the selected
// method, in chunks of the configured buffer size, and returns the sealed
// sizes and checksum.
func (a *Archive) pump(name string, opts EntryOptions, r io.Reader) (uncompressedSize, compressedSize uint64, crc uint32, err error) {
	enc, err := codec.New(uint16(opts.Method), opts.Level)
	if err != nil {
		return 0, 0, 0, a.poison(newError(ErrKindCompression, "append", fmt.Errorf("%s: %w", name, err)))
	}
	t := tee.New(enc, a.sink)

	if r != nil {
		buf := make([]byte, a.cfg.bufferSize)
		for {
			n, rerr := r.Read(buf)
			if n > 0 {
				if werr := t.Write(buf[:n]); werr != nil {
					return 0, 0, 0, a.poison(classifyTeeErr(werr, name))
				}
			}
			if rerr == io.EOF {
				break
			}
			if rerr != nil {
				return 0, 0, 0, a.poison(newError(ErrKindInput, "append", fmt.Errorf("%s: %w", name, rerr)))
			}
		}
	}
	if err := t.Finish(); err != nil {
		return 0, 0, 0, a.poison(classifyTeeErr(err, name))
	}

	a.offset += t.CompressedSize()
	return t.UncompressedSize(), t.CompressedSize(), t.CRC32(), nil
}

func classifyTeeErr(err error, name string) error {
	var se *tee.SinkError
	if errors.As(err, &se) {
		return newError(ErrKindSink, "append", fmt.Errorf("%s: %w", name, se.Err))
	}
	return newError(ErrKindCompression, "append", fmt.Errorf("%s: %w", name, err))
}

// Finalize walks the sealed entry log, writes one central directory file
// header per entry, then the end-of-central-directory record, and
// transitions the archive to Finalised. No further appends are accepted
// afterward.
func (a *Archive) Finalize() error {
	if err := a.checkUsable("finalize"); err != nil {
		return err
	}

	cdStart := a.offset
	for _, e := range a.entries {
		nameBytes := []byte(e.Name)
		commentBytes := []byte(e.Comment)
		modTime, modDate := toDOSTime(e.ModTime)

		cdh := wire.CentralDirectoryHeader{
			VersionNeeded:     e.VersionNeeded,
			Flags:             e.Flags,
			Method:            uint16(e.Method),
			ModTime:           modTime,
			ModDate:           modDate,
			CRC32:             e.CRC32,
			CompressedSize:    uint32(e.CompressedSize),
			UncompressedSize:  uint32(e.UncompressedSize),
			ExternalAttrs:     externalAttrs(e.Mode, strings.HasSuffix(e.Name, "/")),
			LocalHeaderOffset: uint32(e.LocalHeaderOffset),
			Name:              nameBytes,
			Comment:           commentBytes,
		}
		enc := wire.NewEncoder(wire.CentralDirectoryHeaderLen(cdh))
		if err := wire.PutCentralDirectoryHeader(enc, cdh); err != nil {
			return a.poison(newError(ErrKindNameTooLong, "finalize", fmt.Errorf("%s: %w", e.Name, err)))
		}
		if err := a.sink.WriteAll(enc.Bytes()); err != nil {
			return a.poison(newError(ErrKindSink, "finalize", fmt.Errorf("%s: %w", e.Name, err)))
		}
		a.offset += uint64(enc.Len())
	}

	cdSize := a.offset - cdStart
	if cdStart > max32 || cdSize > max32 {
		return a.poison(newError(ErrKindArchiveTooLarge, "finalize",
			errors.New("central directory offset or size exceeds 32-bit limit")))
	}

	eocdEnc := wire.NewEncoder(wire.EndOfCentralDirectoryFixedSize)
	if err := wire.PutEndOfCentralDirectory(eocdEnc, wire.EndOfCentralDirectory{
		EntriesOnDisk: uint16(len(a.entries)),
		TotalEntries:  uint16(len(a.entries)),
		CDSize:        uint32(cdSize),
		CDOffset:      uint32(cdStart),
	}); err != nil {
		return a.poison(newError(ErrKindNameTooLong, "finalize", err))
	}
	if err := a.sink.WriteAll(eocdEnc.Bytes()); err != nil {
		return a.poison(newError(ErrKindSink, "finalize", err))
	}
	a.offset += uint64(eocdEnc.Len())

	a.phase = phaseFinalised
	a.cfg.log().Info("finalised zip archive", "entries", len(a.entries), "size", a.offset)
	return nil
}

func (a *Archive) checkUsable(op string) error {
	if a.err != nil {
		return newError(ErrKindBadUsage, op, ErrAborted)
	}
	if a.phase == phaseFinalised {
		return newError(ErrKindBadUsage, op, ErrFinalised)
	}
	return nil
}

func (a *Archive) poison(err error) error {
	a.err = err
	return err
}

func methodVersionNeeded(m Method) uint16 {
	switch m {
	case Stored:
		return 10
	case Deflate:
		return 20
	case Bzip2:
		return 46
	default: // Lzma, Zstd, Xz
		return 63
	}
}
