// Package zipstream produces ZIP archives in a single forward pass over a
// write-only [Sink], without ever seeking backward. Every entry's CRC-32
// and both its compressed and uncompressed sizes are computed as its bytes
// flow through, then recorded after the fact in a data descriptor and the
// trailing central directory, so the result is a conventionally readable
// ZIP archive even though nothing was ever rewritten in place.
//
// Reading ZIP archives is not a feature of this package; round-tripping is
// covered only by this module's own tests, against the standard library's
// archive/zip reader.
//
// # Quick Start
//
// Append entries to an [Archive] and finalize it:
//
//	arc := zipstream.NewArchive(zipstream.WriterSink{W: out})
//	err := arc.AppendEntry("hello.txt",
//	    zipstream.NewEntryOptions(zipstream.Deflate), strings.NewReader("hi"))
//	if err != nil {
//	    return err
//	}
//	if err := arc.Finalize(); err != nil {
//	    return err
//	}
//
// # Compression methods
//
// Six methods are supported: [Stored], [Deflate], [Bzip2], [Lzma], [Zstd],
// and [Xz]. Each entry picks its own method independently via
// [EntryOptions].
//
// # Pre-calculating archive size
//
// [Size] computes the exact byte length an archive will have before any
// entry is written, given each entry's name and the payload size it will
// contribute. This lets a caller set a Content-Length header before
// streaming an archive's bytes into an HTTP response body — the classic
// use case for a Sink that is a socket or response writer rather than a
// file.
//
// # Error handling
//
// Any fatal error during [Archive.AppendEntry] or [Archive.Finalize]
// poisons the archive. The error returned by the failing call matches its
// cause with [errors.Is] against [ErrInputFailure], [ErrSinkFailure],
// [ErrCompressionFailed], [ErrNameTooLong], or [ErrArchiveTooLarge]; every
// later call returns an [ArchiveError] matching [ErrBadUsage] and
// [ErrAborted], which does not carry the original cause. There is no
// rollback: the Sink is append-only, so bytes already written stay written.
package zipstream
