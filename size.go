package zipstream

import "github.com/streampack/zipstream/wire"

// SizeHint describes one entry for Size's archive-size pre-calculation:
// its name and the exact number of payload bytes it will contribute to
// the sink. For a Stored entry this is just the input length, since
// Stored guarantees compressed == uncompressed; for any other method the
// caller must already know (or conservatively over-estimate) the
// compressed size, since the compression ratio isn't knowable in advance.
type SizeHint struct {
	Name string
	Size uint64
}

// Size returns the exact byte length of the archive NewArchive would
// produce for entries, assuming each SizeHint.Size is the true number of
// payload bytes that entry will write. A caller that knows its entries'
// sizes ahead of time — most usefully, a set of Stored entries — can use
// this to set a Content-Length before streaming the archive body into a
// response, the way original_source's archive_size helper is used for.
func Size(entries []SizeHint) uint64 {
	var total uint64
	for _, e := range entries {
		name := []byte(normalizeName(e.Name))
		total += uint64(wire.LocalFileHeaderLen(wire.LocalFileHeader{Name: name}))
		total += e.Size
		total += uint64(wire.DataDescriptorSize)
		total += uint64(wire.CentralDirectoryHeaderLen(wire.CentralDirectoryHeader{Name: name}))
	}
	return total + uint64(wire.EndOfCentralDirectoryFixedSize)
}
