package zipstream

import "fmt"

// Method identifies a ZIP compression method by its APPNOTE.TXT method
// code. The zero value, Stored, is the identity method.
type Method uint16

// Supported methods, per spec.md §4.3.
const (
	Stored  Method = 0
	Deflate Method = 8
	Bzip2   Method = 12
	Lzma    Method = 14
	Zstd    Method = 93
	Xz      Method = 95
)

func (m Method) String() string {
	switch m {
	case Stored:
		return "stored"
	case Deflate:
		return "deflate"
	case Bzip2:
		return "bzip2"
	case Lzma:
		return "lzma"
	case Zstd:
		return "zstd"
	case Xz:
		return "xz"
	default:
		return fmt.Sprintf("method(%d)", uint16(m))
	}
}

// valid reports whether m is one of the six supported methods.
func (m Method) valid() bool {
	switch m {
	case Stored, Deflate, Bzip2, Lzma, Zstd, Xz:
		return true
	default:
		return false
	}
}
