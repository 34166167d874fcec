package zipstream

import (
	"io"
	"log/slog"

	"github.com/opencontainers/go-digest"
)

const defaultBufferSize = 32 * 1024

// archiveConfig holds Archive configuration set via ArchiveOption. None of
// these fields affect the bytes written to the sink; they are purely
// operational.
type archiveConfig struct {
	logger     *slog.Logger
	bufferSize int
	digester   digest.Digester
}

// ArchiveOption configures an Archive at construction time.
type ArchiveOption func(*archiveConfig)

// WithLogger attaches a structured logger. The default discards all log
// output, matching the teacher's log() fallback pattern.
func WithLogger(logger *slog.Logger) ArchiveOption {
	return func(cfg *archiveConfig) { cfg.logger = logger }
}

// WithBufferSize sets the chunk size used to pump AppendEntry's input
// stream through the counting tee. The default is 32KiB.
func WithBufferSize(n int) ArchiveOption {
	return func(cfg *archiveConfig) {
		if n > 0 {
			cfg.bufferSize = n
		}
	}
}

// WithContentDigest enables an optional running digest over every raw byte
// written to the sink (local headers, payload, data descriptors, and the
// central directory alike). The digest is available via Archive.Digest
// after Finalize and is not part of the ZIP wire format; it exists purely
// for callers that want a content-addressed handle on the archive they just
// produced, the way the teacher's core/create.go hashes its data stream
// with crypto/sha256 for its own index.
func WithContentDigest() ArchiveOption {
	return func(cfg *archiveConfig) {
		cfg.digester = digest.Canonical.Digester()
	}
}

func (cfg *archiveConfig) log() *slog.Logger {
	if cfg.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg.logger
}

// digestSink wraps the caller's Sink to additionally feed every byte
// written through it into a running content digest, without altering what
// reaches the underlying Sink.
type digestSink struct {
	inner    Sink
	digester digest.Digester
}

func (s digestSink) WriteAll(p []byte) error {
	if err := s.inner.WriteAll(p); err != nil {
		return err
	}
	_, _ = s.digester.Hash().Write(p)
	return nil
}
