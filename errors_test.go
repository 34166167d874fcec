package zipstream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArchiveError_IsMatchesSentinel(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := newError(ErrKindSink, "append", cause)

	assert.ErrorIs(t, err, ErrSinkFailure)
	assert.NotErrorIs(t, err, ErrInputFailure)
}

func TestArchiveError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := newError(ErrKindCompression, "append", cause)

	assert.Same(t, cause, errors.Unwrap(err))
}

func TestArchiveError_Error_IncludesOpAndKind(t *testing.T) {
	t.Parallel()

	err := newError(ErrKindNameTooLong, "append", errors.New("too long"))
	assert.Contains(t, err.Error(), "append")
	assert.Contains(t, err.Error(), "name too long")
}
