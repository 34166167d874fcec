package zipstream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToDOSTime(t *testing.T) {
	t.Parallel()

	tm := time.Date(2024, time.March, 15, 13, 45, 30, 0, time.UTC)
	gotTime, gotDate := toDOSTime(tm)

	wantTime := uint16(13<<11 | 45<<5 | 15)
	wantDate := uint16((2024-1980)<<9 | 3<<5 | 15)
	assert.Equal(t, wantTime, gotTime)
	assert.Equal(t, wantDate, gotDate)
}

func TestToDOSTime_ClampsPre1980(t *testing.T) {
	t.Parallel()

	tm := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, gotDate := toDOSTime(tm)

	wantDate := uint16(0<<9 | 1<<5 | 1)
	assert.Equal(t, wantDate, gotDate)
}
