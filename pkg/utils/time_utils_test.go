package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", parsed.Format(DateLayout))

	_, err = ParseDate("01/09/2026")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTripLengthDays(t *testing.T) {
	start, _ := ParseDate("2026-09-01")

	sameDay, _ := ParseDate("2026-09-01")
	assert.Equal(t, 1, TripLengthDays(start, sameDay))

	threeDays, _ := ParseDate("2026-09-03")
	assert.Equal(t, 3, TripLengthDays(start, threeDays))
}
