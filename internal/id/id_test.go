package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntryID(t *testing.T) {
	assert.Equal(t, "2026-08-001", FormatEntryID(2026, 8, 1))
	assert.Equal(t, "2026-12-042", FormatEntryID(2026, 12, 42))
	assert.Equal(t, "2027-01-100", FormatEntryID(2027, 1, 100))
}

func TestParseEntryID(t *testing.T) {
	year, month, seq, err := ParseEntryID("2026-08-017")
	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 8, month)
	assert.Equal(t, 17, seq)
}

func TestParseEntryID_RoundTrip(t *testing.T) {
	year, month, seq, err := ParseEntryID(FormatEntryID(2026, 8, 3))
	require.NoError(t, err)
	assert.Equal(t, FormatEntryID(year, month, seq), "2026-08-003")
}

func TestParseEntryID_Invalid(t *testing.T) {
	for _, bad := range []string{"", "2026-08", "2026/08/001", "abcd-08-001", "2026-xx-001", "2026-08-xyz"} {
		_, _, _, err := ParseEntryID(bad)
		assert.Error(t, err, "id %q", bad)
	}
}
