package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingIDPattern = regexp.MustCompile(`^MVM-\d{8}-[0-9a-f]{8}$`)

func TestNewBookingIDFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)
	id := NewBookingID(now)

	assert.Regexp(t, bookingIDPattern, id)
	assert.Contains(t, id, "MVM-20240501-")
}

func TestNewBookingIDDistinct(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewBookingID(now)
		assert.False(t, seen[id], "duplicate booking id %s", id)
		seen[id] = true
	}
}

func TestParseBookingID(t *testing.T) {
	t.Parallel()

	id := NewBookingID(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	parsed, err := ParseBookingID(id)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), parsed.Date)
	assert.Len(t, parsed.Suffix, 8)
}

func TestParseBookingIDRejectsMalformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"wrong prefix", "XYZ-20240501-3f2a9c1d"},
		{"missing parts", "MVM-20240501"},
		{"bad date", "MVM-202405xx-3f2a9c1d"},
		{"short suffix", "MVM-20240501-3f2a"},
		{"uppercase suffix", "MVM-20240501-3F2A9C1D"},
		{"non-hex suffix", "MVM-20240501-3f2a9c1z"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBookingID(tc.in)
			assert.ErrorIs(t, err, ErrBadBookingID)
		})
	}
}
