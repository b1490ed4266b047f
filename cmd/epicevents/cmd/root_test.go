// ABOUTME: Tests for CLI helpers
// ABOUTME: Covers decimal amount parsing and formatting and date parsing

package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{in: "0", want: 0},
		{in: "1", want: 100},
		{in: "1000.50", want: 100050},
		{in: "0.05", want: 5},
		{in: "12.3", want: 1230},
		{in: "-25.99", want: -2599},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "1.2.3", "10,50"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseAmount(in)
			assert.Error(t, err)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", formatAmount(0))
	assert.Equal(t, "1000.50", formatAmount(100050))
	assert.Equal(t, "0.05", formatAmount(5))
	assert.Equal(t, "-25.99", formatAmount(-2599))
}

func TestParseAmount_FormatRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "1000.50", "0.05", "99.99"} {
		cents, err := parseAmount(s)
		require.NoError(t, err)
		assert.Equal(t, s, formatAmount(cents))
	}
}

func TestParseEventDate(t *testing.T) {
	got, err := parseEventDate("2026-06-04 13:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 4, 13, 0, 0, 0, time.UTC), got)

	_, err = parseEventDate("04/06/2026")
	assert.Error(t, err)
}
