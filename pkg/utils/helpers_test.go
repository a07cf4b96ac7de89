package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Minute, ParseDuration("", 5*time.Minute))
	assert.Equal(t, 5*time.Minute, ParseDuration("soon", 5*time.Minute))
	assert.Equal(t, 30*time.Second, ParseDuration("30s", 5*time.Minute))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{" 149.50 ", 149.5, true},
		{"-3", -3, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"$150.00", 0, false},
		{"12 rooms", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestIsISODate(t *testing.T) {
	for _, s := range []string{"2018-12-01", "2018-12-01T10:00", "2018-12-01 10:00:05", "2018-12-01T10:00:05.123Z", "2018-12-01T10:00:05+11:00"} {
		assert.True(t, IsISODate(s), s)
	}
	for _, s := range []string{"", "2018/12/01", "01-12-2018", "Dec 2018", "2018-1-1"} {
		assert.False(t, IsISODate(s), s)
	}
}

func TestCleanHeader(t *testing.T) {
	assert.Equal(t, "listing_id", CleanHeader("\uFEFF\"listing_id\" "))
	assert.Equal(t, "price", CleanHeader("  price"))
}
