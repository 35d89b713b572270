package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "00000001", NormalizeID("1"))
	assert.Equal(t, "11990062", NormalizeID("11990062"))
	assert.Equal(t, "00000042", NormalizeID("  42  "))
}

func TestNormalizeIDFloatArtifact(t *testing.T) {
	// Spreadsheet numeric coercion delivers "11990062.0".
	assert.Equal(t, "11990062", NormalizeID("11990062.0"))
	assert.Equal(t, "00000007", NormalizeID("7.0"))
}

func TestNormalizeIDIdempotent(t *testing.T) {
	for _, raw := range []string{"1", "11990062.0", " 42 ", "00000042"} {
		once := NormalizeID(raw)
		assert.Equal(t, once, NormalizeID(once))
		assert.Len(t, once, EmployeeIDWidth)
	}
}

func TestNormalizeIDLongerThanWidth(t *testing.T) {
	assert.Equal(t, "123456789", NormalizeID("123456789"))
}

func TestParseDateLayouts(t *testing.T) {
	for _, raw := range []string{"2025-06-14", "2025/6/14", "2025-06-14 13:45:00"} {
		d, ok := ParseDate(raw)
		require.True(t, ok, raw)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.June, d.Month())
		assert.Equal(t, 14, d.Day())
		assert.Equal(t, 0, d.Hour())
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "not-a-date", "--"} {
		_, ok := ParseDate(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseDateTimeSerial(t *testing.T) {
	// Serial 45658 is 2025-01-01 in the 1900 date system.
	d, ok := ParseDateTime("45658")
	require.True(t, ok)
	assert.Equal(t, "2025-01-01", FormatDate(d))

	d, ok = ParseDateTime("45658.5")
	require.True(t, ok)
	assert.Equal(t, 12, d.Hour())
}

func TestDateOnly(t *testing.T) {
	d := DateOnly(time.Date(2025, 3, 8, 23, 59, 59, 0, time.Local))
	assert.Equal(t, "2025-03-08", FormatDate(d))
	assert.Zero(t, d.Hour())
}
