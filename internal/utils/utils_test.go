package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	// 23:30 in UTC-2 is already the next day in UTC.
	loc := time.FixedZone("UTC-2", -2*60*60)
	local := time.Date(2025, 1, 15, 23, 30, 0, 0, loc)

	assert.Equal(t, "2025-01-16", DateKey(local))
	assert.Equal(t, "2025-01-15", DateKey(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousDay(t *testing.T) {
	assert.Equal(t, "2025-01-14", PreviousDay("2025-01-15"))
	assert.Equal(t, "2025-01-31", PreviousDay("2025-02-01"))
	assert.Equal(t, "2024-12-31", PreviousDay("2025-01-01"))
	assert.Equal(t, "2024-02-29", PreviousDay("2024-03-01"), "leap year")
	assert.Equal(t, "", PreviousDay("not-a-date"))
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+2348012345678", "+14155550123", "+447911123456"}
	for _, p := range valid {
		assert.True(t, ValidatePhone(p), p)
	}

	invalid := []string{"", "08012345678", "+", "+123", "+23480123456789012345", "+234abc5678"}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), p)
	}
}

func TestCountryFromPhone(t *testing.T) {
	assert.Equal(t, "NG", CountryFromPhone("+2348012345678"))
	assert.Equal(t, "GH", CountryFromPhone("+233201234567"))
	assert.Equal(t, "ZA", CountryFromPhone("+27831234567"))
	assert.Equal(t, "US", CountryFromPhone("+14155550123"))
	assert.Equal(t, "", CountryFromPhone("+9991234567"))
}
