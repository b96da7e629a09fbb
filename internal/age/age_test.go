package age

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAt(t *testing.T) {
	tests := []struct {
		name     string
		birthday time.Time
		now      time.Time
		want     int
	}{
		{"day before birthday", date(2000, 6, 15), date(2024, 6, 14), 23},
		{"on birthday", date(2000, 6, 15), date(2024, 6, 15), 24},
		{"day after birthday", date(2000, 6, 15), date(2024, 6, 16), 24},
		{"earlier month", date(2000, 6, 15), date(2024, 3, 20), 23},
		{"later month", date(2000, 6, 15), date(2024, 9, 1), 24},
		{"born this year", date(2024, 2, 1), date(2024, 12, 31), 0},
		{"birthday today, newborn", date(2024, 2, 1), date(2024, 2, 1), 0},
		{"jan 1 birthday", date(1990, 1, 1), date(2024, 1, 1), 34},
		{"dec 31 birthday", date(1990, 12, 31), date(2024, 12, 30), 33},
		{"leap day, non-leap year", date(2000, 2, 29), date(2023, 2, 28), 22},
		{"leap day, leap year", date(2000, 2, 29), date(2024, 2, 29), 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, At(tt.birthday, tt.now))
		})
	}
}

func TestAtString(t *testing.T) {
	got, err := AtString("2000-06-15", date(2024, 6, 15))
	require.NoError(t, err)
	assert.Equal(t, 24, got)
}

func TestAtStringInvalid(t *testing.T) {
	_, err := AtString("June 15th", date(2024, 6, 15))
	assert.Error(t, err)

	_, err = AtString("", date(2024, 6, 15))
	assert.Error(t, err)
}

func TestParseRoundTrip(t *testing.T) {
	b, err := Parse("1995-11-03")
	require.NoError(t, err)
	assert.Equal(t, "1995-11-03", b.Format(Layout))
}
