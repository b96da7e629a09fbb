// Package age computes whole-year ages from birthdates.
package age

import (
	"fmt"
	"time"
)

// Layout is the ISO date form used by the HTML date inputs and the database.
const Layout = "2006-01-02"

// Parse parses a birthday in ISO form ("2006-01-02").
func Parse(birthday string) (time.Time, error) {
	t, err := time.Parse(Layout, birthday)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birthday %q: %w", birthday, err)
	}
	return t, nil
}

// At returns the whole-year age for someone born on birthday as of now:
// the year difference, minus one if this year's birthday hasn't happened yet.
// Callers are responsible for passing a valid, non-future birthday.
func At(birthday, now time.Time) int {
	years := now.Year() - birthday.Year()
	if beforeInYear(now, birthday) {
		years--
	}
	return years
}

// AtString is At for an ISO-formatted birthday string.
func AtString(birthday string, now time.Time) (int, error) {
	b, err := Parse(birthday)
	if err != nil {
		return 0, err
	}
	return At(b, now), nil
}

// beforeInYear reports whether now's (month, day) precedes birthday's.
func beforeInYear(now, birthday time.Time) bool {
	if now.Month() != birthday.Month() {
		return now.Month() < birthday.Month()
	}
	return now.Day() < birthday.Day()
}
