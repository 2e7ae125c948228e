package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

// Times of day are carried as minutes from midnight (e.g., 555 for 09:15).
// The wire form is a zero-padded 24-hour "HH:MM" string.

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// MalformedTimeError reports an input that is not a valid "HH:MM" string.
type MalformedTimeError struct {
	Input string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: expected HH:MM", e.Input)
}

// ToMinutes parses a "HH:MM" string into minutes from midnight.
func ToMinutes(timeStr string) (int, error) {
	m := timePattern.FindStringSubmatch(timeStr)
	if m == nil {
		return 0, &MalformedTimeError{Input: timeStr}
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// ToTimeString formats minutes from midnight as a zero-padded "HH:MM" string.
// The caller guarantees minutes is within [0, 1440).
func ToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CombineDateTime joins a "YYYY-MM-DD" date and a minute-of-day into the
// record store's "YYYY-MM-DD HH:MM:SS" datetime form. Seconds are always zero
// since times are collected at minute precision.
func CombineDateTime(date string, minutes int) string {
	return fmt.Sprintf("%s %s:00", date, ToTimeString(minutes))
}
