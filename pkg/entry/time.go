// Package entry holds the state and validation of the new-todo form, independent of any widgets.
package entry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ErrBadTime is returned for time input that is not a valid HH:MM.
var ErrBadTime = errors.New("invalid time")

// NormalizeTime strips everything but digits from raw; once three or more digits remain, a colon
// is inserted after the hour and anything past four digits is dropped, so "1530" becomes "15:30".
func NormalizeTime(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, raw)

	if len(digits) < 3 {
		return digits
	}

	if len(digits) > 4 {
		digits = digits[:4]
	}

	return digits[:2] + ":" + digits[2:]
}

// ParseTime parses a normalized "HH:MM" value. The hour must be 0-23 and the minute 0-59.
func ParseTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: '%s'", ErrBadTime, value)
	}

	hour, err = parseClockPart(parts[0], 23)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: '%s'", ErrBadTime, value)
	}

	minute, err = parseClockPart(parts[1], 59)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: '%s'", ErrBadTime, value)
	}

	return hour, minute, nil
}

func parseClockPart(s string, max int) (int, error) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return 0, ErrBadTime
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	if n > max {
		return 0, ErrBadTime
	}

	return n, nil
}

// Deadline builds a deadline from the form's selectors. Out-of-range days roll over into the
// following month, so February 31 lands in early March.
func Deadline(day int, month time.Month, year, hour, minute int, loc *time.Location) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, loc)
}

// Years returns the years offered by the year selector: the current one and the next four.
func Years(now time.Time) []int {
	span := 5
	years := make([]int, 0, span)

	for i := 0; i < span; i++ {
		years = append(years, now.Year()+i)
	}

	return years
}
