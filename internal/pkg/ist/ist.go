// Package ist interprets wall-clock date-time strings in the fixed IST
// (UTC+5:30) zone without a timezone database. IST has no daylight-saving
// transitions, so every conversion is "treat the components as UTC, then
// shift by the constant offset".
package ist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Offset is the fixed IST offset from UTC.
const Offset = 5*time.Hour + 30*time.Minute

// Layout is the wall-clock form the UI sends: "YYYY-MM-DDTHH:mm".
const Layout = "2006-01-02T15:04"

var ErrMalformed = errors.New("malformed local date-time")

// Resolve interprets a "YYYY-MM-DDTHH:mm" string as IST wall-clock time and
// returns the corresponding UTC instant. An empty string is not an error: it
// is the "no value yet" case and resolves to the zero time. Out-of-range
// components roll over per ordinary calendar rules.
func Resolve(local string) (time.Time, error) {
	if local == "" {
		return time.Time{}, nil
	}

	datePart, timePart, ok := strings.Cut(local, "T")
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q missing 'T' separator", ErrMalformed, local)
	}

	dateFields := strings.Split(datePart, "-")
	timeFields := strings.Split(timePart, ":")
	if len(dateFields) != 3 || len(timeFields) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformed, local)
	}

	nums := make([]int, 0, 5)
	for _, f := range append(dateFields, timeFields...) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrMalformed, local)
		}
		nums = append(nums, n)
	}

	// Build the instant as if the components were UTC, then subtract the
	// offset to land on the real UTC instant (IST = UTC + 5:30).
	provisional := time.Date(nums[0], time.Month(nums[1]), nums[2], nums[3], nums[4], 0, 0, time.UTC)
	return provisional.Add(-Offset), nil
}

// FormatLocal is the inverse of Resolve: it renders an instant as the IST
// wall-clock string. The zero time renders as "".
func FormatLocal(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Add(Offset).Format(Layout)
}

// Display renders an instant for humans, e.g. "20 Nov 2025, 10:00 IST".
func Display(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Add(Offset).Format("02 Jan 2006, 15:04") + " IST"
}

// IsWeekday reports whether the IST calendar day containing t is Mon-Fri.
func IsWeekday(t time.Time) bool {
	wd := t.UTC().Add(Offset).Weekday()
	return wd >= time.Monday && wd <= time.Friday
}
