package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"roombook/internal/pkg/ist"
)

// MaxDuration is the longest bookable span.
const MaxDuration = 12 * time.Hour

// CancelWindow is how far before start a booking must be to still be
// cancellable.
const CancelWindow = 2 * time.Hour

// FieldErrors maps input field names to human-readable messages. Empty means
// the inputs are acceptable to price and submit.
type FieldErrors map[string]string

const (
	fieldUserName = "userName"
	fieldStart    = "startLocal"
	fieldEnd      = "endLocal"
	fieldRange    = "range"
)

// Validate applies every booking rule independently, so a single call can
// report multiple failures at once. Both range rules write to the same
// "range" key with the ordering check first, so when both apply the
// max-duration message is the one that survives.
func Validate(userName, startLocal, endLocal string, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if utf8.RuneCountInString(strings.TrimSpace(userName)) < 2 {
		errs[fieldUserName] = "Please enter your name"
	}
	if startLocal == "" {
		errs[fieldStart] = "Select start time"
	}
	if endLocal == "" {
		errs[fieldEnd] = "Select end time"
	}

	if startLocal == "" || endLocal == "" {
		return errs
	}

	start, startErr := ist.Resolve(startLocal)
	end, endErr := ist.Resolve(endLocal)
	if startErr != nil {
		errs[fieldStart] = "Invalid start time"
	}
	if endErr != nil {
		errs[fieldEnd] = "Invalid end time"
	}
	if startErr != nil || endErr != nil {
		return errs
	}

	if !start.Before(end) {
		errs[fieldRange] = "Start time must be before end time"
	}
	if end.Sub(start) > MaxDuration {
		errs[fieldRange] = "Maximum booking duration is 12 hours"
	}
	if !start.After(now) {
		errs[fieldStart] = "Start time must be in the future"
	}

	return errs
}

// CanCancel reports whether a booking starting at start may still be
// cancelled at now. The boundary is exclusive: exactly two hours out is too
// late. This is a UI gate only; the booking backend enforces the same window
// authoritatively.
func CanCancel(start, now time.Time) bool {
	return start.Sub(now) > CancelWindow
}
