package booking

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrCancelWindow  = errors.New("booking starts too soon to cancel")
	ErrInvalidFilter = errors.New("invalid booking filter")
)

// ValidationError carries the per-field failures of a rejected submission.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "booking validation failed"
}
