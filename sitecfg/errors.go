package sitecfg

import "errors"

var (
	// ErrMissingField is returned when a required configuration field is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidEmail is returned when a non-empty email has no "@".
	ErrInvalidEmail = errors.New("invalid email")
	// ErrUnauthorized is returned when a non-owner tries to change a site.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned for operations on a record that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEntryEmpty is returned when a guestbook field is blank after trimming.
	ErrEntryEmpty = errors.New("guestbook entry field is empty")
	// ErrEntryTooLong is returned when a guestbook field exceeds its limit.
	ErrEntryTooLong = errors.New("guestbook entry field is too long")
)

// FieldError reports a single failed rule. Err is one of the sentinel errors
// above, so callers can match with errors.Is.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string { return e.Message }

func (e *FieldError) Unwrap() error { return e.Err }
