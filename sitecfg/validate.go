package sitecfg

import (
	"strings"
	"unicode/utf16"
)

// Guestbook field limits, counted in UTF-16 code units after trimming so
// they agree with the form's maxlength.
const (
	MaxEntryNameLen    = 50
	MaxEntryMessageLen = 500
)

// Result is the non-failing form of configuration validation used by forms.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

type configRule struct {
	field   string
	message string
	err     error
	failed  func(Config) bool
}

// configRules is the single source of truth for configuration validation.
// Check, Validate and ValidateOwned all evaluate this table.
var configRules = []configRule{
	{"name", "Name is required", ErrMissingField, func(c Config) bool { return blank(c.Name) }},
	{"hobby", "Hobby is required", ErrMissingField, func(c Config) bool { return blank(c.Hobby) }},
	{"theme", "Theme is required", ErrMissingField, func(c Config) bool { return blank(c.Theme) }},
	{"email", "Email must contain @", ErrInvalidEmail, func(c Config) bool { return c.Email != "" && !ValidEmail(c.Email) }},
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// evaluate runs the rule table. With stopFirst it returns at most one error.
func evaluate(cfg Config, stopFirst bool) []*FieldError {
	var errs []*FieldError
	for _, r := range configRules {
		if !r.failed(cfg) {
			continue
		}
		errs = append(errs, &FieldError{Field: r.field, Message: r.message, Err: r.err})
		if stopFirst {
			break
		}
	}
	return errs
}

// Check collects every violation in cfg.
func Check(cfg Config) Result {
	errs := evaluate(cfg, false)
	res := Result{Valid: len(errs) == 0, Errors: make([]string, 0, len(errs))}
	for _, e := range errs {
		res.Errors = append(res.Errors, e.Message)
	}
	return res
}

// Validate returns the first violation in cfg, or nil.
func Validate(cfg Config) error {
	if errs := evaluate(cfg, true); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ValidateOwned is Validate for persistence: the owner must be set as well.
func ValidateOwned(cfg Config, ownerID string) error {
	if blank(ownerID) {
		return &FieldError{Field: "owner", Message: "User ID is required", Err: ErrMissingField}
	}
	return Validate(cfg)
}

// ValidEmail reports whether s contains "@". Nothing else is checked.
func ValidEmail(s string) bool {
	return strings.Contains(s, "@")
}

// ValidateEntry trims the entry and checks the name and message lengths.
// The returned entry is the one that should be stored.
func ValidateEntry(e GuestbookEntry) (GuestbookEntry, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Message = strings.TrimSpace(e.Message)
	e.Email = strings.TrimSpace(e.Email)
	e.Website = strings.TrimSpace(e.Website)

	switch n := textLen(e.Name); {
	case n < 1:
		return e, &FieldError{Field: "name", Message: "Name is required!", Err: ErrEntryEmpty}
	case n > MaxEntryNameLen:
		return e, &FieldError{Field: "name", Message: "Name too long! Keep it under 50 characters.", Err: ErrEntryTooLong}
	}
	switch n := textLen(e.Message); {
	case n < 1:
		return e, &FieldError{Field: "message", Message: "Message is required!", Err: ErrEntryEmpty}
	case n > MaxEntryMessageLen:
		return e, &FieldError{Field: "message", Message: "Message too long! Keep it under 500 characters.", Err: ErrEntryTooLong}
	}
	return e, nil
}

// textLen is the length of s as a browser counts it: characters outside
// the Basic Multilingual Plane take two code units.
func textLen(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
