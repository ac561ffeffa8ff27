// Package field defines the validated scalar values a contact record
// is built from: names, phone numbers, and birthdays. Construction is
// the only validation point; a value that exists is a valid value.
package field

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// BirthdayLayout is the only textual form birthdays are read from
// and rendered to.
const BirthdayLayout = "02.01.2006"

// ValidationError reports a value that failed field validation.
type ValidationError struct {
	// Field names the field kind ("name", "phone", "birthday").
	Field string

	// Reason is the human-readable rule that was violated.
	Reason string
}

// Error returns the formatted validation message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Name is a contact's name: non-empty, letters and spaces only.
type Name struct {
	value string
}

// NewName validates raw and returns it as a Name. The trimmed value
// must be non-empty and, ignoring spaces, consist only of letters.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, &ValidationError{
			Field:  "name",
			Reason: "must contain only letters and cannot be empty",
		}
	}
	for _, r := range strings.ReplaceAll(raw, " ", "") {
		if !unicode.IsLetter(r) {
			return Name{}, &ValidationError{
				Field:  "name",
				Reason: "must contain only letters and cannot be empty",
			}
		}
	}
	return Name{value: raw}, nil
}

// String returns the name exactly as it was constructed.
func (n Name) String() string { return n.value }

// Phone is a ten-digit phone number, kept as its original string so
// leading zeros survive.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone. The value must be
// exactly 10 decimal digit characters.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != 10 || !allDigits(raw) {
		return Phone{}, &ValidationError{
			Field:  "phone",
			Reason: "must contain 10 digits",
		}
	}
	return Phone{value: raw}, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// String returns the digit string exactly as constructed.
func (p Phone) String() string { return p.value }

// Birthday is a calendar date with day precision and no timezone.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw under DD.MM.YYYY. Dates that do not exist on
// the calendar (such as 29.02 outside leap years) are rejected.
func NewBirthday(raw string) (Birthday, error) {
	d, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, &ValidationError{
			Field:  "birthday",
			Reason: "invalid date format, use DD.MM.YYYY",
		}
	}
	return Birthday{date: d}, nil
}

// Date returns the underlying calendar date at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// String renders the birthday as DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
