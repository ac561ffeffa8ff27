package book

import (
	"fmt"
	"strings"

	"github.com/unbound-force/rolo/internal/field"
)

// Record aggregates one contact: an immutable name, an ordered list
// of phone numbers (duplicates allowed), and an optional birthday.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday *field.Birthday
}

// NewRecord validates name and returns an empty record for it.
func NewRecord(name string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's name value. It never changes after
// construction; the book's key for this record is always equal to it.
func (r *Record) Name() string { return r.name.String() }

// Phones returns the phone list in insertion order. The slice is the
// record's own backing store; callers must not mutate it.
func (r *Record) Phones() []field.Phone { return r.phones }

// Birthday returns the record's birthday, or nil when unset.
func (r *Record) Birthday() *field.Birthday { return r.birthday }

// AddPhone validates raw and appends it to the phone list. Duplicates
// are appended, not collapsed.
func (r *Record) AddPhone(raw string) error {
	p, err := field.NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes every phone entry equal to raw. Removing a
// phone that is not present is not an error.
func (r *Record) RemovePhone(raw string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.String() != raw {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone entry equal to oldRaw with
// newRaw, validating newRaw first. When oldRaw has no match the
// record is left unchanged and no error is reported.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	for i, p := range r.phones {
		if p.String() == oldRaw {
			np, err := field.NewPhone(newRaw)
			if err != nil {
				return err
			}
			r.phones[i] = np
			return nil
		}
	}
	return nil
}

// AddBirthday validates raw and sets the birthday, replacing any
// previous value.
func (r *Record) AddBirthday(raw string) error {
	b, err := field.NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// FindPhone returns the first phone entry equal to raw, and whether
// one was found.
func (r *Record) FindPhone(raw string) (field.Phone, bool) {
	for _, p := range r.phones {
		if p.String() == raw {
			return p, true
		}
	}
	return field.Phone{}, false
}

// String renders the record as name, semicolon-joined phones, and an
// optional birthday suffix.
func (r *Record) String() string {
	parts := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		parts = append(parts, p.String())
	}
	s := fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(parts, "; "))
	if r.birthday != nil {
		s += fmt.Sprintf(", birthday: %s", r.birthday)
	}
	return s
}
