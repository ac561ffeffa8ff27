// Package book implements the contact record model and the address
// book store, including the upcoming-birthday query.
package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned by operations that reference a contact name
// absent from the book.
var ErrNotFound = errors.New("contact not found")

// AddressBook maps contact names to records. Keys are exact,
// case-sensitive name strings; iteration follows insertion order.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts rec under its name. A record already stored under
// the same name is silently replaced, phones and birthday included.
func (b *AddressBook) AddRecord(rec *Record) {
	key := rec.Name()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = rec
}

// Find returns the record stored under name. Lookup is exact-match
// and case-sensitive; there is no fuzzy matching.
func (b *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record stored under name, if any.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int { return len(b.records) }

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// UpcomingBirthdays returns, in insertion order, every record whose
// birthday falls within windowDays days of today, inclusive on both
// ends. The birthday is projected onto today's year before comparing,
// so the window never wraps a year boundary: a January birthday
// queried in late December is not reported. This matches the behavior
// the tool has always had and is kept deliberately.
func (b *AddressBook) UpcomingBirthdays(today time.Time, windowDays int) []*Record {
	today = truncateToDay(today)
	end := today.AddDate(0, 0, windowDays)

	var upcoming []*Record
	for _, rec := range b.Records() {
		bd := rec.Birthday()
		if bd == nil {
			continue
		}
		d := bd.Date()
		thisYear := time.Date(today.Year(), d.Month(), d.Day(), 0, 0, 0, 0, today.Location())
		if !thisYear.Before(today) && !thisYear.After(end) {
			upcoming = append(upcoming, rec)
		}
	}
	return upcoming
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
