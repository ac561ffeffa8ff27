// Package storage persists address book snapshots. Two backends are
// available: a schema-validated JSON file and a SQLite database. Both
// guarantee that a save/load round trip reproduces the book exactly:
// same names, same phone order, same birthdays.
package storage

import (
	"fmt"

	"github.com/unbound-force/rolo/internal/book"
)

// SnapshotVersion identifies the snapshot document layout.
const SnapshotVersion = "1"

// Store loads and saves address book snapshots. A missing snapshot is
// not an error: Load returns an empty book.
type Store interface {
	Load() (*book.AddressBook, error)
	Save(*book.AddressBook) error
}

// Snapshot is the serialized form of an address book. Contacts keep
// the book's insertion order.
type Snapshot struct {
	Version  string    `json:"version"`
	Contacts []Contact `json:"contacts"`
}

// Contact is the serialized form of one record.
type Contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Encode converts a book into its snapshot form.
func Encode(b *book.AddressBook) Snapshot {
	snap := Snapshot{Version: SnapshotVersion, Contacts: []Contact{}}
	for _, rec := range b.Records() {
		c := Contact{Name: rec.Name(), Phones: []string{}}
		for _, p := range rec.Phones() {
			c.Phones = append(c.Phones, p.String())
		}
		if bd := rec.Birthday(); bd != nil {
			c.Birthday = bd.String()
		}
		snap.Contacts = append(snap.Contacts, c)
	}
	return snap
}

// Decode rebuilds a book from its snapshot form. Every field passes
// back through its validating constructor, so a tampered snapshot is
// rejected rather than loaded partially.
func Decode(snap Snapshot) (*book.AddressBook, error) {
	b := book.New()
	for _, c := range snap.Contacts {
		rec, err := book.NewRecord(c.Name)
		if err != nil {
			return nil, fmt.Errorf("snapshot contact %q: %w", c.Name, err)
		}
		for _, p := range c.Phones {
			if err := rec.AddPhone(p); err != nil {
				return nil, fmt.Errorf("snapshot contact %q: %w", c.Name, err)
			}
		}
		if c.Birthday != "" {
			if err := rec.AddBirthday(c.Birthday); err != nil {
				return nil, fmt.Errorf("snapshot contact %q: %w", c.Name, err)
			}
		}
		b.AddRecord(rec)
	}
	return b, nil
}
