package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/unbound-force/rolo/internal/book"
)

// SQLite persists snapshots in a SQLite database. Phone order is kept
// through an explicit position column; save replaces the whole
// snapshot in one transaction.
type SQLite struct {
	path string
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contacts (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL UNIQUE,
	birthday TEXT
);
CREATE TABLE IF NOT EXISTS phones (
	contact_id INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	number     TEXT NOT NULL,
	PRIMARY KEY (contact_id, position)
);
`

// NewSQLite returns a SQLite store rooted at path. The database file
// does not need to exist yet.
func NewSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}
	return &SQLite{path: path}, nil
}

func (s *SQLite) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path+"?_fk=on")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db %s: %w", s.path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing snapshot db %s: %w", s.path, err)
	}
	return db, nil
}

// Load reads the snapshot tables back into a book, contacts in the
// order they were saved.
func (s *SQLite) Load() (*book.AddressBook, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, name, birthday FROM contacts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("reading contacts: %w", err)
	}
	defer rows.Close()

	snap := Snapshot{Version: SnapshotVersion}
	var ids []int64
	for rows.Next() {
		var (
			id       int64
			name     string
			birthday sql.NullString
		)
		if err := rows.Scan(&id, &name, &birthday); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		snap.Contacts = append(snap.Contacts, Contact{Name: name, Birthday: birthday.String})
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading contacts: %w", err)
	}

	for i, id := range ids {
		phones, err := loadPhones(db, id)
		if err != nil {
			return nil, fmt.Errorf("contact %q: %w", snap.Contacts[i].Name, err)
		}
		snap.Contacts[i].Phones = phones
	}
	return Decode(snap)
}

func loadPhones(db *sql.DB, contactID int64) ([]string, error) {
	rows, err := db.Query(
		`SELECT number FROM phones WHERE contact_id = ? ORDER BY position`, contactID)
	if err != nil {
		return nil, fmt.Errorf("reading phones: %w", err)
	}
	defer rows.Close()

	var phones []string
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("scanning phone: %w", err)
		}
		phones = append(phones, number)
	}
	return phones, rows.Err()
}

// Save replaces the stored snapshot with the book's current state.
func (s *SQLite) Save(b *book.AddressBook) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM phones`); err != nil {
		return fmt.Errorf("clearing phones: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}

	for _, c := range Encode(b).Contacts {
		var birthday any
		if c.Birthday != "" {
			birthday = c.Birthday
		}
		res, err := tx.Exec(
			`INSERT INTO contacts (name, birthday) VALUES (?, ?)`, c.Name, birthday)
		if err != nil {
			return fmt.Errorf("saving contact %q: %w", c.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("saving contact %q: %w", c.Name, err)
		}
		for pos, number := range c.Phones {
			_, err := tx.Exec(
				`INSERT INTO phones (contact_id, position, number) VALUES (?, ?, ?)`,
				id, pos, number)
			if err != nil {
				return fmt.Errorf("saving phone for %q: %w", c.Name, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}
