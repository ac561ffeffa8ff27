// Package command parses REPL input lines and implements the command
// handlers. Handlers are thin adapters: they check argument counts,
// delegate to the book, and hand back either a display message or an
// error for Describe to translate. No handler keeps state between
// calls.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/unbound-force/rolo/internal/book"
	"github.com/unbound-force/rolo/internal/field"
)

// DefaultWindowDays is the birthday query window when the birthdays
// command is given no argument.
const DefaultWindowDays = 7

// Parse splits an input line into a lowercased command name and its
// arguments. An empty or blank line yields an empty command.
func Parse(input string) (string, []string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// ArgCountError reports a command invoked with too few arguments. The
// hint is the full prompt-style message shown to the user.
type ArgCountError struct {
	Hint string
}

// Error returns the prompt hint.
func (e *ArgCountError) Error() string { return e.Hint }

// Describe converts any handler error into the message shown to the
// user. Validation failures, argument count problems, and missing
// contacts are all recoverable; nothing here ever terminates the
// session.
func Describe(err error) string {
	var argErr *ArgCountError
	if errors.As(err, &argErr) {
		return argErr.Hint
	}
	var valErr *field.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error()
	}
	if errors.Is(err, book.ErrNotFound) {
		return "Contact not found."
	}
	return err.Error()
}

// Hello answers the hello command.
func Hello() string { return "How can I help you?" }

// Add creates the named contact if needed and appends the phone.
// Adding a second phone to an existing contact reports an update
// instead of an add.
func Add(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", &ArgCountError{Hint: "Please provide a name and a phone number."}
	}
	name, phone := args[0], args[1]

	rec, ok := bk.Find(name)
	msg := "Contact updated."
	if !ok {
		newRec, err := book.NewRecord(name)
		if err != nil {
			return "", err
		}
		rec = newRec
		bk.AddRecord(rec)
		msg = "Contact added."
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return msg, nil
}

// Change replaces the named contact's first phone with a new number.
// A contact that has no phones yet gets the number appended instead.
func Change(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", &ArgCountError{Hint: "Please provide a name and a new phone number."}
	}
	name, newPhone := args[0], args[1]

	rec, ok := bk.Find(name)
	if !ok {
		return "", book.ErrNotFound
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		if err := rec.AddPhone(newPhone); err != nil {
			return "", err
		}
	} else if err := rec.EditPhone(phones[0].String(), newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number for %s updated.", name), nil
}

// Phone lists the named contact's phone numbers.
func Phone(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", &ArgCountError{Hint: "Please provide a name."}
	}
	name := args[0]

	rec, ok := bk.Find(name)
	if !ok {
		return "", book.ErrNotFound
	}
	parts := make([]string, 0, len(rec.Phones()))
	for _, p := range rec.Phones() {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("%s's phone number(s): %s", name, strings.Join(parts, ", ")), nil
}

// AddBirthday sets the named contact's birthday, replacing any
// previous value.
func AddBirthday(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", &ArgCountError{Hint: "Please provide a name and a birthday."}
	}
	name, birthday := args[0], args[1]

	rec, ok := bk.Find(name)
	if !ok {
		return "", book.ErrNotFound
	}
	if err := rec.AddBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added to contact %s.", name), nil
}

// ShowBirthday reports the named contact's birthday.
func ShowBirthday(args []string, bk *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", &ArgCountError{Hint: "Please provide a name."}
	}
	name := args[0]

	rec, ok := bk.Find(name)
	if !ok || rec.Birthday() == nil {
		return "Contact not found or birthday not set.", nil
	}
	return fmt.Sprintf("%s's birthday is %s.", name, rec.Birthday()), nil
}

// Window resolves the optional day-count argument of the birthdays
// command. No argument falls back to fallback days.
func Window(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 {
		return 0, fmt.Errorf("window must be a whole number of days, got %q", args[0])
	}
	return days, nil
}

// List enumerates the command surface for the unknown-command help.
func List() []string {
	return []string{
		"hello - Display greeting message",
		"add <name> <phone> - Add a new contact",
		"change <name> <new_phone> - Change an existing contact's phone number",
		"phone <name> - Show phone number of a contact",
		"all - Show all contacts",
		"add-birthday <name> <birthday> - Add birthday to a contact",
		"show-birthday <name> - Show birthday of a contact",
		"birthdays [days] - Show upcoming birthdays in the next week",
		"close or exit - Exit the program",
	}
}
