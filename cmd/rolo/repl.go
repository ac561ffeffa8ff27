package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/unbound-force/rolo/internal/book"
	"github.com/unbound-force/rolo/internal/command"
	"github.com/unbound-force/rolo/internal/render"
	"github.com/unbound-force/rolo/internal/storage"
)

// session holds the live state of one REPL run: the loaded book, the
// store to save it back to, and the clock used by the birthday query.
type session struct {
	book       *book.AddressBook
	store      storage.Store
	now        func() time.Time
	windowDays int
}

// execLine dispatches one input line and returns the rendered output
// plus whether the session should end. Every recoverable error comes
// back as display text; only snapshot failures on exit surface as
// errors.
func (s *session) execLine(line string) (output string, quit bool, err error) {
	var buf bytes.Buffer
	out := render.NewConsole(&buf)

	name, args := command.Parse(line)
	switch name {
	case "":
		out.Message("Please enter a command.")

	case "close", "exit":
		out.Message("Good bye!")
		if err := s.store.Save(s.book); err != nil {
			return buf.String(), true, fmt.Errorf("saving address book: %w", err)
		}
		return buf.String(), true, nil

	case "hello":
		out.Message(command.Hello())

	case "add":
		msg, err := command.Add(args, s.book)
		dispatch(out, msg, err)

	case "change":
		msg, err := command.Change(args, s.book)
		dispatch(out, msg, err)

	case "phone":
		msg, err := command.Phone(args, s.book)
		dispatch(out, msg, err)

	case "all":
		out.Contacts(s.book.Records())

	case "add-birthday":
		msg, err := command.AddBirthday(args, s.book)
		dispatch(out, msg, err)

	case "show-birthday":
		msg, err := command.ShowBirthday(args, s.book)
		dispatch(out, msg, err)

	case "birthdays":
		days, err := command.Window(args, s.windowDays)
		if err != nil {
			out.Message(command.Describe(err))
			break
		}
		out.UpcomingBirthdays(s.book.UpcomingBirthdays(s.now(), days))

	default:
		out.Message("Invalid command.")
		out.Commands(command.List())
	}

	return buf.String(), false, nil
}

// dispatch renders a handler outcome: the success message, or the
// error translated to display text.
func dispatch(out render.Renderer, msg string, err error) {
	if err != nil {
		out.Message(command.Describe(err))
		return
	}
	out.Message(msg)
}

// replParams holds the parsed flags for the repl command.
type replParams struct {
	configPath  string
	interactive bool
	stdin       io.Reader
	stdout      io.Writer
}

// runRepl is the extracted, testable body of the repl command.
func runRepl(p replParams) error {
	cfg, err := loadConfig(p.configPath)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	bk, err := store.Load()
	if err != nil {
		return err
	}
	logger.Info("address book loaded", "contacts", bk.Len(), "backend", cfg.Storage.Backend)

	s := &session{
		book:       bk,
		store:      store,
		now:        time.Now,
		windowDays: cfg.Birthdays.WindowDays,
	}

	if p.interactive {
		return runInteractive(s)
	}

	fmt.Fprintln(p.stdout, "Welcome to the assistant bot!")
	scanner := bufio.NewScanner(p.stdin)
	for {
		fmt.Fprint(p.stdout, "Enter a command: ")
		if !scanner.Scan() {
			// EOF without close/exit still persists the book.
			fmt.Fprintln(p.stdout)
			return store.Save(s.book)
		}

		output, quit, err := s.execLine(scanner.Text())
		fmt.Fprint(p.stdout, output)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func newReplCmd() *cobra.Command {
	var (
		configPath  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive command session",
		Long: `Start the line-oriented session: the address book is loaded
from the snapshot, commands mutate it in place, and close/exit
saves it back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(replParams{
				configPath:  configPath,
				interactive: interactive,
				stdin:       os.Stdin,
				stdout:      cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .rolo.yaml)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch the full-screen TUI session")
	return cmd
}
