package main

import (
	"fmt"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/rolo/internal/book"
	"github.com/unbound-force/rolo/internal/command"
	"github.com/unbound-force/rolo/internal/render"
	"github.com/unbound-force/rolo/internal/storage"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "rolo",
		Short: "Rolo — a contact book for your terminal",
		Long: `Rolo stores named contacts with validated phone numbers and
birthdays, keeps them between runs, and answers questions like
"whose birthday is coming up this week".`,
		Version: version,
	}

	root.AddCommand(newReplCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newPhoneCmd())
	root.AddCommand(newAllCmd())
	root.AddCommand(newBirthdaysCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withBook loads the book from the configured store, runs fn, and
// saves the book back when fn mutated it.
func withBook(configPath string, mutate bool, fn func(bk *book.AddressBook) error) error {
	cfg, err := loadConfig(configPath)
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
	if err := fn(bk); err != nil {
		return err
	}
	if mutate {
		return store.Save(bk)
	}
	return nil
}

// addParams holds the parsed arguments for the add command.
type addParams struct {
	configPath string
	name       string
	phone      string
	stdout     io.Writer
}

// runAdd is the extracted, testable body of the add command.
func runAdd(p addParams) error {
	return withBook(p.configPath, true, func(bk *book.AddressBook) error {
		msg, err := command.Add([]string{p.name, p.phone}, bk)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.stdout, msg)
		return nil
	})
}

func newAddCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "add <name> <phone>",
		Short: "Add a contact or append a phone number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(addParams{
				configPath: configPath,
				name:       args[0],
				phone:      args[1],
				stdout:     cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .rolo.yaml)")
	return cmd
}

func newPhoneCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "phone <name>",
		Short: "Show a contact's phone numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(configPath, false, func(bk *book.AddressBook) error {
				msg, err := command.Phone(args, bk)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .rolo.yaml)")
	return cmd
}

func newAllCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "List every contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(configPath, false, func(bk *book.AddressBook) error {
				render.NewConsole(cmd.OutOrStdout()).Contacts(bk.Records())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .rolo.yaml)")
	return cmd
}

// birthdaysParams holds the parsed flags for the birthdays command.
type birthdaysParams struct {
	configPath string
	days       int
	now        func() time.Time
	stdout     io.Writer
}

// runBirthdays is the extracted, testable body of the birthdays
// command.
func runBirthdays(p birthdaysParams) error {
	if p.days < 0 {
		return fmt.Errorf("invalid window %d: days must not be negative", p.days)
	}
	return withBook(p.configPath, false, func(bk *book.AddressBook) error {
		upcoming := bk.UpcomingBirthdays(p.now(), p.days)
		render.NewConsole(p.stdout).UpcomingBirthdays(upcoming)
		return nil
	})
}

func newBirthdaysCmd() *cobra.Command {
	var (
		configPath string
		days       int
	)

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show contacts with a birthday in the next days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBirthdays(birthdaysParams{
				configPath: configPath,
				days:       days,
				now:        time.Now,
				stdout:     cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: .rolo.yaml)")
	cmd.Flags().IntVar(&days, "days", command.DefaultWindowDays,
		"size of the birthday window in days")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the snapshot file",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of the JSON snapshot file. Useful for validating
snapshots or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), storage.Schema)
			return err
		},
	}
}
