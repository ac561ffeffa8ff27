// Package render is the presentation boundary: it turns records and
// messages into console text. The book and the handlers never depend
// on it; only the dispatch layer does.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/unbound-force/rolo/internal/book"
)

// Renderer displays messages and contacts to the user.
type Renderer interface {
	// Message shows a single line of text.
	Message(text string)

	// Contact shows one record in its full text form.
	Contact(rec *book.Record)

	// Contacts shows every record of the book.
	Contacts(recs []*book.Record)

	// UpcomingBirthdays shows the birthday query result.
	UpcomingBirthdays(recs []*book.Record)

	// Commands shows the available command list.
	Commands(lines []string)
}

// Console renders to a writer with lipgloss styling.
type Console struct {
	w      io.Writer
	styles Styles
}

// NewConsole returns a console renderer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, styles: DefaultStyles()}
}

// Message writes a single line.
func (c *Console) Message(text string) {
	fmt.Fprintln(c.w, text)
}

// Contact writes one record's text form.
func (c *Console) Contact(rec *book.Record) {
	fmt.Fprintln(c.w, rec)
}

// Contacts writes the whole book as a table with one row per record:
// name, semicolon-joined phones, optional birthday.
func (c *Console) Contacts(recs []*book.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(c.w, c.styles.Muted.Render("Address book is empty."))
		return
	}

	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		phones := ""
		for i, p := range rec.Phones() {
			if i > 0 {
				phones += "; "
			}
			phones += p.String()
		}
		birthday := ""
		if bd := rec.Birthday(); bd != nil {
			birthday = bd.String()
		}
		rows = append(rows, []string{rec.Name(), phones, birthday})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.styles.TableHeader
			}
			return c.styles.TableCell
		}).
		Headers("NAME", "PHONES", "BIRTHDAY").
		Rows(rows...)

	fmt.Fprintln(c.w, t)
}

// UpcomingBirthdays writes the birthday query result, one contact per
// line, or the empty-window notice.
func (c *Console) UpcomingBirthdays(recs []*book.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(c.w, "No birthdays in the next week.")
		return
	}
	fmt.Fprintln(c.w, c.styles.Header.Render("Upcoming birthdays:"))
	for _, rec := range recs {
		fmt.Fprintf(c.w, "%s: %s\n", c.styles.Name.Render(rec.Name()), rec.Birthday())
	}
}

// Commands writes the available command list.
func (c *Console) Commands(lines []string) {
	fmt.Fprintln(c.w, c.styles.Header.Render("Available commands:"))
	for _, line := range lines {
		fmt.Fprintln(c.w, line)
	}
}
