package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/unbound-force/rolo/internal/command"
)

// keyMap defines keybindings for the interactive session.
type keyMap struct {
	Enter key.Binding
	Quit  key.Binding
	Help  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "save and quit")),
	Help:  key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "help")),
}

// Styles for the interactive session.
var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	tuiStatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiPromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))
)

// replModel is the Bubble Tea model for the interactive session. It
// feeds entered lines through the same dispatch as the plain loop and
// accumulates the transcript in a viewport.
type replModel struct {
	session    *session
	input      textinput.Model
	viewport   viewport.Model
	help       help.Model
	keys       keyMap
	ready      bool
	transcript strings.Builder
	saveErr    error
}

func newReplModel(s *session) *replModel {
	ti := textinput.New()
	ti.Placeholder = "Enter a command"
	ti.Prompt = tuiPromptStyle.Render("> ")
	ti.Focus()

	m := &replModel{
		session: s,
		input:   ti,
		help:    help.New(),
		keys:    defaultKeyMap,
	}
	m.transcript.WriteString(tuiTitleStyle.Render("Welcome to the assistant bot!"))
	m.transcript.WriteString("\n")
	return m
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 3 // input line + help
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.transcript.String())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.saveErr = m.session.store.Save(m.session.book)
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Enter):
			line := m.input.Value()
			m.input.Reset()
			m.appendExchange(line)
			if m.quitRequested(line) {
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// appendExchange runs the line through the session and records both
// the echoed input and its output in the transcript.
func (m *replModel) appendExchange(line string) {
	m.transcript.WriteString(tuiStatusStyle.Render("Enter a command: " + line))
	m.transcript.WriteString("\n")

	output, _, err := m.session.execLine(line)
	m.transcript.WriteString(output)
	if err != nil {
		m.saveErr = err
	}

	if m.ready {
		m.viewport.SetContent(m.transcript.String())
		m.viewport.GotoBottom()
	}
}

// quitRequested reports whether the entered line ends the session.
// The snapshot save already happened inside execLine for these.
func (m *replModel) quitRequested(line string) bool {
	name, _ := command.Parse(line)
	return name == "close" || name == "exit"
}

func (m *replModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := m.input.View() + "\n" + m.help.View(m.keys)
	return m.viewport.View() + "\n" + footer
}

// runInteractive launches the Bubble Tea session. The snapshot is
// saved on quit regardless of how the session ends.
func runInteractive(s *session) error {
	model := newReplModel(s)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return model.saveErr
}
