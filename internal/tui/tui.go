// Package tui implements the terminal user interface using bubbletea.
// The conversation accumulates in the terminal scrollback via tea.Println;
// the live view holds only the menu (or the current prompt) and the input
// line. No alternate screen is used, so the transcript survives exit.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexander-akhmetov/petshelter/internal/debug"
	"github.com/alexander-akhmetov/petshelter/internal/session"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	menuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	petStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	farewellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	echoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the adoption session.
type Model struct {
	sess     *session.Session
	input    textinput.Model
	quitting bool
}

// NewModel creates the model for a session positioned at the main menu.
func NewModel(sess *session.Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	return Model{sess: sess, input: ti}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	for _, r := range m.sess.Start() {
		// The menu lives in the view; only the banner goes to scrollback.
		if r.Kind == session.KindBanner {
			cmds = append(cmds, tea.Println(renderReply(r)))
		}
	}
	return tea.Sequence(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			debug.Logf("tui: interrupted")
			m.quitting = true
			cmds := printCmds(m.sess.Quit())
			cmds = append(cmds, tea.Quit)
			return m, tea.Sequence(cmds...)

		case tea.KeyEnter:
			line := m.input.Value()
			m.input.Reset()
			return m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit feeds one line to the session and queues its replies for the
// scrollback, echoing the line first the way a plain terminal would.
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	debug.Logf("tui: input %q", line)
	cmds := []tea.Cmd{tea.Println(echoStyle.Render("> " + line))}

	replies, done := m.sess.Handle(line)
	cmds = append(cmds, printCmds(replies)...)

	if done {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Sequence(cmds...)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if prompt := m.sess.Prompt(); prompt != "" {
		b.WriteString(promptStyle.Render(prompt))
	} else {
		b.WriteString(menuStyle.Render(session.MenuText()))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// printCmds turns replies into ordered scrollback prints. Menu and prompt
// replies are skipped: the view keeps those on screen instead.
func printCmds(replies []session.Reply) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range replies {
		if r.Kind == session.KindMenu || r.Kind == session.KindPrompt {
			continue
		}
		cmds = append(cmds, tea.Println(renderReply(r)))
	}
	return cmds
}

// renderReply styles a reply for the scrollback.
func renderReply(r session.Reply) string {
	switch r.Kind {
	case session.KindBanner:
		return bannerStyle.Render(r.Text)
	case session.KindPet:
		return petStyle.Render(r.Text)
	case session.KindInfo:
		return infoStyle.Render(r.Text)
	case session.KindError:
		return errorStyle.Render(r.Text)
	case session.KindFarewell:
		return farewellStyle.Render(r.Text)
	default:
		return r.Text
	}
}

// Run drives the session as an inline bubbletea program until the user
// exits via the menu, ctrl+c, or escape.
func Run(sess *session.Session) error {
	p := tea.NewProgram(NewModel(sess))
	_, err := p.Run()
	return err
}
