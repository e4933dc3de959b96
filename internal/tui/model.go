// Package tui is an interactive terminal host for the gateway: a prompt showing
// the session directory, scrollback of command output, and tab completion.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/satococoa/deskshell/internal/gateway"
	"github.com/satococoa/deskshell/internal/session"
)

const (
	welcomeMessage = "Welcome to deskshell! Type 'exit' to quit."
	maxScrollback  = 1000
	defaultWidth   = 80
)

// Gateway is the subset of *gateway.Gateway the terminal drives
type Gateway interface {
	Execute(ctx context.Context, line string) (gateway.Reply, error)
	CurrentDirectory() string
	Completions(ctx context.Context, partial, fullLine string) ([]string, error)
}

type executedMsg struct {
	reply gateway.Reply
	err   error
}

type completedMsg struct {
	line        string
	suggestions []string
	err         error
}

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	dirStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// Model is the bubbletea model of the terminal
type Model struct {
	gw     Gateway
	input  textinput.Model
	prompt string
	lines  []string
	width  int
	height int

	busy     bool
	quitting bool
}

// New creates a terminal model over gw. prompt follows the directory, e.g. "$ ".
func New(gw Gateway, prompt string) Model {
	input := textinput.New()
	input.Focus()

	m := Model{
		gw:     gw,
		input:  input,
		prompt: prompt,
		lines:  []string{hintStyle.Render(welcomeMessage)},
	}
	m.input.Prompt = m.promptText()
	return m
}

// Run starts the terminal and blocks until the user exits
func Run(gw Gateway, prompt string) error {
	p := tea.NewProgram(New(gw, prompt))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.appendLines(m.promptText() + m.input.Value() + "^C")
			m.input.Reset()
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyTab:
			return m.requestCompletion()
		}

	case executedMsg:
		return m.handleExecuted(msg)

	case completedMsg:
		m.handleCompleted(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder

	lines := m.lines
	if m.height > 1 && len(lines) > m.height-1 {
		lines = lines[len(lines)-(m.height-1):]
	}
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.quitting {
		return sb.String()
	}

	if m.busy {
		sb.WriteString(statusStyle.Render("running..."))
	} else {
		sb.WriteString(m.input.View())
	}
	return sb.String()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	line := m.input.Value()
	m.appendLines(m.promptText() + line)
	m.input.Reset()

	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.busy = true
	gw := m.gw
	return m, func() tea.Msg {
		reply, err := gw.Execute(context.Background(), line)
		return executedMsg{reply: reply, err: err}
	}
}

func (m Model) handleExecuted(msg executedMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		for _, line := range outputLines(msg.err.Error()) {
			m.appendLines(errorStyle.Render("Error: " + line))
		}
	} else {
		m.appendLines(outputLines(msg.reply.Output)...)
	}

	// The acknowledgement is rendered by the final View before the program exits
	if msg.reply.Shutdown {
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Prompt = m.promptText()
	return m, nil
}

func (m Model) requestCompletion() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if m.busy || strings.TrimSpace(line) == "" {
		return m, nil
	}

	gw := m.gw
	partial := currentWord(line)
	return m, func() tea.Msg {
		suggestions, err := gw.Completions(context.Background(), partial, line)
		return completedMsg{line: line, suggestions: suggestions, err: err}
	}
}

func (m *Model) handleCompleted(msg completedMsg) {
	// Ignore results for a line the user has since edited
	if msg.err != nil || msg.line != m.input.Value() || len(msg.suggestions) == 0 {
		return
	}

	completed := applyCompletion(msg.line, msg.suggestions)
	if completed != msg.line {
		m.input.SetValue(completed)
		m.input.CursorEnd()
	}

	if len(msg.suggestions) > 1 {
		m.appendLines(m.promptText() + msg.line)
		m.appendLines(formatColumns(msg.suggestions, m.displayWidth())...)
	}
}

func (m *Model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	if len(m.lines) > maxScrollback {
		m.lines = m.lines[len(m.lines)-maxScrollback:]
	}
}

func (m Model) promptText() string {
	return dirStyle.Render(displayDir(m.gw.CurrentDirectory())) + " " + m.prompt
}

func (m Model) displayWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// displayDir abbreviates the home directory to ~
func displayDir(dir string) string {
	home := session.HomeDir()
	if home == "/" {
		return dir
	}
	if dir == home {
		return "~"
	}
	if strings.HasPrefix(dir, home+"/") {
		return "~" + strings.TrimPrefix(dir, home)
	}
	return dir
}

// outputLines normalizes line endings and drops empty lines
func outputLines(output string) []string {
	output = strings.ReplaceAll(output, "\r\n", "\n")
	output = strings.ReplaceAll(output, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
