// Package repl runs an interactive prompt that dispatches each entered
// line as a command.
package repl

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/sealion/internal/ui/style"
)

const (
	prompt         = "sealion> "
	maxTranscript  = 200
	helpLine       = "enter run • ↑/↓ history • ctrl+d quit"
	inputCharLimit = 4096
)

// Dispatch runs one line and returns what it printed.
type Dispatch func(line string) (string, error)

type keyMap struct {
	Submit key.Binding
	Quit   key.Binding
	Prev   key.Binding
	Next   key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d", "esc"), key.WithHelp("ctrl+d", "quit")),
	Prev:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
	Next:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
}

type entry struct {
	line   string
	output string
	failed bool
}

type resultMsg entry

// Model is the bubbletea model for the prompt.
type Model struct {
	input    textinput.Model
	dispatch Dispatch

	transcript []entry
	history    []string
	cursor     int
	draft      string

	running  bool
	quitting bool
}

// New returns a focused prompt that sends lines to dispatch.
func New(dispatch Dispatch) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "help"
	ti.CharLimit = inputCharLimit
	ti.Focus()

	return Model{
		input:    ti,
		dispatch: dispatch,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-len(prompt)-1, 0)
		return m, nil

	case resultMsg:
		m.running = false
		m.transcript = append(m.transcript, entry(msg))
		if len(m.transcript) > maxTranscript {
			m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Submit):
			return m.submit()
		case key.Matches(msg, keys.Prev):
			m.recall(-1)
			return m, nil
		case key.Matches(msg, keys.Next):
			m.recall(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}

	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.draft = ""
	if line == "" {
		return m, nil
	}

	if line == "exit" || line == "quit" {
		m.quitting = true
		return m, tea.Quit
	}

	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
	}
	m.cursor = len(m.history)
	m.running = true

	dispatch := m.dispatch
	return m, func() tea.Msg {
		out, err := dispatch(line)
		if err != nil {
			if out != "" && !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			return resultMsg{line: line, output: out + err.Error(), failed: true}
		}
		return resultMsg{line: line, output: out}
	}
}

// recall moves through previously entered lines; moving past the newest
// restores what was being typed.
func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}
	if m.cursor == len(m.history) {
		m.draft = m.input.Value()
	}

	m.cursor = min(max(m.cursor+step, 0), len(m.history))
	if m.cursor == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.cursor])
	}
	m.input.CursorEnd()
}

func (m Model) View() string {
	var b strings.Builder

	for _, e := range m.transcript {
		b.WriteString(style.Muted(prompt))
		b.WriteString(e.line)
		b.WriteString("\n")

		out := strings.TrimRight(e.output, "\n")
		if out == "" {
			continue
		}
		if e.failed {
			out = style.Error(out)
		}
		b.WriteString(out)
		b.WriteString("\n")
	}

	if m.quitting {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.running {
		b.WriteString(style.Muted("running…"))
	} else {
		b.WriteString(style.Muted(helpLine))
	}
	b.WriteString("\n")

	return b.String()
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, dispatch Dispatch, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(dispatch),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
