package prompt

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Progress starts spinners for slow steps
type Progress interface {
	Start(msg string) Spinner
}

// Spinner is a running progress indicator
type Spinner interface {
	// Success stops the spinner and replaces it with a confirmation line
	Success(msg string)
	// Error stops the spinner and replaces it with a failure line
	Error(msg string)
}

// TerminalProgress draws spinners on out. Every spinner stays up for at least delay
// so the operator can read it.
type TerminalProgress struct {
	out   io.Writer
	delay time.Duration
	theme Theme
}

// NewTerminalProgress creates a spinner factory drawing on out
func NewTerminalProgress(out io.Writer, delay time.Duration, theme Theme) *TerminalProgress {
	return &TerminalProgress{out: out, delay: delay, theme: theme}
}

func (p *TerminalProgress) Start(msg string) Spinner {
	s := &terminalSpinner{
		started: time.Now(),
		delay:   p.delay,
		done:    make(chan struct{}),
	}
	// The spinner never reads keys; the prompts own stdin
	s.program = tea.NewProgram(newSpinnerModel(msg, p.theme), tea.WithOutput(p.out), tea.WithInput(nil))
	go func() {
		defer close(s.done)
		_, _ = s.program.Run()
	}()
	return s
}

type terminalSpinner struct {
	program *tea.Program
	started time.Time
	delay   time.Duration
	done    chan struct{}
	once    sync.Once
}

func (s *terminalSpinner) Success(msg string) {
	s.once.Do(func() {
		if wait := s.delay - time.Since(s.started); wait > 0 {
			time.Sleep(wait)
		}
		s.program.Send(doneMsg{text: msg})
		<-s.done
	})
}

func (s *terminalSpinner) Error(msg string) {
	s.once.Do(func() {
		s.program.Send(doneMsg{text: msg, failed: true})
		<-s.done
	})
}

type doneMsg struct {
	text   string
	failed bool
}

type spinnerModel struct {
	spinner spinner.Model
	msg     string
	result  doneMsg
	done    bool
	theme   Theme
}

func newSpinnerModel(msg string, theme Theme) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.Cursor
	return spinnerModel{spinner: s, msg: msg, theme: theme}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.result = msg
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		if m.result.failed {
			return m.theme.Error.Render("✖ "+m.result.text) + "\n"
		}
		return m.theme.Success.Render("✔ "+m.result.text) + "\n"
	}
	return m.spinner.View() + " " + m.msg
}
