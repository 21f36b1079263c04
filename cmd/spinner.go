package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	elapsedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type publishFinishedMsg struct {
	err error
}

// progressModel shows a spinner with the time spent so far while a slow network
// operation such as publishing and waiting for indexing runs.
type progressModel struct {
	spinner spinner.Model
	label   string
	task    tea.Cmd
	started time.Time
	now     func() time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func newProgressModel(label string, task tea.Cmd, now func() time.Time) progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(progressStyle)),
		label:   label,
		task:    task,
		started: now(),
		now:     now,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.elapsed = m.now().Sub(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case publishFinishedMsg:
		m.done = true
		m.err = msg.err
		m.elapsed = m.now().Sub(m.started)
		return m, tea.Quit
	}

	return m, nil
}

func (m progressModel) View() string {
	elapsed := elapsedStyle.Render(fmt.Sprintf("(%s)", m.elapsed.Round(100*time.Millisecond)))
	switch {
	case !m.done:
		return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, elapsed)
	case m.err != nil:
		return fmt.Sprintf("%s %s %s\n", failureStyle.Render("x"), m.label, elapsed)
	default:
		return fmt.Sprintf("%s %s %s\n", successStyle.Render("ok"), m.label, elapsed)
	}
}

// runWithSpinner renders progress for task on output and returns the task's error.
// The last frame stays on screen so the user sees how long the call took.
func runWithSpinner(ctx context.Context, output io.Writer, label string, task func(context.Context) error) error {
	finished := func() tea.Msg {
		return publishFinishedMsg{err: task(ctx)}
	}

	program := tea.NewProgram(
		newProgressModel(label, finished, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("render progress: %w", err)
	}

	model, ok := final.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected progress model %T", final)
	}

	return model.err
}
