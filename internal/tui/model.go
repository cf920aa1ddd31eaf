// Package tui implements the interactive dashboard: type a term count,
// see the sequence and its sum live.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fibseq/internal/cli"
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/format"
	"github.com/agbru/fibseq/internal/sequence"
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Generate key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Generate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "generate"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
		key.WithHelp("esc", "quit"),
	),
}

// resultMsg carries a completed generation back into the update loop.
type resultMsg struct {
	seq     []uint64
	elapsed time.Duration
}

// errMsg carries a generation or validation failure.
type errMsg struct {
	err error
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	input      textinput.Model
	generator  *sequence.Generator
	ctx        context.Context
	seq        []uint64
	elapsed    time.Duration
	err        error
	generating bool
}

// NewModel creates the dashboard model with an initial term count.
func NewModel(ctx context.Context, initialN int) Model {
	input := textinput.New()
	input.Placeholder = "number of terms"
	input.SetValue(strconv.Itoa(initialN))
	input.CharLimit = 12
	input.Width = 16
	input.Focus()

	return Model{
		input:     input,
		generator: sequence.NewGenerator(nil),
		ctx:       ctx,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and generation results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Generate):
			return m.startGeneration()
		}

	case resultMsg:
		m.generating = false
		m.err = nil
		m.seq = msg.seq
		m.elapsed = msg.elapsed
		return m, nil

	case errMsg:
		m.generating = false
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startGeneration validates the typed count and kicks off a generation
// command. Non-integer input surfaces as a ValidationError in the error
// area rather than terminating the dashboard.
func (m Model) startGeneration() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	n, err := strconv.Atoi(raw)
	if err != nil {
		m.err = apperrors.NewValidationError("n", "%q is not an integer term count", raw)
		return m, nil
	}

	m.generating = true
	m.err = nil
	return m, generateCmd(m.ctx, m.generator, n)
}

// generateCmd runs a generation off the update loop.
func generateCmd(ctx context.Context, g *sequence.Generator, n int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		seq, err := g.Generate(ctx, n)
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg{seq: seq, elapsed: time.Since(start)}
	}
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("fibseq · Fibonacci sequence generator"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Terms: "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.generating:
		b.WriteString(sequenceStyle.Render("Generating..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.seq != nil:
		b.WriteString(sequenceStyle.Render(cli.FormatSequenceTruncated(m.seq)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Sum: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d", sequence.Sum(m.seq))))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Duration: "))
		b.WriteString(valueStyle.Render(format.FormatExecutionDuration(m.elapsed)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter generate • esc quit"))
	b.WriteString("\n")
	return b.String()
}

// Run launches the dashboard and blocks until it exits.
//
// Parameters:
//   - ctx: Cancels the dashboard (timeout or signal).
//   - initialN: The term count pre-filled in the input.
//
// Returns:
//   - int: A process exit code.
func Run(ctx context.Context, initialN int) int {
	program := tea.NewProgram(NewModel(ctx, initialN), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
