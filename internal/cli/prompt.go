package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompter asks the user for a single line of text.
type Prompter interface {
	Ask(ctx context.Context, label string) (string, error)
}

type linePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{reader: bufio.NewReader(in), out: out}
}

type lineResult struct {
	line string
	err  error
}

func (p *linePrompter) Ask(ctx context.Context, label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, io.EOF) && r.line != "" {
				return strings.TrimSpace(r.line), nil
			}
			if errors.Is(r.err, io.EOF) {
				return "", fmt.Errorf("read %s: %w", strings.ToLower(label), io.ErrUnexpectedEOF)
			}
			return "", fmt.Errorf("read %s: %w", strings.ToLower(label), r.err)
		}
		return strings.TrimSpace(r.line), nil
	}
}

type teaPrompter struct {
	in  io.Reader
	out io.Writer
}

// newTeaPrompter runs prompts as small bubbletea programs; nil streams mean the terminal.
func newTeaPrompter(in io.Reader, out io.Writer) *teaPrompter {
	return &teaPrompter{in: in, out: out}
}

func (p *teaPrompter) Ask(ctx context.Context, label string) (string, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}
	if p.out != nil {
		opts = append(opts, tea.WithOutput(p.out))
	}

	final, err := tea.NewProgram(newLineInputModel(label), opts...).Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("prompt %s: %w", strings.ToLower(label), err)
	}
	m, ok := final.(lineInputModel)
	if !ok || m.cancelled {
		return "", ErrInterrupted
	}
	return m.value, nil
}

type lineInputModel struct {
	label     string
	input     textinput.Model
	value     string
	submitted bool
	cancelled bool
}

func newLineInputModel(label string) lineInputModel {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 0 // unlimited
	input.Width = 80
	input.Focus()
	return lineInputModel{label: label, input: input}
}

func (m lineInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.value = strings.TrimSpace(m.input.Value())
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineInputModel) View() string {
	title := promptLabelStyle.Render(m.label)
	if m.submitted {
		return title + " " + m.value + "\n"
	}
	if m.cancelled {
		return title + "\n"
	}
	return title + "\n" + m.input.View() + "\n" + mutedStyle.Render("enter: confirm | esc: cancel") + "\n"
}
