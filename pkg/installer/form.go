package installer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultHost is used when the host question is left empty.
const DefaultHost = "https://gitlab.com"

// ErrAborted is returned by RunForm when the user quits the form.
var ErrAborted = errors.New("installation aborted")

// Answers are the values collected by the form.
type Answers struct {
	Mode         string
	Host         string
	Token        string
	ReadOnly     bool
	UseKeyring   bool
	Environments []string
}

type formStep int

const (
	stepMode formStep = iota
	stepHost
	stepToken
	stepReadOnly
	stepKeyring
	stepEnvironments
	stepDone
)

var modes = []string{ModeLocal, ModeDocker}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Form is the bubbletea model asking the installer questions one at a time.
type Form struct {
	step       formStep
	mode       int
	host       textinput.Model
	token      textinput.Model
	readOnly   bool
	useKeyring bool
	cursor     int
	selected   []bool
	err        string
	aborted    bool
}

// NewForm returns a form with every environment preselected and keyring
// storage on.
func NewForm() *Form {
	host := textinput.New()
	host.Placeholder = DefaultHost
	host.CharLimit = 256

	token := textinput.New()
	token.Placeholder = "glpat-..."
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '•'

	selected := make([]bool, len(Environments))
	for i := range selected {
		selected[i] = true
	}
	return &Form{host: host, token: token, useKeyring: true, selected: selected}
}

func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateInput(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		f.aborted = true
		return f, tea.Quit
	case "enter":
		return f, f.confirm()
	}

	switch f.step {
	case stepMode:
		switch key.String() {
		case "up", "left", "k", "h":
			f.mode = (f.mode + len(modes) - 1) % len(modes)
		case "down", "right", "j", "l", "tab":
			f.mode = (f.mode + 1) % len(modes)
		}
	case stepReadOnly:
		f.readOnly = toggle(f.readOnly, key.String())
	case stepKeyring:
		f.useKeyring = toggle(f.useKeyring, key.String())
	case stepEnvironments:
		switch key.String() {
		case "up", "k":
			if f.cursor > 0 {
				f.cursor--
			}
		case "down", "j":
			if f.cursor < len(Environments)-1 {
				f.cursor++
			}
		case " ", "space", "x":
			f.selected[f.cursor] = !f.selected[f.cursor]
		case "a":
			all := !f.allSelected()
			for i := range f.selected {
				f.selected[i] = all
			}
		}
	default:
		return f, f.updateInput(msg)
	}
	return f, nil
}

func toggle(v bool, key string) bool {
	switch key {
	case "y", "Y":
		return true
	case "n", "N":
		return false
	case " ", "space", "left", "right", "tab", "h", "l":
		return !v
	}
	return v
}

func (f *Form) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.step {
	case stepHost:
		f.host, cmd = f.host.Update(msg)
	case stepToken:
		f.token, cmd = f.token.Update(msg)
	}
	return cmd
}

// confirm validates the current answer and moves to the next question.
func (f *Form) confirm() tea.Cmd {
	f.err = ""
	switch f.step {
	case stepToken:
		if strings.TrimSpace(f.token.Value()) == "" {
			f.err = "token cannot be empty"
			return nil
		}
	case stepEnvironments:
		if !f.anySelected() {
			f.err = "select at least one environment"
			return nil
		}
	}

	f.host.Blur()
	f.token.Blur()
	f.step++
	switch f.step {
	case stepHost:
		return f.host.Focus()
	case stepToken:
		return f.token.Focus()
	case stepDone:
		return tea.Quit
	}
	return nil
}

func (f *Form) anySelected() bool {
	for _, s := range f.selected {
		if s {
			return true
		}
	}
	return false
}

func (f *Form) allSelected() bool {
	for _, s := range f.selected {
		if !s {
			return false
		}
	}
	return true
}

func (f *Form) View() string {
	if f.step == stepDone || f.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("GitLab REST MCP installer") + "\n\n")

	switch f.step {
	case stepMode:
		b.WriteString(questionStyle.Render("How should clients start the server?") + "\n")
		for i, m := range modes {
			b.WriteString(choice(i == f.mode, m) + "\n")
		}
	case stepHost:
		b.WriteString(questionStyle.Render("GitLab host URL") + "\n" + f.host.View() + "\n")
	case stepToken:
		b.WriteString(questionStyle.Render("GitLab access token") + "\n" + f.token.View() + "\n")
	case stepReadOnly:
		b.WriteString(questionStyle.Render("Only register read-only (GET) tools?") + "\n" + yesNo(f.readOnly) + "\n")
	case stepKeyring:
		b.WriteString(questionStyle.Render("Store the token in the OS keyring instead of the client config?") + "\n" + yesNo(f.useKeyring) + "\n")
	case stepEnvironments:
		b.WriteString(questionStyle.Render("Configure these clients") + "\n")
		for i, env := range Environments {
			box := "[ ]"
			if f.selected[i] {
				box = "[x]"
			}
			b.WriteString(choice(i == f.cursor, box+" "+env) + "\n")
		}
	}

	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err) + "\n")
	}
	b.WriteString("\n" + hintStyle.Render(f.hint()) + "\n")
	return b.String()
}

func (f *Form) hint() string {
	switch f.step {
	case stepMode:
		return "↑/↓ choose • enter confirm • esc quit"
	case stepReadOnly, stepKeyring:
		return "y/n or space toggle • enter confirm • esc quit"
	case stepEnvironments:
		return "↑/↓ move • space toggle • a all • enter confirm • esc quit"
	}
	return "enter confirm • esc quit"
}

func choice(active bool, label string) string {
	if active {
		return activeStyle.Render("> " + label)
	}
	return "  " + label
}

func yesNo(v bool) string {
	if v {
		return choice(true, "yes") + "   no"
	}
	return "  yes " + choice(true, "no")
}

// Done reports whether every question was answered.
func (f *Form) Done() bool {
	return f.step == stepDone && !f.aborted
}

// Answers returns the collected values; an empty host becomes DefaultHost.
func (f *Form) Answers() Answers {
	a := Answers{
		Mode:       modes[f.mode],
		Host:       strings.TrimSpace(f.host.Value()),
		Token:      strings.TrimSpace(f.token.Value()),
		ReadOnly:   f.readOnly,
		UseKeyring: f.useKeyring,
	}
	if a.Host == "" {
		a.Host = DefaultHost
	}
	for i, env := range Environments {
		if f.selected[i] {
			a.Environments = append(a.Environments, env)
		}
	}
	return a
}

// RunForm runs the form on in and out until it is answered or aborted.
func RunForm(in io.Reader, out io.Writer) (Answers, error) {
	final, err := tea.NewProgram(NewForm(), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return Answers{}, fmt.Errorf("installer form failed: %w", err)
	}
	f, ok := final.(*Form)
	if !ok || !f.Done() {
		return Answers{}, ErrAborted
	}
	return f.Answers(), nil
}
