package installer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(f *Form, keys ...tea.KeyMsg) {
	for _, k := range keys {
		f.Update(k)
	}
}

func typeText(f *Form, s string) {
	press(f, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	space = tea.KeyMsg{Type: tea.KeySpace}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormDefaults(t *testing.T) {
	f := NewForm()
	f.Init()

	press(f, enter, enter) // local, default host
	typeText(f, "glpat-abc")
	press(f, enter, enter, enter, enter)

	require.True(t, f.Done())
	assert.Equal(t, Answers{
		Mode:         ModeLocal,
		Host:         DefaultHost,
		Token:        "glpat-abc",
		ReadOnly:     false,
		UseKeyring:   true,
		Environments: Environments,
	}, f.Answers())
	assert.Empty(t, f.View())
}

func TestFormAnswers(t *testing.T) {
	f := NewForm()

	press(f, down, enter)
	typeText(f, "gitlab.example.com")
	press(f, enter)
	typeText(f, "glpat-xyz")
	press(f, enter)
	press(f, runes("y"), enter)
	press(f, runes("n"), enter)
	// deselect everything, then pick Claude Code only
	press(f, runes("a"), down, down, space, enter)

	require.True(t, f.Done())
	a := f.Answers()
	assert.Equal(t, ModeDocker, a.Mode)
	assert.Equal(t, "gitlab.example.com", a.Host)
	assert.Equal(t, "glpat-xyz", a.Token)
	assert.True(t, a.ReadOnly)
	assert.False(t, a.UseKeyring)
	assert.Equal(t, []string{EnvClaudeCode}, a.Environments)
}

func TestFormValidation(t *testing.T) {
	f := NewForm()
	press(f, enter, enter)

	press(f, enter)
	assert.Equal(t, stepToken, f.step)
	assert.Contains(t, f.View(), "token cannot be empty")

	typeText(f, "glpat-1")
	press(f, enter, enter, enter)
	assert.NotContains(t, f.View(), "token cannot be empty")

	press(f, runes("a"), enter)
	assert.Equal(t, stepEnvironments, f.step)
	assert.Contains(t, f.View(), "select at least one environment")
	assert.False(t, f.Done())
}

func TestFormTokenIsMasked(t *testing.T) {
	f := NewForm()
	press(f, enter, enter)
	typeText(f, "glpat-hidden")
	assert.NotContains(t, f.View(), "glpat-hidden")
}

func TestFormAbort(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		f := NewForm()
		press(f, enter)
		_, cmd := f.Update(key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.False(t, f.Done())
	}
}
