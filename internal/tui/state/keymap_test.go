package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist/internal/i18n"
)

func TestKeymapResolve(t *testing.T) {
	km := DefaultKeymap(i18n.MustLoad("es"))
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, ActionAdd},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")}, ActionEdit},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionEdit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, ActionToggle},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, ActionToggle},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, ActionDelete},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, ActionCopy},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}, ActionTheme},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, ActionDown},
		{tea.KeyMsg{Type: tea.KeyUp}, ActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")}, ActionBottom},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, ActionHelp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, ""},
	}

	for _, tt := range tests {
		if got := km.Resolve(tt.msg); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeymapLabelsAreLocalized(t *testing.T) {
	es := i18n.MustLoad("es")
	km := DefaultKeymap(es)
	if km.AddTask.Help != "añadir" {
		t.Errorf("AddTask.Help = %q, want %q", km.AddTask.Help, "añadir")
	}

	items := km.HelpItems(es)
	if items[0][0] != "Navegación" {
		t.Errorf("first heading = %q, want %q", items[0][0], "Navegación")
	}
	found := false
	for _, item := range items {
		if item[0] == "x/space" {
			found = true
			if item[1] != es.Help.Toggle {
				t.Errorf("toggle description = %q, want %q", item[1], es.Help.Toggle)
			}
		}
	}
	if !found {
		t.Error("help should list the toggle key")
	}
}
