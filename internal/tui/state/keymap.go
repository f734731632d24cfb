package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist/internal/i18n"
)

// Key represents a key binding.
type Key struct {
	Key  string
	Alt  string
	Help string
}

// Matches reports whether s is the binding's key or its alternative.
func (k Key) Matches(s string) bool {
	return s != "" && (s == k.Key || s == k.Alt)
}

// Label returns the key text shown in help.
func (k Key) Label() string {
	if k.Alt == "" {
		return k.Key
	}
	return k.Key + "/" + k.Alt
}

// KeymapData contains all key bindings for the list screen.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Task actions
	AddTask    Key
	EditTask   Key
	ToggleTask Key
	DeleteTask Key
	CopyTask   Key

	// General
	Theme Key
	Help  Key
	Back  Key
	Quit  Key
}

// DefaultKeymap returns the default Vim-style key bindings labelled from m.
func DefaultKeymap(m i18n.Messages) KeymapData {
	k := m.Keys
	return KeymapData{
		Up:     Key{Key: "k", Alt: "up", Help: k.Up},
		Down:   Key{Key: "j", Alt: "down", Help: k.Down},
		Top:    Key{Key: "g", Alt: "home", Help: k.Top},
		Bottom: Key{Key: "G", Alt: "end", Help: k.Bottom},

		AddTask:    Key{Key: "a", Help: k.Add},
		EditTask:   Key{Key: "e", Alt: "enter", Help: k.Edit},
		ToggleTask: Key{Key: "x", Alt: " ", Help: k.Toggle},
		DeleteTask: Key{Key: "d", Alt: "delete", Help: k.Delete},
		CopyTask:   Key{Key: "y", Help: k.Copy},

		Theme: Key{Key: "t", Help: k.Theme},
		Help:  Key{Key: "?", Help: k.Help},
		Back:  Key{Key: "esc", Help: k.Close},
		Quit:  Key{Key: "q", Alt: "ctrl+c", Help: k.Quit},
	}
}

// Action names returned by Resolve.
const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionTop    = "top"
	ActionBottom = "bottom"
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionToggle = "toggle"
	ActionDelete = "delete"
	ActionCopy   = "copy"
	ActionTheme  = "theme"
	ActionHelp   = "help"
	ActionBack   = "back"
	ActionQuit   = "quit"
)

// Resolve maps a key press on the list screen to an action name.
// It returns "" for unbound keys.
func (k KeymapData) Resolve(msg tea.KeyMsg) string {
	key := msg.String()
	switch {
	case k.Up.Matches(key):
		return ActionUp
	case k.Down.Matches(key):
		return ActionDown
	case k.Top.Matches(key):
		return ActionTop
	case k.Bottom.Matches(key):
		return ActionBottom
	case k.AddTask.Matches(key):
		return ActionAdd
	case k.EditTask.Matches(key):
		return ActionEdit
	case k.ToggleTask.Matches(key):
		return ActionToggle
	case k.DeleteTask.Matches(key):
		return ActionDelete
	case k.CopyTask.Matches(key):
		return ActionCopy
	case k.Theme.Matches(key):
		return ActionTheme
	case k.Help.Matches(key):
		return ActionHelp
	case k.Back.Matches(key):
		return ActionBack
	case k.Quit.Matches(key):
		return ActionQuit
	}
	return ""
}

// HelpItems returns key-description pairs for the help view. A pair with an
// empty description is a section heading; an empty pair is a blank line.
func (k KeymapData) HelpItems(m i18n.Messages) [][]string {
	h := m.Help
	return [][]string{
		{h.Navigation, ""},
		{k.Up.Key + "/" + k.Down.Key, h.Move},
		{k.Top.Key + "/" + k.Bottom.Key, h.Jump},
		{"", ""},
		{h.TaskActions, ""},
		{k.AddTask.Key, h.Add},
		{k.EditTask.Label(), h.Edit},
		{k.ToggleTask.Key + "/space", h.Toggle},
		{k.DeleteTask.Key, h.Delete},
		{k.CopyTask.Key, h.Copy},
		{"", ""},
		{h.Dialogs, ""},
		{"tab", h.NextField},
		{"enter/ctrl+s", h.Save},
		{"y/n", h.Confirm},
		{k.Back.Key, h.Cancel},
		{"", ""},
		{h.General, ""},
		{k.Theme.Key, h.Theme},
		{k.Help.Key, h.ToggleHelp},
		{k.Quit.Key, h.Quit},
	}
}

// ShortHelp returns the bindings shown in the one-line hint bar.
func (k KeymapData) ShortHelp() []Key {
	return []Key{k.AddTask, k.ToggleTask, k.EditTask, k.DeleteTask, k.Theme, k.Help, k.Quit}
}
