// Package theme tracks the light/dark preference and mirrors it to storage
// and to lipgloss.
package theme

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasklist/internal/storage"
)

// Theme values as persisted.
const (
	Light = "light"
	Dark  = "dark"
)

// Key is the storage key for the user's explicit choice. It stays absent
// until the user toggles.
const Key = "theme"

// Valid reports whether s is a known theme value.
func Valid(s string) bool {
	return s == Light || s == Dark
}

// Manager holds the active theme.
type Manager struct {
	kv      storage.KV
	current string
}

// New resolves the active theme: a stored choice wins, then override
// (from config), then the terminal background reported by detectDark.
// A nil detectDark uses lipgloss.HasDarkBackground.
func New(kv storage.KV, override string, detectDark func() bool) (*Manager, error) {
	if detectDark == nil {
		detectDark = lipgloss.HasDarkBackground
	}
	m := &Manager{kv: kv}

	v, err := kv.Get(Key)
	switch {
	case err == nil && Valid(string(v)):
		m.current = string(v)
		return m, nil
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		m.current = preferred(override, detectDark)
		return m, fmt.Errorf("failed to read theme: %w", err)
	}

	m.current = preferred(override, detectDark)
	return m, nil
}

func preferred(override string, detectDark func() bool) string {
	if Valid(override) {
		return override
	}
	if detectDark() {
		return Dark
	}
	return Light
}

// Current returns the active theme.
func (m *Manager) Current() string {
	return m.current
}

// Toggle switches between light and dark, persists the choice and applies it.
// The in-memory theme changes even if persisting fails.
func (m *Manager) Toggle() (string, error) {
	next := Dark
	if m.current == Dark {
		next = Light
	}
	m.current = next
	m.Apply()

	if err := m.kv.Set(Key, []byte(next)); err != nil {
		return next, fmt.Errorf("failed to save theme: %w", err)
	}
	return next, nil
}

// Apply makes lipgloss resolve adaptive colours for the active theme.
func (m *Manager) Apply() {
	lipgloss.SetHasDarkBackground(m.current == Dark)
}
