package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/task"
)

func typeRunes(f *TaskForm, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTaskForm_FocusCycles(t *testing.T) {
	f := NewTaskForm(i18n.MustLoad("es"))

	if f.FocusIndex != FormFieldTitle || !f.Title.Focused() {
		t.Fatal("title should be focused initially")
	}

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.FocusIndex != FormFieldDescription || !f.Description.Focused() || f.Title.Focused() {
		t.Error("tab should move focus to the description")
	}

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.FocusIndex != FormFieldTitle {
		t.Error("tab should wrap back to the title")
	}

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.FocusIndex != FormFieldDescription {
		t.Error("shift+tab should move focus backwards")
	}
}

func TestTaskForm_TypingGoesToFocusedField(t *testing.T) {
	f := NewTaskForm(i18n.MustLoad("es"))
	typeRunes(f, "Buy")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeRunes(f, "milk")

	title, desc := f.Values()
	if title != "Buy" {
		t.Errorf("title = %q, want %q", title, "Buy")
	}
	if desc != "milk" {
		t.Errorf("description = %q, want %q", desc, "milk")
	}
}

func TestTaskForm_TitleErrorClearsWhileTyping(t *testing.T) {
	f := NewTaskForm(i18n.MustLoad("es"))
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.SetTitleError("required")

	if f.FocusIndex != FormFieldTitle {
		t.Error("title error should move focus to the title")
	}

	typeRunes(f, " ")
	if f.TitleErr == "" {
		t.Error("whitespace should not clear the title error")
	}

	typeRunes(f, "x")
	if f.TitleErr != "" {
		t.Errorf("title error should clear once the title has text, got %q", f.TitleErr)
	}
}

func TestTaskForm_Reset(t *testing.T) {
	f := NewTaskForm(i18n.MustLoad("es"))
	typeRunes(f, "abc")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeRunes(f, "def")
	f.TitleErr = "x"

	f.Reset()
	title, desc := f.Values()
	if title != "" || desc != "" || f.TitleErr != "" {
		t.Errorf("reset left title=%q desc=%q err=%q", title, desc, f.TitleErr)
	}
	if f.FocusIndex != FormFieldTitle {
		t.Error("reset should refocus the title")
	}
}

func TestNewEditTaskForm(t *testing.T) {
	f := NewEditTaskForm(task.Task{ID: "7", Title: "Old", Description: "Body"}, i18n.MustLoad("en"))
	title, desc := f.Values()
	if f.Mode != FormEdit || f.TaskID != "7" {
		t.Errorf("mode=%v id=%q", f.Mode, f.TaskID)
	}
	if title != "Old" || desc != "Body" {
		t.Errorf("values = %q, %q", title, desc)
	}
}
