package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/task"
)

// FormField constants for focus management
const (
	FormFieldTitle = iota
	FormFieldDescription
)

const formFieldCount = 2

// FormMode says whether the form creates or edits a task.
type FormMode int

const (
	FormAdd FormMode = iota
	FormEdit
)

// TaskForm represents the state of the task creation/editing form.
type TaskForm struct {
	Title       textinput.Model
	Description textarea.Model
	FocusIndex  int

	// TitleErr is the inline error under the title input. It clears as soon
	// as the title holds a non-blank character.
	TitleErr string

	// Mode tracking
	Mode   FormMode
	TaskID string // ID of task being edited
}

// NewTaskForm creates an empty add form.
func NewTaskForm(msgs i18n.Messages) *TaskForm {
	title := textinput.New()
	title.Placeholder = msgs.TitlePlaceholder
	title.Prompt = ""
	title.CharLimit = 200
	title.Width = 50
	title.Focus()

	desc := textarea.New()
	desc.Placeholder = msgs.DescriptionPlaceholder
	desc.ShowLineNumbers = false
	desc.CharLimit = 1000
	desc.SetWidth(50)
	desc.SetHeight(3)

	return &TaskForm{
		Title:       title,
		Description: desc,
		Mode:        FormAdd,
	}
}

// NewEditTaskForm creates a form prefilled with t.
func NewEditTaskForm(t task.Task, msgs i18n.Messages) *TaskForm {
	f := NewTaskForm(msgs)
	f.Title.SetValue(t.Title)
	f.Title.CursorEnd()
	f.Description.SetValue(t.Description)
	f.Mode = FormEdit
	f.TaskID = t.ID
	return f
}

// Update routes msg to the focused input.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "tab":
			f.NextField()
			return nil
		case "shift+tab":
			f.PrevField()
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.FocusIndex {
	case FormFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
		if f.TitleErr != "" && strings.TrimSpace(f.Title.Value()) != "" {
			f.TitleErr = ""
		}
	case FormFieldDescription:
		f.Description, cmd = f.Description.Update(msg)
	}
	return cmd
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

// Focus sets the focused field.
func (f *TaskForm) Focus(index int) tea.Cmd {
	f.FocusIndex = index
	f.Title.Blur()
	f.Description.Blur()

	switch index {
	case FormFieldDescription:
		return f.Description.Focus()
	default:
		return f.Title.Focus()
	}
}

// Values returns the raw title and description.
func (f *TaskForm) Values() (string, string) {
	return f.Title.Value(), f.Description.Value()
}

// SetTitleError shows msg under the title and moves focus back to it.
func (f *TaskForm) SetTitleError(msg string) {
	f.TitleErr = msg
	f.Focus(FormFieldTitle)
}

// Reset clears both inputs and refocuses the title.
func (f *TaskForm) Reset() {
	f.Title.Reset()
	f.Description.Reset()
	f.TitleErr = ""
	f.Focus(FormFieldTitle)
}

// SetWidth sets width of inputs
func (f *TaskForm) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	f.Title.Width = width
	f.Description.SetWidth(width)
}
