package state

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasklist/internal/config"
	"github.com/hy4ri/tasklist/internal/controller"
	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/storage"
	"github.com/hy4ri/tasklist/internal/task"
	"github.com/hy4ri/tasklist/internal/theme"
	"github.com/hy4ri/tasklist/internal/view"
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Ctrl    *controller.Controller
	Theme   *theme.Manager
	Msgs    i18n.Messages
	Config  *config.Config
	Logger  *log.Logger
	Watcher *storage.Watcher // nil unless the backend is a shared file

	// Data, as last rendered by the controller
	List view.List

	// List state
	Cursor int

	// UI state
	Width    int
	Height   int
	ShowHelp bool
	Quitting bool

	// Form is the open add or edit form, nil when neither is shown.
	Form *TaskForm

	// Components
	Keymap KeymapData

	// Viewport
	TaskViewport  viewport.Model
	ViewportReady bool

	// ItemLines holds the first viewport line of each list item.
	ItemLines []int

	// ListRect is where the viewport was last drawn.
	ListRect Rect

	// DialogRect is where the open edit/confirm dialog was last drawn.
	DialogRect Rect
}

// New creates a State with default key bindings.
func New(ctrl *controller.Controller, th *theme.Manager, msgs i18n.Messages, cfg *config.Config, logger *log.Logger) *State {
	return &State{
		Ctrl:   ctrl,
		Theme:  th,
		Msgs:   msgs,
		Config: cfg,
		Logger: logger,
		Keymap: DefaultKeymap(msgs),
	}
}

// Render implements controller.Renderer. It re-projects the list and keeps
// the cursor on a valid row.
func (s *State) Render(tasks []task.Task) {
	s.List = view.Project(tasks, s.Msgs)
	s.ClampCursor()
}

// ClampCursor keeps Cursor within the list bounds.
func (s *State) ClampCursor() {
	if s.Cursor >= len(s.List.Items) {
		s.Cursor = len(s.List.Items) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// Selected returns the item under the cursor.
func (s *State) Selected() (view.Item, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.List.Items) {
		return view.Item{}, false
	}
	return s.List.Items[s.Cursor], true
}

// AddFormOpen reports whether the add form is shown.
func (s *State) AddFormOpen() bool {
	return s.Form != nil && s.Form.Mode == FormAdd
}

// EditFormOpen reports whether the edit dialog is shown.
func (s *State) EditFormOpen() bool {
	return s.Form != nil && s.Form.Mode == FormEdit
}
