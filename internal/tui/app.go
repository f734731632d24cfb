// Package tui provides the terminal user interface for the task list.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasklist/internal/config"
	"github.com/hy4ri/tasklist/internal/controller"
	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/logging"
	"github.com/hy4ri/tasklist/internal/storage"
	"github.com/hy4ri/tasklist/internal/task"
	"github.com/hy4ri/tasklist/internal/theme"
	"github.com/hy4ri/tasklist/internal/tui/logic"
	"github.com/hy4ri/tasklist/internal/tui/state"
	"github.com/hy4ri/tasklist/internal/tui/ui"
)

// Deps are the collaborators the application runs on.
type Deps struct {
	Store    *task.Store
	Theme    *theme.Manager
	Messages i18n.Messages
	Config   *config.Config
	Logger   *log.Logger

	// Watcher reports writes by other processes; nil disables live reload.
	Watcher *storage.Watcher

	// LoadErr is shown as an error notice once the UI starts.
	LoadErr error
}

// App is the main Bubble Tea model for the application.
type App struct {
	*state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp wires the controller to a fresh UI state.
func NewApp(d Deps) *App {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Config == nil {
		d.Config = config.DefaultConfig()
	}

	s := state.New(nil, d.Theme, d.Messages, d.Config, d.Logger)
	s.Watcher = d.Watcher

	scheduler := logic.NewFeedbackScheduler()
	delay := time.Duration(d.Config.UI.FeedbackSeconds) * time.Second
	s.Ctrl = controller.New(d.Store, d.Messages,
		controller.WithRenderer(s),
		controller.WithFeedback(controller.NewFeedback(delay, scheduler)),
		controller.WithLogger(d.Logger),
	)
	s.Ctrl.Refresh()

	if d.LoadErr != nil {
		d.Logger.Error("failed to load tasks", "err", d.LoadErr)
		s.Ctrl.Feedback().Show(d.Messages.LoadFailed, controller.KindError)
	}

	return &App{
		State:    s,
		handler:  logic.NewHandler(s, scheduler),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.Theme != nil {
		a.Theme.Apply()
	}
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
