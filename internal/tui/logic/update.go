package logic

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasklist/internal/controller"
	"github.com/hy4ri/tasklist/internal/tui/state"
)

// Handler turns bubbletea messages into controller calls.
type Handler struct {
	*state.State
	scheduler *FeedbackScheduler
}

// NewHandler creates a Handler. scheduler must be the one the controller's
// Feedback was built with.
func NewHandler(s *state.State, scheduler *FeedbackScheduler) *Handler {
	return &Handler{
		State:     s,
		scheduler: scheduler,
	}
}

// Init returns the commands to run at startup.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.flushFeedback(),
		h.watchStorage(),
	)
}

// Update handles msg and returns follow-up commands, including expiry ticks
// for any notice shown while handling it.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	cmd := h.update(msg)
	h.syncForm()
	return tea.Batch(cmd, h.flushFeedback())
}

func (h *Handler) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case feedbackExpiredMsg:
		h.Ctrl.Feedback().Expire(msg.notice)
		return nil

	case statusMsg:
		h.Ctrl.Feedback().Show(msg.msg, msg.kind)
		return nil

	case storageChangedMsg:
		return h.handleStorageChanged()

	case watchErrMsg:
		h.Logger.Warn("storage watcher error", "err", msg.err)
		return h.watchStorage()
	}

	// Forward non-key messages (like blink) to the open form
	if h.Form != nil {
		return h.Form.Update(msg)
	}
	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	vpHeight := msg.Height - 6
	if vpHeight < 3 {
		vpHeight = 3
	}
	vpWidth := msg.Width - 4
	if vpWidth < 20 {
		vpWidth = 20
	}
	if !h.ViewportReady {
		h.TaskViewport = viewport.New(vpWidth, vpHeight)
		h.TaskViewport.Style = lipgloss.NewStyle()
		h.TaskViewport.MouseWheelEnabled = true
		h.ViewportReady = true
	} else {
		h.TaskViewport.Width = vpWidth
		h.TaskViewport.Height = vpHeight
	}

	if h.Form != nil {
		h.Form.SetWidth(formWidth(msg.Width))
	}
	return nil
}

func (h *Handler) handleStorageChanged() tea.Cmd {
	if err := h.Ctrl.Reload(); err != nil {
		h.Logger.Error("reload after external change failed", "err", err)
		h.Ctrl.Feedback().Show(h.Msgs.LoadFailed, controller.KindError)
	}
	return h.watchStorage()
}

// syncForm drops an edit form whose dialog the controller has closed, for
// example because the task was deleted elsewhere.
func (h *Handler) syncForm() {
	if !h.EditFormOpen() {
		return
	}
	modal := h.Ctrl.Modal()
	if !modal.IsOpen() || modal.TaskID() != h.Form.TaskID {
		h.Form = nil
	}
}

// formWidth is the input width for a terminal of the given width.
func formWidth(termWidth int) int {
	w := termWidth - 12
	if w > 60 {
		w = 60
	}
	return w
}
