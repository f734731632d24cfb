package logic

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist/internal/controller"
	"github.com/hy4ri/tasklist/internal/task"
	"github.com/hy4ri/tasklist/internal/tui/state"
)

// handleKeyMsg routes a key press to the innermost open surface: the delete
// confirmation, then the edit dialog, then the add form, then help, then the list.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return h.quit()
	}

	switch {
	case h.Ctrl.Modal().State() == controller.ModalConfirm:
		return h.handleConfirmKey(msg)
	case h.Form != nil:
		return h.handleFormKey(msg)
	case h.ShowHelp:
		return h.handleHelpKey(msg)
	}
	return h.handleListKey(msg)
}

func (h *Handler) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		h.Ctrl.ConfirmDelete()
	case "n", "N", "esc":
		h.Ctrl.CancelDelete()
	}
	return nil
}

func (h *Handler) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		h.closeForm()
		return nil
	case "ctrl+s":
		return h.submitForm()
	case "enter":
		// Enter inserts a line break in the description.
		if h.Form.FocusIndex == state.FormFieldTitle {
			return h.submitForm()
		}
	}
	return h.Form.Update(msg)
}

func (h *Handler) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case h.Keymap.Help.Matches(msg.String()), h.Keymap.Back.Matches(msg.String()):
		h.ShowHelp = false
	case h.Keymap.Quit.Matches(msg.String()):
		return h.quit()
	}
	return nil
}

func (h *Handler) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch h.Keymap.Resolve(msg) {
	case state.ActionUp:
		h.moveCursor(-1)
	case state.ActionDown:
		h.moveCursor(1)
	case state.ActionTop:
		h.Cursor = 0
	case state.ActionBottom:
		h.Cursor = len(h.List.Items) - 1
		h.ClampCursor()
	case state.ActionAdd:
		return h.openAddForm()
	case state.ActionEdit:
		return h.openEditForm()
	case state.ActionToggle:
		if item, ok := h.Selected(); ok {
			h.Ctrl.Toggle(item.ID)
		}
	case state.ActionDelete:
		if item, ok := h.Selected(); ok && !h.Ctrl.RequestDelete(item.ID) {
			h.Ctrl.Feedback().Show(h.Msgs.TaskMissing, controller.KindInfo)
		}
	case state.ActionCopy:
		if item, ok := h.Selected(); ok {
			return h.copyTaskCmd(item)
		}
	case state.ActionTheme:
		h.toggleTheme()
	case state.ActionHelp:
		h.ShowHelp = true
	case state.ActionQuit:
		return h.quit()
	}
	return nil
}

func (h *Handler) moveCursor(delta int) {
	h.Cursor += delta
	h.ClampCursor()
}

func (h *Handler) openAddForm() tea.Cmd {
	h.Form = state.NewTaskForm(h.Msgs)
	h.Form.SetWidth(formWidth(h.Width))
	return h.Form.Focus(state.FormFieldTitle)
}

func (h *Handler) openEditForm() tea.Cmd {
	item, ok := h.Selected()
	if !ok {
		return nil
	}
	t, ok := h.Ctrl.OpenEdit(item.ID)
	if !ok {
		h.Ctrl.Feedback().Show(h.Msgs.TaskMissing, controller.KindInfo)
		return nil
	}
	h.Form = state.NewEditTaskForm(t, h.Msgs)
	h.Form.SetWidth(formWidth(h.Width))
	return h.Form.Focus(state.FormFieldTitle)
}

// submitForm sends the form to the controller. The add form stays open and
// empties itself for the next task; the edit dialog closes.
func (h *Handler) submitForm() tea.Cmd {
	title, desc := h.Form.Values()

	var err error
	switch h.Form.Mode {
	case state.FormEdit:
		err = h.Ctrl.SubmitEdit(h.Form.TaskID, title, desc)
	default:
		err = h.Ctrl.SubmitAdd(title, desc)
	}

	if _, ok := task.IsEmptyField(err); ok {
		h.Form.SetTitleError(h.Msgs.TitleRequired)
		return nil
	}
	if err != nil {
		h.Logger.Error("submit failed", "err", err)
		return nil
	}

	if h.Form.Mode == state.FormEdit {
		h.Form = nil
		return nil
	}
	h.Form.Reset()
	h.Cursor = 0
	return nil
}

func (h *Handler) closeForm() {
	if h.EditFormOpen() {
		h.Ctrl.Dismiss()
	}
	h.Form = nil
}

func (h *Handler) toggleTheme() {
	name, err := h.Theme.Toggle()
	if err != nil {
		h.Logger.Error("theme save failed", "err", err)
		h.Ctrl.Feedback().Show(h.Msgs.SaveFailed, controller.KindError)
		return
	}
	h.Logger.Debug("theme changed", "theme", name)
	h.Ctrl.Feedback().Show(fmt.Sprintf(h.Msgs.ThemeChanged, h.Msgs.ThemeName(name)), controller.KindInfo)
}

func (h *Handler) quit() tea.Cmd {
	h.Quitting = true
	return tea.Quit
}

// handleMouseMsg closes an open dialog on a click outside it, selects the
// clicked row otherwise, and scrolls the cursor with the wheel. Clicks that
// arrive before an open dialog has been drawn are ignored.
func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if h.Ctrl.Modal().IsOpen() {
		if h.DialogRect.Empty() {
			return nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !h.DialogRect.Contains(msg.X, msg.Y) {
			h.Ctrl.Dismiss()
			h.Form = nil
		}
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		h.moveCursor(-1)
		return nil
	case tea.MouseButtonWheelDown:
		h.moveCursor(1)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if h.AddFormOpen() || h.ShowHelp || !h.ListRect.Contains(msg.X, msg.Y) {
		return nil
	}

	line := msg.Y - h.ListRect.Y + h.TaskViewport.YOffset
	if idx := itemAtLine(h.ItemLines, line); idx >= 0 {
		h.Cursor = idx
	}
	return nil
}

// itemAtLine returns the index of the item whose block contains line, or -1.
func itemAtLine(starts []int, line int) int {
	idx := -1
	for i, start := range starts {
		if start > line {
			break
		}
		idx = i
	}
	return idx
}
