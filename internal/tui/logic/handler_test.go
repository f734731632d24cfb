package logic

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist/internal/config"
	"github.com/hy4ri/tasklist/internal/controller"
	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/logging"
	"github.com/hy4ri/tasklist/internal/storage"
	"github.com/hy4ri/tasklist/internal/task"
	"github.com/hy4ri/tasklist/internal/theme"
	"github.com/hy4ri/tasklist/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	store, err := task.Open(kv)
	require.NoError(t, err)
	th, err := theme.New(kv, "", func() bool { return false })
	require.NoError(t, err)

	msgs := i18n.MustLoad("es")
	s := state.New(nil, th, msgs, config.DefaultConfig(), logging.Discard())
	sched := NewFeedbackScheduler()
	s.Ctrl = controller.New(store, msgs,
		controller.WithRenderer(s),
		controller.WithFeedback(controller.NewFeedback(controller.DefaultFeedbackDelay, sched)),
	)
	s.Ctrl.Refresh()

	h := NewHandler(s, sched)
	h.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h, kv
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(h *Handler, s string) {
	for _, r := range s {
		h.Update(key(string(r)))
	}
}

func addTask(t *testing.T, h *Handler, title string) {
	t.Helper()
	h.Update(key("a"))
	typeText(h, title)
	h.Update(key("enter"))
	h.Update(key("esc"))
	require.Nil(t, h.Form)
}

func TestAddFormSubmitsAndStaysOpen(t *testing.T) {
	h, _ := newTestHandler(t)

	h.Update(key("a"))
	require.True(t, h.AddFormOpen())

	typeText(h, "Buy milk")
	h.Update(key("tab"))
	typeText(h, "2 liters")
	h.Update(key("ctrl+s"))

	require.Len(t, h.List.Items, 1)
	assert.Equal(t, "Buy milk", h.List.Items[0].RawTitle)
	assert.Equal(t, "2 liters", h.List.Items[0].RawDescription)
	assert.Equal(t, "1 tarea", h.List.Count)

	require.True(t, h.AddFormOpen(), "add form stays open after a successful add")
	title, desc := h.Form.Values()
	assert.Empty(t, title)
	assert.Empty(t, desc)
	assert.Equal(t, h.Msgs.TaskAdded, h.Ctrl.Feedback().Current().Text)
}

func TestAddFormRejectsBlankTitle(t *testing.T) {
	h, kv := newTestHandler(t)

	h.Update(key("a"))
	typeText(h, "   ")
	h.Update(key("enter"))

	assert.Empty(t, h.List.Items)
	assert.Equal(t, h.Msgs.TitleRequired, h.Form.TitleErr)
	_, err := kv.Get(task.DefaultKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	typeText(h, "x")
	assert.Empty(t, h.Form.TitleErr)
}

func TestEditDialog(t *testing.T) {
	h, _ := newTestHandler(t)
	addTask(t, h, "Old")
	created := h.List.Items[0].CreatedAt

	h.Update(key("e"))
	require.True(t, h.EditFormOpen())
	assert.Equal(t, controller.ModalEdit, h.Ctrl.Modal().State())

	typeText(h, " title")
	h.Update(key("enter"))

	assert.Nil(t, h.Form)
	assert.False(t, h.Ctrl.Modal().IsOpen())
	assert.Equal(t, "Old title", h.List.Items[0].RawTitle)
	assert.Equal(t, created, h.List.Items[0].CreatedAt)
	assert.Equal(t, h.Msgs.TaskUpdated, h.Ctrl.Feedback().Current().Text)
}

func TestEditDialogEscapeDiscards(t *testing.T) {
	h, _ := newTestHandler(t)
	addTask(t, h, "Keep")

	h.Update(key("e"))
	typeText(h, "zzz")
	h.Update(key("esc"))

	assert.Nil(t, h.Form)
	assert.False(t, h.Ctrl.Modal().IsOpen())
	assert.Equal(t, "Keep", h.List.Items[0].RawTitle)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	h, _ := newTestHandler(t)
	addTask(t, h, "Doomed")

	h.Update(key("d"))
	assert.Equal(t, controller.ModalConfirm, h.Ctrl.Modal().State())
	h.Update(key("n"))
	assert.False(t, h.Ctrl.Modal().IsOpen())
	assert.Len(t, h.List.Items, 1)

	h.Update(key("d"))
	h.Update(key("j")) // ignored while confirming
	assert.Equal(t, controller.ModalConfirm, h.Ctrl.Modal().State())
	h.Update(key("y"))
	assert.Empty(t, h.List.Items)
	assert.True(t, h.List.Empty)
	assert.Equal(t, h.Msgs.TaskDeleted, h.Ctrl.Feedback().Current().Text)
}

func TestToggleAndNavigate(t *testing.T) {
	h, _ := newTestHandler(t)
	addTask(t, h, "first")
	addTask(t, h, "second")
	require.Equal(t, "second", h.List.Items[0].RawTitle)

	h.Update(key("j"))
	assert.Equal(t, 1, h.Cursor)
	h.Update(key("j"))
	assert.Equal(t, 1, h.Cursor, "cursor stops at the last row")

	h.Update(key("x"))
	assert.True(t, h.List.Items[1].Completed)
	assert.False(t, h.List.Items[0].Completed)
	assert.Equal(t, 1, h.List.Done)

	h.Update(key("x"))
	assert.False(t, h.List.Items[1].Completed)

	h.Update(key("g"))
	assert.Equal(t, 0, h.Cursor)
}

func TestClickOutsideDialogCloses(t *testing.T) {
	h, _ := newTestHandler(t)
	addTask(t, h, "task")
	h.DialogRect = state.Rect{X: 30, Y: 10, W: 40, H: 8}

	h.Update(key("d"))
	h.Update(tea.MouseMsg{X: 35, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, controller.ModalConfirm, h.Ctrl.Modal().State(), "click inside keeps the dialog")

	h.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, h.Ctrl.Modal().IsOpen())
	_, pending := h.Ctrl.Pending()
	assert.False(t, pending)

	h.Update(key("e"))
	require.True(t, h.EditFormOpen())
	h.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, h.Form)
	assert.Len(t, h.List.Items, 1)
}

func TestClickBeforeDialogDrawnIsIgnored(t *testing.T) {
	h, _ := newTestHandler(t)
	addTask(t, h, "task")
	h.DialogRect = state.Rect{}

	h.Update(key("d"))
	h.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, controller.ModalConfirm, h.Ctrl.Modal().State())
	_, pending := h.Ctrl.Pending()
	assert.True(t, pending)
}

func TestFeedbackExpiry(t *testing.T) {
	h, _ := newTestHandler(t)
	fb := h.Ctrl.Feedback()

	first := fb.Show("one", controller.KindInfo)
	second := fb.Show("one", controller.KindInfo)

	h.Update(feedbackExpiredMsg{notice: first})
	assert.Equal(t, second, fb.Current(), "a stale expiry leaves the newer notice")

	h.Update(feedbackExpiredMsg{notice: second})
	assert.True(t, fb.Current().Empty())
}

func TestUpdateSchedulesExpiry(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Update(key("a"))
	typeText(h, "t")

	cmd := h.Update(key("enter"))
	assert.NotNil(t, cmd)
	assert.Empty(t, h.scheduler.pending)
}

func TestCopyTask(t *testing.T) {
	h, _ := newTestHandler(t)
	addTask(t, h, "Copy me")

	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	var got string
	writeClipboard = func(s string) error { got = s; return nil }

	cmd := h.Update(key("y"))
	require.NotNil(t, cmd)
	msg := h.copyTaskCmd(h.List.Items[0])()
	h.Update(msg)

	assert.Equal(t, "Copy me", got)
	assert.Equal(t, "Copiado: Copy me", h.Ctrl.Feedback().Current().Text)

	writeClipboard = func(string) error { return errors.New("no display") }
	h.Update(h.copyTaskCmd(h.List.Items[0])())
	assert.Equal(t, controller.KindError, h.Ctrl.Feedback().Current().Kind)
}

func TestThemeToggle(t *testing.T) {
	h, kv := newTestHandler(t)
	require.Equal(t, theme.Light, h.Theme.Current())

	h.Update(key("t"))
	assert.Equal(t, theme.Dark, h.Theme.Current())
	v, err := kv.Get(theme.Key)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(v))
	assert.Equal(t, "Tema: "+h.Msgs.ThemeDark, h.Ctrl.Feedback().Current().Text)
}

func TestHelpToggle(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Update(key("?"))
	assert.True(t, h.ShowHelp)
	h.Update(key("a"))
	assert.Nil(t, h.Form, "list keys are inactive under help")
	h.Update(key("esc"))
	assert.False(t, h.ShowHelp)
}

func TestNotifyCmd(t *testing.T) {
	h, _ := newTestHandler(t)

	orig := notify
	t.Cleanup(func() { notify = orig })
	var title, body string
	notify = func(ti, msg string, _ any) error { title, body = ti, msg; return nil }

	h.notifyCmd(controller.Notice{Seq: 1, Text: "hola"})()
	assert.Equal(t, h.Msgs.AppTitle, title)
	assert.Equal(t, "hola", body)
}

func TestItemAtLine(t *testing.T) {
	starts := []int{0, 3, 5}
	assert.Equal(t, -1, itemAtLine(nil, 0))
	assert.Equal(t, 0, itemAtLine(starts, 2))
	assert.Equal(t, 1, itemAtLine(starts, 3))
	assert.Equal(t, 2, itemAtLine(starts, 40))
}

func TestOwnThemeWriteKeepsUnsavedTasks(t *testing.T) {
	h, kv := newTestHandler(t)
	kv.FailWrites = errors.New("disk full")
	addTask(t, h, "Unsaved")
	require.Len(t, h.List.Items, 1)

	kv.FailWrites = nil
	h.Update(key("t"))
	h.Update(storageChangedMsg{})

	require.Len(t, h.List.Items, 1)
	assert.Equal(t, "Unsaved", h.List.Items[0].RawTitle)
	assert.NotEqual(t, h.Msgs.LoadFailed, h.Ctrl.Feedback().Current().Text)
}
