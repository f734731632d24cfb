package logic

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/tasklist/internal/controller"
)

// notify is swapped out in tests.
var notify = beeep.Notify

// notifyCmd mirrors a notice to the desktop when enabled in config.
func (h *Handler) notifyCmd(n controller.Notice) tea.Cmd {
	title := h.Msgs.AppTitle
	logger := h.Logger
	return func() tea.Msg {
		if err := notify(title, n.Text, ""); err != nil {
			logger.Debug("desktop notification failed", "err", err)
		}
		return nil
	}
}
