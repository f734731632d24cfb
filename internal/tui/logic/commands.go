package logic

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasklist/internal/controller"
	"github.com/hy4ri/tasklist/internal/view"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type scheduledNotice struct {
	notice controller.Notice
	after  time.Duration
}

// FeedbackScheduler implements controller.Scheduler for bubbletea. The
// controller schedules synchronously inside Update; the Handler then turns
// each queued notice into a tea.Tick.
type FeedbackScheduler struct {
	pending []scheduledNotice
}

// NewFeedbackScheduler creates an empty scheduler.
func NewFeedbackScheduler() *FeedbackScheduler {
	return &FeedbackScheduler{}
}

// Schedule implements controller.Scheduler.
func (s *FeedbackScheduler) Schedule(n controller.Notice, after time.Duration) {
	s.pending = append(s.pending, scheduledNotice{notice: n, after: after})
}

func (s *FeedbackScheduler) drain() []scheduledNotice {
	out := s.pending
	s.pending = nil
	return out
}

// flushFeedback returns expiry ticks and desktop notifications for the
// notices shown since the last call.
func (h *Handler) flushFeedback() tea.Cmd {
	if h.scheduler == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, sn := range h.scheduler.drain() {
		cmds = append(cmds, expireCmd(sn.notice, sn.after))
		if h.Config != nil && h.Config.UI.DesktopNotifications {
			cmds = append(cmds, h.notifyCmd(sn.notice))
		}
	}
	return tea.Batch(cmds...)
}

func expireCmd(n controller.Notice, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{notice: n}
	})
}

// watchStorage waits for the next external change to the data file.
func (h *Handler) watchStorage() tea.Cmd {
	w := h.Watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return storageChangedMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

// copyTaskCmd copies the item's title, and description if any, to the clipboard.
func (h *Handler) copyTaskCmd(item view.Item) tea.Cmd {
	msgs := h.Msgs
	content := item.RawTitle
	if item.HasDescription {
		content += "\n" + item.RawDescription
	}
	return func() tea.Msg {
		if err := writeClipboard(content); err != nil {
			return statusMsg{msg: fmt.Sprintf(msgs.CopyFailed, err.Error()), kind: controller.KindError}
		}
		return statusMsg{msg: fmt.Sprintf(msgs.Copied, item.RawTitle), kind: controller.KindInfo}
	}
}
