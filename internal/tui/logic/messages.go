package logic

import (
	"github.com/hy4ri/tasklist/internal/controller"
)

// feedbackExpiredMsg fires when a notice's display time is over.
type feedbackExpiredMsg struct{ notice controller.Notice }

// storageChangedMsg reports that another process wrote the data file.
type storageChangedMsg struct{}

// watchErrMsg carries a watcher failure.
type watchErrMsg struct{ err error }

// statusMsg is the result of a background command that should surface as feedback.
type statusMsg struct {
	msg  string
	kind controller.Kind
}
