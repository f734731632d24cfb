package controller

import "time"

// DefaultFeedbackDelay is how long a notice stays before clearing itself.
const DefaultFeedbackDelay = 3 * time.Second

// Kind classifies a notice for styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notice is one feedback message. Seq identifies it; two notices with the
// same text are still distinct.
type Notice struct {
	Seq  uint64
	Text string
	Kind Kind
}

// Empty reports whether nothing is displayed.
func (n Notice) Empty() bool {
	return n.Text == ""
}

// Scheduler arranges for Feedback.Expire(n) to be called after a delay.
// The UI decides how: a bubbletea tick, a test clock, a timer.
type Scheduler interface {
	Schedule(n Notice, after time.Duration)
}

// Feedback is the transient status line. Each Show supersedes the previous
// notice, and each notice's expiry only clears the line if that notice is
// still the one displayed.
type Feedback struct {
	delay     time.Duration
	scheduler Scheduler
	seq       uint64
	current   Notice
}

// NewFeedback creates a Feedback that expires notices after delay.
// A nil scheduler means notices never expire on their own.
func NewFeedback(delay time.Duration, scheduler Scheduler) *Feedback {
	if delay <= 0 {
		delay = DefaultFeedbackDelay
	}
	return &Feedback{delay: delay, scheduler: scheduler}
}

// Show displays text and schedules its expiry.
func (f *Feedback) Show(text string, kind Kind) Notice {
	f.seq++
	f.current = Notice{Seq: f.seq, Text: text, Kind: kind}
	if f.scheduler != nil {
		f.scheduler.Schedule(f.current, f.delay)
	}
	return f.current
}

// Expire clears the line if n is still displayed and reports whether it did.
func (f *Feedback) Expire(n Notice) bool {
	if f.current.Empty() || f.current.Seq != n.Seq {
		return false
	}
	f.current = Notice{}
	return true
}

// Current returns the displayed notice; it is empty when nothing is shown.
func (f *Feedback) Current() Notice {
	return f.current
}

// Delay returns the auto-clear delay.
func (f *Feedback) Delay() time.Duration {
	return f.delay
}
