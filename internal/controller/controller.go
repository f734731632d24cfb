// Package controller maps user intents onto the task store, the dialog state
// and the feedback line. It has no UI dependencies; front ends call its
// methods and draw from Renderer callbacks.
package controller

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/task"
)

// Renderer receives the full collection after every change.
type Renderer interface {
	Render(tasks []task.Task)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(tasks []task.Task)

// Render implements Renderer.
func (f RendererFunc) Render(tasks []task.Task) {
	f(tasks)
}

// Controller is the command surface of the application.
//
// Validation failures are returned to the caller as *task.EmptyFieldError and
// leave every other piece of state alone. A target task that has vanished
// (another process deleted it) is logged and reconciled by re-rendering.
// A failed save shows an error notice; the in-memory change stands.
type Controller struct {
	store    *task.Store
	msgs     i18n.Messages
	modal    Modal
	feedback *Feedback
	renderer Renderer
	logger   *log.Logger

	pending string
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the render callback.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithFeedback sets the feedback channel.
func WithFeedback(f *Feedback) Option {
	return func(c *Controller) { c.feedback = f }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Controller over store.
func New(store *task.Store, msgs i18n.Messages, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		msgs:   msgs,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.feedback == nil {
		c.feedback = NewFeedback(DefaultFeedbackDelay, nil)
	}
	return c
}

// Tasks returns the current collection in display order.
func (c *Controller) Tasks() []task.Task {
	return c.store.List()
}

// Modal returns the dialog state.
func (c *Controller) Modal() *Modal {
	return &c.modal
}

// Feedback returns the feedback channel.
func (c *Controller) Feedback() *Feedback {
	return c.feedback
}

// Pending returns the task id awaiting delete confirmation.
func (c *Controller) Pending() (string, bool) {
	return c.pending, c.pending != ""
}

// Refresh re-renders from the store without changing anything.
func (c *Controller) Refresh() {
	c.render()
}

// SubmitAdd validates and adds a task. On nil error the caller clears its inputs.
func (c *Controller) SubmitAdd(rawTitle, rawDesc string) error {
	title, err := task.ValidateTitle(rawTitle)
	if err != nil {
		return err
	}

	t, err := c.store.Add(title, rawDesc)
	c.render()
	if c.reportSave(err) {
		return nil
	}
	c.logger.Info("task added", "id", t.ID)
	c.feedback.Show(c.msgs.TaskAdded, KindSuccess)
	return nil
}

// OpenEdit opens the edit dialog and returns the task's current values as the
// initial form contents. It returns false and changes nothing if the task is
// missing or another dialog is open.
func (c *Controller) OpenEdit(id string) (task.Task, bool) {
	t, exists := c.store.Get(id)
	if !c.modal.OpenEdit(id, exists) {
		return task.Task{}, false
	}
	return t, true
}

// SubmitEdit validates and applies an edit, then closes the edit dialog.
// A validation error keeps the dialog open.
func (c *Controller) SubmitEdit(id, rawTitle, rawDesc string) error {
	title, err := task.ValidateTitle(rawTitle)
	if err != nil {
		return err
	}

	_, err = c.store.Update(id, title, rawDesc)
	if _, missing := task.IsNotFound(err); missing {
		c.logger.Warn("edit target vanished", "id", id)
		c.closeEdit(id)
		c.render()
		return nil
	}

	c.closeEdit(id)
	c.render()
	if c.reportSave(err) {
		return nil
	}
	c.logger.Info("task updated", "id", id)
	c.feedback.Show(c.msgs.TaskUpdated, KindSuccess)
	return nil
}

// Toggle flips a task's completed flag.
func (c *Controller) Toggle(id string) {
	t, err := c.store.ToggleCompleted(id)
	c.render()
	if _, missing := task.IsNotFound(err); missing {
		c.logger.Warn("toggle target vanished", "id", id)
		return
	}
	if c.reportSave(err) {
		return
	}
	c.logger.Debug("task toggled", "id", id, "completed", t.Completed)
}

// RequestDelete opens the confirmation dialog for id and records it as the
// pending deletion. The store is not touched.
func (c *Controller) RequestDelete(id string) bool {
	_, exists := c.store.Get(id)
	if !c.modal.OpenConfirm(id, exists) {
		return false
	}
	c.pending = id
	return true
}

// ConfirmDelete removes the pending task. Without a pending id it does nothing.
func (c *Controller) ConfirmDelete() {
	if c.pending == "" {
		return
	}
	id := c.pending

	err := c.store.Remove(id)
	c.modal.Close()
	c.pending = ""
	c.render()

	if _, missing := task.IsNotFound(err); missing {
		c.logger.Warn("delete target vanished", "id", id)
		return
	}
	if c.reportSave(err) {
		return
	}
	c.logger.Info("task deleted", "id", id)
	c.feedback.Show(c.msgs.TaskDeleted, KindSuccess)
}

// CancelDelete closes the confirmation dialog and forgets the pending id.
func (c *Controller) CancelDelete() {
	if c.modal.State() == ModalConfirm {
		c.modal.Close()
	}
	c.pending = ""
}

// Dismiss closes any open dialog, as a click outside the dialog does.
func (c *Controller) Dismiss() {
	c.modal.Close()
	c.pending = ""
}

// Reload re-reads the store after an external change. A dialog whose task
// disappeared is closed. Nothing happens while the store has unsaved changes.
func (c *Controller) Reload() error {
	if c.store.Unsaved() {
		c.logger.Info("ignoring external change, unsaved tasks in memory")
		return nil
	}
	err := c.store.Reload()
	if id := c.modal.TaskID(); id != "" {
		if _, ok := c.store.Get(id); !ok {
			c.logger.Info("closing dialog for vanished task", "id", id, "dialog", c.modal.State())
			c.Dismiss()
		}
	}
	c.render()
	return err
}

func (c *Controller) closeEdit(id string) {
	if c.modal.State() == ModalEdit && c.modal.TaskID() == id {
		c.modal.Close()
	}
}

// reportSave shows an error notice for a failed save and reports whether it did.
func (c *Controller) reportSave(err error) bool {
	if err == nil {
		return false
	}
	c.logger.Error("save failed", "err", err)
	c.feedback.Show(c.msgs.SaveFailed, KindError)
	return true
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Render(c.store.List())
	}
}
