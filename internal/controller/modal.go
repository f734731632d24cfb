package controller

// ModalState is which dialog, if any, is open.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalEdit
	ModalConfirm
)

// String returns a readable name for logs.
func (s ModalState) String() string {
	switch s {
	case ModalEdit:
		return "edit"
	case ModalConfirm:
		return "confirm"
	default:
		return "closed"
	}
}

// Modal tracks the single open dialog and the task it targets.
// At most one dialog is open at a time.
type Modal struct {
	state  ModalState
	taskID string
}

// State returns the current dialog.
func (m *Modal) State() ModalState {
	return m.state
}

// TaskID returns the task the open dialog targets, or "" when closed.
func (m *Modal) TaskID() string {
	return m.taskID
}

// IsOpen reports whether any dialog is open.
func (m *Modal) IsOpen() bool {
	return m.state != ModalClosed
}

// OpenEdit opens the edit dialog for id. It is a no-op returning false when a
// dialog is already open or the task does not exist.
func (m *Modal) OpenEdit(id string, exists bool) bool {
	return m.open(ModalEdit, id, exists)
}

// OpenConfirm opens the delete confirmation for id, with the same rules as OpenEdit.
func (m *Modal) OpenConfirm(id string, exists bool) bool {
	return m.open(ModalConfirm, id, exists)
}

// Close closes whatever dialog is open.
func (m *Modal) Close() {
	m.state = ModalClosed
	m.taskID = ""
}

func (m *Modal) open(state ModalState, id string, exists bool) bool {
	if m.state != ModalClosed || !exists {
		return false
	}
	m.state = state
	m.taskID = id
	return true
}
