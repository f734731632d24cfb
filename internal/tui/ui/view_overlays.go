package ui

import (
	"strings"

	"github.com/hy4ri/tasklist/internal/tui/state"
	"github.com/hy4ri/tasklist/internal/tui/styles"
)

// renderFormFields renders the title and description inputs with the inline
// title error.
func (r *Renderer) renderFormFields(f *state.TaskForm) string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(r.Msgs.TitleLabel) + "\n")
	b.WriteString(f.Title.View() + "\n")
	if f.TitleErr != "" {
		b.WriteString(styles.InputError.Render(f.TitleErr) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render(r.Msgs.DescriptionLabel) + "\n")
	b.WriteString(f.Description.View())

	return b.String()
}

// renderAddForm renders the add form shown above the list.
func (r *Renderer) renderAddForm() string {
	if r.Form == nil {
		return ""
	}
	content := styles.DialogTitle.Render(r.Msgs.AddHeading) + "\n\n" + r.renderFormFields(r.Form)
	return styles.Dialog.Width(dialogWidth(r.Width)).Render(content)
}

// renderEditDialog renders the edit dialog.
func (r *Renderer) renderEditDialog() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(r.Msgs.EditHeading) + "\n\n")
	b.WriteString(r.renderFormFields(r.Form) + "\n\n")
	b.WriteString(r.renderFormHints())
	return styles.Dialog.Width(dialogWidth(r.Width)).Render(b.String())
}

// renderConfirmDialog renders the delete confirmation.
func (r *Renderer) renderConfirmDialog() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(r.Msgs.ConfirmHeading) + "\n\n")
	b.WriteString(r.Msgs.ConfirmPrompt + "\n")

	if id, ok := r.Ctrl.Pending(); ok {
		for _, item := range r.List.Items {
			if item.ID == id {
				b.WriteString(styles.TaskMeta.UnsetPaddingLeft().Render("“"+clip(item.RawTitle, dialogWidth(r.Width)-8)+"”") + "\n")
				break
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.ButtonDanger.Render("y "+r.Msgs.ConfirmYes) + "  " + styles.Button.Render("n "+r.Msgs.ConfirmNo))

	return styles.DialogDanger.Width(dialogWidth(r.Width)).Render(b.String())
}

func dialogWidth(termWidth int) int {
	w := termWidth - 4
	if w > 70 {
		w = 70
	}
	if w < 24 {
		w = 24
	}
	return w
}
