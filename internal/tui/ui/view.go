package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasklist/internal/controller"
	"github.com/hy4ri/tasklist/internal/tui/state"
	"github.com/hy4ri/tasklist/internal/tui/styles"
)

// Renderer draws the State.
type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Quitting {
		return ""
	}
	if r.Width == 0 {
		return r.Msgs.Loading
	}

	r.DialogRect = state.Rect{}

	switch r.Ctrl.Modal().State() {
	case controller.ModalConfirm:
		return r.placeDialog(r.renderConfirmDialog())
	case controller.ModalEdit:
		if r.EditFormOpen() {
			return r.placeDialog(r.renderEditDialog())
		}
	}

	if r.ShowHelp {
		return r.renderHelp()
	}
	return r.renderMainView()
}

// renderMainView renders header, add form, task list, feedback line and hints.
func (r *Renderer) renderMainView() string {
	var top strings.Builder
	top.WriteString(r.renderHeader())
	top.WriteString("\n\n")
	if r.AddFormOpen() {
		top.WriteString(r.renderAddForm())
		top.WriteString("\n")
	}
	topStr := top.String()
	topHeight := lipgloss.Height(topStr) - 1

	bottom := r.renderFeedback() + "\n" + r.renderHints()
	bottomHeight := lipgloss.Height(bottom)

	listHeight := r.Height - topHeight - bottomHeight
	if listHeight < 1 {
		listHeight = 1
	}
	list := r.renderTaskList(topHeight, listHeight)

	return topStr + list + "\n" + bottom
}

func (r *Renderer) renderHeader() string {
	left := styles.Title.Render(r.Msgs.AppTitle) + "  " + styles.Subtitle.Render(r.List.Count)
	right := ""
	if r.Theme != nil {
		right = styles.Subtitle.Render("◐ " + r.Msgs.ThemeName(r.Theme.Current()))
	}

	gap := r.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderFeedback() string {
	n := r.Ctrl.Feedback().Current()
	if n.Empty() {
		return ""
	}
	text := clip(n.Text, r.Width-2)
	switch n.Kind {
	case controller.KindError:
		return styles.FeedbackError.Render(text)
	case controller.KindSuccess:
		return styles.FeedbackSuccess.Render(text)
	default:
		return styles.FeedbackInfo.Render(text)
	}
}

func (r *Renderer) renderHints() string {
	if r.AddFormOpen() {
		return r.renderFormHints()
	}
	hints := renderKeys(r.Keymap.ShortHelp())
	if lipgloss.Width(hints) > r.Width {
		hints = renderKeys([]state.Key{r.Keymap.Help, r.Keymap.Quit})
	}
	return hints
}

func renderKeys(keys []state.Key) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, styles.HelpKey.Render(k.Key)+" "+styles.HelpDesc.Render(k.Help))
	}
	return strings.Join(parts, styles.HelpDesc.Render(" • "))
}

func (r *Renderer) renderFormHints() string {
	k := r.Msgs.Keys
	return renderKeys([]state.Key{
		{Key: "enter", Help: k.Save},
		{Key: "tab", Help: k.NextField},
		{Key: r.Keymap.Back.Key, Help: k.Close},
	})
}

// renderHelp renders the full key reference.
func (r *Renderer) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(r.Msgs.AppTitle))
	b.WriteString("\n\n")

	for _, item := range r.Keymap.HelpItems(r.Msgs) {
		switch {
		case item[0] == "" && item[1] == "":
			b.WriteString("\n")
		case item[1] == "":
			b.WriteString(styles.DialogTitle.Render(item[0]) + "\n")
		default:
			b.WriteString("  " + styles.HelpKey.Width(14).Render(item[0]) + styles.HelpDesc.Render(item[1]) + "\n")
		}
	}
	b.WriteString("\n" + styles.HelpDesc.Render(r.Msgs.Help.CloseHint))
	return styles.App.Render(b.String())
}

// placeDialog centers box on screen and records where it landed.
func (r *Renderer) placeDialog(box string) string {
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x, y := (r.Width-w)/2, (r.Height-h)/2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	r.DialogRect = state.Rect{X: x, Y: y, W: w, H: h}
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, box)
}
