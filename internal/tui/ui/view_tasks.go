package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/hy4ri/tasklist/internal/tui/state"
	"github.com/hy4ri/tasklist/internal/tui/styles"
	"github.com/hy4ri/tasklist/internal/view"
)

// renderTaskList fills the viewport with the task list, keeps the cursor row
// visible, and returns the viewport output.
func (r *Renderer) renderTaskList(topY, height int) string {
	width := r.Width

	if r.List.Empty {
		r.ItemLines = nil
		content := styles.TaskMuted.Render(r.List.Placeholder)
		return lipgloss.NewStyle().Height(height).Render(content)
	}

	var b strings.Builder
	lines := make([]int, 0, len(r.List.Items))
	line := 0
	for i, item := range r.List.Items {
		block := r.renderTaskItem(item, i == r.Cursor, width)
		lines = append(lines, line)
		line += lipgloss.Height(block)
		b.WriteString(block)
		if i < len(r.List.Items)-1 {
			b.WriteString("\n")
		}
	}
	r.ItemLines = lines

	if !r.ViewportReady {
		return b.String()
	}

	r.TaskViewport.Width = width
	r.TaskViewport.Height = height
	r.TaskViewport.SetContent(b.String())
	r.scrollToCursor(line)
	r.ListRect = state.Rect{X: 0, Y: topY, W: width, H: height}
	return r.TaskViewport.View()
}

// scrollToCursor adjusts the viewport offset so the cursor item is in view.
func (r *Renderer) scrollToCursor(total int) {
	if r.Cursor < 0 || r.Cursor >= len(r.ItemLines) {
		return
	}
	start := r.ItemLines[r.Cursor]
	end := total
	if r.Cursor+1 < len(r.ItemLines) {
		end = r.ItemLines[r.Cursor+1]
	}

	vp := &r.TaskViewport
	switch {
	case start < vp.YOffset:
		vp.SetYOffset(start)
	case end > vp.YOffset+vp.Height:
		vp.SetYOffset(end - vp.Height)
	}
}

// renderTaskItem renders one task as a block of lines.
func (r *Renderer) renderTaskItem(item view.Item, selected bool, width int) string {
	checkbox := styles.CheckboxUnchecked
	if item.Completed {
		checkbox = styles.CheckboxChecked
	}

	inner := width - 8
	title := clip(item.RawTitle, inner)
	if item.Completed {
		title = styles.TaskCompleted.Render(title)
	} else {
		title = styles.TaskContent.Render(title)
	}

	lines := []string{checkbox + " " + title}
	if item.HasDescription {
		for _, l := range clipLines(item.RawDescription, inner) {
			lines = append(lines, styles.TaskListDescription.Render(l))
		}
	}
	lines = append(lines, styles.TaskMeta.Render(r.Msgs.CreatedPrefix+" "+item.CreatedAt))
	if selected {
		lines = append(lines, styles.TaskMeta.Render(renderActions(item.Actions, r.Keymap)))
	}

	block := strings.Join(lines, "\n")
	if selected {
		return styles.TaskSelected.Render(block)
	}
	return styles.TaskItem.Render(block)
}

// renderActions lists the item's affordances with the key that triggers each.
func renderActions(actions []view.Action, km state.KeymapData) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		var k string
		switch a.Kind {
		case view.ActionToggle:
			k = km.ToggleTask.Key
		case view.ActionEdit:
			k = km.EditTask.Key
		case view.ActionDelete:
			k = km.DeleteTask.Key
		}
		parts = append(parts, k+" "+a.Label)
	}
	return strings.Join(parts, " · ")
}

// clip cuts s to width terminal cells, marking the cut with an ellipsis.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// clipLines splits a multi-line description and clips every line to width.
// Line breaks entered by the user are kept.
func clipLines(text string, width int) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = clip(l, width)
	}
	return lines
}
