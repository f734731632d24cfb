// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colors. The theme package decides which side lipgloss resolves by
// calling lipgloss.SetHasDarkBackground.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

	// Surface is the dialog background
	Surface = lipgloss.AdaptiveColor{Light: "#F8FAFC", Dark: "#1E293B"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for the header title
	// NOTE: No margins - they break viewport scroll sync line counting
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary header text such as the task count
	Subtitle = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Task styles
var (
	// TaskItem is the base style for a task row
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskSelected is the style for the row under the cursor
	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true)

	// TaskCompleted is applied to the title of completed tasks
	TaskCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// TaskContent is for the task title
	TaskContent = lipgloss.NewStyle()

	// TaskListDescription is for descriptions under the title
	TaskListDescription = lipgloss.NewStyle().
				Foreground(Subtle).
				Italic(true).
				PaddingLeft(6)

	// TaskMeta is for the creation time line
	TaskMeta = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true).
			PaddingLeft(6)

	// TaskMuted is for the empty list placeholder
	TaskMuted = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true).
			PaddingLeft(2)
)

// Checkbox markers
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
)

// Feedback styles
var (
	// Feedback is the base style for the status line
	Feedback = lipgloss.NewStyle().
			PaddingLeft(1)

	// FeedbackError is for error notices
	FeedbackError = Feedback.
			Foreground(ErrorColor).
			Bold(true)

	// FeedbackSuccess is for success notices
	FeedbackSuccess = Feedback.
			Foreground(SuccessColor)

	// FeedbackInfo is for informational notices
	FeedbackInfo = Feedback.
			Foreground(InfoColor)
)

// Input styles
var (
	// InputLabel is for input labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true)

	// InputError is the inline field error shown under an invalid input
	InputError = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Background(Surface).
		Padding(1, 2)

	// DialogDanger is for the delete confirmation
	DialogDanger = Dialog.
			BorderForeground(ErrorColor)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// ButtonDanger is the confirm button in the delete dialog
	ButtonDanger = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ErrorColor)

	// Button is a neutral dialog button
	Button = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(Subtle).
		Border(lipgloss.HiddenBorder(), false)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)
