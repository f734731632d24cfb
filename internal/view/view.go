// Package view projects the task collection into a display structure.
// Projection is a pure function of its inputs; terminal and HTML front ends
// both draw from the same List.
package view

import (
	"html"

	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/task"
)

// ActionKind identifies a per-task affordance.
type ActionKind string

const (
	ActionToggle ActionKind = "toggle"
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
)

// Action is one affordance on a task, keyed by the task id.
type Action struct {
	Kind   ActionKind
	TaskID string
	Label  string
}

// Item is the display form of a single task.
type Item struct {
	ID string

	// Title and Description are HTML-escaped.
	Title          string
	Description    string
	HasDescription bool

	// RawTitle and RawDescription are unescaped, for terminal output.
	RawTitle       string
	RawDescription string

	CreatedAt string
	Completed bool
	Actions   []Action
}

// List is the display form of the whole collection.
type List struct {
	Count       string
	Total       int
	Done        int
	Empty       bool
	Placeholder string
	Items       []Item
}

// Project builds the List for tasks in their given order.
func Project(tasks []task.Task, msgs i18n.Messages) List {
	l := List{
		Count: msgs.Count(len(tasks)),
		Total: len(tasks),
	}
	if len(tasks) == 0 {
		l.Empty = true
		l.Placeholder = msgs.EmptyList
		return l
	}

	l.Items = make([]Item, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			l.Done++
		}
		l.Items = append(l.Items, projectTask(t, msgs))
	}
	return l
}

func projectTask(t task.Task, msgs i18n.Messages) Item {
	toggleLabel := msgs.ActionMarkDone
	if t.Completed {
		toggleLabel = msgs.ActionMarkPending
	}

	return Item{
		ID:             t.ID,
		Title:          html.EscapeString(t.Title),
		Description:    html.EscapeString(t.Description),
		HasDescription: t.Description != "",
		RawTitle:       t.Title,
		RawDescription: t.Description,
		CreatedAt:      t.CreatedAt,
		Completed:      t.Completed,
		Actions: []Action{
			{Kind: ActionToggle, TaskID: t.ID, Label: toggleLabel},
			{Kind: ActionEdit, TaskID: t.ID, Label: msgs.ActionEdit},
			{Kind: ActionDelete, TaskID: t.ID, Label: msgs.ActionDelete},
		},
	}
}
