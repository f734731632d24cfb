package view

import (
	"testing"

	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectEmpty(t *testing.T) {
	l := Project(nil, i18n.MustLoad("es"))

	assert.True(t, l.Empty)
	assert.Equal(t, "0 tareas", l.Count)
	assert.Equal(t, "No hay tareas pendientes. Empieza por añadir una.", l.Placeholder)
	assert.Empty(t, l.Items)
}

func TestProjectItems(t *testing.T) {
	msgs := i18n.MustLoad("es")
	tasks := []task.Task{
		{ID: "2", Title: "<b>bold</b>", Description: `"quoted" & more`, Completed: true, CreatedAt: "18/10/2026, 09:00:00"},
		{ID: "1", Title: "plain", CreatedAt: "17/10/2026, 08:00:00"},
	}

	l := Project(tasks, msgs)
	require.Len(t, l.Items, 2)
	assert.False(t, l.Empty)
	assert.Equal(t, "2 tareas", l.Count)
	assert.Equal(t, 1, l.Done)

	first := l.Items[0]
	assert.Equal(t, "2", first.ID)
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", first.Title)
	assert.Equal(t, "&#34;quoted&#34; &amp; more", first.Description)
	assert.Equal(t, "<b>bold</b>", first.RawTitle)
	assert.True(t, first.HasDescription)
	assert.True(t, first.Completed)
	assert.Equal(t, msgs.ActionMarkPending, first.Actions[0].Label)

	second := l.Items[1]
	assert.False(t, second.HasDescription)
	assert.Equal(t, msgs.ActionMarkDone, second.Actions[0].Label)

	kinds := []ActionKind{}
	for _, a := range second.Actions {
		assert.Equal(t, "1", a.TaskID)
		kinds = append(kinds, a.Kind)
	}
	assert.Equal(t, []ActionKind{ActionToggle, ActionEdit, ActionDelete}, kinds)
}

func TestProjectIsIdempotent(t *testing.T) {
	msgs := i18n.MustLoad("en")
	tasks := []task.Task{{ID: "1", Title: "a"}}
	assert.Equal(t, Project(tasks, msgs), Project(tasks, msgs))
	assert.Equal(t, "1 task", Project(tasks, msgs).Count)
}
