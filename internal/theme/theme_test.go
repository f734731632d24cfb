package theme

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasklist/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detect(dark bool) func() bool {
	return func() bool { return dark }
}

func TestResolution(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		override string
		dark     bool
		want     string
	}{
		{"detected light", "", "", false, Light},
		{"detected dark", "", "", true, Dark},
		{"override beats detection", "", Light, true, Light},
		{"stored beats override", Dark, Light, false, Dark},
		{"invalid stored ignored", "sepia", "", true, Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemory()
			if tt.stored != "" {
				require.NoError(t, kv.Set(Key, []byte(tt.stored)))
			}
			m, err := New(kv, tt.override, detect(tt.dark))
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Current())
		})
	}
}

func TestToggleIsAbsentUntilUsed(t *testing.T) {
	kv := storage.NewMemory()
	m, err := New(kv, "", detect(false))
	require.NoError(t, err)

	_, err = kv.Get(Key)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	got, err := m.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
	assert.True(t, lipgloss.HasDarkBackground())

	v, err := kv.Get(Key)
	require.NoError(t, err)
	assert.Equal(t, Dark, string(v))

	got, _ = m.Toggle()
	assert.Equal(t, Light, got)
	assert.False(t, lipgloss.HasDarkBackground())
}

func TestToggleSaveFailure(t *testing.T) {
	kv := storage.NewMemory()
	m, err := New(kv, Light, nil)
	require.NoError(t, err)

	kv.FailWrites = errors.New("read-only")
	got, err := m.Toggle()
	assert.Error(t, err)
	assert.Equal(t, Dark, got)
	assert.Equal(t, Dark, m.Current())
}
