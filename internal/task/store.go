package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hy4ri/tasklist/internal/storage"
)

// DefaultKey is the storage key holding the serialized collection.
const DefaultKey = "tasks"

// Store owns the ordered task collection and its persisted copy.
// Newest additions come first; edits and toggles keep a task's position.
//
// Every mutation serializes the whole collection. When that write fails the
// in-memory change is kept and the mutation returns a *PersistenceError
// alongside its normal result. Until a later write succeeds the store is
// unsaved and Reload leaves the in-memory collection alone.
//
// Store is not safe for concurrent use.
type Store struct {
	kv         storage.KV
	key        string
	now        func() time.Time
	newID      func() string
	dateLayout string
	logger     *log.Logger

	tasks   []Task
	unsaved bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithDateLayout sets the Go time layout used to format CreatedAt.
func WithDateLayout(layout string) Option {
	return func(s *Store) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open creates a Store over kv and loads the persisted collection.
// The returned Store is always usable: if loading fails it starts empty and
// the error (a *PersistenceError) is returned for reporting.
func Open(kv storage.KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:         kv,
		key:        DefaultKey,
		now:        time.Now,
		newID:      uuid.NewString,
		dateLayout: DefaultDateLayout,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := s.load()
	if err != nil {
		s.logger.Warn("starting with empty task list", "err", err)
		s.tasks = nil
		return s, err
	}
	s.tasks = tasks
	s.logger.Debug("tasks loaded", "count", len(tasks))
	return s, nil
}

// Reload re-reads the persisted collection. On failure the current in-memory
// collection is kept. While changes are unsaved the persisted copy is older
// than memory, so Reload does nothing.
func (s *Store) Reload() error {
	if s.unsaved {
		s.logger.Debug("reload skipped, unsaved changes")
		return nil
	}
	tasks, err := s.load()
	if err != nil {
		s.logger.Warn("reload failed, keeping current tasks", "err", err)
		return err
	}
	s.tasks = tasks
	return nil
}

// Unsaved reports whether the last write failed and memory is ahead of the
// persisted copy.
func (s *Store) Unsaved() bool {
	return s.unsaved
}

// List returns a copy of the collection in display order.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with id.
func (s *Store) Get(id string) (Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// Add validates title, creates a task and puts it at the front.
func (s *Store) Add(title, description string) (Task, error) {
	title, err := ValidateTitle(title)
	if err != nil {
		return Task{}, err
	}

	t := Task{
		ID:          s.newID(),
		Title:       title,
		Description: NormalizeDescription(description),
		CreatedAt:   s.now().Format(s.dateLayout),
	}
	s.tasks = append([]Task{t}, s.tasks...)
	s.logger.Debug("task added", "id", t.ID)

	return t, s.save()
}

// Update replaces title and description of the task with id.
func (s *Store) Update(id, title, description string) (Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, &NotFoundError{ID: id}
	}
	title, err := ValidateTitle(title)
	if err != nil {
		return Task{}, err
	}

	s.tasks[i].Title = title
	s.tasks[i].Description = NormalizeDescription(description)
	s.logger.Debug("task updated", "id", id)

	return s.tasks[i], s.save()
}

// ToggleCompleted flips the completed flag of the task with id.
func (s *Store) ToggleCompleted(id string) (Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, &NotFoundError{ID: id}
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	s.logger.Debug("task toggled", "id", id, "completed", s.tasks[i].Completed)

	return s.tasks[i], s.save()
}

// Remove deletes the task with id. Removing a missing id is a NotFoundError.
func (s *Store) Remove(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}

	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	s.logger.Debug("task removed", "id", id)

	return s.save()
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) load() ([]Task, error) {
	data, err := s.kv.Get(s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	if err := checkDocument(data); err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	seen := make(map[string]bool, len(tasks))
	out := tasks[:0]
	for _, t := range tasks {
		if seen[t.ID] {
			s.logger.Warn("dropping task with duplicate id", "id", t.ID)
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out, nil
}

func (s *Store) save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return &PersistenceError{Op: "save", Err: fmt.Errorf("failed to serialize: %w", err)}
	}
	if err := s.kv.Set(s.key, data); err != nil {
		s.logger.Error("failed to persist tasks", "err", err)
		s.unsaved = true
		return &PersistenceError{Op: "save", Err: err}
	}
	s.unsaved = false
	return nil
}
