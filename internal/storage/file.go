package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"
)

// errCorrupt marks a data file that exists but is not a JSON object.
var errCorrupt = errors.New("storage file is corrupt")

// File keeps every key in one JSON object on disk, values stored as strings:
//
//	{"tasks": "[{\"id\":...}]", "theme": "dark"}
//
// Each operation re-reads the file so that writes from other processes are
// seen. Writes replace the file atomically under an exclusive lock; the last
// writer wins. A write over a corrupt file moves it aside and starts from an
// empty object, so the next successful write repairs the store.
type File struct {
	path   string
	lock   *flock.Flock
	logger *log.Logger
	now    func() time.Time
}

// OpenFile opens (or prepares to create) the file store at path.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("file storage requires a path")
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}

	// The data file itself is replaced by rename, so the lock lives beside it.
	return &File{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: log.New(io.Discard),
		now:    time.Now,
	}, nil
}

// SetLogger sets the logger used to report recovered corruption.
func (f *File) SetLogger(logger *log.Logger) {
	if logger != nil {
		f.logger = logger
	}
}

// Path returns the location of the data file.
func (f *File) Path() string {
	return f.path
}

// Get implements KV.
func (f *File) Get(key string) ([]byte, error) {
	if err := f.lock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", f.path, err)
	}
	defer func() { _ = f.lock.Unlock() }()

	doc, err := f.read()
	if err != nil {
		return nil, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

// Set implements KV.
func (f *File) Set(key string, value []byte) error {
	return f.update(func(doc map[string]string) {
		doc[key] = string(value)
	})
}

// Delete implements KV.
func (f *File) Delete(key string) error {
	return f.update(func(doc map[string]string) {
		delete(doc, key)
	})
}

// Close implements KV.
func (f *File) Close() error {
	return f.lock.Close()
}

func (f *File) update(mutate func(map[string]string)) error {
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", f.path, err)
	}
	defer func() { _ = f.lock.Unlock() }()

	doc, err := f.read()
	if errors.Is(err, errCorrupt) {
		doc, err = f.quarantine(err)
	}
	if err != nil {
		return err
	}
	mutate(doc)
	return f.write(doc)
}

// read must be called with the lock held.
func (f *File) read() (map[string]string, error) {
	doc := make(map[string]string)

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w: %w", f.path, errCorrupt, err)
	}
	return doc, nil
}

// CorruptPath returns where a corrupt data file found at t is moved.
func (f *File) CorruptPath(t time.Time) string {
	return f.path + ".corrupt-" + t.Format("20060102T150405")
}

// quarantine moves the unreadable data file aside and returns an empty
// document to write in its place. Must be called with the exclusive lock held.
func (f *File) quarantine(cause error) (map[string]string, error) {
	dst := f.CorruptPath(f.now())
	if err := os.Rename(f.path, dst); err != nil {
		return nil, fmt.Errorf("failed to move corrupt %s aside: %w", f.path, err)
	}
	f.logger.Warn("storage file was corrupt, starting over", "path", f.path, "moved_to", dst, "err", cause)
	return make(map[string]string), nil
}

// write must be called with the exclusive lock held.
func (f *File) write(doc map[string]string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}
