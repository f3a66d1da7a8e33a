// Package memory provides an in-memory DictionaryFile backend.
// Records live in a map and vanish when the handle is deleted.
package memory

import (
	"sync"

	"github.com/poiesic/lexicon/core"
	"github.com/poiesic/lexicon/storage"
)

// Name is the file type identifier of this backend.
const Name = "memory"

// Backend returns the registry entry for the in-memory backend.
func Backend() storage.Backend {
	return storage.Backend{
		Name:         Name,
		Capabilities: storage.CapLifecycle | storage.CapRecords | storage.CapConcurrentRead,
		New: func(_ string, category core.Category, role core.FileRole) (storage.DictionaryFile, error) {
			return NewFile(category, role), nil
		},
	}
}

// File is a map-backed storage.RecordFile.
type File struct {
	category core.Category
	role     core.FileRole

	mu       sync.RWMutex
	open     bool
	editable bool
	records  map[string][]byte
}

var _ storage.RecordFile = (*File)(nil)

// NewFile creates a closed, empty in-memory file.
func NewFile(category core.Category, role core.FileRole) *File {
	return &File{
		category: category,
		role:     role,
		records:  make(map[string][]byte),
	}
}

// Open implements storage.DictionaryFile.
func (f *File) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
	return nil
}

// Close implements storage.DictionaryFile. Records survive a close.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
	f.editable = false
	return nil
}

// IsOpen implements storage.DictionaryFile.
func (f *File) IsOpen() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.open
}

// Delete drops every record and closes the file.
func (f *File) Delete() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = make(map[string][]byte)
	f.open = false
	f.editable = false
	return nil
}

// Save is a no-op for memory files; writes are visible immediately.
func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.open {
		return storage.NewIOError("save", f.category, f.role, storage.ErrNotOpen)
	}
	return nil
}

// Edit implements storage.DictionaryFile.
func (f *File) Edit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
	f.editable = true
	return nil
}

// Category implements storage.DictionaryFile.
func (f *File) Category() core.Category { return f.category }

// Role implements storage.DictionaryFile.
func (f *File) Role() core.FileRole { return f.role }

// Get implements storage.RecordFile.
func (f *File) Get(key []byte) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.open {
		return nil, storage.NewIOError("read", f.category, f.role, storage.ErrNotOpen)
	}
	v, ok := f.records[string(key)]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put implements storage.RecordFile.
func (f *File) Put(key, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkWritable(); err != nil {
		return err
	}
	v := make([]byte, len(value))
	copy(v, value)
	f.records[string(key)] = v
	return nil
}

// Remove implements storage.RecordFile.
func (f *File) Remove(key []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkWritable(); err != nil {
		return err
	}
	delete(f.records, string(key))
	return nil
}

// Len implements storage.RecordFile.
func (f *File) Len() (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.open {
		return 0, storage.NewIOError("read", f.category, f.role, storage.ErrNotOpen)
	}
	return len(f.records), nil
}

// Snapshot returns a copy of every record. Used by file-based backends
// layered on top of the in-memory store.
func (f *File) Snapshot() map[string][]byte {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string][]byte, len(f.records))
	for k, v := range f.records {
		out[k] = v
	}
	return out
}

// Load replaces the record set with records.
func (f *File) Load(records map[string][]byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if records == nil {
		records = make(map[string][]byte)
	}
	f.records = records
}

// IsEditable reports whether the file is in edit mode.
func (f *File) IsEditable() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.editable
}

func (f *File) checkWritable() error {
	if !f.open {
		return storage.NewIOError("write", f.category, f.role, storage.ErrNotOpen)
	}
	if !f.editable {
		return storage.NewIOError("write", f.category, f.role, storage.ErrReadOnly)
	}
	return nil
}
