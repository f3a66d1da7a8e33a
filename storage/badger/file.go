// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/lexicon/core"
	"github.com/poiesic/lexicon/storage"
)

// File type identifiers of this package's backends.
const (
	Name       = "badger"
	MemoryName = "badger-memory"
)

const dirSuffix = ".db"

// Backend returns the registry entry for the on-disk BadgerDB backend.
// Each handle owns one database directory under the dictionary path.
func Backend() storage.Backend {
	return storage.Backend{
		Name:         Name,
		Capabilities: storage.CapLifecycle | storage.CapRecords | storage.CapConcurrentRead,
		New: func(path string, category core.Category, role core.FileRole) (storage.DictionaryFile, error) {
			return NewFile(path, category, role)
		},
	}
}

// MemoryBackend returns the registry entry for in-memory BadgerDB handles.
// Data does not survive Close.
func MemoryBackend() storage.Backend {
	return storage.Backend{
		Name:         MemoryName,
		Capabilities: storage.CapLifecycle | storage.CapRecords | storage.CapConcurrentRead,
		New: func(_ string, category core.Category, role core.FileRole) (storage.DictionaryFile, error) {
			return NewMemoryFile(category, role), nil
		},
	}
}

// File implements storage.RecordFile on top of a BadgerDB database.
type File struct {
	category core.Category
	role     core.FileRole
	dir      string
	inMemory bool
	logger   *slog.Logger

	mu       sync.RWMutex
	backend  *DB
	editable bool
}

var _ storage.RecordFile = (*File)(nil)

// NewFile creates a closed handle whose database lives in
// <dir>/<WordNet file name>.db.
func NewFile(dir string, category core.Category, role core.FileRole) (*File, error) {
	if dir == "" {
		return nil, errors.New("badger: empty dictionary path")
	}
	return &File{
		category: category,
		role:     role,
		dir:      filepath.Join(dir, core.FileName(category, role)+dirSuffix),
		logger:   slog.Default(),
	}, nil
}

// NewMemoryFile creates a closed handle backed by an in-memory database.
func NewMemoryFile(category core.Category, role core.FileRole) *File {
	return &File{
		category: category,
		role:     role,
		inMemory: true,
		logger:   slog.Default(),
	}
}

// Dir returns the database directory. Empty for in-memory handles.
func (f *File) Dir() string {
	return f.dir
}

// Open opens the database.
func (f *File) Open() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.openLocked("open")
}

func (f *File) openLocked(op string) error {
	if f.backend != nil {
		return nil
	}
	backend, err := OpenDB(f.dir, f.inMemory, f.logger.With("file", core.FileName(f.category, f.role)))
	if err != nil {
		return storage.NewIOError(op, f.category, f.role, err)
	}
	f.backend = backend
	return nil
}

// Close closes the database.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeLocked()
}

func (f *File) closeLocked() error {
	f.editable = false
	if f.backend == nil {
		return nil
	}
	backend := f.backend
	f.backend = nil
	if err := backend.Close(); err != nil {
		return storage.NewIOError("close", f.category, f.role, err)
	}
	return nil
}

// IsOpen implements storage.DictionaryFile.
func (f *File) IsOpen() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.backend != nil && !f.backend.IsClosed()
}

// Delete closes the database and removes its directory.
func (f *File) Delete() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.closeLocked(); err != nil {
		return err
	}
	if f.inMemory {
		return nil
	}
	if err := os.RemoveAll(f.dir); err != nil {
		return storage.NewIOError("delete", f.category, f.role, err)
	}
	return nil
}

// Save flushes pending writes to disk.
func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.backend == nil {
		return storage.NewIOError("save", f.category, f.role, storage.ErrNotOpen)
	}
	if f.inMemory {
		return nil
	}
	return storage.NewIOError("save", f.category, f.role, f.backend.Sync())
}

// Edit opens the database if needed and enables writes.
func (f *File) Edit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.openLocked("edit"); err != nil {
		return err
	}
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
	if f.backend == nil {
		return nil, storage.NewIOError("read", f.category, f.role, storage.ErrNotOpen)
	}

	var value []byte
	err := f.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, storage.NewIOError("read", f.category, f.role, err)
	}
	return value, nil
}

// Put implements storage.RecordFile.
func (f *File) Put(key, value []byte) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if err := f.checkWritable(); err != nil {
		return err
	}
	err := f.backend.WithTx(func(tx *badger.Txn) error {
		return tx.Set(key, value)
	}, true)
	return storage.NewIOError("write", f.category, f.role, err)
}

// Remove implements storage.RecordFile.
func (f *File) Remove(key []byte) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if err := f.checkWritable(); err != nil {
		return err
	}
	err := f.backend.WithTx(func(tx *badger.Txn) error {
		return tx.Delete(key)
	}, true)
	return storage.NewIOError("write", f.category, f.role, err)
}

// Len implements storage.RecordFile.
func (f *File) Len() (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.backend == nil {
		return 0, storage.NewIOError("read", f.category, f.role, storage.ErrNotOpen)
	}

	count := 0
	err := f.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, storage.NewIOError("read", f.category, f.role, err)
	}
	return count, nil
}

func (f *File) checkWritable() error {
	if f.backend == nil {
		return storage.NewIOError("write", f.category, f.role, storage.ErrNotOpen)
	}
	if !f.editable {
		return storage.NewIOError("write", f.category, f.role, storage.ErrReadOnly)
	}
	return nil
}
