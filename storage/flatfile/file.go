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


// Package flatfile provides a plain file DictionaryFile backend.
//
// Each handle maps to one file named after WordNet conventions
// (index.noun, data.verb, adj.exc, ...) inside the dictionary directory.
// The whole record set is loaded on Open and rewritten on Save.
package flatfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poiesic/lexicon/core"
	"github.com/poiesic/lexicon/storage"
	"github.com/poiesic/lexicon/storage/memory"
)

// Name is the file type identifier of this backend.
const Name = "file"

// Backend returns the registry entry for the plain file backend.
func Backend() storage.Backend {
	return storage.Backend{
		Name:         Name,
		Capabilities: storage.CapLifecycle | storage.CapRecords,
		New: func(path string, category core.Category, role core.FileRole) (storage.DictionaryFile, error) {
			return NewFile(path, category, role)
		},
	}
}

// File is a storage.RecordFile persisted as a single plain file.
type File struct {
	*memory.File
	path string
}

var _ storage.RecordFile = (*File)(nil)

// NewFile creates a closed handle for the file of category and role
// under dir. The directory is not touched until Open or Edit.
func NewFile(dir string, category core.Category, role core.FileRole) (*File, error) {
	if dir == "" {
		return nil, errors.New("flatfile: empty dictionary path")
	}
	return &File{
		File: memory.NewFile(category, role),
		path: filepath.Join(dir, core.FileName(category, role)),
	}, nil
}

// Path returns the location of the backing file.
func (f *File) Path() string {
	return f.path
}

// Open loads the backing file. A missing file opens as empty.
func (f *File) Open() error {
	if f.IsOpen() {
		return nil
	}
	if err := f.load(); err != nil {
		return storage.NewIOError("open", f.Category(), f.Role(), err)
	}
	return f.File.Open()
}

// Edit opens the file if needed and enables writes.
func (f *File) Edit() error {
	if !f.IsOpen() {
		if err := f.load(); err != nil {
			return storage.NewIOError("edit", f.Category(), f.Role(), err)
		}
	}
	return f.File.Edit()
}

// Save rewrites the backing file when the handle is editable.
// Saving a read-only handle is a no-op.
func (f *File) Save() error {
	if !f.IsOpen() {
		return storage.NewIOError("save", f.Category(), f.Role(), storage.ErrNotOpen)
	}
	if !f.IsEditable() {
		return nil
	}
	if err := writeAtomic(f.path, storage.MarshalRecords(f.Snapshot())); err != nil {
		return storage.NewIOError("save", f.Category(), f.Role(), err)
	}
	return nil
}

// Delete closes the handle, drops its records and removes the backing file.
func (f *File) Delete() error {
	if err := f.File.Delete(); err != nil {
		return err
	}
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return storage.NewIOError("delete", f.Category(), f.Role(), err)
	}
	return nil
}

func (f *File) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.Load(nil)
			return nil
		}
		return err
	}
	if len(data) == 0 {
		f.Load(nil)
		return nil
	}
	records, err := storage.UnmarshalRecords(data)
	if err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}
	f.Load(records)
	return nil
}

// writeAtomic writes data to a temporary file in the same directory and
// renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
