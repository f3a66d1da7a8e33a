package storage

import (
	"github.com/poiesic/lexicon/core"
)

// DictionaryFile is a storage handle bound to exactly one
// (Category, FileRole) pair. It is the contract every backend exposes to
// a catalog.
//
// Handles are not safe for concurrent lifecycle calls. Concurrent reads
// through an open handle are safe only when the backend declares
// CapConcurrentRead.
type DictionaryFile interface {
	// Open makes the handle ready for reads. Opening an open handle is a no-op.
	Open() error

	// Close releases resources held by the handle.
	// Closing a closed handle is a no-op.
	Close() error

	// IsOpen reports whether the handle is open.
	IsOpen() bool

	// Delete removes the underlying storage. The handle is closed afterwards.
	Delete() error

	// Save persists pending modifications.
	Save() error

	// Edit switches the handle into read-write mode, opening it if needed.
	Edit() error

	// Category returns the category the handle is bound to.
	Category() core.Category

	// Role returns the file role the handle is bound to.
	Role() core.FileRole
}

// RecordFile is a DictionaryFile offering keyed record access.
// Backends declaring CapRecords produce handles implementing it.
type RecordFile interface {
	DictionaryFile

	// Get returns the record stored under key.
	// Returns ErrNotFound if no record exists.
	Get(key []byte) ([]byte, error)

	// Put stores a record under key. The handle must be in edit mode.
	// Returns ErrReadOnly otherwise.
	Put(key, value []byte) error

	// Remove deletes the record stored under key. The handle must be in
	// edit mode. Removing a missing key is not an error.
	Remove(key []byte) error

	// Len returns the number of stored records.
	Len() (int, error)
}

// Factory constructs a handle for one (Category, FileRole) under path.
// Construction must not open the handle.
type Factory func(path string, category core.Category, role core.FileRole) (DictionaryFile, error)
