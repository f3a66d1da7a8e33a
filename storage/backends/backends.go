// Package backends assembles the table of storage backends shipped with
// lexicon. The table is built explicitly at startup rather than through
// package init side effects.
package backends

import (
	"github.com/poiesic/lexicon/storage"
	"github.com/poiesic/lexicon/storage/badger"
	"github.com/poiesic/lexicon/storage/flatfile"
	"github.com/poiesic/lexicon/storage/memory"
)

// Default returns a new registry holding every built-in backend:
// "memory", "file", "badger" and "badger-memory".
func Default() *storage.Registry {
	reg := storage.NewRegistry()
	reg.MustRegister(memory.Backend())
	reg.MustRegister(flatfile.Backend())
	reg.MustRegister(badger.Backend())
	reg.MustRegister(badger.MemoryBackend())
	return reg
}
