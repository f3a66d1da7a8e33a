package core

import (
	"encoding/binary"
	"strconv"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for lexical entries.
// It is derived from the entry's identity tuple by content hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DictionaryRef identifies the dictionary an entry belongs to.
// Entries share the dictionary; they never own it. Implementations must be
// comparable (typically a pointer) since entry equality compares references.
type DictionaryRef interface {
	Name() string
}

// SynsetRef references a synset by category and data file offset.
// Synsets themselves are not modeled here.
type SynsetRef struct {
	Category Category
	Offset   int64
}

// Word is a single sense of a lemma within a synset.
// Equality is defined over the identity tuple only.
type Word struct {
	Dictionary DictionaryRef
	Synset     SynsetRef
	Index      int    // 1-based position of the word within its synset
	Lemma      string // citation form
}

// Equal reports whether w and other denote the same word.
func (w *Word) Equal(other *Word) bool {
	if w == nil || other == nil {
		return w == other
	}
	return w.Dictionary == other.Dictionary &&
		w.Synset == other.Synset &&
		w.Index == other.Index &&
		w.Lemma == other.Lemma
}

// Key returns "(category,offset,index,lemma)".
// The dictionary is not part of the key since a key is only meaningful
// inside one dictionary's storage.
func (w *Word) Key() string {
	return "(" + w.Synset.Category.Key() + "," +
		strconv.FormatInt(w.Synset.Offset, 10) + "," +
		strconv.Itoa(w.Index) + "," + w.Lemma + ")"
}

// ID returns the content-based storage ID of the word.
func (w *Word) ID() ID {
	return IDFromContent(w.Key())
}

func (w *Word) String() string {
	return "[Word: " + w.Key() + "]"
}

// AdjectiveEntry is a Word that carries an adjective position.
type AdjectiveEntry struct {
	Word
	position *AdjectivePosition
}

// NewAdjective creates an adjective entry.
// A nil position defaults to PositionNone.
func NewAdjective(word Word, position *AdjectivePosition) *AdjectiveEntry {
	if position == nil {
		position = PositionNone
	}
	return &AdjectiveEntry{Word: word, position: position}
}

// Position returns the canonical adjective position. Never nil.
func (a *AdjectiveEntry) Position() *AdjectivePosition {
	if a.position == nil {
		return PositionNone
	}
	return a.position
}

// Equal reports whether a and other denote the same word.
// The attached position does not take part in equality.
func (a *AdjectiveEntry) Equal(other *AdjectiveEntry) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Word.Equal(&other.Word)
}
