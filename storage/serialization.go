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


package storage

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/lexicon/core"
)

// MarshalID serializes an ID to bytes as a fixed 8 byte big endian value,
// so that keys sort by ID.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(id))
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: id needs 8 bytes, got %d", ErrSerializationFailed, len(data))
	}
	return core.ID(binary.BigEndian.Uint64(data)), nil
}

func wordSize(w *core.Word) int {
	return varint.Int.Size(int(w.Synset.Category)) +
		varint.Int64.Size(w.Synset.Offset) +
		varint.Int.Size(w.Index) +
		ord.String.Size(w.Lemma)
}

func marshalWord(w *core.Word, buf []byte) int {
	n := varint.Int.Marshal(int(w.Synset.Category), buf)
	n += varint.Int64.Marshal(w.Synset.Offset, buf[n:])
	n += varint.Int.Marshal(w.Index, buf[n:])
	n += ord.String.Marshal(w.Lemma, buf[n:])
	return n
}

func unmarshalWord(data []byte) (core.Word, int, error) {
	var w core.Word
	cat, n, err := varint.Int.Unmarshal(data)
	if err != nil {
		return w, n, err
	}
	w.Synset.Category = core.Category(cat)
	if err := core.ValidateCategory(w.Synset.Category); err != nil {
		return w, n, err
	}

	offset, m, err := varint.Int64.Unmarshal(data[n:])
	n += m
	if err != nil {
		return w, n, err
	}
	w.Synset.Offset = offset

	index, m, err := varint.Int.Unmarshal(data[n:])
	n += m
	if err != nil {
		return w, n, err
	}
	w.Index = index

	lemma, m, err := ord.String.Unmarshal(data[n:])
	n += m
	if err != nil {
		return w, n, err
	}
	w.Lemma = lemma
	return w, n, nil
}

// MarshalWord serializes the identity tuple of a Word.
// The dictionary reference is not persisted.
func MarshalWord(w *core.Word) []byte {
	buf := make([]byte, wordSize(w))
	marshalWord(w, buf)
	return buf
}

// UnmarshalWord deserializes a Word and attaches it to dict.
func UnmarshalWord(dict core.DictionaryRef, data []byte) (*core.Word, error) {
	w, _, err := unmarshalWord(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	w.Dictionary = dict
	return &w, nil
}

// MarshalAdjective serializes an adjective entry. Only the position's code
// is written.
func MarshalAdjective(adj *core.AdjectiveEntry) []byte {
	code := adj.Position().Code()
	buf := make([]byte, wordSize(&adj.Word)+ord.String.Size(code))
	n := marshalWord(&adj.Word, buf)
	ord.String.Marshal(code, buf[n:])
	return buf
}

// UnmarshalAdjective deserializes an adjective entry, attaches it to dict
// and resolves the persisted position code to its canonical instance.
// A non-adjective word or trailing bytes fail with ErrSerializationFailed;
// an unrecognized code is reported as ErrUnknownAttributeCode.
func UnmarshalAdjective(dict core.DictionaryRef, data []byte) (*core.AdjectiveEntry, error) {
	w, n, err := unmarshalWord(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if w.Synset.Category != core.Adjective {
		return nil, fmt.Errorf("%w: adjective entry has category %s", ErrSerializationFailed, w.Synset.Category)
	}
	code, m, err := ord.String.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if n+m != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, len(data)-n-m)
	}
	pos, ok := core.AdjectivePositionForCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: adjective position %q", ErrUnknownAttributeCode, code)
	}
	w.Dictionary = dict
	return core.NewAdjective(w, pos), nil
}

// MarshalRecords serializes a record set. Keys are written in sorted order
// so equal sets produce equal bytes.
func MarshalRecords(records map[string][]byte) []byte {
	keys := make([]string, 0, len(records))
	size := varint.Int.Size(len(records))
	for k, v := range records {
		keys = append(keys, k)
		size += ord.String.Size(k) + ord.String.Size(string(v))
	}
	sort.Strings(keys)

	buf := make([]byte, size)
	n := varint.Int.Marshal(len(records), buf)
	for _, k := range keys {
		n += ord.String.Marshal(k, buf[n:])
		n += ord.String.Marshal(string(records[k]), buf[n:])
	}
	return buf
}

// UnmarshalRecords deserializes a record set written by MarshalRecords.
func UnmarshalRecords(data []byte) (map[string][]byte, error) {
	count, n, err := varint.Int.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative record count %d", ErrSerializationFailed, count)
	}
	records := make(map[string][]byte, min(count, len(data)))
	for i := 0; i < count; i++ {
		k, m, err := ord.String.Unmarshal(data[n:])
		n += m
		if err != nil {
			return nil, fmt.Errorf("%w: record %d key: %w", ErrSerializationFailed, i, err)
		}
		v, m, err := ord.String.Unmarshal(data[n:])
		n += m
		if err != nil {
			return nil, fmt.Errorf("%w: record %d value: %w", ErrSerializationFailed, i, err)
		}
		records[k] = []byte(v)
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrSerializationFailed, len(data)-n)
	}
	return records, nil
}
