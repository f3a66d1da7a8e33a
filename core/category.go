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


package core

import "fmt"

// Category is the grammatical class of a lexical entry.
// The set is closed and never extended at runtime.
type Category int

const (
	// Noun is the noun category.
	Noun Category = iota
	// Verb is the verb category.
	Verb
	// Adjective is the adjective category.
	Adjective
	// Adverb is the adverb category.
	Adverb

	numCategories = int(Adverb) + 1
)

var allCategories = [numCategories]Category{Noun, Verb, Adjective, Adverb}

type categoryInfo struct {
	key   string
	label string
	stem  string
}

var categoryInfos = [numCategories]categoryInfo{
	Noun:      {key: "n", label: "noun", stem: "noun"},
	Verb:      {key: "v", label: "verb", stem: "verb"},
	Adjective: {key: "a", label: "adjective", stem: "adj"},
	Adverb:    {key: "r", label: "adverb", stem: "adv"},
}

// AllCategories returns every category in enumeration order.
// The order is stable and drives the order of catalog fan-out.
func AllCategories() []Category {
	out := make([]Category, numCategories)
	copy(out, allCategories[:])
	return out
}

// NumCategories returns the cardinality of the category set.
func NumCategories() int {
	return numCategories
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < numCategories
}

// Key returns the single letter key used in WordNet data files.
func (c Category) Key() string {
	if !c.Valid() {
		return ""
	}
	return categoryInfos[c].key
}

// String returns the category label.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryInfos[c].label
}

// CategoryForKey returns the category for a WordNet key ("n", "v", "a", "r").
func CategoryForKey(key string) (Category, bool) {
	for _, c := range allCategories {
		if categoryInfos[c].key == key {
			return c, true
		}
	}
	// Satellite adjectives share the adjective files.
	if key == "s" {
		return Adjective, true
	}
	return 0, false
}

// FileRole is the role a storage handle plays for a category.
type FileRole int

const (
	// IndexFile holds the lemma index.
	IndexFile FileRole = iota
	// DataFile holds synset data.
	DataFile
	// ExceptionsFile holds morphological exceptions.
	ExceptionsFile

	numFileRoles = int(ExceptionsFile) + 1
)

var fileRoleLabels = [numFileRoles]string{
	IndexFile:      "index",
	DataFile:       "data",
	ExceptionsFile: "exceptions",
}

// AllFileRoles returns every file role in enumeration order.
func AllFileRoles() []FileRole {
	return []FileRole{IndexFile, DataFile, ExceptionsFile}
}

// Valid reports whether r is a member of the file role set.
func (r FileRole) Valid() bool {
	return r >= 0 && int(r) < numFileRoles
}

func (r FileRole) String() string {
	if !r.Valid() {
		return fmt.Sprintf("FileRole(%d)", int(r))
	}
	return fileRoleLabels[r]
}

// FileName returns the WordNet file name for a category and role,
// e.g. "index.noun", "data.verb" or "adj.exc".
func FileName(c Category, r FileRole) string {
	stem := categoryInfos[c].stem
	switch r {
	case IndexFile:
		return "index." + stem
	case DataFile:
		return "data." + stem
	default:
		return stem + ".exc"
	}
}
