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

import (
	"fmt"
)

// ValidateWord validates a Word according to domain rules.
//
// Validation rules:
//   - Lemma must not be empty
//   - Index must be 1 or greater
//   - Synset category must be valid
//   - Synset offset must not be negative
//
// NOT validated:
//   - Dictionary (entries may be built before they are attached)
func ValidateWord(word *Word) error {
	if word == nil {
		return fmt.Errorf("%w: word is nil", ErrInvalidWord)
	}

	if word.Lemma == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWord, ErrEmptyLemma)
	}

	if word.Index < 1 {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidWord, ErrInvalidIndex, word.Index)
	}

	if err := ValidateCategory(word.Synset.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWord, err)
	}

	if word.Synset.Offset < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidWord, ErrInvalidOffset)
	}

	return nil
}

// ValidateCategory validates that a Category has a valid value.
func ValidateCategory(c Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w: value %d", ErrInvalidCategory, int(c))
	}
	return nil
}
