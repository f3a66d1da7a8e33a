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

import "errors"

// Domain validation errors
var (
	// ErrInvalidWord indicates a Word failed validation.
	ErrInvalidWord = errors.New("invalid word")

	// ErrEmptyLemma indicates the Lemma field is empty.
	ErrEmptyLemma = errors.New("lemma cannot be empty")

	// ErrInvalidIndex indicates a sense index below 1.
	ErrInvalidIndex = errors.New("word index must be positive")

	// ErrInvalidCategory indicates a Category outside the closed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidOffset indicates a negative synset offset.
	ErrInvalidOffset = errors.New("synset offset cannot be negative")
)
