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
	"errors"
	"fmt"

	"github.com/poiesic/lexicon/core"
)

var (
	// ErrNotFound indicates that the requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrNotOpen indicates an operation on a handle that is not open.
	ErrNotOpen = errors.New("dictionary file is not open")

	// ErrReadOnly indicates a write to a handle that is not in edit mode.
	ErrReadOnly = errors.New("dictionary file is not editable")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrUnknownAttributeCode indicates a persisted attribute code that is
	// not part of its kind's closed set.
	ErrUnknownAttributeCode = errors.New("unknown attribute code")

	// ErrConfiguration indicates a missing required configuration key.
	ErrConfiguration = errors.New("configuration error")

	// ErrTypeResolution indicates a backend identifier that is unknown or
	// lacks a required capability.
	ErrTypeResolution = errors.New("backend type resolution failed")

	// ErrIO indicates a failure inside a handle operation.
	ErrIO = errors.New("dictionary file I/O failed")
)

// ConfigurationError reports a required configuration key that is absent.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration key %q", e.Key)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// TypeResolutionError reports a file type that could not be resolved to
// a usable backend.
type TypeResolutionError struct {
	FileType string
	Reason   string
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve file type %q: %s", e.FileType, e.Reason)
}

func (e *TypeResolutionError) Is(target error) bool {
	return target == ErrTypeResolution
}

// IOError reports a failed handle operation.
type IOError struct {
	Op       string
	Category core.Category
	Role     core.FileRole
	Err      error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s file for %s: %v", e.Op, e.Role, e.Category, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError wraps err for the given operation and handle binding.
// A nil err yields nil.
func NewIOError(op string, category core.Category, role core.FileRole, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Category: category, Role: role, Err: err}
}
