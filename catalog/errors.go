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


package catalog

import (
	"errors"
	"fmt"

	"github.com/poiesic/lexicon/core"
)

var (
	// ErrBackendConstruction indicates a handle could not be constructed.
	ErrBackendConstruction = errors.New("backend construction failed")

	// ErrOperation indicates a lifecycle operation failed on a handle.
	ErrOperation = errors.New("catalog operation failed")

	// ErrInvalidRole indicates a FileRole outside the closed set.
	ErrInvalidRole = errors.New("invalid file role")

	// ErrBackendRequired is returned when no resolved backend is provided.
	ErrBackendRequired = errors.New("resolved backend required")
)

// BackendConstructionError reports the handle whose construction aborted
// catalog construction.
type BackendConstructionError struct {
	Backend  string
	Role     core.FileRole
	Category core.Category
	Err      error
}

func (e *BackendConstructionError) Error() string {
	return fmt.Sprintf("cannot construct %s %s file for %s: %v", e.Backend, e.Role, e.Category, e.Err)
}

func (e *BackendConstructionError) Unwrap() error {
	return e.Err
}

func (e *BackendConstructionError) Is(target error) bool {
	return target == ErrBackendConstruction
}

// OperationError reports the first handle, in category enumeration order,
// that failed a catalog-wide operation.
type OperationError struct {
	Op       string
	Category core.Category
	Role     core.FileRole
	Err      error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("catalog %s failed on %s %s file: %v", e.Op, e.Category, e.Role, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func (e *OperationError) Is(target error) bool {
	return target == ErrOperation
}
