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
	"sort"
	"strings"

	"github.com/poiesic/lexicon/core"
)

// Configuration keys consumed by Resolve.
const (
	// DictionaryPathKey names the directory holding the category files.
	DictionaryPathKey = "dictionary_path"

	// FileTypeKey names the backend implementation to instantiate.
	FileTypeKey = "file_type"
)

// Params is a configuration bundle of string values.
type Params map[string]string

// Capability is a set of features a backend's handles provide.
type Capability uint8

const (
	// CapLifecycle is the base DictionaryFile contract. Every backend has it.
	CapLifecycle Capability = 1 << iota
	// CapRecords means handles implement RecordFile.
	CapRecords
	// CapConcurrentRead means reads through an open handle are safe
	// from multiple goroutines.
	CapConcurrentRead
)

// Has reports whether c includes every capability in required.
func (c Capability) Has(required Capability) bool {
	return c&required == required
}

func (c Capability) String() string {
	var names []string
	if c.Has(CapLifecycle) {
		names = append(names, "lifecycle")
	}
	if c.Has(CapRecords) {
		names = append(names, "records")
	}
	if c.Has(CapConcurrentRead) {
		names = append(names, "concurrent-read")
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Backend describes one storage implementation.
type Backend struct {
	Name         string
	Capabilities Capability
	New          Factory
}

// Registry maps backend identifiers to implementations.
// It is populated at startup and read-only afterwards; it is not safe to
// Register concurrently with Resolve.
type Registry struct {
	backends map[string]Backend
}

// NewRegistry creates an empty backend registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds a backend. Conformance is checked here rather than at
// resolution time: the name must be non-empty and unique, the factory
// non-nil and the capability set must include CapLifecycle.
func (r *Registry) Register(b Backend) error {
	if b.Name == "" {
		return errors.New("backend registry: empty backend name")
	}
	if b.New == nil {
		return fmt.Errorf("backend registry: backend %q has no factory", b.Name)
	}
	if !b.Capabilities.Has(CapLifecycle) {
		return fmt.Errorf("backend registry: backend %q does not declare the lifecycle capability", b.Name)
	}
	if _, exists := r.backends[b.Name]; exists {
		return fmt.Errorf("backend registry: backend %q already registered", b.Name)
	}
	r.backends[b.Name] = b
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(b Backend) {
	if err := r.Register(b); err != nil {
		panic(err)
	}
}

// Lookup returns the backend registered under name.
func (r *Registry) Lookup(name string) (Backend, bool) {
	b, ok := r.backends[name]
	return b, ok
}

// Names returns the registered backend names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolved is a validated backend bound to a dictionary path.
type Resolved struct {
	Backend Backend
	Path    string
}

// NewFile constructs the handle for one (Category, FileRole).
// The handle is returned closed.
// A backend declaring CapRecords must build a RecordFile; a handle that
// does not is closed and reported as an error.
func (r *Resolved) NewFile(category core.Category, role core.FileRole) (DictionaryFile, error) {
	f, err := r.Backend.New(r.Path, category, role)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("backend %q returned no file", r.Backend.Name)
	}
	if f.Category() != category || f.Role() != role {
		return nil, fmt.Errorf("backend %q bound file to %s/%s, expected %s/%s",
			r.Backend.Name, f.Category(), f.Role(), category, role)
	}
	if r.Backend.Capabilities.Has(CapRecords) {
		if _, ok := f.(RecordFile); !ok {
			f.Close()
			return nil, fmt.Errorf("backend %q declares %s but built a %s/%s file without record access",
				r.Backend.Name, CapRecords, category, role)
		}
	}
	return f, nil
}

// Resolve validates params and returns the backend named by FileTypeKey.
//
// Errors:
//   - *ConfigurationError if DictionaryPathKey or FileTypeKey is absent
//   - *TypeResolutionError if the file type is unknown or its capabilities
//     do not cover required
func (r *Registry) Resolve(params Params, required Capability) (*Resolved, error) {
	path, ok := params[DictionaryPathKey]
	if !ok {
		return nil, &ConfigurationError{Key: DictionaryPathKey}
	}
	fileType, ok := params[FileTypeKey]
	if !ok {
		return nil, &ConfigurationError{Key: FileTypeKey}
	}

	b, ok := r.backends[fileType]
	if !ok {
		return nil, &TypeResolutionError{
			FileType: fileType,
			Reason:   fmt.Sprintf("unknown backend (known: %s)", strings.Join(r.Names(), ", ")),
		}
	}
	required |= CapLifecycle
	if !b.Capabilities.Has(required) {
		return nil, &TypeResolutionError{
			FileType: fileType,
			Reason:   fmt.Sprintf("backend provides %s, requires %s", b.Capabilities, required),
		}
	}

	return &Resolved{Backend: b, Path: path}, nil
}
