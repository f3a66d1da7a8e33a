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


// Package storage provides the storage abstraction layer for lexicon.
//
// Each grammatical category's data lives in three files (index, data and
// exceptions). A DictionaryFile is a handle bound to one of those
// (Category, FileRole) pairs. Which implementation backs the handles is
// chosen by configuration, not at compile time.
//
// # Backends
//
// Backends are registered by name in a Registry at startup:
//
//	reg := storage.NewRegistry()
//	reg.MustRegister(memory.Backend())
//	reg.MustRegister(badger.Backend())
//
// Registration checks that a backend declares the lifecycle capability and
// has a factory. Resolve then maps a configuration bundle to a backend:
//
//	resolved, err := reg.Resolve(storage.Params{
//	    storage.DictionaryPathKey: "/data/wn",
//	    storage.FileTypeKey:       "badger",
//	}, storage.CapRecords)
//
// A missing key yields *ConfigurationError. An unknown file type, or one
// whose capabilities do not cover the requested set, yields
// *TypeResolutionError.
//
// # Entries
//
// Lexical entries are written with mus-go. Attribute values are persisted
// only as their code and are resolved back to the canonical instance on
// read, so decoded entries share attribute identity with the rest of the
// process.
//
// # Thread Safety
//
// Handles are not safe for concurrent lifecycle calls. Backends that
// support concurrent reads through an open handle declare
// CapConcurrentRead.
package storage
