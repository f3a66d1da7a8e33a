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


package lexicon

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lexicon/catalog"
	"github.com/poiesic/lexicon/config"
	"github.com/poiesic/lexicon/core"
	"github.com/poiesic/lexicon/storage"
	"github.com/poiesic/lexicon/storage/backends"
)

// ErrRecordsUnsupported is returned by entry operations when the
// configured backend has no record access.
var ErrRecordsUnsupported = errors.New("backend does not support record access")

// Dictionary is a session over one lexical database. It owns one catalog
// per file role (index, data, exceptions), all built from the same backend.
//
// Lifecycle methods must be serialized by the caller.
type Dictionary struct {
	name     string
	catalogs []*catalog.Catalog // indexed by core.FileRole
	pool     *ants.Pool
	logger   *slog.Logger
}

var _ core.DictionaryRef = (*Dictionary)(nil)

// DictionaryOption configures a Dictionary.
type DictionaryOption func(*dictionaryOptions)

type dictionaryOptions struct {
	registry *storage.Registry
	required storage.Capability
	logger   *slog.Logger
	name     string
}

// WithRegistry resolves backends from reg instead of backends.Default().
func WithRegistry(reg *storage.Registry) DictionaryOption {
	return func(o *dictionaryOptions) {
		o.registry = reg
	}
}

// WithRequiredCapabilities sets the capabilities the backend must provide.
// Default is storage.CapRecords.
func WithRequiredCapabilities(required storage.Capability) DictionaryOption {
	return func(o *dictionaryOptions) {
		o.required = required
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) DictionaryOption {
	return func(o *dictionaryOptions) {
		o.logger = logger
	}
}

// WithName sets the dictionary name. Default is the base name of the
// dictionary path.
func WithName(name string) DictionaryOption {
	return func(o *dictionaryOptions) {
		o.name = name
	}
}

// NewDictionary validates cfg, resolves the backend once and builds the
// index, data and exceptions catalogs. The catalogs are returned closed.
func NewDictionary(cfg *config.Config, opts ...DictionaryOption) (*Dictionary, error) {
	options := &dictionaryOptions{
		required: storage.CapRecords,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.registry == nil {
		options.registry = backends.Default()
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolved, err := options.registry.Resolve(cfg.BackendParams(), options.required)
	if err != nil {
		return nil, err
	}

	d := &Dictionary{
		name:   options.name,
		logger: options.logger,
	}
	if d.name == "" {
		d.name = filepath.Base(cfg.DictionaryPath)
	}

	catalogOpts := []catalog.Option{catalog.WithLogger(options.logger), catalog.WithDictionary(d)}
	if cfg.PoolSize > 0 {
		pool, err := ants.NewPool(cfg.PoolSize)
		if err != nil {
			return nil, err
		}
		d.pool = pool
		catalogOpts = append(catalogOpts, catalog.WithPool(pool))
	}

	for _, role := range core.AllFileRoles() {
		c, err := catalog.New(role, resolved, catalogOpts...)
		if err != nil {
			d.Close()
			return nil, err
		}
		d.catalogs = append(d.catalogs, c)
	}

	d.logger.Info("dictionary ready", "name", d.name, "backend", resolved.Backend.Name, "path", resolved.Path)
	return d, nil
}

// Name implements core.DictionaryRef.
func (d *Dictionary) Name() string {
	return d.name
}

// Catalog returns the catalog for role, or nil for an invalid role.
func (d *Dictionary) Catalog(role core.FileRole) *catalog.Catalog {
	if !role.Valid() || int(role) >= len(d.catalogs) {
		return nil
	}
	return d.catalogs[role]
}

// IsOpen reports whether every catalog is open.
func (d *Dictionary) IsOpen() bool {
	if len(d.catalogs) == 0 {
		return false
	}
	for _, c := range d.catalogs {
		if !c.IsOpen() {
			return false
		}
	}
	return true
}

// Open opens every catalog, stopping at the first failure.
func (d *Dictionary) Open() error {
	for _, c := range d.catalogs {
		if err := c.Open(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every catalog and releases the worker pool.
// It is best effort; failures are logged by the catalogs.
func (d *Dictionary) Close() {
	for _, c := range d.catalogs {
		c.Close()
	}
	if d.pool != nil {
		d.pool.Release()
		d.pool = nil
	}
}

// Edit puts every catalog into edit mode.
func (d *Dictionary) Edit() error {
	return d.fanOut((*catalog.Catalog).Edit)
}

// Save saves every catalog.
func (d *Dictionary) Save() error {
	return d.fanOut((*catalog.Catalog).Save)
}

// Delete deletes every catalog's files.
func (d *Dictionary) Delete() error {
	return d.fanOut((*catalog.Catalog).Delete)
}

// fanOut runs fn on every catalog and returns the first failure in file
// role order after all catalogs have been attempted.
func (d *Dictionary) fanOut(fn func(*catalog.Catalog) error) error {
	var first error
	for _, c := range d.catalogs {
		if err := fn(c); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (d *Dictionary) adjectiveRecords() (storage.RecordFile, error) {
	c := d.Catalog(core.DataFile)
	if c == nil {
		return nil, fmt.Errorf("dictionary %q has no data catalog", d.name)
	}
	rf, ok := c.Records(core.Adjective)
	if !ok {
		return nil, ErrRecordsUnsupported
	}
	return rf, nil
}

// PutAdjective stores an adjective entry in the adjective data file.
// The data catalog must be in edit mode.
func (d *Dictionary) PutAdjective(adj *core.AdjectiveEntry) error {
	rf, err := d.adjectiveRecords()
	if err != nil {
		return err
	}
	return storage.PutAdjective(rf, adj)
}

// GetAdjective loads an adjective entry by ID and attaches it to d.
func (d *Dictionary) GetAdjective(id core.ID) (*core.AdjectiveEntry, error) {
	rf, err := d.adjectiveRecords()
	if err != nil {
		return nil, err
	}
	return storage.GetAdjective(rf, d, id)
}
