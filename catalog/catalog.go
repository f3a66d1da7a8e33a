package catalog

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/lexicon/core"
	"github.com/poiesic/lexicon/storage"
)

// Catalog holds one storage handle per category for a single file role.
// All handles come from the same backend. The category to handle mapping
// is fixed at construction.
//
// Lifecycle methods (Open, Close, Delete, Save, Edit) must not be called
// concurrently on the same Catalog; callers serialize them.
type Catalog struct {
	role       core.FileRole
	backend    string
	dictionary core.DictionaryRef
	files      []storage.DictionaryFile // indexed by core.Category
	pool       *ants.Pool
	logger     *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithDictionary records the dictionary that owns the catalog.
func WithDictionary(dict core.DictionaryRef) Option {
	return func(c *Catalog) error {
		c.dictionary = dict
		return nil
	}
}

// WithPool runs Delete, Save and Edit on the handles concurrently using
// pool. The catalog does not own the pool; the caller releases it.
// Error reporting is unchanged: the first failure in category order wins.
func WithPool(pool *ants.Pool) Option {
	return func(c *Catalog) error {
		c.pool = pool
		return nil
	}
}

// New constructs one handle per category from resolved.
// If any construction fails, handles already built are closed and a
// *BackendConstructionError is returned; no partial catalog escapes.
func New(role core.FileRole, resolved *storage.Resolved, opts ...Option) (*Catalog, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: value %d", ErrInvalidRole, int(role))
	}
	if resolved == nil {
		return nil, ErrBackendRequired
	}

	c := &Catalog{
		role:    role,
		backend: resolved.Backend.Name,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	files := make([]storage.DictionaryFile, core.NumCategories())
	for _, category := range core.AllCategories() {
		f, err := resolved.NewFile(category, role)
		if err != nil {
			for _, built := range files {
				if built == nil {
					continue
				}
				if cerr := built.Close(); cerr != nil {
					c.logger.Error("error closing dictionary file",
						"role", role, "category", built.Category(), "err", cerr)
				}
			}
			return nil, &BackendConstructionError{
				Backend:  resolved.Backend.Name,
				Role:     role,
				Category: category,
				Err:      err,
			}
		}
		files[category] = f
	}
	c.files = files

	c.logger.Debug("catalog constructed", "role", role, "backend", c.backend, "files", len(files))
	return c, nil
}

// NewFromParams resolves params against reg and constructs the catalog.
// Resolution errors (*storage.ConfigurationError,
// *storage.TypeResolutionError) are returned unchanged.
func NewFromParams(role core.FileRole, reg *storage.Registry, params storage.Params, required storage.Capability, opts ...Option) (*Catalog, error) {
	resolved, err := reg.Resolve(params, required)
	if err != nil {
		return nil, err
	}
	return New(role, resolved, opts...)
}

// Role returns the file role shared by every handle.
func (c *Catalog) Role() core.FileRole {
	return c.role
}

// Backend returns the name of the backend that built the handles.
func (c *Catalog) Backend() string {
	return c.backend
}

// Dictionary returns the owning dictionary, or nil for a standalone catalog.
func (c *Catalog) Dictionary() core.DictionaryRef {
	return c.dictionary
}

// Size returns the number of handles held. It equals
// core.NumCategories() for every constructed catalog.
func (c *Catalog) Size() int {
	return len(c.files)
}

// Get returns the handle for category. Every valid category is present;
// nil is returned only for values outside the category set.
func (c *Catalog) Get(category core.Category) storage.DictionaryFile {
	if !category.Valid() || int(category) >= len(c.files) {
		return nil
	}
	return c.files[category]
}

// Records returns the handle for category as a storage.RecordFile.
// The second result is false when the backend has no record access.
func (c *Catalog) Records(category core.Category) (storage.RecordFile, bool) {
	rf, ok := c.Get(category).(storage.RecordFile)
	return rf, ok
}

// Files returns the handles in category enumeration order.
func (c *Catalog) Files() []storage.DictionaryFile {
	out := make([]storage.DictionaryFile, len(c.files))
	copy(out, c.files)
	return out
}

// IsOpen reports whether every handle is open.
// A catalog holding no handles is never open.
func (c *Catalog) IsOpen() bool {
	if len(c.files) == 0 {
		return false
	}
	for _, f := range c.files {
		if !f.IsOpen() {
			return false
		}
	}
	return true
}

// Open opens every handle. It does nothing when all handles are already
// open. The first failure is returned immediately; handles opened earlier
// in the same call stay open and it is up to the caller to Close them.
func (c *Catalog) Open() error {
	if c.IsOpen() {
		return nil
	}
	for _, f := range c.files {
		if err := f.Open(); err != nil {
			return &OperationError{Op: "open", Category: f.Category(), Role: c.role, Err: err}
		}
	}
	c.logger.Debug("catalog opened", "role", c.role, "backend", c.backend)
	return nil
}

// Close closes every handle. Failures are logged and the remaining
// handles are still closed; Close never reports an error.
func (c *Catalog) Close() {
	failed := 0
	for _, f := range c.files {
		if err := f.Close(); err != nil {
			failed++
			c.logger.Error("error closing dictionary file",
				"role", c.role, "category", f.Category(), "err", err)
		}
	}
	if failed > 0 {
		c.logger.Warn("catalog closed with errors", "role", c.role, "failed", failed)
	}
}

// Delete deletes every handle. See fanOut for the error policy.
func (c *Catalog) Delete() error {
	return c.fanOut("delete", storage.DictionaryFile.Delete)
}

// Save saves every handle. See fanOut for the error policy.
func (c *Catalog) Save() error {
	return c.fanOut("save", storage.DictionaryFile.Save)
}

// Edit puts every handle into edit mode. See fanOut for the error policy.
func (c *Catalog) Edit() error {
	return c.fanOut("edit", storage.DictionaryFile.Edit)
}

// fanOut applies fn to every handle, including those after a failure.
// Once all handles have been attempted, the first failure in category
// enumeration order is returned as an *OperationError; later failures are
// logged only.
func (c *Catalog) fanOut(op string, fn func(storage.DictionaryFile) error) error {
	errs := make([]error, len(c.files))

	if c.pool == nil {
		for i, f := range c.files {
			errs[i] = fn(f)
		}
	} else {
		var wg sync.WaitGroup
		for i, f := range c.files {
			wg.Add(1)
			task := func() {
				defer wg.Done()
				errs[i] = fn(f)
			}
			if err := c.pool.Submit(task); err != nil {
				c.logger.Debug("worker pool rejected task, running inline", "op", op, "err", err)
				task()
			}
		}
		wg.Wait()
	}

	var first error
	for i, err := range errs {
		if err == nil {
			continue
		}
		category := c.files[i].Category()
		if first == nil {
			first = &OperationError{Op: op, Category: category, Role: c.role, Err: err}
			continue
		}
		c.logger.Warn("additional catalog failure", "op", op, "role", c.role, "category", category, "err", err)
	}
	return first
}
