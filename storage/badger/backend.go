package badger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
)

const (
	defaultMemTableSize     = 8 << 20
	defaultValueLogFileSize = 64 << 20
)

// DB wraps one BadgerDB instance. Each badger-backed dictionary file owns one.
type DB struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenDB opens the BadgerDB database in dir, creating the directory when
// needed. With inMemory set, dir is ignored and nothing touches the disk.
func OpenDB(dir string, inMemory bool, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := badger.DefaultOptions("").WithInMemory(true)
	if !inMemory {
		if err := ensureDir(dir); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(dir)
	}

	opts.Logger = &badgerLoggerAdapter{logger: logger}
	opts.Compression = options.None
	// A dictionary opens one database per category and file role.
	opts.MemTableSize = defaultMemTableSize
	opts.ValueLogFileSize = defaultValueLogFileSize

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &DB{db: db, logger: logger}, nil
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// Close closes the BadgerDB database.
func (b *DB) Close() error {
	return b.db.Close()
}

// IsClosed returns true if the database is closed.
func (b *DB) IsClosed() bool {
	return b.db.IsClosed()
}

// Sync flushes pending writes to disk.
func (b *DB) Sync() error {
	return b.db.Sync()
}

// WithTx executes a function within a BadgerDB transaction.
// If isWrite is true, creates a read-write transaction that is committed
// when fn succeeds. The transaction is discarded if fn returns an error.
func (b *DB) WithTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := b.db.NewTransaction(isWrite)
	defer tx.Discard()
	if err := fn(tx); err != nil {
		return err
	}
	if isWrite {
		return tx.Commit()
	}
	return nil
}
