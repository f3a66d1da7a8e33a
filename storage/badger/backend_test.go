package badger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	db, err := OpenDB("", true, nil)
	require.NoError(t, err)
	require.NotNil(t, db)
	defer db.Close()

	assert.False(t, db.IsClosed())
}

func TestOpenDB_FileSystem(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data.adj.db")
	db, err := OpenDB(dir, false, nil)
	require.NoError(t, err)
	require.NotNil(t, db)
	defer db.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenDB_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	db, err := OpenDB(path, false, nil)
	if db != nil {
		db.Close()
	}
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestDBClose(t *testing.T) {
	db, err := OpenDB("", true, nil)
	require.NoError(t, err)

	assert.False(t, db.IsClosed())
	require.NoError(t, db.Close())
	assert.True(t, db.IsClosed())
}

func TestWithTx(t *testing.T) {
	db, err := OpenDB("", true, nil)
	require.NoError(t, err)
	defer db.Close()

	t.Run("write commits", func(t *testing.T) {
		err := db.WithTx(func(tx *badger.Txn) error {
			return tx.Set([]byte("k"), []byte("v"))
		}, true)
		require.NoError(t, err)

		err = db.WithTx(func(tx *badger.Txn) error {
			item, err := tx.Get([]byte("k"))
			if err != nil {
				return err
			}
			v, err := item.ValueCopy(nil)
			assert.Equal(t, "v", string(v))
			return err
		}, false)
		require.NoError(t, err)
	})

	t.Run("failed write is discarded", func(t *testing.T) {
		err := db.WithTx(func(tx *badger.Txn) error {
			if err := tx.Set([]byte("discarded"), []byte("v")); err != nil {
				return err
			}
			return assert.AnError
		}, true)
		require.ErrorIs(t, err, assert.AnError)

		err = db.WithTx(func(tx *badger.Txn) error {
			_, err := tx.Get([]byte("discarded"))
			return err
		}, false)
		assert.ErrorIs(t, err, badger.ErrKeyNotFound)
	})
}
