package badger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/lexicon/core"
	"github.com/poiesic/lexicon/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFile(t *testing.T) {
	f, err := NewFile("/data/wn", core.Noun, core.IndexFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/wn", "index.noun.db"), f.Dir())
	assert.Equal(t, core.Noun, f.Category())
	assert.Equal(t, core.IndexFile, f.Role())
	assert.False(t, f.IsOpen())

	_, err = NewFile("", core.Noun, core.IndexFile)
	assert.Error(t, err)
}

func TestFile_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir, core.Adjective, core.DataFile)
	require.NoError(t, err)

	require.NoError(t, f.Open())
	assert.True(t, f.IsOpen())
	require.NoError(t, f.Open(), "open is idempotent")

	require.NoError(t, f.Close())
	assert.False(t, f.IsOpen())
	require.NoError(t, f.Close(), "close of a closed file is a no-op")

	require.NoError(t, f.Edit())
	assert.True(t, f.IsOpen())
	require.NoError(t, f.Save())

	require.NoError(t, f.Delete())
	assert.False(t, f.IsOpen())
	_, err = os.Stat(f.Dir())
	assert.True(t, os.IsNotExist(err))
}

func TestFile_SaveRequiresOpen(t *testing.T) {
	f := NewMemoryFile(core.Verb, core.DataFile)
	err := f.Save()
	assert.ErrorIs(t, err, storage.ErrNotOpen)
	assert.ErrorIs(t, err, storage.ErrIO)
}

func TestFile_Records(t *testing.T) {
	f := NewMemoryFile(core.Adjective, core.DataFile)
	defer f.Close()

	require.NoError(t, f.Open())
	err := f.Put([]byte("k"), []byte("v"))
	assert.ErrorIs(t, err, storage.ErrReadOnly)

	require.NoError(t, f.Edit())
	require.NoError(t, f.Put([]byte("k1"), []byte("v1")))
	require.NoError(t, f.Put([]byte("k2"), []byte("v2")))

	v, err := f.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, "v1", string(v))

	n, err := f.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, f.Remove([]byte("k1")))
	_, err = f.Get([]byte("k1"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFile_RecordsRequireOpen(t *testing.T) {
	f := NewMemoryFile(core.Adjective, core.DataFile)

	_, err := f.Get([]byte("k"))
	assert.ErrorIs(t, err, storage.ErrNotOpen)
	assert.ErrorIs(t, f.Put([]byte("k"), nil), storage.ErrNotOpen)
	assert.ErrorIs(t, f.Remove([]byte("k")), storage.ErrNotOpen)
	_, err = f.Len()
	assert.ErrorIs(t, err, storage.ErrNotOpen)
}

func TestFile_PersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir, core.Adjective, core.DataFile)
	require.NoError(t, err)

	adj := core.NewAdjective(core.Word{
		Synset: core.SynsetRef{Category: core.Adjective, Offset: 1740},
		Index:  1,
		Lemma:  "elect",
	}, core.PositionImmediatePostnominal)

	require.NoError(t, f.Edit())
	require.NoError(t, storage.PutAdjective(f, adj))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	reopened, err := NewFile(dir, core.Adjective, core.DataFile)
	require.NoError(t, err)
	require.NoError(t, reopened.Open())
	defer reopened.Close()

	got, err := storage.GetAdjective(reopened, nil, adj.ID())
	require.NoError(t, err)
	assert.Same(t, core.PositionImmediatePostnominal, got.Position())
	assert.Equal(t, "elect", got.Lemma)
}

func TestBackends(t *testing.T) {
	for _, b := range []storage.Backend{Backend(), MemoryBackend()} {
		t.Run(b.Name, func(t *testing.T) {
			assert.True(t, b.Capabilities.Has(storage.CapLifecycle|storage.CapRecords|storage.CapConcurrentRead))
			f, err := b.New(t.TempDir(), core.Adverb, core.ExceptionsFile)
			require.NoError(t, err)
			assert.Equal(t, core.Adverb, f.Category())
			assert.Equal(t, core.ExceptionsFile, f.Role())
			_, ok := f.(storage.RecordFile)
			assert.True(t, ok)
		})
	}
}
