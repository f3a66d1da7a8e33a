package storage

import (
	"errors"
	"testing"

	"github.com/poiesic/lexicon/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFile struct {
	category core.Category
	role     core.FileRole
}

func (s *stubFile) Open() error             { return nil }
func (s *stubFile) Close() error            { return nil }
func (s *stubFile) IsOpen() bool            { return false }
func (s *stubFile) Delete() error           { return nil }
func (s *stubFile) Save() error             { return nil }
func (s *stubFile) Edit() error             { return nil }
func (s *stubFile) Category() core.Category { return s.category }
func (s *stubFile) Role() core.FileRole     { return s.role }

func stubBackend(name string, caps Capability) Backend {
	return Backend{
		Name:         name,
		Capabilities: caps,
		New: func(_ string, c core.Category, r core.FileRole) (DictionaryFile, error) {
			return &stubFile{category: c, role: r}, nil
		},
	}
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(stubBackend("stub", CapLifecycle)))

	t.Run("duplicate name", func(t *testing.T) {
		assert.Error(t, reg.Register(stubBackend("stub", CapLifecycle)))
	})
	t.Run("empty name", func(t *testing.T) {
		assert.Error(t, reg.Register(stubBackend("", CapLifecycle)))
	})
	t.Run("no factory", func(t *testing.T) {
		assert.Error(t, reg.Register(Backend{Name: "nofactory", Capabilities: CapLifecycle}))
	})
	t.Run("no lifecycle capability", func(t *testing.T) {
		assert.Error(t, reg.Register(stubBackend("records-only", CapRecords)))
	})
	t.Run("must register panics", func(t *testing.T) {
		assert.Panics(t, func() { reg.MustRegister(stubBackend("stub", CapLifecycle)) })
	})

	b, ok := reg.Lookup("stub")
	assert.True(t, ok)
	assert.Equal(t, "stub", b.Name)
	assert.Equal(t, []string{"stub"}, reg.Names())
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(stubBackend("plain", CapLifecycle))
	reg.MustRegister(stubBackend("records", CapLifecycle|CapRecords))

	t.Run("valid configuration", func(t *testing.T) {
		resolved, err := reg.Resolve(Params{DictionaryPathKey: "/data/wn", FileTypeKey: "records"}, CapRecords)
		require.NoError(t, err)
		assert.Equal(t, "/data/wn", resolved.Path)
		assert.Equal(t, "records", resolved.Backend.Name)

		f, err := resolved.NewFile(core.Verb, core.ExceptionsFile)
		require.NoError(t, err)
		assert.Equal(t, core.Verb, f.Category())
		assert.Equal(t, core.ExceptionsFile, f.Role())
	})

	t.Run("missing dictionary path", func(t *testing.T) {
		_, err := reg.Resolve(Params{FileTypeKey: "plain"}, 0)
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, DictionaryPathKey, cfgErr.Key)
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("missing file type", func(t *testing.T) {
		_, err := reg.Resolve(Params{DictionaryPathKey: "/data/wn"}, 0)
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, FileTypeKey, cfgErr.Key)
		assert.Contains(t, err.Error(), "file_type")
	})

	t.Run("unknown file type", func(t *testing.T) {
		_, err := reg.Resolve(Params{DictionaryPathKey: "/data/wn", FileTypeKey: "UnknownBackend"}, 0)
		var trErr *TypeResolutionError
		require.ErrorAs(t, err, &trErr)
		assert.Equal(t, "UnknownBackend", trErr.FileType)
		assert.ErrorIs(t, err, ErrTypeResolution)
	})

	t.Run("missing capability", func(t *testing.T) {
		_, err := reg.Resolve(Params{DictionaryPathKey: "/data/wn", FileTypeKey: "plain"}, CapRecords)
		assert.ErrorIs(t, err, ErrTypeResolution)
		assert.Contains(t, err.Error(), "records")
	})
}

func TestResolved_NewFile_Errors(t *testing.T) {
	cause := errors.New("cannot create")

	t.Run("factory error", func(t *testing.T) {
		r := &Resolved{Backend: Backend{Name: "broken", Capabilities: CapLifecycle,
			New: func(string, core.Category, core.FileRole) (DictionaryFile, error) { return nil, cause }}}
		_, err := r.NewFile(core.Noun, core.DataFile)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil file", func(t *testing.T) {
		r := &Resolved{Backend: Backend{Name: "nil", Capabilities: CapLifecycle,
			New: func(string, core.Category, core.FileRole) (DictionaryFile, error) { return nil, nil }}}
		_, err := r.NewFile(core.Noun, core.DataFile)
		assert.Error(t, err)
	})

	t.Run("wrong binding", func(t *testing.T) {
		r := &Resolved{Backend: Backend{Name: "liar", Capabilities: CapLifecycle,
			New: func(string, core.Category, core.FileRole) (DictionaryFile, error) {
				return &stubFile{category: core.Noun, role: core.IndexFile}, nil
			}}}
		_, err := r.NewFile(core.Verb, core.IndexFile)
		assert.Error(t, err)
	})

	t.Run("declared records without record access", func(t *testing.T) {
		reg := NewRegistry()
		reg.MustRegister(stubBackend("liar", CapLifecycle|CapRecords))

		resolved, err := reg.Resolve(Params{DictionaryPathKey: "/data/wn", FileTypeKey: "liar"}, CapRecords)
		require.NoError(t, err)

		f, err := resolved.NewFile(core.Adjective, core.DataFile)
		assert.Nil(t, f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "without record access")
	})
}

func TestCapability(t *testing.T) {
	all := CapLifecycle | CapRecords | CapConcurrentRead
	assert.True(t, all.Has(CapRecords|CapLifecycle))
	assert.False(t, CapLifecycle.Has(CapRecords))
	assert.True(t, CapLifecycle.Has(0))
	assert.Equal(t, "{lifecycle,records,concurrent-read}", all.String())
	assert.Equal(t, "{}", Capability(0).String())
}

func TestIOError(t *testing.T) {
	cause := errors.New("short write")
	err := NewIOError("save", core.Noun, core.DataFile, cause)

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "save data file for noun: short write", err.Error())
	assert.NoError(t, NewIOError("save", core.Noun, core.DataFile, nil))
}
