package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/lexicon/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "file", cfg.FileType)
	assert.Empty(t, cfg.DictionaryPath)
	assert.Equal(t, 0, cfg.PoolSize)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, "file", cfg.FileType)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithDictionaryPath("/data/wn"),
			WithFileType("badger"),
			WithPoolSize(4),
		)

		assert.Equal(t, "/data/wn", cfg.DictionaryPath)
		assert.Equal(t, "badger", cfg.FileType)
		assert.Equal(t, 4, cfg.PoolSize)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantKey string
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  NewConfig(WithDictionaryPath("/data/wn")),
		},
		{
			name:    "missing dictionary path",
			cfg:     NewConfig(),
			wantKey: storage.DictionaryPathKey,
			wantErr: true,
		},
		{
			name:    "missing file type",
			cfg:     NewConfig(WithDictionaryPath("/data/wn"), WithFileType("  ")),
			wantKey: storage.FileTypeKey,
			wantErr: true,
		},
		{
			name:    "negative pool size",
			cfg:     NewConfig(WithDictionaryPath("/data/wn"), WithPoolSize(-1)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantKey != "" {
				var cfgErr *storage.ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.wantKey, cfgErr.Key)
			}
		})
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := &Config{DictionaryPath: " /data/wn/ ", FileType: " memory\n"}
	cfg.Normalize()
	assert.Equal(t, "/data/wn", cfg.DictionaryPath)
	assert.Equal(t, "memory", cfg.FileType)
}

func TestBackendParams(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		cfg := NewConfig(WithDictionaryPath("/data/wn"), WithFileType("memory"))
		cfg.Params = map[string]string{"cache": "on", storage.FileTypeKey: "ignored"}

		params := cfg.BackendParams()
		assert.Equal(t, storage.Params{
			storage.DictionaryPathKey: "/data/wn",
			storage.FileTypeKey:       "memory",
			"cache":                   "on",
		}, params)
	})

	t.Run("empty values are omitted", func(t *testing.T) {
		cfg := &Config{DictionaryPath: "/data/wn"}
		params := cfg.BackendParams()
		_, ok := params[storage.FileTypeKey]
		assert.False(t, ok)
	})
}

func TestLoadAndSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "lexicon.yaml")

	cfg := NewConfig(WithDictionaryPath("/data/wn"), WithFileType("badger"), WithPoolSize(2))
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.DictionaryPath, loaded.DictionaryPath)
	assert.Equal(t, cfg.FileType, loaded.FileType)
	assert.Equal(t, cfg.PoolSize, loaded.PoolSize)
}

func TestLoadFromFile_KeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dictionary_path: /data/wn\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/wn", cfg.DictionaryPath)
	assert.Equal(t, "file", cfg.FileType)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pool_size: [1, 2"), 0644))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvDictionaryPath, "/env/wn")
	t.Setenv(EnvFileType, "badger")
	t.Setenv(EnvPoolSize, "3")

	cfg := DefaultConfig()
	require.NoError(t, cfg.FromEnv())
	assert.Equal(t, "/env/wn", cfg.DictionaryPath)
	assert.Equal(t, "badger", cfg.FileType)
	assert.Equal(t, 3, cfg.PoolSize)
}

func TestFromEnv_BadPoolSize(t *testing.T) {
	t.Setenv(EnvPoolSize, "many")
	cfg := DefaultConfig()
	assert.Error(t, cfg.FromEnv())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvFileType+"=memory\n"), 0644))

	t.Setenv(EnvFileType, "")
	os.Unsetenv(EnvFileType)

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "memory", os.Getenv(EnvFileType))

	// Missing files are ignored.
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "none.env")))
}
