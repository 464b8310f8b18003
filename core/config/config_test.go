package config_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrauElster/goutil/core/config"
)

type serverConfig struct {
	Host string `env:"TEST_SERVER_HOST" envDefault:"localhost"`
	Port int    `env:"TEST_SERVER_PORT" envDefault:"8080"`
}

type workerConfig struct {
	Concurrency int `env:"TEST_WORKER_CONCURRENCY" envDefault:"4"`
}

func TestLoad(t *testing.T) {
	// Environment-dependent, so no t.Parallel.

	t.Run("reads environment with defaults", func(t *testing.T) {
		t.Setenv("TEST_SERVER_HOST", "example.com")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "example.com", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("caches per type", func(t *testing.T) {
		// The serverConfig type was cached by the previous subtest; a
		// changed environment must not be observed anymore.
		t.Setenv("TEST_SERVER_HOST", "other.example.com")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "example.com", cfg.Host)
	})

	t.Run("types cache independently", func(t *testing.T) {
		t.Setenv("TEST_WORKER_CONCURRENCY", "16")

		var cfg workerConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 16, cfg.Concurrency)
	})
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	type brokenConfig struct {
		Count int `env:"TEST_BROKEN_COUNT"`
	}
	t.Setenv("TEST_BROKEN_COUNT", "not-a-number")

	assert.Panics(t, func() {
		var cfg brokenConfig
		config.MustLoad(&cfg)
	})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("validates and stores keys", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `{"port": 9000, "name": "gateway", "extra": true}`)
		file, err := config.LoadFile(path, []config.Key{
			{Name: "port", Required: true},
			{Name: "name"},
			{Name: "absent-optional"},
		})
		require.NoError(t, err)

		assert.Equal(t, 9000.0, config.Value(file, "port", 0.0))
		assert.Equal(t, "gateway", config.Value(file, "name", ""))

		// Undescribed keys are ignored entirely.
		_, ok := file.Get("extra")
		assert.False(t, ok)
	})

	t.Run("missing required keys accumulate", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `{}`)
		_, err := config.LoadFile(path, []config.Key{
			{Name: "a", Required: true},
			{Name: "b", Required: true},
		})
		require.ErrorIs(t, err, config.ErrMissingKey)
		assert.Contains(t, err.Error(), `"a"`)
		assert.Contains(t, err.Error(), `"b"`)
	})

	t.Run("decode hook", func(t *testing.T) {
		t.Parallel()

		type endpoint struct {
			Host string `json:"host"`
			Port int    `json:"port"`
		}

		path := writeConfigFile(t, `{"gateway": {"host": "10.0.0.1", "port": 22}}`)
		file, err := config.LoadFile(path, []config.Key{
			{
				Name:     "gateway",
				Required: true,
				Decode: func(raw json.RawMessage) (any, error) {
					var e endpoint
					if err := json.Unmarshal(raw, &e); err != nil {
						return nil, err
					}
					return e, nil
				},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, endpoint{Host: "10.0.0.1", Port: 22}, config.Value(file, "gateway", endpoint{}))
	})

	t.Run("failing required decode", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `{"gateway": "not-an-object"}`)
		_, err := config.LoadFile(path, []config.Key{
			{
				Name:     "gateway",
				Required: true,
				Decode: func(json.RawMessage) (any, error) {
					return nil, errors.New("bad shape")
				},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gateway")
	})

	t.Run("optional decode failure is skipped", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `{"rate": "oops"}`)
		file, err := config.LoadFile(path, []config.Key{
			{
				Name: "rate",
				Decode: func(json.RawMessage) (any, error) {
					return nil, errors.New("bad shape")
				},
			},
		})
		require.NoError(t, err)
		_, ok := file.Get("rate")
		assert.False(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.json"), nil)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("not a JSON object", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `[1, 2, 3]`)
		_, err := config.LoadFile(path, nil)
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
