package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	// typeCache holds one parsed value per configuration type.
	typeCache sync.Map // reflect.Type -> any
)

// Load parses environment variables into cfg. The first Load of any type
// additionally loads a .env file from the working directory when present.
// Each configuration type is parsed once; later calls return the cached
// value.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is the normal case outside development.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := typeCache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse %s from environment: %w", key, err)
	}

	cached, _ := typeCache.LoadOrStore(key, *cfg)
	*cfg = cached.(T)
	return nil
}

// MustLoad is Load but panics on failure, for use during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
