package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// registry caches parsed configuration structs by type so each type is
// read from the environment exactly once per process.
type registry struct {
	mu     sync.RWMutex
	loaded map[string]any
	onces  map[string]*sync.Once
}

var (
	global = &registry{
		loaded: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	dotenvOnce sync.Once
)

// Load populates v from the environment based on its `env` field tags.
// The first call for a given type parses the environment; later calls
// for the same type return the cached copy, so scattered components can
// each load their own slice of configuration without re-reading or
// disagreeing about the environment.
//
// A .env file in the working directory is loaded once per process
// before the first parse. Missing files are fine; real deployments set
// the environment directly.
//
//	type DB struct {
//		URL string `env:"DATABASE_URL,required"`
//	}
//
//	var cfg DB
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilTarget
	}

	key := typeKey[T]()

	global.mu.RLock()
	cached, ok := global.loaded[key]
	global.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	global.mu.Lock()
	once, ok := global.onces[key]
	if !ok {
		once = new(sync.Once)
		global.onces[key] = once
	}
	global.mu.Unlock()

	var parseErr error
	once.Do(func() {
		if err := env.Parse(v); err != nil {
			parseErr = errors.Join(ErrParse, err)
			return
		}
		global.mu.Lock()
		global.loaded[key] = *v
		global.mu.Unlock()
	})
	if parseErr != nil {
		return parseErr
	}

	global.mu.RLock()
	cached, ok = global.loaded[key]
	global.mu.RUnlock()
	if !ok {
		// The goroutine that won the once failed to parse; surface that
		// instead of handing out a zero value.
		return ErrNotLoaded
	}
	*v = cached.(T)
	return nil
}

// MustLoad works like Load but panics on failure. Use it for
// configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load %s: %v", typeKey[T](), err))
	}
}

func typeKey[T any]() string {
	return reflect.TypeFor[T]().String()
}
