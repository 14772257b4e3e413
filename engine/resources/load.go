package resources

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/leek/engine/containers"
)

// Loader builds a resource from its key. It never caches.
type Loader[K CacheKey, T any] interface {
	LoadResource(key K) (T, error)
}

// LoadCache is a Cache that knows how to load its own misses.
type LoadCache[K CacheKey, T any] interface {
	Loader[K, T]
	Cache[K, T]
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc[K CacheKey, T any] func(key K) (T, error)

func (f LoaderFunc[K, T]) LoadResource(key K) (T, error) {
	return f(key)
}

// LoadError reports a resource that could not be built.
type LoadError struct {
	Key string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load resource '%s': %v", e.Key, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// GetOrLoad returns the cached value for key, loading and inserting it on a
// miss. The value is always read back from the cache so both paths return a
// reference obtained the same way.
//
// GetOrLoad is not safe for concurrent use: two callers missing on the same
// key would both load and the last insert wins.
func GetOrLoad[K CacheKey, T any](lc LoadCache[K, T], key K) (*containers.Shared[T], error) {
	if value, ok := lc.Get(key); ok {
		return value, nil
	}

	loaded, err := lc.LoadResource(key)
	if err != nil {
		return nil, &LoadError{Key: key.Path(), Err: err}
	}
	if prev, ok := lc.Insert(key, loaded); ok {
		prev.Release()
	}

	value, ok := lc.Get(key)
	if !ok {
		panic(fmt.Sprintf("resource '%s' vanished right after insertion", key.Path()))
	}
	return value, nil
}

// PathEndsWith reports whether suffix matches the trailing path components
// of name. "assets/textures/a.png" ends with "textures/a.png" but not with "s/a.png".
func PathEndsWith(name, suffix string) bool {
	name = filepath.ToSlash(filepath.Clean(name))
	suffix = filepath.ToSlash(filepath.Clean(suffix))
	suffix = strings.TrimPrefix(suffix, "./")
	if suffix == "" || suffix == "." {
		return false
	}
	if name == suffix {
		return true
	}
	return strings.HasSuffix(name, "/"+suffix)
}
