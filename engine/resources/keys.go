package resources

import "fmt"

// CacheKey identifies a cacheable resource. Keys are plain comparable values:
// two equal keys always resolve to the same cached value while it is present.
type CacheKey interface {
	comparable
	// Path is the file the resource is loaded from. Hot reload matches
	// filesystem events against it.
	Path() string
}

// PathKey is a key made of a path. The type parameter names the resource the
// key loads, so the same path can key a texture cache and a sound cache
// independently without the two key types ever being interchangeable.
type PathKey[T any] struct {
	path string
}

func NewPathKey[T any](path string) PathKey[T] {
	return PathKey[T]{path: path}
}

func (k PathKey[T]) Path() string {
	return k.path
}

func (k PathKey[T]) String() string {
	return fmt.Sprintf("PathKey(%s)", k.path)
}
