package core

import (
	"errors"
)

var (
	ErrNilScene      = errors.New("scene factory returned a nil scene")
	ErrWatcherClosed = errors.New("asset watcher already closed")
	ErrContextLost   = errors.New("graphics context lost")
)
