package assets

import (
	"os"
	"path/filepath"

	"github.com/spaghettifunk/leek/engine/core"
)

// addRecursive starts watching the named directory and all sub-directories.
func (m *Manager) addRecursive(name string) error {
	if m.isClosed {
		return core.ErrWatcherClosed
	}
	return m.watchRecursive(name, false)
}

// removeRecursive stops watching the named directory and all sub-directories.
func (m *Manager) removeRecursive(name string) error {
	if m.isClosed {
		return core.ErrWatcherClosed
	}
	return m.watchRecursive(name, true)
}

// watchRecursive adds all directories under the given one to the watch list.
// Files created in a new folder before its watch is installed are missed.
func (m *Manager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			return nil
		}
		if unWatch {
			return m.fsnotify.Remove(walkPath)
		}
		return m.fsnotify.Add(walkPath)
	})
}

// WatchList returns the directories currently watched.
func (m *Manager) WatchList() []string {
	if m.isClosed {
		return nil
	}
	return m.fsnotify.WatchList()
}

// Unwatch stops watching a directory tree below the asset root.
func (m *Manager) Unwatch(dir string) error {
	return m.removeRecursive(dir)
}
