// Package fsops provides the filesystem operations the rename engine needs.
//
// All filesystem access during planning enumeration and rename application
// goes through the FS interface so the planner and applier are testable
// without touching the real filesystem.
package fsops

import (
	"io/fs"
	"os"
)

// FS abstracts the filesystem operations used by planning and applying.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// ReadDir returns the immediate entries of a directory.
	ReadDir(path string) ([]fs.DirEntry, error)

	// Rename atomically moves source to target.
	Rename(source, target string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks.
func (f *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir returns the immediate entries of a directory.
func (f *RealFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Rename atomically moves source to target.
func (f *RealFS) Rename(source, target string) error {
	return os.Rename(source, target)
}
