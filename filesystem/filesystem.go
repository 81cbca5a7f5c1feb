// Package filesystem wraps every disk access of animedex behind a swappable afero backend.
//
// Production code runs on the OS filesystem; tests switch to an in-memory one
// so that config files, logs and resume snapshots never touch the real disk.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the native filesystem.
func SetOsFs() {
	SetFs(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	SetFs(afero.NewMemMapFs())
}

// SetFs installs an arbitrary afero filesystem, e.g. a read-only overlay.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// GacheFs lets gache caches persist through the active backend.
type GacheFs struct{}

// OpenFile implements gache.FileSystem.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll implements gache.FileSystem.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
