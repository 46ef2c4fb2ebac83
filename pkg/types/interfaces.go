package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for modsync operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (io.ReadCloser, error)
	Create(name string, perm fs.FileMode) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// PathResolver supplies the mods directory when the caller did not pass one.
// Implementations encapsulate whatever discovery is appropriate (explicit
// configuration, environment, launcher specific heuristics).
type PathResolver interface {
	ResolveModsDir() (string, error)
}

// PathResolverFunc adapts a plain function to PathResolver
type PathResolverFunc func() (string, error)

// ResolveModsDir calls f
func (f PathResolverFunc) ResolveModsDir() (string, error) {
	return f()
}
