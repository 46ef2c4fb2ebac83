package testutil

import (
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/arthur-debert/modsync/pkg/filesystem"
	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewMemory()
}

// WriteFiles creates dir and writes name -> content pairs into it
func WriteFiles(t *testing.T, fsys types.FS, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	for name, content := range files {
		require.NoError(t, fsys.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

// FileNames returns the sorted names of the regular files in dir
func FileNames(t *testing.T, fsys types.FS, dir string) []string {
	t.Helper()
	names, err := filesystem.ListFiles(fsys, dir)
	require.NoError(t, err)
	sort.Strings(names)
	return names
}

// ReadFiles returns name -> content for every regular file in dir
func ReadFiles(t *testing.T, fsys types.FS, dir string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, name := range FileNames(t, fsys, dir) {
		data, err := fsys.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		out[name] = string(data)
	}
	return out
}

// FaultyFS wraps a types.FS and fails selected operations on selected paths
type FaultyFS struct {
	types.FS

	mu       sync.Mutex
	failures map[string]error
	calls    []string
}

// NewFaultyFS wraps fsys
func NewFaultyFS(fsys types.FS) *FaultyFS {
	return &FaultyFS{FS: fsys, failures: make(map[string]error)}
}

// FailOn makes op ("remove", "create", "write", "readdir", "mkdir",
// "removeall", "open") on path return err
func (f *FaultyFS) FailOn(op, path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[op+":"+filepath.Clean(path)] = err
}

// Calls returns "op:path" for every mutating call seen, in order
func (f *FaultyFS) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FaultyFS) check(op, path string, mutating bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := op + ":" + filepath.Clean(path)
	if mutating {
		f.calls = append(f.calls, key)
	}
	return f.failures[key]
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check("remove", name, true); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) RemoveAll(path string) error {
	if err := f.check("removeall", path, true); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

func (f *FaultyFS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	if err := f.check("create", name, true); err != nil {
		return nil, err
	}
	return f.FS.Create(name, perm)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check("write", name, true); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check("mkdir", path, true); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("readdir", name, false); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Open(name string) (io.ReadCloser, error) {
	if err := f.check("open", name, false); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}
