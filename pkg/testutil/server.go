package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/arthur-debert/modsync/pkg/server"
	"github.com/arthur-debert/modsync/pkg/types"
)

// PublishedDir is where ModServer keeps its files in memory
const PublishedDir = "/published"

// ModServer is a mod server for tests that records every request path
type ModServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
	override map[string]int
}

// NewModServer publishes files (name -> content) over HTTP
func NewModServer(t *testing.T, files map[string]string) *ModServer {
	t.Helper()
	return newModServer(t, server.Options{}, files)
}

// NewModServerWithManifest publishes a fixed manifest. Names absent from
// files answer 404 on the content endpoint.
func NewModServerWithManifest(t *testing.T, mods []types.ModName, files map[string]string) *ModServer {
	t.Helper()
	if mods == nil {
		mods = []types.ModName{}
	}
	return newModServer(t, server.Options{Manifest: mods}, files)
}

func newModServer(t *testing.T, opts server.Options, files map[string]string) *ModServer {
	t.Helper()
	fsys := NewTestFS()
	WriteFiles(t, fsys, PublishedDir, files)
	opts.FS = fsys
	opts.Dir = PublishedDir

	ms := &ModServer{override: make(map[string]int)}
	handler := server.New(opts).Handler()
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.mu.Lock()
		ms.requests = append(ms.requests, r.URL.Path)
		status, forced := ms.override[r.URL.Path]
		ms.mu.Unlock()

		if forced {
			http.Error(w, http.StatusText(status), status)
			return
		}
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(ms.Close)
	return ms
}

// FailPath makes requests for path answer status
func (m *ModServer) FailPath(path string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.override[path] = status
}

// Requests returns the request paths seen so far
func (m *ModServer) Requests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requests...)
}

// ContentRequests returns the request paths that fetched mod contents
func (m *ModServer) ContentRequests() []string {
	var out []string
	for _, p := range m.Requests() {
		if p != "/manifest" {
			out = append(out, p)
		}
	}
	return out
}
