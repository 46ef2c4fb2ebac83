package testutil

import (
	"sync"

	"github.com/arthur-debert/modsync/pkg/types"
)

// Recorder is a types.Observer that keeps every notification
type Recorder struct {
	mu        sync.Mutex
	Statuses  []string
	Events    []types.SyncProgress
	Errors    []error
	Completed int
}

func (r *Recorder) Status(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Statuses = append(r.Statuses, msg)
}

func (r *Recorder) Progress(p types.SyncProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, p)
}

func (r *Recorder) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Completed++
}

func (r *Recorder) Error(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, err)
}

// ProgressNames returns the mod names of the recorded progress events
func (r *Recorder) ProgressNames() []types.ModName {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]types.ModName, len(r.Events))
	for i, e := range r.Events {
		names[i] = e.Name
	}
	return names
}
