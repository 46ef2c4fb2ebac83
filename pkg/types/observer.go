package types

// SyncProgress is emitted before each entry of the download pass.
// Current is 1-based and Total is the length of the remote manifest.
type SyncProgress struct {
	Current int
	Total   int
	Name    ModName
}

// Observer receives one-way notifications from a running sync.
// Calls are made synchronously on the sync goroutine and must not block;
// the sync never waits for an acknowledgment.
type Observer interface {
	// Status reports a human readable description of the current step
	Status(msg string)

	// Progress reports the download pass position
	Progress(p SyncProgress)

	// Complete is called once after a successful sync
	Complete()

	// Error is called once with the terminal error of a failed sync
	Error(err error)
}
