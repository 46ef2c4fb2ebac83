// Package testutil provides utilities for testing modsync components.
//
// Key components:
//   - NewTestFS / WriteFiles / FileNames: in-memory mods directories
//   - FaultyFS: a types.FS wrapper that fails chosen operations
//   - ModServer: an httptest server publishing mods with request recording
//   - Recorder: a types.Observer that records every notification
//
// All test data should be defined inline, not in external files, and each
// test should be isolated with no shared state.
package testutil
