// Package types defines the core types and interfaces used throughout modsync.
// This includes the ModName and SyncProgress data types, the Observer
// notification interface, the FS filesystem abstraction and the
// PathResolver strategy used to locate the mods directory.
package types
