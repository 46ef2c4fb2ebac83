// Package orchestration runs a complete sync of one mods directory.
//
// A sync is a strict sequence:
//
//  1. resolve the mods directory (explicit path, or the injected resolver)
//  2. back up the directory
//  3. fetch the manifest
//  4. reconcile the directory against it
//
// Each step reports to the injected observer. The first failure is sent to
// Observer.Error and returned; later steps do not run and nothing is rolled
// back. Callers must not run two syncs against the same directory at once.
package orchestration
