// Package manifest implements the client side of the mod server protocol.
//
// A mod server exposes two endpoints relative to its base URL:
//
//	GET <manifest_path>          -> {"mods": ["a.jar", "b.jar"]}
//	GET <content_path>/<name>    -> raw file bytes
//
// The manifest is the authoritative, ordered list of file names that should
// exist in the local mods directory. Every request is attempted once; a
// non-2xx answer becomes a REMOTE error carrying the status code and reason
// and a transport failure becomes a NETWORK error.
package manifest
