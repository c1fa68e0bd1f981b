// Package memory provides process-local, append-only registries backing the
// repository interfaces.
//
// The registries hold plain slices and perform no locking; a registry must
// not be shared between goroutines without external synchronization.
package memory
