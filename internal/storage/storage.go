// Package storage reads and writes the raw ignore-file content by location,
// on the local filesystem or over SFTP. Every operation follows
// read-compute-write: nothing is cached between invocations and a write
// carries the fully computed final content or nothing.
package storage

import (
	"errors"
	"io/fs"
)

// Store is the ignore file's storage collaborator.
type Store interface {
	// Read returns the raw file content; a missing file yields an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	Read() ([]byte, error)
	// Write replaces the file content in one step.
	Write(data []byte) error
	// Location describes where the file lives, for messages.
	Location() string
	// Close releases any held connection.
	Close() error
}

// IsNotExist reports whether err means the ignore file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
