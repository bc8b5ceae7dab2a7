// Package storage defines the blob backend contract and its local disk
// implementation. Blobs are write-once: a path is never overwritten.
package storage

import (
	"errors"
	"io"
)

var (
	// ErrExists is returned by Write when the path is already taken.
	ErrExists = errors.New("blob already exists")
	// ErrNotExist is returned by Read and Delete for a missing blob.
	ErrNotExist = errors.New("blob does not exist")
)

// Backend is a durable blob store addressed by path.
type Backend interface {
	// Write stores the blob at path. Fails with ErrExists if the path is
	// taken; the reader is not consumed in that case.
	Write(path string, r io.Reader) error
	// Read opens the blob at path for reading.
	Read(path string) (io.ReadCloser, error)
	// Delete removes the blob at path.
	Delete(path string) error
}
