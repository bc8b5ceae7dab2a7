package registry

import "errors"

var (
	// ErrNotFound covers both an absent record and a denied view/download:
	// the two are indistinguishable to the caller so private file IDs
	// cannot be enumerated.
	ErrNotFound = errors.New("file not found")
	// ErrForbidden is surfaced for delete only: the caller is told they
	// are not the owner rather than shown a generic not-found.
	ErrForbidden = errors.New("only the owner may delete a file")
	// ErrValidation marks invalid input (empty comment text, missing name).
	ErrValidation = errors.New("invalid input")
	// ErrStorageWrite wraps a blob write failure from the backend.
	ErrStorageWrite = errors.New("storage backend write failed")
	// ErrStorageDelete wraps a blob delete failure from the backend.
	ErrStorageDelete = errors.New("storage backend delete failed")
)
