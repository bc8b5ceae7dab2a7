// Package registry enforces the lifecycle and access invariants of file
// records and their comments. All authorization decisions are delegated to
// the access engine; all blob I/O goes through the storage backend.
package registry

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fileshare-api/internal/access"
	"fileshare-api/internal/models"
	"fileshare-api/internal/naming"
	"fileshare-api/internal/storage"
)

// maxPathAttempts bounds the suffix retry after same-second name collisions.
const maxPathAttempts = 5

// Registry is the authority over file records and comments.
type Registry struct {
	db    *gorm.DB
	blobs storage.Backend
	now   func() time.Time
}

// New creates a registry over the given database and blob backend.
func New(db *gorm.DB, blobs storage.Backend) *Registry {
	return NewWithClock(db, blobs, time.Now)
}

// NewWithClock is New with an injectable clock.
func NewWithClock(db *gorm.DB, blobs storage.Backend, now func() time.Time) *Registry {
	return &Registry{db: db, blobs: blobs, now: now}
}

// Upload carries the client-supplied parts of a new file.
type Upload struct {
	OriginalName string
	Description  string
	ContentType  string
	Size         int64
	Content      io.Reader
}

// Create stores the blob and inserts the record. The blob is written first:
// a crash or write failure can leave an orphan blob (wasted space) but never
// a record pointing at nothing. A same-second collision on the generated
// path is retried with a numeric suffix; the write-once backend rejects the
// duplicate before consuming the content.
func (r *Registry) Create(p access.Principal, up Upload) (*models.File, error) {
	if strings.TrimSpace(up.OriginalName) == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrValidation)
	}

	now := r.now().UTC()
	path := naming.StoragePath(up.OriginalName, now)

	stored := ""
	for attempt := 0; attempt <= maxPathAttempts; attempt++ {
		candidate := path
		if attempt > 0 {
			candidate = naming.WithSuffix(path, attempt)
		}
		err := r.blobs.Write(candidate, up.Content)
		if errors.Is(err, storage.ErrExists) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
		}
		stored = candidate
		break
	}
	if stored == "" {
		return nil, fmt.Errorf("%w: no free storage path for %q at %s",
			ErrStorageWrite, up.OriginalName, now.Format(time.RFC3339))
	}

	f := &models.File{
		OriginalName:    up.OriginalName,
		StoragePath:     stored,
		Description:     up.Description,
		OwnerID:         p.ID,
		OwnerPrivileged: p.Privileged,
		Size:            up.Size,
		ContentType:     up.ContentType,
	}
	f.CreatedAt = now
	if err := r.db.Create(f).Error; err != nil {
		return nil, fmt.Errorf("failed to insert file record: %w", err)
	}
	return f, nil
}

// ListVisible returns exactly the records p may view, newest first.
func (r *Registry) ListVisible(p access.Principal) ([]models.File, error) {
	q := r.db.Order("created_at DESC")
	if !p.Privileged {
		q = q.Where("owner_privileged = ? OR owner_id = ?", true, p.ID)
	}

	var files []models.File
	if err := q.Find(&files).Error; err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

// GetForAccess looks up a record and checks the capability. For view and
// download an absent record and a denied one collapse to ErrNotFound. For
// delete an existing record the caller does not own yields ErrForbidden.
func (r *Registry) GetForAccess(p access.Principal, id uuid.UUID, c access.Capability) (*models.File, error) {
	var f models.File
	if err := r.db.First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch file record: %w", err)
	}

	if !access.Can(c, p, f.AccessSubject()) {
		if c == access.CapabilityDelete {
			return nil, ErrForbidden
		}
		return nil, ErrNotFound
	}
	return &f, nil
}

// Open resolves a record for download and opens its blob. A missing blob is
// reported as ErrNotFound, the same shape as a denial.
func (r *Registry) Open(p access.Principal, id uuid.UUID) (*models.File, io.ReadCloser, error) {
	f, err := r.GetForAccess(p, id, access.CapabilityDownload)
	if err != nil {
		return nil, nil, err
	}

	rc, err := r.blobs.Read(f.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to open blob: %w", err)
	}
	return f, rc, nil
}

// Delete removes the blob, then the record and its comments in one
// transaction. A blob delete failure aborts before any row changes so the
// caller can retry. A record that vanished between the capability check and
// the transaction is reported as ErrNotFound, which makes a concurrent
// second delete idempotent at the not-found level.
func (r *Registry) Delete(p access.Principal, id uuid.UUID) error {
	f, err := r.GetForAccess(p, id, access.CapabilityDelete)
	if err != nil {
		return err
	}

	if err := r.blobs.Delete(f.StoragePath); err != nil && !errors.Is(err, storage.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrStorageDelete, err)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("file_id = ?", f.ID).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		res := tx.Where("id = ?", f.ID).Delete(&models.File{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete file record: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// AddComment appends a comment to a file the principal can view.
// Commenting is gated exactly like viewing.
func (r *Registry) AddComment(p access.Principal, fileID uuid.UUID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text must not be empty", ErrValidation)
	}

	f, err := r.GetForAccess(p, fileID, access.CapabilityView)
	if err != nil {
		return nil, err
	}

	c := &models.Comment{
		FileID:   f.ID,
		AuthorID: p.ID,
		Text:     text,
	}
	c.CreatedAt = r.now().UTC()
	if err := r.db.Create(c).Error; err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	return c, nil
}

// ListComments returns the comments of a file the principal can view,
// oldest first.
func (r *Registry) ListComments(p access.Principal, fileID uuid.UUID) ([]models.Comment, error) {
	f, err := r.GetForAccess(p, fileID, access.CapabilityView)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := r.db.Where("file_id = ?", f.ID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
