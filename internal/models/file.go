package models

import (
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-database/sql"
	"gorm.io/gorm"

	"fileshare-api/internal/access"
)

// File represents one uploaded blob and its metadata. Records are immutable
// after creation: there is no update path, only create and delete.
type File struct {
	sql.BaseModel
	OriginalName string    `json:"originalName" gorm:"not null"`
	StoragePath  string    `json:"storagePath" gorm:"not null;uniqueIndex"`
	Description  string    `json:"description" gorm:"size:255"`
	OwnerID      uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;index"`
	// OwnerPrivileged is captured at upload time. A file published by a
	// privileged principal is visible to everyone.
	OwnerPrivileged bool      `json:"ownerPrivileged" gorm:"not null"`
	Size            int64     `json:"size" gorm:"not null"`
	ContentType     string    `json:"contentType"`
	Comments        []Comment `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// AccessSubject adapts the record for the access engine.
func (f *File) AccessSubject() access.Subject {
	return access.Subject{
		OwnerID:         f.OwnerID,
		OwnerPrivileged: f.OwnerPrivileged,
	}
}

// BeforeCreate assigns the ID when the database does not.
func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
