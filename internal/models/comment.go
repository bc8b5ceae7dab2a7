package models

import (
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-database/sql"
	"gorm.io/gorm"
)

// Comment is a single comment on a file. Comments are append-only; they are
// removed only when their file is deleted.
type Comment struct {
	sql.BaseModel
	FileID   uuid.UUID `json:"fileId" gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID `json:"authorId" gorm:"type:uuid;not null"`
	Text     string    `json:"text" gorm:"not null"`
}

// BeforeCreate assigns the ID when the database does not.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
