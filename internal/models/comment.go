package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	PostID    string    `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	// Nullable self-reference for replies. No DB constraint: the orphan
	// delete policy keeps dangling pointers, which a real FK would forbid.
	// Integrity is enforced on create instead (parent must exist and
	// belong to the same post).
	ParentID *string `gorm:"index" json:"parent_id"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		id, err := newID()
		if err != nil {
			return err
		}
		c.ID = id
	}
	return nil
}
