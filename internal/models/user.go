package models

import (
	"gorm.io/gorm"
)

type User struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	// No credentials: session issuance binds an existing id to a signed
	// cookie, verification happens outside this service.
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		id, err := newID()
		if err != nil {
			return err
		}
		u.ID = id
	}
	return nil
}
