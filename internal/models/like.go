package models

// Like is a pure marker row: its existence means "this user likes this
// comment". The composite primary key is the toggle-uniqueness invariant.
type Like struct {
	UserID    string  `gorm:"primaryKey" json:"user_id"`
	User      User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CommentID string  `gorm:"primaryKey" json:"comment_id"`
	Comment   Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
