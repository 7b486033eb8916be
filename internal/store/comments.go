package store

import (
	"quibble/internal/models"
)

func (s *Store) CreateComment(c *models.Comment) error {
	return translate(s.db.Create(c).Error, "create comment")
}

func (s *Store) GetComment(id string) (*models.Comment, error) {
	var c models.Comment
	if err := s.db.Preload("User").First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get comment")
	}
	return &c, nil
}

// CommentsForPost returns the full thread of a post as a flat list with
// authors preloaded, newest first.
func (s *Store) CommentsForPost(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, translate(err, "comments for post")
	}
	return comments, nil
}

// UpdateCommentMessage sets a new message on the loaded comment. GORM
// refreshes updated_at as part of the write; the struct is updated in place.
func (s *Store) UpdateCommentMessage(c *models.Comment, message string) error {
	return translate(s.db.Model(c).Update("message", message).Error, "update comment")
}

// DeleteComments removes the given comment rows. Replies are not touched
// here; cascade decisions belong to the mutator.
func (s *Store) DeleteComments(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return translate(s.db.Delete(&models.Comment{}, "id IN ?", ids).Error, "delete comments")
}

// ChildComments returns all direct replies to any of the given comments.
func (s *Store) ChildComments(parentIDs []string) ([]models.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var comments []models.Comment
	if err := s.db.Where("parent_id IN ?", parentIDs).Find(&comments).Error; err != nil {
		return nil, translate(err, "child comments")
	}
	return comments, nil
}
