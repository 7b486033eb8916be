package store

import (
	"quibble/internal/models"
)

func (s *Store) CreateLike(l *models.Like) error {
	return translate(s.db.Create(l).Error, "create like")
}

func (s *Store) DeleteLike(userID, commentID string) error {
	err := s.db.Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&models.Like{}).Error
	return translate(err, "delete like")
}

// DeleteLikesFor removes every like on the given comments. Postgres does
// this through the FK cascade; the explicit delete keeps engines without
// enforcement honest.
func (s *Store) DeleteLikesFor(commentIDs []string) error {
	if len(commentIDs) == 0 {
		return nil
	}
	err := s.db.Where("comment_id IN ?", commentIDs).Delete(&models.Like{}).Error
	return translate(err, "delete likes for comments")
}

func (s *Store) HasLike(userID, commentID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Like{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "has like")
	}
	return count > 0, nil
}

// CountLikes groups like rows by comment. Comments with no likes are absent
// from the result; the aggregator zero-fills.
func (s *Store) CountLikes(commentIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	if len(commentIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CommentID string
		Total     int64
	}
	err := s.db.Model(&models.Like{}).
		Select("comment_id, count(*) AS total").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "count likes")
	}

	for _, row := range rows {
		counts[row.CommentID] = row.Total
	}
	return counts, nil
}

// LikedCommentIDs returns, as a set, which of the given comments the user
// has liked.
func (s *Store) LikedCommentIDs(userID string, commentIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool)
	if len(commentIDs) == 0 {
		return liked, nil
	}

	var ids []string
	err := s.db.Model(&models.Like{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error
	if err != nil {
		return nil, translate(err, "liked comment ids")
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
