package services

import (
	"errors"

	"quibble/internal/apperr"
	"quibble/internal/models"
	"quibble/internal/store"
)

// LikeService implements the idempotent like toggle and the per-comment
// count aggregation.
type LikeService struct {
	store   *store.Store
	threads *ThreadService
}

func NewLikeService(st *store.Store, threads *ThreadService) *LikeService {
	return &LikeService{store: st, threads: threads}
}

// Toggle flips the viewer's like on a comment. Returns true when the like
// was added, false when it was removed.
//
// The read-then-write sequence is not wrapped in a transaction; two
// concurrent toggles can both read "absent" and race on the insert. The
// composite key rejects the loser, and that conflict is absorbed as success
// since the net state is still "liked".
func (s *LikeService) Toggle(commentID, viewerID string) (bool, error) {
	comment, err := s.store.GetComment(commentID)
	if err != nil {
		return false, err
	}

	has, err := s.store.HasLike(viewerID, commentID)
	if err != nil {
		return false, err
	}

	if has {
		if err := s.store.DeleteLike(viewerID, commentID); err != nil {
			return false, err
		}
		s.threads.Invalidate(comment.PostID)
		return false, nil
	}

	err = s.store.CreateLike(&models.Like{UserID: viewerID, CommentID: commentID})
	if err != nil && !errors.Is(err, apperr.ErrConflict) {
		return false, err
	}
	s.threads.Invalidate(comment.PostID)
	return true, nil
}

// CountFor returns a like count for every requested comment. Comments with
// no likes are present with 0, never omitted.
func (s *LikeService) CountFor(commentIDs []string) (map[string]int64, error) {
	counts, err := s.store.CountLikes(commentIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range commentIDs {
		if _, ok := counts[id]; !ok {
			counts[id] = 0
		}
	}
	return counts, nil
}
