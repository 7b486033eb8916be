package services

import (
	"errors"
	"fmt"
	"strings"

	"quibble/internal/apperr"
	"quibble/internal/models"
	"quibble/internal/store"
)

// DeletePolicy decides what happens to replies when a comment is deleted.
type DeletePolicy string

const (
	// DeleteOrphan keeps replies with a dangling parentId, matching the
	// flat-list contract (clients render them as top-level or tombstoned).
	DeleteOrphan DeletePolicy = "orphan"
	// DeleteCascade removes the whole reply subtree.
	DeleteCascade DeletePolicy = "cascade"
)

// ParseDeletePolicy reads the policy from configuration, defaulting to
// orphan which preserves the historical behavior.
func ParseDeletePolicy(s string) DeletePolicy {
	if DeletePolicy(s) == DeleteCascade {
		return DeleteCascade
	}
	return DeleteOrphan
}

// CommentService implements create/edit/delete with ownership checks and
// parent-existence validation.
type CommentService struct {
	store   *store.Store
	threads *ThreadService
	policy  DeletePolicy
}

func NewCommentService(st *store.Store, threads *ThreadService, policy DeletePolicy) *CommentService {
	return &CommentService{store: st, threads: threads, policy: policy}
}

// Create attaches a new comment to a post, optionally as a reply. A supplied
// parent must exist and belong to the same post.
func (s *CommentService) Create(postID string, viewer models.User, message string, parentID *string) (*CommentView, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is required: %w", apperr.ErrInvalid)
	}

	if _, err := s.store.GetPost(postID); err != nil {
		return nil, err
	}

	if parentID != nil && *parentID == "" {
		parentID = nil
	}
	if parentID != nil {
		parent, err := s.store.GetComment(*parentID)
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("parent comment does not exist: %w", apperr.ErrInvalid)
		}
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, fmt.Errorf("parent comment belongs to a different post: %w", apperr.ErrInvalid)
		}
	}

	comment := models.Comment{
		Message:  message,
		UserID:   viewer.ID,
		PostID:   postID,
		ParentID: parentID,
	}
	if err := s.store.CreateComment(&comment); err != nil {
		return nil, err
	}

	s.threads.Invalidate(postID)

	return newCommentView(&comment, viewer), nil
}

// Edit replaces the message of the viewer's own comment and refreshes
// updated_at. Ownership is checked before the message is even looked at.
func (s *CommentService) Edit(commentID, viewerID, message string) (string, error) {
	comment, err := s.store.GetComment(commentID)
	if err != nil {
		return "", err
	}
	if comment.UserID != viewerID {
		return "", fmt.Errorf("not the comment author: %w", apperr.ErrForbidden)
	}
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message is required: %w", apperr.ErrInvalid)
	}

	if err := s.store.UpdateCommentMessage(comment, message); err != nil {
		return "", err
	}

	s.threads.Invalidate(comment.PostID)

	return comment.Message, nil
}

// Delete removes the viewer's own comment and its likes. Replies follow the
// configured policy.
func (s *CommentService) Delete(commentID, viewerID string) (string, error) {
	comment, err := s.store.GetComment(commentID)
	if err != nil {
		return "", err
	}
	if comment.UserID != viewerID {
		return "", fmt.Errorf("not the comment author: %w", apperr.ErrForbidden)
	}

	ids := []string{comment.ID}
	if s.policy == DeleteCascade {
		ids, err = s.collectSubtree(comment.ID)
		if err != nil {
			return "", err
		}
	}

	if err := s.store.DeleteLikesFor(ids); err != nil {
		return "", err
	}
	if err := s.store.DeleteComments(ids); err != nil {
		return "", err
	}

	s.threads.Invalidate(comment.PostID)

	return comment.ID, nil
}

// collectSubtree gathers the comment and all transitive replies,
// breadth-first over parent_id. Acyclic by construction, so this
// terminates.
func (s *CommentService) collectSubtree(rootID string) ([]string, error) {
	all := []string{rootID}
	frontier := []string{rootID}
	for len(frontier) > 0 {
		children, err := s.store.ChildComments(frontier)
		if err != nil {
			return nil, err
		}
		frontier = frontier[:0]
		for _, child := range children {
			all = append(all, child.ID)
			frontier = append(frontier, child.ID)
		}
	}
	return all, nil
}
