package services

import (
	"errors"
	"testing"
	"time"

	"quibble/internal/apperr"
)

func TestCreateRejectsEmptyMessage(t *testing.T) {
	env := newTestEnv(t, DeleteOrphan)
	ada := env.user(t, "Ada")
	post := env.post(t, "First")

	for _, message := range []string{"", "   ", "\n\t"} {
		if _, err := env.comments.Create(post.ID, ada, message, nil); !errors.Is(err, apperr.ErrInvalid) {
			t.Errorf("message %q: want ErrInvalid, got %v", message, err)
		}
	}
}

func TestCreateOnMissingPost(t *testing.T) {
	env := newTestEnv(t, DeleteOrphan)
	ada := env.user(t, "Ada")

	if _, err := env.comments.Create("missing", ada, "hi", nil); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestCreateValidatesParent(t *testing.T) {
	env := newTestEnv(t, DeleteOrphan)
	ada := env.user(t, "Ada")
	postA := env.post(t, "A")
	postB := env.post(t, "B")

	onB, err := env.comments.Create(postB.ID, ada, "on B", nil)
	if err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	missing := "missing-id"
	if _, err := env.comments.Create(postA.ID, ada, "reply", &missing); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("missing parent: want ErrInvalid, got %v", err)
	}

	if _, err := env.comments.Create(postA.ID, ada, "reply", &onB.ID); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("cross-post parent: want ErrInvalid, got %v", err)
	}

	reply, err := env.comments.Create(postB.ID, ada, "reply", &onB.ID)
	if err != nil {
		t.Fatalf("same-post parent rejected: %v", err)
	}
	if reply.ParentID == nil || *reply.ParentID != onB.ID {
		t.Errorf("want parentId %q, got %v", onB.ID, reply.ParentID)
	}
}

func TestEditAndDeleteAreOwnerOnly(t *testing.T) {
	env := newTestEnv(t, DeleteOrphan)
	ada := env.user(t, "Ada")
	ben := env.user(t, "Ben")
	post := env.post(t, "First")

	view, err := env.comments.Create(post.ID, ada, "mine", nil)
	if err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	// Ownership wins over message validation.
	if _, err := env.comments.Edit(view.ID, ben.ID, ""); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("edit by non-owner with empty message: want ErrForbidden, got %v", err)
	}
	if _, err := env.comments.Edit(view.ID, ben.ID, "new text"); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("edit by non-owner: want ErrForbidden, got %v", err)
	}
	if _, err := env.comments.Delete(view.ID, ben.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("delete by non-owner: want ErrForbidden, got %v", err)
	}

	if _, err := env.comments.Edit(view.ID, ada.ID, ""); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("edit by owner with empty message: want ErrInvalid, got %v", err)
	}
}

func TestEditUpdatesMessageAndTimestamp(t *testing.T) {
	env := newTestEnv(t, DeleteOrphan)
	ada := env.user(t, "Ada")
	post := env.post(t, "First")

	view, err := env.comments.Create(post.ID, ada, "before", nil)
	if err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	message, err := env.comments.Edit(view.ID, ada.ID, "after")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if message != "after" {
		t.Errorf("want returned message %q, got %q", "after", message)
	}

	thread, err := env.threads.PostWithComments(post.ID, ada.ID)
	if err != nil {
		t.Fatalf("failed to assemble thread: %v", err)
	}
	got := thread.Comments[0]
	if got.Message != "after" {
		t.Errorf("want stored message %q, got %q", "after", got.Message)
	}
	if !got.UpdatedAt.After(view.UpdatedAt) {
		t.Errorf("want updatedAt after %v, got %v", view.UpdatedAt, got.UpdatedAt)
	}
}

func TestEditAndDeleteMissingComment(t *testing.T) {
	env := newTestEnv(t, DeleteOrphan)
	ada := env.user(t, "Ada")

	if _, err := env.comments.Edit("missing", ada.ID, "text"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("edit: want ErrNotFound, got %v", err)
	}
	if _, err := env.comments.Delete("missing", ada.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("delete: want ErrNotFound, got %v", err)
	}
}

func TestDeleteOrphanPolicyKeepsReplies(t *testing.T) {
	env := newTestEnv(t, DeleteOrphan)
	ada := env.user(t, "Ada")
	ben := env.user(t, "Ben")
	post := env.post(t, "First")

	root, err := env.comments.Create(post.ID, ada, "root", nil)
	if err != nil {
		t.Fatalf("failed to create root: %v", err)
	}
	reply, err := env.comments.Create(post.ID, ben, "reply", &root.ID)
	if err != nil {
		t.Fatalf("failed to create reply: %v", err)
	}
	if _, err := env.likes.Toggle(root.ID, ben.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	deletedID, err := env.comments.Delete(root.ID, ada.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deletedID != root.ID {
		t.Errorf("want deleted id %q, got %q", root.ID, deletedID)
	}

	thread, err := env.threads.PostWithComments(post.ID, ada.ID)
	if err != nil {
		t.Fatalf("failed to assemble thread: %v", err)
	}
	if len(thread.Comments) != 1 {
		t.Fatalf("want orphaned reply to survive, got %d comments", len(thread.Comments))
	}
	got := thread.Comments[0]
	if got.ID != reply.ID {
		t.Errorf("want surviving comment %q, got %q", reply.ID, got.ID)
	}
	if got.ParentID == nil || *got.ParentID != root.ID {
		t.Errorf("orphan should keep its dangling parentId, got %v", got.ParentID)
	}

	// Likes on the deleted comment are gone.
	counts, err := env.likes.CountFor([]string{root.ID})
	if err != nil {
		t.Fatalf("failed to count likes: %v", err)
	}
	if counts[root.ID] != 0 {
		t.Errorf("want likes removed with comment, got %d", counts[root.ID])
	}
}

func TestDeleteCascadePolicyRemovesSubtree(t *testing.T) {
	env := newTestEnv(t, DeleteCascade)
	ada := env.user(t, "Ada")
	ben := env.user(t, "Ben")
	post := env.post(t, "First")

	root, err := env.comments.Create(post.ID, ada, "root", nil)
	if err != nil {
		t.Fatalf("failed to create root: %v", err)
	}
	child, err := env.comments.Create(post.ID, ben, "child", &root.ID)
	if err != nil {
		t.Fatalf("failed to create child: %v", err)
	}
	if _, err := env.comments.Create(post.ID, ada, "grandchild", &child.ID); err != nil {
		t.Fatalf("failed to create grandchild: %v", err)
	}
	sibling, err := env.comments.Create(post.ID, ben, "sibling", nil)
	if err != nil {
		t.Fatalf("failed to create sibling: %v", err)
	}
	if _, err := env.likes.Toggle(child.ID, ada.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	if _, err := env.comments.Delete(root.ID, ada.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	thread, err := env.threads.PostWithComments(post.ID, ada.ID)
	if err != nil {
		t.Fatalf("failed to assemble thread: %v", err)
	}
	if len(thread.Comments) != 1 {
		t.Fatalf("want only the sibling to survive, got %d comments", len(thread.Comments))
	}
	if thread.Comments[0].ID != sibling.ID {
		t.Errorf("want survivor %q, got %q", sibling.ID, thread.Comments[0].ID)
	}

	counts, err := env.likes.CountFor([]string{child.ID})
	if err != nil {
		t.Fatalf("failed to count likes: %v", err)
	}
	if counts[child.ID] != 0 {
		t.Errorf("want subtree likes removed, got %d", counts[child.ID])
	}
}
