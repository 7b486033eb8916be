// Package services holds the comment-domain logic: thread assembly, comment
// mutation and like aggregation. Handlers stay thin shells over it.
package services

import (
	"time"

	"quibble/internal/models"
	"quibble/internal/store"
	"quibble/internal/utils"
)

type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommentView is one entry of the flat thread list. Nesting is not computed
// server-side: clients reconstruct the tree from ParentID. That is the
// contract, not a shortcut.
type CommentView struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	HTML      string    `json:"html"`
	ParentID  *string   `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	LikeCount int64     `json:"likeCount"`
	LikedByMe bool      `json:"likedByMe"`
	User      UserRef   `json:"user"`
}

type PostThread struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	BodyHTML string        `json:"bodyHtml"`
	Comments []CommentView `json:"comments"`
}

const threadCacheTTL = 5 * time.Minute

func threadCacheKey(postID string) string {
	return "thread:" + postID
}

// ThreadService assembles one post's full comment thread.
type ThreadService struct {
	store *store.Store
	cache *utils.Cache
}

func NewThreadService(st *store.Store, cache *utils.Cache) *ThreadService {
	return &ThreadService{store: st, cache: cache}
}

// PostWithComments returns the post with its flat, newest-first comment
// list, like counts aggregated and likedByMe resolved for the viewer. The
// viewer-independent part is cached; the viewer's like set is layered on
// per request.
func (s *ThreadService) PostWithComments(postID, viewerID string) (*PostThread, error) {
	shared, err := s.sharedThread(postID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(shared.Comments))
	for i, cv := range shared.Comments {
		ids[i] = cv.ID
	}

	liked, err := s.store.LikedCommentIDs(viewerID, ids)
	if err != nil {
		return nil, err
	}

	out := *shared
	out.Comments = make([]CommentView, len(shared.Comments))
	for i, cv := range shared.Comments {
		cv.LikedByMe = liked[cv.ID]
		out.Comments[i] = cv
	}
	return &out, nil
}

func (s *ThreadService) sharedThread(postID string) (*PostThread, error) {
	key := threadCacheKey(postID)
	if cached := s.cache.Get(key); cached != nil {
		if t, ok := cached.(*PostThread); ok {
			return t, nil
		}
	}

	post, err := s.store.GetPost(postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.store.CommentsForPost(postID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	counts, err := s.store.CountLikes(ids)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, len(comments))
	for i, c := range comments {
		views[i] = CommentView{
			ID:        c.ID,
			Message:   c.Message,
			HTML:      utils.RenderMarkdown(c.Message),
			ParentID:  c.ParentID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
			LikeCount: counts[c.ID], // zero value keeps unliked comments at 0
			User:      UserRef{ID: c.User.ID, Name: c.User.Name},
		}
	}

	t := &PostThread{
		ID:       post.ID,
		Title:    post.Title,
		Body:     post.Body,
		BodyHTML: utils.RenderMarkdown(post.Body),
		Comments: views,
	}
	s.cache.Set(key, t, threadCacheTTL)
	return t, nil
}

// Invalidate drops the shared cache entry for a post. Every mutation that
// changes the thread calls this.
func (s *ThreadService) Invalidate(postID string) {
	s.cache.Delete(threadCacheKey(postID))
}

func newCommentView(c *models.Comment, author models.User) *CommentView {
	return &CommentView{
		ID:        c.ID,
		Message:   c.Message,
		HTML:      utils.RenderMarkdown(c.Message),
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		LikeCount: 0,
		LikedByMe: false,
		User:      UserRef{ID: author.ID, Name: author.Name},
	}
}
