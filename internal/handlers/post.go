package handlers

import (
	"net/http"

	"quibble/internal/middleware"
	"quibble/internal/services"
	"quibble/internal/store"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	store   *store.Store
	threads *services.ThreadService
}

func NewPostHandler(st *store.Store, threads *services.ThreadService) *PostHandler {
	return &PostHandler{store: st, threads: threads}
}

type postSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// List returns all posts as {id, title}. Public.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.store.ListPosts()
	if err != nil {
		writeError(c, err)
		return
	}

	summaries := make([]postSummary, len(posts))
	for i, p := range posts {
		summaries[i] = postSummary{ID: p.ID, Title: p.Title}
	}
	c.JSON(http.StatusOK, summaries)
}

// Detail returns one post with its full comment thread, annotated for the
// current viewer.
func (h *PostHandler) Detail(c *gin.Context) {
	viewer := middleware.Viewer(c)

	thread, err := h.threads.PostWithComments(c.Param("id"), viewer.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}
