package handlers

import (
	"fmt"
	"net/http"

	"quibble/internal/apperr"
	"quibble/internal/middleware"
	"quibble/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

type commentRequest struct {
	Message  string  `json:"message"`
	ParentID *string `json:"parentId"`
}

// Create posts a new comment, optionally replying to another comment on
// the same post.
func (h *CommentHandler) Create(c *gin.Context) {
	viewer := middleware.Viewer(c)

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("malformed body: %w", apperr.ErrInvalid))
		return
	}

	view, err := h.comments.Create(c.Param("id"), viewer, req.Message, req.ParentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// Edit updates the message of the viewer's own comment. The response
// carries the new message only; callers already hold the other fields.
func (h *CommentHandler) Edit(c *gin.Context) {
	viewer := middleware.Viewer(c)

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("malformed body: %w", apperr.ErrInvalid))
		return
	}

	message, err := h.comments.Edit(c.Param("commentId"), viewer.ID, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Delete removes the viewer's own comment.
func (h *CommentHandler) Delete(c *gin.Context) {
	viewer := middleware.Viewer(c)

	id, err := h.comments.Delete(c.Param("commentId"), viewer.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
