package handlers

import (
	"net/http"

	"quibble/internal/middleware"
	"quibble/internal/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// Toggle flips the viewer's like on a comment and reports the direction.
func (h *LikeHandler) Toggle(c *gin.Context) {
	viewer := middleware.Viewer(c)

	added, err := h.likes.Toggle(c.Param("commentId"), viewer.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addLike": added})
}
