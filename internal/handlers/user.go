package handlers

import (
	"net/http"

	"quibble/internal/middleware"
	"quibble/internal/store"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// List returns every user as {id, name}. Public: the demo login picks from
// this list.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// StartSession stores the given user id in the signed session cookie. The
// id is not verified here; a forged or stale id simply never resolves to a
// viewer.
func (h *UserHandler) StartSession(c *gin.Context) {
	if err := middleware.StartSession(c, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// EndSession clears the session cookie.
func (h *UserHandler) EndSession(c *gin.Context) {
	if err := middleware.EndSession(c); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
