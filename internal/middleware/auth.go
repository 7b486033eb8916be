package middleware

import (
	"errors"
	"net/http"

	"quibble/internal/apperr"
	"quibble/internal/models"
	"quibble/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const ViewerKey = "viewer"

const sessionUserKey = "user_id"

// LoadViewer resolves the session's user id to an existing user row and
// sets it on the context. A missing cookie, an unparseable value, or a
// stale id all leave the context without a viewer; the guard never creates
// accounts.
func LoadViewer(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, ok := session.Get(sessionUserKey).(string)

		if ok && id != "" {
			user, err := st.GetUser(id)
			switch {
			case err == nil:
				c.Set(ViewerKey, *user)
			case errors.Is(err, apperr.ErrNotFound):
				// Stale or forged id: proceed without a viewer, the guard
				// turns that into 401. Infrastructure failures must not.
			default:
				log.WithError(err).Error("failed to resolve viewer")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "internal server error"})
				return
			}
		}
		c.Next()
	}
}

// ViewerRequired rejects requests without a resolved viewer.
func ViewerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ViewerKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// Viewer returns the resolved user. Only valid behind ViewerRequired.
func Viewer(c *gin.Context) models.User {
	return c.MustGet(ViewerKey).(models.User)
}

// StartSession binds a user id to the signed session cookie. Staleness is
// detected at resolution time, not here.
func StartSession(c *gin.Context, userID string) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, userID)
	return session.Save()
}

// EndSession clears the session cookie.
func EndSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserKey)
	return session.Save()
}
