package router

import (
	"quibble/internal/handlers"
	"quibble/internal/middleware"
	"quibble/internal/services"
	"quibble/internal/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints. The post id parameter is ":id" on
// every route; gin rejects conflicting parameter names at the same depth.
func RegisterRoutes(
	r *gin.Engine,
	st *store.Store,
	threadSvc *services.ThreadService,
	commentSvc *services.CommentService,
	likeSvc *services.LikeService,
) {
	userHandler := handlers.NewUserHandler(st)
	postHandler := handlers.NewPostHandler(st, threadSvc)
	commentHandler := handlers.NewCommentHandler(commentSvc)
	likeHandler := handlers.NewLikeHandler(likeSvc)

	// Public routes
	r.GET("/users", userHandler.List)
	r.POST("/users/:id", userHandler.StartSession)
	r.DELETE("/users", userHandler.EndSession)
	r.GET("/posts", postHandler.List)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.ViewerRequired())
	{
		authorized.GET("/posts/:id", postHandler.Detail)
		authorized.POST("/posts/:id/comments", commentHandler.Create)
		authorized.PUT("/posts/:id/comments/:commentId", commentHandler.Edit)
		authorized.DELETE("/posts/:id/comments/:commentId", commentHandler.Delete)
		authorized.POST("/posts/:id/comments/:commentId/like", likeHandler.Toggle)
	}
}
